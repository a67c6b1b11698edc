package llm

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gridironhq/gridiron/internal/models"
)

// PromptContext is the league state handed to the model alongside a
// question. Empty sections are omitted from the prompt.
type PromptContext struct {
	ScoringRules map[string]float64
	MyRoster     []models.PlayerValue
	TopAvailable []models.PlayerValue
	LeagueSize   int
}

// BuildPrompt assembles the question prompt. The scoring rules go in as
// YAML so the model sees the exact league configuration.
func BuildPrompt(question string, pc PromptContext) string {
	var b strings.Builder

	b.WriteString("You are a fantasy football analyst for a ")
	if pc.LeagueSize > 0 {
		fmt.Fprintf(&b, "%d-team ", pc.LeagueSize)
	}
	b.WriteString("league. Answer the manager's question using only the data below. Be concise and cite the numbers that support your answer.\n\n")

	if len(pc.ScoringRules) > 0 {
		b.WriteString("## League scoring rules\n```yaml\n")
		if rules, err := yaml.Marshal(pc.ScoringRules); err == nil {
			b.Write(rules)
		}
		b.WriteString("```\n\n")
	}

	if len(pc.MyRoster) > 0 {
		b.WriteString("## My roster\n")
		writePlayerLines(&b, pc.MyRoster)
		b.WriteString("\n")
	}

	if len(pc.TopAvailable) > 0 {
		b.WriteString("## Top available players\n")
		writePlayerLines(&b, pc.TopAvailable)
		b.WriteString("\n")
	}

	b.WriteString("## Question\n")
	b.WriteString(question)
	b.WriteString("\n")

	return b.String()
}

func writePlayerLines(b *strings.Builder, players []models.PlayerValue) {
	for _, p := range players {
		fmt.Fprintf(b, "- %s (%s, %s): %.1f pts over %d games, VOR %.2f, consistency %.2f\n",
			p.Name, p.Position, p.ProTeam, p.TotalPoints, p.Games, p.VOR, p.Consistency)
	}
}
