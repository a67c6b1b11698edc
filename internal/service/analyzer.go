// Package service wires the datasets, scoring, and analysis layers into the
// report sections the CLI and the bot publish.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gridironhq/gridiron/internal/analysis"
	"github.com/gridironhq/gridiron/internal/config"
	"github.com/gridironhq/gridiron/internal/draft"
	"github.com/gridironhq/gridiron/internal/lineup"
	"github.com/gridironhq/gridiron/internal/llm"
	"github.com/gridironhq/gridiron/internal/models"
	"github.com/gridironhq/gridiron/internal/report"
	"github.com/gridironhq/gridiron/internal/scoring"
	"github.com/gridironhq/gridiron/internal/store"
	"github.com/gridironhq/gridiron/internal/valuation"
)

type Analyzer struct {
	league *config.League
	store  *store.Store
}

func NewAnalyzer(league *config.League, st *store.Store) *Analyzer {
	return &Analyzer{league: league, store: st}
}

func (a *Analyzer) scoredWeeks() ([]models.PlayerWeek, error) {
	stats, err := a.store.LoadPlayerStats()
	if err != nil {
		return nil, fmt.Errorf("loading player stats: %w", err)
	}
	return scoring.Score(stats, scoring.RuleSet(a.league.ScoringRules)), nil
}

// PlayerValues scores every stat row under the league rules and aggregates
// the season values.
func (a *Analyzer) PlayerValues() ([]models.PlayerValue, error) {
	scored, err := a.scoredWeeks()
	if err != nil {
		return nil, err
	}
	return valuation.Valuate(scored, a.league.RosterSettings, a.league.LeagueSettings.NumberOfTeams), nil
}

// rosterValues resolves the roster file against the value records. Roster
// names that match nothing are logged and skipped for valuation but still
// count as rostered so they never show up as pickup candidates.
func (a *Analyzer) rosterValues(values []models.PlayerValue) ([]models.PlayerValue, map[string]bool, error) {
	entries, err := a.store.LoadRoster()
	if err != nil {
		return nil, nil, fmt.Errorf("loading roster: %w", err)
	}

	rostered := make(map[string]bool)
	var roster []models.PlayerValue
	for _, entry := range entries {
		rostered[entry.Name] = true
		value, ok := analysis.FindPlayer(entry.Name, values)
		if !ok {
			slog.Warn("roster player has no stat rows", "player", entry.Name)
			continue
		}
		rostered[value.Name] = true
		roster = append(roster, value)
	}

	return roster, rostered, nil
}

// TeamNeedsSection renders the positional needs table and narrative.
func (a *Analyzer) TeamNeedsSection() (string, error) {
	values, err := a.PlayerValues()
	if err != nil {
		return "", err
	}

	roster, _, err := a.rosterValues(values)
	if err != nil {
		return "", err
	}

	needs := analysis.AnalyzeTeamNeeds(roster, values)

	rows := make([][]string, 0, len(needs.Needs))
	for _, n := range needs.Needs {
		rows = append(rows, []string{
			n.Position,
			fmt.Sprintf("%.2f", n.MyAvgVOR),
			fmt.Sprintf("%.2f", n.LeagueVOR),
			fmt.Sprintf("%+.2f", n.Diff),
		})
	}

	var b strings.Builder
	b.WriteString(needs.Narrative)
	if len(rows) > 0 {
		b.WriteString("\n\n")
		b.WriteString(report.Table([]string{"Position", "My Avg VOR", "League Avg VOR", "Diff"}, rows))
	}
	return b.String(), nil
}

// PickupsSection renders the top waiver wire candidates.
func (a *Analyzer) PickupsSection(limit int) (string, error) {
	values, err := a.PlayerValues()
	if err != nil {
		return "", err
	}

	_, rostered, err := a.rosterValues(values)
	if err != nil {
		return "", err
	}

	suggestions := analysis.RecommendPickups(values, rostered, limit)
	if len(suggestions) == 0 {
		return "No pickup candidates available.", nil
	}

	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			s.Name,
			s.Position,
			s.ProTeam,
			fmt.Sprintf("%.2f", s.VOR),
			fmt.Sprintf("%.2f", s.TotalPoints),
			fmt.Sprintf("%.2f", s.Consistency),
		})
	}
	return report.Table([]string{"Player", "Pos", "Team", "VOR", "Points", "Consistency"}, rows), nil
}

// TradesSection renders the sell high and buy low candidates.
func (a *Analyzer) TradesSection() (string, error) {
	scored, err := a.scoredWeeks()
	if err != nil {
		return "", err
	}

	sellHigh, buyLow := analysis.TradeTargets(scored)

	var b strings.Builder
	b.WriteString("### Sell High\n\n")
	b.WriteString(tradeTable(sellHigh, "No sell high candidates this week."))
	b.WriteString("\n### Buy Low\n\n")
	b.WriteString(tradeTable(buyLow, "No buy low candidates this week."))
	return b.String(), nil
}

func tradeTable(candidates []models.TradeCandidate, empty string) string {
	if len(candidates) == 0 {
		return empty + "\n"
	}

	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			c.Name,
			c.Position,
			fmt.Sprintf("%.2f", c.CurrentPoints),
			fmt.Sprintf("%.2f", c.AveragePoints),
			fmt.Sprintf("%+.2f", c.Difference),
		})
	}
	return report.Table([]string{"Player", "Pos", "This Week", "Season Avg", "Diff"}, rows)
}

// LineupSection solves the optimal starting lineup from the roster's
// projections. Roster players without a projection row enter the pool at
// zero points so placeholder slots like a streamed defense still fill.
func (a *Analyzer) LineupSection() (string, error) {
	entries, err := a.store.LoadRoster()
	if err != nil {
		return "", fmt.Errorf("loading roster: %w", err)
	}

	projections, err := a.store.LoadProjections()
	if err != nil {
		return "", fmt.Errorf("loading projections: %w", err)
	}

	names := make([]string, len(projections))
	for i, p := range projections {
		names[i] = p.Name
	}

	candidates := make([]models.ProjectedPlayer, 0, len(entries))
	for _, entry := range entries {
		if i, ok := analysis.MatchName(entry.Name, names); ok {
			candidate := projections[i]
			if candidate.Position == "" {
				candidate.Position = entry.Position
			}
			candidates = append(candidates, candidate)
			continue
		}
		candidates = append(candidates, models.ProjectedPlayer{
			Name:     entry.Name,
			Position: entry.Position,
		})
	}

	optimal, err := lineup.Optimize(candidates, a.league.RosterSettings)
	if err != nil {
		return "", fmt.Errorf("optimizing lineup: %w", err)
	}

	rows := make([][]string, 0, len(optimal.Assignments))
	for _, assignment := range optimal.Assignments {
		rows = append(rows, []string{
			assignment.Slot,
			assignment.Player.Name,
			assignment.Player.Position,
			fmt.Sprintf("%.2f", assignment.Player.ProjectedPoints),
		})
	}

	var b strings.Builder
	b.WriteString(report.Table([]string{"Slot", "Player", "Pos", "Projected"}, rows))
	fmt.Fprintf(&b, "\nTotal projected points: %.2f\n", optimal.TotalProjected)
	return b.String(), nil
}

// ByeConflictsSection flags weeks where several rostered players share a
// bye. byeWeeks is keyed by pro team abbreviation.
func (a *Analyzer) ByeConflictsSection(byeWeeks map[string]int) (string, error) {
	values, err := a.PlayerValues()
	if err != nil {
		return "", err
	}

	roster, _, err := a.rosterValues(values)
	if err != nil {
		return "", err
	}

	conflicts := analysis.ByeConflicts(roster, byeWeeks)
	if len(conflicts) == 0 {
		return "No bye week conflicts.", nil
	}

	rows := make([][]string, 0, len(conflicts))
	for _, c := range conflicts {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Week),
			strings.Join(c.Players, ", "),
		})
	}
	return report.Table([]string{"Week", "Players"}, rows), nil
}

// DraftSection calculates value based draft rankings and simulates my picks
// for the configured draft position.
func (a *Analyzer) DraftSection() (string, error) {
	projections, err := a.store.LoadProjections()
	if err != nil {
		return "", fmt.Errorf("loading projections: %w", err)
	}

	adpEntries, err := a.store.LoadADP()
	if err != nil {
		return "", fmt.Errorf("loading adp: %w", err)
	}

	adpNames := make([]string, len(adpEntries))
	for i, e := range adpEntries {
		adpNames[i] = e.Name
	}

	prospects := make([]draft.Prospect, 0, len(projections))
	for _, p := range projections {
		prospect := draft.Prospect{
			Name:            p.Name,
			Position:        p.Position,
			ProTeam:         p.ProTeam,
			ProjectedPoints: p.ProjectedPoints,
			ADP:             draft.UndraftedADP,
		}
		if i, ok := analysis.MatchName(p.Name, adpNames); ok {
			prospect.ADP = adpEntries[i].ADP
		}
		prospects = append(prospects, prospect)
	}

	leagueSize := a.league.LeagueSettings.NumberOfTeams
	ranked := draft.CalculateVBD(prospects, a.league.RosterSettings, leagueSize)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].VBD > ranked[j].VBD })

	topCount := 20
	if len(ranked) < topCount {
		topCount = len(ranked)
	}
	topRows := make([][]string, 0, topCount)
	for _, p := range ranked[:topCount] {
		topRows = append(topRows, []string{
			p.Name,
			p.Position,
			fmt.Sprintf("%.2f", p.ProjectedPoints),
			fmt.Sprintf("%.1f", p.ADP),
			fmt.Sprintf("%.2f", p.VBD),
		})
	}

	picks := draft.Simulate(ranked, draft.Config{
		LeagueSize:    leagueSize,
		DraftPosition: a.league.DraftPosition,
		RosterSlots:   a.league.RosterSettings,
	})

	pickRows := make([][]string, 0, len(picks))
	for _, pick := range picks {
		pickRows = append(pickRows, []string{
			fmt.Sprintf("%d", pick.Round),
			fmt.Sprintf("%d", pick.Overall),
			pick.Name,
			pick.Position,
			fmt.Sprintf("%.2f", pick.VBD),
		})
	}

	var b strings.Builder
	b.WriteString("### Top Prospects by VBD\n\n")
	b.WriteString(report.Table([]string{"Player", "Pos", "Projected", "ADP", "VBD"}, topRows))
	b.WriteString("\n### Simulated Picks\n\n")
	b.WriteString(report.Table([]string{"Round", "Overall", "Player", "Pos", "VBD"}, pickRows))
	return b.String(), nil
}

// CurrentWeek is the latest week present in the stat rows.
// CompareSection puts the named players side by side on season points,
// VOR, consistency, ADP, and projection. Names are fuzzy matched against
// the stat data; ADP and projection columns fall back to a dash when the
// player has no entry there.
func (a *Analyzer) CompareSection(names []string) (string, error) {
	values, err := a.PlayerValues()
	if err != nil {
		return "", err
	}

	adpEntries, err := a.store.LoadADP()
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return "", fmt.Errorf("loading adp: %w", err)
	}
	adpNames := make([]string, len(adpEntries))
	for i, e := range adpEntries {
		adpNames[i] = e.Name
	}

	projections, err := a.store.LoadProjections()
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return "", fmt.Errorf("loading projections: %w", err)
	}
	projNames := make([]string, len(projections))
	for i, p := range projections {
		projNames[i] = p.Name
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		value, ok := analysis.FindPlayer(name, values)
		if !ok {
			return "", fmt.Errorf("no player matching %q in the stat data", name)
		}

		adp := "-"
		if i, ok := analysis.MatchName(value.Name, adpNames); ok {
			adp = fmt.Sprintf("%.1f", adpEntries[i].ADP)
		}
		projected := "-"
		if i, ok := analysis.MatchName(value.Name, projNames); ok {
			projected = fmt.Sprintf("%.2f", projections[i].ProjectedPoints)
		}

		rows = append(rows, []string{
			value.Name,
			value.Position,
			value.ProTeam,
			fmt.Sprintf("%.2f", value.TotalPoints),
			fmt.Sprintf("%.2f", value.VOR),
			fmt.Sprintf("%.2f", value.Consistency),
			adp,
			projected,
		})
	}

	return report.Table([]string{"Player", "Pos", "Team", "Points", "VOR", "Consistency", "ADP", "Projected"}, rows), nil
}

func (a *Analyzer) CurrentWeek() (int, error) {
	stats, err := a.store.LoadPlayerStats()
	if err != nil {
		return 0, fmt.Errorf("loading player stats: %w", err)
	}

	week := 0
	for _, row := range stats {
		if row.Week > week {
			week = row.Week
		}
	}
	return week, nil
}

// WeeklyReport assembles every section into one markdown document.
func (a *Analyzer) WeeklyReport(byeWeeks map[string]int) (string, error) {
	week, err := a.CurrentWeek()
	if err != nil {
		return "", err
	}

	doc := report.NewDocument("Weekly Fantasy Report", week)

	needs, err := a.TeamNeedsSection()
	if err != nil {
		return "", err
	}
	doc.AddSection("Team Needs", needs)

	optimal, err := a.LineupSection()
	if err != nil {
		if errors.Is(err, lineup.ErrInfeasible) {
			doc.AddSection("Optimal Lineup", "The roster cannot fill every starting slot.")
		} else {
			return "", err
		}
	} else {
		doc.AddSection("Optimal Lineup", optimal)
	}

	pickups, err := a.PickupsSection(analysis.DefaultPickupLimit)
	if err != nil {
		return "", err
	}
	doc.AddSection("Waiver Wire", pickups)

	trades, err := a.TradesSection()
	if err != nil {
		return "", err
	}
	doc.AddSection("Trade Targets", trades)

	if len(byeWeeks) > 0 {
		byes, err := a.ByeConflictsSection(byeWeeks)
		if err != nil {
			return "", err
		}
		doc.AddSection("Bye Week Conflicts", byes)
	}

	return doc.Render(), nil
}

// Ask sends a question to the model together with the league context.
func (a *Analyzer) Ask(ctx context.Context, client llm.Client, question string) (string, error) {
	values, err := a.PlayerValues()
	if err != nil {
		return "", err
	}

	roster, rostered, err := a.rosterValues(values)
	if err != nil {
		return "", err
	}

	var available []models.PlayerValue
	for _, s := range analysis.RecommendPickups(values, rostered, analysis.DefaultPickupLimit) {
		available = append(available, models.PlayerValue{
			Name:        s.Name,
			Position:    s.Position,
			ProTeam:     s.ProTeam,
			TotalPoints: s.TotalPoints,
			Consistency: s.Consistency,
			VOR:         s.VOR,
		})
	}

	prompt := llm.BuildPrompt(question, llm.PromptContext{
		ScoringRules: a.league.ScoringRules,
		MyRoster:     roster,
		TopAvailable: available,
		LeagueSize:   a.league.LeagueSettings.NumberOfTeams,
	})

	return client.GenerateContent(ctx, prompt)
}
