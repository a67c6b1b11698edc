package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridironhq/gridiron/internal/config"
	"github.com/gridironhq/gridiron/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about the league",
	Long:  "Sends a free-form question to the configured model together with the league scoring rules, roster values, and top available players.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	analyzer, league, err := newAnalyzer()
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.LLM.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := llm.NewClient(cmd.Context(), league.LLMSettings.Provider, league.LLMSettings.Model, cfg.LLM.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	answer, err := analyzer.Ask(cmd.Context(), client, strings.Join(args, " "))
	if err != nil {
		return err
	}

	return emit("", answer)
}
