package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adpapi "github.com/gridironhq/gridiron/internal/api/adp"
	"github.com/gridironhq/gridiron/internal/api/espn"
	"github.com/gridironhq/gridiron/internal/api/sleeper"
	"github.com/gridironhq/gridiron/internal/bot"
	"github.com/gridironhq/gridiron/internal/config"
	"github.com/gridironhq/gridiron/internal/repository/memory"
	"github.com/gridironhq/gridiron/internal/scheduler"
	"github.com/gridironhq/gridiron/internal/service"
	"github.com/gridironhq/gridiron/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the report scheduler and Telegram bot",
	Long:  "Refreshes datasets and delivers the weekly report to the league chat on the configured schedule. The bot also answers commands in the chat.",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	league, err := loadLeague()
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	st := store.New(league.DataDir)
	repo := memory.NewRepository(24 * time.Hour)
	espnAPI := espn.NewAPI(espn.NewClient(cfg.ESPNAPI))

	fetcher := service.NewFetcher(espnAPI, sleeper.NewClient(), adpapi.NewClient(), st, repo, league, cfg.ESPNAPI.Year)
	analyzer := service.NewAnalyzer(league, st)

	handler := bot.NewHandler(analyzer)
	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, handler)
	if err != nil {
		return err
	}

	buildReport := func() (string, error) {
		if err := fetcher.Refresh(); err != nil {
			slog.Error("Failed to refresh datasets, reporting on cached data", "error", err)
		}
		return analyzer.WeeklyReport(repo.GetByeWeeks())
	}

	sched, err := scheduler.NewScheduler(league.ReportSchedule, buildReport, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
