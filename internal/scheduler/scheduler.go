// Package scheduler runs the weekly report on a cron expression from the
// league config.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// Scheduler publishes the weekly report on the configured schedule.
type Scheduler struct {
	s           gocron.Scheduler
	schedule    string
	buildReport func() (string, error)
	sendMessage func(string) error
}

// NewScheduler validates the cron expression up front so a bad schedule
// fails at startup rather than silently never firing.
func NewScheduler(schedule string, buildReport func() (string, error), sendMessage func(string) error) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", schedule, err)
	}

	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		schedule:    schedule,
		buildReport: buildReport,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.CronJob(s.schedule, false),
		gocron.NewTask(s.sendWeeklyReport),
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly report job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendWeeklyReport() {
	rendered, err := s.buildReport()
	if err != nil {
		slog.Error("Failed to build weekly report", "error", err)
		return
	}
	if err := s.sendMessage(rendered); err != nil {
		slog.Error("Failed to send weekly report", "error", err)
	}
}
