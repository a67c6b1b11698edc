package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedulerRejectsBadCron(t *testing.T) {
	_, err := NewScheduler("not a cron line", nil, nil)
	assert.Error(t, err)
}

func TestNewSchedulerAcceptsStandardCron(t *testing.T) {
	s, err := NewScheduler("30 7 * * 2", nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Stop())
}

func TestSendWeeklyReport(t *testing.T) {
	var sent string
	s, err := NewScheduler("30 7 * * 2",
		func() (string, error) { return "report body", nil },
		func(message string) error {
			sent = message
			return nil
		},
	)
	require.NoError(t, err)
	defer s.Stop()

	s.sendWeeklyReport()
	assert.Equal(t, "report body", sent)
}
