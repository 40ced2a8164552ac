package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	calls atomic.Int32
}

func (f *fakeNotifier) SendDailyReminders(_ context.Context, _ time.Time) (int, error) {
	f.calls.Add(1)
	return 0, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler("not a cron spec", &fakeNotifier{}, noopLogger{})
	assert.ErrorIs(t, err, ErrSchedule)
}

func TestScheduler_RunsJob(t *testing.T) {
	notifier := &fakeNotifier{}
	s, err := NewScheduler("0 8 * * *", notifier, noopLogger{})
	require.NoError(t, err)

	s.Start()
	s.run()
	s.Stop()

	assert.Equal(t, int32(1), notifier.calls.Load())
}
