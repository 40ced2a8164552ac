// Package jobs schedules the background work of the service, currently
// the daily WhatsApp reminder fan-out.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

var ErrSchedule = errors.New("jobs: failed to schedule job")

type Notifier interface {
	SendDailyReminders(ctx context.Context, date time.Time) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler runs the reminder fan-out on a cron spec, typically every
// morning before opening time.
type Scheduler struct {
	cron     *cron.Cron
	notifier Notifier
	logger   Logger
}

func NewScheduler(spec string, notifier Notifier, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		notifier: notifier,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("[Scheduler] Reminder scheduler started")
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("[Scheduler] Reminder scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	now := time.Now()
	total, err := s.notifier.SendDailyReminders(ctx, now)
	if err != nil {
		s.logger.Error("[Scheduler] Reminder run for %s failed: %v", now.Format("2006-01-02"), err)
		return
	}

	s.logger.Info("[Scheduler] Reminder run for %s sent %d notifications", now.Format("2006-01-02"), total)
}
