package service

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// EarningsResetWorker zeroes every user's todayEarning on a cron schedule.
type EarningsResetWorker struct {
	userSvc  *UserService
	schedule string
	log      *logrus.Entry
}

func NewEarningsResetWorker(userSvc *UserService, schedule string, logger logrus.FieldLogger) *EarningsResetWorker {
	return &EarningsResetWorker{
		userSvc:  userSvc,
		schedule: schedule,
		log:      logger.WithField("worker", "earnings_reset"),
	}
}

// Start blocks until ctx is cancelled. It fails fast on an invalid schedule.
func (w *EarningsResetWorker) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(w.schedule, func() { w.RunOnce(ctx) }); err != nil {
		return err
	}

	w.log.WithField("schedule", w.schedule).Info("started")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	w.log.Info("stopped")
	return nil
}

// RunOnce performs a single reset pass.
func (w *EarningsResetWorker) RunOnce(ctx context.Context) {
	n, err := w.userSvc.ResetTodayEarnings(ctx)
	if err != nil {
		w.log.WithError(err).Error("failed to reset today earnings")
		return
	}
	w.log.WithField("users", n).Info("today earnings reset")
}
