package scheduler

import (
	"context"
	"time"

	"github.com/gestio-app/gestio/internal/shared/logger"
)

// ReminderProcessor defines the interface for processing reminders
type ReminderProcessor interface {
	ProcessReminders(ctx context.Context) error
}

// ReminderScheduler runs periodic expiry reminder checks
type ReminderScheduler struct {
	processor ReminderProcessor
	logger    logger.Interface
	stopChan  chan struct{}
	interval  time.Duration
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(
	processor ReminderProcessor,
	intervalHours int,
	logger logger.Interface,
) *ReminderScheduler {
	if intervalHours <= 0 {
		intervalHours = 24
	}
	return &ReminderScheduler{
		processor: processor,
		logger:    logger,
		stopChan:  make(chan struct{}),
		interval:  time.Duration(intervalHours) * time.Hour,
	}
}

// Start starts the scheduler and blocks until stopped
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting reminder scheduler", "interval", s.interval)

	// Run immediately on start
	s.processReminders(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("reminder scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.processReminders(ctx)
		}
	}
}

// Stop stops the scheduler
func (s *ReminderScheduler) Stop() {
	close(s.stopChan)
}

func (s *ReminderScheduler) processReminders(ctx context.Context) {
	s.logger.Debugw("processing reminders task started")

	if err := s.processor.ProcessReminders(ctx); err != nil {
		s.logger.Errorw("failed to process reminders", "error", err)
		return
	}

	s.logger.Debugw("reminders processed successfully")
}
