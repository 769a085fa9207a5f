package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"FuturesReport/internal/calculator"
	"FuturesReport/internal/collector"
	"FuturesReport/internal/model"
	"FuturesReport/internal/notifier"
)

// Sender delivers a formatted report.
type Sender interface {
	Send(text string) error
}

// Scheduler runs the generate-analyze-report pipeline, once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  Sender
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Overlapping cron ticks are skipped so the
// collector's random source is only ever consumed by one run at a time.
func NewScheduler(ctx context.Context, col *collector.Collector, n Sender) *Scheduler {
	logger := cron.VerbosePrintfLogger(log.New(os.Stderr, "cron: ", log.LstdFlags))
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(logger)),
		),
		Collector: col,
		Notifier:  n,
		Ctx:       ctx,
	}
}

// Register schedules a report run for every tick of the cron expression expr.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running report to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one full report run and returns its summary.
func (s *Scheduler) RunNow() (*model.Summary, error) {
	if err := s.Ctx.Err(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	log.Printf("[INFO] run %s: starting", runID)

	series, err := s.Collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	sum, err := calculator.Summarize(series)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	if err := s.Notifier.Send(notifier.FormatReport(sum)); err != nil {
		return nil, fmt.Errorf("send report: %w", err)
	}

	log.Printf("[INFO] run %s: done, %d days %s..%s", runID, sum.Days, sum.From, sum.To)
	return sum, nil
}

func (s *Scheduler) reportTask() {
	if _, err := s.RunNow(); err != nil {
		log.Printf("[ERROR] scheduled report: %v", err)
	}
}
