// Package scheduler runs the periodic inactivity scan inside the scanner binary.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"lifelog/config"
	"lifelog/internal/delivery"
	"lifelog/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the scan scheduler
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Scan   usecase.ScanUsecase
}

// scanScheduler triggers a scan run on a fixed ticker. Overlap between runs
// is harmless: the delivery transition is conditional, so a letter picked up
// by two runs is delivered exactly once.
type scanScheduler struct {
	interval time.Duration
	logger   *slog.Logger
	scan     usecase.ScanUsecase
	stop     chan struct{}
}

// New creates the ticker-driven scan scheduler.
func New(params Params) delivery.Delivery {
	s := &scanScheduler{
		interval: params.Cfg.Scanner.Interval,
		logger:   params.Logger,
		scan:     params.Scan,
		stop:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s
}

// Serve runs scan cycles until the scheduler is stopped.
func (s *scanScheduler) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Starting scan scheduler", slog.Duration("interval", s.interval))

	// Run once right away so a freshly deployed scanner does not wait a
	// full interval before catching up on overdue letters.
	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scan scheduler stopped")

			return nil
		case <-s.stop:
			s.logger.Info("Scan scheduler stopped")

			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *scanScheduler) runOnce(ctx context.Context) {
	report, err := s.scan.RunScan(ctx)
	if err != nil {
		s.logger.Error("Scan run failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Scan run completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("delivered", report.Delivered),
		slog.Int("warned", report.Warned),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
}
