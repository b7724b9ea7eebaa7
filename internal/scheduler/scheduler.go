package scheduler

import (
	"context"
	"sync"
	"time"

	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/service"
)

// Scheduler runs the maintenance sweep on a fixed interval.
type Scheduler struct {
	maintenance service.MaintenanceService
	interval    time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	cancelFunc  context.CancelFunc // cancels the running sweep
	mu          sync.Mutex         // protects cancelFunc
}

func New(maintenance service.MaintenanceService, interval time.Duration) *Scheduler {
	return &Scheduler{
		maintenance: maintenance,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "sweep", "resource", "storage", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a running sweep and waits for the loop to exit. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "sweep", "resource", "storage", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if _, err := s.maintenance.Sweep(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled sweep cancelled", "module", "scheduler", "action", "sweep", "resource", "storage", "result", "cancelled")
			return
		}
		logger.Error("scheduled sweep failed", "module", "scheduler", "action", "sweep", "resource", "storage", "result", "failed", "error", err)
	}
}
