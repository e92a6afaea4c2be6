package country

import (
	"context"
	"errors"
	"sync"
	"time"

	"countryfx/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

type Refresher interface {
	Refresh(ctx context.Context) (domain.RefreshResult, error)
}

// Scheduler re-runs the refresh pipeline on a fixed interval.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	// -----
	mu    sync.Mutex // guards sched: Shutdown races the ctx-cancel goroutine
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		res, refErr := s.refresher.Refresh(jobCtx)
		if refErr != nil {
			if errors.Is(refErr, domain.ErrRefreshInProgress) {
				logrus.Info("Scheduled refresh skipped, another refresh is running")
				return
			}
			logrus.Errorf("Scheduled refresh failed: %v", refErr)
			return
		}
		logrus.Infof("Scheduled refresh done, %d countries processed", res.Processed)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

// Shutdown is idempotent and safe to call from several goroutines.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{refresher: refresher, interval: interval}
}
