package country

import (
	"context"
	"sync"
	"testing"
	"time"

	"countryfx/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(domain.RefreshResult)
	return res, args.Error(1)
}

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(new(MockRefresher), 10*time.Second)
	require.NotNil(t, s)
	require.False(t, s.running())
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(new(MockRefresher), 10*time.Second)
	err := s.Shutdown()
	require.NoError(t, err)
	require.False(t, s.running())
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	refresher := new(MockRefresher)
	refresher.On("Refresh", mock.Anything).Return(domain.RefreshResult{}, nil).Maybe()
	s := NewScheduler(refresher, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	cancel()

	// Wait until the ctx-cancel goroutine shuts the scheduler down
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !s.running() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.False(t, s.running(), "expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	refresher := new(MockRefresher)
	refresher.On("Refresh", mock.Anything).Return(domain.RefreshResult{}, nil).Maybe()
	s := NewScheduler(refresher, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	require.NoError(t, s.Shutdown())
	require.False(t, s.running())
	require.NoError(t, s.Shutdown())
}

func TestScheduler_ConcurrentShutdown_Safe(t *testing.T) {
	refresher := new(MockRefresher)
	refresher.On("Refresh", mock.Anything).Return(domain.RefreshResult{}, nil).Maybe()
	s := NewScheduler(refresher, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))

	// cancel races the explicit Shutdown calls; exactly one of them wins,
	// the rest must be harmless no-ops
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, s.Shutdown())
		}()
	}
	cancel()
	wg.Wait()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !s.running() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.False(t, s.running())
}
