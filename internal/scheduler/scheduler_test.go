package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/scheduler"
	"kvtranslate/backend/internal/service"
)

type maintenanceStub struct {
	calls atomic.Int32
	block bool
	err   error
}

func (m *maintenanceStub) Sweep(ctx context.Context) (service.SweepResult, error) {
	m.calls.Add(1)
	if m.block {
		<-ctx.Done()
		return service.SweepResult{}, ctx.Err()
	}
	return service.SweepResult{}, m.err
}

func TestScheduler_SweepsImmediatelyAndOnTick(t *testing.T) {
	stub := &maintenanceStub{err: errors.New("database is locked")}
	s := scheduler.New(stub, 20*time.Millisecond)
	s.Start()

	require.Eventually(t, func() bool { return stub.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()

	n := stub.calls.Load()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, n, stub.calls.Load())
}

func TestScheduler_StopCancelsRunningSweep(t *testing.T) {
	stub := &maintenanceStub{block: true}
	s := scheduler.New(stub, time.Hour)
	s.Start()

	require.Eventually(t, func() bool { return stub.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the running sweep")
	}
}
