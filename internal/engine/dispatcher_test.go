package engine

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAdvancer struct {
	mu     sync.Mutex
	epochs []uint64
	fired  chan struct{}
}

func (r *recordingAdvancer) Advance(ctx context.Context, epoch uint64) {
	r.mu.Lock()
	r.epochs = append(r.epochs, epoch)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *recordingAdvancer) recorded() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint64(nil), r.epochs...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestDispatcher_ScheduleNeverBlocks(t *testing.T) {
	d := NewDispatcher(testLogger())

	// No worker is draining; repeated schedules must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			d.Schedule(uint64(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Schedule blocked with no consumer")
	}
}

func TestDispatcher_NewerSignalReplacesPending(t *testing.T) {
	d := NewDispatcher(testLogger())
	adv := &recordingAdvancer{fired: make(chan struct{}, 10)}

	// No worker yet: the first signal sits in the channel when the
	// second one arrives.
	d.Schedule(1)
	d.Schedule(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx, adv)

	select {
	case <-adv.fired:
	case <-time.After(time.Second):
		t.Fatal("continuation never fired")
	}

	require.Equal(t, []uint64{2}, adv.recorded())
}

func TestDispatcher_RunInvokesAdvance(t *testing.T) {
	d := NewDispatcher(testLogger())
	adv := &recordingAdvancer{fired: make(chan struct{}, 10)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx, adv)

	d.Schedule(3)
	select {
	case <-adv.fired:
	case <-time.After(time.Second):
		t.Fatal("continuation never fired")
	}

	d.Schedule(4)
	select {
	case <-adv.fired:
	case <-time.After(time.Second):
		t.Fatal("second continuation never fired")
	}

	require.Equal(t, []uint64{3, 4}, adv.recorded())
}

func TestDispatcher_RunStopsOnCancel(t *testing.T) {
	d := NewDispatcher(testLogger())
	adv := &recordingAdvancer{fired: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		d.Run(ctx, adv)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on cancel")
	}
	assert.Empty(t, adv.recorded())
}
