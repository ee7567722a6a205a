package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/cubibird/internal/config"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func startRunner(t *testing.T, r *Runner) (cancel func() error) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()

	return func() error {
		stop()
		select {
		case err := <-errCh:
			return err
		case <-time.After(2 * time.Second):
			t.Fatal("runner did not stop")
			return nil
		}
	}
}

func TestRunnerPublishesInitialSnapshot(t *testing.T) {
	r := NewRunner(New(config.DefaultConfig(), 1, "Tester"))

	if got := r.Latest(); got.Phase != PhaseAwaitingStart || got.Name != "Tester" {
		t.Errorf("Latest() = phase %v, name %q", got.Phase, got.Name)
	}

	select {
	case snap := <-r.Frames():
		if snap.Countdown != 3 {
			t.Errorf("initial frame countdown = %d, expected 3", snap.Countdown)
		}
	default:
		t.Error("a frame should be available before Run")
	}
}

func TestRunnerCountsDownAndTicks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Countdown.Seconds = 2
	cfg.Physics.Gravity = 0

	r := NewRunner(New(cfg, 7, "Tester"),
		WithTickInterval(time.Millisecond),
		WithCountdownInterval(2*time.Millisecond),
	)
	stop := startRunner(t, r)

	waitFor(t, "running with ticks", func() bool {
		s := r.Latest()
		return s.Phase == PhaseRunning && s.Ticks > 5
	})

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

func TestRunnerHandlesEvents(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Countdown.AutoStart = false

	r := NewRunner(New(cfg, 7, "Tester"),
		WithTickInterval(time.Millisecond),
		WithCountdownInterval(time.Millisecond),
	)
	stop := startRunner(t, r)
	defer stop()

	// Nothing happens until the control is pressed
	time.Sleep(10 * time.Millisecond)
	if s := r.Latest(); s.Counting || s.Countdown != 3 {
		t.Fatalf("countdown should wait for a press, got counting=%v countdown=%d", s.Counting, s.Countdown)
	}

	if !r.Send(Press()) {
		t.Fatal("Send() should succeed while running")
	}
	waitFor(t, "countdown to finish", func() bool {
		return r.Latest().Phase == PhaseRunning
	})

	if !r.Send(Restart("Again")) {
		t.Fatal("Send() should succeed while running")
	}
	waitFor(t, "restart", func() bool {
		s := r.Latest()
		return s.Name == "Again" && s.Phase == PhaseAwaitingStart
	})
}

func TestRunnerFramesKeepNewest(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Countdown.Seconds = 0
	cfg.Physics.Gravity = 0

	r := NewRunner(New(cfg, 7, "Tester"), WithTickInterval(time.Millisecond))
	stop := startRunner(t, r)

	waitFor(t, "some ticks", func() bool { return r.Latest().Ticks > 10 })

	first := <-r.Frames()
	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v", err)
	}

	// Whatever is still buffered is never older than what was already read
	for snap := range r.Frames() {
		if snap.Ticks < first.Ticks {
			t.Errorf("frames went backwards: %d then %d", first.Ticks, snap.Ticks)
		}
	}
	if r.Send(Press()) {
		t.Error("Send() should fail after the runner stopped")
	}
}
