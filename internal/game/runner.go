package game

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Runner owns a Game and drives it from a single goroutine. Input arrives
// through one event queue; state leaves as immutable snapshots. Nothing
// else may touch the Game while Run is active.
type Runner struct {
	game   *Game
	events chan Event
	frames chan Snapshot
	done   chan struct{}
	latest atomic.Pointer[Snapshot]

	tickEvery   time.Duration
	secondEvery time.Duration
	logger      *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTickInterval overrides the simulation period from the config.
func WithTickInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.tickEvery = d }
}

// WithCountdownInterval overrides the length of one countdown step.
func WithCountdownInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.secondEvery = d }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner wraps a game. The game must not be used directly afterwards.
func NewRunner(g *Game, opts ...RunnerOption) *Runner {
	r := &Runner{
		game:        g,
		events:      make(chan Event, 64),
		frames:      make(chan Snapshot, 1),
		done:        make(chan struct{}),
		tickEvery:   g.Config().TickInterval(),
		secondEvery: time.Second,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.publish()
	return r
}

// Send queues an event. It blocks while the queue is full and returns false
// once the runner has stopped.
func (r *Runner) Send(ev Event) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

// Latest returns the most recently published snapshot.
func (r *Runner) Latest() Snapshot {
	return *r.latest.Load()
}

// Frames delivers published snapshots. Only the newest unread snapshot is
// kept; the channel is closed when Run returns.
func (r *Runner) Frames() <-chan Snapshot {
	return r.frames
}

// Run processes events and ticks until ctx is cancelled. The simulation
// ticker runs only while the game is Running and the countdown ticker only
// while a countdown is counting. Sleeps are fixed; late ticks are not
// made up.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.frames)
	defer close(r.done)

	var tick, second switchTicker
	defer tick.stop()
	defer second.stop()

	arm := func() {
		tick.set(r.game.Phase() == PhaseRunning, r.tickEvery)
		second.set(r.game.Counting(), r.secondEvery)
	}
	arm()
	r.publish()

	r.logger.Debug("runner started", "tick", r.tickEvery)
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopped", "reason", ctx.Err())
			return ctx.Err()

		case ev := <-r.events:
			r.game.Handle(ev)

		case <-tick.c:
			r.game.Tick()

		case <-second.c:
			r.game.Handle(Second())
		}
		arm()
		r.publish()
	}
}

// publish stores a fresh snapshot and offers it to the frame channel,
// replacing a stale unread one.
func (r *Runner) publish() {
	snap := r.game.Snapshot()
	r.latest.Store(&snap)

	select {
	case <-r.frames:
	default:
	}
	select {
	case r.frames <- snap:
	default:
	}
}

// switchTicker is a ticker that can be turned on and off. Turning it on
// restarts the period, so a countdown step always lasts a full interval.
type switchTicker struct {
	t *time.Ticker
	c <-chan time.Time
}

func (s *switchTicker) set(on bool, every time.Duration) {
	switch {
	case on && s.t == nil:
		s.t = time.NewTicker(every)
		s.c = s.t.C
	case !on && s.t != nil:
		s.stop()
	}
}

func (s *switchTicker) stop() {
	if s.t != nil {
		s.t.Stop()
	}
	s.t = nil
	s.c = nil
}
