package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"focusring/internal/core/model"

	"github.com/looplab/fsm"
)

// Pulser emits a short completion cue. It is fire-and-forget: the engine
// never waits for it and never observes whether it worked.
type Pulser interface {
	Pulse()
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

// Machine states are the cross product of {focus, break} and {idle, running}.
const (
	stateFocusIdle    = "focus_idle"
	stateFocusRunning = "focus_running"
	stateBreakIdle    = "break_idle"
	stateBreakRunning = "break_running"
)

const (
	eventStart    = "start"
	eventStop     = "stop"
	eventComplete = "complete"
)

// Engine is the countdown state machine behind the timer screen. It owns the
// remaining time, flips between focus and break when a phase runs out, and
// fans every mutation out to subscribed observers.
type Engine struct {
	mu        sync.Mutex
	config    model.EngineConfig
	options   Config
	machine   *fsm.FSM
	remaining time.Duration
	pulser    Pulser
	events    []chan Event
	stopCh    chan struct{}
	closed    bool
}

// New creates an Engine resting in focus mode with a full countdown.
func New(config model.EngineConfig, options Config) *Engine {
	if config.FocusDuration <= 0 {
		config.FocusDuration = model.DefaultFocusDuration
	}
	if config.BreakDuration <= 0 {
		config.BreakDuration = model.DefaultBreakDuration
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = realClock{}
	}

	eng := &Engine{
		config:    config,
		options:   options,
		remaining: config.FocusDuration,
	}
	eng.machine = fsm.NewFSM(
		stateFocusIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{stateFocusIdle}, Dst: stateFocusRunning},
			{Name: eventStart, Src: []string{stateBreakIdle}, Dst: stateBreakRunning},
			{Name: eventStop, Src: []string{stateFocusRunning}, Dst: stateFocusIdle},
			{Name: eventStop, Src: []string{stateBreakRunning}, Dst: stateBreakIdle},
			{Name: eventComplete, Src: []string{stateFocusRunning}, Dst: stateBreakRunning},
			{Name: eventComplete, Src: []string{stateBreakRunning}, Dst: stateFocusRunning},
		},
		fsm.Callbacks{},
	)
	return eng
}

// SetPulser injects the completion cue.
func (eng *Engine) SetPulser(pulser Pulser) {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	eng.pulser = pulser
}

// Subscribe registers a new observer channel. Events are delivered with a
// non-blocking send; a slow observer misses updates instead of stalling the
// countdown.
func (eng *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	eng.mu.Lock()
	eng.events = append(eng.events, ch)
	eng.mu.Unlock()
	return ch
}

// Start begins the countdown. It is a no-op when the engine is already
// running or the countdown has reached zero.
func (eng *Engine) Start() {
	eng.mu.Lock()
	if eng.closed || eng.runningLocked() || eng.remaining <= 0 {
		eng.mu.Unlock()
		return
	}
	if err := eng.machine.Event(context.Background(), eventStart); err != nil {
		eng.mu.Unlock()
		return
	}
	eng.stopCh = make(chan struct{})
	stopCh := eng.stopCh
	eng.emitLocked(eng.eventLocked(EventStateChange, eng.options.Clock.Now()))
	eng.mu.Unlock()

	go eng.run(stopCh)
}

// Stop cancels the countdown loop. Idempotent.
func (eng *Engine) Stop() {
	eng.mu.Lock()
	if !eng.runningLocked() {
		eng.mu.Unlock()
		return
	}
	_ = eng.machine.Event(context.Background(), eventStop)
	eng.haltLoopLocked()
	eng.emitLocked(eng.eventLocked(EventStateChange, eng.options.Clock.Now()))
	eng.mu.Unlock()
}

// Reset stops the countdown and restores the full duration of the current
// mode. The mode itself is preserved.
func (eng *Engine) Reset() {
	eng.mu.Lock()
	if eng.runningLocked() {
		_ = eng.machine.Event(context.Background(), eventStop)
		eng.haltLoopLocked()
	}
	eng.remaining = eng.config.DurationFor(eng.modeLocked())
	eng.emitLocked(eng.eventLocked(EventStateChange, eng.options.Clock.Now()))
	eng.mu.Unlock()
}

// Close terminates the engine and closes all observer channels.
func (eng *Engine) Close() {
	eng.mu.Lock()
	if eng.closed {
		eng.mu.Unlock()
		return
	}
	eng.closed = true
	if eng.runningLocked() {
		_ = eng.machine.Event(context.Background(), eventStop)
	}
	eng.haltLoopLocked()
	events := eng.events
	eng.events = nil
	eng.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a copy of the observable state.
func (eng *Engine) Snapshot() Snapshot {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return Snapshot{
		Mode:      eng.modeLocked(),
		Running:   eng.runningLocked(),
		Remaining: eng.remaining,
	}
}

// Mode returns the current Pomodoro phase.
func (eng *Engine) Mode() model.Mode {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.modeLocked()
}

// Running reports whether the countdown loop is active.
func (eng *Engine) Running() bool {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.runningLocked()
}

// Remaining returns the time left in the current phase.
func (eng *Engine) Remaining() time.Duration {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.remaining
}

// FormattedTime returns the remaining time as zero-padded MM:SS.
func (eng *Engine) FormattedTime() string {
	return FormatClock(eng.Remaining())
}

func (eng *Engine) run(stopCh chan struct{}) {
	ticks, stop := eng.options.Clock.Ticker(eng.options.TickInterval)
	defer stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticks:
			eng.tick(tickTime)
		}
	}
}

func (eng *Engine) tick(tickTime time.Time) {
	eng.mu.Lock()
	if !eng.runningLocked() {
		eng.mu.Unlock()
		return
	}

	eng.remaining -= eng.options.TickInterval
	if eng.remaining > 0 {
		eng.emitLocked(eng.eventLocked(EventTick, tickTime))
		eng.mu.Unlock()
		return
	}
	eng.completeLocked(tickTime)
	eng.mu.Unlock()
}

// completeLocked runs the phase-completion sequence: cue, mode flip, fresh
// countdown. The loop keeps ticking, so the opposite phase starts without a
// pause.
func (eng *Engine) completeLocked(tickTime time.Time) {
	eng.remaining = 0
	if pulser := eng.pulser; pulser != nil {
		go pulser.Pulse()
	}
	if err := eng.machine.Event(context.Background(), eventComplete); err != nil {
		return
	}
	eng.remaining = eng.config.DurationFor(eng.modeLocked())
	eng.emitLocked(eng.eventLocked(EventModeChange, tickTime))
}

func (eng *Engine) haltLoopLocked() {
	if eng.stopCh != nil {
		close(eng.stopCh)
		eng.stopCh = nil
	}
}

func (eng *Engine) modeLocked() model.Mode {
	if strings.HasPrefix(eng.machine.Current(), "break") {
		return model.ModeBreak
	}
	return model.ModeFocus
}

func (eng *Engine) runningLocked() bool {
	return strings.HasSuffix(eng.machine.Current(), "_running")
}

func (eng *Engine) progressLocked() float64 {
	total := eng.config.DurationFor(eng.modeLocked())
	if total <= 0 {
		return 1
	}
	progress := float64(total-eng.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (eng *Engine) eventLocked(eventType EventType, at time.Time) Event {
	return Event{
		Type:      eventType,
		Mode:      eng.modeLocked(),
		Running:   eng.runningLocked(),
		Remaining: eng.remaining,
		Progress:  eng.progressLocked(),
		Clock:     FormatClock(eng.remaining),
		At:        at,
	}
}

func (eng *Engine) emitLocked(event Event) {
	for _, ch := range eng.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// FormatClock renders a countdown as zero-padded MM:SS.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
