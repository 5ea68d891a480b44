package shuriken

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/debug"
	"github.com/chubbymaggie/shuriken16/shuriken/input"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/timing"
)

// Loop drives a Runner through a Backend: one frame, then one backend
// update whose input events go through the input manager.
type Loop struct {
	runner  Runner
	backend backend.Backend
	input   *input.Manager

	testPattern bool
	running     bool
	paused      bool
	stepFrame   bool
	frames      int

	// idle is called instead of running a frame while paused
	idle func()
}

// NewLoop wires the engine actions of the input manager to the loop. Game
// buttons reach the runner when it accepts them.
func NewLoop(runner Runner, b backend.Backend) *Loop {
	l := &Loop{
		runner:  runner,
		backend: b,
		input:   input.NewManager(nil),
		idle:    func() { time.Sleep(timing.FrameDuration()) },
	}
	if sink, ok := runner.(input.ButtonSink); ok {
		l.input.SetButtonSink(sink)
	}
	_, l.testPattern = runner.(*TestPatternRunner)

	l.input.On(action.EngineQuit, event.Press, l.Stop)
	l.input.On(action.EnginePauseToggle, event.Press, l.togglePause)
	l.input.On(action.EngineStepFrame, event.Press, l.requestStep)
	l.input.On(action.EngineSnapshot, event.Press, l.snapshot)
	l.input.On(action.EngineTestPatternCycle, event.Press, func() {
		l.runner.HandleAction(action.EngineTestPatternCycle, true)
	})
	for _, act := range []action.Action{
		action.EngineDebugToggle,
		action.DebugLogLevelIncrease,
		action.DebugLogLevelDecrease,
	} {
		act := act
		l.input.On(act, event.Press, func() {
			if h, ok := l.backend.(backend.ActionHandler); ok {
				h.HandleAction(act)
			}
		})
	}

	return l
}

// Input returns the loop's input manager, for registering extra callbacks
func (l *Loop) Input() *input.Manager {
	return l.input
}

func (l *Loop) Paused() bool {
	return l.paused
}

// Frames returns the number of frames run so far
func (l *Loop) Frames() int {
	return l.frames
}

// Stop ends Run after the current iteration
func (l *Loop) Stop() {
	l.running = false
}

// Run initializes the backend with config and loops until a quit action
// or an error. The backend is always cleaned up.
func (l *Loop) Run(config backend.BackendConfig) (err error) {
	config.InputManager = l.input
	config.TestPattern = config.TestPattern || l.testPattern
	config.Callbacks.OnResize = l.runner.Resize
	config.Callbacks.DestSize = l.runner.DestSize
	onQuit := config.Callbacks.OnQuit
	config.Callbacks.OnQuit = func() {
		l.Stop()
		if onQuit != nil {
			onQuit()
		}
	}

	if err := l.backend.Init(config); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if cerr := l.backend.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to clean up backend: %w", cerr)
		}
	}()

	l.running = true
	for l.running {
		if err := l.Step(); err != nil {
			return err
		}
	}
	slog.Info("Loop finished", "frames", l.frames)
	return nil
}

// Step runs one frame unless paused, presents the current frame and
// dispatches the backend's input events
func (l *Loop) Step() error {
	if !l.paused || l.stepFrame {
		if err := l.runner.RunUntilFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", l.frames+1, err)
		}
		l.frames++
		l.stepFrame = false
	} else if l.idle != nil {
		l.idle()
	}

	events, err := l.backend.Update(l.runner.GetCurrentFrame())
	if err != nil {
		return fmt.Errorf("backend update: %w", err)
	}
	for _, evt := range events {
		l.input.Trigger(evt.Action, evt.Type)
	}
	return nil
}

func (l *Loop) togglePause() {
	l.paused = !l.paused
	if l.paused {
		slog.Info("Paused", "frame", l.frames)
	} else {
		slog.Info("Resumed", "frame", l.frames)
	}
}

// requestStep pauses the loop if needed and runs exactly one more frame
func (l *Loop) requestStep() {
	l.paused = true
	l.stepFrame = true
	slog.Debug("Step frame", "frame", l.frames+1)
}

func (l *Loop) snapshot() {
	pattern := 0
	if tp, ok := l.runner.(*TestPatternRunner); ok {
		pattern = tp.PatternType()
	}
	frame := l.runner.GetCurrentFrame()
	debug.TakeSnapshot(frame, l.runner.DestSize(), l.testPattern, pattern)
}
