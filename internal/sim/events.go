package sim

import "time"

// RunEnd is emitted when a run terminates, either because the bodies
// diverged or because the user asked for a reset. Duration is measured
// from the run's (re)initialization.
type RunEnd struct {
	Duration time.Duration
	Diverged bool
}

// Observer receives run-ended events synchronously, before the next
// step can start. Persistence and display live behind this interface;
// the simulation knows nothing about them.
type Observer interface {
	OnRunEnd(RunEnd)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(RunEnd)

func (f ObserverFunc) OnRunEnd(e RunEnd) { f(e) }
