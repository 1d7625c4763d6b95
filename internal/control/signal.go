// Package control holds the run state shared between the update loop
// and whatever drives it: OS signal handlers, the system service
// manager and the HTTP control server.
package control

import (
	"context"
	"sync"
)

type State uint8

const (
	Run State = iota
	Pause
	Stop
)

func (s State) String() string {
	switch s {
	case Run:
		return "running"
	case Pause:
		return "paused"
	case Stop:
		return "stopped"
	default:
		return "unknown"
	}
}

// Signal is a single-value broadcast of the current State.
// Readers can block until the value changes. Once set to Stop,
// the value never changes again.
type Signal struct {
	mutex   sync.Mutex
	state   State
	changed chan struct{}
}

func NewSignal() *Signal {
	return &Signal{
		state:   Run,
		changed: make(chan struct{}),
	}
}

// Set sets the state and wakes up all waiters. It returns false
// if the state is already Stop, in which case it is left unchanged.
func (s *Signal) Set(state State) (ok bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.state == Stop {
		return false
	}
	if s.state == state {
		return true
	}
	s.state = state
	close(s.changed)
	s.changed = make(chan struct{})
	return true
}

func (s *Signal) Get() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

// Watch returns the current state and a channel closed
// on the next state change.
func (s *Signal) Watch() (state State, changed <-chan struct{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state, s.changed
}

// WaitFor blocks until the state is one of the states given,
// or the context is done. It returns the state reached.
func (s *Signal) WaitFor(ctx context.Context, states ...State) (
	state State, err error) {
	for {
		state, changed := s.Watch()
		for _, wanted := range states {
			if state == wanted {
				return state, nil
			}
		}
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-changed:
		}
	}
}
