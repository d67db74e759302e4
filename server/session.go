package server

import (
	"sync"

	"github.com/existflow/tasklist/internal/logger"
	"github.com/existflow/tasklist/internal/store"
)

// Session owns one task list for the lifetime of the server. Requests are
// applied one at a time so the store sees a single serialized actor.
type Session struct {
	mu    sync.Mutex
	env   store.Env
	state store.State
}

// NewSession creates an empty session
func NewSession(env store.Env) *Session {
	return &Session{env: env, state: store.New()}
}

// Apply runs a against the current state and returns the result
func (s *Session) Apply(a store.Action) store.State {
	return s.ApplyWith(func(store.State) store.Action { return a })
}

// ApplyWith builds the action from the current state and applies it under
// the same lock
func (s *Session) ApplyWith(build func(store.State) store.Action) store.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := build(s.state)
	s.state = store.Reduce(s.env, s.state, a)
	if a != nil {
		logger.Debug("Applied intent",
			logger.F("action", a.Name()),
			logger.F("tasks", s.state.Len()),
			logger.F("dialog", s.state.Dialog().Kind.String()))
	}
	return s.state
}

// State returns the current state
func (s *Session) State() store.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
