package store

import (
	"time"

	"github.com/existflow/tasklist/internal/model"
	"github.com/google/uuid"
)

// Env supplies the inputs a transition cannot compute itself
type Env struct {
	Now        func() time.Time
	NewID      func() string
	TimeFormat string
}

// DefaultEnv returns the wall clock, UUIDv7 ids and the given display layout
func DefaultEnv(timeFormat string) Env {
	if timeFormat == "" {
		timeFormat = model.DefaultTimeFormat
	}
	return Env{
		Now:        time.Now,
		NewID:      newID,
		TimeFormat: timeFormat,
	}
}

// newID returns a time-ordered id, falling back to a random one if the
// v7 generator fails
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) id() string {
	if e.NewID == nil {
		return newID()
	}
	return e.NewID()
}
