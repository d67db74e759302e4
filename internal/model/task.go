package model

import (
	"strings"
	"time"
)

// DefaultTimeFormat is the display layout for task creation timestamps
const DefaultTimeFormat = "Jan 2, 2006 3:04:05 PM"

// Task represents a single todo item
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Created   string    `json:"created"` // Display form of CreatedAt
	CreatedAt time.Time `json:"created_at"`
	Completed bool      `json:"completed"`
}

// NewTask creates an open task stamped with now
func NewTask(id, text string, now time.Time, layout string) Task {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return Task{
		ID:        id,
		Text:      text,
		Created:   now.Local().Format(layout),
		CreatedAt: now,
		Completed: false,
	}
}

// IsBlank reports whether text has nothing but whitespace
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
