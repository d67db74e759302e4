package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/tasklist/internal/logger"
	"github.com/existflow/tasklist/internal/model"
	"github.com/existflow/tasklist/internal/store"
)

// Mode represents where keystrokes go when no dialog is open
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeHelp
)

// Model is the main TUI model
type Model struct {
	env   store.Env
	state store.State

	// UI state
	width  int
	height int
	mode   Mode
	cursor int

	// Input
	input     textinput.Model // add-task draft
	editInput textinput.Model // edit dialog draft

	message string
}

// NewModel creates a TUI model over an empty task list
func NewModel(env store.Env) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Add a new task"
	ti.Width = 50

	ei := textinput.New()
	ei.Placeholder = "Task text"
	ei.Width = 50

	return Model{
		env:       env,
		state:     store.New(),
		mode:      ModeNormal,
		input:     ti,
		editInput: ei,
	}
}

// State returns the task list state being rendered
func (m Model) State() store.State {
	return m.state
}

// dispatch applies an intent to the state and keeps the cursor in range
func (m *Model) dispatch(a store.Action) {
	m.state = store.Reduce(m.env, m.state, a)
	m.cursor = clamp(m.cursor, m.state.Len())
	logger.Debug("Applied intent",
		logger.F("action", a.Name()),
		logger.F("tasks", m.state.Len()),
		logger.F("dialog", m.state.Dialog().Kind.String()))
}

func (m *Model) currentTask() (model.Task, bool) {
	tasks := m.state.Tasks()
	if m.cursor < len(tasks) {
		return tasks[m.cursor], true
	}
	return model.Task{}, false
}
