package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tasklist/internal/store"
)

// Init starts the cursor blink of the text inputs
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// An open dialog captures all keys
		switch m.state.Dialog().Kind {
		case store.DialogEdit:
			return m.updateEdit(msg)
		case store.DialogConfirmDelete, store.DialogConfirmDeleteAll:
			return m.updateConfirm(msg)
		}

		switch m.mode {
		case ModeAddTask:
			return m.updateAddInput(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}

		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < m.state.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Top):
		m.cursor = 0

	case key.Matches(msg, keys.Bottom):
		m.cursor = clamp(m.state.Len()-1, m.state.Len())

	case key.Matches(msg, keys.Add):
		return m.startAddTask()

	case key.Matches(msg, keys.Toggle):
		if task, ok := m.currentTask(); ok {
			m.dispatch(store.ToggleComplete{ID: task.ID})
		}

	case key.Matches(msg, keys.Edit):
		return m.startEditTask()

	case key.Matches(msg, keys.Delete):
		if task, ok := m.currentTask(); ok {
			m.dispatch(store.RequestDelete{ID: task.ID})
		}

	case key.Matches(msg, keys.CompleteAll):
		// Complete all and undo share one control slot
		if !m.state.UndoAvailable() {
			m.dispatch(store.CompleteAll{})
			m.message = "Completed all tasks (u to undo)"
		}

	case key.Matches(msg, keys.Undo):
		if m.state.UndoAvailable() {
			m.dispatch(store.UndoCompleteAll{})
			m.message = "Restored tasks"
		}

	case key.Matches(msg, keys.DeleteAll):
		m.dispatch(store.RequestDeleteAll{})

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m Model) startAddTask() (tea.Model, tea.Cmd) {
	m.mode = ModeAddTask
	m.input.SetValue(m.state.Input())
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) startEditTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	m.dispatch(store.OpenEdit{ID: task.ID, Text: task.Text})
	_, draft, _ := m.state.EditTarget()
	m.editInput.SetValue(draft)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	return m, textinput.Blink
}

func (m Model) updateAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Enter):
		before := m.state.Len()
		text := m.input.Value()
		m.dispatch(store.AddTask{Text: text})
		if m.state.Len() > before {
			m.cursor = m.state.Len() - 1
			m.message = fmt.Sprintf("Added: %s", text)
		}
		m.input.SetValue(m.state.Input())
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		m.dispatch(store.CloseEdit{})
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, keys.Enter):
		_, draft, _ := m.state.EditTarget()
		m.dispatch(store.CommitEdit{})
		m.editInput.Blur()
		m.message = fmt.Sprintf("Updated: %s", draft)
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.dispatch(store.UpdateEditDraft{Text: m.editInput.Value()})
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bulk := m.state.PendingDeleteAll()

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Confirm):
		if bulk {
			m.dispatch(store.ConfirmDeleteAll{})
			m.message = "Deleted all tasks"
		} else {
			m.dispatch(store.ConfirmDelete{})
			m.message = "Deleted task"
		}

	case key.Matches(msg, keys.Cancel):
		if bulk {
			m.dispatch(store.CancelDeleteAll{})
		} else {
			m.dispatch(store.CancelDelete{})
		}
	}

	return m, nil
}
