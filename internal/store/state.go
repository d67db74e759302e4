// Package store holds the task list view state and its transitions.
//
// State is a value. Every transition returns a new State and leaves the
// receiver untouched, so callers keep the state explicitly instead of
// sharing a mutable store.
package store

import (
	"slices"

	"github.com/existflow/tasklist/internal/model"
)

// State is one snapshot of the task list and its transient UI flags
type State struct {
	tasks  []model.Task
	input  string
	dialog Dialog

	// undo is non-nil while "undo complete all" is available
	undo []model.Task
}

// New returns the empty session state
func New() State {
	return State{}
}

// Tasks returns the tasks in insertion order
func (s State) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks
func (s State) Len() int {
	return len(s.tasks)
}

// Task looks up a task by id
func (s State) Task(id string) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// Pending counts tasks that are not completed
func (s State) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Input returns the add-task draft
func (s State) Input() string {
	return s.input
}

// Dialog returns the active dialog, Idle if none
func (s State) Dialog() Dialog {
	return s.dialog
}

// PendingDelete returns the task awaiting single-delete confirmation
func (s State) PendingDelete() (string, bool) {
	if s.dialog.Kind != DialogConfirmDelete {
		return "", false
	}
	return s.dialog.TaskID, true
}

// PendingDeleteAll reports whether the delete-all confirmation is open
func (s State) PendingDeleteAll() bool {
	return s.dialog.Kind == DialogConfirmDeleteAll
}

// EditTarget returns the task id and draft of an in-progress edit
func (s State) EditTarget() (id, draft string, ok bool) {
	if s.dialog.Kind != DialogEdit {
		return "", "", false
	}
	return s.dialog.TaskID, s.dialog.Draft, true
}

// UndoAvailable reports whether the last complete-all can be undone
func (s State) UndoAvailable() bool {
	return s.undo != nil
}

func (s State) index(id string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

// AddTask appends an open task and clears the input draft. Blank text is
// ignored.
func (s State) AddTask(env Env, text string) State {
	if model.IsBlank(text) {
		return s
	}
	task := model.NewTask(env.id(), text, env.now(), env.TimeFormat)
	s.tasks = append(slices.Clone(s.tasks), task)
	s.input = ""
	return s
}

// SetInput replaces the add-task draft
func (s State) SetInput(text string) State {
	s.input = text
	return s
}

// ToggleComplete flips the completion flag of the task with id
func (s State) ToggleComplete(id string) State {
	i := s.index(id)
	if i < 0 {
		return s
	}
	s.tasks = slices.Clone(s.tasks)
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s
}

// RequestDelete opens the single-delete confirmation for id
func (s State) RequestDelete(id string) State {
	s.dialog = confirmDelete(id)
	return s
}

// ConfirmDelete removes the task awaiting confirmation and closes the dialog
func (s State) ConfirmDelete() State {
	id, ok := s.PendingDelete()
	if !ok {
		return s
	}
	if i := s.index(id); i >= 0 {
		s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
	}
	s.dialog = Idle
	return s
}

// CancelDelete closes the single-delete confirmation
func (s State) CancelDelete() State {
	if s.dialog.Kind == DialogConfirmDelete {
		s.dialog = Idle
	}
	return s
}

// CompleteAll marks every task completed, keeping the previous list for
// one undo. An unredeemed earlier snapshot is replaced.
func (s State) CompleteAll() State {
	s.undo = slices.Clone(s.tasks)
	if s.undo == nil {
		s.undo = []model.Task{}
	}
	s.tasks = slices.Clone(s.tasks)
	for i := range s.tasks {
		s.tasks[i].Completed = true
	}
	return s
}

// UndoCompleteAll restores the list saved by the last CompleteAll
func (s State) UndoCompleteAll() State {
	if s.undo == nil {
		return s
	}
	s.tasks = s.undo
	if len(s.tasks) == 0 {
		s.tasks = nil
	}
	s.undo = nil
	return s
}

// RequestDeleteAll opens the delete-all confirmation
func (s State) RequestDeleteAll() State {
	s.dialog = confirmDeleteAll()
	return s
}

// ConfirmDeleteAll empties the list and closes the delete-all confirmation
func (s State) ConfirmDeleteAll() State {
	s.tasks = nil
	if s.dialog.Kind == DialogConfirmDeleteAll {
		s.dialog = Idle
	}
	return s
}

// CancelDeleteAll closes the delete-all confirmation
func (s State) CancelDeleteAll() State {
	if s.dialog.Kind == DialogConfirmDeleteAll {
		s.dialog = Idle
	}
	return s
}

// OpenEdit opens the edit dialog for id pre-filled with currentText
func (s State) OpenEdit(id, currentText string) State {
	s.dialog = editing(id, currentText)
	return s
}

// UpdateEditDraft replaces the draft of the open edit dialog
func (s State) UpdateEditDraft(text string) State {
	if s.dialog.Kind == DialogEdit {
		s.dialog.Draft = text
	}
	return s
}

// CloseEdit discards the edit draft
func (s State) CloseEdit() State {
	if s.dialog.Kind == DialogEdit {
		s.dialog = Idle
	}
	return s
}

// CommitEdit writes the draft to the edited task verbatim and closes the
// dialog, even when the task is gone
func (s State) CommitEdit() State {
	id, draft, ok := s.EditTarget()
	if !ok {
		return s
	}
	if i := s.index(id); i >= 0 {
		s.tasks = slices.Clone(s.tasks)
		s.tasks[i].Text = draft
	}
	s.dialog = Idle
	return s
}
