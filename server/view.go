package server

import (
	"github.com/existflow/tasklist/internal/model"
	"github.com/existflow/tasklist/internal/store"
)

// DialogView is the wire form of the active dialog
type DialogView struct {
	Kind   string `json:"kind"`
	TaskID string `json:"task_id,omitempty"`
	Draft  string `json:"draft,omitempty"`
}

// StateView is the full state returned by every endpoint
type StateView struct {
	Tasks         []model.Task `json:"tasks"`
	Input         string       `json:"input"`
	Dialog        DialogView   `json:"dialog"`
	UndoAvailable bool         `json:"undo_available"`
	Pending       int          `json:"pending"`
}

// NewStateView renders s for the wire
func NewStateView(s store.State) StateView {
	tasks := s.Tasks()
	if tasks == nil {
		tasks = []model.Task{}
	}
	d := s.Dialog()
	return StateView{
		Tasks: tasks,
		Input: s.Input(),
		Dialog: DialogView{
			Kind:   d.Kind.String(),
			TaskID: d.TaskID,
			Draft:  d.Draft,
		},
		UndoAvailable: s.UndoAvailable(),
		Pending:       s.Pending(),
	}
}

// TextRequest carries free text for add, input and edit endpoints
type TextRequest struct {
	Text *string `json:"text"`
}

// DraftRequest carries the edit dialog draft
type DraftRequest struct {
	Draft string `json:"draft"`
}
