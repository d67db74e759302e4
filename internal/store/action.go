package store

// Action is a named user intent that can be applied to a State
type Action interface {
	Name() string
	apply(env Env, s State) State
}

// One action per State transition
type (
	AddTask          struct{ Text string }
	SetInput         struct{ Text string }
	ToggleComplete   struct{ ID string }
	RequestDelete    struct{ ID string }
	ConfirmDelete    struct{}
	CancelDelete     struct{}
	CompleteAll      struct{}
	UndoCompleteAll  struct{}
	RequestDeleteAll struct{}
	ConfirmDeleteAll struct{}
	CancelDeleteAll  struct{}
	OpenEdit         struct{ ID, Text string }
	UpdateEditDraft  struct{ Text string }
	CloseEdit        struct{}
	CommitEdit       struct{}
)

// Reduce applies a to s. A nil action leaves s unchanged.
func Reduce(env Env, s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(env, s)
}

func (AddTask) Name() string          { return "add_task" }
func (SetInput) Name() string         { return "set_input" }
func (ToggleComplete) Name() string   { return "toggle_complete" }
func (RequestDelete) Name() string    { return "request_delete" }
func (ConfirmDelete) Name() string    { return "confirm_delete" }
func (CancelDelete) Name() string     { return "cancel_delete" }
func (CompleteAll) Name() string      { return "complete_all" }
func (UndoCompleteAll) Name() string  { return "undo_complete_all" }
func (RequestDeleteAll) Name() string { return "request_delete_all" }
func (ConfirmDeleteAll) Name() string { return "confirm_delete_all" }
func (CancelDeleteAll) Name() string  { return "cancel_delete_all" }
func (OpenEdit) Name() string         { return "open_edit" }
func (UpdateEditDraft) Name() string  { return "update_edit_draft" }
func (CloseEdit) Name() string        { return "close_edit" }
func (CommitEdit) Name() string       { return "commit_edit" }

func (a AddTask) apply(env Env, s State) State       { return s.AddTask(env, a.Text) }
func (a SetInput) apply(_ Env, s State) State        { return s.SetInput(a.Text) }
func (a ToggleComplete) apply(_ Env, s State) State  { return s.ToggleComplete(a.ID) }
func (a RequestDelete) apply(_ Env, s State) State   { return s.RequestDelete(a.ID) }
func (ConfirmDelete) apply(_ Env, s State) State     { return s.ConfirmDelete() }
func (CancelDelete) apply(_ Env, s State) State      { return s.CancelDelete() }
func (CompleteAll) apply(_ Env, s State) State       { return s.CompleteAll() }
func (UndoCompleteAll) apply(_ Env, s State) State   { return s.UndoCompleteAll() }
func (RequestDeleteAll) apply(_ Env, s State) State  { return s.RequestDeleteAll() }
func (ConfirmDeleteAll) apply(_ Env, s State) State  { return s.ConfirmDeleteAll() }
func (CancelDeleteAll) apply(_ Env, s State) State   { return s.CancelDeleteAll() }
func (a OpenEdit) apply(_ Env, s State) State        { return s.OpenEdit(a.ID, a.Text) }
func (a UpdateEditDraft) apply(_ Env, s State) State { return s.UpdateEditDraft(a.Text) }
func (CloseEdit) apply(_ Env, s State) State         { return s.CloseEdit() }
func (CommitEdit) apply(_ Env, s State) State        { return s.CommitEdit() }
