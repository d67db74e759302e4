package store

// DialogKind names the dialog a State is showing
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogConfirmDelete
	DialogConfirmDeleteAll
	DialogEdit
)

// String returns the wire name of the dialog kind
func (k DialogKind) String() string {
	switch k {
	case DialogConfirmDelete:
		return "confirm_delete"
	case DialogConfirmDeleteAll:
		return "confirm_delete_all"
	case DialogEdit:
		return "edit"
	default:
		return "none"
	}
}

// Dialog is the single modal a State can show. Only the fields of the
// active kind are meaningful: TaskID for confirm-delete and edit, Draft
// for edit.
type Dialog struct {
	Kind   DialogKind
	TaskID string
	Draft  string
}

// Idle is the no-dialog value
var Idle = Dialog{}

func confirmDelete(id string) Dialog {
	return Dialog{Kind: DialogConfirmDelete, TaskID: id}
}

func confirmDeleteAll() Dialog {
	return Dialog{Kind: DialogConfirmDeleteAll}
}

func editing(id, draft string) Dialog {
	return Dialog{Kind: DialogEdit, TaskID: id, Draft: draft}
}

// Active reports whether any dialog is open
func (d Dialog) Active() bool {
	return d.Kind != DialogNone
}
