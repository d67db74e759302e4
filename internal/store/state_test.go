package store_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/existflow/tasklist/internal/model"
	"github.com/existflow/tasklist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

// testEnv returns an Env with a fixed clock and ids task-1, task-2, ...
func testEnv() store.Env {
	n := 0
	return store.Env{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		},
		TimeFormat: model.DefaultTimeFormat,
	}
}

func seeded(env store.Env, texts ...string) store.State {
	s := store.New()
	for _, text := range texts {
		s = s.AddTask(env, text)
	}
	return s
}

func TestAddTask_AppendsOpenTask(t *testing.T) {
	env := testEnv()
	s := store.New().SetInput("Buy milk")

	s = s.AddTask(env, "Buy milk")

	require.Equal(t, 1, s.Len())
	task := s.Tasks()[0]
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, fixedNow.Format(model.DefaultTimeFormat), task.Created)
	assert.True(t, task.CreatedAt.Equal(fixedNow))
	assert.Empty(t, s.Input(), "input draft should be cleared")
}

func TestAddTask_KeepsTextUntrimmed(t *testing.T) {
	s := store.New().AddTask(testEnv(), "  padded  ")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "  padded  ", s.Tasks()[0].Text)
}

func TestAddTask_BlankIsNoop(t *testing.T) {
	env := testEnv()
	before := seeded(env, "one").SetInput("   ")

	for _, text := range []string{"", "   ", "\t\n"} {
		after := before.AddTask(env, text)
		assert.Equal(t, before.Tasks(), after.Tasks(), "text %q", text)
		assert.Equal(t, "   ", after.Input(), "draft must survive a rejected add")
	}
}

func TestAddTask_PreservesInsertionOrderAndUniqueIDs(t *testing.T) {
	s := seeded(testEnv(), "a", "b", "c")

	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	seen := map[string]bool{}
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, tasks[i].Text)
		assert.False(t, seen[tasks[i].ID], "duplicate id %s", tasks[i].ID)
		seen[tasks[i].ID] = true
	}
}

func TestDefaultEnv_IDsAreUnique(t *testing.T) {
	env := store.DefaultEnv("")
	s := seeded(env, "a", "b")
	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
	assert.NotEmpty(t, tasks[0].Created)
}

func TestToggleComplete_IsInvolution(t *testing.T) {
	s := seeded(testEnv(), "a", "b")
	id := s.Tasks()[0].ID

	once := s.ToggleComplete(id)
	twice := once.ToggleComplete(id)

	assert.True(t, once.Tasks()[0].Completed)
	assert.False(t, once.Tasks()[1].Completed)
	assert.Equal(t, s.Tasks(), twice.Tasks())
}

func TestToggleComplete_UnknownIDIsNoop(t *testing.T) {
	s := seeded(testEnv(), "a")
	assert.Equal(t, s, s.ToggleComplete("missing"))
}

func TestConfirmDelete_RemovesOnlyTarget(t *testing.T) {
	s := seeded(testEnv(), "a", "b", "c")
	target := s.Tasks()[1].ID

	s = s.RequestDelete(target)
	id, ok := s.PendingDelete()
	require.True(t, ok)
	assert.Equal(t, target, id)

	s = s.ConfirmDelete()
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "a", s.Tasks()[0].Text)
	assert.Equal(t, "c", s.Tasks()[1].Text)
	_, ok = s.PendingDelete()
	assert.False(t, ok)
	assert.Equal(t, store.Idle, s.Dialog())
}

func TestConfirmDelete_MissingIDOnlyClosesDialog(t *testing.T) {
	s := seeded(testEnv(), "a", "b")

	after := s.RequestDelete("gone").ConfirmDelete()

	assert.Equal(t, s.Tasks(), after.Tasks())
	assert.False(t, after.Dialog().Active())
}

func TestConfirmDelete_WithoutRequestIsNoop(t *testing.T) {
	s := seeded(testEnv(), "a")
	assert.Equal(t, s, s.ConfirmDelete())
}

func TestCancelDelete_NeverChangesTasks(t *testing.T) {
	s := seeded(testEnv(), "a", "b")

	assert.Equal(t, 2, s.CancelDelete().Len())
	after := s.RequestDelete(s.Tasks()[0].ID).CancelDelete()
	assert.Equal(t, 2, after.Len())
	assert.Equal(t, store.Idle, after.Dialog())
}

func TestCompleteAll_MarksEveryTask(t *testing.T) {
	s := seeded(testEnv(), "a", "b", "c")
	s = s.ToggleComplete(s.Tasks()[1].ID)

	s = s.CompleteAll()

	for _, task := range s.Tasks() {
		assert.True(t, task.Completed, task.Text)
	}
	assert.True(t, s.UndoAvailable())
	assert.Zero(t, s.Pending())
}

func TestCompleteAll_UndoRoundTrip(t *testing.T) {
	s := seeded(testEnv(), "a", "b", "c")
	s = s.ToggleComplete(s.Tasks()[2].ID)
	before := s.Tasks()

	s = s.CompleteAll().UndoCompleteAll()

	assert.Equal(t, before, s.Tasks())
	assert.False(t, s.UndoAvailable())
}

func TestCompleteAll_OnEmptyListRoundTrips(t *testing.T) {
	s := store.New().CompleteAll()
	assert.True(t, s.UndoAvailable())

	s = s.UndoCompleteAll()
	assert.Zero(t, s.Len())
	assert.False(t, s.UndoAvailable())
}

func TestCompleteAll_OverwritesPriorSnapshot(t *testing.T) {
	env := testEnv()
	s := seeded(env, "a").CompleteAll()
	s = s.AddTask(env, "b")
	snapshot := s.Tasks()

	s = s.CompleteAll().UndoCompleteAll()

	assert.Equal(t, snapshot, s.Tasks(), "undo restores the most recent snapshot only")
}

func TestUndoCompleteAll_UnavailableIsNoop(t *testing.T) {
	s := seeded(testEnv(), "a")
	assert.Equal(t, s, s.UndoCompleteAll())
}

func TestConfirmDeleteAll_AlwaysEmpties(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = fmt.Sprintf("task %d", i)
		}
		s := seeded(testEnv(), texts...)

		viaDialog := s.RequestDeleteAll()
		assert.True(t, viaDialog.PendingDeleteAll())
		viaDialog = viaDialog.ConfirmDeleteAll()
		assert.Zero(t, viaDialog.Len())
		assert.False(t, viaDialog.PendingDeleteAll())

		assert.Zero(t, s.ConfirmDeleteAll().Len())
	}
}

func TestCancelDeleteAll_KeepsTasks(t *testing.T) {
	s := seeded(testEnv(), "a", "b")
	after := s.RequestDeleteAll().CancelDeleteAll()
	assert.Equal(t, s.Tasks(), after.Tasks())
	assert.False(t, after.PendingDeleteAll())
}

func TestCommitEdit_ReplacesOnlyTargetText(t *testing.T) {
	s := seeded(testEnv(), "a", "x", "c")
	id := s.Tasks()[1].ID

	s = s.OpenEdit(id, "x")
	gotID, draft, ok := s.EditTarget()
	require.True(t, ok)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "x", draft)

	s = s.UpdateEditDraft("y").CommitEdit()

	texts := []string{}
	for _, task := range s.Tasks() {
		texts = append(texts, task.Text)
	}
	assert.Equal(t, []string{"a", "y", "c"}, texts)
	_, _, ok = s.EditTarget()
	assert.False(t, ok)
}

func TestCommitEdit_AllowsBlankText(t *testing.T) {
	s := seeded(testEnv(), "a")
	id := s.Tasks()[0].ID

	s = s.OpenEdit(id, "a").UpdateEditDraft("").CommitEdit()

	assert.Equal(t, "", s.Tasks()[0].Text)
}

func TestCommitEdit_MissingTaskStillCloses(t *testing.T) {
	s := seeded(testEnv(), "a")

	after := s.OpenEdit("gone", "zzz").CommitEdit()

	assert.Equal(t, s.Tasks(), after.Tasks())
	assert.False(t, after.Dialog().Active())
}

func TestCloseEdit_DiscardsDraft(t *testing.T) {
	s := seeded(testEnv(), "a")
	id := s.Tasks()[0].ID

	after := s.OpenEdit(id, "a").UpdateEditDraft("changed").CloseEdit()

	assert.Equal(t, "a", after.Tasks()[0].Text)
	assert.Equal(t, store.Idle, after.Dialog())
}

func TestUpdateEditDraft_WithoutEditIsNoop(t *testing.T) {
	s := seeded(testEnv(), "a")
	assert.Equal(t, s, s.UpdateEditDraft("y"))
	assert.Equal(t, s, s.CommitEdit())
}

func TestDialogs_AreMutuallyExclusive(t *testing.T) {
	s := seeded(testEnv(), "a")
	id := s.Tasks()[0].ID

	s = s.OpenEdit(id, "a").RequestDelete(id)
	_, _, editing := s.EditTarget()
	assert.False(t, editing)
	_, pending := s.PendingDelete()
	assert.True(t, pending)

	s = s.RequestDeleteAll()
	_, pending = s.PendingDelete()
	assert.False(t, pending)
	assert.True(t, s.PendingDeleteAll())

	// Cancelling a dialog that is not open leaves the open one alone
	s = s.CancelDelete().CloseEdit()
	assert.True(t, s.PendingDeleteAll())
}

func TestTransitions_DoNotMutateReceiver(t *testing.T) {
	env := testEnv()
	s := seeded(env, "a", "b")
	id := s.Tasks()[0].ID
	before := s.Tasks()

	_ = s.ToggleComplete(id)
	_ = s.CompleteAll()
	_ = s.OpenEdit(id, "a").UpdateEditDraft("z").CommitEdit()
	_ = s.RequestDelete(id).ConfirmDelete()
	_ = s.AddTask(env, "c")
	_ = s.ConfirmDeleteAll()

	assert.Equal(t, before, s.Tasks())
	assert.False(t, s.UndoAvailable())
	assert.Equal(t, store.Idle, s.Dialog())
}

func TestTasks_ReturnsCopy(t *testing.T) {
	s := seeded(testEnv(), "a")
	tasks := s.Tasks()
	tasks[0].Text = "mutated"
	assert.Equal(t, "a", s.Tasks()[0].Text)
}

func TestScenario_BuyMilk(t *testing.T) {
	s := store.New()

	s = s.AddTask(testEnv(), "Buy milk")
	require.Equal(t, 1, s.Len())
	task := s.Tasks()[0]
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)

	s = s.ToggleComplete(task.ID)
	got, ok := s.Task(task.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)

	s = s.RequestDelete(task.ID).ConfirmDelete()
	assert.Empty(t, s.Tasks())
}
