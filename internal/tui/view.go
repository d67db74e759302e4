package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/tasklist/internal/store"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mainContent := lipgloss.JoinVertical(lipgloss.Left, m.renderInput(), m.renderTaskList())

	if modal := m.renderDialog(); modal != "" {
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp && !m.state.Dialog().Active() {
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

func (m Model) renderInput() string {
	header := HeaderStyle.Render(fmt.Sprintf("To-Do (%d pending)", m.state.Pending()))
	line := HelpStyle.Render("  press a to add a task")
	if m.mode == ModeAddTask {
		line = "  " + m.input.View()
	} else if draft := m.state.Input(); draft != "" {
		line = HelpStyle.Render("  draft: " + truncate(draft, m.width-12))
	}
	return lipgloss.NewStyle().Padding(1, 2, 0).Render(header + "\n" + line)
}

func (m Model) renderTaskList() string {
	width := m.width - 4
	tasks := m.state.Tasks()

	var s string
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n"

	if len(tasks) == 0 {
		s += HelpStyle.Render("  No tasks. Press 'a' to add one.")
	}

	textWidth := max(width-48, 10)
	start, end := window(m.cursor, len(tasks), max(m.height-10, 1))
	for i := start; i < end; i++ {
		t := tasks[i]
		cursor := "  "
		style := TaskItemStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		icon := "[ ]"
		if t.Completed {
			icon = "[x]"
			style = TaskDoneStyle
		}

		check := style.Render(cursor + icon)
		desc := style.Render(fmt.Sprintf(" %-*s ", textWidth, truncate(t.Text, textWidth)))
		s += check + desc + CreatedStyle.Render(t.Created) + "\n"
	}

	return TaskListStyle.Width(width).Height(max(m.height-7, 0)).Render(s)
}

func (m Model) renderStatusBar() string {
	var help string
	switch m.state.Dialog().Kind {
	case store.DialogEdit:
		help = helpLine(keys.Enter, keys.Escape)
	case store.DialogConfirmDelete, store.DialogConfirmDeleteAll:
		help = helpLine(keys.Confirm, keys.Cancel)
	default:
		if m.mode == ModeAddTask {
			help = "Enter:add  Esc:cancel"
			break
		}
		bulk := keys.CompleteAll
		if m.state.UndoAvailable() {
			bulk = keys.Undo
		}
		help = helpLine(keys.Add, keys.Toggle, keys.Edit, keys.Delete, bulk, keys.DeleteAll, keys.Help, keys.Quit)
	}

	if m.message != "" {
		help = m.message + "  │  " + help
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

// renderDialog draws the active dialog, or "" when idle
func (m Model) renderDialog() string {
	d := m.state.Dialog()
	switch d.Kind {
	case store.DialogEdit:
		content := lipgloss.NewStyle().Bold(true).Render("Edit Task") + "\n\n"
		content += m.editInput.View() + "\n\n"
		content += HelpStyle.Render("Enter:save changes  Esc:cancel")
		return ModalStyle.Render(content)

	case store.DialogConfirmDelete:
		body := "Are you sure you want to delete this task?"
		if task, ok := m.state.Task(d.TaskID); ok {
			body += "\n\n" + HelpStyle.Render(truncate(task.Text, 48))
		}
		return renderConfirm(body, "Delete")

	case store.DialogConfirmDeleteAll:
		return renderConfirm("Are you sure you want to delete all tasks?", "Delete All")
	}
	return ""
}

func renderConfirm(body, confirmLabel string) string {
	content := lipgloss.NewStyle().Bold(true).Render("Confirmation") + "\n\n"
	content += body + "\n\n"
	content += HelpStyle.Render(fmt.Sprintf("y/Enter:%s  n/Esc:cancel", strings.ToLower(confirmLabel)))
	return DangerModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭─── Keyboard Shortcuts ───╮
│                          │
│  Navigation              │
│  ──────────              │
│  j/↓    Move down        │
│  k/↑    Move up          │
│  g/G    Top / bottom     │
│                          │
│  Actions                 │
│  ───────                 │
│  a       Add task        │
│  x/Enter Toggle done     │
│  e       Edit            │
│  d       Delete          │
│  C       Complete all    │
│  u       Undo complete   │
│  D       Delete all      │
│                          │
│  Other                   │
│  ─────                   │
│  ?       Toggle help     │
│  q       Quit            │
│                          │
╰──────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
