// ABOUTME: Kanban task board view
// ABOUTME: Moving a card between columns dispatches a SetTaskStatus operation
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"culturadesk/models"
	"culturadesk/store"
)

var boardColumns = []string{
	models.TaskStatusPending,
	models.TaskStatusInProgress,
	models.TaskStatusCompleted,
}

var columnTitles = map[string]string{
	models.TaskStatusPending:    "Pending",
	models.TaskStatusInProgress: "In Progress",
	models.TaskStatusCompleted:  "Completed",
}

// tasksByStatus splits the snapshot's tasks into board columns,
// preserving store order within each.
func tasksByStatus(doc models.Document) map[string][]models.CulturalTask {
	cols := make(map[string][]models.CulturalTask, len(boardColumns))
	for _, t := range doc.Tasks {
		cols[t.Status] = append(cols[t.Status], t)
	}
	return cols
}

func (m Model) selectedTask() (models.CulturalTask, bool) {
	cols := tasksByStatus(m.store.State())
	tasks := cols[boardColumns[m.boardColumn]]
	if m.boardRow < 0 || m.boardRow >= len(tasks) {
		return models.CulturalTask{}, false
	}
	return tasks[m.boardRow], true
}

func (m Model) clampBoard() Model {
	cols := tasksByStatus(m.store.State())
	n := len(cols[boardColumns[m.boardColumn]])
	if m.boardRow >= n {
		m.boardRow = n - 1
	}
	if m.boardRow < 0 {
		m.boardRow = 0
	}
	return m
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.boardColumn > 0 {
			m.boardColumn--
		}
		return m.clampBoard(), nil

	case "right", "l":
		if m.boardColumn < len(boardColumns)-1 {
			m.boardColumn++
		}
		return m.clampBoard(), nil

	case "up", "k":
		if m.boardRow > 0 {
			m.boardRow--
		}
		return m, nil

	case "down", "j":
		m.boardRow++
		return m.clampBoard(), nil

	case "m", "enter":
		// Move the selected card one column to the right, wrapping.
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		next := (m.boardColumn + 1) % len(boardColumns)
		m.store.Dispatch(store.SetTaskStatus{ID: task.ID, Status: boardColumns[next]})
		m.boardColumn = next
		return m.clampBoard(), nil

	case "M":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		prev := (m.boardColumn + len(boardColumns) - 1) % len(boardColumns)
		m.store.Dispatch(store.SetTaskStatus{ID: task.ID, Status: boardColumns[prev]})
		m.boardColumn = prev
		return m.clampBoard(), nil
	}
	return m, nil
}

func (m Model) viewBoard() string {
	doc := m.store.State()
	cols := tasksByStatus(doc)

	rendered := make([]string, 0, len(boardColumns))
	for ci, status := range boardColumns {
		tasks := cols[status]

		body := m.styles.Header.Render(fmt.Sprintf("%s (%d)", columnTitles[status], len(tasks)))
		for ri, task := range tasks {
			line := task.Title
			if task.Priority == models.PriorityHigh {
				line = "! " + line
			}
			style := m.styles.Card
			if ci == m.boardColumn && ri == m.boardRow {
				style = m.styles.Selected
			}
			body += "\n" + style.Render(line)
		}
		if len(tasks) == 0 {
			body += "\n" + m.styles.Dim.Render("(empty)")
		}

		rendered = append(rendered, m.styles.Column.Render(body))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	title := m.styles.Title.Render("Tasks")
	help := m.styles.Help.Render("←/→ column  ↑/↓ card  m move  M move back  tab feed  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, board, help)
}
