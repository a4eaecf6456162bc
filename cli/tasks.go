// ABOUTME: Cultural task CLI commands
// ABOUTME: Create, list, update, move across statuses, delete
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"culturadesk/models"
	"culturadesk/store"
)

// AddTaskCommand creates a task.
func AddTaskCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("description", "", "Task description")
	priority := fs.String("priority", models.PriorityMedium, "Priority (low|medium|high)")
	assignee := fs.String("assignee", "", "Who the task is assigned to")
	due := fs.String("due", "", "Due date, YYYY-MM-DD [HH:MM] (required)")
	event := fs.String("event", "", "Originating event id")
	checklist := fs.String("checklist", "", "Comma-separated checklist labels")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if *due == "" {
		return fmt.Errorf("--due is required")
	}

	dueDate, err := parseDate(*due)
	if err != nil {
		return err
	}

	var items []models.ChecklistItem
	for _, label := range splitList(*checklist) {
		items = append(items, models.ChecklistItem{
			ID:    newSortableID(),
			Label: label,
		})
	}

	task := models.CulturalTask{
		ID:             newEntityID(),
		Title:          *title,
		Description:    *description,
		Status:         models.TaskStatusPending,
		Priority:       *priority,
		AssignedTo:     *assignee,
		DueDate:        dueDate,
		RelatedEventID: *event,
		Checklist:      items,
	}

	st.Dispatch(store.AddTask{Task: task})
	st.Dispatch(store.AddNotification{Notification: models.Notification{
		ID:        newSortableID(),
		Title:     "New task",
		Message:   task.Title,
		Kind:      models.NotificationTask,
		Date:      time.Now(),
		RelatedID: task.ID,
	}})

	fmt.Printf("✓ Task created: %s (ID: %s)\n", task.Title, task.ID)
	fmt.Printf("  Due: %s\n", formatDate(task.DueDate))
	return nil
}

// ListTasksCommand lists tasks, optionally by status.
func ListTasksCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-tasks", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status (pending|in-progress|completed)")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDUE\tTITLE\tSTATUS\tPRIORITY\tASSIGNEE")
	for _, task := range st.State().Tasks {
		if *status != "" && task.Status != *status {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID, formatDate(task.DueDate), task.Title, task.Status, task.Priority, task.AssignedTo)
	}
	return w.Flush()
}

// SetTaskStatusCommand moves a task to another status, same as a board
// column move.
func SetTaskStatusCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("set-task-status", flag.ExitOnError)
	id := fs.String("id", "", "Task id (required)")
	status := fs.String("status", "", "New status (required)")
	_ = fs.Parse(args)

	if *id == "" || *status == "" {
		return fmt.Errorf("--id and --status are required")
	}

	st.Dispatch(store.SetTaskStatus{ID: *id, Status: *status})
	fmt.Printf("✓ Task %s → %s\n", *id, *status)
	return nil
}

// UpdateTaskCommand replaces a task wholesale.
func UpdateTaskCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-task", flag.ExitOnError)
	id := fs.String("id", "", "Task id (required)")
	title := fs.String("title", "", "New title")
	description := fs.String("description", "", "New description")
	priority := fs.String("priority", "", "New priority")
	assignee := fs.String("assignee", "", "New assignee")
	due := fs.String("due", "", "New due date")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var task *models.CulturalTask
	for _, candidate := range st.State().Tasks {
		if candidate.ID == *id {
			candidate := candidate
			task = &candidate
			break
		}
	}
	if task == nil {
		return fmt.Errorf("task %s not found", *id)
	}

	if *title != "" {
		task.Title = *title
	}
	if *description != "" {
		task.Description = *description
	}
	if *priority != "" {
		task.Priority = *priority
	}
	if *assignee != "" {
		task.AssignedTo = *assignee
	}
	if *due != "" {
		dueDate, err := parseDate(*due)
		if err != nil {
			return err
		}
		task.DueDate = dueDate
	}

	st.Dispatch(store.UpdateTask{Task: *task})
	fmt.Printf("✓ Task updated: %s\n", task.Title)
	return nil
}

// DeleteTaskCommand removes a task by id.
func DeleteTaskCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-task", flag.ExitOnError)
	id := fs.String("id", "", "Task id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.DeleteTask{ID: *id})
	fmt.Printf("✓ Task deleted: %s\n", *id)
	return nil
}
