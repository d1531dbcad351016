package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/gestio-app/gestio/internal/shared/id"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// ValidTaskStatuses enumerates the accepted task statuses.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskStatusTodo:       true,
	TaskStatusInProgress: true,
	TaskStatusDone:       true,
}

// ParseTaskStatus validates a raw status string. Empty defaults to todo.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	if raw == "" {
		return TaskStatusTodo, nil
	}
	s := TaskStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !ValidTaskStatuses[s] {
		return "", fmt.Errorf("invalid task status: %s", raw)
	}
	return s, nil
}

// Task is a single unit of work inside a project.
type Task struct {
	taskID    uint
	sid       string
	projectID uint
	title     string
	status    TaskStatus
	createdAt time.Time
	updatedAt time.Time
}

// NewTask creates a task in the given status with a generated SID.
func NewTask(projectID uint, title string, status TaskStatus) (*Task, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("task project ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if !ValidTaskStatuses[status] {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	now := time.Now().UTC()
	return &Task{
		sid:       id.MustGenerateWithPrefix(id.PrefixTask, id.DefaultLength),
		projectID: projectID,
		title:     strings.TrimSpace(title),
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTask rebuilds a task from persistence.
func ReconstructTask(taskID uint, sid string, projectID uint, title string, status TaskStatus, createdAt, updatedAt time.Time) (*Task, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if !ValidTaskStatuses[status] {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}
	return &Task{
		taskID:    taskID,
		sid:       sid,
		projectID: projectID,
		title:     title,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Task) ID() uint             { return t.taskID }
func (t *Task) SID() string          { return t.sid }
func (t *Task) ProjectID() uint      { return t.projectID }
func (t *Task) Title() string        { return t.title }
func (t *Task) Status() TaskStatus   { return t.status }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// SetID sets the task ID (only for persistence layer use)
func (t *Task) SetID(taskID uint) error {
	if t.taskID != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if taskID == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.taskID = taskID
	return nil
}

// Update replaces the task's title and status.
func (t *Task) Update(title string, status TaskStatus) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title is required")
	}
	if !ValidTaskStatuses[status] {
		return fmt.Errorf("invalid task status: %s", status)
	}
	t.title = strings.TrimSpace(title)
	t.status = status
	t.updatedAt = time.Now().UTC()
	return nil
}
