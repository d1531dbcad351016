package dto

import (
	"time"

	"github.com/gestio-app/gestio/internal/domain/project"
)

type TaskDTO struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	ProjectID uint      `json:"project_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectDTO struct {
	ID          uint       `json:"id"`
	SID         string     `json:"sid"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	ClientID    *uint      `json:"client_id,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Progress    float64    `json:"progress"`
	TaskCount   int        `json:"task_count"`
	DoneCount   int        `json:"done_count"`
	Tasks       []*TaskDTO `json:"tasks,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToTaskDTO(t *project.Task) *TaskDTO {
	if t == nil {
		return nil
	}
	return &TaskDTO{
		ID:        t.ID(),
		SID:       t.SID(),
		ProjectID: t.ProjectID(),
		Title:     t.Title(),
		Status:    string(t.Status()),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToTaskDTOs(tasks []*project.Task) []*TaskDTO {
	dtos := make([]*TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, ToTaskDTO(t))
	}
	return dtos
}

// ToProjectDTO builds the project view including derived progress. Tasks
// may be nil when the caller only needs the header fields.
func ToProjectDTO(p *project.Project, tasks []*project.Task, includeTasks bool) *ProjectDTO {
	if p == nil {
		return nil
	}
	done := 0
	for _, t := range tasks {
		if t.Status() == project.TaskStatusDone {
			done++
		}
	}
	d := &ProjectDTO{
		ID:          p.ID(),
		SID:         p.SID(),
		Name:        p.Name(),
		Description: p.Description(),
		Status:      string(p.Status()),
		ClientID:    p.ClientID(),
		Deadline:    p.Deadline(),
		Progress:    project.Progress(tasks),
		TaskCount:   len(tasks),
		DoneCount:   done,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
	if includeTasks {
		d.Tasks = ToTaskDTOs(tasks)
	}
	return d
}
