// Package project holds the project and task aggregates of the work
// tracker. Projects optionally reference a client; tasks belong to a
// project. Progress is derived from task completion, never stored.
package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/gestio-app/gestio/internal/shared/id"
)

// Status is the workflow state of a project.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusOnHold    Status = "on_hold"
)

// ValidStatuses enumerates the accepted project statuses.
var ValidStatuses = map[Status]bool{
	StatusPlanning:  true,
	StatusActive:    true,
	StatusCompleted: true,
	StatusOnHold:    true,
}

// ParseStatus validates a raw status string. Empty defaults to planning.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusPlanning, nil
	}
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !ValidStatuses[s] {
		return "", fmt.Errorf("invalid project status: %s", raw)
	}
	return s, nil
}

// Project is a unit of work, optionally tied to a client.
type Project struct {
	projectID   uint
	sid         string
	name        string
	description string
	status      Status
	clientID    *uint
	deadline    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProject creates a project in the given status with a generated SID.
func NewProject(name, description string, status Status, clientID *uint, deadline *time.Time) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}

	now := time.Now().UTC()
	return &Project{
		sid:         id.MustGenerateWithPrefix(id.PrefixProject, id.DefaultLength),
		name:        strings.TrimSpace(name),
		description: description,
		status:      status,
		clientID:    clientID,
		deadline:    deadline,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProject rebuilds a project from persistence.
func ReconstructProject(projectID uint, sid, name, description string, status Status, clientID *uint, deadline *time.Time, createdAt, updatedAt time.Time) (*Project, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}
	return &Project{
		projectID:   projectID,
		sid:         sid,
		name:        name,
		description: description,
		status:      status,
		clientID:    clientID,
		deadline:    deadline,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint              { return p.projectID }
func (p *Project) SID() string           { return p.sid }
func (p *Project) Name() string          { return p.name }
func (p *Project) Description() string   { return p.description }
func (p *Project) Status() Status        { return p.status }
func (p *Project) ClientID() *uint       { return p.clientID }
func (p *Project) Deadline() *time.Time  { return p.deadline }
func (p *Project) CreatedAt() time.Time  { return p.createdAt }
func (p *Project) UpdatedAt() time.Time  { return p.updatedAt }

// SetID sets the project ID (only for persistence layer use)
func (p *Project) SetID(projectID uint) error {
	if p.projectID != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if projectID == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.projectID = projectID
	return nil
}

// Update replaces the project's mutable fields.
func (p *Project) Update(name, description string, status Status, clientID *uint, deadline *time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name is required")
	}
	if !ValidStatuses[status] {
		return fmt.Errorf("invalid project status: %s", status)
	}
	p.name = strings.TrimSpace(name)
	p.description = description
	p.status = status
	p.clientID = clientID
	p.deadline = deadline
	p.updatedAt = time.Now().UTC()
	return nil
}

// ClearClient detaches the project from its client.
func (p *Project) ClearClient() {
	if p.clientID == nil {
		return
	}
	p.clientID = nil
	p.updatedAt = time.Now().UTC()
}

// Progress returns the completed fraction of the given tasks in [0, 1].
// An empty task list yields 0.
func Progress(tasks []*Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status() == TaskStatusDone {
			done++
		}
	}
	return float64(done) / float64(len(tasks))
}
