package project

import "context"

// Repository persists projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, projectID uint) (*Project, error)
	ListAll(ctx context.Context) ([]*Project, error)
	ListByClientID(ctx context.Context, clientID uint) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, projectID uint) error
	ClearClientRefs(ctx context.Context, clientID uint) error
}

// TaskRepository persists tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	ListByProjectID(ctx context.Context, projectID uint) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, taskID uint) error
	DeleteByProjectID(ctx context.Context, projectID uint) error
}
