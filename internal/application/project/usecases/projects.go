package usecases

import (
	"context"
	"time"

	"github.com/gestio-app/gestio/internal/application/project/dto"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/domain/project"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type CreateProjectCommand struct {
	Name        string
	Description string
	Status      string
	ClientID    *uint
	Deadline    *time.Time
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	clientRepo  client.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: projectRepo, clientRepo: clientRepo, logger: logger}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	status, err := project.ParseStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.ClientID != nil {
		if _, err := uc.clientRepo.GetByID(ctx, *cmd.ClientID); err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewValidationError("referenced client does not exist")
			}
			return nil, apperrors.NewInternalError("failed to load client")
		}
	}

	p, err := project.NewProject(cmd.Name, cmd.Description, status, cmd.ClientID, cmd.Deadline)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.projectRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist project", "error", err, "name", cmd.Name)
		return nil, apperrors.NewInternalError("failed to create project")
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "sid", p.SID())
	return dto.ToProjectDTO(p, nil, false), nil
}

type UpdateProjectCommand struct {
	ProjectID   uint
	Name        string
	Description string
	Status      string
	ClientID    *uint
	Deadline    *time.Time
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	taskRepo    project.TaskRepository
	clientRepo  client.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(
	projectRepo project.Repository,
	taskRepo project.TaskRepository,
	clientRepo client.Repository,
	logger logger.Interface,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewInternalError("failed to load project")
	}

	status, err := project.ParseStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.ClientID != nil {
		if _, err := uc.clientRepo.GetByID(ctx, *cmd.ClientID); err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewValidationError("referenced client does not exist")
			}
			return nil, apperrors.NewInternalError("failed to load client")
		}
	}

	if err := p.Update(cmd.Name, cmd.Description, status, cmd.ClientID, cmd.Deadline); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", p.ID())
		return nil, apperrors.NewInternalError("failed to update project")
	}

	tasks, err := uc.taskRepo.ListByProjectID(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list project tasks", "error", err, "project_id", p.ID())
		return nil, apperrors.NewInternalError("failed to list project tasks")
	}
	return dto.ToProjectDTO(p, tasks, true), nil
}

type DeleteProjectCommand struct {
	ProjectID uint
}

// DeleteProjectUseCase removes a project together with its tasks.
type DeleteProjectUseCase struct {
	projectRepo project.Repository
	taskRepo    project.TaskRepository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	taskRepo project.TaskRepository,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: projectRepo, taskRepo: taskRepo, logger: logger}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("project not found")
		}
		return apperrors.NewInternalError("failed to load project")
	}

	if err := uc.taskRepo.DeleteByProjectID(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project tasks", "error", err, "project_id", cmd.ProjectID)
		return apperrors.NewInternalError("failed to delete project tasks")
	}
	if err := uc.projectRepo.Delete(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project", "error", err, "project_id", cmd.ProjectID)
		return apperrors.NewInternalError("failed to delete project")
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}

type GetProjectQuery struct {
	ProjectID uint
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	taskRepo    project.TaskRepository
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.Repository,
	taskRepo project.TaskRepository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, taskRepo: taskRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	p, err := uc.projectRepo.GetByID(ctx, query.ProjectID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewInternalError("failed to load project")
	}
	tasks, err := uc.taskRepo.ListByProjectID(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list project tasks", "error", err, "project_id", p.ID())
		return nil, apperrors.NewInternalError("failed to list project tasks")
	}
	return dto.ToProjectDTO(p, tasks, true), nil
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	taskRepo    project.TaskRepository
	logger      logger.Interface
}

func NewListProjectsUseCase(
	projectRepo project.Repository,
	taskRepo project.TaskRepository,
	logger logger.Interface,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, taskRepo: taskRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]*dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, apperrors.NewInternalError("failed to list projects")
	}

	dtos := make([]*dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		tasks, err := uc.taskRepo.ListByProjectID(ctx, p.ID())
		if err != nil {
			uc.logger.Errorw("failed to list project tasks", "error", err, "project_id", p.ID())
			return nil, apperrors.NewInternalError("failed to list project tasks")
		}
		dtos = append(dtos, dto.ToProjectDTO(p, tasks, false))
	}
	return dtos, nil
}
