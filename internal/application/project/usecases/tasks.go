package usecases

import (
	"context"

	"github.com/gestio-app/gestio/internal/application/project/dto"
	"github.com/gestio-app/gestio/internal/domain/project"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type CreateTaskCommand struct {
	ProjectID uint
	Title     string
	Status    string
}

type CreateTaskUseCase struct {
	projectRepo project.Repository
	taskRepo    project.TaskRepository
	logger      logger.Interface
}

func NewCreateTaskUseCase(
	projectRepo project.Repository,
	taskRepo project.TaskRepository,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{projectRepo: projectRepo, taskRepo: taskRepo, logger: logger}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*dto.TaskDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewInternalError("failed to load project")
	}

	status, err := project.ParseTaskStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	t, err := project.NewTask(cmd.ProjectID, cmd.Title, status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.taskRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist task", "error", err, "project_id", cmd.ProjectID)
		return nil, apperrors.NewInternalError("failed to create task")
	}

	uc.logger.Infow("task created", "task_id", t.ID(), "project_id", cmd.ProjectID)
	return dto.ToTaskDTO(t), nil
}

type UpdateTaskCommand struct {
	TaskID uint
	Title  string
	Status string
}

type UpdateTaskUseCase struct {
	taskRepo project.TaskRepository
	logger   logger.Interface
}

func NewUpdateTaskUseCase(taskRepo project.TaskRepository, logger logger.Interface) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*dto.TaskDTO, error) {
	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, apperrors.NewInternalError("failed to load task")
	}

	status, err := project.ParseTaskStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := t.Update(cmd.Title, status); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "error", err, "task_id", t.ID())
		return nil, apperrors.NewInternalError("failed to update task")
	}
	return dto.ToTaskDTO(t), nil
}

type DeleteTaskCommand struct {
	TaskID uint
}

type DeleteTaskUseCase struct {
	taskRepo project.TaskRepository
	logger   logger.Interface
}

func NewDeleteTaskUseCase(taskRepo project.TaskRepository, logger logger.Interface) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) error {
	if _, err := uc.taskRepo.GetByID(ctx, cmd.TaskID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("task not found")
		}
		return apperrors.NewInternalError("failed to load task")
	}
	if err := uc.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		uc.logger.Errorw("failed to delete task", "error", err, "task_id", cmd.TaskID)
		return apperrors.NewInternalError("failed to delete task")
	}
	uc.logger.Infow("task deleted", "task_id", cmd.TaskID)
	return nil
}

type ListTasksQuery struct {
	ProjectID uint
}

type ListTasksUseCase struct {
	projectRepo project.Repository
	taskRepo    project.TaskRepository
	logger      logger.Interface
}

func NewListTasksUseCase(
	projectRepo project.Repository,
	taskRepo project.TaskRepository,
	logger logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{projectRepo: projectRepo, taskRepo: taskRepo, logger: logger}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) ([]*dto.TaskDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, query.ProjectID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewInternalError("failed to load project")
	}
	tasks, err := uc.taskRepo.ListByProjectID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err, "project_id", query.ProjectID)
		return nil, apperrors.NewInternalError("failed to list tasks")
	}
	return dto.ToTaskDTOs(tasks), nil
}
