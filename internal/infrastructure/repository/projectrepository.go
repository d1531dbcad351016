package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestio-app/gestio/internal/domain/project"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/mappers"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set project ID: %w", err)
	}
	return nil
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProjectRepositoryImpl) ListAll(ctx context.Context) ([]*project.Project, error) {
	var modelList []*models.ProjectModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *ProjectRepositoryImpl) ListByClientID(ctx context.Context, clientID uint) ([]*project.Project, error) {
	var modelList []*models.ProjectModel
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by client: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, projectID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectModel{}, projectID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *ProjectRepositoryImpl) ClearClientRefs(ctx context.Context, clientID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear client references: %w", err)
	}
	return nil
}

type TaskRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(db *gorm.DB) project.TaskRepository {
	return &TaskRepositoryImpl{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, t *project.Task) error {
	model := r.mapper.ToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set task ID: %w", err)
	}
	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, taskID uint) (*project.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).First(&model, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TaskRepositoryImpl) ListByProjectID(ctx context.Context, projectID uint) ([]*project.Task, error) {
	var modelList []*models.TaskModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, t *project.Task) error {
	model := r.mapper.ToModel(t)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("task not found")
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, taskID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TaskModel{}, taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("task not found")
	}
	return nil
}

func (r *TaskRepositoryImpl) DeleteByProjectID(ctx context.Context, projectID uint) error {
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.TaskModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete tasks by project: %w", err)
	}
	return nil
}
