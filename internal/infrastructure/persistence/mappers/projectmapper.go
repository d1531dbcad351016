package mappers

import (
	"fmt"

	"github.com/gestio-app/gestio/internal/domain/project"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
)

type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) (*project.Project, error)
	ToModel(entity *project.Project) *models.ProjectModel
	ToEntities(models []*models.ProjectModel) ([]*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) (*project.Project, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := project.ReconstructProject(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		project.Status(model.Status),
		model.ClientID,
		model.Deadline,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct project entity: %w", err)
	}
	return entity, nil
}

func (m *ProjectMapperImpl) ToModel(entity *project.Project) *models.ProjectModel {
	if entity == nil {
		return nil
	}
	return &models.ProjectModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Status:      string(entity.Status()),
		ClientID:    entity.ClientID(),
		Deadline:    entity.Deadline(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *ProjectMapperImpl) ToEntities(modelList []*models.ProjectModel) ([]*project.Project, error) {
	entities := make([]*project.Project, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}

type TaskMapper interface {
	ToEntity(model *models.TaskModel) (*project.Task, error)
	ToModel(entity *project.Task) *models.TaskModel
	ToEntities(models []*models.TaskModel) ([]*project.Task, error)
}

type TaskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToEntity(model *models.TaskModel) (*project.Task, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := project.ReconstructTask(
		model.ID,
		model.SID,
		model.ProjectID,
		model.Title,
		project.TaskStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct task entity: %w", err)
	}
	return entity, nil
}

func (m *TaskMapperImpl) ToModel(entity *project.Task) *models.TaskModel {
	if entity == nil {
		return nil
	}
	return &models.TaskModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		ProjectID: entity.ProjectID(),
		Title:     entity.Title(),
		Status:    string(entity.Status()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *TaskMapperImpl) ToEntities(modelList []*models.TaskModel) ([]*project.Task, error) {
	entities := make([]*project.Task, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
