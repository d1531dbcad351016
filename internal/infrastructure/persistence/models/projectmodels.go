package models

import (
	"time"

	"github.com/gestio-app/gestio/internal/shared/constants"
)

type ProjectModel struct {
	ID          uint    `gorm:"primaryKey"`
	SID         string  `gorm:"size:32;uniqueIndex;not null"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text"`
	Status      string  `gorm:"size:32;not null;default:'planning';index"`
	ClientID    *uint   `gorm:"index"`
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

type TaskModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"size:32;uniqueIndex;not null"`
	ProjectID uint   `gorm:"not null;index"`
	Title     string `gorm:"size:255;not null"`
	Status    string `gorm:"size:32;not null;default:'todo'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TaskModel) TableName() string {
	return constants.TableTasks
}
