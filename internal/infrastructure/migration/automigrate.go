package migration

import (
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProductModel{},
		&models.SellerModel{},
		&models.ClientModel{},
		&models.ProjectModel{},
		&models.TaskModel{},
	}
}
