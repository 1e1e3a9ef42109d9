package migration

import (
	"fmt"

	"gorm.io/gorm"

	"supportal/internal/infrastructure/persistence/models"
	"supportal/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientTokenModel{},
		&models.SupportRequestModel{},
		&models.MessageModel{},
		&models.RequestImageModel{},
	}
}

// GormAutoMigrateStrategy lets gorm reconcile the schema from the model
// structs. Development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	s.logger.Infow("gorm auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
