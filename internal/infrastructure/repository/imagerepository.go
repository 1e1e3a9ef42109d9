package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"supportal/internal/domain/request"
	"supportal/internal/infrastructure/persistence/mappers"
	"supportal/internal/infrastructure/persistence/models"
	"supportal/internal/shared/db"
)

type ImageRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewImageRepository(database *gorm.DB) request.ImageRepository {
	return &ImageRepositoryImpl{
		db:     database,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *ImageRepositoryImpl) Save(ctx context.Context, img *request.Image) error {
	model := r.mapper.ImageToModel(img)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request image: %w", err)
	}

	return img.SetID(model.ID)
}

func (r *ImageRepositoryImpl) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Image, error) {
	var modelList []*models.RequestImageModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("request_id = ?", requestID).
		Order("uploaded_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list images for request: %w", err)
	}

	images := make([]*request.Image, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.ImageToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map image model to entity: %w", err)
		}
		images = append(images, entity)
	}

	return images, nil
}
