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

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewMessageRepository(database *gorm.DB) request.MessageRepository {
	return &MessageRepositoryImpl{
		db:     database,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *MessageRepositoryImpl) Save(ctx context.Context, msg *request.Message) error {
	model := r.mapper.MessageToModel(msg)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return msg.SetID(model.ID)
}

func (r *MessageRepositoryImpl) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Message, error) {
	var modelList []*models.MessageModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for request: %w", err)
	}

	messages := make([]*request.Message, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.MessageToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map message model to entity: %w", err)
		}
		messages = append(messages, entity)
	}

	return messages, nil
}
