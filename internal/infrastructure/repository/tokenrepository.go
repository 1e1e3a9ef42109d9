package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"supportal/internal/domain/token"
	"supportal/internal/infrastructure/persistence/mappers"
	"supportal/internal/infrastructure/persistence/models"
	"supportal/internal/shared/db"
	"supportal/internal/shared/errors"
)

type TokenRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TokenMapper
}

func NewTokenRepository(database *gorm.DB) token.Repository {
	return &TokenRepositoryImpl{
		db:     database,
		mapper: mappers.NewTokenMapper(),
	}
}

func (r *TokenRepositoryImpl) Save(ctx context.Context, t *token.ClientToken) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("client ID already has a token")
		}
		return fmt.Errorf("failed to save client token: %w", err)
	}

	return nil
}

func (r *TokenRepositoryImpl) GetByToken(ctx context.Context, tokenValue string) (*token.ClientToken, error) {
	var model models.ClientTokenModel

	err := db.GetTxFromContext(ctx, r.db).Where("token = ?", tokenValue).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("token not found")
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TokenRepositoryImpl) GetByClientID(ctx context.Context, clientID string) (*token.ClientToken, error) {
	var model models.ClientTokenModel

	err := db.GetTxFromContext(ctx, r.db).Where("client_id = ?", clientID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("token not found for client")
		}
		return nil, fmt.Errorf("failed to get token by client ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TokenRepositoryImpl) List(ctx context.Context) ([]*token.ClientToken, error) {
	var modelList []*models.ClientTokenModel

	err := db.GetTxFromContext(ctx, r.db).Order("created_at DESC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	tokens := make([]*token.ClientToken, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map token model to entity: %w", err)
		}
		tokens = append(tokens, entity)
	}

	return tokens, nil
}

func (r *TokenRepositoryImpl) Delete(ctx context.Context, tokenValue string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("token = ?", tokenValue).Delete(&models.ClientTokenModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete token: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("token not found")
	}

	return nil
}
