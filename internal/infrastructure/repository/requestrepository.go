package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/infrastructure/persistence/mappers"
	"supportal/internal/infrastructure/persistence/models"
	"supportal/internal/shared/db"
	"supportal/internal/shared/errors"
)

type RequestRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(database *gorm.DB) request.Repository {
	return &RequestRepositoryImpl{
		db:     database,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepositoryImpl) Save(ctx context.Context, req *request.SupportRequest) error {
	model := r.mapper.ToModel(req)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save support request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RequestRepositoryImpl) Update(ctx context.Context, req *request.SupportRequest) error {
	model := r.mapper.ToModel(req)

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update support request: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("request not found")
	}

	return nil
}

func (r *RequestRepositoryImpl) GetByID(ctx context.Context, requestID uint) (*request.SupportRequest, error) {
	var model models.SupportRequestModel

	err := db.GetTxFromContext(ctx, r.db).First(&model, requestID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request not found")
		}
		return nil, fmt.Errorf("failed to get request by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepositoryImpl) List(ctx context.Context, filter request.Filter) ([]*request.SupportRequest, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SupportRequestModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.RequestType != nil {
		query = query.Where("request_type = ?", filter.RequestType.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var modelList []*models.SupportRequestModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list support requests: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *RequestRepositoryImpl) ListByClientID(ctx context.Context, clientID string) ([]*request.SupportRequest, error) {
	var modelList []*models.SupportRequestModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for client: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *RequestRepositoryImpl) CountByClientID(ctx context.Context, clientID string) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SupportRequestModel{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count requests for client: %w", err)
	}

	return count, nil
}

func (r *RequestRepositoryImpl) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SupportRequestModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count requests by status: %w", err)
	}

	return count, nil
}

func (r *RequestRepositoryImpl) toDomainList(modelList []*models.SupportRequestModel) ([]*request.SupportRequest, error) {
	requests := make([]*request.SupportRequest, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map request model to entity: %w", err)
		}
		requests = append(requests, entity)
	}
	return requests, nil
}
