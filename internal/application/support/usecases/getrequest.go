package usecases

import (
	"context"

	"supportal/internal/application/support/dto"
	"supportal/internal/domain/request"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
)

// GetRequestQuery fetches one request with its thread and images.
// Token identifies a client caller and enforces ownership; Admin bypasses
// the ownership check (capability already verified by the caller).
type GetRequestQuery struct {
	RequestID uint
	Token     string
	Admin     bool
}

type GetRequestResult struct {
	Request  dto.RequestDTO   `json:"request"`
	Messages []dto.MessageDTO `json:"messages"`
	Images   []dto.ImageDTO   `json:"images"`
}

type GetRequestUseCase struct {
	tokenRepo   token.Repository
	requestRepo request.Repository
	messageRepo request.MessageRepository
	imageRepo   request.ImageRepository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	tokenRepo token.Repository,
	requestRepo request.Repository,
	messageRepo request.MessageRepository,
	imageRepo request.ImageRepository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		tokenRepo:   tokenRepo,
		requestRepo: requestRepo,
		messageRepo: messageRepo,
		imageRepo:   imageRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*GetRequestResult, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "request_id", query.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to load request")
	}

	if !query.Admin {
		if query.Token == "" {
			return nil, errors.NewUnauthorizedError("token is required")
		}
		clientToken, err := uc.tokenRepo.GetByToken(ctx, query.Token)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewUnauthorizedError("invalid token")
			}
			uc.logger.Errorw("failed to validate token", "error", err)
			return nil, errors.NewInternalError("failed to validate token")
		}
		if !req.BelongsTo(clientToken.ClientID()) {
			return nil, errors.NewForbiddenError("request does not belong to this client")
		}
	}

	messages, err := uc.messageRepo.ListByRequestID(ctx, req.ID())
	if err != nil {
		uc.logger.Errorw("failed to load messages", "request_id", req.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load messages")
	}

	images, err := uc.imageRepo.ListByRequestID(ctx, req.ID())
	if err != nil {
		uc.logger.Errorw("failed to load images", "request_id", req.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load images")
	}

	return &GetRequestResult{
		Request:  dto.FromRequest(req),
		Messages: dto.FromMessages(messages),
		Images:   dto.FromImages(images),
	}, nil
}
