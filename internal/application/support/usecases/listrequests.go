package usecases

import (
	"context"

	"supportal/internal/application/support/dto"
	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
)

type ListClientRequestsQuery struct {
	Token string
}

type ListClientRequestsResult struct {
	Requests   []dto.ClientRequestDTO `json:"requests"`
	ClientName string                 `json:"client_name"`
}

// ListClientRequestsUseCase returns a client's own requests, newest first.
type ListClientRequestsUseCase struct {
	tokenRepo   token.Repository
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListClientRequestsUseCase(
	tokenRepo token.Repository,
	requestRepo request.Repository,
	logger logger.Interface,
) *ListClientRequestsUseCase {
	return &ListClientRequestsUseCase{
		tokenRepo:   tokenRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListClientRequestsUseCase) Execute(ctx context.Context, query ListClientRequestsQuery) (*ListClientRequestsResult, error) {
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

	requests, err := uc.requestRepo.ListByClientID(ctx, clientToken.ClientID())
	if err != nil {
		uc.logger.Errorw("failed to list requests", "client_id", clientToken.ClientID(), "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	return &ListClientRequestsResult{
		Requests:   dto.ClientViewFromRequests(requests),
		ClientName: clientToken.ClientName(),
	}, nil
}

// ClientSummary is one entry of the admin client directory.
type ClientSummary struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
}

// StatusCounts carries the open-workload counters shown on the admin board.
type StatusCounts struct {
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
}

type AdminListRequestsQuery struct {
	ClientID    string
	RequestType string
	Status      string
}

type AdminListRequestsResult struct {
	Requests []dto.RequestDTO `json:"requests"`
	Clients  []ClientSummary  `json:"clients"`
	Counts   StatusCounts     `json:"counts"`
}

// AdminListRequestsUseCase returns all requests matching the optional
// filters, the client directory, and the new/in_progress counts.
type AdminListRequestsUseCase struct {
	requestRepo request.Repository
	tokenRepo   token.Repository
	logger      logger.Interface
}

func NewAdminListRequestsUseCase(
	requestRepo request.Repository,
	tokenRepo token.Repository,
	logger logger.Interface,
) *AdminListRequestsUseCase {
	return &AdminListRequestsUseCase{
		requestRepo: requestRepo,
		tokenRepo:   tokenRepo,
		logger:      logger,
	}
}

func (uc *AdminListRequestsUseCase) Execute(ctx context.Context, query AdminListRequestsQuery) (*AdminListRequestsResult, error) {
	filter := request.Filter{}
	if query.ClientID != "" {
		clientID := query.ClientID
		filter.ClientID = &clientID
	}
	if query.RequestType != "" {
		rt, err := vo.NewRequestType(query.RequestType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.RequestType = &rt
	}
	if query.Status != "" {
		st, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &st
	}

	requests, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	tokens, err := uc.tokenRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}
	clients := make([]ClientSummary, 0, len(tokens))
	for _, t := range tokens {
		clients = append(clients, ClientSummary{ClientID: t.ClientID(), ClientName: t.ClientName()})
	}

	newCount, err := uc.requestRepo.CountByStatus(ctx, vo.StatusNew)
	if err != nil {
		uc.logger.Errorw("failed to count new requests", "error", err)
		return nil, errors.NewInternalError("failed to count requests")
	}
	inProgressCount, err := uc.requestRepo.CountByStatus(ctx, vo.StatusInProgress)
	if err != nil {
		uc.logger.Errorw("failed to count in-progress requests", "error", err)
		return nil, errors.NewInternalError("failed to count requests")
	}

	return &AdminListRequestsResult{
		Requests: dto.FromRequests(requests),
		Clients:  clients,
		Counts:   StatusCounts{New: newCount, InProgress: inProgressCount},
	}, nil
}
