package usecases

import (
	"context"

	"supportal/internal/domain/request"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
)

type ListTokensResult struct {
	Tokens []TokenDTO `json:"tokens"`
}

// ListTokensUseCase returns all client tokens with per-client request counts,
// newest first. The counts drive the delete guard in the admin UI.
type ListTokensUseCase struct {
	tokenRepo   token.Repository
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListTokensUseCase(
	tokenRepo token.Repository,
	requestRepo request.Repository,
	logger logger.Interface,
) *ListTokensUseCase {
	return &ListTokensUseCase{
		tokenRepo:   tokenRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListTokensUseCase) Execute(ctx context.Context) (*ListTokensResult, error) {
	tokens, err := uc.tokenRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tokens", "error", err)
		return nil, errors.NewInternalError("failed to list tokens")
	}

	out := make([]TokenDTO, 0, len(tokens))
	for _, t := range tokens {
		count, err := uc.requestRepo.CountByClientID(ctx, t.ClientID())
		if err != nil {
			uc.logger.Errorw("failed to count requests", "client_id", t.ClientID(), "error", err)
			return nil, errors.NewInternalError("failed to list tokens")
		}
		out = append(out, TokenDTO{
			Token:        t.Token(),
			ClientID:     t.ClientID(),
			ClientName:   t.ClientName(),
			ClientEmail:  t.ClientEmail(),
			CreatedAt:    t.CreatedAt(),
			RequestCount: count,
		})
	}

	return &ListTokensResult{Tokens: out}, nil
}
