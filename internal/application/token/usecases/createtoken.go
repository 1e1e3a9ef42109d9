package usecases

import (
	"context"
	"time"

	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
)

type CreateTokenCommand struct {
	ClientID    string
	ClientName  string
	ClientEmail string
}

type TokenDTO struct {
	Token        string    `json:"token"`
	ClientID     string    `json:"client_id"`
	ClientName   string    `json:"client_name"`
	ClientEmail  string    `json:"client_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	RequestCount int64     `json:"request_count"`
}

type CreateTokenResult struct {
	Token TokenDTO `json:"token"`
}

// CreateTokenUseCase mints an access token for a new client. Client IDs are
// unique and never reused; a second token for the same client ID is rejected.
type CreateTokenUseCase struct {
	tokenRepo token.Repository
	logger    logger.Interface
}

func NewCreateTokenUseCase(tokenRepo token.Repository, logger logger.Interface) *CreateTokenUseCase {
	return &CreateTokenUseCase{
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

func (uc *CreateTokenUseCase) Execute(ctx context.Context, cmd CreateTokenCommand) (*CreateTokenResult, error) {
	if cmd.ClientID == "" || cmd.ClientName == "" {
		return nil, errors.NewValidationError("client ID and name are required")
	}
	if !token.IsValidClientID(cmd.ClientID) {
		return nil, errors.NewValidationError(
			"client ID must be lowercase alphanumeric (with optional underscores/hyphens)")
	}

	existing, err := uc.tokenRepo.GetByClientID(ctx, cmd.ClientID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to create token")
	}
	if existing != nil {
		return nil, errors.NewConflictError("a token for this client ID already exists")
	}

	t, err := token.NewClientToken(cmd.ClientID, cmd.ClientName, cmd.ClientEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tokenRepo.Save(ctx, t); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a token for this client ID already exists")
		}
		uc.logger.Errorw("failed to save token", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to create token")
	}

	uc.logger.Infow("client token created", "client_id", t.ClientID())

	return &CreateTokenResult{
		Token: TokenDTO{
			Token:       t.Token(),
			ClientID:    t.ClientID(),
			ClientName:  t.ClientName(),
			ClientEmail: t.ClientEmail(),
			CreatedAt:   t.CreatedAt(),
		},
	}, nil
}
