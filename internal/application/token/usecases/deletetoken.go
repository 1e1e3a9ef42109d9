package usecases

import (
	"context"
	"fmt"

	"supportal/internal/domain/request"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
)

type DeleteTokenCommand struct {
	Token string
}

// DeleteTokenUseCase removes a client token. Deletion is refused while any
// support request still references the client; the invariant is enforced
// here, not by a storage cascade.
type DeleteTokenUseCase struct {
	tokenRepo   token.Repository
	requestRepo request.Repository
	logger      logger.Interface
}

func NewDeleteTokenUseCase(
	tokenRepo token.Repository,
	requestRepo request.Repository,
	logger logger.Interface,
) *DeleteTokenUseCase {
	return &DeleteTokenUseCase{
		tokenRepo:   tokenRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *DeleteTokenUseCase) Execute(ctx context.Context, cmd DeleteTokenCommand) error {
	if cmd.Token == "" {
		return errors.NewValidationError("token is required")
	}

	existing, err := uc.tokenRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("token not found")
		}
		uc.logger.Errorw("failed to load token", "error", err)
		return errors.NewInternalError("failed to delete token")
	}

	count, err := uc.requestRepo.CountByClientID(ctx, existing.ClientID())
	if err != nil {
		uc.logger.Errorw("failed to count requests", "client_id", existing.ClientID(), "error", err)
		return errors.NewInternalError("failed to delete token")
	}
	if count > 0 {
		return errors.NewValidationError(
			fmt.Sprintf("cannot delete: %d support request(s) are associated with this client", count))
	}

	if err := uc.tokenRepo.Delete(ctx, cmd.Token); err != nil {
		uc.logger.Errorw("failed to delete token", "client_id", existing.ClientID(), "error", err)
		return errors.NewInternalError("failed to delete token")
	}

	uc.logger.Infow("client token deleted", "client_id", existing.ClientID())
	return nil
}
