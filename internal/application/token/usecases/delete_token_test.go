package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
)

func deleteTokenRepo(t *testing.T, deleted *string) *mockTokenRepository {
	t.Helper()
	existing, err := token.NewClientToken("acme", "Acme Corp", "")
	require.NoError(t, err)

	return &mockTokenRepository{
		GetByTokenFunc: func(ctx context.Context, tokenValue string) (*token.ClientToken, error) {
			if tokenValue != existing.Token() {
				return nil, errors.NewNotFoundError("token not found")
			}
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, tokenValue string) error {
			if deleted != nil {
				*deleted = tokenValue
			}
			return nil
		},
		SaveFunc: func(ctx context.Context, tok *token.ClientToken) error { return nil },
		GetByClientIDFunc: func(ctx context.Context, clientID string) (*token.ClientToken, error) {
			return existing, nil
		},
		ListFunc: func(ctx context.Context) ([]*token.ClientToken, error) {
			return []*token.ClientToken{existing}, nil
		},
	}
}

func TestDeleteTokenUseCase_Success(t *testing.T) {
	var deleted string
	tokenRepo := deleteTokenRepo(t, &deleted)

	existing, err := tokenRepo.GetByClientID(context.Background(), "acme")
	require.NoError(t, err)

	uc := NewDeleteTokenUseCase(tokenRepo, &mockRequestRepository{}, &mockLogger{})
	err = uc.Execute(context.Background(), DeleteTokenCommand{Token: existing.Token()})

	require.NoError(t, err)
	assert.Equal(t, existing.Token(), deleted)
}

func TestDeleteTokenUseCase_RefusedWhileRequestsExist(t *testing.T) {
	tokenRepo := deleteTokenRepo(t, nil)
	existing, err := tokenRepo.GetByClientID(context.Background(), "acme")
	require.NoError(t, err)

	requestRepo := &mockRequestRepository{
		CountByClientIDFunc: func(ctx context.Context, clientID string) (int64, error) {
			return 4, nil
		},
	}

	uc := NewDeleteTokenUseCase(tokenRepo, requestRepo, &mockLogger{})
	err = uc.Execute(context.Background(), DeleteTokenCommand{Token: existing.Token()})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "4 support request(s)")
}

func TestDeleteTokenUseCase_UnknownToken(t *testing.T) {
	tokenRepo := deleteTokenRepo(t, nil)

	uc := NewDeleteTokenUseCase(tokenRepo, &mockRequestRepository{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteTokenCommand{Token: "ghost_token"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListTokensUseCase_IncludesRequestCounts(t *testing.T) {
	tokenRepo := deleteTokenRepo(t, nil)
	requestRepo := &mockRequestRepository{
		CountByClientIDFunc: func(ctx context.Context, clientID string) (int64, error) {
			return 2, nil
		},
	}

	uc := NewListTokensUseCase(tokenRepo, requestRepo, &mockLogger{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Tokens, 1)
	assert.Equal(t, "acme", result.Tokens[0].ClientID)
	assert.Equal(t, int64(2), result.Tokens[0].RequestCount)
}
