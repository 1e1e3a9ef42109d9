package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
)

func TestAddMessageUseCase_Success(t *testing.T) {
	req := testRequest(t, vo.StatusInProgress)
	before := req.UpdatedAt()

	var savedMsg *request.Message
	messageRepo := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, msg *request.Message) error {
			require.NoError(t, msg.SetID(11))
			savedMsg = msg
			return nil
		},
	}

	var updated *request.SupportRequest
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.SupportRequest, error) {
			return req, nil
		},
		UpdateFunc: func(ctx context.Context, r *request.SupportRequest) error {
			updated = r
			return nil
		},
	}
	mailer := &mockMailer{}

	uc := NewAddMessageUseCase(submitTokenRepo(t), requestRepo, messageRepo, mailer, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddMessageCommand{
		Token:     "acme_0123456789abcdef",
		RequestID: 42,
		Content:   "  any progress?  ",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), result.Message.ID)
	assert.Equal(t, "any progress?", result.Message.Content)
	assert.Equal(t, request.SenderClient.String(), result.Message.SenderType)

	require.NotNil(t, savedMsg)
	require.NotNil(t, updated)
	assert.True(t, updated.UpdatedAt().After(before))
	// the reply must not move the status
	assert.Equal(t, vo.StatusInProgress, updated.Status())

	calls := waitForCalls(t, mailer, 1)
	assert.Equal(t, "SendClientReplyNotification", calls[0].Method)
	assert.Equal(t, "Acme Corp", calls[0].Args[0])
	assert.Equal(t, "any progress?", calls[0].Args[3])
}

func TestAddMessageUseCase_ClosedRequestStillAcceptsReplies(t *testing.T) {
	req := testRequest(t, vo.StatusClosed)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.SupportRequest, error) {
			return req, nil
		},
	}

	uc := NewAddMessageUseCase(submitTokenRepo(t), requestRepo, &mockMessageRepository{}, &mockMailer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddMessageCommand{
		Token:     "acme_0123456789abcdef",
		RequestID: 42,
		Content:   "it broke again",
	})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, vo.StatusClosed, req.Status())
}

func TestAddMessageUseCase_ForbiddenForOtherClient(t *testing.T) {
	otherReq, err := request.ReconstructSupportRequest(
		42, "globex", vo.TypeOther, "different tenant",
		vo.StatusNew, "", time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.SupportRequest, error) {
			return otherReq, nil
		},
	}

	uc := NewAddMessageUseCase(submitTokenRepo(t), requestRepo, &mockMessageRepository{}, &mockMailer{}, &mockLogger{})
	_, err = uc.Execute(context.Background(), AddMessageCommand{
		Token:     "acme_0123456789abcdef",
		RequestID: 42,
		Content:   "let me in",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAddMessageUseCase_RequestNotFound(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.SupportRequest, error) {
			return nil, errors.NewNotFoundError("request not found")
		},
	}

	uc := NewAddMessageUseCase(submitTokenRepo(t), requestRepo, &mockMessageRepository{}, &mockMailer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddMessageCommand{
		Token:     "acme_0123456789abcdef",
		RequestID: 99,
		Content:   "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddMessageUseCase_InvalidToken(t *testing.T) {
	uc := NewAddMessageUseCase(submitTokenRepo(t), &mockRequestRepository{}, &mockMessageRepository{}, &mockMailer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddMessageCommand{
		Token:     "bogus",
		RequestID: 42,
		Content:   "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestAddMessageUseCase_MissingContent(t *testing.T) {
	tokenRepo := &mockTokenRepository{
		GetByTokenFunc: func(ctx context.Context, tokenValue string) (*token.ClientToken, error) {
			t.Fatal("token lookup should not happen for invalid input")
			return nil, nil
		},
	}

	uc := NewAddMessageUseCase(tokenRepo, &mockRequestRepository{}, &mockMessageRepository{}, &mockMailer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddMessageCommand{
		Token:     "acme_0123456789abcdef",
		RequestID: 42,
		Content:   "   ",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
