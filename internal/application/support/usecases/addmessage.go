package usecases

import (
	"context"
	"strings"

	"supportal/internal/application/support/dto"
	"supportal/internal/domain/request"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/goroutine"
	"supportal/internal/shared/logger"
)

type AddMessageCommand struct {
	Token     string
	RequestID uint
	Content   string
}

type AddMessageResult struct {
	Message dto.MessageDTO `json:"message"`
}

// AddMessageUseCase appends a client reply to a request's thread. Replies
// never change the request status; only admin notes trigger the
// new to in_progress auto transition. Replies to closed requests are
// accepted: the thread has no closed-state guard at the API level.
type AddMessageUseCase struct {
	tokenRepo   token.Repository
	requestRepo request.Repository
	messageRepo request.MessageRepository
	mailer      Mailer
	logger      logger.Interface
}

func NewAddMessageUseCase(
	tokenRepo token.Repository,
	requestRepo request.Repository,
	messageRepo request.MessageRepository,
	mailer Mailer,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		tokenRepo:   tokenRepo,
		requestRepo: requestRepo,
		messageRepo: messageRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	content := strings.TrimSpace(cmd.Content)
	if cmd.Token == "" || cmd.RequestID == 0 || content == "" {
		return nil, errors.NewValidationError("token, request ID, and content are required")
	}

	clientToken, err := uc.tokenRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid token")
		}
		uc.logger.Errorw("failed to validate token", "error", err)
		return nil, errors.NewInternalError("failed to validate token")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to load request")
	}

	if !req.BelongsTo(clientToken.ClientID()) {
		uc.logger.Warnw("client attempted to reply to another tenant's request",
			"request_id", cmd.RequestID, "client_id", clientToken.ClientID())
		return nil, errors.NewForbiddenError("request does not belong to this client")
	}

	msg, err := request.NewMessage(req.ID(), content, request.SenderClient)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to save message", "request_id", req.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save message")
	}

	req.Touch()
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to refresh request timestamp", "request_id", req.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update request")
	}

	clientName := clientToken.ClientName()
	requestType := req.RequestType().String()
	status := req.Status().String()
	goroutine.SafeGo(uc.logger, "client-reply-notification", func() {
		if err := uc.mailer.SendClientReplyNotification(clientName, requestType, status, content); err != nil {
			uc.logger.Errorw("failed to send client reply notification", "request_id", req.ID(), "error", err)
		}
	})

	uc.logger.Infow("client message added", "request_id", req.ID(), "message_id", msg.ID())

	return &AddMessageResult{Message: dto.FromMessage(msg)}, nil
}
