package usecases

import (
	"context"
	"fmt"
	"strings"

	"supportal/internal/application/support/dto"
	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/goroutine"
	"supportal/internal/shared/logger"
)

// UpdateRequestCommand carries an admin update. NewStatus is nil when the
// caller did not supply a status; Note is trimmed and counts as absent when
// empty after trimming. The admin capability is verified by the caller.
type UpdateRequestCommand struct {
	RequestID uint
	NewStatus *vo.Status
	Note      string
}

type UpdateRequestResult struct {
	Request        dto.RequestDTO `json:"request"`
	PreviousStatus string         `json:"previous_status"`
	StatusChanged  bool           `json:"status_changed"`
	NoteAdded      bool           `json:"note_added"`
}

// UpdateRequestUseCase orchestrates status changes and note additions on a
// support request and decides which client notification, if any, to send.
type UpdateRequestUseCase struct {
	requestRepo   request.Repository
	messageRepo   request.MessageRepository
	tokenRepo     token.Repository
	txRunner      TransactionRunner
	mailer        Mailer
	portalBaseURL string
	logger        logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	messageRepo request.MessageRepository,
	tokenRepo token.Repository,
	txRunner TransactionRunner,
	mailer Mailer,
	portalBaseURL string,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo:   requestRepo,
		messageRepo:   messageRepo,
		tokenRepo:     tokenRepo,
		txRunner:      txRunner,
		mailer:        mailer,
		portalBaseURL: portalBaseURL,
		logger:        logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error) {
	uc.logger.Infow("executing update request use case", "request_id", cmd.RequestID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.NewStatus != nil && !cmd.NewStatus.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %s", *cmd.NewStatus))
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("request not found")
		}
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to load request")
	}

	// The client token provides the notification recipient. Its absence or a
	// lookup failure never blocks the update, only the notification.
	clientToken, tokErr := uc.tokenRepo.GetByClientID(ctx, req.ClientID())
	if tokErr != nil {
		if !errors.IsNotFoundError(tokErr) {
			uc.logger.Warnw("failed to load client token for notification",
				"client_id", req.ClientID(), "error", tokErr)
		}
		clientToken = nil
	}

	previousStatus := req.Status()
	effectiveStatus := previousStatus
	statusChanged := false
	if cmd.NewStatus != nil && *cmd.NewStatus != previousStatus {
		statusChanged = true
		effectiveStatus = *cmd.NewStatus
	}

	note := strings.TrimSpace(cmd.Note)
	notesUpdated := note != ""

	// Adding a note to a fresh request moves it to in_progress. An explicit
	// caller status that differs from the stored one wins over the auto
	// transition; a caller status equal to the stored `new` does not
	// suppress it, because the rule keys off the stored pre-update status.
	if notesUpdated && previousStatus.IsNew() && !statusChanged {
		effectiveStatus = vo.StatusInProgress
		statusChanged = true
	}

	if notesUpdated {
		req.SetInternalNotes(note)
	}
	if statusChanged {
		if err := req.ChangeStatus(effectiveStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if !notesUpdated && !statusChanged {
		req.Touch()
	}

	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}

		if notesUpdated {
			msg, err := request.NewMessage(req.ID(), note, request.SenderAdmin)
			if err != nil {
				return fmt.Errorf("failed to create message: %w", err)
			}
			if err := uc.messageRepo.Save(txCtx, msg); err != nil {
				return fmt.Errorf("failed to save message: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist request update", "request_id", cmd.RequestID, "error", txErr)
		return nil, errors.NewInternalError("failed to update request")
	}

	uc.dispatchNotification(clientToken, req, previousStatus, effectiveStatus, statusChanged, notesUpdated, note)

	uc.logger.Infow("request updated",
		"request_id", req.ID(),
		"previous_status", previousStatus,
		"status", req.Status(),
		"note_added", notesUpdated,
	)

	return &UpdateRequestResult{
		Request:        dto.FromRequest(req),
		PreviousStatus: previousStatus.String(),
		StatusChanged:  statusChanged,
		NoteAdded:      notesUpdated,
	}, nil
}

// dispatchNotification fires at most one client email for the whole update:
// the note notification when a note was added (it implicitly carries any
// status change), otherwise the status notification when only the status
// changed. Sending both for one admin action would duplicate emails.
func (uc *UpdateRequestUseCase) dispatchNotification(
	clientToken *token.ClientToken,
	req *request.SupportRequest,
	previousStatus, effectiveStatus vo.Status,
	statusChanged, notesUpdated bool,
	note string,
) {
	if clientToken == nil || !clientToken.HasEmail() {
		return
	}
	if !notesUpdated && !statusChanged {
		return
	}

	clientEmail := clientToken.ClientEmail()
	clientName := clientToken.ClientName()
	requestType := req.RequestType().String()
	portalURL := fmt.Sprintf("%s?token=%s", uc.portalBaseURL, clientToken.Token())

	goroutine.SafeGo(uc.logger, "update-request-notification", func() {
		var err error
		if notesUpdated {
			err = uc.mailer.SendClientNoteNotification(clientEmail, clientName, requestType, note, portalURL)
		} else {
			err = uc.mailer.SendClientStatusNotification(
				clientEmail, clientName, requestType,
				previousStatus.String(), effectiveStatus.String(), portalURL)
		}
		if err != nil {
			uc.logger.Errorw("failed to send client notification",
				"request_id", req.ID(), "client_id", req.ClientID(), "error", err)
		}
	})
}
