package usecases

import (
	"context"
)

// Mailer is the notification dispatcher consumed by the support use cases.
// All sends are best-effort: callers dispatch them asynchronously and only
// log failures, never surface them as the operation's result.
type Mailer interface {
	// SendNewRequestNotification tells the support team a request was submitted.
	SendNewRequestNotification(clientName, requestType, description string, imageCount int) error

	// SendClientReplyNotification tells the support team a client replied.
	SendClientReplyNotification(clientName, requestType, status, content string) error

	// SendClientNoteNotification tells the client about a new admin note.
	// It implicitly communicates any status change made in the same action.
	SendClientNoteNotification(clientEmail, clientName, requestType, note, portalURL string) error

	// SendClientStatusNotification tells the client their request status changed.
	SendClientStatusNotification(clientEmail, clientName, requestType, oldStatus, newStatus, portalURL string) error
}

// AttachmentStore persists uploaded image bytes and returns a retrievable URL.
type AttachmentStore interface {
	Upload(ctx context.Context, requestID uint, filename, contentType string, data []byte) (string, error)
}

// TransactionRunner runs a function inside a storage transaction.
// *db.TransactionManager satisfies it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SubmitRequestExecutor interface {
	Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type ListClientRequestsExecutor interface {
	Execute(ctx context.Context, query ListClientRequestsQuery) (*ListClientRequestsResult, error)
}

type AdminListRequestsExecutor interface {
	Execute(ctx context.Context, query AdminListRequestsQuery) (*AdminListRequestsResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*GetRequestResult, error)
}
