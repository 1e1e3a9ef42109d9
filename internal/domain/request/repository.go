package request

import (
	"context"

	vo "supportal/internal/domain/request/valueobjects"
)

// Filter narrows admin listings. Nil fields are ignored.
type Filter struct {
	ClientID    *string
	RequestType *vo.RequestType
	Status      *vo.Status
}

type Repository interface {
	Save(ctx context.Context, req *SupportRequest) error
	Update(ctx context.Context, req *SupportRequest) error
	GetByID(ctx context.Context, requestID uint) (*SupportRequest, error)
	List(ctx context.Context, filter Filter) ([]*SupportRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]*SupportRequest, error)
	CountByClientID(ctx context.Context, clientID string) (int64, error)
	CountByStatus(ctx context.Context, status vo.Status) (int64, error)
}

type MessageRepository interface {
	Save(ctx context.Context, msg *Message) error
	ListByRequestID(ctx context.Context, requestID uint) ([]*Message, error)
}

type ImageRepository interface {
	Save(ctx context.Context, img *Image) error
	ListByRequestID(ctx context.Context, requestID uint) ([]*Image, error)
}
