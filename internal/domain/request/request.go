package request

import (
	"fmt"
	"time"

	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/shared/biztime"
)

// SupportRequest is a client-submitted ticket tracked through the status
// lifecycle. Requests are never hard-deleted; all mutation after submission
// goes through the admin update workflow.
type SupportRequest struct {
	id            uint
	clientID      string
	requestType   vo.RequestType
	description   string
	status        vo.Status
	internalNotes string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSupportRequest(
	clientID string,
	requestType vo.RequestType,
	description string,
) (*SupportRequest, error) {
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if !requestType.IsValid() {
		return nil, fmt.Errorf("invalid request type")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 10000 {
		return nil, fmt.Errorf("description exceeds maximum length of 10000 characters")
	}

	now := biztime.NowUTC()
	return &SupportRequest{
		clientID:    clientID,
		requestType: requestType,
		description: description,
		status:      vo.StatusNew,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSupportRequest(
	id uint,
	clientID string,
	requestType vo.RequestType,
	description string,
	status vo.Status,
	internalNotes string,
	createdAt, updatedAt time.Time,
) (*SupportRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if !requestType.IsValid() {
		return nil, fmt.Errorf("invalid request type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &SupportRequest{
		id:            id,
		clientID:      clientID,
		requestType:   requestType,
		description:   description,
		status:        status,
		internalNotes: internalNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *SupportRequest) ID() uint {
	return r.id
}

func (r *SupportRequest) ClientID() string {
	return r.clientID
}

func (r *SupportRequest) RequestType() vo.RequestType {
	return r.requestType
}

func (r *SupportRequest) Description() string {
	return r.description
}

func (r *SupportRequest) Status() vo.Status {
	return r.status
}

func (r *SupportRequest) InternalNotes() string {
	return r.internalNotes
}

func (r *SupportRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *SupportRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *SupportRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// ChangeStatus sets the status. Any valid status is accepted regardless of
// the current one; the lifecycle is advisory, not enforced.
func (r *SupportRequest) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	r.status = newStatus
	r.updatedAt = biztime.NowUTC()
	return nil
}

// SetInternalNotes overwrites the legacy internal notes snapshot. The message
// thread carries the append-only history; this field only mirrors the most
// recent admin note for backward compatibility.
func (r *SupportRequest) SetInternalNotes(note string) {
	r.internalNotes = note
	r.updatedAt = biztime.NowUTC()
}

// Touch refreshes the updatedAt timestamp without other changes.
func (r *SupportRequest) Touch() {
	r.updatedAt = biztime.NowUTC()
}

// BelongsTo reports whether the request is owned by the given client.
func (r *SupportRequest) BelongsTo(clientID string) bool {
	return r.clientID == clientID
}
