package dto

import (
	"time"

	"supportal/internal/domain/request"
)

// RequestDTO is the full admin-facing representation of a support request.
type RequestDTO struct {
	ID            uint      `json:"id"`
	ClientID      string    `json:"client_id"`
	RequestType   string    `json:"request_type"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	InternalNotes string    `json:"internal_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClientRequestDTO is the reduced view returned to clients; internal notes
// and tenant identifiers are not exposed.
type ClientRequestDTO struct {
	ID          uint      `json:"id"`
	RequestType string    `json:"request_type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MessageDTO struct {
	ID         uint      `json:"id"`
	RequestID  uint      `json:"request_id"`
	Content    string    `json:"content"`
	SenderType string    `json:"sender_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type ImageDTO struct {
	ID         uint      `json:"id"`
	RequestID  uint      `json:"request_id"`
	ImageURL   string    `json:"image_url"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadErrorDTO reports one attachment that failed validation or storage.
// Upload failures are partial: the request and other images still persist.
type UploadErrorDTO struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

func FromRequest(r *request.SupportRequest) RequestDTO {
	return RequestDTO{
		ID:            r.ID(),
		ClientID:      r.ClientID(),
		RequestType:   r.RequestType().String(),
		Description:   r.Description(),
		Status:        r.Status().String(),
		InternalNotes: r.InternalNotes(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func FromRequests(rs []*request.SupportRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRequest(r))
	}
	return out
}

func ClientViewFromRequest(r *request.SupportRequest) ClientRequestDTO {
	return ClientRequestDTO{
		ID:          r.ID(),
		RequestType: r.RequestType().String(),
		Description: r.Description(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func ClientViewFromRequests(rs []*request.SupportRequest) []ClientRequestDTO {
	out := make([]ClientRequestDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ClientViewFromRequest(r))
	}
	return out
}

func FromMessage(m *request.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID(),
		RequestID:  m.RequestID(),
		Content:    m.Content(),
		SenderType: m.SenderType().String(),
		CreatedAt:  m.CreatedAt(),
	}
}

func FromMessages(ms []*request.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

func FromImage(i *request.Image) ImageDTO {
	return ImageDTO{
		ID:         i.ID(),
		RequestID:  i.RequestID(),
		ImageURL:   i.ImageURL(),
		Filename:   i.Filename(),
		Size:       i.Size(),
		UploadedAt: i.UploadedAt(),
	}
}

func FromImages(is []*request.Image) []ImageDTO {
	out := make([]ImageDTO, 0, len(is))
	for _, i := range is {
		out = append(out, FromImage(i))
	}
	return out
}
