package request

import (
	"fmt"
	"time"

	"supportal/internal/shared/biztime"
)

// SenderType tags a message with the role that wrote it.
type SenderType string

const (
	SenderAdmin  SenderType = "admin"
	SenderClient SenderType = "client"
)

func (s SenderType) IsValid() bool {
	return s == SenderAdmin || s == SenderClient
}

func (s SenderType) String() string {
	return string(s)
}

// Message is one entry in a request's conversation thread. Messages are
// append-only; ordering is creation order.
type Message struct {
	id         uint
	requestID  uint
	content    string
	senderType SenderType
	createdAt  time.Time
}

func NewMessage(requestID uint, content string, senderType SenderType) (*Message, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 10000 {
		return nil, fmt.Errorf("content exceeds maximum length of 10000 characters")
	}
	if !senderType.IsValid() {
		return nil, fmt.Errorf("invalid sender type: %s", senderType)
	}

	return &Message{
		requestID:  requestID,
		content:    content,
		senderType: senderType,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	requestID uint,
	content string,
	senderType SenderType,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if !senderType.IsValid() {
		return nil, fmt.Errorf("invalid sender type: %s", senderType)
	}

	return &Message{
		id:         id,
		requestID:  requestID,
		content:    content,
		senderType: senderType,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) RequestID() uint {
	return m.requestID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) SenderType() SenderType {
	return m.senderType
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
