package request

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "supportal/internal/domain/request/valueobjects"
)

func TestNewSupportRequest(t *testing.T) {
	req, err := NewSupportRequest("acme", vo.TypeTechnicalIssue, "login page returns 500")

	require.NoError(t, err)
	assert.Equal(t, uint(0), req.ID())
	assert.Equal(t, "acme", req.ClientID())
	assert.Equal(t, vo.TypeTechnicalIssue, req.RequestType())
	assert.Equal(t, vo.StatusNew, req.Status())
	assert.Empty(t, req.InternalNotes())
	assert.Equal(t, req.CreatedAt(), req.UpdatedAt())
}

func TestNewSupportRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		clientID    string
		requestType vo.RequestType
		description string
	}{
		{"missing client ID", "", vo.TypeOther, "help"},
		{"invalid type", "acme", vo.RequestType("Complaint"), "help"},
		{"missing description", "acme", vo.TypeOther, ""},
		{"oversized description", "acme", vo.TypeOther, strings.Repeat("a", 10001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSupportRequest(tt.clientID, tt.requestType, tt.description)
			assert.Error(t, err)
		})
	}
}

func TestSupportRequest_SetID(t *testing.T) {
	req, err := NewSupportRequest("acme", vo.TypeOther, "help")
	require.NoError(t, err)

	require.NoError(t, req.SetID(7))
	assert.Equal(t, uint(7), req.ID())

	assert.Error(t, req.SetID(8))
	assert.Equal(t, uint(7), req.ID())
}

func TestSupportRequest_ChangeStatus(t *testing.T) {
	req := reconstructedRequest(t)
	before := req.UpdatedAt()

	require.NoError(t, req.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, vo.StatusResolved, req.Status())
	assert.True(t, req.UpdatedAt().After(before))

	// Backwards moves are allowed.
	require.NoError(t, req.ChangeStatus(vo.StatusNew))
	assert.Equal(t, vo.StatusNew, req.Status())

	assert.Error(t, req.ChangeStatus(vo.Status("archived")))
	assert.Equal(t, vo.StatusNew, req.Status())
}

func TestSupportRequest_SetInternalNotesAndTouch(t *testing.T) {
	req := reconstructedRequest(t)

	before := req.UpdatedAt()
	req.SetInternalNotes("waiting on logs")
	assert.Equal(t, "waiting on logs", req.InternalNotes())
	assert.True(t, req.UpdatedAt().After(before))

	before = req.UpdatedAt()
	req.Touch()
	assert.True(t, req.UpdatedAt().After(before))
}

func TestSupportRequest_BelongsTo(t *testing.T) {
	req := reconstructedRequest(t)

	assert.True(t, req.BelongsTo("acme"))
	assert.False(t, req.BelongsTo("globex"))
}

func reconstructedRequest(t *testing.T) *SupportRequest {
	t.Helper()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	req, err := ReconstructSupportRequest(
		42, "acme", vo.TypeTechnicalIssue, "login page returns 500",
		vo.StatusInProgress, "", at, at,
	)
	require.NoError(t, err)
	return req
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(42, "any progress on this?", SenderClient)

	require.NoError(t, err)
	assert.Equal(t, uint(42), msg.RequestID())
	assert.Equal(t, "any progress on this?", msg.Content())
	assert.Equal(t, SenderClient, msg.SenderType())
	assert.False(t, msg.CreatedAt().IsZero())
}

func TestNewMessage_Validation(t *testing.T) {
	_, err := NewMessage(0, "hello", SenderAdmin)
	assert.Error(t, err)

	_, err = NewMessage(42, "", SenderAdmin)
	assert.Error(t, err)

	_, err = NewMessage(42, strings.Repeat("a", 10001), SenderAdmin)
	assert.Error(t, err)

	_, err = NewMessage(42, "hello", SenderType("bot"))
	assert.Error(t, err)
}

func TestNewImage(t *testing.T) {
	img, err := NewImage(42, "https://cdn.example.test/42/screenshot.png", "screenshot.png", 2048)

	require.NoError(t, err)
	assert.Equal(t, uint(42), img.RequestID())
	assert.Equal(t, "screenshot.png", img.Filename())
	assert.Equal(t, int64(2048), img.Size())
	assert.False(t, img.UploadedAt().IsZero())
}

func TestNewImage_Validation(t *testing.T) {
	_, err := NewImage(0, "https://x/y.png", "y.png", 1)
	assert.Error(t, err)

	_, err = NewImage(42, "", "y.png", 1)
	assert.Error(t, err)

	_, err = NewImage(42, "https://x/y.png", "", 1)
	assert.Error(t, err)

	_, err = NewImage(42, "https://x/y.png", "y.png", 0)
	assert.Error(t, err)
}
