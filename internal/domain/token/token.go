package token

import (
	"fmt"
	"regexp"
	"time"

	"supportal/internal/shared/biztime"
	"supportal/internal/shared/id"
)

// clientIDPattern restricts client IDs to lowercase slugs so they are safe
// in token prefixes, URLs and object-store keys.
var clientIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ClientToken is a long-lived opaque bearer capability identifying one client
// tenant. There is no expiry or rotation; the token value itself is the
// primary lookup key.
type ClientToken struct {
	token       string
	clientID    string
	clientName  string
	clientEmail string
	createdAt   time.Time
}

// NewClientToken mints a token for a client. clientEmail is optional; when
// empty the client receives no notification emails.
func NewClientToken(clientID, clientName, clientEmail string) (*ClientToken, error) {
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if !clientIDPattern.MatchString(clientID) {
		return nil, fmt.Errorf("client ID must be lowercase alphanumeric (with optional underscores/hyphens)")
	}
	if len(clientName) == 0 {
		return nil, fmt.Errorf("client name is required")
	}

	value, err := id.GenerateClientToken(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &ClientToken{
		token:       value,
		clientID:    clientID,
		clientName:  clientName,
		clientEmail: clientEmail,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructClientToken(
	tokenValue string,
	clientID, clientName, clientEmail string,
	createdAt time.Time,
) (*ClientToken, error) {
	if len(tokenValue) == 0 {
		return nil, fmt.Errorf("token value is required")
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &ClientToken{
		token:       tokenValue,
		clientID:    clientID,
		clientName:  clientName,
		clientEmail: clientEmail,
		createdAt:   createdAt,
	}, nil
}

func (t *ClientToken) Token() string {
	return t.token
}

func (t *ClientToken) ClientID() string {
	return t.clientID
}

func (t *ClientToken) ClientName() string {
	return t.clientName
}

func (t *ClientToken) ClientEmail() string {
	return t.clientEmail
}

func (t *ClientToken) CreatedAt() time.Time {
	return t.createdAt
}

// HasEmail reports whether client-facing notifications can be delivered.
func (t *ClientToken) HasEmail() bool {
	return t.clientEmail != ""
}

// IsValidClientID reports whether s is an acceptable client ID slug.
func IsValidClientID(s string) bool {
	return clientIDPattern.MatchString(s)
}
