package token

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportal/internal/application/token/usecases"
	"supportal/internal/interfaces/http/handlers/testutil"
	"supportal/internal/shared/errors"
)

type mockCreateTokenUC struct {
	result *usecases.CreateTokenResult
	err    error
	gotCmd usecases.CreateTokenCommand
}

func (m *mockCreateTokenUC) Execute(_ context.Context, cmd usecases.CreateTokenCommand) (*usecases.CreateTokenResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListTokensUC struct {
	result *usecases.ListTokensResult
	err    error
}

func (m *mockListTokensUC) Execute(_ context.Context) (*usecases.ListTokensResult, error) {
	return m.result, m.err
}

type mockDeleteTokenUC struct {
	err      error
	gotToken string
}

func (m *mockDeleteTokenUC) Execute(_ context.Context, cmd usecases.DeleteTokenCommand) error {
	m.gotToken = cmd.Token
	return m.err
}

func TestTokenHandler_CreateToken_Success(t *testing.T) {
	mockUC := &mockCreateTokenUC{
		result: &usecases.CreateTokenResult{
			Token: usecases.TokenDTO{Token: "acme_0123456789abcdef", ClientID: "acme"},
		},
	}
	handler := NewTokenHandler(mockUC, &mockListTokensUC{}, &mockDeleteTokenUC{})

	body := CreateTokenBody{ClientID: "acme", ClientName: "Acme Corp", ClientEmail: "ops@acme.test"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/support/tokens", body)

	handler.CreateToken(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "acme", mockUC.gotCmd.ClientID)
	assert.Equal(t, "ops@acme.test", mockUC.gotCmd.ClientEmail)
}

func TestTokenHandler_CreateToken_BindError(t *testing.T) {
	handler := NewTokenHandler(&mockCreateTokenUC{}, &mockListTokensUC{}, &mockDeleteTokenUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/support/tokens", map[string]string{
		"clientId": "acme",
	})

	handler.CreateToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenHandler_CreateToken_Conflict(t *testing.T) {
	mockUC := &mockCreateTokenUC{err: errors.NewConflictError("client ID already has a token")}
	handler := NewTokenHandler(mockUC, &mockListTokensUC{}, &mockDeleteTokenUC{})

	body := CreateTokenBody{ClientID: "acme", ClientName: "Acme Corp"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/support/tokens", body)

	handler.CreateToken(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTokenHandler_ListTokens(t *testing.T) {
	mockUC := &mockListTokensUC{
		result: &usecases.ListTokensResult{
			Tokens: []usecases.TokenDTO{{ClientID: "acme", RequestCount: 2}},
		},
	}
	handler := NewTokenHandler(&mockCreateTokenUC{}, mockUC, &mockDeleteTokenUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/support/tokens", nil)

	handler.ListTokens(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestTokenHandler_DeleteToken_Success(t *testing.T) {
	mockUC := &mockDeleteTokenUC{}
	handler := NewTokenHandler(&mockCreateTokenUC{}, &mockListTokensUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/support/tokens", nil)
	testutil.SetQueryParams(c, map[string]string{"token": "acme_0123456789abcdef"})

	handler.DeleteToken(c)
	// gin buffers a status set via c.Status until a body write; flush it so
	// the recorder sees the 204.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "acme_0123456789abcdef", mockUC.gotToken)
}

func TestTokenHandler_DeleteToken_MissingToken(t *testing.T) {
	handler := NewTokenHandler(&mockCreateTokenUC{}, &mockListTokensUC{}, &mockDeleteTokenUC{})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/support/tokens", nil)

	handler.DeleteToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenHandler_DeleteToken_Guarded(t *testing.T) {
	mockUC := &mockDeleteTokenUC{
		err: errors.NewValidationError("cannot delete: 3 support request(s) are associated with this client"),
	}
	handler := NewTokenHandler(&mockCreateTokenUC{}, &mockListTokensUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/support/tokens", nil)
	testutil.SetQueryParams(c, map[string]string{"token": "acme_0123456789abcdef"})

	handler.DeleteToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
