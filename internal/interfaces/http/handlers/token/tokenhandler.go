package token

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supportal/internal/application/token/usecases"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
	"supportal/internal/shared/utils"
)

// TokenHandler exposes the admin token management endpoints. The admin
// password is enforced by the route group.
type TokenHandler struct {
	createTokenUC usecases.CreateTokenExecutor
	listTokensUC  usecases.ListTokensExecutor
	deleteTokenUC usecases.DeleteTokenExecutor
	logger        logger.Interface
}

func NewTokenHandler(
	createTokenUC usecases.CreateTokenExecutor,
	listTokensUC usecases.ListTokensExecutor,
	deleteTokenUC usecases.DeleteTokenExecutor,
) *TokenHandler {
	return &TokenHandler{
		createTokenUC: createTokenUC,
		listTokensUC:  listTokensUC,
		deleteTokenUC: deleteTokenUC,
		logger:        logger.NewLogger(),
	}
}

type CreateTokenBody struct {
	AdminPassword string `json:"adminPassword"`
	ClientID      string `json:"clientId" binding:"required"`
	ClientName    string `json:"clientName" binding:"required"`
	ClientEmail   string `json:"clientEmail"`
}

// CreateToken handles POST /api/support/tokens.
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var body CreateTokenBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for create token", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.createTokenUC.Execute(c.Request.Context(), usecases.CreateTokenCommand{
		ClientID:    body.ClientID,
		ClientName:  body.ClientName,
		ClientEmail: body.ClientEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Token created successfully")
}

// ListTokens handles GET /api/support/tokens.
func (h *TokenHandler) ListTokens(c *gin.Context) {
	result, err := h.listTokensUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteToken handles DELETE /api/support/tokens. The token to delete is
// passed as a query parameter.
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	tokenValue := c.Query("token")
	if tokenValue == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("token is required"))
		return
	}

	if err := h.deleteTokenUC.Execute(c.Request.Context(), usecases.DeleteTokenCommand{Token: tokenValue}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
