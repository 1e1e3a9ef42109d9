package support

import (
	"crypto/subtle"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"supportal/internal/application/support/usecases"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/logger"
	"supportal/internal/shared/utils"
)

type SupportHandler struct {
	submitRequestUC      usecases.SubmitRequestExecutor
	updateRequestUC      usecases.UpdateRequestExecutor
	addMessageUC         usecases.AddMessageExecutor
	listClientRequestsUC usecases.ListClientRequestsExecutor
	adminListRequestsUC  usecases.AdminListRequestsExecutor
	getRequestUC         usecases.GetRequestExecutor
	adminPassword        string
	logger               logger.Interface
}

func NewSupportHandler(
	submitRequestUC usecases.SubmitRequestExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	addMessageUC usecases.AddMessageExecutor,
	listClientRequestsUC usecases.ListClientRequestsExecutor,
	adminListRequestsUC usecases.AdminListRequestsExecutor,
	getRequestUC usecases.GetRequestExecutor,
	adminPassword string,
) *SupportHandler {
	return &SupportHandler{
		submitRequestUC:      submitRequestUC,
		updateRequestUC:      updateRequestUC,
		addMessageUC:         addMessageUC,
		listClientRequestsUC: listClientRequestsUC,
		adminListRequestsUC:  adminListRequestsUC,
		getRequestUC:         getRequestUC,
		adminPassword:        adminPassword,
		logger:               logger.NewLogger(),
	}
}

// SubmitRequest handles POST /api/support/submit. The body is either JSON
// or multipart form data with image attachments in the "files" field.
func (h *SupportHandler) SubmitRequest(c *gin.Context) {
	var cmd usecases.SubmitRequestCommand

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		parsed, err := h.parseMultipartSubmit(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd = *parsed
	} else {
		var body SubmitRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			h.logger.Warnw("invalid request body for submit", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
			return
		}
		cmd = body.ToCommand()
	}

	result, err := h.submitRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Support request submitted successfully")
}

// ListRequests handles GET /api/support/requests. A token query parameter
// selects the client view; otherwise the caller must present the admin
// password and gets the full listing with filters.
func (h *SupportHandler) ListRequests(c *gin.Context) {
	if token := c.Query("token"); token != "" {
		result, err := h.listClientRequestsUC.Execute(c.Request.Context(), usecases.ListClientRequestsQuery{
			Token: token,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	if !h.isAdmin(c) {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("token or admin password required"))
		return
	}

	result, err := h.adminListRequestsUC.Execute(c.Request.Context(), usecases.AdminListRequestsQuery{
		ClientID:    c.Query("clientId"),
		RequestType: c.Query("requestType"),
		Status:      c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRequest handles GET /api/support/requests/:id with the same dual
// authentication as ListRequests.
func (h *SupportHandler) GetRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetRequestQuery{RequestID: requestID}

	if token := c.Query("token"); token != "" {
		query.Token = token
	} else if h.isAdmin(c) {
		query.Admin = true
	} else {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("token or admin password required"))
		return
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRequest handles PATCH /api/support/requests/:id. Admin only; the
// route group enforces the password.
func (h *SupportHandler) UpdateRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body UpdateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for update", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdateRequestCommand{
		RequestID: requestID,
		Note:      body.InternalNotes,
	}

	if body.Status != "" {
		status, err := vo.NewStatus(body.Status)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
			return
		}
		cmd.NewStatus = &status
	}

	result, err := h.updateRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// AddMessage handles POST /api/support/messages.
func (h *SupportHandler) AddMessage(c *gin.Context) {
	var body AddMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for add message", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), body.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

func (h *SupportHandler) parseMultipartSubmit(c *gin.Context) (*usecases.SubmitRequestCommand, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("invalid multipart form")
	}

	cmd := &usecases.SubmitRequestCommand{
		Token:       c.PostForm("token"),
		RequestType: c.PostForm("requestType"),
		Description: c.PostForm("description"),
	}

	for _, fileHeader := range form.File["files"] {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, errors.NewValidationError("failed to read uploaded file", fileHeader.Filename)
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.NewValidationError("failed to read uploaded file", fileHeader.Filename)
		}

		cmd.Files = append(cmd.Files, usecases.AttachmentFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return cmd, nil
}

func (h *SupportHandler) isAdmin(c *gin.Context) bool {
	if h.adminPassword == "" {
		return false
	}

	supplied := c.GetHeader("X-Admin-Password")
	if supplied == "" {
		supplied = c.Query("adminPassword")
	}

	return subtle.ConstantTimeCompare([]byte(supplied), []byte(h.adminPassword)) == 1
}

func parseRequestID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid request ID")
	}
	return uint(id), nil
}
