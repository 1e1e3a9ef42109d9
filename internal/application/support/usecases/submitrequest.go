package usecases

import (
	"context"
	"strings"

	"supportal/internal/application/support/dto"
	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/domain/token"
	"supportal/internal/shared/errors"
	"supportal/internal/shared/goroutine"
	"supportal/internal/shared/logger"
	"supportal/internal/shared/utils"
)

// AttachmentFile is one uploaded file in a submission batch.
type AttachmentFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type SubmitRequestCommand struct {
	Token       string
	RequestType string
	Description string
	Files       []AttachmentFile
}

type SubmitRequestResult struct {
	Request      dto.RequestDTO       `json:"request"`
	Images       []dto.ImageDTO       `json:"images,omitempty"`
	UploadErrors []dto.UploadErrorDTO `json:"upload_errors,omitempty"`
}

// SubmitRequestUseCase creates a support request for an authenticated client,
// stores up to five image attachments, and notifies the support team.
type SubmitRequestUseCase struct {
	tokenRepo   token.Repository
	requestRepo request.Repository
	imageRepo   request.ImageRepository
	store       AttachmentStore
	mailer      Mailer
	logger      logger.Interface
}

func NewSubmitRequestUseCase(
	tokenRepo token.Repository,
	requestRepo request.Repository,
	imageRepo request.ImageRepository,
	store AttachmentStore,
	mailer Mailer,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		tokenRepo:   tokenRepo,
		requestRepo: requestRepo,
		imageRepo:   imageRepo,
		store:       store,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewUnauthorizedError("token is required")
	}

	clientToken, err := uc.tokenRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid token")
		}
		uc.logger.Errorw("failed to validate token", "error", err)
		return nil, errors.NewInternalError("failed to validate token")
	}

	if cmd.RequestType == "" || strings.TrimSpace(cmd.Description) == "" {
		return nil, errors.NewValidationError("request type and description are required")
	}

	requestType, err := vo.NewRequestType(cmd.RequestType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Over the attachment cap the whole submission is rejected before any
	// write; per-file failures below are partial and do not block creation.
	if len(cmd.Files) > utils.MaxFilesPerRequest {
		return nil, errors.NewValidationError(
			"too many files: maximum 5 images per request")
	}

	req, err := request.NewSupportRequest(clientToken.ClientID(), requestType, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save request", "client_id", clientToken.ClientID(), "error", err)
		return nil, errors.NewInternalError("failed to create request")
	}

	images, uploadErrors := uc.storeAttachments(ctx, req.ID(), cmd.Files)

	clientName := clientToken.ClientName()
	description := req.Description()
	imageCount := len(images)
	goroutine.SafeGo(uc.logger, "new-request-notification", func() {
		if err := uc.mailer.SendNewRequestNotification(clientName, requestType.String(), description, imageCount); err != nil {
			uc.logger.Errorw("failed to send new request notification", "request_id", req.ID(), "error", err)
		}
	})

	uc.logger.Infow("support request submitted",
		"request_id", req.ID(),
		"client_id", clientToken.ClientID(),
		"images", imageCount,
		"upload_errors", len(uploadErrors),
	)

	return &SubmitRequestResult{
		Request:      dto.FromRequest(req),
		Images:       dto.FromImages(images),
		UploadErrors: uploadErrors,
	}, nil
}

// storeAttachments processes the batch sequentially. A failure on one file
// is recorded and the next file is still processed.
func (uc *SubmitRequestUseCase) storeAttachments(
	ctx context.Context,
	requestID uint,
	files []AttachmentFile,
) ([]*request.Image, []dto.UploadErrorDTO) {
	var images []*request.Image
	var uploadErrors []dto.UploadErrorDTO

	for _, f := range files {
		if msg := utils.ValidateImageUpload(f.ContentType, f.Data); msg != "" {
			uploadErrors = append(uploadErrors, dto.UploadErrorDTO{Filename: f.Filename, Error: msg})
			continue
		}

		url, err := uc.store.Upload(ctx, requestID, f.Filename, f.ContentType, f.Data)
		if err != nil {
			uc.logger.Errorw("failed to store attachment",
				"request_id", requestID, "filename", f.Filename, "error", err)
			uploadErrors = append(uploadErrors, dto.UploadErrorDTO{
				Filename: f.Filename,
				Error:    "Failed to upload file to storage",
			})
			continue
		}

		img, err := request.NewImage(requestID, url, f.Filename, int64(len(f.Data)))
		if err != nil {
			uploadErrors = append(uploadErrors, dto.UploadErrorDTO{Filename: f.Filename, Error: err.Error()})
			continue
		}

		if err := uc.imageRepo.Save(ctx, img); err != nil {
			uc.logger.Errorw("failed to record attachment",
				"request_id", requestID, "filename", f.Filename, "error", err)
			uploadErrors = append(uploadErrors, dto.UploadErrorDTO{
				Filename: f.Filename,
				Error:    "Failed to record uploaded file",
			})
			continue
		}

		images = append(images, img)
	}

	return images, uploadErrors
}
