package mappers

import (
	"time"

	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between support request domain
// entities and persistence models.
type RequestMapper interface {
	ToModel(r *request.SupportRequest) *models.SupportRequestModel
	ToDomain(model *models.SupportRequestModel) (*request.SupportRequest, error)

	MessageToModel(m *request.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*request.Message, error)

	ImageToModel(img *request.Image) *models.RequestImageModel
	ImageToDomain(model *models.RequestImageModel) (*request.Image, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.SupportRequest) *models.SupportRequestModel {
	return &models.SupportRequestModel{
		ID:            r.ID(),
		ClientID:      r.ClientID(),
		RequestType:   r.RequestType().String(),
		Description:   r.Description(),
		Status:        r.Status().String(),
		InternalNotes: r.InternalNotes(),
		CreatedAt:     r.CreatedAt().UnixMilli(),
		UpdatedAt:     r.UpdatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ToDomain(model *models.SupportRequestModel) (*request.SupportRequest, error) {
	return request.ReconstructSupportRequest(
		model.ID,
		model.ClientID,
		vo.RequestType(model.RequestType),
		model.Description,
		vo.Status(model.Status),
		model.InternalNotes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *RequestMapperImpl) MessageToModel(msg *request.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:         msg.ID(),
		RequestID:  msg.RequestID(),
		Content:    msg.Content(),
		SenderType: msg.SenderType().String(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) MessageToDomain(model *models.MessageModel) (*request.Message, error) {
	return request.ReconstructMessage(
		model.ID,
		model.RequestID,
		model.Content,
		request.SenderType(model.SenderType),
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *RequestMapperImpl) ImageToModel(img *request.Image) *models.RequestImageModel {
	return &models.RequestImageModel{
		ID:         img.ID(),
		RequestID:  img.RequestID(),
		ImageURL:   img.ImageURL(),
		Filename:   img.Filename(),
		Size:       img.Size(),
		UploadedAt: img.UploadedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ImageToDomain(model *models.RequestImageModel) (*request.Image, error) {
	return request.ReconstructImage(
		model.ID,
		model.RequestID,
		model.ImageURL,
		model.Filename,
		model.Size,
		time.UnixMilli(model.UploadedAt).UTC(),
	)
}
