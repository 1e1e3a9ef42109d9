package support

import (
	"supportal/internal/application/support/usecases"
)

type SubmitRequestBody struct {
	Token       string `json:"token" binding:"required"`
	RequestType string `json:"requestType" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r *SubmitRequestBody) ToCommand() usecases.SubmitRequestCommand {
	return usecases.SubmitRequestCommand{
		Token:       r.Token,
		RequestType: r.RequestType,
		Description: r.Description,
	}
}

type UpdateRequestBody struct {
	AdminPassword string `json:"adminPassword"`
	Status        string `json:"status,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty"`
}

type AddMessageBody struct {
	Token     string `json:"token" binding:"required"`
	RequestID uint   `json:"requestId" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

func (r *AddMessageBody) ToCommand() usecases.AddMessageCommand {
	return usecases.AddMessageCommand{
		Token:     r.Token,
		RequestID: r.RequestID,
		Content:   r.Content,
	}
}
