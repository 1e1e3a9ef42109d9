package mappers

import (
	"time"

	"supportal/internal/domain/token"
	"supportal/internal/infrastructure/persistence/models"
)

// TokenMapper handles the conversion between ClientToken domain entities and
// persistence models.
type TokenMapper interface {
	ToModel(t *token.ClientToken) *models.ClientTokenModel
	ToDomain(model *models.ClientTokenModel) (*token.ClientToken, error)
}

type TokenMapperImpl struct{}

func NewTokenMapper() TokenMapper {
	return &TokenMapperImpl{}
}

func (m *TokenMapperImpl) ToModel(t *token.ClientToken) *models.ClientTokenModel {
	return &models.ClientTokenModel{
		Token:       t.Token(),
		ClientID:    t.ClientID(),
		ClientName:  t.ClientName(),
		ClientEmail: t.ClientEmail(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
	}
}

func (m *TokenMapperImpl) ToDomain(model *models.ClientTokenModel) (*token.ClientToken, error) {
	return token.ReconstructClientToken(
		model.Token,
		model.ClientID,
		model.ClientName,
		model.ClientEmail,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
