package token

import "context"

type Repository interface {
	Save(ctx context.Context, t *ClientToken) error
	GetByToken(ctx context.Context, tokenValue string) (*ClientToken, error)
	GetByClientID(ctx context.Context, clientID string) (*ClientToken, error)
	List(ctx context.Context) ([]*ClientToken, error)
	Delete(ctx context.Context, tokenValue string) error
}
