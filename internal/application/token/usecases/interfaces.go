package usecases

import "context"

type CreateTokenExecutor interface {
	Execute(ctx context.Context, cmd CreateTokenCommand) (*CreateTokenResult, error)
}

type ListTokensExecutor interface {
	Execute(ctx context.Context) (*ListTokensResult, error)
}

type DeleteTokenExecutor interface {
	Execute(ctx context.Context, cmd DeleteTokenCommand) error
}
