package usecases

import (
	"context"

	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/domain/token"
	"supportal/internal/shared/logger"
)

type mockTokenRepository struct {
	SaveFunc          func(ctx context.Context, t *token.ClientToken) error
	GetByTokenFunc    func(ctx context.Context, tokenValue string) (*token.ClientToken, error)
	GetByClientIDFunc func(ctx context.Context, clientID string) (*token.ClientToken, error)
	ListFunc          func(ctx context.Context) ([]*token.ClientToken, error)
	DeleteFunc        func(ctx context.Context, tokenValue string) error
}

func (m *mockTokenRepository) Save(ctx context.Context, t *token.ClientToken) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTokenRepository) GetByToken(ctx context.Context, tokenValue string) (*token.ClientToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, tokenValue)
	}
	return nil, nil
}

func (m *mockTokenRepository) GetByClientID(ctx context.Context, clientID string) (*token.ClientToken, error) {
	if m.GetByClientIDFunc != nil {
		return m.GetByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockTokenRepository) List(ctx context.Context) ([]*token.ClientToken, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTokenRepository) Delete(ctx context.Context, tokenValue string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tokenValue)
	}
	return nil
}

// mockRequestRepository only implements the members the token use cases
// touch; the rest return zero values.
type mockRequestRepository struct {
	CountByClientIDFunc func(ctx context.Context, clientID string) (int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.SupportRequest) error {
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.SupportRequest) error {
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*request.SupportRequest, error) {
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.SupportRequest, error) {
	return nil, nil
}

func (m *mockRequestRepository) ListByClientID(ctx context.Context, clientID string) ([]*request.SupportRequest, error) {
	return nil, nil
}

func (m *mockRequestRepository) CountByClientID(ctx context.Context, clientID string) (int64, error) {
	if m.CountByClientIDFunc != nil {
		return m.CountByClientIDFunc(ctx, clientID)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
