package usecases

import (
	"context"
	"sync"

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

type mockRequestRepository struct {
	SaveFunc            func(ctx context.Context, req *request.SupportRequest) error
	UpdateFunc          func(ctx context.Context, req *request.SupportRequest) error
	GetByIDFunc         func(ctx context.Context, requestID uint) (*request.SupportRequest, error)
	ListFunc            func(ctx context.Context, filter request.Filter) ([]*request.SupportRequest, error)
	ListByClientIDFunc  func(ctx context.Context, clientID string) ([]*request.SupportRequest, error)
	CountByClientIDFunc func(ctx context.Context, clientID string) (int64, error)
	CountByStatusFunc   func(ctx context.Context, status vo.Status) (int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.SupportRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.SupportRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*request.SupportRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.SupportRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListByClientID(ctx context.Context, clientID string) ([]*request.SupportRequest, error) {
	if m.ListByClientIDFunc != nil {
		return m.ListByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockRequestRepository) CountByClientID(ctx context.Context, clientID string) (int64, error) {
	if m.CountByClientIDFunc != nil {
		return m.CountByClientIDFunc(ctx, clientID)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockMessageRepository struct {
	SaveFunc            func(ctx context.Context, msg *request.Message) error
	ListByRequestIDFunc func(ctx context.Context, requestID uint) ([]*request.Message, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *request.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Message, error) {
	if m.ListByRequestIDFunc != nil {
		return m.ListByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockImageRepository struct {
	SaveFunc            func(ctx context.Context, img *request.Image) error
	ListByRequestIDFunc func(ctx context.Context, requestID uint) ([]*request.Image, error)
}

func (m *mockImageRepository) Save(ctx context.Context, img *request.Image) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, img)
	}
	return nil
}

func (m *mockImageRepository) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Image, error) {
	if m.ListByRequestIDFunc != nil {
		return m.ListByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockAttachmentStore struct {
	UploadFunc func(ctx context.Context, requestID uint, filename, contentType string, data []byte) (string, error)
}

func (m *mockAttachmentStore) Upload(ctx context.Context, requestID uint, filename, contentType string, data []byte) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, requestID, filename, contentType, data)
	}
	return "https://example.test/" + filename, nil
}

// mailerCall records one notification dispatch. Notifications run on
// goroutines, so the mock is safe for concurrent use and tests poll the
// recorded calls with require.Eventually.
type mailerCall struct {
	Method string
	Args   []string
}

type mockMailer struct {
	mu    sync.Mutex
	calls []mailerCall

	NewRequestErr   error
	ClientReplyErr  error
	ClientNoteErr   error
	ClientStatusErr error
}

func (m *mockMailer) record(method string, args ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, mailerCall{Method: method, Args: args})
}

func (m *mockMailer) Calls() []mailerCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailerCall, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *mockMailer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockMailer) SendNewRequestNotification(clientName, requestType, description string, imageCount int) error {
	m.record("SendNewRequestNotification", clientName, requestType, description)
	return m.NewRequestErr
}

func (m *mockMailer) SendClientReplyNotification(clientName, requestType, status, content string) error {
	m.record("SendClientReplyNotification", clientName, requestType, status, content)
	return m.ClientReplyErr
}

func (m *mockMailer) SendClientNoteNotification(clientEmail, clientName, requestType, note, portalURL string) error {
	m.record("SendClientNoteNotification", clientEmail, clientName, requestType, note, portalURL)
	return m.ClientNoteErr
}

func (m *mockMailer) SendClientStatusNotification(clientEmail, clientName, requestType, oldStatus, newStatus, portalURL string) error {
	m.record("SendClientStatusNotification", clientEmail, clientName, requestType, oldStatus, newStatus, portalURL)
	return m.ClientStatusErr
}

// mockTransactionRunner executes the function directly without a database.
type mockTransactionRunner struct {
	RunErr error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunErr != nil {
		return m.RunErr
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
