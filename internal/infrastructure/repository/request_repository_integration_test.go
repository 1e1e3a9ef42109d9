package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"supportal/internal/domain/request"
	vo "supportal/internal/domain/request/valueobjects"
	"supportal/internal/domain/token"
	"supportal/internal/infrastructure/persistence/models"
	"supportal/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ClientTokenModel{},
		&models.SupportRequestModel{},
		&models.MessageModel{},
		&models.RequestImageModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestRequest(t *testing.T, clientID string, requestType vo.RequestType) *request.SupportRequest {
	req, err := request.NewSupportRequest(clientID, requestType, "Test description")
	require.NoError(t, err)
	return req
}

func TestRequestRepository_SaveAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("save assigns ID", func(t *testing.T) {
		req := createTestRequest(t, "acme", vo.TypeTechnicalIssue)

		err := repo.Save(ctx, req)
		assert.NoError(t, err)
		assert.NotZero(t, req.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		req := createTestRequest(t, "globex", vo.TypeBillingQuestion)
		require.NoError(t, repo.Save(ctx, req))

		found, err := repo.GetByID(ctx, req.ID())
		assert.NoError(t, err)
		assert.Equal(t, req.ID(), found.ID())
		assert.Equal(t, "globex", found.ClientID())
		assert.Equal(t, vo.TypeBillingQuestion, found.RequestType())
		assert.Equal(t, vo.StatusNew, found.Status())
	})

	t.Run("missing request maps to not found", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRequestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("update persists status and notes", func(t *testing.T) {
		req := createTestRequest(t, "acme", vo.TypeTechnicalIssue)
		require.NoError(t, repo.Save(ctx, req))

		require.NoError(t, req.ChangeStatus(vo.StatusInProgress))
		req.SetInternalNotes("looking into it")

		err := repo.Update(ctx, req)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, req.ID())
		assert.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress, found.Status())
		assert.Equal(t, "looking into it", found.InternalNotes())
	})
}

func TestRequestRepository_ListAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	first := createTestRequest(t, "acme", vo.TypeTechnicalIssue)
	require.NoError(t, repo.Save(ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := createTestRequest(t, "acme", vo.TypeFeatureRequest)
	require.NoError(t, repo.Save(ctx, second))
	time.Sleep(5 * time.Millisecond)
	third := createTestRequest(t, "globex", vo.TypeTechnicalIssue)
	require.NoError(t, repo.Save(ctx, third))
	require.NoError(t, third.ChangeStatus(vo.StatusResolved))
	require.NoError(t, repo.Update(ctx, third))

	t.Run("list all newest first", func(t *testing.T) {
		got, err := repo.List(ctx, request.Filter{})
		assert.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, third.ID(), got[0].ID())
		assert.Equal(t, first.ID(), got[2].ID())
	})

	t.Run("filter by client", func(t *testing.T) {
		clientID := "acme"
		got, err := repo.List(ctx, request.Filter{ClientID: &clientID})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filter by type and status", func(t *testing.T) {
		requestType := vo.TypeTechnicalIssue
		status := vo.StatusResolved
		got, err := repo.List(ctx, request.Filter{RequestType: &requestType, Status: &status})
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, third.ID(), got[0].ID())
	})

	t.Run("list by client ID", func(t *testing.T) {
		got, err := repo.ListByClientID(ctx, "globex")
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("counts", func(t *testing.T) {
		count, err := repo.CountByClientID(ctx, "acme")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountByStatus(ctx, vo.StatusNew)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestMessageRepository_ThreadOrdering(t *testing.T) {
	db := setupTestDB(t)
	requestRepo := NewRequestRepository(db)
	messageRepo := NewMessageRepository(db)
	ctx := context.Background()

	req := createTestRequest(t, "acme", vo.TypeTechnicalIssue)
	require.NoError(t, requestRepo.Save(ctx, req))

	for _, content := range []string{"first", "second", "third"} {
		msg, err := request.NewMessage(req.ID(), content, request.SenderClient)
		require.NoError(t, err)
		require.NoError(t, messageRepo.Save(ctx, msg))
		assert.NotZero(t, msg.ID())
		time.Sleep(5 * time.Millisecond)
	}

	messages, err := messageRepo.ListByRequestID(ctx, req.ID())
	assert.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content())
	assert.Equal(t, "third", messages[2].Content())
}

func TestImageRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	requestRepo := NewRequestRepository(db)
	imageRepo := NewImageRepository(db)
	ctx := context.Background()

	req := createTestRequest(t, "acme", vo.TypeTechnicalIssue)
	require.NoError(t, requestRepo.Save(ctx, req))

	img, err := request.NewImage(req.ID(), "http://localhost:8080/uploads/1/a.png", "a.png", 2048)
	require.NoError(t, err)
	require.NoError(t, imageRepo.Save(ctx, img))
	assert.NotZero(t, img.ID())

	images, err := imageRepo.ListByRequestID(ctx, req.ID())
	assert.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "a.png", images[0].Filename())
	assert.Equal(t, int64(2048), images[0].Size())
}

func TestTokenRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	t.Run("save and look up by token and client", func(t *testing.T) {
		tok, err := token.NewClientToken("acme", "Acme Corp", "ops@acme.test")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, tok))

		byToken, err := repo.GetByToken(ctx, tok.Token())
		assert.NoError(t, err)
		assert.Equal(t, "acme", byToken.ClientID())

		byClient, err := repo.GetByClientID(ctx, "acme")
		assert.NoError(t, err)
		assert.Equal(t, tok.Token(), byClient.Token())
	})

	t.Run("duplicate client ID maps to conflict", func(t *testing.T) {
		dup, err := token.NewClientToken("acme", "Acme Again", "")
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown token maps to not found", func(t *testing.T) {
		_, err := repo.GetByToken(ctx, "ghost_token")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("delete", func(t *testing.T) {
		tok, err := token.NewClientToken("globex", "Globex", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tok))

		require.NoError(t, repo.Delete(ctx, tok.Token()))

		_, err = repo.GetByToken(ctx, tok.Token())
		assert.True(t, errors.IsNotFoundError(err))

		err = repo.Delete(ctx, tok.Token())
		assert.True(t, errors.IsNotFoundError(err))
	})
}
