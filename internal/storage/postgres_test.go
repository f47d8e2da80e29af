package storage_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/db"
	mock_database "github.com/veloria/warranty-portal/internal/db/mocks"
	"github.com/veloria/warranty-portal/internal/repository"
	"github.com/veloria/warranty-portal/internal/storage"
	mock_storage "github.com/veloria/warranty-portal/internal/storage/mocks"
)

const testTopic = "claim-notifications"

type storageMocks struct {
	db         *mock_database.MockDB
	tx         *mock_database.MockTx
	claimRepo  *mock_storage.MockClaimRepository
	returnRepo *mock_storage.MockReturnRepository
	outboxRepo *mock_storage.MockOutboxTaskRepository
}

func newStorageMocks(ctrl *gomock.Controller) (*storage.PostgresStorage, storageMocks) {
	m := storageMocks{
		db:         mock_database.NewMockDB(ctrl),
		tx:         mock_database.NewMockTx(ctrl),
		claimRepo:  mock_storage.NewMockClaimRepository(ctrl),
		returnRepo: mock_storage.NewMockReturnRepository(ctrl),
		outboxRepo: mock_storage.NewMockOutboxTaskRepository(ctrl),
	}
	s := storage.NewPostgresStorage(m.db, m.claimRepo, m.returnRepo, m.outboxRepo, testTopic, zap.NewNop())
	return s, m
}

func TestPostgresStorage_CreateClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("forces pending status and enqueues notification in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		var inserted *repository.Claim
		m.claimRepo.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, claim *repository.Claim) error {
				inserted = claim
				return nil
			})

		var task *repository.OutboxTask
		m.outboxRepo.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, t *repository.OutboxTask) error {
				task = t
				return nil
			})

		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		created, err := s.CreateClaim(ctx, storage.Claim{
			OrderNumber: "ORD-1001",
			Email:       "anna@example.com",
			Name:        "Anna Berg",
			Brand:       "Arlo",
			Status:      storage.StatusResolved, // must be discarded
		})
		require.NoError(t, err)

		assert.Equal(t, storage.StatusPending, created.Status)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.SubmissionDate.IsZero())

		require.NotNil(t, inserted)
		assert.Equal(t, storage.StatusPending, inserted.Status)

		require.NotNil(t, task)
		assert.Equal(t, testTopic, task.Topic)
		var payload repository.NotificationPayload
		require.NoError(t, json.Unmarshal(task.Payload, &payload))
		assert.Equal(t, repository.NotificationClaimSubmitted, payload.Kind)
		assert.Equal(t, "anna@example.com", payload.Recipient)
		assert.Equal(t, created.ID, payload.ClaimID)
	})

	t.Run("insert failure rolls back without enqueueing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.claimRepo.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		created, err := s.CreateClaim(ctx, storage.Claim{OrderNumber: "ORD-1001"})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPostgresStorage_UpdateClaim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	existing := func() *repository.Claim {
		return &repository.Claim{
			ID:             "c1",
			OrderNumber:    "ORD-1001",
			Email:          "anna@example.com",
			Name:           "Anna Berg",
			City:           "Berlin",
			Status:         storage.StatusPending,
			SubmissionDate: now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	t.Run("status change enqueues update notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.claimRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), "c1").Return(existing(), nil)

		var updated *repository.Claim
		m.claimRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, claim *repository.Claim) error {
				updated = claim
				return nil
			})

		var task *repository.OutboxTask
		m.outboxRepo.EXPECT().
			CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, t *repository.OutboxTask) error {
				task = t
				return nil
			})

		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		newStatus := storage.StatusResolved
		claim, err := s.UpdateClaim(ctx, "c1", storage.ClaimPatch{Status: &newStatus})
		require.NoError(t, err)

		assert.Equal(t, storage.StatusResolved, claim.Status)
		assert.Equal(t, "Berlin", claim.City)

		require.NotNil(t, updated)
		assert.Equal(t, storage.StatusResolved, updated.Status)

		require.NotNil(t, task)
		var payload repository.NotificationPayload
		require.NoError(t, json.Unmarshal(task.Payload, &payload))
		assert.Equal(t, repository.NotificationClaimStatusUpdated, payload.Kind)
		assert.Equal(t, storage.StatusResolved, payload.Status)
	})

	t.Run("field-only patch does not enqueue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.claimRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), "c1").Return(existing(), nil)
		m.claimRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		newCity := "Munich"
		claim, err := s.UpdateClaim(ctx, "c1", storage.ClaimPatch{City: &newCity})
		require.NoError(t, err)
		assert.Equal(t, "Munich", claim.City)
		assert.Equal(t, storage.StatusPending, claim.Status)
	})

	t.Run("missing claim maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.claimRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		claim, err := s.UpdateClaim(ctx, "missing", storage.ClaimPatch{})
		assert.Nil(t, claim)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestPostgresStorage_GetClaim_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newStorageMocks(ctrl)

	repoClaim := &repository.Claim{ID: "c1", OrderNumber: "ORD-1001", Status: storage.StatusPending}

	// Only the first read should hit the repository.
	m.claimRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(repoClaim, nil).Times(1)

	first, err := s.GetClaim(context.Background(), "c1")
	require.NoError(t, err)

	second, err := s.GetClaim(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPostgresStorage_FindCase(t *testing.T) {
	ctx := context.Background()

	t.Run("claim takes precedence over return", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.claimRepo.EXPECT().
			FindFirst(gomock.Any(), "ORD-1001", "anna@example.com").
			Return(&repository.Claim{ID: "c1", OrderNumber: "ORD-1001"}, nil)
		// returnRepo.FindFirst must not be called.

		found, err := s.FindCase(ctx, "ORD-1001", "anna@example.com")
		require.NoError(t, err)
		assert.Equal(t, storage.CaseTypeClaim, found.Type)
		assert.Equal(t, "c1", found.Claim.ID)
	})

	t.Run("falls back to return when no claim matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.claimRepo.EXPECT().
			FindFirst(gomock.Any(), "ORD-2002", "jonas@example.com").
			Return(nil, repository.ErrObjectNotFound)
		m.returnRepo.EXPECT().
			FindFirst(gomock.Any(), "ORD-2002", "jonas@example.com").
			Return(&repository.Return{ID: "r1", OrderNumber: "ORD-2002"}, nil)

		found, err := s.FindCase(ctx, "ORD-2002", "jonas@example.com")
		require.NoError(t, err)
		assert.Equal(t, storage.CaseTypeReturn, found.Type)
		assert.Equal(t, "r1", found.Return.ID)
	})

	t.Run("neither matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newStorageMocks(ctrl)

		m.claimRepo.EXPECT().
			FindFirst(gomock.Any(), "ORD-9999", "nobody@example.com").
			Return(nil, repository.ErrObjectNotFound)
		m.returnRepo.EXPECT().
			FindFirst(gomock.Any(), "ORD-9999", "nobody@example.com").
			Return(nil, repository.ErrObjectNotFound)

		found, err := s.FindCase(ctx, "ORD-9999", "nobody@example.com")
		assert.Nil(t, found)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
