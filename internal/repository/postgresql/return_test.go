package postgresql_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/veloria/warranty-portal/internal/db/mocks"
	"github.com/veloria/warranty-portal/internal/repository"
	"github.com/veloria/warranty-portal/internal/repository/postgresql"
)

func testReturn(now time.Time) *repository.Return {
	return &repository.Return{
		ID:             "22222222-2222-2222-2222-222222222222",
		OrderNumber:    "ORD-2002",
		Email:          "jonas@example.com",
		Name:           "Jonas Meier",
		Street:         "Ringweg 12",
		PostalCode:     "20095",
		City:           "Hamburg",
		PhoneNumber:    "+49 40 7654321",
		Details:        json.RawMessage(`{"reason":"wrong size"}`),
		Status:         "Pending",
		SubmissionDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestReturnRepo_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		ret := testReturn(now)

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(ret.ID),
			gomock.Eq(ret.OrderNumber),
			gomock.Eq(ret.Email),
			gomock.Eq(ret.Name),
			gomock.Eq(ret.Street),
			gomock.Eq(ret.PostalCode),
			gomock.Eq(ret.City),
			gomock.Eq(ret.PhoneNumber),
			gomock.Eq(ret.Details),
			gomock.Eq(ret.Status),
			gomock.Eq(ret.SubmissionDate),
			gomock.Eq(ret.CreatedAt),
			gomock.Eq(ret.UpdatedAt),
		).Return(nil, nil)

		err := repo.Create(ctx, ret)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, testReturn(now))
		assert.Equal(t, expectedErr, err)
	})
}

func TestReturnRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("return found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		ret := testReturn(now)
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(ret.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Return, _ string, _ string) error {
				*dest = *ret
				return nil
			})

		got, err := repo.GetByID(ctx, ret.ID)
		assert.NoError(t, err)
		assert.Equal(t, ret, got)
	})

	t.Run("return not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReturnRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestReturnRepo_FindFirst_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewReturnRepo(mockDB)

	mockDB.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgx.ErrNoRows)

	got, err := repo.FindFirst(context.Background(), "ORD-9999", "nobody@example.com")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}
