package storage_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloria/warranty-portal/internal/storage"
)

func newTestFileStorage(t *testing.T) (*storage.FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.json")
	s, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	return s, path
}

func TestFileStorage_ClaimLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestFileStorage(t)

	created, err := s.CreateClaim(ctx, storage.Claim{
		OrderNumber:              "ORD-1001",
		Email:                    "anna@example.com",
		Name:                     "Anna Berg",
		Brand:                    "Arlo",
		ProblemDescription:       "Camera stopped charging",
		NotificationAcknowledged: true,
		Status:                   "Rejected", // must be discarded
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, storage.StatusPending, created.Status)

	got, err := s.GetClaim(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	newStatus := storage.StatusInReview
	updated, err := s.UpdateClaim(ctx, created.ID, storage.ClaimPatch{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusInReview, updated.Status)
	assert.Equal(t, "Anna Berg", updated.Name)

	_, err = s.GetClaim(ctx, "does-not-exist")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.UpdateClaim(ctx, "does-not-exist", storage.ClaimPatch{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStorage_ReturnDefaults(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestFileStorage(t)

	created, err := s.CreateReturn(ctx, storage.Return{
		OrderNumber: "ORD-2002",
		Email:       "jonas@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusPending, created.Status)
	assert.Equal(t, json.RawMessage(`{}`), created.Details)
}

func TestFileStorage_ListFilter(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestFileStorage(t)

	_, err := s.CreateClaim(ctx, storage.Claim{OrderNumber: "ORD-1", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = s.CreateClaim(ctx, storage.Claim{OrderNumber: "ORD-2", Email: "b@example.com"})
	require.NoError(t, err)

	all, err := s.ListClaims(ctx, storage.CaseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := s.ListClaims(ctx, storage.CaseFilter{OrderNumber: "ORD-1", Email: "a@example.com"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "ORD-1", filtered[0].OrderNumber)
}

func TestFileStorage_FindCasePrecedence(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestFileStorage(t)

	// Same order and email on both sides.
	_, err := s.CreateReturn(ctx, storage.Return{OrderNumber: "ORD-1", Email: "a@example.com"})
	require.NoError(t, err)
	claim, err := s.CreateClaim(ctx, storage.Claim{OrderNumber: "ORD-1", Email: "a@example.com"})
	require.NoError(t, err)

	found, err := s.FindCase(ctx, "ORD-1", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, storage.CaseTypeClaim, found.Type)
	assert.Equal(t, claim.ID, found.Claim.ID)

	_, err = s.FindCase(ctx, "ORD-9", "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := newTestFileStorage(t)

	created, err := s.CreateClaim(ctx, storage.Claim{OrderNumber: "ORD-1", Email: "a@example.com"})
	require.NoError(t, err)

	reopened, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	got, err := reopened.GetClaim(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, got.OrderNumber)
	assert.Equal(t, created.Email, got.Email)
}
