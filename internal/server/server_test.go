package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_server "github.com/veloria/warranty-portal/internal/server/mocks"
	"github.com/veloria/warranty-portal/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mock_server.NewMockStorage(ctrl)
	return New(mockStorage, t.TempDir(), zap.NewNop()), mockStorage
}

func TestHandleCreateClaim(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful creation",
			body: `{"orderNumber":"ORD-1001","email":"anna@example.com","name":"Anna Berg","brand":"Arlo"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateClaim(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, claim storage.Claim) (*storage.Claim, error) {
						assert.Equal(t, "ORD-1001", claim.OrderNumber)
						assert.Equal(t, "anna@example.com", claim.Email)
						claim.ID = "c1"
						claim.Status = storage.StatusPending
						return &claim, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"orderNumber":`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "storage failure",
			body: `{"orderNumber":"ORD-1001"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateClaim(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "An error occurred while creating the claim",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/claims", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			srv.handleCreateClaim(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tc.expectedError+`"}`, rr.Body.String())
			}
		})
	}
}

func TestHandleGetClaim(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		mockStorage.EXPECT().
			GetClaim(gomock.Any(), "c1").
			Return(&storage.Claim{ID: "c1", OrderNumber: "ORD-1001", Status: storage.StatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/c1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "c1"})
		rr := httptest.NewRecorder()

		srv.handleGetClaim(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var claim storage.Claim
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &claim))
		assert.Equal(t, "c1", claim.ID)
		assert.Equal(t, storage.StatusPending, claim.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockStorage.EXPECT().
			GetClaim(gomock.Any(), "missing").
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		srv.handleGetClaim(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Claim not found"}`, rr.Body.String())
	})
}

func TestHandleListClaims(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	mockStorage.EXPECT().
		ListClaims(gomock.Any(), storage.CaseFilter{OrderNumber: "ORD-1001", Email: "anna@example.com"}).
		Return([]storage.Claim{{ID: "c1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/claims?orderNumber=ORD-1001&email=anna%40example.com", nil)
	rr := httptest.NewRecorder()

	srv.handleListClaims(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var claims []storage.Claim
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &claims))
	require.Len(t, claims, 1)
	assert.Equal(t, "c1", claims[0].ID)
}

func TestHandleUpdateClaim(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	t.Run("partial update", func(t *testing.T) {
		mockStorage.EXPECT().
			UpdateClaim(gomock.Any(), "c1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch storage.ClaimPatch) (*storage.Claim, error) {
				require.NotNil(t, patch.Status)
				assert.Equal(t, storage.StatusResolved, *patch.Status)
				assert.Nil(t, patch.City)
				return &storage.Claim{ID: "c1", Status: storage.StatusResolved}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/claims/c1", bytes.NewBufferString(`{"status":"Resolved"}`))
		req = mux.SetURLVars(req, map[string]string{"id": "c1"})
		rr := httptest.NewRecorder()

		srv.handleUpdateClaim(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockStorage.EXPECT().
			UpdateClaim(gomock.Any(), "missing", gomock.Any()).
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/claims/missing", bytes.NewBufferString(`{"status":"Resolved"}`))
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		srv.handleUpdateClaim(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Claim not found"}`, rr.Body.String())
	})

	t.Run("malformed patch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/claims/c1", bytes.NewBufferString(`not json`))
		req = mux.SetURLVars(req, map[string]string{"id": "c1"})
		rr := httptest.NewRecorder()

		srv.handleUpdateClaim(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())
	})
}

func TestHandleFindCase(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	t.Run("missing query params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cases?orderNumber=ORD-1001", nil)
		rr := httptest.NewRecorder()

		srv.handleFindCase(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Missing orderNumber or email"}`, rr.Body.String())
	})

	t.Run("claim case with type tag", func(t *testing.T) {
		mockStorage.EXPECT().
			FindCase(gomock.Any(), "ORD-1001", "anna@example.com").
			Return(&storage.Case{
				Type:  storage.CaseTypeClaim,
				Claim: &storage.Claim{ID: "c1", OrderNumber: "ORD-1001", Status: storage.StatusPending},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cases?orderNumber=ORD-1001&email=anna%40example.com", nil)
		rr := httptest.NewRecorder()

		srv.handleFindCase(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fields))
		assert.Equal(t, "claim", fields["type"])
		assert.Equal(t, "c1", fields["id"])
	})

	t.Run("no case", func(t *testing.T) {
		mockStorage.EXPECT().
			FindCase(gomock.Any(), "ORD-9999", "nobody@example.com").
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/cases?orderNumber=ORD-9999&email=nobody%40example.com", nil)
		rr := httptest.NewRecorder()

		srv.handleFindCase(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"No case found"}`, rr.Body.String())
	})
}

func TestHandleGetCase(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	t.Run("return case", func(t *testing.T) {
		mockStorage.EXPECT().
			FindCaseByID(gomock.Any(), "r1").
			Return(&storage.Case{
				Type:   storage.CaseTypeReturn,
				Return: &storage.Return{ID: "r1", Status: storage.StatusInReview},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cases/r1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "r1"})
		rr := httptest.NewRecorder()

		srv.handleGetCase(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fields))
		assert.Equal(t, "return", fields["type"])
	})

	t.Run("unknown id", func(t *testing.T) {
		mockStorage.EXPECT().
			FindCaseByID(gomock.Any(), "missing").
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/cases/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		srv.handleGetCase(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Case not found"}`, rr.Body.String())
	})
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	srv.handleHealth(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
