package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/storage"
)

// Full claim flow over the real router and the file-backed store.
func TestClaimFlow(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStorage(filepath.Join(dir, "cases.json"))
	require.NoError(t, err)

	srv := New(store, dir, zap.NewNop())
	ts := httptest.NewServer(srv.setupRoutes())
	defer ts.Close()

	client := ts.Client()

	// Submit a claim. The client-sent status must be overridden.
	body := `{
		"orderNumber": "ORD-1001",
		"email": "anna@example.com",
		"name": "Anna Berg",
		"street": "Hauptstrasse 5",
		"postalCode": "10115",
		"city": "Berlin",
		"phoneNumber": "+49 30 1234567",
		"brand": "Arlo",
		"problemDescription": "Camera stopped charging",
		"notificationAcknowledged": true,
		"status": "Resolved"
	}`
	resp, err := client.Post(ts.URL+"/api/claims", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created storage.Claim
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, storage.StatusPending, created.Status)
	assert.Equal(t, "Anna Berg", created.Name)

	// Read it back.
	resp, err = client.Get(ts.URL + "/api/claims/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched storage.Claim
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	assert.Equal(t, created, fetched)

	// Move it to Resolved via a partial update.
	patch := bytes.NewBufferString(`{"status":"Resolved"}`)
	req, err := http.NewRequest(http.MethodPatch, ts.URL+"/api/claims/"+created.ID, patch)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated storage.Claim
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, storage.StatusResolved, updated.Status)
	assert.Equal(t, created.SubmissionDate, updated.SubmissionDate)

	// The unified lookup resolves it as a claim.
	resp, err = client.Get(ts.URL + "/api/cases?orderNumber=ORD-1001&email=anna%40example.com")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	resp.Body.Close()
	assert.Equal(t, "claim", found["type"])
	assert.Equal(t, created.ID, found["id"])
	assert.Equal(t, "Resolved", found["status"])
}

func TestCasePrecedenceOverRouter(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStorage(filepath.Join(dir, "cases.json"))
	require.NoError(t, err)

	srv := New(store, dir, zap.NewNop())
	ts := httptest.NewServer(srv.setupRoutes())
	defer ts.Close()

	client := ts.Client()

	// A return and a claim sharing the same order and email.
	resp, err := client.Post(ts.URL+"/api/returns", "application/json",
		bytes.NewBufferString(`{"orderNumber":"ORD-1","email":"a@example.com","details":{"reason":"wrong size"}}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.Post(ts.URL+"/api/claims", "application/json",
		bytes.NewBufferString(`{"orderNumber":"ORD-1","email":"a@example.com","brand":"Arlo"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/api/cases?orderNumber=ORD-1&email=a%40example.com")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	resp.Body.Close()
	assert.Equal(t, "claim", found["type"])
}

func TestUnknownRoutesServeIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeIndexFixture(dir))

	store, err := storage.NewFileStorage(filepath.Join(dir, "cases.json"))
	require.NoError(t, err)

	srv := New(store, dir, zap.NewNop())
	ts := httptest.NewServer(srv.setupRoutes())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/status/some-client-route")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func writeIndexFixture(dir string) error {
	return os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!doctype html><html></html>"), 0644)
}
