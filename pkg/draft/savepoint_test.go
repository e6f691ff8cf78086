package draft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Savepoint(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/savepoints/300.json", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"id":          300,
			"document_id": 5,
			"created_at":  "2014-05-01T10:00:00Z",
		})
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	sp, err := client.Savepoint(context.Background(), "300")
	require.NoError(t, err)
	assert.Equal(t, "300", sp.ObjectID())
	assert.Equal(t, int64(5), sp.DocumentID)
	assert.True(t, sp.Persisted())

	created, err := sp.Created()
	require.NoError(t, err)
	assert.Equal(t, 2014, created.Year())
}

func TestClient_Savepoint_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	_, err := client.Savepoint(context.Background(), "-1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSavepoint_Delete(t *testing.T) {
	log := &requestLog{}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, map[string]any{"id": 300, "document_id": 5})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	sp, err := client.Savepoint(context.Background(), "300")
	require.NoError(t, err)

	require.NoError(t, sp.Delete(context.Background()))
	assert.Equal(t, []string{
		"GET /api/v1/savepoints/300.json",
		"DELETE /api/v1/savepoints/300.json",
	}, log.all())
}

func TestSavepoint_Delete_NotPersisted(t *testing.T) {
	sp := newSavepoint(nil)

	err := sp.Delete(context.Background())
	assert.ErrorIs(t, err, ErrNotPersisted)
}
