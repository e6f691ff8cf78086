package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestLog records every request a mock server saw, so tests can assert
// on exactly which calls the client issued.
type requestLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, r.Method+" "+r.URL.Path)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_Documents(t *testing.T) {
	log := &requestLog{}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		assert.Equal(t, "/api/v1/documents.json", r.URL.Path)
		writeJSON(t, w, []map[string]any{
			{"id": 1, "name": "first", "content": "one", "created_at": "2014-02-10T13:09:58Z", "updated_at": "2014-02-11T09:00:00Z"},
			{"id": 2, "name": "second", "content": "two", "created_at": "2014-03-01T08:00:00Z", "updated_at": "2014-03-02T08:00:00Z"},
		})
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	docs, err := client.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Every listed document exposes a non-empty id, and listing issues no
	// per-item fetch.
	for _, doc := range docs {
		assert.NotEmpty(t, doc.ObjectID())
		assert.True(t, doc.Persisted())
	}
	assert.Equal(t, []string{"GET /api/v1/documents.json"}, log.all())

	assert.Equal(t, int64(1), docs[0].ID)
	assert.Equal(t, "first", docs[0].Name)
	assert.Equal(t, "one", docs[0].Content)
}

func TestClient_Document(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents/144732.json", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"id":         144732,
			"name":       "notes",
			"content":    "remember the milk",
			"created_at": "2014-02-10T13:09:58Z",
			"updated_at": "2014-02-11T09:00:00Z",
			"folder_id":  7,
		})
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	doc, err := client.Document(context.Background(), "144732")
	require.NoError(t, err)

	assert.Equal(t, "144732", doc.ObjectID())
	assert.Equal(t, "remember the milk", doc.Content)
	assert.Equal(t, "notes", doc.Name)

	// Undeclared response fields stay reachable, both through Extra and
	// through dynamic lookup.
	assert.Equal(t, json.Number("7"), doc.Extra["folder_id"])
	folderID, err := doc.Field("folder_id")
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), folderID)

	created, err := doc.Created()
	require.NoError(t, err)
	assert.Equal(t, 2014, created.Year())
	updated, err := doc.Updated()
	require.NoError(t, err)
	assert.Equal(t, 11, updated.Day())
}

func TestClient_Document_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	_, err := client.Document(context.Background(), "-4")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDocument_Update_DraftCreates(t *testing.T) {
	log := &requestLog{}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		require.Equal(t, http.MethodPost, r.Method, "a draft update must create, never PUT")
		require.Equal(t, "/api/v1/documents.json", r.URL.Path)

		var payload documentPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, map[string]any{
			"id":      99,
			"name":    payload.Name,
			"content": payload.Content,
		})
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	doc := client.NewDocument()
	assert.Equal(t, "", doc.ObjectID())
	assert.False(t, doc.Persisted())

	require.NoError(t, doc.Update(context.Background(), "hello world", "t"))

	assert.Equal(t, "99", doc.ObjectID())
	assert.True(t, doc.Persisted())
	assert.Equal(t, "hello world", doc.Content)
	assert.Equal(t, "t", doc.Name)
	assert.Equal(t, []string{"POST /api/v1/documents.json"}, log.all())
}

func TestClient_CreateDocument(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload documentPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, map[string]any{
			"id":      12,
			"name":    payload.Name,
			"content": payload.Content,
		})
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	doc, err := client.CreateDocument(context.Background(), "hello world", "t")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ObjectID())
	assert.Equal(t, "hello world", doc.Content)
	assert.Equal(t, "t", doc.Name)
}

func TestDocument_Update_PersistedPutsThenRefreshes(t *testing.T) {
	log := &requestLog{}
	content := "v1"
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		switch {
		case r.Method == http.MethodPut:
			var payload documentPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			content = payload.Content
			// The update response carries no data; the client must
			// re-fetch rather than trust it.
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet:
			writeJSON(t, w, map[string]any{
				"id":      42,
				"name":    "doc",
				"content": content,
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	doc, err := client.Document(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Content)

	require.NoError(t, doc.Update(context.Background(), "v2", ""))

	assert.Equal(t, "v2", doc.Content, "backing data must come from the post-update fetch")
	assert.Equal(t, []string{
		"GET /api/v1/documents/42.json",
		"PUT /api/v1/documents/42.json",
		"GET /api/v1/documents/42.json",
	}, log.all())
}

func TestDocument_Delete(t *testing.T) {
	log := &requestLog{}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, map[string]any{"id": 7, "content": "bye"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	// Deleting a draft is a no-op and issues no request.
	draftDoc := client.NewDocument()
	require.NoError(t, draftDoc.Delete(context.Background()))
	assert.Empty(t, log.all())

	doc, err := client.Document(context.Background(), "7")
	require.NoError(t, err)
	require.NoError(t, doc.Delete(context.Background()))
	assert.Equal(t, []string{
		"GET /api/v1/documents/7.json",
		"DELETE /api/v1/documents/7.json",
	}, log.all())
}

func TestDocument_Savepoints(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/documents/5.json":
			writeJSON(t, w, map[string]any{"id": 5, "content": "snapshot me"})
		case "/api/v1/documents/5/savepoints.json":
			writeJSON(t, w, []map[string]any{
				{"id": 100, "document_id": 5, "created_at": "2014-05-01T10:00:00Z"},
				{"id": 101, "document_id": 5, "created_at": "2014-05-02T10:00:00Z"},
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	// A draft has no savepoints and no request is issued for it.
	savepoints, err := client.NewDocument().Savepoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, savepoints)

	doc, err := client.Document(context.Background(), "5")
	require.NoError(t, err)

	savepoints, err = doc.Savepoints(context.Background())
	require.NoError(t, err)
	require.Len(t, savepoints, 2)
	assert.Equal(t, "100", savepoints[0].ObjectID())
	assert.Equal(t, int64(5), savepoints[0].DocumentID)
}

func TestDocument_CreateSavepoint(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(t, w, map[string]any{"id": 5, "content": "snapshot me"})
		case r.Method == http.MethodPost:
			assert.Equal(t, "/api/v1/documents/5/savepoints.json", r.URL.Path)
			writeJSON(t, w, map[string]any{"id": 200, "document_id": 5})
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	// Snapshotting a draft is a no-op.
	sp, err := client.NewDocument().CreateSavepoint(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sp)

	doc, err := client.Document(context.Background(), "5")
	require.NoError(t, err)

	sp, err = doc.CreateSavepoint(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "200", sp.ObjectID())
	assert.Equal(t, int64(5), sp.DocumentID)
}

func TestDocument_UpdateFetchRoundTrip(t *testing.T) {
	// Stateful mock: update then an independent fetch of the same id must
	// observe the updated content.
	var (
		mu      sync.Mutex
		content = "initial"
	)
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			var payload documentPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			content = payload.Content
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			writeJSON(t, w, map[string]any{"id": 8, "content": content})
		default:
			t.Errorf("unexpected method: %s", r.Method)
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	doc, err := client.Document(context.Background(), "8")
	require.NoError(t, err)
	require.NoError(t, doc.Update(context.Background(), "round trip", ""))

	fetched, err := client.Document(context.Background(), "8")
	require.NoError(t, err)
	assert.Equal(t, "round trip", fetched.Content)
}

func TestDocument_FailedUpdateLeavesDataUnchanged(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, map[string]any{"id": 3, "content": "stable"})
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"error":"document locked"}`)
		}
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	doc, err := client.Document(context.Background(), "3")
	require.NoError(t, err)

	err = doc.Update(context.Background(), "clobbered", "")
	require.Error(t, err)

	// Stale, not corrupted.
	assert.Equal(t, "stable", doc.Content)
	assert.Equal(t, "3", doc.ObjectID())
}
