package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuryx/romanurdu/internal/db/sqlite"
)

const testAPIKey = "test-key"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(repo, log, testAPIKey).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRomanizeEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/romanize",
		`{"text":"یہ سوال امتحان میں آ سکتا ہے"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Text  string `json:"text"`
		Roman string `json:"roman"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "یہ سوال امتحان میں آ سکتا ہے", resp.Text)
	assert.Equal(t, "yeh sawal imtihan mein aa sakta hai", resp.Roman)
}

func TestRomanizeEndpointPassthrough(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/romanize", `{"text":"Formula = mc^2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Roman string `json:"roman"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Formula = mc^2", resp.Roman)
}

func TestRomanizeEndpointBadJSON(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/romanize", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRomanizeEndpointBodyTooLarge(t *testing.T) {
	h := newTestHandler(t)

	body := fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", maxTextBody+1))
	rec := doJSON(t, h, http.MethodPost, "/api/v1/romanize", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestTranscriptLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/transcripts",
		`{"text":"میں بازار جا رہا ہوں","language":"ur","duration_seconds":4.2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID              int64   `json:"id"`
		Source          string  `json:"source"`
		Roman           string  `json:"roman"`
		Language        string  `json:"language"`
		DurationSeconds float64 `json:"duration_seconds"`
		CreatedAt       string  `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "میں بازار جا رہا ہوں", created.Source)
	assert.Equal(t, "mein bazar ja raha hoon", created.Roman)
	assert.Equal(t, "ur", created.Language)
	assert.NotEmpty(t, created.CreatedAt)

	path := fmt.Sprintf("/api/v1/transcripts/%d", created.ID)

	rec = doJSON(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/transcripts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.ID, list.Data[0].ID)
	assert.Equal(t, int64(1), list.Pagination.Total)

	// Delete requires the API key
	rec = doJSON(t, h, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set("X-API-Key", testAPIKey)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTranscriptValidation(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/transcripts", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/transcripts",
		`{"text":"کیا","duration_seconds":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscriptListPagination(t *testing.T) {
	h := newTestHandler(t)

	for i := range 3 {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transcripts",
			fmt.Sprintf(`{"text":"سوال %d"}`, i))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/transcripts?limit=2&page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page1 struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page1))
	assert.Len(t, page1.Data, 2)
	assert.Equal(t, int64(3), page1.Pagination.Total)
	assert.Equal(t, 2, page1.Pagination.Limit)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/transcripts?limit=2&page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page2 struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page2))
	assert.Len(t, page2.Data, 1)

	// Empty page still returns an array, not null
	rec = doJSON(t, h, http.MethodGet, "/api/v1/transcripts?limit=2&page=9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestTranscriptGetInvalidID(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/transcripts/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
