package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/neuryx/romanurdu/internal/db"
	"github.com/neuryx/romanurdu/internal/metrics"
)

type TranscriptHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewTranscriptHandler(repo db.Repository, log *slog.Logger) *TranscriptHandler {
	return &TranscriptHandler{repo: repo, log: log}
}

type transcriptResponse struct {
	ID              int64   `json:"id"`
	Source          string  `json:"source"`
	Roman           string  `json:"roman"`
	Language        string  `json:"language,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type paginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type listResponse struct {
	Data       []transcriptResponse `json:"data"`
	Pagination paginationMeta       `json:"pagination"`
}

func toTranscriptResponse(t db.Transcript) transcriptResponse {
	return transcriptResponse{
		ID:              t.ID,
		Source:          t.Source,
		Roman:           t.Roman,
		Language:        t.Language,
		DurationSeconds: t.DurationSeconds,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}

type createTranscriptRequest struct {
	Text            string  `json:"text"`
	Language        string  `json:"language"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func (h *TranscriptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.DurationSeconds < 0 {
		writeError(w, http.StatusBadRequest, "duration_seconds must not be negative")
		return
	}

	t, err := h.repo.CreateTranscript(r.Context(), db.CreateTranscriptParams{
		Source:          req.Text,
		Roman:           romanize(req.Text),
		Language:        req.Language,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "creating transcript", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.TranscriptsStored.Inc()
	writeJSON(w, http.StatusCreated, toTranscriptResponse(t))
}

func (h *TranscriptHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	language := q.Get("language")

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 25
	}
	offset := (page - 1) * limit

	total, err := h.repo.CountTranscripts(r.Context(), language)
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting transcripts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	transcripts, err := h.repo.ListTranscripts(r.Context(), db.ListTranscriptsParams{
		Language: language,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing transcripts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := lo.Map(transcripts, func(t db.Transcript, _ int) transcriptResponse {
		return toTranscriptResponse(t)
	})

	writeJSON(w, http.StatusOK, listResponse{
		Data: data,
		Pagination: paginationMeta{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func (h *TranscriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	t, err := h.repo.GetTranscript(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "transcript not found")
			return
		}
		h.log.ErrorContext(r.Context(), "getting transcript", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTranscriptResponse(t))
}

func (h *TranscriptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.repo.DeleteTranscript(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "deleting transcript", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if deleted == 0 {
		writeError(w, http.StatusNotFound, "transcript not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid JSON body")
}
