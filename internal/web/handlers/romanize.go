package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/neuryx/romanurdu/internal/metrics"
	"github.com/neuryx/romanurdu/internal/translit"
)

// RomanizeHandler serves stateless romanization. Nothing is persisted;
// clients that want history use the transcript endpoints.
type RomanizeHandler struct {
	log *slog.Logger
}

func NewRomanizeHandler(log *slog.Logger) *RomanizeHandler {
	return &RomanizeHandler{log: log}
}

type romanizeRequest struct {
	Text string `json:"text"`
}

type romanizeResponse struct {
	Text  string `json:"text"`
	Roman string `json:"roman"`
}

func (h *RomanizeHandler) Romanize(w http.ResponseWriter, r *http.Request) {
	var req romanizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, romanizeResponse{
		Text:  req.Text,
		Roman: romanize(req.Text),
	})
}

// romanize wraps translit.Romanize with the engine metrics so the stateless
// endpoint and transcript creation are counted the same way.
func romanize(text string) string {
	start := time.Now()
	roman := translit.Romanize(text)
	metrics.RomanizationDuration.Observe(time.Since(start).Seconds())
	metrics.RomanizationInputRunes.Observe(float64(utf8.RuneCountInString(text)))

	outcome := "changed"
	if roman == text {
		outcome = "passthrough"
	}
	metrics.RomanizationsTotal.WithLabelValues(outcome).Inc()

	return roman
}
