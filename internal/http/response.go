package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/core"
)

// recordResponse is the wire shape of one expense record.
type recordResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

type listResponse struct {
	Records []recordResponse `json:"records"`
	Loading bool             `json:"loading"`
}

type summaryResponse struct {
	Total      string   `json:"total"`
	TotalCents int64    `json:"total_cents"`
	Count      int      `json:"count"`
	Loading    bool     `json:"loading"`
	Categories []string `json:"categories"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toRecordResponse(r core.Record) recordResponse {
	return recordResponse{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount.String(),
		AmountCents: r.Amount.Cents,
		Date:        r.Date,
		Category:    r.Category,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
