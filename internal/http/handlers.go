package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ledger/internal/core"
)

const (
	cacheKeyRecords = "records"
	cacheKeySummary = "summary"
)

// recordRequest is the payload for creating or updating a record. Amount
// is a decimal string ("4.50"); both dot and comma separators work.
type recordRequest struct {
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

func (req recordRequest) fields() (core.RecordFields, error) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.RecordFields{}, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = core.CategoryOther
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	return core.RecordFields{
		Description: strings.TrimSpace(req.Description),
		Amount:      core.Money{Cents: cents},
		Date:        date,
		Category:    category,
	}, nil
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListRecords(w, r)
	case http.MethodPost:
		s.handleCreateRecord(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	if body, ok := s.readCache.Get(cacheKeyRecords); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	records := s.ctrl.Records()
	resp := listResponse{
		Records: make([]recordResponse, 0, len(records)),
		Loading: s.ctrl.IsLoading(),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, toRecordResponse(record))
	}

	body, err := json.Marshal(resp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode records", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.readCache.Set(cacheKeyRecords, body)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if body, ok := s.readCache.Get(cacheKeySummary); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	total := s.ctrl.Total()
	resp := summaryResponse{
		Total:      total.String(),
		TotalCents: total.Cents,
		Count:      len(s.ctrl.Records()),
		Loading:    s.ctrl.IsLoading(),
		Categories: core.DefaultCategories,
	}

	body, err := json.Marshal(resp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode summary", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.readCache.Set(cacheKeySummary, body)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields, err := req.fields()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}
	if err := fields.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := s.ctrl.AddExpense(r.Context(), fields)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to create record",
			"error", err,
			"description", fields.Description,
			"amount_cents", fields.Amount.Cents)
		writeError(w, http.StatusInternalServerError, "error saving record")
		return
	}

	slog.InfoContext(r.Context(), "Record created",
		"record_id", record.ID,
		"description", record.Description,
		"amount_cents", record.Amount.Cents,
		"category", record.Category)

	writeJSON(w, http.StatusCreated, toRecordResponse(record))
}

func (s *Server) handleRecordByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/records/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.handleUpdateRecord(w, r, id)
	case http.MethodDelete:
		s.handleDeleteRecord(w, r, id)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request, id string) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields, err := req.fields()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}
	if err := fields.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record := core.Record{
		ID:          id,
		Description: fields.Description,
		Amount:      fields.Amount,
		Date:        fields.Date,
		Category:    fields.Category,
	}
	if err := s.ctrl.UpdateExpense(r.Context(), record); err != nil {
		slog.ErrorContext(r.Context(), "Failed to update record", "error", err, "record_id", id)
		writeError(w, http.StatusInternalServerError, "error updating record")
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(record))
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.ctrl.DeleteExpense(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete record", "error", err, "record_id", id)
		writeError(w, http.StatusInternalServerError, "error deleting record")
		return
	}

	slog.InfoContext(r.Context(), "Record deleted", "record_id", id)
	w.WriteHeader(http.StatusNoContent)
}
