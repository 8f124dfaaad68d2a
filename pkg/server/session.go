package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/energyadvisor/energyadvisor/pkg/bill"
	"github.com/energyadvisor/energyadvisor/pkg/dataset"
	"github.com/energyadvisor/energyadvisor/pkg/log"
	"github.com/energyadvisor/energyadvisor/pkg/storage"
	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/google/uuid"
)

// maxBodyBytes limits upload sizes. Appliance tables and bill text are
// tiny; anything near this limit is not a household dataset.
const maxBodyBytes = 1 << 20

// getSession loads the session named by the sessionID query parameter and
// writes the appropriate error response when it cannot. The bool reports
// whether the caller may proceed.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) (types.Session, bool) {
	ctx := r.Context()
	id := r.URL.Query().Get("sessionID")
	if id == "" {
		writeJSONError(w, "sessionID is required", http.StatusBadRequest)
		return types.Session{}, false
	}
	session, err := s.storage.GetSession(ctx, id)
	if errors.Is(err, storage.ErrSessionNotFound) {
		writeJSONError(w, "session not found", http.StatusNotFound)
		return types.Session{}, false
	}
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to get session", slog.String("sessionID", id), slog.Any("error", err))
		writeJSONError(w, "failed to get session", http.StatusInternalServerError)
		return types.Session{}, false
	}
	return session, true
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Appliances []types.ApplianceRecord `json:"appliances"`
		// Sample seeds the session with the built-in template household.
		Sample bool `json:"sample"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONError(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	appliances := req.Appliances
	if req.Sample {
		appliances = dataset.Sample()
	} else if err := dataset.Validate(appliances); err != nil {
		writeJSONError(w, fmt.Sprintf("invalid appliances: %v", err), http.StatusBadRequest)
		return
	}

	session := types.Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Appliances: appliances,
	}
	if err := s.storage.CreateSession(ctx, session); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to create session", slog.Any("error", err))
		writeJSONError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	log.Ctx(ctx).InfoContext(ctx, "session created",
		slog.String("sessionID", session.ID),
		slog.Int("appliances", len(session.Appliances)))
	writeJSON(w, session)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("sessionID")
	if id == "" {
		writeJSONError(w, "sessionID is required", http.StatusBadRequest)
		return
	}
	if err := s.storage.DeleteSession(ctx, id); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to delete session", slog.String("sessionID", id), slog.Any("error", err))
		writeJSONError(w, "failed to delete session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateAppliances replaces the session's appliance list. The body
// is either a JSON array of records or, with a text/csv content type, the
// raw CSV upload.
func (s *Server) handleUpdateAppliances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var appliances []types.ApplianceRecord
	if strings.Contains(r.Header.Get("Content-Type"), "text/csv") {
		var err error
		appliances, err = dataset.ParseCSV(r.Body)
		if err != nil {
			writeJSONError(w, fmt.Sprintf("invalid csv: %v", err), http.StatusBadRequest)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&appliances); err != nil {
			writeJSONError(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
			return
		}
		if err := dataset.Validate(appliances); err != nil {
			writeJSONError(w, fmt.Sprintf("invalid appliances: %v", err), http.StatusBadRequest)
			return
		}
	}

	if err := s.storage.UpdateAppliances(ctx, session.ID, appliances); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to update appliances", slog.String("sessionID", session.ID), slog.Any("error", err))
		writeJSONError(w, "failed to update appliances", http.StatusInternalServerError)
		return
	}

	session.Appliances = appliances
	writeJSON(w, session)
}

// handleSubmitBill extracts bill fields from uploaded bill text and
// attaches them to the session.
func (s *Server) handleSubmitBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	text, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, "failed to read bill text", http.StatusBadRequest)
		return
	}

	extracted := bill.Extract(string(text))
	if err := s.storage.UpdateBill(ctx, session.ID, extracted); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to update bill", slog.String("sessionID", session.ID), slog.Any("error", err))
		writeJSONError(w, "failed to update bill", http.StatusInternalServerError)
		return
	}

	log.Ctx(ctx).InfoContext(ctx, "bill submitted",
		slog.String("sessionID", session.ID),
		slog.Float64("meteredUnits", extracted.MeteredUnits))
	writeJSON(w, extracted)
}
