package server

import (
	"log/slog"
	"net/http"

	"github.com/energyadvisor/energyadvisor/pkg/log"
	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// handleListSessions returns every stored session, newest first. Intended
// for operators; put it behind OIDC in any shared deployment.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessions, err := s.storage.ListSessions(ctx)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to list sessions", slog.Any("error", err))
		writeJSONError(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, struct {
		Sessions []types.Session `json:"sessions"`
	}{Sessions: sessions})
}
