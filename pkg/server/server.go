package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/energyadvisor/energyadvisor/pkg/analysis"
	"github.com/energyadvisor/energyadvisor/pkg/common"
	"github.com/energyadvisor/energyadvisor/pkg/log"
	"github.com/energyadvisor/energyadvisor/pkg/storage"
	"github.com/levenlabs/go-lflag"
)

// tokenVerifier is a function that validates a Google ID Token.
type tokenVerifier func(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)

// Server handles the HTTP API for the energy advisor. It holds the
// session storage and the billing constants; all analytics are recomputed
// per request from the stored appliance sequence.
type Server struct {
	storage storage.Database

	listenAddr string
	httpServer *http.Server
	serverName string

	rates      analysis.Rates
	thresholds analysis.CategoryThresholds

	oidcAudience string
	verifyToken  tokenVerifier
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(s storage.Database) *Server {
	srv := &Server{
		storage:    s,
		serverName: "energyadvisor",
		thresholds: analysis.DefaultCategoryThresholds,
	}
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	ratePerKWH := lflag.String("rate-per-kwh", strconv.FormatFloat(analysis.DefaultRates.PerKWH, 'f', -1, 64), "Electricity rate in currency units per kWh")
	daysPerMonth := lflag.String("days-per-month", strconv.FormatFloat(analysis.DefaultRates.DaysPerMonth, 'f', -1, 64), "Days of consumption a month covers")
	oidcAudience := lflag.String("oidc-audience", "", "Google OIDC audience/client ID to require on API requests (empty disables auth)")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		var err error
		srv.rates.PerKWH, err = strconv.ParseFloat(*ratePerKWH, 64)
		if err == nil {
			srv.rates.DaysPerMonth, err = strconv.ParseFloat(*daysPerMonth, 64)
		}
		if err != nil || srv.rates.PerKWH <= 0 || srv.rates.DaysPerMonth <= 0 {
			log.Ctx(context.Background()).Error("rate-per-kwh and days-per-month must be positive numbers")
			os.Exit(1)
		}

		if *oidcAudience != "" {
			ctx := oidc.ClientContext(context.Background(), common.HTTPClient(10*time.Second))
			provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
			if err != nil {
				log.Ctx(context.Background()).Error("failed to initialize Google OIDC provider", slog.Any("error", err))
				os.Exit(1)
			}
			srv.oidcAudience = *oidcAudience
			srv.verifyToken = provider.Verifier(&oidc.Config{ClientID: *oidcAudience}).Verify
		}
	})

	return srv
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/session", s.handleCreateSession)
	apiMux.HandleFunc("GET /api/session", s.handleGetSession)
	apiMux.HandleFunc("DELETE /api/session", s.handleDeleteSession)
	apiMux.HandleFunc("POST /api/session/appliances", s.handleUpdateAppliances)
	apiMux.HandleFunc("POST /api/session/bill", s.handleSubmitBill)
	apiMux.HandleFunc("GET /api/analysis/summary", s.handleSummary)
	apiMux.HandleFunc("GET /api/analysis/efficiency", s.handleEfficiency)
	apiMux.HandleFunc("GET /api/analysis/hogs", s.handleHogs)
	apiMux.HandleFunc("GET /api/suggestions/recommendations", s.handleRecommendations)
	apiMux.HandleFunc("GET /api/suggestions/savings", s.handleSavings)
	apiMux.HandleFunc("GET /api/admin/sessions", s.handleListSessions)

	mux := http.NewServeMux()
	mux.Handle("/api/", s.authMiddleware(apiMux))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.revisionMiddleware(gziphandler.GzipHandler(mux))
}

// Run starts the HTTP server and blocks until the context is canceled or
// an error occurs. It also handles graceful shutdown when the context is
// done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	// use a channel to capture server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		// Context canceled, shut down gracefully
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}
