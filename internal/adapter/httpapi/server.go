package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fintrack-app/fintrack-backend/internal/ledger"
	"github.com/fintrack-app/fintrack-backend/internal/usecase/dashboard"
)

// Server exposes the ledger store's operations over HTTP/JSON
type Server struct {
	Store     *ledger.Store
	Dashboard *dashboard.DashboardService
	Demo      ledger.DemoSource

	log zerolog.Logger
}

// NewServer creates a new Server instance
func NewServer(store *ledger.Store, dash *dashboard.DashboardService, demo ledger.DemoSource, log zerolog.Logger) *Server {
	return &Server{
		Store:     store,
		Dashboard: dash,
		Demo:      demo,
		log:       log,
	}
}

// Router builds the HTTP routing table. All /api/v1 routes require the
// bearer token; the health endpoint does not.
func (s *Server) Router(apiToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(apiToken))

		r.Get("/transactions", s.handleListTransactions)
		r.Post("/transactions", s.handleAddTransaction)
		r.Delete("/transactions/{id}", s.handleDeleteTransaction)

		r.Get("/banks", s.handleListBanks)
		r.Post("/banks", s.handleAddBank)
		r.Delete("/banks/{id}", s.handleDeleteBank)
		r.Put("/banks/{id}/balance", s.handleUpdateBankBalance)
		r.Post("/banks/{id}/interest", s.handleApplyBankInterest)

		r.Get("/goals", s.handleListGoals)
		r.Post("/goals", s.handleAddGoal)
		r.Delete("/goals/{id}", s.handleDeleteGoal)
		r.Post("/goals/{id}/progress", s.handleUpdateGoalProgress)

		r.Get("/categories", s.handleListCategories)
		r.Get("/dashboard", s.handleDashboard)

		r.Post("/demo", s.handleLoadDemoData)
		r.Delete("/data", s.handleResetAllData)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, ErrorResponse{Error: code, ErrorDescription: description})
}
