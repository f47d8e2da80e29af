//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/storage"
)

type Storage interface {
	CreateClaim(ctx context.Context, claim storage.Claim) (*storage.Claim, error)
	ListClaims(ctx context.Context, filter storage.CaseFilter) ([]storage.Claim, error)
	GetClaim(ctx context.Context, id string) (*storage.Claim, error)
	UpdateClaim(ctx context.Context, id string, patch storage.ClaimPatch) (*storage.Claim, error)
	CreateReturn(ctx context.Context, ret storage.Return) (*storage.Return, error)
	ListReturns(ctx context.Context, filter storage.CaseFilter) ([]storage.Return, error)
	GetReturn(ctx context.Context, id string) (*storage.Return, error)
	UpdateReturn(ctx context.Context, id string, patch storage.ReturnPatch) (*storage.Return, error)
	FindCase(ctx context.Context, orderNumber, email string) (*storage.Case, error)
	FindCaseByID(ctx context.Context, id string) (*storage.Case, error)
}

type Server struct {
	storage Storage
	logger  *zap.Logger
	distDir string
	server  *http.Server
}

func New(storage Storage, distDir string, logger *zap.Logger) *Server {
	return &Server{
		storage: storage,
		logger:  logger,
		distDir: distDir,
	}
}

func (s *Server) Run(port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/claims", s.handleCreateClaim).Methods(http.MethodPost)
	api.HandleFunc("/claims", s.handleListClaims).Methods(http.MethodGet)
	api.HandleFunc("/claims/{id}", s.handleGetClaim).Methods(http.MethodGet)
	api.HandleFunc("/claims/{id}", s.handleUpdateClaim).Methods(http.MethodPatch)

	api.HandleFunc("/returns", s.handleCreateReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns", s.handleListReturns).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id}", s.handleGetReturn).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id}", s.handleUpdateReturn).Methods(http.MethodPatch)

	api.HandleFunc("/cases", s.handleFindCase).Methods(http.MethodGet)
	api.HandleFunc("/cases/{id}", s.handleGetCase).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Anything else belongs to the client application.
	router.PathPrefix("/").Handler(spaHandler{distDir: s.distDir})

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
