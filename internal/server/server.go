// Package server provides the HTTP REST API for the onboarding service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/config"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/db"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/masterdata"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/server/middleware"
)

// Store is the persistence surface the handlers need. *db.DB satisfies
// it; tests substitute an in-memory implementation.
type Store interface {
	CreateSubmission(ctx context.Context, sub db.NewSubmission) (uuid.UUID, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*db.Submission, error)
	ListSubmissions(ctx context.Context, status string, limit int) ([]db.Submission, error)
	ListSubmissionSummaries(ctx context.Context) ([]db.SubmissionSummary, error)
	EmployeeIDSubmitted(ctx context.Context, employeeID string) (bool, error)
	EmployeeIDVerified(ctx context.Context, employeeID string) (bool, error)
	VerifySubmission(ctx context.Context, id uuid.UUID, reviewer string) (*db.Submission, error)
	RejectSubmission(ctx context.Context, id uuid.UUID, reviewer, reason string) (*db.Submission, error)
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	store         Store
	database      *db.DB
	allowedOrigin string
	master        *masterdata.Bundle
	jwtService    *JWTService
	authHandler   *AuthHandler
}

// New creates a new server instance
func New(cfg *config.ServerConfig) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	adminConfig, err := config.NewAdminConfig(passwordConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	jwtService := NewJWTService(jwtConfig)

	// Master data degrades to empty datasets when unreachable.
	loadCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	master := masterdata.Load(loadCtx, http.DefaultClient, cfg.EducationDataURL, cfg.UniversityDataURL)

	s := &Server{
		store:         database,
		database:      database,
		allowedOrigin: cfg.AllowedOrigin,
		master:        master,
		jwtService:    jwtService,
	}
	s.authHandler = NewAuthHandler(adminConfig, passwordConfig, jwtService, jwtConfig.CookieName)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes(jwtConfig.CookieName))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux with public and admin endpoints.
func (s *Server) routes(cookieName string) http.Handler {
	mux := http.NewServeMux()

	// Public onboarding endpoints
	mux.HandleFunc("POST /api/onboarding/submit", s.handleSubmit)
	mux.HandleFunc("GET /api/onboarding/validate-employee-id", s.handleValidateEmployeeID)
	mux.HandleFunc("GET /api/onboarding/submissions", s.handleListPublicSubmissions)

	// Master data endpoints
	mux.HandleFunc("GET /api/master-data/education", s.handleEducationData)
	mux.HandleFunc("GET /api/master-data/universities", s.handleUniversitySearch)

	// Admin authentication
	mux.HandleFunc("POST /api/admin/login", s.authHandler.Login)
	mux.HandleFunc("POST /api/admin/logout", s.authHandler.Logout)

	// Admin review endpoints, behind session auth
	requireAdmin := middleware.AdminAuth(s.jwtService.AsTokenValidator(), cookieName)
	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/me", s.authHandler.Me)
	admin.HandleFunc("GET /api/admin/submissions", s.handleAdminListSubmissions)
	admin.HandleFunc("GET /api/admin/submissions/{id}", s.handleAdminGetSubmission)
	admin.HandleFunc("POST /api/admin/submissions/{id}/verify", s.handleVerifySubmission)
	admin.HandleFunc("POST /api/admin/submissions/{id}/reject", s.handleRejectSubmission)
	mux.Handle("/api/admin/", requireAdmin(admin))

	mux.HandleFunc("GET /api/health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status, including database
// reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEducationData serves the loaded education master data levels
// and rows.
func (s *Server) handleEducationData(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"levels": s.master.Education.Levels(),
	})
}

// handleUniversitySearch serves a case-insensitive university name
// search.
func (s *Server) handleUniversitySearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"universities": s.master.Universities.Search(query),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message, "message": message})
}
