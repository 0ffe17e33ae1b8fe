// Package api exposes the extraction pipeline over HTTP: job submission
// and polling, run history, and the filter configuration document.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsletter_pipeline/internal/config"
	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/filter"
)

type Server struct {
	starter JobStarter
	jobs    JobRegistry
	history ExtractionReader
	configs FilterConfigStore
	logger  *slog.Logger
	cfg     config.PipelineConfig

	mux    *http.ServeMux
	server *http.Server
}

func NewServer(
	addr string,
	starter JobStarter,
	jobs JobRegistry,
	history ExtractionReader,
	configs FilterConfigStore,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Server {
	s := &Server{
		starter: starter,
		jobs:    jobs,
		history: history,
		configs: configs,
		logger:  logger.With("component", "api"),
		cfg:     cfg,
		mux:     http.NewServeMux(),
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.middleware(s.mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/extractions", s.handleExtractions)
	s.mux.HandleFunc("/api/extractions/", s.handleExtractionByID)
	s.mux.HandleFunc("/api/config", s.handleConfig)
	s.mux.HandleFunc("/api/config/test-url", s.handleTestURL)
}

func (s *Server) Start() error {
	s.logger.Info("starting http server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// Handler returns the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if r.URL.Path != "/health" {
			s.logger.Debug("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

type StartExtractionRequest struct {
	DaysBack   int      `json:"days_back"`
	MaxResults int      `json:"max_results"`
	Senders    []string `json:"senders,omitempty"`
	UserRef    *string  `json:"user_ref,omitempty"`
}

type JobResponse struct {
	JobID           string                    `json:"job_id"`
	Status          domain.JobStatus          `json:"status"`
	Progress        int                       `json:"progress"`
	ProgressMessage *string                   `json:"progress_message,omitempty"`
	Error           *string                   `json:"error,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	CompletedAt     *time.Time                `json:"completed_at,omitempty"`
	Results         []domain.NewsletterResult `json:"results,omitempty"`
	Stats           *domain.RunStats          `json:"stats,omitempty"`
}

func jobResponse(job domain.ExtractionJob) JobResponse {
	return JobResponse{
		JobID:           job.ID,
		Status:          job.Status,
		Progress:        job.Progress,
		ProgressMessage: job.ProgressMessage,
		Error:           job.ErrorMessage,
		CreatedAt:       job.CreatedAt,
		CompletedAt:     job.CompletedAt,
		Results:         job.Results,
		Stats:           job.Stats,
	}
}

func (s *Server) handleExtractions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleStartExtraction(w, r)
	case http.MethodGet:
		s.handleListExtractions(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleStartExtraction(w http.ResponseWriter, r *http.Request) {
	var req StartExtractionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.DaysBack < 0 || req.MaxResults < 0 {
		respondError(w, http.StatusBadRequest, "days_back and max_results must not be negative")
		return
	}
	if req.DaysBack == 0 {
		req.DaysBack = s.cfg.DefaultDaysBack
	}
	if req.MaxResults == 0 {
		req.MaxResults = s.cfg.DefaultMaxResults
	}

	job := s.starter.Start(domain.FetchParams{
		DaysBack:   req.DaysBack,
		MaxResults: req.MaxResults,
		Senders:    req.Senders,
	}, req.UserRef)

	respondJSON(w, http.StatusAccepted, jobResponse(job))
}

func (s *Server) handleListExtractions(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if parsed > 100 {
			parsed = 100
		}
		limit = parsed
	}

	extractions, err := s.history.ListExtractions(r.Context(), limit)
	if err != nil {
		s.logger.Error("list extractions failed", "error", err)
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":        s.jobs.List(),
		"extractions": extractions,
		"limit":       limit,
	})
}

// handleExtractionByID serves both live jobs and persisted runs: the id
// is first looked up in the job registry, then in storage.
func (s *Server) handleExtractionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/extractions/")
	if id == "" || strings.Contains(id, "/") {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if job, ok := s.jobs.Get(id); ok {
		respondJSON(w, http.StatusOK, jobResponse(job))
		return
	}

	extraction, err := s.history.GetExtraction(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "extraction not found")
		return
	}
	if err != nil {
		s.logger.Error("get extraction failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}
	respondJSON(w, http.StatusOK, extraction)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetConfig(w, r)
	case http.MethodPut:
		s.handlePutConfig(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.configs.GetFilterConfig(r.Context())
	if err != nil {
		s.logger.Error("get filter config failed", "error", err)
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.FilterConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for curator, policy := range cfg.CuratorPolicies {
		if policy != domain.CuratorBlockDomain && policy != domain.CuratorBlockHomepage {
			respondError(w, http.StatusBadRequest, "unknown curator policy for "+curator)
			return
		}
	}

	if err := s.configs.SaveFilterConfig(r.Context(), cfg); err != nil {
		s.logger.Error("save filter config failed", "error", err)
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

type TestURLRequest struct {
	URL string `json:"url"`
}

type TestURLResponse struct {
	URL      string `json:"url"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

func (s *Server) handleTestURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req TestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	cfg, err := s.configs.GetFilterConfig(r.Context())
	if err != nil {
		s.logger.Error("get filter config failed", "error", err)
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}

	decision := filter.Classify(req.URL, cfg)
	respondJSON(w, http.StatusOK, TestURLResponse{
		URL:      decision.URL,
		Accepted: decision.Accepted,
		Reason:   decision.Reason,
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
