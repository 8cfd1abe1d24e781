// Package api exposes report generation over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/app"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

// Server wires the report service into a chi router
type Server struct {
	service *app.ReportService
	repo    ports.ReportRepository // nil disables the run listing
	logger  *internal.Logger
}

// NewServer creates the HTTP surface
func NewServer(service *app.ReportService, repo ports.ReportRepository, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Server{service: service, repo: repo, logger: logger}
}

// Router builds the route tree
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/reports", s.handleGenerate)
	r.Get("/api/reports", s.handleListRuns)

	return r
}

type generateRequest struct {
	SourcePath string `json:"source_path"`
	OutputPath string `json:"output_path"`
	Charts     bool   `json:"charts"`
}

type generateResponse struct {
	OutputPath   string `json:"output_path"`
	TotalRecords int    `json:"total_records"`
	ColumnCount  int    `json:"column_count"`
	InsightCount int    `json:"insight_count"`
	ChartCount   int    `json:"chart_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.SourcePath == "" || req.OutputPath == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "source_path and output_path are required"})
		return
	}

	result, err := s.service.Generate(r.Context(), app.GenerateRequest{
		SourcePath: req.SourcePath,
		OutputPath: req.OutputPath,
		Charts:     req.Charts,
	})
	if err != nil {
		s.logger.Error("report generation failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnsupportedFormat) || errors.Is(err, core.ErrEmptyDataset) {
			status = http.StatusUnprocessableEntity
		} else if errors.Is(err, core.ErrFileNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, generateResponse{
		OutputPath:   result.OutputPath,
		TotalRecords: result.TotalRecords,
		ColumnCount:  result.ColumnCount,
		InsightCount: result.InsightCount,
		ChartCount:   result.ChartCount,
	})
}

type runResponse struct {
	ID           string `json:"id"`
	SourcePath   string `json:"source_path"`
	OutputPath   string `json:"output_path"`
	TotalRecords int    `json:"total_records"`
	ColumnCount  int    `json:"column_count"`
	InsightCount int    `json:"insight_count"`
	ChartCount   int    `json:"chart_count"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	GeneratedAt  string `json:"generated_at"`
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "run persistence is not configured"})
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	records, err := s.repo.List(r.Context(), limit, offset)
	if err != nil {
		s.logger.Error("run listing failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list report runs"})
		return
	}

	runs := make([]runResponse, len(records))
	for i, rec := range records {
		runs[i] = runResponse{
			ID:           rec.ID.String(),
			SourcePath:   rec.SourcePath,
			OutputPath:   rec.OutputPath,
			TotalRecords: rec.TotalRecords,
			ColumnCount:  rec.ColumnCount,
			InsightCount: rec.InsightCount,
			ChartCount:   rec.ChartCount,
			Status:       string(rec.Status),
			ErrorMessage: rec.ErrorMessage,
			GeneratedAt:  rec.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
