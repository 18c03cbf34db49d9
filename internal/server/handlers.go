package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/pipeline"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
	"github.com/dashu-baba/architect-layout-solver/pkg/render"
	"github.com/dashu-baba/architect-layout-solver/pkg/store"
)

// solveRequest is the POST /api/solve payload: a plan document plus
// request-level options.
type solveRequest struct {
	Plan    plan.Plan `json:"plan"`
	Refresh bool      `json:"refresh,omitempty"`
}

// solveResponse carries the stored layout id alongside the solution.
type solveResponse struct {
	ID       string        `json:"id"`
	Solution plan.Solution `json:"solution"`
	Cached   bool          `json:"cached"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse request body"))
		return
	}

	opts := pipeline.Options{
		Deadline: s.deadline,
		Refresh:  req.Refresh,
		Logger:   s.logger,
	}

	sol, cached, err := s.runner.SolveWithCacheInfo(r.Context(), req.Plan, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.Record{
		ID:        uuid.NewString(),
		Plan:      req.Plan,
		Solution:  sol,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{
		ID:       rec.ID,
		Solution: sol,
		Cached:   cached,
	})
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	if err := render.ValidateFormat(format); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "artifact format"))
		return
	}

	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := pipeline.Options{Formats: []string{format}, ShowScore: true, Logger: s.logger}
	artifacts, err := s.runner.Render(r.Context(), rec.Solution, rec.Plan, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// writeError maps structured error codes onto HTTP statuses and writes the
// JSON envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPlan:
		status = http.StatusBadRequest
	case errors.ErrCodeNoSolution:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	if code == "" {
		code = errors.ErrCodeInternal
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func contentType(format string) string {
	switch format {
	case render.FormatSVG:
		return "image/svg+xml"
	case render.FormatJSON:
		return "application/json"
	case render.FormatPNG:
		return "image/png"
	default:
		return "text/plain; charset=utf-8"
	}
}
