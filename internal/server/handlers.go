package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/finplan/finplan/internal/config"
	"github.com/finplan/finplan/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validateResponse struct {
	ProfileCode domain.ProfileCode      `json:"profile_code"`
	Validation  domain.ValidationResult `json:"validation"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	ind := s.indicators.Latest(r.Context())
	plan, err := s.engine.BuildPlan(&input.Investor, input.Goals, ind, input.AsOf)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, plan)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	ind := s.indicators.Latest(r.Context())
	result, profile := s.engine.ValidateOnly(&input.Investor, &ind, input.AsOf)
	s.respondJSON(w, http.StatusOK, validateResponse{ProfileCode: profile, Validation: result})
}

func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.indicators.Latest(r.Context()))
}

// decodeInput parses the request body without the parser's hard
// validation: the plan and validate handlers surface input problems
// through their own paths.
func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (*config.PlanInput, bool) {
	var input config.PlanInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return nil, false
	}
	input.Investor.Occupation = domain.NormalizeOccupation(string(input.Investor.Occupation))
	if input.Investor.Residence == "" {
		input.Investor.Residence = domain.ResidenceUrban
	}
	if input.AsOf.IsZero() {
		input.AsOf = time.Now()
	}
	return &input, true
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	if status >= 500 {
		s.log.Error().Err(err).Msg("request failed")
	}
	s.respondJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}
