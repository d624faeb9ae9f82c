package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// Confidence in a detected level depends on whether the text
	// actually carried a seniority signal.
	levelConfidenceSpecified    = 0.8
	levelConfidenceNotSpecified = 0.3

	defaultKeyPhraseCount = 10
	maxKeyPhraseCount     = 50
)

// ExtractSkillsRequest carries free text for standalone skill extraction.
type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required,min=1,max=10000"`
}

// ExtractSkillsResponse lists the canonical skills found in the text.
type ExtractSkillsResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// SimilarSkillsResponse lists neighbors of the requested skill.
type SimilarSkillsResponse struct {
	Skill   string             `json:"skill"`
	Similar []similarity.Match `json:"similar"`
}

// ExperienceLevelResponse reports the detected seniority and how much
// signal backed the detection.
type ExperienceLevelResponse struct {
	Level      types.ExperienceLevel `json:"level"`
	Confidence float64               `json:"confidence"`
}

// KeyPhrasesRequest carries free text for key phrase extraction.
type KeyPhrasesRequest struct {
	Text string `json:"text" validate:"required,min=1,max=10000"`
	TopN int    `json:"top_n" validate:"omitempty,gt=0,lte=50"`
}

// KeyPhrasesResponse lists the top scored phrases of the text.
type KeyPhrasesResponse struct {
	Phrases []extraction.KeyPhrase `json:"phrases"`
}

// decodeRequest decodes and validates a JSON request body into dst.
// dst must implement Validate.
func decodeRequest(r *http.Request, dst interface{ Validate() error }) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return dst.Validate()
}

// Validate validates the ExtractSkillsRequest using the validator.
func (r *ExtractSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the KeyPhrasesRequest using the validator.
func (r *KeyPhrasesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleAnalyze runs the full resume-vs-job analysis pipeline.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.engine.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, r.Context().Err()) && r.Context().Err() != nil {
			// Client went away; nothing useful to write.
			return
		}
		slog.Error("analyze failed", "error", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleExtractSkills extracts canonical skills from a single text.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	skills := s.engine.ExtractSkills(req.Text).Names()
	s.jsonResponse(w, http.StatusOK, ExtractSkillsResponse{
		Skills: skills,
		Count:  len(skills),
	})
}

// handleSimilarSkills returns the nearest lexicon neighbors of a skill.
func (s *Server) handleSimilarSkills(w http.ResponseWriter, r *http.Request) {
	var req types.SimilarSkillsRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.similarTopN
	}

	matches, err := s.engine.SimilarSkills(req.Skill, limit)
	if err != nil {
		var invalid *engine.InvalidInputError
		if !errors.As(err, &invalid) {
			slog.Error("similar skills lookup failed", "error", err)
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SimilarSkillsResponse{
		Skill:   req.Skill,
		Similar: matches,
	})
}

// handleExperienceLevel detects the seniority expressed in free text.
func (s *Server) handleExperienceLevel(w http.ResponseWriter, r *http.Request) {
	var req types.ExperienceLevelRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	level := s.engine.DetectExperienceLevel(req.Text)
	confidence := levelConfidenceNotSpecified
	if level.Specified() {
		confidence = levelConfidenceSpecified
	}

	s.jsonResponse(w, http.StatusOK, ExperienceLevelResponse{
		Level:      level,
		Confidence: confidence,
	})
}

// handleKeyPhrases extracts the highest scoring phrases from free text.
func (s *Server) handleKeyPhrases(w http.ResponseWriter, r *http.Request) {
	var req KeyPhrasesRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = defaultKeyPhraseCount
	}
	if topN > maxKeyPhraseCount {
		topN = maxKeyPhraseCount
	}

	phrases := extraction.ExtractKeyPhrases(req.Text, topN)
	if phrases == nil {
		phrases = []extraction.KeyPhrase{}
	}

	s.jsonResponse(w, http.StatusOK, KeyPhrasesResponse{Phrases: phrases})
}
