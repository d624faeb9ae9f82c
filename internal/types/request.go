package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest carries one resume and one job description into the
// engine. Length bounds guard against empty submissions and pathological
// payloads; the engine itself tolerates any text once validated.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=50,max=10000"`
	JobDescription string `json:"job_description" validate:"required,min=50,max=10000"`
}

// SimilarSkillsRequest asks for skills related to a single skill name.
type SimilarSkillsRequest struct {
	Skill string `json:"skill" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"omitempty,gt=0,lte=50"`
}

// ExperienceLevelRequest asks for the seniority detected in free text.
type ExperienceLevelRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SimilarSkillsRequest using the validator.
func (r *SimilarSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExperienceLevelRequest using the validator.
func (r *ExperienceLevelRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
