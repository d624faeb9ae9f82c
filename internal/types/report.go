package types

import (
	"time"

	"github.com/google/uuid"
)

// GapInsight describes one missing skill with learning guidance and the
// skills most similar to it in the lexicon.
type GapInsight struct {
	Skill        string         `json:"skill"`
	Priority     string         `json:"priority"` // "high" or "medium"
	Related      []RelatedSkill `json:"related_skills,omitempty"`
	LearningPath []string       `json:"learning_path,omitempty"`
}

// RelatedSkill pairs a skill name with its similarity to a query skill.
type RelatedSkill struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// AnalysisReport is the full result of analyzing a resume against a job
// description. The ID is assigned by the orchestration layer; everything
// else is a deterministic function of the two input texts.
type AnalysisReport struct {
	ID               uuid.UUID         `json:"id"`
	Match            MatchResult       `json:"match"`
	SkillAnalysis    SkillAnalysis     `json:"skill_analysis"`
	Score            AnalysisScore     `json:"score"`
	ResumeLevel      ExperienceLevel   `json:"resume_level"`
	JobLevel         ExperienceLevel   `json:"job_level"`
	Recommendations  []string          `json:"recommendations"`
	GapInsights      []GapInsight      `json:"gap_insights,omitempty"`
	MarketDemand     map[string]string `json:"market_demand,omitempty"`
	AnalyzedAt       time.Time         `json:"analyzed_at"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
}
