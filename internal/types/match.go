package types

// MatchResult is the outcome of comparing a resume skill set against a
// job skill set. All three lists are sorted ascending by name so output
// is reproducible.
type MatchResult struct {
	// Matching holds skills present in both documents.
	Matching []string `json:"matching"`
	// Gaps holds skills the job asks for that the resume lacks.
	Gaps []string `json:"gaps"`
	// Unique holds resume skills the job does not mention.
	Unique []string `json:"unique"`
	// SkillMatchPercentage is 100 * |matching| / |job skills|,
	// defined as 0 when the job set is empty.
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
}

// ScoredSkill is a skill annotated with its lexicon category and a
// relevance weight reflecting which bucket it fell into.
type ScoredSkill struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Relevance float64  `json:"relevance_score"`
}

// SkillAnalysis groups the categorized skills of a match.
type SkillAnalysis struct {
	MatchingSkills []ScoredSkill `json:"matching_skills"`
	SkillGaps      []ScoredSkill `json:"skill_gaps"`
	UniqueSkills   []ScoredSkill `json:"unique_skills"`
}
