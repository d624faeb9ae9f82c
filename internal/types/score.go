package types

// AnalysisScore is the blended fit score and the signals it was composed
// from. It is derived data: given the same inputs it can be recomputed at
// any time.
type AnalysisScore struct {
	// SkillMatchPercentage is the raw skill overlap score in [0,100].
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
	// SemanticSimilarity is the whole-document similarity in [0,1].
	SemanticSimilarity float64 `json:"semantic_similarity"`
	// ExperienceLevelBonus is 0, 5 or 10 depending on level alignment.
	ExperienceLevelBonus float64 `json:"experience_level_bonus"`
	// FinalScore is the weighted blend, clamped to [0,100].
	FinalScore float64 `json:"final_score"`
}
