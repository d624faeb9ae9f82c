// Package scoring composes the final match score from its component
// signals.
package scoring

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

// Component weights. Skill overlap dominates; semantic similarity and
// the experience bonus refine the ranking.
const (
	skillScoreWeight    = 0.7
	semanticScoreWeight = 0.2
	levelBonusWeight    = 0.1
)

// Level bonus points, on the same 0-100 scale as the other components.
const (
	matchedLevelBonus  = 10.0
	overqualifiedBonus = 5.0
)

// LevelBonus scores how the resume's experience level fits the job's.
// An exact match between two specified levels earns the full bonus; a
// senior-or-above candidate applying to a junior or mid-level role
// earns a partial one. Anything else, including unspecified levels,
// earns nothing.
func LevelBonus(resume, job types.ExperienceLevel) float64 {
	if !resume.Specified() || !job.Specified() {
		return 0
	}
	if resume == job {
		return matchedLevelBonus
	}
	if resume.Rank() >= types.LevelSenior.Rank() &&
		(job == types.LevelJunior || job == types.LevelMid) {
		return overqualifiedBonus
	}
	return 0
}

// Compose combines the component scores into the final 0-100 score.
// skillMatchPct is the percentage from skill matching, semanticSim the
// cosine similarity in [0, 1], and levelBonus the points from
// LevelBonus. The result is clamped to [0, 100].
func Compose(skillMatchPct, semanticSim, levelBonus float64) types.AnalysisScore {
	final := skillMatchPct*skillScoreWeight +
		semanticSim*100*semanticScoreWeight +
		levelBonus*levelBonusWeight
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	return types.AnalysisScore{
		SkillMatchPercentage: skillMatchPct,
		SemanticSimilarity:   semanticSim,
		ExperienceLevelBonus: levelBonus,
		FinalScore:           final,
	}
}
