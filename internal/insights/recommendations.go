// Package insights turns skill gaps into ranked, human-readable
// guidance: recommendations, per-gap learning paths and market demand
// labels.
package insights

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const maxRecommendations = 5

const greatMatchMessage = "Great match! Your skills align well with the job requirements."

// prioritySkills are gaps worth calling out by name before any
// category-level advice.
var prioritySkills = map[string]bool{
	"docker":     true,
	"kubernetes": true,
	"aws":        true,
	"react":      true,
	"python":     true,
	"javascript": true,
}

var cloudSkills = map[string]bool{
	"aws": true, "azure": true, "gcp": true,
	"docker": true, "kubernetes": true, "terraform": true,
}

var frontendSkills = map[string]bool{
	"react": true, "angular": true, "vue": true,
	"javascript": true, "typescript": true, "css": true,
}

var dataSkills = map[string]bool{
	"python": true, "pandas": true, "numpy": true,
	"sql": true, "tableau": true, "machine-learning": true,
}

// Recommend produces at most five suggestions for closing the gap
// between a resume and a job, highest priority first. An empty gap
// list short-circuits to the single "great match" message no matter
// what the levels say.
func Recommend(gaps []string, resumeLevel, jobLevel types.ExperienceLevel) []string {
	if len(gaps) == 0 {
		return []string{greatMatchMessage}
	}

	var recs []string

	if jobLevel.Specified() && resumeLevel.Specified() && jobLevel.Rank() > resumeLevel.Rank() {
		recs = append(recs, fmt.Sprintf(
			"This role targets %s experience; highlight work that demonstrates %s-level scope",
			jobLevel, jobLevel))
	}

	var priorityGaps []string
	for _, gap := range gaps {
		if prioritySkills[gap] {
			priorityGaps = append(priorityGaps, gap)
		}
	}
	if len(priorityGaps) > 0 {
		if len(priorityGaps) > 3 {
			priorityGaps = priorityGaps[:3]
		}
		recs = append(recs, "Priority skills to focus on: "+strings.Join(priorityGaps, ", "))
	}

	if len(gaps) > 5 {
		recs = append(recs, "Consider focusing on the top 5 missing skills first")
	}

	if anyIn(gaps, cloudSkills) {
		recs = append(recs, "Consider gaining cloud/DevOps experience through hands-on projects")
	}
	if anyIn(gaps, frontendSkills) {
		recs = append(recs, "Strengthen your frontend development skills with modern frameworks")
	}
	if anyIn(gaps, dataSkills) {
		recs = append(recs, "Data analysis skills are in high demand - consider online courses")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func anyIn(gaps []string, set map[string]bool) bool {
	for _, gap := range gaps {
		if set[gap] {
			return true
		}
	}
	return false
}
