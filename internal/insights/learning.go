package insights

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

// curatedPaths are hand-written learning paths for the most commonly
// requested skills. Everything else gets the generic path.
var curatedPaths = map[string][]string{
	"docker": {
		"Learn containerization basics",
		"Practice with Docker commands",
		"Understand Dockerfile and docker-compose",
		"Deploy a multi-container application",
	},
	"kubernetes": {
		"Master Docker first",
		"Learn Kubernetes concepts (pods, services)",
		"Practice with kubectl",
		"Deploy applications on a K8s cluster",
	},
	"react": {
		"Master JavaScript ES6+",
		"Learn React fundamentals (components, props, state)",
		"Understand hooks and lifecycle",
		"Build a complete SPA project",
	},
	"aws": {
		"Start with AWS Free Tier",
		"Learn core services (EC2, S3, RDS)",
		"Understand IAM and security",
		"Get AWS Certified Cloud Practitioner",
	},
	"python": {
		"Learn Python syntax and basics",
		"Master data structures and algorithms",
		"Explore frameworks (Django/FastAPI)",
		"Build real-world projects",
	},
}

// LearningPath returns an ordered study plan for acquiring a skill.
func LearningPath(skill string) []string {
	if path, ok := curatedPaths[skill]; ok {
		return path
	}
	return []string{
		fmt.Sprintf("Research %s fundamentals", skill),
		fmt.Sprintf("Find online courses or tutorials for %s", skill),
		"Practice with hands-on projects",
		"Join communities and contribute to open source",
	}
}

// maxGapInsights bounds how many gaps get the full related-skills
// treatment per analysis.
const maxGapInsights = 10

const relatedPerGap = 3

// GapInsights builds one insight per skill gap: its priority, its
// nearest lexicon neighbors, and a learning path. A gap is high
// priority unless the candidate already holds a related skill, in
// which case it drops to medium because the ramp-up is shorter.
func GapInsights(idx *similarity.Index, gaps, uniqueSkills []string) []types.GapInsight {
	if len(gaps) > maxGapInsights {
		gaps = gaps[:maxGapInsights]
	}

	held := make(map[string]bool, len(uniqueSkills))
	for _, skill := range uniqueSkills {
		held[skill] = true
	}

	insights := make([]types.GapInsight, 0, len(gaps))
	for _, gap := range gaps {
		matches, err := idx.Similar(gap, relatedPerGap)
		if err != nil {
			matches = nil
		}

		priority := "high"
		related := make([]types.RelatedSkill, 0, len(matches))
		for _, m := range matches {
			if held[m.Name] {
				priority = "medium"
			}
			related = append(related, types.RelatedSkill{Name: m.Name, Similarity: m.Score})
		}

		insights = append(insights, types.GapInsight{
			Skill:        gap,
			Priority:     priority,
			Related:      related,
			LearningPath: LearningPath(gap),
		})
	}
	return insights
}
