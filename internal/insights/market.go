package insights

import "strings"

// Demand tiers mirror hiring-market heuristics: a skill name that
// contains a high-demand marker is High, else a medium marker makes it
// Medium, else Standard.
var highDemandMarkers = []string{
	"cloud", "ai", "ml", "kubernetes", "docker", "react", "python",
	"typescript", "aws", "data", "devops", "microservices",
}

var mediumDemandMarkers = []string{
	"java", "angular", "vue", "django", "flask", "postgresql",
	"mongodb", "redis", "jenkins", "git",
}

// MarketDemand labels each skill High, Medium or Standard. Matching is
// substring-based so "machine-learning" picks up the "ml" family via
// its full words and "google cloud" lands in the cloud tier.
func MarketDemand(skills []string) map[string]string {
	demand := make(map[string]string, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		switch {
		case containsAny(lower, highDemandMarkers):
			demand[skill] = "High"
		case containsAny(lower, mediumDemandMarkers):
			demand[skill] = "Medium"
		default:
			demand[skill] = "Standard"
		}
	}
	return demand
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
