package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestRecommendGreatMatch(t *testing.T) {
	recs := Recommend(nil, types.LevelSenior, types.LevelJunior)
	require.Len(t, recs, 1)
	assert.Equal(t, "Great match! Your skills align well with the job requirements.", recs[0])

	recs = Recommend([]string{}, types.LevelNotSpecified, types.LevelNotSpecified)
	require.Len(t, recs, 1)
	assert.Equal(t, "Great match! Your skills align well with the job requirements.", recs[0])
}

func TestRecommendPriorityGaps(t *testing.T) {
	recs := Recommend([]string{"docker", "kubernetes"}, types.LevelSenior, types.LevelSenior)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Priority skills to focus on:")
	assert.Contains(t, recs[0], "docker")
	assert.Contains(t, recs[0], "kubernetes")
}

func TestRecommendPriorityGapsCappedAtThree(t *testing.T) {
	gaps := []string{"docker", "kubernetes", "aws", "react", "python"}
	recs := Recommend(gaps, types.LevelSenior, types.LevelSenior)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "docker, kubernetes, aws")
	assert.NotContains(t, recs[0], "react")
}

func TestRecommendLevelMismatchFirst(t *testing.T) {
	recs := Recommend([]string{"terraform"}, types.LevelJunior, types.LevelSenior)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Senior")
}

func TestRecommendCategoryTemplates(t *testing.T) {
	recs := Recommend([]string{"terraform"}, types.LevelSenior, types.LevelSenior)
	assert.Contains(t, recs, "Consider gaining cloud/DevOps experience through hands-on projects")

	recs = Recommend([]string{"css"}, types.LevelSenior, types.LevelSenior)
	assert.Contains(t, recs, "Strengthen your frontend development skills with modern frameworks")

	recs = Recommend([]string{"pandas"}, types.LevelSenior, types.LevelSenior)
	assert.Contains(t, recs, "Data analysis skills are in high demand - consider online courses")
}

func TestRecommendCappedAtFive(t *testing.T) {
	gaps := []string{"docker", "react", "pandas", "terraform", "css", "sql", "go"}
	recs := Recommend(gaps, types.LevelJunior, types.LevelSenior)
	assert.LessOrEqual(t, len(recs), 5)
}

func TestMarketDemand(t *testing.T) {
	demand := MarketDemand([]string{"kubernetes", "django", "cobol"})

	assert.Equal(t, "High", demand["kubernetes"])
	assert.Equal(t, "Medium", demand["django"])
	assert.Equal(t, "Standard", demand["cobol"])
}

func TestLearningPathCuratedAndGeneric(t *testing.T) {
	curated := LearningPath("docker")
	assert.Equal(t, "Learn containerization basics", curated[0])

	generic := LearningPath("zig")
	require.Len(t, generic, 4)
	assert.Contains(t, generic[0], "zig")
}

func TestGapInsights(t *testing.T) {
	lex, err := lexicon.Load()
	require.NoError(t, err)
	idx := similarity.NewIndex(lex)

	insights := GapInsights(idx, []string{"kubernetes"}, nil)
	require.Len(t, insights, 1)

	in := insights[0]
	assert.Equal(t, "kubernetes", in.Skill)
	assert.Equal(t, "high", in.Priority)
	assert.LessOrEqual(t, len(in.Related), 3)
	assert.NotEmpty(t, in.LearningPath)
	for _, rel := range in.Related {
		assert.NotEqual(t, "kubernetes", rel.Name)
	}
}

func TestGapInsightsRelatedSkillLowersPriority(t *testing.T) {
	lex, err := lexicon.Load()
	require.NoError(t, err)
	idx := similarity.NewIndex(lex)

	insights := GapInsights(idx, []string{"kubernetes"}, nil)
	require.Len(t, insights, 1)
	require.NotEmpty(t, insights[0].Related)

	held := []string{insights[0].Related[0].Name}
	again := GapInsights(idx, []string{"kubernetes"}, held)
	require.Len(t, again, 1)
	assert.Equal(t, "medium", again[0].Priority)
}
