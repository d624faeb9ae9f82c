package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e
}

func TestExtractAndMatchScenario(t *testing.T) {
	e := newTestEngine(t)

	resume := e.ExtractSkills("Python, React, Docker, AWS, 5 years experience")
	job := e.ExtractSkills("Need Python and React developer, 3+ years")

	for _, want := range []string{"python", "react", "docker", "aws"} {
		assert.True(t, resume.Has(want), "resume missing %s", want)
	}
	assert.True(t, job.Has("python"))
	assert.True(t, job.Has("react"))

	result := e.MatchSkills(resume, job)
	assert.Equal(t, []string{"python", "react"}, result.Matching)
	assert.Empty(t, result.Gaps)
	assert.Equal(t, 100.0, result.SkillMatchPercentage)
}

func TestMatchWithGapsScenario(t *testing.T) {
	e := newTestEngine(t)

	resume := types.NewSkillSet("python")
	job := types.NewSkillSet("python", "docker", "kubernetes")

	result := e.MatchSkills(resume, job)
	assert.InDelta(t, 33.3, result.SkillMatchPercentage, 0.1)
	assert.Equal(t, []string{"docker", "kubernetes"}, result.Gaps)

	recs := e.Recommend(result.Gaps, types.LevelNotSpecified, types.LevelNotSpecified)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "docker")
	assert.Contains(t, recs[0], "kubernetes")
}

func TestExtractSkillsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	text := "Senior engineer: Python, Terraform, PostgreSQL and React"

	first := e.ExtractSkills(text)
	second := e.ExtractSkills(text)
	assert.Equal(t, first.Names(), second.Names())
}

func TestComposeScoreValidation(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.ComposeScore(120, 0.5, types.LevelSenior, types.LevelSenior)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "skill_score", invalid.Field)

	_, err = e.ComposeScore(50, 1.2, types.LevelSenior, types.LevelSenior)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "semantic_score", invalid.Field)

	score, err := e.ComposeScore(100, 1.0, types.LevelSenior, types.LevelSenior)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score.FinalScore, 0.0)
	assert.LessOrEqual(t, score.FinalScore, 100.0)
}

func TestSimilarSkillsValidation(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.SimilarSkills("python", 0)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)

	matches, err := e.SimilarSkills("python", 5)
	require.NoError(t, err)
	assert.Len(t, matches, 5)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	e := newTestEngine(t)

	req := types.AnalyzeRequest{
		ResumeText: "Senior backend engineer with 8 years of experience. " +
			"Skills: Python, Django, PostgreSQL, Docker, AWS. " +
			"Built and operated high-traffic services.",
		JobDescription: "We need a senior backend developer with 5+ years of experience. " +
			"Requirements: Python, Django, Kubernetes. " +
			"You will own our deployment pipeline.",
	}

	report, err := e.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", report.ID.String())
	assert.Contains(t, report.Match.Matching, "python")
	assert.Contains(t, report.Match.Matching, "django")
	assert.Contains(t, report.Match.Gaps, "kubernetes")

	assert.Equal(t, types.LevelSenior, report.ResumeLevel)
	assert.Equal(t, types.LevelSenior, report.JobLevel)

	assert.GreaterOrEqual(t, report.Score.FinalScore, 0.0)
	assert.LessOrEqual(t, report.Score.FinalScore, 100.0)
	assert.Greater(t, report.Score.SemanticSimilarity, 0.0)

	assert.NotEmpty(t, report.Recommendations)
	assert.NotEmpty(t, report.GapInsights)
	assert.Contains(t, report.MarketDemand, "kubernetes")

	for _, s := range report.SkillAnalysis.MatchingSkills {
		assert.Equal(t, 0.9, s.Relevance)
	}
	for _, s := range report.SkillAnalysis.SkillGaps {
		assert.Equal(t, 0.7, s.Relevance)
	}
	assert.GreaterOrEqual(t, report.ProcessingTimeMS, int64(0))
}

func TestAnalyzeDeterministicScores(t *testing.T) {
	e := newTestEngine(t)

	req := types.AnalyzeRequest{
		ResumeText:     strings.Repeat("Python developer with Django and Redis experience. ", 3),
		JobDescription: strings.Repeat("Hiring a Python engineer familiar with Redis and Kafka. ", 3),
	}

	first, err := e.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := e.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Match, second.Match)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Recommendations, second.Recommendations)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAnalyzeRejectsShortText(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Analyze(context.Background(), types.AnalyzeRequest{
		ResumeText:     "too short",
		JobDescription: strings.Repeat("long enough job description text ", 5),
	})
	assert.Error(t, err)
}

func TestAnalyzeHonorsCancellation(t *testing.T) {
	e := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Analyze(ctx, types.AnalyzeRequest{
		ResumeText:     strings.Repeat("Python developer resume text. ", 5),
		JobDescription: strings.Repeat("Python developer job text. ", 5),
	})
	assert.Error(t, err)
}
