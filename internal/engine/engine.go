// Package engine wires the analysis components into one façade. An
// Engine is built once at startup and is safe for concurrent use: the
// lexicon and similarity index are read-only, and every call works on
// its own values.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/insights"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Relevance assigned to skills by their role in the match.
const (
	matchingRelevance = 0.9
	gapRelevance      = 0.7
	uniqueRelevance   = 0.5
)

// Engine exposes every analysis operation over a shared lexicon and
// similarity index.
type Engine struct {
	lex *lexicon.Lexicon
	idx *similarity.Index
	ext *extraction.Extractor
}

// New loads the embedded lexicon and builds the similarity index.
func New() (*Engine, error) {
	lex, err := lexicon.Load()
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	return &Engine{
		lex: lex,
		idx: similarity.NewIndex(lex),
		ext: extraction.New(lex),
	}, nil
}

// Lexicon returns the engine's skill lexicon.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// ExtractSkills returns the canonical skills found in text.
func (e *Engine) ExtractSkills(text string) types.SkillSet {
	return e.ext.Extract(text)
}

// MatchSkills partitions resume and job skill sets.
func (e *Engine) MatchSkills(resume, job types.SkillSet) types.MatchResult {
	return matching.Match(resume, job)
}

// SemanticSimilarity scores whole-document similarity in [0, 1].
func (e *Engine) SemanticSimilarity(a, b string) float64 {
	return semantic.Similarity(a, b)
}

// DetectExperienceLevel infers a seniority level from text.
func (e *Engine) DetectExperienceLevel(text string) types.ExperienceLevel {
	return extraction.DetectExperienceLevel(text)
}

// SimilarSkills returns up to topN skills closest to the given one.
func (e *Engine) SimilarSkills(skill string, topN int) ([]similarity.Match, error) {
	matches, err := e.idx.Similar(skill, topN)
	if err != nil {
		return nil, &InvalidInputError{Field: "limit", Reason: err.Error()}
	}
	return matches, nil
}

// ComposeScore validates the component inputs and blends them into the
// final score.
func (e *Engine) ComposeScore(skillScore, semanticScore float64, resumeLevel, jobLevel types.ExperienceLevel) (types.AnalysisScore, error) {
	if skillScore < 0 || skillScore > 100 {
		return types.AnalysisScore{}, &InvalidInputError{
			Field:  "skill_score",
			Reason: fmt.Sprintf("must be in [0,100], got %v", skillScore),
		}
	}
	if semanticScore < 0 || semanticScore > 1 {
		return types.AnalysisScore{}, &InvalidInputError{
			Field:  "semantic_score",
			Reason: fmt.Sprintf("must be in [0,1], got %v", semanticScore),
		}
	}
	bonus := scoring.LevelBonus(resumeLevel, jobLevel)
	return scoring.Compose(skillScore, semanticScore, bonus), nil
}

// Recommend turns skill gaps into at most five ranked suggestions.
func (e *Engine) Recommend(gaps []string, resumeLevel, jobLevel types.ExperienceLevel) []string {
	return insights.Recommend(gaps, resumeLevel, jobLevel)
}

// Analyze runs the full resume-versus-job pipeline. Skill extraction
// and semantic scoring are independent, so they run as parallel
// branches; everything downstream consumes both.
func (e *Engine) Analyze(ctx context.Context, req types.AnalyzeRequest) (*types.AnalysisReport, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		resumeSkills, jobSkills types.SkillSet
		resumeLevel, jobLevel   types.ExperienceLevel
		semanticScore           float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeSkills = e.ext.Extract(req.ResumeText)
		jobSkills = e.ext.Extract(req.JobDescription)
		resumeLevel = extraction.DetectExperienceLevel(req.ResumeText)
		jobLevel = extraction.DetectExperienceLevel(req.JobDescription)
		return gctx.Err()
	})
	g.Go(func() error {
		semanticScore = semantic.Similarity(req.ResumeText, req.JobDescription)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	match := matching.Match(resumeSkills, jobSkills)
	bonus := scoring.LevelBonus(resumeLevel, jobLevel)
	score := scoring.Compose(match.SkillMatchPercentage, semanticScore, bonus)

	report := &types.AnalysisReport{
		ID:    uuid.New(),
		Match: match,
		SkillAnalysis: types.SkillAnalysis{
			MatchingSkills: e.scoredSkills(match.Matching, matchingRelevance),
			SkillGaps:      e.scoredSkills(match.Gaps, gapRelevance),
			UniqueSkills:   e.scoredSkills(match.Unique, uniqueRelevance),
		},
		Score:            score,
		ResumeLevel:      resumeLevel,
		JobLevel:         jobLevel,
		Recommendations:  insights.Recommend(match.Gaps, resumeLevel, jobLevel),
		GapInsights:      insights.GapInsights(e.idx, match.Gaps, match.Unique),
		MarketDemand:     insights.MarketDemand(match.Gaps),
		AnalyzedAt:       time.Now().UTC(),
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}
	return report, nil
}

func (e *Engine) scoredSkills(names []string, relevance float64) []types.ScoredSkill {
	skills := make([]types.ScoredSkill, 0, len(names))
	for _, name := range names {
		skills = append(skills, types.ScoredSkill{
			Name:      name,
			Category:  e.lex.CategoryOf(name),
			Relevance: relevance,
		})
	}
	return skills
}
