// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// skillList joins skill names, truncating the tail when the list is
// long.
func skillList(names []string, limit int) string {
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	shown := strings.Join(names[:limit], ", ")
	return fmt.Sprintf("%s ... and %d more", shown, len(names)-limit)
}

// PrintMatchResult outputs a human-readable summary of a skill match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %.1f%%\n\n", result.SkillMatchPercentage))

	if len(result.Matching) > 0 {
		sb.WriteString(fmt.Sprintf("Matching (%d):\n", len(result.Matching)))
		sb.WriteString(fmt.Sprintf("  %s\n", skillList(result.Matching, maxItemsToShow)))
	}
	if len(result.Gaps) > 0 {
		sb.WriteString(fmt.Sprintf("Gaps (%d):\n", len(result.Gaps)))
		sb.WriteString(fmt.Sprintf("  %s\n", skillList(result.Gaps, maxItemsToShow)))
	}
	if len(result.Unique) > 0 {
		sb.WriteString(fmt.Sprintf("Unique to resume (%d):\n", len(result.Unique)))
		sb.WriteString(fmt.Sprintf("  %s\n", skillList(result.Unique, maxItemsToShow)))
	}

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the composed score with its component breakdown.
func (p *Printer) PrintScore(score *types.AnalysisScore, resumeLevel, jobLevel types.ExperienceLevel) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final score:     %.1f / 100\n\n", score.FinalScore))
	sb.WriteString(fmt.Sprintf("Skill match:     %.1f%%\n", score.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("Semantic:        %.3f\n", score.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Level bonus:     %.0f\n", score.ExperienceLevelBonus))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Resume level:    %s\n", resumeLevel))
	sb.WriteString(fmt.Sprintf("Job level:       %s", jobLevel))

	p.printBox("ANALYSIS SCORE", sb.String())
}

// PrintRecommendations outputs the ranked suggestion list.
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintSimilarSkills outputs the neighbors of a queried skill.
func (p *Printer) PrintSimilarSkills(skill string, matches []similarity.Match) {
	var sb strings.Builder
	if len(matches) == 0 {
		sb.WriteString(fmt.Sprintf("No skills similar to %q found", skill))
	} else {
		sb.WriteString(fmt.Sprintf("Skills similar to %q:\n\n", skill))
		for i, m := range matches {
			sb.WriteString(fmt.Sprintf("#%d  %-24s %.3f", i+1, m.Name, m.Score))
			if i < len(matches)-1 {
				sb.WriteString("\n")
			}
		}
	}

	p.printBox("SIMILAR SKILLS", sb.String())
}

// PrintGapInsights outputs per-gap learning guidance.
func (p *Printer) PrintGapInsights(insights []types.GapInsight) {
	if len(insights) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(insights), maxItemsToShow)
	for i := 0; i < count; i++ {
		in := insights[i]
		sb.WriteString(fmt.Sprintf("⚠ %s (%s priority)\n", in.Skill, in.Priority))
		if len(in.Related) > 0 {
			names := make([]string, 0, len(in.Related))
			for _, rel := range in.Related {
				names = append(names, rel.Name)
			}
			sb.WriteString(fmt.Sprintf("  related: %s\n", strings.Join(names, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(insights) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(insights)-maxItemsToShow))
	}

	p.printBox("SKILL GAP INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
