// Package matching compares resume and job skill sets.
package matching

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

// Match partitions the two skill sets into skills present in both,
// job skills the resume lacks, and resume skills the job never asks
// for. The percentage is matched job skills over all job skills; an
// empty job set scores 0 so a blank posting cannot read as a perfect
// match. All lists come back sorted.
func Match(resume, job types.SkillSet) types.MatchResult {
	matching := resume.Intersect(job)
	gaps := job.Diff(resume)
	unique := resume.Diff(job)

	var pct float64
	if job.Len() > 0 {
		pct = float64(matching.Len()) / float64(job.Len()) * 100
	}
	return types.MatchResult{
		Matching:             matching.Names(),
		Gaps:                 gaps.Names(),
		Unique:               unique.Names(),
		SkillMatchPercentage: pct,
	}
}
