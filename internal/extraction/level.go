package extraction

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

var yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:\w+\s+)?(?:experience|exp)\b`)

// levelKeywords is scanned in order; the first whole-word hit wins, so
// "Senior Software Engineer, previously junior developer" resolves to
// Senior regardless of where the words appear.
var levelKeywords = []struct {
	keyword string
	level   types.ExperienceLevel
}{
	{"senior", types.LevelSenior},
	{"sr", types.LevelSenior},
	{"lead", types.LevelLead},
	{"principal", types.LevelPrincipal},
	{"staff", types.LevelStaff},
	{"junior", types.LevelJunior},
	{"jr", types.LevelJunior},
	{"entry", types.LevelEntry},
	{"intern", types.LevelEntry},
	{"internship", types.LevelEntry},
	{"graduate", types.LevelEntry},
	{"mid level", types.LevelMid},
	{"midlevel", types.LevelMid},
	{"experienced", types.LevelMid},
}

// DetectExperienceLevel infers a seniority level from text. An explicit
// year count ("10+ years of experience") takes precedence over title
// keywords; when several counts appear, the largest one decides.
func DetectExperienceLevel(text string) types.ExperienceLevel {
	if text == "" {
		return types.LevelNotSpecified
	}

	if years, ok := maxYears(text); ok {
		switch {
		case years >= 10:
			return types.LevelSeniorLead
		case years >= 5:
			return types.LevelSenior
		case years >= 3:
			return types.LevelMid
		case years >= 1:
			return types.LevelJunior
		}
	}

	folded := textproc.Fold(text)
	for _, entry := range levelKeywords {
		if textproc.ContainsTerm(folded, entry.keyword) {
			return entry.level
		}
	}
	return types.LevelNotSpecified
}

func maxYears(text string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	max := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, true
}
