package types

// ExperienceLevel is the seniority detected for a single document
// (resume or job description).
type ExperienceLevel string

// Canonical experience levels, from least to most senior.
const (
	LevelNotSpecified ExperienceLevel = "Not specified"
	LevelEntry        ExperienceLevel = "Entry-level"
	LevelJunior       ExperienceLevel = "Junior"
	LevelMid          ExperienceLevel = "Mid-level"
	LevelSenior       ExperienceLevel = "Senior"
	LevelSeniorLead   ExperienceLevel = "Senior/Lead"
	LevelLead         ExperienceLevel = "Lead"
	LevelPrincipal    ExperienceLevel = "Principal"
	LevelStaff        ExperienceLevel = "Staff"
)

// Specified reports whether the level carries seniority information.
func (l ExperienceLevel) Specified() bool {
	return l != LevelNotSpecified && l != ""
}

// Rank orders levels by seniority so callers can compare a candidate's
// level against a role's level. Not specified ranks below everything.
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelEntry:
		return 1
	case LevelJunior:
		return 2
	case LevelMid:
		return 3
	case LevelSenior:
		return 4
	case LevelSeniorLead:
		return 5
	case LevelLead:
		return 6
	case LevelPrincipal:
		return 7
	case LevelStaff:
		return 8
	default:
		return 0
	}
}

func (l ExperienceLevel) String() string {
	if l == "" {
		return string(LevelNotSpecified)
	}
	return string(l)
}
