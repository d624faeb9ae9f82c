package types

// Category is the fixed classification a skill belongs to.
type Category string

// The category enum is closed; anything unrecognized falls back to Other.
const (
	CategoryProgramming Category = "Programming"
	CategoryFrontend    Category = "Frontend"
	CategoryBackend     Category = "Backend"
	CategoryDatabase    Category = "Database"
	CategoryCloud       Category = "Cloud/DevOps"
	CategoryDataAI      Category = "Data/AI"
	CategoryMobile      Category = "Mobile"
	CategoryTools       Category = "Tools"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category in a fixed order.
func Categories() []Category {
	return []Category{
		CategoryProgramming,
		CategoryFrontend,
		CategoryBackend,
		CategoryDatabase,
		CategoryCloud,
		CategoryDataAI,
		CategoryMobile,
		CategoryTools,
		CategoryOther,
	}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
