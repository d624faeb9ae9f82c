package extraction

import (
	"strings"
)

// sectionHeaders maps well-known header spellings to the section key
// they open. Longer spellings are matched first where they overlap.
var sectionHeaders = []struct {
	heading string
	section string
}{
	{"technical skills", "skills"},
	{"core competencies", "skills"},
	{"technologies", "skills"},
	{"skills", "skills"},
	{"professional experience", "experience"},
	{"work experience", "experience"},
	{"work history", "experience"},
	{"employment", "experience"},
	{"experience", "experience"},
	{"education", "education"},
	{"academic background", "education"},
	{"requirements", "requirements"},
	{"qualifications", "requirements"},
	{"must have", "requirements"},
	{"responsibilities", "responsibilities"},
	{"duties", "responsibilities"},
	{"what you'll do", "responsibilities"},
}

// ExtractSections splits a document into named sections keyed by
// skills, experience, education, requirements and responsibilities. A
// line is treated as a header when it consists of a known heading,
// optionally followed by a colon; everything until the next header
// belongs to the open section. Documents without recognizable headers
// yield an empty map.
func ExtractSections(text string) map[string]string {
	sections := make(map[string]string)
	var current string
	var buf []string

	flush := func() {
		if current == "" {
			return
		}
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			if prev, ok := sections[current]; ok {
				content = prev + "\n" + content
			}
			sections[current] = content
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if section, ok := headerSection(line); ok {
			flush()
			current = section
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()
	return sections
}

// headerSection reports whether a line is a section header and which
// section it opens.
func headerSection(line string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	for _, h := range sectionHeaders {
		if trimmed == h.heading {
			return h.section, true
		}
	}
	return "", false
}
