// Package lexicon holds the curated skill table: canonical names, their
// synonyms, categories, and the descriptions the similarity index is
// built from. The lexicon is loaded once at process start from an
// embedded JSON table and is immutable afterwards, so it is safe for
// unlimited concurrent readers.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed data/skills.json
var skillsJSON []byte

//go:embed data/skills.schema.json
var skillsSchemaJSON []byte

// SkillEntry is one canonical skill record. Name is the skill's identity
// across the whole engine: lower-case, hyphen-joined for multi-word
// terms. Description is the free text its similarity vector is built
// from.
type SkillEntry struct {
	Name        string         `json:"name"`
	Category    types.Category `json:"category"`
	Synonyms    []string       `json:"synonyms,omitempty"`
	Description string         `json:"description"`
}

// Lexicon is the loaded skill table. Entry order is the file order,
// which fixes iteration order for deterministic downstream output.
type Lexicon struct {
	version string
	entries []SkillEntry
	byName  map[string]int
	// bySurface maps every folded surface form (canonical name plus
	// synonyms) to the canonical name.
	bySurface map[string]string
	// surfaces holds, per entry, the folded surface forms used for
	// word-boundary matching against folded document text.
	surfaces [][]string
}

type rawLexicon struct {
	Version string     `json:"version"`
	Skills  []rawSkill `json:"skills"`
}

type rawSkill struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Synonyms []string `json:"synonyms"`
	Keywords []string `json:"keywords"`
}

// Load parses and validates the embedded skill table. A failure here
// means the build itself shipped a corrupt lexicon; callers must treat
// it as fatal and refuse to serve traffic.
func Load() (*Lexicon, error) {
	return load(skillsJSON, skillsSchemaJSON)
}

func load(data, schema []byte) (*Lexicon, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate skill lexicon: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("skill lexicon does not match schema: %s", strings.Join(msgs, "; "))
	}

	var raw rawLexicon
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse skill lexicon: %w", err)
	}

	lex := &Lexicon{
		version:   raw.Version,
		entries:   make([]SkillEntry, 0, len(raw.Skills)),
		byName:    make(map[string]int, len(raw.Skills)),
		bySurface: make(map[string]string, len(raw.Skills)*2),
		surfaces:  make([][]string, 0, len(raw.Skills)),
	}

	for _, rs := range raw.Skills {
		if _, dup := lex.byName[rs.Name]; dup {
			return nil, fmt.Errorf("duplicate skill name %q in lexicon", rs.Name)
		}
		cat := types.Category(rs.Category)
		if !cat.Valid() {
			cat = types.CategoryOther
		}
		entry := SkillEntry{
			Name:     rs.Name,
			Category: cat,
			Synonyms: rs.Synonyms,
			// Rich description for the similarity vector, e.g.
			// "docker - Cloud/DevOps: containers, microservices, ...".
			Description: fmt.Sprintf("%s - %s: %s", rs.Name, cat, strings.Join(rs.Keywords, ", ")),
		}

		forms := make([]string, 0, 1+len(rs.Synonyms))
		seen := make(map[string]bool, 1+len(rs.Synonyms))
		for _, surface := range append([]string{rs.Name}, rs.Synonyms...) {
			folded := textproc.Fold(surface)
			if folded == "" || seen[folded] {
				continue
			}
			if owner, taken := lex.bySurface[folded]; taken && owner != rs.Name {
				return nil, fmt.Errorf("surface form %q claimed by both %q and %q", surface, owner, rs.Name)
			}
			lex.bySurface[folded] = rs.Name
			seen[folded] = true
			forms = append(forms, folded)
		}

		lex.byName[rs.Name] = len(lex.entries)
		lex.entries = append(lex.entries, entry)
		lex.surfaces = append(lex.surfaces, forms)
	}

	return lex, nil
}

// Version returns the lexicon's data version string.
func (l *Lexicon) Version() string {
	return l.version
}

// Len returns the number of canonical skills in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns every skill entry in lexicon order. The returned
// slice is shared and must not be modified.
func (l *Lexicon) Entries() []SkillEntry {
	return l.entries
}

// Lookup resolves a token or surface form to its skill entry. The token
// is folded first, so "Machine Learning", "machine-learning" and "ML"
// all resolve to the same entry.
func (l *Lexicon) Lookup(token string) (SkillEntry, bool) {
	name, ok := l.Canonical(token)
	if !ok {
		return SkillEntry{}, false
	}
	return l.entries[l.byName[name]], true
}

// Canonical resolves a token to its canonical skill name, if the token
// is a known surface form.
func (l *Lexicon) Canonical(token string) (string, bool) {
	name, ok := l.bySurface[textproc.Fold(token)]
	return name, ok
}

// MatchAll returns the canonical names of every lexicon entry whose
// name or synonym appears in foldedText on whole-word boundaries. The
// input must already be folded with textproc.Fold. Results follow
// lexicon order.
func (l *Lexicon) MatchAll(foldedText string) []string {
	if foldedText == "" {
		return nil
	}
	var found []string
	for i, entry := range l.entries {
		for _, form := range l.surfaces[i] {
			if textproc.ContainsTerm(foldedText, form) {
				found = append(found, entry.Name)
				break
			}
		}
	}
	return found
}

// categoryKeywords is the fixed fallback table CategoryOf consults for
// skills outside the lexicon. First substring hit wins.
var categoryKeywords = []struct {
	category types.Category
	keys     []string
}{
	{types.CategoryDataAI, []string{"learning", "data", "analytics", " ai", "neural", "model"}},
	{types.CategoryCloud, []string{"cloud", "devops", "deploy", "docker", "kube", "terraform", "ci"}},
	{types.CategoryDatabase, []string{"sql", "database", "db", "cache"}},
	{types.CategoryFrontend, []string{"css", "html", "frontend", "react", "vue", "angular"}},
	{types.CategoryBackend, []string{"server", "backend", "api", "framework"}},
	{types.CategoryMobile, []string{"mobile", "ios", "android"}},
	{types.CategoryTools, []string{"test", "agile", "git", "tool"}},
	{types.CategoryProgramming, []string{"script", "lang", "programming"}},
}

// CategoryOf returns the category of a skill name. Lexicon entries win;
// unknown names fall back to a substring scan of the fixed keyword
// table, then to Other. Category assignment is total: every input gets
// some category.
func (l *Lexicon) CategoryOf(skillName string) types.Category {
	if entry, ok := l.Lookup(skillName); ok {
		return entry.Category
	}
	lower := " " + strings.ToLower(skillName) + " "
	for _, group := range categoryKeywords {
		for _, key := range group.keys {
			if strings.Contains(lower, key) {
				return group.category
			}
		}
	}
	return types.CategoryOther
}
