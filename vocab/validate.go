package vocab

import (
	"fmt"
	"strings"
)

// ============================================================================
// VALIDATION — Flags vocabulary rows the engine would render wrongly
// ============================================================================
// The engine takes flags at face value: a pronoun marked definite becomes
// "the he", a "they" marked singular becomes "they eats". Validate catches
// these in the data instead.
// ============================================================================

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	List     string   `json:"list"` // "subjects", "verbs", "objects"
	Word     string   `json:"word"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s %q: %s", i.Severity, i.List, i.Word, i.Message)
}

// pronounNumber maps personal pronouns to whether they are plural.
var pronounNumber = map[string]bool{
	"i": false, "he": false, "she": false, "it": false,
	"me": false, "him": false, "her": false,
	"we": true, "they": true, "us": true, "them": true,
	"you": true,
}

// Validate reports inconsistent or incomplete entries.
func Validate(v *Vocabulary) []Issue {
	var issues []Issue
	if len(v.Subjects) == 0 {
		issues = append(issues, Issue{Severity: SeverityError, List: "subjects", Message: "no subjects"})
	}
	if len(v.Verbs) == 0 {
		issues = append(issues, Issue{Severity: SeverityError, List: "verbs", Message: "no verbs"})
	}
	issues = append(issues, validateNouns("subjects", v.Subjects)...)
	issues = append(issues, validateNouns("objects", v.Objects)...)
	issues = append(issues, validateVerbs(v.Verbs)...)
	return issues
}

// HasErrors reports whether any issue is error-level.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func validateNouns(list string, entries []NounEntry) []Issue {
	var issues []Issue
	seen := map[string]bool{}
	add := func(sev Severity, word, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, List: list, Word: word, Message: fmt.Sprintf(format, args...)})
	}

	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Word))
		if key == "" {
			add(SeverityError, e.Word, "empty word")
			continue
		}
		if seen[key] {
			add(SeverityError, e.Word, "duplicate entry")
		}
		seen[key] = true

		if plural, isPronoun := pronounNumber[key]; isPronoun {
			if article := e.Subject().Article(); article != "" {
				add(SeverityError, e.Word, "pronoun would render as %q; set definite and countable to false", article+" "+e.Word)
			}
			if plural != e.Plural {
				sev := SeverityError
				if key == "you" {
					sev = SeverityWarning
				}
				add(sev, e.Word, "pronoun has plural=%v; expected %v", e.Plural, plural)
			}
			continue
		}

		if e.Countable && !e.Definite && !e.Plural && strings.TrimSpace(e.Onset) == "" {
			add(SeverityWarning, e.Word, "missing onset; article falls back to \"a\"")
		}
	}
	return issues
}

func validateVerbs(entries []VerbEntry) []Issue {
	var issues []Issue
	seen := map[string]bool{}
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Base))
		if key == "" || strings.TrimSpace(e.Past) == "" || strings.TrimSpace(e.Participle) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				List:     "verbs",
				Word:     e.Base,
				Message:  "verb needs base, past and participle",
			})
			continue
		}
		if seen[key] {
			issues = append(issues, Issue{Severity: SeverityError, List: "verbs", Word: e.Base, Message: "duplicate entry"})
		}
		seen[key] = true
	}
	return issues
}
