package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spektr-org/sentencer/engine"
)

// ============================================================================
// VOCABULARY — The word lists a presentation layer offers the user
// ============================================================================
// Loaded from YAML (Load/Parse), imported from CSV (DiscoverFromCSV) or taken
// from the embedded default (Default). Entries convert into engine values;
// the engine itself never sees this package.
// ============================================================================

var (
	ErrUnknownSubject = errors.New("unknown subject")
	ErrUnknownVerb    = errors.New("unknown verb")
	ErrUnknownObject  = errors.New("unknown object")
)

// Vocabulary holds the subject, verb and object lists.
type Vocabulary struct {
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Subjects []NounEntry `yaml:"subjects" json:"subjects"`
	Verbs    []VerbEntry `yaml:"verbs" json:"verbs"`
	Objects  []NounEntry `yaml:"objects" json:"objects"`
}

// NounEntry describes one noun and the flags that drive its article and
// agreement.
type NounEntry struct {
	Word      string `yaml:"word" json:"word"`
	Onset     string `yaml:"onset" json:"onset"`
	Definite  bool   `yaml:"definite" json:"definite"`
	Plural    bool   `yaml:"plural" json:"plural"`
	Countable bool   `yaml:"countable" json:"countable"`
}

// VerbEntry holds the three principal parts of a verb.
type VerbEntry struct {
	Base       string `yaml:"base" json:"base"`
	Past       string `yaml:"past" json:"past"`
	Participle string `yaml:"participle" json:"participle"`
}

// Stats summarizes list sizes.
type Stats struct {
	Subjects int `json:"subjects"`
	Verbs    int `json:"verbs"`
	Objects  int `json:"objects"`
}

// Subject converts the entry into a subject noun phrase.
func (e NounEntry) Subject() engine.NounPhrase {
	return engine.NewSubject(e.Word, e.Onset, e.Definite, e.Plural, e.Countable)
}

// Object converts the entry into an object noun phrase.
func (e NounEntry) Object() engine.NounPhrase {
	return engine.NewObject(e.Word, e.Onset, e.Definite, e.Plural, e.Countable)
}

// Verb converts the entry into an engine verb.
func (e VerbEntry) Verb() engine.Verb {
	return engine.NewVerb(e.Base, e.Past, e.Participle)
}

// Stats returns the number of entries per list.
func (v *Vocabulary) Stats() Stats {
	return Stats{
		Subjects: len(v.Subjects),
		Verbs:    len(v.Verbs),
		Objects:  len(v.Objects),
	}
}

// FindSubject looks a subject up by word, case-insensitively.
func (v *Vocabulary) FindSubject(word string) (engine.NounPhrase, error) {
	e, ok := findNoun(v.Subjects, word)
	if !ok {
		return engine.NounPhrase{}, fmt.Errorf("%w: %q", ErrUnknownSubject, word)
	}
	return e.Subject(), nil
}

// FindObject looks an object up by word, case-insensitively.
func (v *Vocabulary) FindObject(word string) (engine.NounPhrase, error) {
	e, ok := findNoun(v.Objects, word)
	if !ok {
		return engine.NounPhrase{}, fmt.Errorf("%w: %q", ErrUnknownObject, word)
	}
	return e.Object(), nil
}

// FindVerb looks a verb up by any of its principal parts. Base forms win over
// past forms, so "read" resolves to the verb whose base is "read".
func (v *Vocabulary) FindVerb(form string) (engine.Verb, error) {
	key := strings.TrimSpace(form)
	for _, e := range v.Verbs {
		if strings.EqualFold(e.Base, key) {
			return e.Verb(), nil
		}
	}
	for _, e := range v.Verbs {
		if strings.EqualFold(e.Past, key) || strings.EqualFold(e.Participle, key) {
			return e.Verb(), nil
		}
	}
	return engine.Verb{}, fmt.Errorf("%w: %q", ErrUnknownVerb, form)
}

// Merge appends entries from other that are not already present. Existing
// entries win on conflicts. Returns the number of entries added.
func (v *Vocabulary) Merge(other *Vocabulary) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, e := range other.Subjects {
		if _, ok := findNoun(v.Subjects, e.Word); !ok {
			v.Subjects = append(v.Subjects, e)
			added++
		}
	}
	for _, e := range other.Objects {
		if _, ok := findNoun(v.Objects, e.Word); !ok {
			v.Objects = append(v.Objects, e)
			added++
		}
	}
	for _, e := range other.Verbs {
		if !hasVerb(v.Verbs, e.Base) {
			v.Verbs = append(v.Verbs, e)
			added++
		}
	}
	return added
}

// Clone returns a deep copy.
func (v *Vocabulary) Clone() *Vocabulary {
	return &Vocabulary{
		Name:     v.Name,
		Subjects: append([]NounEntry(nil), v.Subjects...),
		Verbs:    append([]VerbEntry(nil), v.Verbs...),
		Objects:  append([]NounEntry(nil), v.Objects...),
	}
}

func findNoun(entries []NounEntry, word string) (NounEntry, bool) {
	key := strings.TrimSpace(word)
	for _, e := range entries {
		if strings.EqualFold(e.Word, key) {
			return e, true
		}
	}
	return NounEntry{}, false
}

func hasVerb(entries []VerbEntry, base string) bool {
	for _, e := range entries {
		if strings.EqualFold(e.Base, base) {
			return true
		}
	}
	return false
}
