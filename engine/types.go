package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// SENTENCER ENGINE TYPES
// ============================================================================
// Closed enumerations (Tense, Aspect, Person, Role) and the Config value the
// pipeline projects into a sentence.
//
// Dependency: engine imports golang.org/x/text only. No I/O, no logging.
// ============================================================================

var (
	// ErrUnknownTense is returned by ParseTense for names outside the enumeration.
	ErrUnknownTense = errors.New("unknown tense")
	// ErrUnknownAspect is returned by ParseAspect for names outside the enumeration.
	ErrUnknownAspect = errors.New("unknown aspect")
)

// ============================================================================
// TENSE
// ============================================================================

// Tense places the action in time.
type Tense int

const (
	Present Tense = iota
	Past
	Future
)

// Tenses lists every tense in declaration order.
var Tenses = []Tense{Present, Past, Future}

var tenseNames = map[Tense]string{
	Present: "present",
	Past:    "past",
	Future:  "future",
}

func (t Tense) String() string {
	if name, ok := tenseNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tense(%d)", int(t))
}

// ParseTense resolves a tense name case-insensitively.
func ParseTense(s string) (Tense, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for t, name := range tenseNames {
		if name == key {
			return t, nil
		}
	}
	return Present, fmt.Errorf("%w: %q", ErrUnknownTense, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tense) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tense) UnmarshalText(text []byte) error {
	parsed, err := ParseTense(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ============================================================================
// ASPECT
// ============================================================================

// Aspect describes how the action relates to time structure.
type Aspect int

const (
	Simple Aspect = iota
	Perfect
	Continuous
	PerfectContinuous
)

// Aspects lists every aspect in declaration order.
var Aspects = []Aspect{Simple, Perfect, Continuous, PerfectContinuous}

var aspectNames = map[Aspect]string{
	Simple:            "simple",
	Perfect:           "perfect",
	Continuous:        "continuous",
	PerfectContinuous: "perfect-continuous",
}

// aspectAliases are accepted by ParseAspect in addition to the canonical names.
var aspectAliases = map[string]Aspect{
	"perfect_continuous": PerfectContinuous,
	"perfectcontinuous":  PerfectContinuous,
	"perfect continuous": PerfectContinuous,
	"progressive":        Continuous,
}

func (a Aspect) String() string {
	if name, ok := aspectNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Aspect(%d)", int(a))
}

// Label returns a human-readable title, e.g. "Perfect Continuous".
func (a Aspect) Label() string {
	switch a {
	case Simple:
		return "Simple"
	case Perfect:
		return "Perfect"
	case Continuous:
		return "Continuous"
	case PerfectContinuous:
		return "Perfect Continuous"
	}
	return a.String()
}

// ParseAspect resolves an aspect name case-insensitively.
func ParseAspect(s string) (Aspect, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, name := range aspectNames {
		if name == key {
			return a, nil
		}
	}
	if a, ok := aspectAliases[key]; ok {
		return a, nil
	}
	return Simple, fmt.Errorf("%w: %q", ErrUnknownAspect, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Aspect) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Aspect) UnmarshalText(text []byte) error {
	parsed, err := ParseAspect(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ============================================================================
// PERSON & ROLE
// ============================================================================

// Person is the grammatical person governing verb agreement.
type Person int

const (
	First Person = iota + 1
	Second
	Third
)

func (p Person) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	}
	return fmt.Sprintf("Person(%d)", int(p))
}

// Role tags a NounPhrase as the sentence's subject or object.
type Role int

const (
	RoleSubject Role = iota
	RoleObject
)

func (r Role) String() string {
	if r == RoleObject {
		return "object"
	}
	return "subject"
}

// ============================================================================
// CONFIG — The value Build projects into a sentence
// ============================================================================

// Config is everything needed to build one sentence.
// Object is optional; a nil Object yields an intransitive sentence.
type Config struct {
	Subject  NounPhrase
	Verb     Verb
	Object   *NounPhrase
	Tense    Tense
	Aspect   Aspect
	Negation bool
	Question bool
}

// Combination is a (tense, aspect) pair.
type Combination struct {
	Tense  Tense  `json:"tense"`
	Aspect Aspect `json:"aspect"`
}

// Combinations enumerates all tense/aspect pairs, tense-major.
func Combinations() []Combination {
	out := make([]Combination, 0, len(Tenses)*len(Aspects))
	for _, t := range Tenses {
		for _, a := range Aspects {
			out = append(out, Combination{Tense: t, Aspect: a})
		}
	}
	return out
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a conjugation table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text"
	Align string `json:"align"` // "left", "center", "right"
}
