package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// TABLE BUILDER — Conjugation table over every tense/aspect pair
// ============================================================================
// One row per tense, one column per aspect. Each cell is an independent
// Build() call, so the table inherits all pipeline guarantees.
// ============================================================================

// BuildTable renders every tense × aspect combination for one subject, verb
// and optional object under fixed negation/question flags.
func BuildTable(subject NounPhrase, verb Verb, object *NounPhrase, negation, question bool) *TableData {
	columns := make([]Column, 0, len(Aspects)+1)
	columns = append(columns, Column{Key: "tense", Label: "Tense", Type: "text", Align: "left"})
	for _, a := range Aspects {
		columns = append(columns, Column{
			Key:   a.String(),
			Label: a.Label(),
			Type:  "text",
			Align: "left",
		})
	}

	rows := make([][]string, 0, len(Tenses))
	for _, t := range Tenses {
		row := make([]string, 0, len(columns))
		row = append(row, tenseLabel(t))
		for _, a := range Aspects {
			row = append(row, Build(Config{
				Subject:  subject,
				Verb:     verb,
				Object:   object,
				Tense:    t,
				Aspect:   a,
				Negation: negation,
				Question: question,
			}))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   tableTitle(subject, verb, negation, question),
		Columns: columns,
		Rows:    rows,
	}
}

// AllVariants enumerates every config for one subject/verb/object: each
// tense/aspect pair under all four negation/question settings.
func AllVariants(subject NounPhrase, verb Verb, object *NounPhrase) []Config {
	combos := Combinations()
	out := make([]Config, 0, len(combos)*4)
	for _, c := range combos {
		for _, negation := range []bool{false, true} {
			for _, question := range []bool{false, true} {
				out = append(out, Config{
					Subject:  subject,
					Verb:     verb,
					Object:   object,
					Tense:    c.Tense,
					Aspect:   c.Aspect,
					Negation: negation,
					Question: question,
				})
			}
		}
	}
	return out
}

func tenseLabel(t Tense) string {
	return CapitalizeFirst(t.String())
}

func tableTitle(subject NounPhrase, verb Verb, negation, question bool) string {
	mood := []string{}
	if negation {
		mood = append(mood, "negative")
	}
	if question {
		mood = append(mood, "interrogative")
	}
	if len(mood) == 0 {
		mood = append(mood, "affirmative")
	}
	return fmt.Sprintf("%s / to %s (%s)", subject.String(), verb.V1(), strings.Join(mood, ", "))
}
