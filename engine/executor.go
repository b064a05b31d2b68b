package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ============================================================================
// EXECUTOR — Sentence pipeline
// ============================================================================
// Entry point: Build(cfg)
//
// Pipeline:
//   1. Select auxiliaries from the (tense, aspect) table, insert "not"
//   2. Inflect the main verb
//   3. Assemble subject + auxiliaries + verb + object, dropping empties
//   4. Invert tokens 0 and 1 for questions
//   5. Join, punctuate, capitalize
//
// Build is a pure function of its input and safe for concurrent use.
// ============================================================================

// Build returns the sentence described by cfg.
func Build(cfg Config) string {
	return Punctuate(Tokens(cfg), cfg.Question)
}

// Tokens returns the sentence words in final order, before punctuation.
func Tokens(cfg Config) []string {
	aux := Auxiliaries(cfg)
	parts := make([]string, 0, len(aux)+3)
	parts = append(parts, cfg.Subject.String())
	parts = append(parts, aux...)
	parts = append(parts, MainVerb(cfg))
	if cfg.Object != nil {
		parts = append(parts, cfg.Object.String())
	}
	parts = dropEmpty(parts)

	if cfg.Question && len(parts) > 1 {
		parts[0], parts[1] = parts[1], parts[0]
	}
	return parts
}

// MainVerb returns the inflected main verb for cfg.
// Under simple aspect with do-support the bare base form is used, since the
// auxiliary already carries tense and agreement.
func MainVerb(cfg Config) string {
	switch cfg.Aspect {
	case Simple:
		if cfg.Negation || cfg.Question {
			return cfg.Verb.V1()
		}
		switch {
		case cfg.Tense == Present && cfg.Subject.IsThirdSingular():
			return cfg.Verb.ThirdSingular()
		case cfg.Tense == Past:
			return cfg.Verb.V2()
		}
		return cfg.Verb.V1()
	case Perfect:
		return cfg.Verb.V3()
	case Continuous, PerfectContinuous:
		return cfg.Verb.Ing()
	}
	return cfg.Verb.V1()
}

// Punctuate joins tokens with single spaces, appends "?" or "." and
// upper-cases the first character.
func Punctuate(tokens []string, question bool) string {
	sentence := strings.Join(tokens, " ")
	if question {
		sentence += "?"
	} else {
		sentence += "."
	}
	return CapitalizeFirst(sentence)
}

// CapitalizeFirst upper-cases the first rune of s and leaves the rest as is.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func dropEmpty(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
