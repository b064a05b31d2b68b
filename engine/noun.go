package engine

import (
	"strings"

	"golang.org/x/text/cases"
)

// ============================================================================
// NOUN PHRASE — Surface form + article resolution
// ============================================================================
// One value type covers both subject and object; Role decides whether the
// phrase takes part in agreement.
// ============================================================================

// vowelOnsets are IPA symbols that begin with a vowel sound.
// A phrase whose onset starts with any of them takes "an".
var vowelOnsets = []string{
	"aɪ", "aʊ", "eɪ", "oʊ", "ɪ", "ʊ", "ɛ", "ɔ", "ɒ", "æ",
	"ʌ", "ə", "i", "u", "ɑ", "ɜ", "ɔɪ", "eə", "ʊə",
}

// NounPhrase is an immutable noun with its article-driving flags.
type NounPhrase struct {
	word      string
	onset     string
	definite  bool
	plural    bool
	countable bool
	role      Role
}

// NewNounPhrase creates a noun phrase with an explicit role.
func NewNounPhrase(role Role, word, onset string, definite, plural, countable bool) NounPhrase {
	return NounPhrase{
		word:      word,
		onset:     onset,
		definite:  definite,
		plural:    plural,
		countable: countable,
		role:      role,
	}
}

// NewSubject creates a subject noun phrase.
func NewSubject(word, onset string, definite, plural, countable bool) NounPhrase {
	return NewNounPhrase(RoleSubject, word, onset, definite, plural, countable)
}

// NewObject creates an object noun phrase.
func NewObject(word, onset string, definite, plural, countable bool) NounPhrase {
	return NewNounPhrase(RoleObject, word, onset, definite, plural, countable)
}

func (n NounPhrase) Word() string      { return n.word }
func (n NounPhrase) Onset() string     { return n.onset }
func (n NounPhrase) Role() Role        { return n.role }
func (n NounPhrase) IsDefinite() bool  { return n.definite }
func (n NounPhrase) IsCountable() bool { return n.countable }
func (n NounPhrase) IsPlural() bool    { return n.plural }
func (n NounPhrase) IsSingular() bool  { return !n.plural }

// Article returns "the", "a", "an", or "" when no article applies.
func (n NounPhrase) Article() string {
	if n.definite {
		return "the"
	}
	if n.countable && !n.plural {
		if StartsWithVowelSound(n.onset) {
			return "an"
		}
		return "a"
	}
	return ""
}

// String returns the phrase as it appears in a sentence.
func (n NounPhrase) String() string {
	if article := n.Article(); article != "" {
		return article + " " + n.word
	}
	return n.word
}

// Person derives grammatical person from the word.
// Objects never take part in agreement and always report Third.
func (n NounPhrase) Person() Person {
	if n.role == RoleObject {
		return Third
	}
	return PersonOf(n.word)
}

// IsThirdSingular reports whether the phrase triggers -s / does / has agreement.
func (n NounPhrase) IsThirdSingular() bool {
	return n.Person() == Third && n.IsSingular()
}

// PersonOf maps "i" to First and "you" to Second, case-insensitively.
// Everything else is Third.
func PersonOf(word string) Person {
	// Casers are stateful, so each call gets its own.
	switch cases.Fold().String(word) {
	case "i":
		return First
	case "you":
		return Second
	}
	return Third
}

// StartsWithVowelSound reports whether the onset begins with a vowel symbol.
// Matching is a plain byte prefix; no Unicode normalization is applied.
func StartsWithVowelSound(onset string) bool {
	for _, v := range vowelOnsets {
		if strings.HasPrefix(onset, v) {
			return true
		}
	}
	return false
}
