package engine

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fixtures ─────────────────────────────────────────────────────────────────

var (
	he    = NewSubject("he", "h", false, false, false)
	me    = NewSubject("I", "aɪ", false, false, false)
	you   = NewSubject("you", "j", false, true, false)
	they  = NewSubject("they", "ð", false, true, false)
	cat   = NewSubject("cat", "k", false, false, true)
	owl   = NewSubject("owl", "aʊ", false, false, true)
	eat   = NewVerb("eat", "ate", "eaten")
	apple = NewObject("apple", "æ", false, false, true)
	water = NewObject("water", "w", false, false, false)
)

// ============================================================================
// SCENARIOS
// ============================================================================

func TestBuildScenarios(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"present simple", NewConfig(he, eat), "He eats."},
		{"past simple", NewConfig(he, eat, WithTense(Past)), "He ate."},
		{"future simple", NewConfig(he, eat, WithTense(Future)), "He will eat."},
		{"present perfect negated", NewConfig(he, eat, WithAspect(Perfect), WithNegation(true)), "He has not eaten."},
		{"present simple question", NewConfig(he, eat, WithQuestion(true)), "Does he eat?"},
		{"present perfect continuous", NewConfig(he, eat, WithAspect(PerfectContinuous)), "He has been eating."},

		{"past simple negated", NewConfig(he, eat, WithTense(Past), WithNegation(true)), "He did not eat."},
		{"past simple question", NewConfig(he, eat, WithTense(Past), WithQuestion(true)), "Did he eat?"},
		{"future simple negated", NewConfig(he, eat, WithTense(Future), WithNegation(true)), "He will not eat."},
		{"future simple question", NewConfig(he, eat, WithTense(Future), WithQuestion(true)), "Will he eat?"},
		{"past perfect", NewConfig(he, eat, WithTense(Past), WithAspect(Perfect)), "He had eaten."},
		{"future perfect", NewConfig(he, eat, WithTense(Future), WithAspect(Perfect)), "He will have eaten."},
		{"present continuous", NewConfig(he, eat, WithAspect(Continuous)), "He is eating."},
		{"past continuous", NewConfig(he, eat, WithTense(Past), WithAspect(Continuous)), "He was eating."},
		{"future continuous", NewConfig(he, eat, WithTense(Future), WithAspect(Continuous)), "He will be eating."},
		{"past perfect continuous", NewConfig(he, eat, WithTense(Past), WithAspect(PerfectContinuous)), "He had been eating."},
		{"future perfect continuous", NewConfig(he, eat, WithTense(Future), WithAspect(PerfectContinuous)), "He will have been eating."},
		{
			"future perfect continuous negated question",
			NewConfig(he, eat, WithTense(Future), WithAspect(PerfectContinuous), WithNegation(true), WithQuestion(true)),
			"Will he not have been eating?",
		},
		{"present simple negated question", NewConfig(he, eat, WithNegation(true), WithQuestion(true)), "Does he not eat?"},

		{"first person simple", NewConfig(me, eat), "I eat."},
		{"first person question", NewConfig(me, eat, WithQuestion(true)), "Do I eat?"},
		{"first person continuous", NewConfig(me, eat, WithAspect(Continuous)), "I am eating."},
		{"first person past continuous", NewConfig(me, eat, WithTense(Past), WithAspect(Continuous)), "I was eating."},
		{"first person perfect", NewConfig(me, eat, WithAspect(Perfect)), "I have eaten."},
		{"second person simple", NewConfig(you, eat), "You eat."},
		{"second person continuous", NewConfig(you, eat, WithAspect(Continuous)), "You are eating."},
		{"plural simple", NewConfig(they, eat), "They eat."},
		{"plural negated", NewConfig(they, eat, WithNegation(true)), "They do not eat."},
		{"plural past continuous", NewConfig(they, eat, WithTense(Past), WithAspect(Continuous)), "They were eating."},
		{"plural perfect continuous", NewConfig(they, eat, WithAspect(PerfectContinuous)), "They have been eating."},

		{"object with an", NewConfig(he, eat, WithObject(apple)), "He eats an apple."},
		{"uncountable object", NewConfig(they, eat, WithObject(water), WithTense(Past)), "They ate water."},
		{"indefinite subject", NewConfig(cat, eat, WithObject(apple)), "A cat eats an apple."},
		{"indefinite subject question", NewConfig(cat, eat, WithQuestion(true)), "Does a cat eat?"},
		{"vowel subject", NewConfig(owl, eat, WithAspect(Continuous)), "An owl is eating."},
		{
			"continuous question with object",
			NewConfig(owl, eat, WithAspect(Continuous), WithQuestion(true), WithObject(apple)),
			"Is an owl eating an apple?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.cfg))
		})
	}
}

// ============================================================================
// PROPERTIES — checked over every variant
// ============================================================================

func TestBuildShapeAllVariants(t *testing.T) {
	for _, subject := range []NounPhrase{he, me, you, they, cat, owl} {
		for _, object := range []*NounPhrase{nil, &apple, &water} {
			for _, cfg := range AllVariants(subject, eat, object) {
				got := Build(cfg)
				require.NotEmpty(t, got)

				first, _ := utf8.DecodeRuneInString(got)
				assert.True(t, unicode.IsUpper(first), "%q should start uppercase", got)

				if cfg.Question {
					assert.True(t, strings.HasSuffix(got, "?"), got)
				} else {
					assert.True(t, strings.HasSuffix(got, "."), got)
				}
				assert.NotContains(t, got, "  ")
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, cfg := range AllVariants(cat, eat, &apple) {
		first := Build(cfg)
		assert.Equal(t, first, Build(cfg))

		// An independently constructed equal value gives the same output.
		obj := NewObject("apple", "æ", false, false, true)
		twin := Config{
			Subject:  NewSubject("cat", "k", false, false, true),
			Verb:     NewVerb("eat", "ate", "eaten"),
			Object:   &obj,
			Tense:    cfg.Tense,
			Aspect:   cfg.Aspect,
			Negation: cfg.Negation,
			Question: cfg.Question,
		}
		assert.Equal(t, first, Build(twin))
	}
}

func TestThirdSingularAgreement(t *testing.T) {
	tokens := Tokens(NewConfig(he, eat))
	assert.Equal(t, []string{"he", "eats"}, tokens)
	assert.Empty(t, Auxiliaries(NewConfig(he, eat)))

	// The suffix is applied once, not on top of do-support.
	for _, cfg := range []Config{
		NewConfig(he, eat, WithNegation(true)),
		NewConfig(he, eat, WithQuestion(true)),
	} {
		assert.Equal(t, "eat", MainVerb(cfg))
	}
}

func TestNegationPlacement(t *testing.T) {
	for _, subject := range []NounPhrase{he, me, they} {
		for _, cfg := range AllVariants(subject, eat, nil) {
			if !cfg.Negation {
				continue
			}
			aux := Auxiliaries(cfg)
			require.GreaterOrEqual(t, len(aux), 2, "negation always has an auxiliary: %+v", cfg)
			assert.Equal(t, tokenNot, aux[1])

			count := 0
			for _, tok := range Tokens(cfg) {
				if tok == tokenNot {
					count++
				}
			}
			assert.Equal(t, 1, count, Build(cfg))

			if cfg.Tense == Future {
				assert.Equal(t, modalWill, aux[0])
			}
		}
	}
}

func TestQuestionInversion(t *testing.T) {
	for _, cfg := range AllVariants(he, eat, &apple) {
		if !cfg.Question {
			continue
		}
		question := Tokens(cfg)

		// Declarative counterpart carrying the same auxiliary chain.
		declarative := make([]string, 0, len(question))
		declarative = append(declarative, cfg.Subject.String())
		declarative = append(declarative, Auxiliaries(cfg)...)
		declarative = append(declarative, MainVerb(cfg), cfg.Object.String())

		require.Len(t, question, len(declarative))
		assert.Equal(t, declarative[0], question[1])
		assert.Equal(t, declarative[1], question[0])
		assert.Equal(t, declarative[2:], question[2:])
		assert.NotEqual(t, MainVerb(cfg), question[0], "inversion never fronts the main verb")
	}
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Does he eat?", CapitalizeFirst("does he eat?"))
	assert.Equal(t, "I eat.", CapitalizeFirst("I eat."))
	assert.Equal(t, "Élan.", CapitalizeFirst("élan."))
	assert.Equal(t, "", CapitalizeFirst(""))
}

func TestEmptyWordsDegradeSilently(t *testing.T) {
	blank := NewSubject("", "", false, false, false)
	assert.Equal(t, "Eats.", Build(NewConfig(blank, eat)))
	// Inversion runs after empty tokens are dropped.
	assert.Equal(t, "Eat does?", Build(NewConfig(blank, eat, WithQuestion(true))))
}
