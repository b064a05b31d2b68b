package translator

import (
	"github.com/spektr-org/sentencer/engine"
	"github.com/spektr-org/sentencer/vocab"
)

// ============================================================================
// TRANSLATOR — Presentation-layer request → engine.Config
// ============================================================================
// The Translator is the boundary between word choices made in a UI (or CLI
// flags) and the typed engine inputs. It resolves words against a vocabulary
// and enum names against the engine's enumerations. It never alters how a
// sentence is built.
// ============================================================================

// Provider supplies the vocabulary to resolve words against. Implementations
// may swap the vocabulary at any time; each call sees a consistent snapshot.
type Provider interface {
	Vocabulary() *vocab.Vocabulary
}

// Request is what a form or CLI submits: words plus grammar toggles.
// Tense and Aspect default to "present" and "simple" when empty.
type Request struct {
	Subject  string `json:"subject"`
	Verb     string `json:"verb"`
	Object   string `json:"object,omitempty"`
	Tense    string `json:"tense,omitempty"`
	Aspect   string `json:"aspect,omitempty"`
	Negation bool   `json:"negation"`
	Question bool   `json:"question"`
}

// Response is the rendered sentence plus the resolved settings.
type Response struct {
	Sentence string        `json:"sentence"`
	Tokens   []string      `json:"tokens"`
	Tense    engine.Tense  `json:"tense"`
	Aspect   engine.Aspect `json:"aspect"`
	Negation bool          `json:"negation"`
	Question bool          `json:"question"`
}

// StaticProvider serves a fixed vocabulary.
type StaticProvider struct {
	V *vocab.Vocabulary
}

func (p StaticProvider) Vocabulary() *vocab.Vocabulary { return p.V }
