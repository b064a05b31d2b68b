// Package sentencer builds grammatical English sentences.
// Any subject, verb and object in any of the 12 tense/aspect combinations.
//
// Usage:
//
//	import "github.com/spektr-org/sentencer/engine"
//
//	he := engine.NewSubject("he", "h", false, false, false)
//	eat := engine.NewVerb("eat", "ate", "eaten")
//	apple := engine.NewObject("apple", "æ", false, false, true)
//
//	s := engine.Build(engine.NewConfig(he, eat,
//	    engine.WithObject(apple),
//	    engine.WithTense(engine.Past),
//	    engine.WithAspect(engine.Perfect),
//	))
//	// "He had eaten an apple."
//
// The engine is pure and has no I/O. Word lists live in the vocab package;
// the translator package resolves words and enum names from a UI or CLI
// into engine configs; the server package exposes it all over HTTP.
package sentencer
