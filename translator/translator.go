package translator

import (
	"errors"

	"github.com/spektr-org/sentencer/engine"
	"github.com/spektr-org/sentencer/vocab"
)

// Translator resolves requests against a vocabulary provider.
type Translator struct {
	provider Provider
}

// New creates a Translator backed by provider.
func New(provider Provider) *Translator {
	return &Translator{provider: provider}
}

// Translate turns a request into an engine config.
func (t *Translator) Translate(req Request) (engine.Config, error) {
	req, err := normalize(req)
	if err != nil {
		return engine.Config{}, err
	}
	v := t.provider.Vocabulary()

	subject, err := v.FindSubject(req.Subject)
	if err != nil {
		return engine.Config{}, err
	}
	verb, err := v.FindVerb(req.Verb)
	if err != nil {
		return engine.Config{}, err
	}

	opts := []engine.Option{
		engine.WithNegation(req.Negation),
		engine.WithQuestion(req.Question),
	}
	if req.Object != "" {
		object, err := v.FindObject(req.Object)
		if err != nil {
			return engine.Config{}, err
		}
		opts = append(opts, engine.WithObject(object))
	}
	if req.Tense != "" {
		tense, err := engine.ParseTense(req.Tense)
		if err != nil {
			return engine.Config{}, err
		}
		opts = append(opts, engine.WithTense(tense))
	}
	if req.Aspect != "" {
		aspect, err := engine.ParseAspect(req.Aspect)
		if err != nil {
			return engine.Config{}, err
		}
		opts = append(opts, engine.WithAspect(aspect))
	}

	return engine.NewConfig(subject, verb, opts...), nil
}

// Render translates the request and builds the sentence.
func (t *Translator) Render(req Request) (*Response, error) {
	cfg, err := t.Translate(req)
	if err != nil {
		return nil, err
	}
	return &Response{
		Sentence: engine.Build(cfg),
		Tokens:   engine.Tokens(cfg),
		Tense:    cfg.Tense,
		Aspect:   cfg.Aspect,
		Negation: cfg.Negation,
		Question: cfg.Question,
	}, nil
}

// Table builds the conjugation table for the request's words and flags.
// Tense and aspect in the request are ignored.
func (t *Translator) Table(req Request) (*engine.TableData, error) {
	cfg, err := t.Translate(Request{
		Subject:  req.Subject,
		Verb:     req.Verb,
		Object:   req.Object,
		Negation: req.Negation,
		Question: req.Question,
	})
	if err != nil {
		return nil, err
	}
	return engine.BuildTable(cfg.Subject, cfg.Verb, cfg.Object, cfg.Negation, cfg.Question), nil
}

// IsClientError reports whether err stems from bad request input rather than
// a server fault.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrMissingField,
		vocab.ErrUnknownSubject,
		vocab.ErrUnknownVerb,
		vocab.ErrUnknownObject,
		engine.ErrUnknownTense,
		engine.ErrUnknownAspect,
		ErrMalformedRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
