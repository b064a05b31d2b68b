package engine

// ============================================================================
// CONFIG OPTIONS — Functional options for NewConfig()
// ============================================================================

// Option configures a sentence Config.
type Option func(*Config)

// WithObject sets the direct object.
func WithObject(object NounPhrase) Option {
	return func(c *Config) {
		c.Object = &object
	}
}

// WithTense sets the tense (default Present).
func WithTense(t Tense) Option {
	return func(c *Config) {
		c.Tense = t
	}
}

// WithAspect sets the aspect (default Simple).
func WithAspect(a Aspect) Option {
	return func(c *Config) {
		c.Aspect = a
	}
}

// WithNegation toggles negation.
func WithNegation(negation bool) Option {
	return func(c *Config) {
		c.Negation = negation
	}
}

// WithQuestion toggles interrogative mood.
func WithQuestion(question bool) Option {
	return func(c *Config) {
		c.Question = question
	}
}

// NewConfig creates a present simple declarative config and applies opts.
func NewConfig(subject NounPhrase, verb Verb, opts ...Option) Config {
	cfg := Config{
		Subject: subject,
		Verb:    verb,
		Tense:   Present,
		Aspect:  Simple,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
