package engine

// ============================================================================
// AUXILIARY SELECTION — (tense, aspect) → auxiliary rule
// ============================================================================
// Every tense/aspect pair has exactly one entry. A rule receives the config
// and returns the auxiliary chain before negation is applied:
//
//   Future        → "will" + bare do/have/be
//   Simple        → do-support, only for negation or questions
//   Perfect       → have
//   Continuous    → be
//   PerfectCont.  → have + "been"
// ============================================================================

const (
	modalWill = "will"
	tokenNot  = "not"
	tokenBeen = "been"
)

type auxRule func(cfg Config) []string

var auxRules = map[Combination]auxRule{
	{Present, Simple}:            doSupport(agreeThirdSingular("does", "do")),
	{Past, Simple}:               doSupport(fixed("did")),
	{Future, Simple}:             fixed(modalWill),
	{Present, Perfect}:           agreeThirdSingular("has", "have"),
	{Past, Perfect}:              fixed("had"),
	{Future, Perfect}:            fixed(modalWill, "have"),
	{Present, Continuous}:        presentBe,
	{Past, Continuous}:           agreeNumber("was", "were"),
	{Future, Continuous}:         fixed(modalWill, "be"),
	{Present, PerfectContinuous}: then(agreeThirdSingular("has", "have"), tokenBeen),
	{Past, PerfectContinuous}:    fixed("had", tokenBeen),
	{Future, PerfectContinuous}:  fixed(modalWill, "have", tokenBeen),
}

// Auxiliaries returns the ordered auxiliary tokens for cfg, including "not"
// when negated. The slice is freshly allocated.
func Auxiliaries(cfg Config) []string {
	var aux []string
	if rule, ok := auxRules[Combination{Tense: cfg.Tense, Aspect: cfg.Aspect}]; ok {
		aux = rule(cfg)
	}
	if cfg.Negation {
		aux = insertAt(aux, 1, tokenNot)
	}
	return aux
}

// NeedsDoSupport reports whether cfg needs do/does/did to carry negation or
// question marking.
func NeedsDoSupport(cfg Config) bool {
	return cfg.Aspect == Simple && cfg.Tense != Future && (cfg.Negation || cfg.Question)
}

// ── Rule constructors ──────────────────────────────────────────────────────

func fixed(tokens ...string) auxRule {
	return func(Config) []string {
		out := make([]string, len(tokens))
		copy(out, tokens)
		return out
	}
}

func agreeThirdSingular(thirdSingular, other string) auxRule {
	return func(cfg Config) []string {
		if cfg.Subject.IsThirdSingular() {
			return []string{thirdSingular}
		}
		return []string{other}
	}
}

func agreeNumber(singular, plural string) auxRule {
	return func(cfg Config) []string {
		if cfg.Subject.IsSingular() {
			return []string{singular}
		}
		return []string{plural}
	}
}

// presentBe picks am/is/are. A singular non-first subject gets "is".
func presentBe(cfg Config) []string {
	switch {
	case cfg.Subject.IsPlural():
		return []string{"are"}
	case cfg.Subject.Person() == First:
		return []string{"am"}
	default:
		return []string{"is"}
	}
}

func doSupport(rule auxRule) auxRule {
	return func(cfg Config) []string {
		if !NeedsDoSupport(cfg) {
			return nil
		}
		return rule(cfg)
	}
}

func then(rule auxRule, tokens ...string) auxRule {
	return func(cfg Config) []string {
		return append(rule(cfg), tokens...)
	}
}

func insertAt(tokens []string, idx int, tok string) []string {
	if idx > len(tokens) {
		idx = len(tokens)
	}
	out := make([]string, 0, len(tokens)+1)
	out = append(out, tokens[:idx]...)
	out = append(out, tok)
	return append(out, tokens[idx:]...)
}
