package engine

// Verb holds the three principal parts of an English verb.
type Verb struct {
	v1 string
	v2 string
	v3 string
}

// NewVerb creates a verb from its base, past and past participle forms.
func NewVerb(base, past, participle string) Verb {
	return Verb{v1: base, v2: past, v3: participle}
}

func (v Verb) V1() string { return v.v1 }
func (v Verb) V2() string { return v.v2 }
func (v Verb) V3() string { return v.v3 }

// Ing returns the present participle. The suffix is appended without
// spelling adjustment ("make" -> "makeing").
func (v Verb) Ing() string { return v.v1 + "ing" }

// ThirdSingular returns the present third-person-singular form.
func (v Verb) ThirdSingular() string { return v.v1 + "s" }
