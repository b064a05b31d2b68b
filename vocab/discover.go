package vocab

import (
	"errors"

	"github.com/spektr-org/sentencer/helpers"
)

// ListTarget selects where imported nouns go.
type ListTarget string

const (
	TargetSubjects ListTarget = "subjects"
	TargetObjects  ListTarget = "objects"
)

// DiscoverFromCSV classifies a CSV by its header and returns a partial
// vocabulary. Noun lists land in target; verb lists ignore it.
func DiscoverFromCSV(data []byte, target ListTarget) (*Vocabulary, helpers.Kind, error) {
	kind, err := helpers.DetectKind(data)
	if err != nil {
		return nil, helpers.KindUnknown, err
	}

	v := &Vocabulary{}
	switch kind {
	case helpers.KindNouns:
		rows, err := helpers.ParseNounsCSV(data)
		if err != nil {
			return nil, kind, err
		}
		entries := make([]NounEntry, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, NounEntry{
				Word:      r.Word,
				Onset:     r.Onset,
				Definite:  r.Definite,
				Plural:    r.Plural,
				Countable: r.Countable,
			})
		}
		if target == TargetObjects {
			v.Objects = entries
		} else {
			v.Subjects = entries
		}

	case helpers.KindVerbs:
		rows, err := helpers.ParseVerbsCSV(data)
		if err != nil {
			return nil, kind, err
		}
		for _, r := range rows {
			v.Verbs = append(v.Verbs, VerbEntry{Base: r.Base, Past: r.Past, Participle: r.Participle})
		}

	default:
		return nil, kind, errors.New("unrecognized CSV header: expected a noun list (word column, optionally onset,definite,plural,countable) or a verb list (base,past,participle)")
	}
	return v, kind, nil
}
