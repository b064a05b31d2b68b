package server

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/spektr-org/sentencer/vocab"
)

// Store holds the active vocabulary. Readers get a consistent snapshot;
// a reload replaces the whole vocabulary at once.
type Store struct {
	path    string
	current atomic.Pointer[vocab.Vocabulary]
}

// NewStore loads the vocabulary at path (or the embedded default when path
// is empty) and refuses one with error-level issues.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an already loaded vocabulary.
func NewStaticStore(v *vocab.Vocabulary) *Store {
	s := &Store{}
	s.current.Store(v)
	return s
}

// Vocabulary returns the current snapshot.
func (s *Store) Vocabulary() *vocab.Vocabulary {
	return s.current.Load()
}

// Path returns the backing file, empty for the embedded default.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On failure the previous vocabulary
// stays active.
func (s *Store) Reload() error {
	v, err := vocab.Load(s.path)
	if err != nil {
		return err
	}
	issues := vocab.Validate(v)
	for _, issue := range issues {
		if issue.Severity == vocab.SeverityWarning {
			log.Warn().Str("list", issue.List).Str("word", issue.Word).Msg(issue.Message)
		}
	}
	if vocab.HasErrors(issues) {
		return fmt.Errorf("vocabulary %s has %d issue(s), first: %s", s.path, len(issues), firstError(issues))
	}
	s.current.Store(v)
	stats := v.Stats()
	log.Info().
		Str("path", s.path).
		Int("subjects", stats.Subjects).
		Int("verbs", stats.Verbs).
		Int("objects", stats.Objects).
		Msg("vocabulary loaded")
	return nil
}

func firstError(issues []vocab.Issue) vocab.Issue {
	for _, i := range issues {
		if i.Severity == vocab.SeverityError {
			return i
		}
	}
	return vocab.Issue{}
}
