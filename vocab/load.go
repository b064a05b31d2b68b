package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var parseDefault = sync.OnceValues(func() (*Vocabulary, error) {
	return Parse(defaultYAML)
})

// Default returns a copy of the embedded vocabulary.
func Default() *Vocabulary {
	v, err := parseDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary is broken: %v", err))
	}
	return v.Clone()
}

// Parse decodes a YAML vocabulary. Empty lists are accepted; Validate
// reports them.
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}
	return &v, nil
}

// Load reads a YAML vocabulary from path. An empty path yields Default().
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Marshal encodes the vocabulary as YAML.
func (v *Vocabulary) Marshal() ([]byte, error) {
	return yaml.Marshal(v)
}

// Save writes the vocabulary as YAML to path.
func (v *Vocabulary) Save(path string) error {
	data, err := v.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write vocabulary %s: %w", path, err)
	}
	return nil
}
