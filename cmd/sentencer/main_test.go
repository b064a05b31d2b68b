package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spektr-org/sentencer/translator"
	"github.com/spektr-org/sentencer/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildText(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-s", "he", "-v", "eat"}, "He eats."},
		{[]string{"-s", "I", "-v", "eat", "-o", "apple", "--tense", "past", "--aspect", "perfect"}, "I had eaten an apple."},
		{[]string{"-s", "they", "-v", "write", "-o", "letters", "-n", "-q"}, "Do they not write letters?"},
		{[]string{"-s", "cat", "-v", "drink", "-o", "water", "-t", "future", "-a", "continuous"}, "The cat will be drinking water."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out, err := run(t, append([]string{"build"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestBuildJSON(t *testing.T) {
	out, err := run(t, "build", "-s", "she", "-v", "read", "-o", "book", "-a", "perfect-continuous", "-f", "json")
	require.NoError(t, err)
	var resp translator.Response
	require.NoError(t, sonic.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "She has been reading the book.", resp.Sentence)
}

func TestBuildErrors(t *testing.T) {
	_, err := run(t, "build", "-s", "he")
	assert.Error(t, err, "verb is required")

	_, err = run(t, "build", "-s", "dragon", "-v", "eat")
	assert.ErrorIs(t, err, vocab.ErrUnknownSubject)

	_, err = run(t, "build", "-s", "he", "-v", "eat", "-f", "xml")
	assert.Error(t, err)
}

func TestTableCSV(t *testing.T) {
	out, err := run(t, "table", "-s", "he", "-v", "eat", "-f", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Len(t, records[0], 5)
	assert.Equal(t, "He eats.", records[1][1])
	assert.Equal(t, "He will have been eating.", records[3][4])
}

func TestTableText(t *testing.T) {
	out, err := run(t, "table", "-s", "we", "-v", "eat", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "Do we eat?")
	assert.Contains(t, out, "Were we eating?")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sentencer "+version+"\n", out)
}

func TestVocabListAndValidate(t *testing.T) {
	out, err := run(t, "vocab", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "write/wrote/written")

	out, err = run(t, "vocab", "validate")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("subjects:\n  - {word: he, definite: true}\nverbs:\n  - {base: eat, past: ate, participle: eaten}\n"), 0o644))
	out, err = run(t, "vocab", "validate", bad)
	assert.Error(t, err)
	assert.Contains(t, out, `subjects "he"`)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("objects: []\n"), 0o644))
	out, err = run(t, "vocab", "validate", empty)
	assert.Error(t, err)
	assert.Contains(t, out, "no subjects")
	assert.Contains(t, out, "no verbs")
}

func TestVocabImport(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "nouns.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("word,onset,definite,plural,countable\norange,ɒ,no,no,yes\napple,æ,no,no,yes\n"), 0o644))
	outPath := filepath.Join(dir, "vocab.yaml")

	out, err := run(t, "vocab", "import", csvPath, "--into", "objects", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "added 1 entries")

	out, err = run(t, "--vocab", outPath, "build", "-s", "he", "-v", "eat", "-o", "orange")
	require.NoError(t, err)
	assert.Equal(t, "He eats an orange.\n", out)

	_, err = run(t, "vocab", "import", csvPath, "--into", "verbs", "--out", outPath)
	assert.Error(t, err)
}
