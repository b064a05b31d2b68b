package helpers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// CSV HELPER — Parses vocabulary CSV exports into typed rows
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, upload, Sheets).
// Two shapes are understood:
//
//   nouns: word,onset,definite,plural,countable
//   verbs: base,past,participle
//
// Headers are matched after snake-casing, in any order. Extra columns are
// ignored.
// ============================================================================

// Kind identifies which vocabulary list a CSV holds.
type Kind string

const (
	KindUnknown Kind = ""
	KindNouns   Kind = "nouns"
	KindVerbs   Kind = "verbs"
)

var (
	nounColumns = []string{"word"}
	verbColumns = []string{"base", "past", "participle"}
)

// NounRow is a single parsed noun line.
type NounRow struct {
	Line      int
	Word      string
	Onset     string
	Definite  bool
	Plural    bool
	Countable bool
}

// VerbRow is a single parsed verb line.
type VerbRow struct {
	Line       int
	Base       string
	Past       string
	Participle string
}

// DetectKind inspects the header row and reports the list kind. A full
// base/past/participle header is a verb list; otherwise a word column alone
// makes it a noun list.
func DetectKind(data []byte) (Kind, error) {
	headers, err := readHeader(data)
	if err != nil {
		return KindUnknown, err
	}
	index := headerIndex(headers)
	switch {
	case hasAll(index, verbColumns):
		return KindVerbs, nil
	case hasAll(index, nounColumns):
		return KindNouns, nil
	}
	return KindUnknown, nil
}

// ParseNounsCSV parses a noun list. The word column is required; the others
// default to empty/false when absent.
func ParseNounsCSV(data []byte) ([]NounRow, error) {
	reader := newReader(data)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["word"]; !ok {
		return nil, errors.New("noun CSV needs a 'word' column")
	}

	var rows []NounRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		row := NounRow{
			Line:  line,
			Word:  field(record, index, "word"),
			Onset: field(record, index, "onset"),
		}
		if row.Word == "" {
			continue // blank lines in spreadsheet exports
		}
		if row.Definite, err = parseFlag(field(record, index, "definite")); err != nil {
			return nil, fmt.Errorf("line %d, column definite: %w", line, err)
		}
		if row.Plural, err = parseFlag(field(record, index, "plural")); err != nil {
			return nil, fmt.Errorf("line %d, column plural: %w", line, err)
		}
		if row.Countable, err = parseFlag(field(record, index, "countable")); err != nil {
			return nil, fmt.Errorf("line %d, column countable: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseVerbsCSV parses a verb list. All three principal parts are required.
func ParseVerbsCSV(data []byte) ([]VerbRow, error) {
	reader := newReader(data)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	index := headerIndex(headers)
	if !hasAll(index, verbColumns) {
		return nil, fmt.Errorf("verb CSV needs columns %s", strings.Join(verbColumns, ", "))
	}

	var rows []VerbRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		row := VerbRow{
			Line:       line,
			Base:       field(record, index, "base"),
			Past:       field(record, index, "past"),
			Participle: field(record, index, "participle"),
		}
		if row.Base == "" && row.Past == "" && row.Participle == "" {
			continue
		}
		if row.Base == "" || row.Past == "" || row.Participle == "" {
			return nil, fmt.Errorf("line %d: verb needs base, past and participle", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ── internals ───────────────────────────────────────────────────────────────

func newReader(data []byte) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

func readHeader(data []byte) ([]string, error) {
	headers, err := newReader(data).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	return headers, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := toSnakeCase(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	return index
}

func hasAll(index map[string]int, columns []string) bool {
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return false
		}
	}
	return true
}

func field(record []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseFlag accepts true/false, yes/no, y/n, 1/0, a spreadsheet "x" tick, and empty (false).
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1", "x":
		return true, nil
	case "false", "no", "n", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
