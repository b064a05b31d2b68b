package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spektr-org/sentencer/engine"
)

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	} else {
		out, err = sonic.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// ============================================================================
// TABLE OUTPUT — CSV for spreadsheets, aligned text for terminals
// ============================================================================

func tableHeaders(table *engine.TableData) []string {
	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	return headers
}

func writeTableCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeaders(table)); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func writeTableText(w io.Writer, table *engine.TableData) error {
	if table.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", table.Title); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(tableHeaders(table), "\t")); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
