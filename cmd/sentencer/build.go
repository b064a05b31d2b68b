package main

import (
	"fmt"

	"github.com/spektr-org/sentencer/translator"
	"github.com/spf13/cobra"
)

// wordFlags are the word and toggle flags shared by build and table.
type wordFlags struct {
	req    translator.Request
	format string
}

func (w *wordFlags) register(cmd *cobra.Command, withGrammar bool) {
	cmd.Flags().StringVarP(&w.req.Subject, "subject", "s", "", "Subject word (required)")
	cmd.Flags().StringVarP(&w.req.Verb, "verb", "v", "", "Verb, any of its three forms (required)")
	cmd.Flags().StringVarP(&w.req.Object, "object", "o", "", "Object word (optional)")
	cmd.Flags().BoolVarP(&w.req.Negation, "negation", "n", false, "Negative sentence")
	cmd.Flags().BoolVarP(&w.req.Question, "question", "q", false, "Interrogative sentence")
	if withGrammar {
		cmd.Flags().StringVarP(&w.req.Tense, "tense", "t", "present", "Tense: present, past, future")
		cmd.Flags().StringVarP(&w.req.Aspect, "aspect", "a", "simple", "Aspect: simple, perfect, continuous, perfect-continuous")
	}
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("verb")
}

func buildCmd(g *globalOpts) *cobra.Command {
	w := &wordFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one sentence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := g.loadVocabulary()
			if err != nil {
				return err
			}
			resp, err := translator.New(translator.StaticProvider{V: v}).Render(w.req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch w.format {
			case "text":
				_, err = fmt.Fprintln(out, resp.Sentence)
				return err
			case "json", "pretty":
				return writeJSON(out, resp, w.format)
			}
			return fmt.Errorf("unknown format %q (use text, json or pretty)", w.format)
		},
	}
	w.register(cmd, true)
	cmd.Flags().StringVarP(&w.format, "format", "f", "text", "Output format: text, json, pretty")
	return cmd
}

func tableCmd(g *globalOpts) *cobra.Command {
	w := &wordFlags{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the sentence in all 12 tense/aspect combinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := g.loadVocabulary()
			if err != nil {
				return err
			}
			table, err := translator.New(translator.StaticProvider{V: v}).Table(w.req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch w.format {
			case "text":
				return writeTableText(out, table)
			case "csv":
				return writeTableCSV(out, table)
			case "json", "pretty":
				return writeJSON(out, table, w.format)
			}
			return fmt.Errorf("unknown format %q (use text, csv, json or pretty)", w.format)
		},
	}
	w.register(cmd, false)
	cmd.Flags().StringVarP(&w.format, "format", "f", "text", "Output format: text, csv, json, pretty")
	return cmd
}
