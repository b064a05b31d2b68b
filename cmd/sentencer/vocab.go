package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spektr-org/sentencer/vocab"
	"github.com/spf13/cobra"
)

func vocabCmd(g *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Inspect, check and extend vocabularies",
	}
	cmd.AddCommand(vocabListCmd(g), vocabValidateCmd(g), vocabImportCmd(g))
	return cmd
}

func vocabListCmd(g *globalOpts) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects, verbs and objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := g.loadVocabulary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeVocabText(out, v)
			case "json", "pretty":
				return writeJSON(out, v, format)
			case "yaml":
				data, err := v.Marshal()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			return fmt.Errorf("unknown format %q (use text, json, pretty or yaml)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, pretty, yaml")
	return cmd
}

func writeVocabText(w io.Writer, v *vocab.Vocabulary) error {
	nouns := func(entries []vocab.NounEntry) string {
		words := make([]string, len(entries))
		for i, e := range entries {
			words[i] = e.Word
		}
		return strings.Join(words, ", ")
	}
	verbs := make([]string, len(v.Verbs))
	for i, e := range v.Verbs {
		verbs[i] = fmt.Sprintf("%s/%s/%s", e.Base, e.Past, e.Participle)
	}

	stats := v.Stats()
	_, err := fmt.Fprintf(w, "subjects (%d): %s\nverbs (%d): %s\nobjects (%d): %s\n",
		stats.Subjects, nouns(v.Subjects),
		stats.Verbs, strings.Join(verbs, ", "),
		stats.Objects, nouns(v.Objects))
	return err
}

func vocabValidateCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a vocabulary for entries that would render wrongly",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.vocabPath
			if len(args) == 1 {
				path = args[0]
			}
			v, err := vocab.Load(path)
			if err != nil {
				return err
			}
			issues := vocab.Validate(v)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}
			if vocab.HasErrors(issues) {
				return errors.New("vocabulary has errors")
			}
			if len(issues) == 0 {
				fmt.Fprintln(out, "OK")
			}
			return nil
		},
	}
}

func vocabImportCmd(g *globalOpts) *cobra.Command {
	var into, outPath string
	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Merge a noun or verb CSV into the vocabulary",
		Long: `Merge a CSV into the vocabulary. The header decides the kind:
  word,onset,definite,plural,countable   nouns (go to --into)
  base,past,participle                   verbs
Existing words are kept; only new ones are added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := vocab.ListTarget(into)
			if target != vocab.TargetSubjects && target != vocab.TargetObjects {
				return fmt.Errorf("--into must be subjects or objects, got %q", into)
			}
			if outPath == "" {
				outPath = g.vocabPath
			}
			if outPath == "" {
				return errors.New("--out is required when --vocab is not set")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			imported, kind, err := vocab.DiscoverFromCSV(data, target)
			if err != nil {
				return err
			}
			v, err := g.loadVocabulary()
			if err != nil {
				return err
			}
			added := v.Merge(imported)
			if err := v.Save(outPath); err != nil {
				return err
			}
			log.Info().Str("kind", string(kind)).Int("added", added).Str("out", outPath).Msg("vocabulary imported")
			fmt.Fprintf(cmd.OutOrStdout(), "added %d entries to %s\n", added, outPath)

			for _, issue := range vocab.Validate(v) {
				fmt.Fprintln(cmd.ErrOrStderr(), issue.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&into, "into", string(vocab.TargetObjects), "Noun list to import into: subjects or objects")
	cmd.Flags().StringVar(&outPath, "out", "", "Output YAML (default: the --vocab file)")
	return cmd
}
