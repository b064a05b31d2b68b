package main

import (
	"fmt"
	"os"

	"github.com/spektr-org/sentencer/logging"
	"github.com/spektr-org/sentencer/vocab"
	"github.com/spf13/cobra"
)

// ============================================================================
// SENTENCER CLI — English sentences from words and grammar toggles
// ============================================================================

var version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOpts are flags shared by every subcommand.
type globalOpts struct {
	vocabPath string
	logLevel  string
}

func (g *globalOpts) loadVocabulary() (*vocab.Vocabulary, error) {
	return vocab.Load(g.vocabPath)
}

func newRootCmd() *cobra.Command {
	g := &globalOpts{}

	cmd := &cobra.Command{
		Use:   "sentencer",
		Short: "Sentencer — build English sentences in any tense and aspect",
		Long: `Sentencer builds grammatical English sentences from a subject, a verb,
an optional object, a tense, an aspect and negation/question toggles.

Examples:
  sentencer build --subject he --verb eat --object apple --tense past --aspect perfect
  sentencer build -s they -v write -o letters --negation --question
  sentencer table --subject I --verb eat --format csv > table.csv
  sentencer vocab import nouns.csv --into objects --out vocab.yaml
  sentencer serve --config sentencer.yaml --watch`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := logging.Setup("", g.logLevel)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&g.vocabPath, "vocab", "", "Vocabulary YAML file (default: built-in vocabulary)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		buildCmd(g),
		tableCmd(g),
		vocabCmd(g),
		serveCmd(g),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sentencer %s\n", version)
		},
	}
}
