// Package cmd implements the astgen command line interface.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "astgen",
	Short: "astgen - AST node generator for seatbelt2",
	Long: `astgen turns a seatbelt2 generator description into C++ class
hierarchies: one abstract base class per declared type, one final subclass
per variant, with prelude, type definitions and postlude emitted verbatim.

Commands:
  generate - parse a description and write the generated C++
  check    - parse a description and report the first diagnostic
  fmt      - print a description in canonical form`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "astgen.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
