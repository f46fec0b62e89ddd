package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/dsl"
)

var checkCmd = &cobra.Command{
	Use:   "check <description file>",
	Short: "Parse a generator description and report the first diagnostic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		desc, err := dsl.ParseSource(string(source))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		variants := 0
		for _, abstract := range desc.AbstractTypes {
			variants += len(abstract.Variants)
		}
		log.Info().
			Str("source", args[0]).
			Int("type_definitions", len(desc.TypeDefinitions)).
			Int("abstract_types", len(desc.AbstractTypes)).
			Int("variants", variants).
			Msg("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
