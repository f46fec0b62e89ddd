package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/dsl"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <description file>",
	Short: "Print a generator description in canonical form",
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
		fmt.Fprint(cmd.OutOrStdout(), dsl.Format(desc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
