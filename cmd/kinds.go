package cmd

import (
	"encoding/json"
	"fmt"

	"dngen/pkg/model"

	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Lists the schematics the generator accepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schematics := model.Schematics()
		if jsonOutput {
			jsonBytes, err := json.MarshalIndent(schematics, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schematics to JSON: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		}
		for _, s := range schematics {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s.Label, s.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
	kindsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the schematics in JSON format")
}
