package cmd

import (
	"fmt"

	"dngen/pkg/config"
	"dngen/pkg/generate"
	"dngen/pkg/host"
	"dngen/pkg/model"

	"github.com/spf13/cobra"
)

var (
	addName        string
	addKind        string
	addActiveFile  string
	addWorkspaces  []string
	addDryRun      bool
	addShowChanges bool

	// newHost builds the interactive host. Tests replace it.
	newHost = func(cmd *cobra.Command, active string, roots []string) host.Host {
		return host.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr(), cmd.OutOrStdout(), active, roots)
	}
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [dir]",
	Short: "Generates a new file in a folder",
	Long: `The add command picks a target folder (the given directory, else the folder
of --active-file, else the first workspace root), asks for a file name and a
schematic, and runs "<tool> generate <kind> <name>" in that folder.

The tool's output is shown as a notification. A cancelled prompt or a missing
folder ends the command quietly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFrom(cmd)
		cfg, err := config.LoadConfig(cfgFile, logger)
		if err != nil {
			return err
		}
		if addShowChanges {
			cfg.ShowChanges = true
		}

		preset := &host.Preset{Name: addName}
		if addKind != "" {
			kind, err := model.LookupSchematic(addKind)
			if err != nil {
				return err
			}
			preset.Kind = &kind
		}
		roots := append(append([]string{}, addWorkspaces...), cfg.Workspaces...)
		preset.Fallback = newHost(cmd, addActiveFile, roots)

		target := ""
		if len(args) == 1 {
			target = args[0]
		}

		g := &generate.Generator{
			Host:   preset,
			Runner: cmdRunner,
			Config: cfg,
			Logger: logger,
			Report: func(report string) {
				fmt.Fprintln(cmd.OutOrStdout(), report)
			},
		}

		if addDryRun {
			dir, command, ok, err := g.Plan(cmd.Context(), target)
			if err != nil || !ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dry run enabled. The following command would run in %s:\n", dir)
			fmt.Fprintf(cmd.OutOrStdout(), "=> %s\n", command)
			return nil
		}

		outcome, err := g.Run(cmd.Context(), target)
		logger.Debug("Add finished", "outcome", outcome)
		return err
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "File name to generate (skips the prompt)")
	addCmd.Flags().StringVarP(&addKind, "kind", "k", "", "Schematic: class, interface, enum or interfaceclass (skips the prompt)")
	addCmd.Flags().StringVar(&addActiveFile, "active-file", "", "Path of the file open in the editor")
	addCmd.Flags().StringArrayVarP(&addWorkspaces, "workspace", "w", nil, "Workspace root (repeatable)")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Show the command without running it")
	addCmd.Flags().BoolVar(&addShowChanges, "show-changes", false, "Print the files the generator created or changed")
}
