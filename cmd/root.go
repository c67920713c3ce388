package cmd

import (
	"context"
	"fmt"
	"os"

	"dngen/pkg/config"
	"dngen/pkg/log"
	"dngen/pkg/system"

	"github.com/spf13/cobra"
)

type loggerKey struct{}

var (
	cfgFile    string
	logLevel   string
	jsonOutput bool
	cmdRunner  system.CommandRunner = &system.LiveCommandRunner{}
	rootCmd                         = &cobra.Command{
		Use:   "dngen",
		Short: "dngen adds C# files to a project with dotnet generate",
		Long: `A small front end for "dotnet generate". It works out which folder you
are in, asks for a file name and a schematic (class, interface, enum or
interface & class) and runs the generator there.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := log.NewSlogLogger(level, cmd.ErrOrStderr())
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, log.Logger(logger)))
			return nil
		},
	}
)

func loggerFrom(cmd *cobra.Command) log.Logger {
	if logger, ok := cmd.Context().Value(loggerKey{}).(log.Logger); ok {
		return logger
	}
	return log.Discard()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
