// Package cmd provides the command line interface for tplforge.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/log"
)

// RootCommand represents the root command for the tplforge CLI.
type RootCommand struct{}

var (
	userMode       bool
	verbose        bool
	configFilePath string
	templatesDir   string
	stateDBPath    string
)

// GetCobraCommand returns the cobra root command for the tplforge CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tplforge",
		Short: "tplforge scaffolds deployment templates from compose documents.",
		Long: `tplforge scaffolds deployment templates from compose documents.
It classifies the declared services, synthesizes a typed input schema and
emits generator source text plus review notes for each template.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if configFilePath != "" {
				config.SetConfigFilePath(configFilePath)
			}
			cfg := config.InitConfig()
			log.Init(verbose)

			if verbose {
				cfg.Verbose = true
			}

			if userMode {
				cfg.UserMode = true
				cfg.TemplatesDir = os.ExpandEnv(config.DefaultUserTemplatesDir)
				cfg.StateDBPath = os.ExpandEnv(config.DefaultUserStateDBPath)
			}

			if templatesDir != "" {
				cfg.TemplatesDir = templatesDir
			}

			if stateDBPath != "" {
				cfg.StateDBPath = stateDBPath
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&userMode, "user", "u", false, "Run in user mode")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", "Directory generated templates are written to")
	rootCmd.PersistentFlags().StringVar(&stateDBPath, "state-db", "", "Path to the conversion history database")

	rootCmd.AddCommand(
		(&ConvertCommand{}).GetCobraCommand(),
		(&ValidateCommand{}).GetCobraCommand(),
		(&ListCommand{}).GetCobraCommand(),
		(&VersionCommand{}).GetCobraCommand(),
		(&UpdateCommand{}).GetCobraCommand(),
	)

	return rootCmd
}
