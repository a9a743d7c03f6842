package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tplforge/tplforge/internal/compose"
	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/lint"
	"github.com/tplforge/tplforge/internal/log"
)

// ValidateCommand represents the validate command.
type ValidateCommand struct{}

// GetCobraCommand returns the cobra command for validating a compose
// document without converting it.
func (c *ValidateCommand) GetCobraCommand() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate <source>",
		Short: "Validate a compose document without converting it",
		Long: `Validate a compose document without converting it.

Parses the document, classifies nothing and writes nothing; reports parse
errors and the same conformance findings a conversion would put in its
review notes. Useful in CI before publishing a template source.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.GetLogger()
			cfg := config.GetConfig()

			loader := compose.NewLoader(cfg.FetchTimeout, logger)
			doc, err := loader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			warnings := lint.Document(cmd.Context(), doc, logger)
			if len(warnings) == 0 {
				color.Green("%s: %d services, no findings", args[0], len(doc.Services))
				return nil
			}

			color.Yellow("%s: %d services, %d findings", args[0], len(doc.Services), len(warnings))
			for _, w := range warnings {
				fmt.Printf("  - %s\n", w)
			}
			return nil
		},
	}

	return validateCmd
}
