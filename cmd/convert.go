package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/tplforge/tplforge/internal/classify"
	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/log"
	"github.com/tplforge/tplforge/internal/state"
	"github.com/tplforge/tplforge/internal/template"
)

// ConvertCommand represents the convert command.
type ConvertCommand struct{}

// GetCobraCommand returns the cobra command for converting a compose
// document into a template.
func (c *ConvertCommand) GetCobraCommand() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <source> <slug>",
		Short: "Convert a compose document into a deployment template scaffold",
		Long: `Convert a compose document into a deployment template scaffold.

The source may be a local file path, an HTTP(S) URL, or a git repository
(anything ending in .git). The slug names the destination directory under
the templates directory and must match ^[a-z0-9-]+$.

The generated template is a best-effort starting point: read the NOTES.md
it ships with before publishing.

Examples:
  tplforge convert docker-compose.yml my-app
  tplforge convert https://example.com/stack/compose.yaml my-app
  tplforge convert https://github.com/user/stack.git my-app`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, slug := args[0], args[1]
			logger := log.GetLogger()
			cfg := config.GetConfig()

			converter := template.NewConverter(config.NewStaticProvider(cfg), logger, openHistory(cfg, logger))

			result, err := converter.Convert(cmd.Context(), source, slug)
			if err != nil {
				return err
			}

			printSummary(result)
			fmt.Printf("\nTemplate written to %s\n", result.Dir)
			return nil
		},
	}

	return convertCmd
}

// openHistory opens the conversion history store. History is supplemental:
// any failure degrades to a warning and a nil store.
func openHistory(cfg *config.Settings, logger log.Logger) *state.Store {
	if err := state.Up(cfg, logger); err != nil {
		logger.Warn("Conversion history unavailable", "error", err)
		return nil
	}
	db, err := state.Connect(cfg)
	if err != nil {
		logger.Warn("Conversion history unavailable", "error", err)
		return nil
	}
	return state.NewStore(db)
}

func printSummary(result *template.Result) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Service", "Class", "Image")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, svc := range result.Document.Services {
		tbl.AddRow(svc.Name, classify.Classify(svc.Name, svc.Spec).String(), svc.Spec.Image)
	}
	tbl.Print()
}
