package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/log"
	"github.com/tplforge/tplforge/internal/state"
)

// ListCommand represents the list command.
type ListCommand struct{}

// GetCobraCommand returns the cobra command for listing recorded conversions.
func (c *ListCommand) GetCobraCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:           "list",
		Short:         "List templates generated on this machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := log.GetLogger()
			cfg := config.GetConfig()

			if err := state.Up(cfg, logger); err != nil {
				return fmt.Errorf("failed to open conversion history: %w", err)
			}
			db, err := state.Connect(cfg)
			if err != nil {
				return fmt.Errorf("failed to open conversion history: %w", err)
			}
			defer db.Close()

			conversions, err := state.NewStore(db).List()
			if err != nil {
				return err
			}

			headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()

			tbl := table.New("Slug", "Source", "Hash", "Created")
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
			for _, conv := range conversions {
				tbl.AddRow(conv.Slug, conv.Source, shortHash(conv.ContentHash), conv.CreatedAt.Format("2006-01-02 15:04"))
			}
			tbl.Print()
			return nil
		},
	}

	return listCmd
}

func shortHash(hash []byte) string {
	s := hex.EncodeToString(hash)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
