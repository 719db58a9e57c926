package cmd

import (
	"context"

	"github.com/Lumos-Labs-HQ/jukebox/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection status and music video count",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		adapter, cfg, err := openAdapter(ctx)
		if err != nil {
			return err
		}
		defer adapter.Close()

		color.Green("✅ Connected (%s)", cfg.Database.Provider)

		exists, err := adapter.CheckTableExists(ctx, schema.TableName)
		if err != nil {
			return err
		}
		if !exists {
			color.Yellow("⚠️  %s table not created yet — run 'jukebox init-schema'", schema.TableName)
			return nil
		}

		count, err := schema.NewInitializer(adapter).RowCount(ctx)
		if err != nil {
			return err
		}
		color.Cyan("🎬 %s: %d row(s)", schema.TableName, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
