package cmd

import (
	"context"

	"github.com/Lumos-Labs-HQ/jukebox/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initSchemaCmd = &cobra.Command{
	Use:   "init-schema",
	Short: "Drop and recreate the music_videos table",
	Long: `Recreate the music_videos table from scratch. Any existing table (and its
rows) is dropped first, so the command is safe to re-run. Fails if the tracks
table it references does not exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		adapter, _, err := openAdapter(ctx)
		if err != nil {
			return err
		}
		defer adapter.Close()

		if err := schema.NewInitializer(adapter).Init(ctx); err != nil {
			return err
		}

		color.Green("✅ %s created", schema.TableName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSchemaCmd)
}
