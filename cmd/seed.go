package cmd

import (
	"context"

	"github.com/Lumos-Labs-HQ/jukebox/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert music video rows by track name lookup",
	Long: `Insert one music_videos row per seed entry, resolving each track by exact
name match. Names that match no track are skipped silently; re-seeding an
already seeded track fails with a unique constraint violation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		adapter, cfg, err := openAdapter(ctx)
		if err != nil {
			return err
		}
		defer adapter.Close()

		path := seedFile
		if path == "" {
			path = cfg.SeedFile
		}

		entries, err := seeder.LoadEntries(path)
		if err != nil {
			return err
		}

		color.Cyan("🌱 Seeding %d music videos...", len(entries))
		total, err := seeder.New(adapter).Seed(ctx, entries)
		if err != nil {
			return err
		}

		color.Green("\n✅ Seeded %d row(s)", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML seed list (default is the embedded list)")
}
