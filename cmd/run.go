package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/jukebox/internal/render"
	"github.com/Lumos-Labs-HQ/jukebox/internal/reports"
	"github.com/Lumos-Labs-HQ/jukebox/internal/runner"
	"github.com/Lumos-Labs-HQ/jukebox/internal/schema"
	"github.com/Lumos-Labs-HQ/jukebox/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full sequence: schema, seed, all reports",
	Long: `Execute the complete statement sequence in order: recreate music_videos,
seed it from the track name list, then run every report. The first failing
step aborts the rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		adapter, cfg, err := openAdapter(ctx)
		if err != nil {
			return err
		}
		defer adapter.Close()

		reporter := reports.New(adapter, cfg.Report.PurchaseLimit, cfg.Report.TopGenres)

		steps := []runner.Step{
			{Name: "init schema", Run: schema.NewInitializer(adapter).Init},
			{Name: "seed music videos", Run: func(ctx context.Context) error {
				entries, err := seeder.LoadEntries(cfg.SeedFile)
				if err != nil {
					return err
				}
				_, err = seeder.New(adapter).Seed(ctx, entries)
				return err
			}},
		}

		for _, name := range reports.Names() {
			reportName := name
			steps = append(steps, runner.Step{
				Name: "report " + reportName,
				Run: func(ctx context.Context) error {
					result, err := reporter.Result(ctx, reportName)
					if err != nil {
						return err
					}
					render.Table(os.Stdout, result)
					fmt.Println()
					return nil
				},
			})
		}

		if err := runner.New(steps...).Run(ctx); err != nil {
			return err
		}

		color.Green("🎉 Sequence completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
