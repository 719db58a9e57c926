package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/jukebox/internal/render"
	"github.com/Lumos-Labs-HQ/jukebox/internal/reports"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <name>|all",
	Short: "Run an analytical report",
	Long: `Run one of the read-only reports and print its result table:

  accents        tracks whose name contains an accented vowel
  purchases      latest individual invoice lines (customer, track, price)
  revenue        revenue, line items, and units sold per genre
  long-listens   customers who bought above-average-length tracks (≤15 min set)
  hidden-genres  tracks outside the top genres by total duration

'report all' runs every report in order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])

		names := reports.Names()
		if name != "all" {
			valid := false
			for _, n := range names {
				if name == n {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("unknown report %q (available: %s, all)", name, strings.Join(names, ", "))
			}
			names = []string{name}
		}

		ctx := context.Background()
		adapter, cfg, err := openAdapter(ctx)
		if err != nil {
			return err
		}
		defer adapter.Close()

		reporter := reports.New(adapter, cfg.Report.PurchaseLimit, cfg.Report.TopGenres)

		for _, n := range names {
			result, err := reporter.Result(ctx, n)
			if err != nil {
				return err
			}

			color.Cyan("📊 %s — %d row(s)", n, len(result.Rows))
			render.Table(os.Stdout, result)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
