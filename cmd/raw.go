package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
	"github.com/Lumos-Labs-HQ/jukebox/internal/dberr"
	"github.com/Lumos-Labs-HQ/jukebox/internal/render"
	"github.com/spf13/cobra"
)

var (
	rawQueryFlag bool
	rawFileFlag  bool
)

var rawCmd = &cobra.Command{
	Use:   "raw <sql|file>",
	Short: "Execute raw SQL against the database",
	Long: `Execute a SQL query or a .sql file. SELECT-style statements print their
result table; anything else is split on semicolons and executed in order,
stopping at the first failure.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		var sqlContent string
		var isFile bool

		switch {
		case rawQueryFlag:
			sqlContent = input
		case rawFileFlag:
			content, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read SQL file: %w", err)
			}
			sqlContent = string(content)
			isFile = true
		default:
			if _, err := os.Stat(input); err == nil {
				content, err := os.ReadFile(input)
				if err != nil {
					return fmt.Errorf("failed to read SQL file: %w", err)
				}
				sqlContent = string(content)
				isFile = true
			} else {
				sqlContent = input
			}
		}

		query := strings.TrimSpace(sqlContent)
		if query == "" {
			if isFile {
				return fmt.Errorf("SQL file is empty: %s", input)
			}
			return fmt.Errorf("SQL query is empty")
		}

		ctx := context.Background()
		adapter, _, err := openAdapter(ctx)
		if err != nil {
			return err
		}
		defer adapter.Close()

		queryUpper := strings.ToUpper(query)
		isSelect := strings.HasPrefix(queryUpper, "SELECT") ||
			strings.HasPrefix(queryUpper, "SHOW") ||
			strings.HasPrefix(queryUpper, "EXPLAIN") ||
			strings.HasPrefix(queryUpper, "WITH")

		if isSelect {
			result, err := adapter.Query(ctx, query)
			if err != nil {
				return dberr.Classify(err)
			}

			if len(result.Rows) == 0 {
				fmt.Println("📊 No rows returned")
				return nil
			}

			fmt.Printf("📊 %d row(s) returned\n\n", len(result.Rows))
			render.Table(os.Stdout, result)
			return nil
		}

		statements := common.ParseSQLStatements(query)
		if len(statements) == 0 {
			return fmt.Errorf("no SQL statements found")
		}

		for i, statement := range statements {
			if _, err := adapter.Exec(ctx, statement); err != nil {
				return dberr.Classify(fmt.Errorf("statement %d failed: %w", i+1, err))
			}
		}

		fmt.Printf("✅ %d statement(s) executed\n", len(statements))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rawCmd)
	rawCmd.Flags().BoolVarP(&rawQueryFlag, "query", "q", false, "Treat the argument as a SQL string")
	rawCmd.Flags().BoolVarP(&rawFileFlag, "file", "f", false, "Treat the argument as a .sql file path")
}
