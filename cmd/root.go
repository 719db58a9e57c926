package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.4.2"
)

var rootCmd = &cobra.Command{
	Use:   "jukebox",
	Short: "Seed and report against a Chinook-style music store database",
	Long: `
Jukebox runs a fixed sequence of schema, seed, and reporting statements
against a live music store database (tracks, albums, artists, genres,
customers, invoices, invoice items).

It owns exactly one table — music_videos — and a handful of read-only
analytical reports. Everything else in the schema belongs to the store.

Database Support:
- PostgreSQL (pgx or lib/pq drivers)
- MySQL
- SQLite (embedded databases)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("jukebox version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./jukebox.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("jukebox.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
