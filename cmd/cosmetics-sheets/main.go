// Package main provides the CLI entry point for cosmetics-sheets.
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thanh2004nguyen/cosmetics-automation/commands"
	"github.com/thanh2004nguyen/cosmetics-automation/config"
)

var debug bool

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   commands.APP,
		Short: "Syncs the cosmetics registry to a Google spreadsheet",
		Long: `cosmetics-sheets fetches the complete cosmetics registration record set
from the Ministry of Health registries API and rewrites two worksheets of a
Google spreadsheet - a fixed 7-column projection and a fully flattened view.

It is intended to be run from a monthly scheduler; invoked without a
subcommand it performs the full update.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			startUp()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Update(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging information")
	rootCmd.PersistentFlags().StringVar(&cfg.SpreadsheetID, "spreadsheet", cfg.SpreadsheetID, "Google spreadsheet ID")
	rootCmd.PersistentFlags().StringVar(&cfg.Credentials, "credentials", cfg.Credentials, "Path for the service account 'credentials.json' file")
	rootCmd.PersistentFlags().StringVar(&cfg.APIURL, "url", cfg.APIURL, "Registry API endpoint")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "update",
		Short: "Fetches the registry and rewrites both spreadsheet worksheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Update(cmd.Context(), cfg)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verifies the registry API and spreadsheet credentials without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Check(cmd.Context(), cfg)
		},
	})

	exportFile := config.DefaultExportFile
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Writes both worksheets to a local .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Export(cmd.Context(), cfg, exportFile)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", exportFile, "Output workbook path")
	rootCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Run: func(cmd *cobra.Command, args []string) {
			commands.Version()
		},
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}

func startUp() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if debug {
		log.SetLevel(log.DebugLevel)
	}
}
