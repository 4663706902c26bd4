package cmd

import (
	"context"

	"github.com/clearpath-ai/gpufind/pkg/config"
	"github.com/clearpath-ai/gpufind/pkg/finder"
	"github.com/clearpath-ai/gpufind/pkg/gcpcatalog"
	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	topN         int
	concurrency  int
	showProgress bool
)

var findCmd = &cobra.Command{
	Use:   "find [config file]",
	Short: "Discover and rank GPU-capable zones",
	Long: `Discover which zones offer the machine type and GPU type from the
configuration file, check per-instance GPU quota, and rank the viable zones
by estimated hourly cost.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Parse(args[0])
		if err != nil {
			logger.Fatalf("[!] Could not read config file: %s", err)
		}
		if err := cfg.Validate(); err != nil {
			logger.Fatalf("[!] Invalid configuration: %s", err)
		}

		ctx := context.Background()
		client, err := gcpcatalog.New(ctx, cfg.ProjectID)
		if err != nil {
			logger.Fatalf("[!] Could not create catalog client: %s", err)
		}

		f := &finder.Finder{
			Catalog:     client,
			Billing:     client,
			Config:      cfg,
			Concurrency: concurrency,
			Progress:    showProgress,
		}
		options, err := f.Run(ctx)
		if err != nil {
			logger.Fatalf("[!] %s", err)
		}

		finder.DisplayResults(options, topN)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().IntVar(&topN, "top", 3, "number of lowest-priced options to display")
	findCmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum concurrent per-zone catalog listings (1 = sequential)")
	findCmd.Flags().BoolVar(&showProgress, "progress", false, "render a progress bar while scanning zones")
}
