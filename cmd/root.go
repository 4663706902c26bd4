package cmd

import (
	"fmt"
	"os"

	"github.com/clearpath-ai/gpufind/pkg/logger"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "gpufind",
	Short: "Find the cheapest GPU-capable zones on Google Cloud",
	Long: `gpufind discovers which Google Cloud zones can satisfy a requested
machine type, GPU type and GPU count, and ranks them by estimated hourly cost.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logger.SetLogLevel(logLevel); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "set the log level (debug, info, warn, error)")
}
