// Package cmd implements the CLI commands for the listing gateway server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "listing-gateway",
	Short: "Presentation gateway for the car listings API",
	Long: "A gateway service that sits between clients and the remote car " +
		"listings API: it normalizes query parameters, enriches listings with " +
		"brand and model names, sanitizes photo references, and processes " +
		"photo uploads into web-ready assets.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
