/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/umdgen/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "umdgen",
	Short: "A CLI tool for generating UMD loader fragments.",
	Long: `umdgen emits the per-module-system pieces of a Universal Module Definition
header, so one JavaScript module can register itself under CommonJS and friends.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		// stdout carries generated output
		logger.SetWriterForAll(cmd.ErrOrStderr())
		if logfile == "" {
			return nil
		}
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		logger.AddWriterForAll(f)
		return nil
	},
}

var (
	configPath string
	logfile    string
	verbose    bool

	logFile *os.File
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// closeLogFile runs after every command, including failed ones.
func closeLogFile() {
	if logFile == nil {
		return
	}
	logger.SetWriterForAll(os.Stderr)
	logFile.Close()
	logFile = nil
}

func init() {
	cobra.OnFinalize(closeLogFile)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (yaml, or a .js file with an umdgen marker)")
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
