package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgFile     string
	endpointURL string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "video-merge",
	Short: "Merge two videos through the video merge service",
	Long: `video-merge sends two video files and a target resolution to the merge
service and saves the merged result as merged-video.mp4.

Example:
  video-merge merge --video-a intro.mp4 --video-b talk.mp4 --resolution "Full HD"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/video-merge/config.toml)")
	rootCmd.PersistentFlags().StringVar(&endpointURL, "endpoint", "", "merge endpoint URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("video-merge {{.Version}}\n")
}
