package cfg

import (
	"ytprompt/internal/domain/command"
	"ytprompt/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initDownloadFlags initializes user flag settings for the yt-dlp run.
func initDownloadFlags(rootCmd *cobra.Command) error {
	// Simulate
	rootCmd.Flags().BoolP(keys.Simulate, "s", false, "Only report what yt-dlp would download, without writing files")
	if err := viper.BindPFlag(keys.Simulate, rootCmd.Flags().Lookup(keys.Simulate)); err != nil {
		return err
	}

	// Quality requirement
	rootCmd.Flags().Bool(keys.RequireQuality, false, "Fail instead of using the best available quality when a video download has no quality")
	if err := viper.BindPFlag(keys.RequireQuality, rootCmd.Flags().Lookup(keys.RequireQuality)); err != nil {
		return err
	}

	// Output filename template
	rootCmd.Flags().String(keys.OutputTemplate, command.FilenameSyntax, "yt-dlp output filename template")
	if err := viper.BindPFlag(keys.OutputTemplate, rootCmd.Flags().Lookup(keys.OutputTemplate)); err != nil {
		return err
	}

	// External programs
	rootCmd.Flags().String(keys.YTDLPPath, command.YTDLP, "Path to the yt-dlp executable")
	if err := viper.BindPFlag(keys.YTDLPPath, rootCmd.Flags().Lookup(keys.YTDLPPath)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.FFmpegPath, command.FFmpeg, "Path to the ffmpeg executable")
	if err := viper.BindPFlag(keys.FFmpegPath, rootCmd.Flags().Lookup(keys.FFmpegPath)); err != nil {
		return err
	}
	return nil
}

// initProgramFlags initializes user flag settings related to the core program. E.g. logging level.
func initProgramFlags(rootCmd *cobra.Command) error {
	// Config file
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Config file with flag values (any format Viper reads, e.g. yaml or toml)")
	if err := viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	// Log format
	rootCmd.PersistentFlags().String(keys.LogFormat, "console", "Console log format (console or json)")
	if err := viper.BindPFlag(keys.LogFormat, rootCmd.PersistentFlags().Lookup(keys.LogFormat)); err != nil {
		return err
	}

	// Output benchmarking files
	rootCmd.PersistentFlags().Bool(keys.Benchmarking, false, "Benchmarks the program")
	if err := viper.BindPFlag(keys.Benchmarking, rootCmd.PersistentFlags().Lookup(keys.Benchmarking)); err != nil {
		return err
	}
	return nil
}
