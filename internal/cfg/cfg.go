// Package cfg provides configuration and command-line interface setup for ytprompt.
package cfg

import (
	"fmt"
	"strings"

	"ytprompt/internal/domain/consts"
	"ytprompt/internal/domain/keys"
	"ytprompt/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           consts.ProgramName,
	Short:         "ytprompt is an interactive front-end for yt-dlp.",
	Long:          "ytprompt asks what to download, builds the yt-dlp command, runs it and reports the total size, time spent and item count.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.IsSet(keys.ConfigFile) {
			if err := loadConfigFile(viper.GetString(keys.ConfigFile)); err != nil {
				return err
			}
		}
		return validation.ValidateViperFlags()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set(keys.Execute, true)
		return nil
	},
}

// InitCommands initializes the root command flags and environment bindings.
func InitCommands() error {
	viper.SetEnvPrefix(keys.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "debug-level" reads YTPROMPT_DEBUG_LEVEL
	viper.AutomaticEnv()

	if err := initDownloadFlags(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize download flags: %w", err)
	}
	if err := initProgramFlags(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize program flags: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ShouldRun reports whether the command line asked for a download run (as
// opposed to e.g. --help).
func ShouldRun() bool {
	return viper.GetBool(keys.Execute)
}
