// Package main is the entrypoint of ytprompt.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ytprompt/internal/app"
	"ytprompt/internal/cfg"
	"ytprompt/internal/command/execute"
	"ytprompt/internal/domain/consts"
	"ytprompt/internal/domain/keys"
	"ytprompt/internal/utils/logging"
	"ytprompt/internal/utils/prompt"
	"ytprompt/internal/validation"

	"github.com/mattn/go-colorable"
	"github.com/spf13/viper"
)

// main is the main entrypoint of the program (duh!).
func main() {
	os.Exit(run())
}

// run executes one ytprompt invocation and returns the process exit code.
func run() int {
	startTime := time.Now()

	if err := cfg.InitCommands(); err != nil {
		printError(err)
		return 1
	}
	if err := cfg.Execute(); err != nil {
		printError(err)
		return 1
	}
	if !cfg.ShouldRun() {
		return 0 // e.g. --help
	}

	bench, err := initializeApplication()
	if err != nil {
		printError(err)
		return 1
	}
	defer cleanup(bench, startTime)

	// User interrupts cancel the running yt-dlp process
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ytdlp := viper.GetString(keys.YTDLPPath)
	ffmpeg := viper.GetString(keys.FFmpegPath)

	opts := app.Options{
		Simulate:       viper.GetBool(keys.Simulate),
		RequireQuality: viper.GetBool(keys.RequireQuality),
		OutputTemplate: viper.GetString(keys.OutputTemplate),
	}
	deps := app.Deps{
		Prompter: prompt.NewSurveyPrompter(),
		Runner:   execute.NewExecRunner(ytdlp),
		CheckDependencies: func(ctx context.Context) error {
			return execute.CheckDependencies(ctx, ytdlp, ffmpeg)
		},
		Progress: app.NewSpinner(os.Stderr),
		Out:      colorable.NewColorableStdout(),
	}

	logging.D(1, "Starting run with options %+v", opts)
	if err := app.Run(ctx, opts, deps); err != nil {
		logRunError(err)
		printError(err)
		return 1
	}
	logging.D(1, "Run complete")
	return 0
}

// logRunError records the error class in the log file. The console copy is
// left to printError.
func logRunError(err error) {
	var (
		vErr   *validation.ValidationError
		invErr *validation.InvocationError
		pErr   *validation.ParseError
	)
	switch {
	case errors.As(err, &vErr):
		logging.FW("Invalid input: %v", vErr)
	case errors.As(err, &invErr):
		logging.FE("yt-dlp failed (%v): %v", invErr.Err, invErr)
	case errors.As(err, &pErr):
		logging.FE("Unreadable yt-dlp output: %v", pErr)
	case errors.Is(err, validation.ErrDependencyMissing):
		logging.FE("Missing dependency: %v", err)
	default:
		logging.FE("Run failed: %v", err)
	}
}

// printError writes the user-facing error message.
func printError(err error) {
	fmt.Fprintf(colorable.NewColorableStderr(), "\n%s%v\n\n", consts.RedError, err)
}
