package main

import (
	"fmt"

	"ytprompt/internal/domain/consts"
	"ytprompt/internal/domain/keys"
	"ytprompt/internal/domain/paths"
	"ytprompt/internal/utils/benchmark"
	"ytprompt/internal/utils/logging"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// initializeApplication sets up the program directories, logging and
// benchmarking for the current run.
func initializeApplication() (*benchmark.BenchFiles, error) {
	benchmarking := viper.GetBool(keys.Benchmarking)

	if err := paths.InitProgFilesDirs(benchmarking); err != nil {
		return nil, err
	}

	logConfig := logging.LoggingConfig{
		LogFilePath: paths.LogFilePath,
		MaxSizeMB:   consts.LogMaxSizeMB,
		MaxBackups:  consts.LogMaxBackups,
		JSON:        viper.GetString(keys.LogFormat) == "json",
		RunID:       uuid.NewString(),
	}
	if err := logging.SetupLogging(logConfig); err != nil {
		return nil, fmt.Errorf("could not set up logging: %w", err)
	}
	logging.D(1, "Log file: %s", paths.LogFilePath)

	if !benchmarking {
		return nil, nil
	}
	bench, err := benchmark.SetupBenchmarking(paths.BenchmarkDir)
	if err != nil {
		logging.E("Benchmarking failure: %v", err)
		return nil, nil
	}
	return bench, nil
}
