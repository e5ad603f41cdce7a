// Package paths initializes ytprompt's filepaths, directories, etc.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ytprompt/internal/domain/consts"
)

const (
	progDir      = ".ytprompt"
	logFile      = "ytprompt.log"
	benchmarkDir = "benchmark"
)

// File and directory path strings.
var (
	HomeProgDir  string
	LogFilePath  string
	BenchmarkDir string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs(benchmarking bool) error {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}

	// Home program dir ~/.ytprompt
	HomeProgDir = filepath.Join(userHomeDir, progDir)
	if err := os.MkdirAll(HomeProgDir, consts.PermsHomeProgDir); err != nil {
		return fmt.Errorf("failed to make directories: %w", err)
	}

	LogFilePath = filepath.Join(HomeProgDir, logFile)

	// Benchmark directory
	if benchmarking {
		BenchmarkDir = filepath.Join(HomeProgDir, benchmarkDir)
		if err := os.MkdirAll(BenchmarkDir, consts.PermsGenericDir); err != nil {
			return fmt.Errorf("failed to make benchmark directory: %w", err)
		}
	}
	return nil
}
