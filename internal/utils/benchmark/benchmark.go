// Package benchmark sets up and initiated benchmarking.
//
// Includes CPU profiling, memory profiling, and tracing.
package benchmark

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"time"

	"ytprompt/internal/domain/consts"
	"ytprompt/internal/utils/logging"
)

// BenchFiles contain benchmarking files written on a benchmark-enabled run.
type BenchFiles struct {
	cpuFile   *os.File
	memFile   *os.File
	traceFile *os.File
}

// SetupBenchmarking starts CPU profiling and tracing in a timestamped
// subdirectory of baseDir. The heap profile is written on close.
func SetupBenchmarking(baseDir string) (*BenchFiles, error) {
	startTime := time.Now().Format("2006-01-02_15-04-05")
	runDir := filepath.Join(baseDir, startTime)
	if err := os.MkdirAll(runDir, consts.PermsGenericDir); err != nil {
		return nil, fmt.Errorf("failed to create benchmark run directory: %w", err)
	}
	logging.I("(Benchmarking this run. Start time: %s)", startTime)

	var err error
	b := new(BenchFiles)

	// CPU profile
	if b.cpuFile, err = os.Create(filepath.Join(runDir, "cpu.prof")); err != nil {
		return nil, b.abort(fmt.Errorf("could not create CPU profiling file: %w", err))
	}
	if err := pprof.StartCPUProfile(b.cpuFile); err != nil {
		b.cpuFile.Close()
		b.cpuFile = nil
		return nil, b.abort(fmt.Errorf("could not start CPU profiling: %w", err))
	}

	// Memory profile
	if b.memFile, err = os.Create(filepath.Join(runDir, "mem.prof")); err != nil {
		return nil, b.abort(fmt.Errorf("could not create memory profiling file: %w", err))
	}

	// Trace
	if b.traceFile, err = os.Create(filepath.Join(runDir, "trace.out")); err != nil {
		return nil, b.abort(fmt.Errorf("could not create trace file: %w", err))
	}
	if err := trace.Start(b.traceFile); err != nil {
		b.traceFile.Close()
		b.traceFile = nil
		return nil, b.abort(fmt.Errorf("could not start trace: %w", err))
	}

	return b, nil
}

// Close stops profiling and writes the heap profile. Safe to call more than once.
func (b *BenchFiles) Close() error {
	if b == nil {
		return nil
	}
	var errs []error

	if b.cpuFile != nil {
		logging.D(1, "Stopping CPU profile...")
		pprof.StopCPUProfile()
		if err := b.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close file %q: %w", b.cpuFile.Name(), err))
		}
		b.cpuFile = nil
	}

	if b.traceFile != nil {
		logging.D(1, "Stopping trace...")
		trace.Stop()
		if err := b.traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close file %q: %w", b.traceFile.Name(), err))
		}
		b.traceFile = nil
	}

	if b.memFile != nil {
		logging.D(1, "Writing memory profile...")
		runtime.GC()
		if err := pprof.WriteHeapProfile(b.memFile); err != nil {
			errs = append(errs, fmt.Errorf("could not write memory profile: %w", err))
		}
		if err := b.memFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close file %q: %w", b.memFile.Name(), err))
		}
		b.memFile = nil
	}

	return errors.Join(errs...)
}

// abort closes whatever was opened and returns the setup error.
func (b *BenchFiles) abort(setupErr error) error {
	if err := b.Close(); err != nil {
		logging.E("Benchmark cleanup failed: %v", err)
	}
	return setupErr
}
