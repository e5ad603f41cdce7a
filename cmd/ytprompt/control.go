package main

import (
	"time"

	"ytprompt/internal/domain/consts"
	"ytprompt/internal/utils/benchmark"
	"ytprompt/internal/utils/logging"
)

// cleanup safely quits the program.
func cleanup(bench *benchmark.BenchFiles, startTime time.Time) {
	r := recover() // grab panic condition
	if r != nil {
		logging.E("Panic occurred: %v", r)
	}

	if err := bench.Close(); err != nil {
		logging.E("Failed to close benchmark files: %v", err)
	}
	logging.D(1, "%s finished in %v", consts.ProgramName, time.Since(startTime).Round(time.Millisecond))

	if r != nil {
		panic(r)
	}
}
