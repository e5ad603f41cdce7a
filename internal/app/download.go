// Package app runs one interactive download from prompt to summary.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"ytprompt/internal/command/builder"
	"ytprompt/internal/command/execute"
	"ytprompt/internal/parsing"
	"ytprompt/internal/utils/logging"
	"ytprompt/internal/utils/prompt"
)

// Options are the run settings taken from flags and config.
type Options struct {
	Simulate       bool
	RequireQuality bool
	OutputTemplate string
}

// Deps are the collaborators of a run.
type Deps struct {
	Prompter          prompt.Prompter
	Runner            execute.Runner
	CheckDependencies func(ctx context.Context) error
	Progress          Progress
	Out               io.Writer
}

// Run checks dependencies, collects the user's choices, runs yt-dlp and writes
// the summary to deps.Out. Errors are returned to the caller, which decides the
// exit status.
func Run(ctx context.Context, opts Options, deps Deps) error {
	if deps.CheckDependencies != nil {
		if err := deps.CheckDependencies(ctx); err != nil {
			return err
		}
	}

	b := builder.NewDownloadBuilder(
		builder.WithRequireQuality(opts.RequireQuality),
		builder.WithOutputTemplate(opts.OutputTemplate),
	).SetSimulate(opts.Simulate)

	if err := CollectChoices(deps.Prompter, b); err != nil {
		return err
	}

	args, err := b.Build()
	if err != nil {
		return err
	}

	progress := deps.Progress
	if progress == nil {
		progress = noProgress{}
	}

	progress.Start()
	start := time.Now()
	out, err := deps.Runner.Run(ctx, args)
	elapsed := time.Since(start)
	progress.Stop()

	if err != nil {
		return fmt.Errorf("error while download: %w", err)
	}

	records := parsing.ParseOutput(out)
	logging.D(1, "Parsed %d records from yt-dlp output", len(records))

	total, err := parsing.TotalDownloadBytes(records)
	if err != nil {
		return fmt.Errorf("failed to total download size: %w", err)
	}

	return WriteSummary(deps.Out, Summary{
		TotalBytes: total,
		Elapsed:    elapsed,
		Count:      len(records),
	})
}

// CollectChoices asks the user for each download choice and applies it to b.
// Quality is only asked for video downloads.
func CollectChoices(p prompt.Prompter, b *builder.DownloadBuilder) error {
	dlType, err := p.SelectDownloadType()
	if err != nil {
		return err
	}

	if dlType.IsVideo() {
		q, err := p.SelectQuality()
		if err != nil {
			return err
		}
		b.SetQuality(q)
	}
	b.SetDownloadType(dlType)

	ext, err := p.InputExtension()
	if err != nil {
		return err
	}
	if ext != "" {
		b.SetExtension(ext)
	}

	raw, err := p.EditURLs()
	if err != nil {
		return err
	}
	return b.SetURLs(raw)
}
