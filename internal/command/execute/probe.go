package execute

import (
	"context"
	"os/exec"
	"strings"

	"ytprompt/internal/domain/command"
	"ytprompt/internal/domain/consts"
	"ytprompt/internal/utils"
	"ytprompt/internal/utils/logging"
	"ytprompt/internal/validation"
)

// CheckInstalled runs "<binary> <versionFlag>" and reports a DependencyError
// if the program cannot be started or exits non-zero.
func CheckInstalled(ctx context.Context, binary, versionFlag, installURL string) error {
	out, err := exec.CommandContext(ctx, binary, versionFlag).Output()
	if err != nil {
		return &validation.DependencyError{
			Binary:     binary,
			InstallURL: installURL,
			Err:        err,
		}
	}

	version := ""
	if lines := utils.Lines(DecodeOutput(out)); len(lines) > 0 {
		version = strings.TrimSpace(lines[0])
	}
	logging.D(1, "Found %s: %s", binary, version)
	return nil
}

// CheckDependencies verifies yt-dlp and ffmpeg can be run before any prompting happens.
func CheckDependencies(ctx context.Context, ytdlpPath, ffmpegPath string) error {
	if err := CheckInstalled(ctx, ytdlpPath, command.Version, consts.YTDLPInstallURL); err != nil {
		return err
	}
	return CheckInstalled(ctx, ffmpegPath, command.FFmpegVersion, consts.FFmpegInstallURL)
}
