// Package execute runs the external programs ytprompt depends on.
package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"ytprompt/internal/domain/command"
	"ytprompt/internal/domain/consts"
	"ytprompt/internal/domain/errconsts"
	"ytprompt/internal/utils/logging"
	"ytprompt/internal/validation"

	"github.com/alessio/shellescape"
	"golang.org/x/text/encoding/unicode"
)

// Runner runs yt-dlp with the given arguments and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args []string) (string, error)
}

// ExecRunner runs a yt-dlp executable as a child process.
type ExecRunner struct {
	Binary string
}

// NewExecRunner returns a runner for the given executable, defaulting to yt-dlp on PATH.
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = command.YTDLP
	}
	return &ExecRunner{Binary: binary}
}

// Run starts yt-dlp without a terminal attached and waits for it to exit.
//
// There is no timeout: the call blocks until yt-dlp finishes or ctx is cancelled.
// A non-zero exit returns an *validation.InvocationError holding yt-dlp's stderr.
func (r *ExecRunner) Run(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.D(1, "Executing download command: %s", shellescape.QuoteCommand(cmd.Args))

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf(errconsts.YTDLPFailure, ctxErr)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &validation.InvocationError{
				Stderr: DecodeOutput(stderr.Bytes()),
				Err:    exitErr,
			}
		}

		return "", &validation.DependencyError{
			Binary:     r.Binary,
			InstallURL: consts.YTDLPInstallURL,
			Err:        err,
		}
	}

	return DecodeOutput(stdout.Bytes()), nil
}

// DecodeOutput decodes process output as UTF-8, replacing invalid byte
// sequences with U+FFFD.
func DecodeOutput(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
