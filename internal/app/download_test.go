package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"ytprompt/internal/app"
	"ytprompt/internal/command/builder"
	"ytprompt/internal/domain/enums"
	"ytprompt/internal/validation"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

type fakePrompter struct {
	dlType     enums.DownloadType
	quality    enums.DownloadQuality
	ext        string
	urls       string
	typeErr    error
	qualityErr error
	askedFor   []string
}

func (p *fakePrompter) SelectDownloadType() (enums.DownloadType, error) {
	p.askedFor = append(p.askedFor, "type")
	return p.dlType, p.typeErr
}

func (p *fakePrompter) SelectQuality() (enums.DownloadQuality, error) {
	p.askedFor = append(p.askedFor, "quality")
	return p.quality, p.qualityErr
}

func (p *fakePrompter) InputExtension() (string, error) {
	p.askedFor = append(p.askedFor, "extension")
	return p.ext, nil
}

func (p *fakePrompter) EditURLs() (string, error) {
	p.askedFor = append(p.askedFor, "urls")
	return p.urls, nil
}

type fakeRunner struct {
	out   string
	err   error
	calls int
	args  []string
}

func (r *fakeRunner) Run(_ context.Context, args []string) (string, error) {
	r.calls++
	r.args = args
	return r.out, r.err
}

type fakeProgress struct {
	started, stopped int
}

func (p *fakeProgress) Start() { p.started++ }
func (p *fakeProgress) Stop()  { p.stopped++ }

const twoRecords = "a\nFirst\n1024\n00:01\nb\nSecond\n2048\n00:02\n"

// TestRun checks a full prompt to summary run -----------------------------------------------------------------------------------
func TestRun_Success(t *testing.T) {
	p := &fakePrompter{
		dlType:  enums.VideoWithAudio,
		quality: enums.P720,
		ext:     "mp4",
		urls:    "# Each url separated by a new line.\nhttps://example.com/a\nhttps://example.com/b\n",
	}
	r := &fakeRunner{out: twoRecords}
	prog := &fakeProgress{}
	var out bytes.Buffer

	err := app.Run(context.Background(), app.Options{Simulate: true}, app.Deps{
		Prompter: p,
		Runner:   r,
		Progress: prog,
		Out:      &out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(p.askedFor, ","); got != "type,quality,extension,urls" {
		t.Fatalf("unexpected prompt order %q", got)
	}
	if r.calls != 1 {
		t.Fatalf("expected yt-dlp to run once, ran %d times", r.calls)
	}
	if r.args[0] != "--simulate" || r.args[7] != "bv*[height<=720]+ba/b[height<=720]" {
		t.Fatalf("unexpected arguments %q", r.args)
	}
	if prog.started != 1 || prog.stopped != 1 {
		t.Fatalf("expected progress started and stopped once, got %d/%d", prog.started, prog.stopped)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 summary lines, got %q", out.String())
	}
	if lines[0] != "Total size: 3.1 kB" {
		t.Fatalf("unexpected size line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Time spent: ") {
		t.Fatalf("unexpected time line %q", lines[1])
	}
	if lines[2] != "Downloaded 2 videos" {
		t.Fatalf("unexpected count line %q", lines[2])
	}
}

func TestRun_AudioSkipsQuality(t *testing.T) {
	p := &fakePrompter{dlType: enums.Audio, ext: "mp3", urls: "https://example.com/song"}
	r := &fakeRunner{out: "s\nSong\n4000\n03:00\n"}
	var out bytes.Buffer

	if err := app.Run(context.Background(), app.Options{}, app.Deps{Prompter: p, Runner: r, Out: &out}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(p.askedFor, ","); got != "type,extension,urls" {
		t.Fatalf("expected quality prompt to be skipped, got %q", got)
	}
	if r.args[7] != "ba" {
		t.Fatalf("expected audio format, got %q", r.args[7])
	}
	if !strings.Contains(out.String(), "Downloaded 1 videos") {
		t.Fatalf("unexpected summary %q", out.String())
	}
}

// TestRun_Errors checks each failure stops the run early ----------------------------------------------------------------------
func TestRun_DependencyFailure(t *testing.T) {
	depErr := &validation.DependencyError{Binary: "yt-dlp", Err: errors.New("not found")}
	p := &fakePrompter{}
	r := &fakeRunner{}

	err := app.Run(context.Background(), app.Options{}, app.Deps{
		Prompter:          p,
		Runner:            r,
		CheckDependencies: func(context.Context) error { return depErr },
		Out:               &bytes.Buffer{},
	})
	if !errors.Is(err, validation.ErrDependencyMissing) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(p.askedFor) != 0 || r.calls != 0 {
		t.Fatalf("expected no prompts and no run, got %q and %d runs", p.askedFor, r.calls)
	}
}

func TestRun_PromptFailure(t *testing.T) {
	cause := errors.New("interrupt")
	p := &fakePrompter{typeErr: cause}
	r := &fakeRunner{}

	err := app.Run(context.Background(), app.Options{}, app.Deps{Prompter: p, Runner: r, Out: &bytes.Buffer{}})
	if !errors.Is(err, cause) {
		t.Fatalf("expected prompt error, got %v", err)
	}
	if r.calls != 0 {
		t.Fatalf("expected yt-dlp not to run")
	}
}

func TestRun_InvalidURLs(t *testing.T) {
	p := &fakePrompter{dlType: enums.VideoOnly, quality: enums.P360, urls: "# nothing here\n"}
	r := &fakeRunner{}

	err := app.Run(context.Background(), app.Options{}, app.Deps{Prompter: p, Runner: r, Out: &bytes.Buffer{}})
	if !errors.Is(err, validation.ErrNoURLs) {
		t.Fatalf("expected no urls error, got %v", err)
	}
	if r.calls != 0 {
		t.Fatalf("expected yt-dlp not to run")
	}
}

func TestRun_InvocationFailure(t *testing.T) {
	p := &fakePrompter{dlType: enums.Audio, urls: "https://example.com/a"}
	r := &fakeRunner{err: &validation.InvocationError{Stderr: "ERROR: Unsupported URL"}}
	var out bytes.Buffer

	err := app.Run(context.Background(), app.Options{}, app.Deps{Prompter: p, Runner: r, Out: &out})

	var ie *validation.InvocationError
	if !errors.As(err, &ie) {
		t.Fatalf("expected invocation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "ERROR: Unsupported URL") {
		t.Fatalf("expected stderr in error, got %q", err.Error())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no summary on failure, got %q", out.String())
	}
}

func TestRun_UnparsableSize(t *testing.T) {
	p := &fakePrompter{dlType: enums.Audio, urls: "https://example.com/a"}
	r := &fakeRunner{out: "a\nLive stream\nNA\nNA\n"}
	var out bytes.Buffer

	err := app.Run(context.Background(), app.Options{}, app.Deps{Prompter: p, Runner: r, Out: &out})

	var pe *validation.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no summary on failure, got %q", out.String())
	}
}

func TestRun_RequireQuality(t *testing.T) {
	p := &fakePrompter{dlType: enums.VideoWithAudio, quality: enums.P480, urls: "https://example.com/a"}
	r := &fakeRunner{out: ""}
	var out bytes.Buffer

	err := app.Run(context.Background(), app.Options{RequireQuality: true}, app.Deps{Prompter: p, Runner: r, Out: &out})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Total size: 0 B") || !strings.Contains(out.String(), "Downloaded 0 videos") {
		t.Fatalf("unexpected empty summary %q", out.String())
	}
}

// TestCollectChoices checks that no extension leaves yt-dlp's default ---------------------------------------------------------
func TestCollectChoices_NoExtension(t *testing.T) {
	p := &fakePrompter{dlType: enums.VideoOnly, quality: enums.P1024, urls: "https://example.com/a"}
	b := builder.NewDownloadBuilder()

	if err := app.CollectChoices(p, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	args, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"--no-simulate", "--no-abort-on-error",
		"-o", "%(title)s.%(ext)s",
		"--print", "id,title,filesize_approx,duration_string",
		"--format", "bv*[height<=1024]",
		"https://example.com/a",
	}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Fatalf("expected %q, got %q", want, args)
	}
}

func TestCollectChoices_QualityFailure(t *testing.T) {
	cause := errors.New("prompt closed")
	p := &fakePrompter{dlType: enums.VideoWithAudio, qualityErr: cause}

	if err := app.CollectChoices(p, builder.NewDownloadBuilder()); !errors.Is(err, cause) {
		t.Fatalf("expected quality prompt error, got %v", err)
	}
	if got := strings.Join(p.askedFor, ","); got != "type,quality" {
		t.Fatalf("expected to stop after quality prompt, got %q", got)
	}
}
