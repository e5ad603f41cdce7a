// Package prompt asks the user for their download choices on the terminal.
package prompt

import (
	"errors"
	"fmt"

	"ytprompt/internal/domain/consts"
	"ytprompt/internal/domain/enums"
	"ytprompt/internal/utils/logging"
	"ytprompt/internal/validation"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter collects download choices from the user.
type Prompter interface {
	SelectDownloadType() (enums.DownloadType, error)
	SelectQuality() (enums.DownloadQuality, error)
	InputExtension() (string, error)
	EditURLs() (string, error)
}

// SurveyPrompter prompts on the controlling terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter returns a terminal prompter.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// SelectDownloadType asks which streams to download.
func (p *SurveyPrompter) SelectDownloadType() (enums.DownloadType, error) {
	var label string
	q := &survey.Select{
		Message: consts.PromptDownloadType,
		Options: enums.DownloadTypeOptions(),
	}
	if err := survey.AskOne(q, &label, p.opts...); err != nil {
		return 0, promptFailure(validation.ErrMissingDownloadType, err)
	}
	return validation.ParseDownloadType(label)
}

// SelectQuality asks for the maximum video height.
func (p *SurveyPrompter) SelectQuality() (enums.DownloadQuality, error) {
	var label string
	q := &survey.Select{
		Message: consts.PromptQuality,
		Options: enums.DownloadQualityOptions(),
	}
	if err := survey.AskOne(q, &label, p.opts...); err != nil {
		return 0, promptFailure(validation.ErrMissingQuality, err)
	}
	return validation.ParseDownloadQuality(label)
}

// InputExtension asks for an optional output extension. An empty answer keeps
// yt-dlp's default.
func (p *SurveyPrompter) InputExtension() (string, error) {
	var ext string
	if err := survey.AskOne(&survey.Input{Message: consts.PromptExtension}, &ext, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", err
		}
		logging.D(1, "Extension prompt failed, using default: %v", err)
		return "", nil
	}
	return validation.NormalizeExtension(ext), nil
}

// EditURLs opens the user's editor seeded with a comment line and returns the buffer.
func (p *SurveyPrompter) EditURLs() (string, error) {
	var raw string
	q := &survey.Editor{
		Message:       consts.PromptURLs,
		Default:       consts.PromptURLsSeed,
		AppendDefault: true,
		HideDefault:   true,
	}
	if err := survey.AskOne(q, &raw, p.opts...); err != nil {
		return "", promptFailure(validation.ErrNoURLs, err)
	}
	return raw, nil
}

// promptFailure keeps the validation kind the failed prompt stands for while
// preserving the prompt error (e.g. terminal.InterruptErr) for errors.Is.
func promptFailure(kind *validation.ValidationError, err error) error {
	logging.D(1, "Prompt failed: %v", err)
	return fmt.Errorf("%w: %w", kind, err)
}
