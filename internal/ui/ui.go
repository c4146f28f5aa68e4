// Package ui provides the interactive prompts used for progressive URL input.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/sgaunet/urlseg/pkg/urlparser"
)

// ErrPromptCancelled is returned when the user interrupts a prompt.
var ErrPromptCancelled = errors.New("prompt cancelled by user")

// Prompter asks the user for URL fragments.
type Prompter interface {
	// AskFragment reads one URL fragment. An empty answer ends the session.
	AskFragment(message string) (string, error)

	// SelectMode asks which parsing mode to use, preselecting current.
	SelectMode(current urlparser.Mode) (urlparser.Mode, error)
}

// SurveyPrompter implements [Prompter] with survey terminal prompts.
type SurveyPrompter struct{}

// NewPrompter creates a terminal prompter.
func NewPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// AskFragment implements [Prompter].
func (p *SurveyPrompter) AskFragment(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Help:    "Type any part of a URL, such as user:pass@ or host:8080. Leave empty to quit.",
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

// SelectMode implements [Prompter].
func (p *SurveyPrompter) SelectMode(current urlparser.Mode) (urlparser.Mode, error) {
	prompt := &survey.Select{
		Message: "Parsing mode:",
		Options: []string{string(urlparser.ModePartial), string(urlparser.ModeStrict)},
		Default: string(current),
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", promptError(err)
	}
	return urlparser.ParseMode(answer)
}

func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptCancelled
	}
	return fmt.Errorf("failed to read answer: %w", err)
}
