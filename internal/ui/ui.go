// Package ui provides the interactive prompts of the dateutil CLI.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNoOptions is returned when there is nothing to choose from.
var ErrNoOptions = errors.New("no options to choose from")

// AskFunc asks a single question. It matches survey.AskOne.
type AskFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

// Option is one choice offered to the user.
type Option struct {
	Name    string // returned when selected
	Preview string // rendered next to the name
}

// StyleSelector lets the user pick a formatting style while previewing its output.
type StyleSelector struct {
	ask AskFunc
}

// NewStyleSelector creates a selector prompting on the terminal.
func NewStyleSelector() *StyleSelector {
	return &StyleSelector{ask: survey.AskOne}
}

// NewStyleSelectorWithAsk creates a selector using ask instead of the terminal.
func NewStyleSelectorWithAsk(ask AskFunc) *StyleSelector {
	return &StyleSelector{ask: ask}
}

// Select prompts for one of options and returns the chosen name.
// The option whose name equals def is preselected.
func (s *StyleSelector) Select(options []Option, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	labels := make([]string, len(options))
	byLabel := make(map[string]string, len(options))
	var defLabel string
	for i, o := range options {
		labels[i] = fmt.Sprintf("%-7s %s", o.Name, o.Preview)
		byLabel[labels[i]] = o.Name
		if o.Name == def {
			defLabel = labels[i]
		}
	}
	if defLabel == "" {
		defLabel = labels[0]
	}

	var selected string
	prompt := &survey.Select{
		Message: "Choose a style:",
		Options: labels,
		Default: defLabel,
	}
	if err := s.ask(prompt, &selected); err != nil {
		return "", fmt.Errorf("failed to get style selection: %w", err)
	}

	name, ok := byLabel[selected]
	if !ok {
		return "", fmt.Errorf("failed to get style selection: unknown option %q", selected)
	}
	return name, nil
}
