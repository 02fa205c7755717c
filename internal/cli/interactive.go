package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// selectType prompts the user to pick a template type from a menu, showing
// each type's one-line description alongside the key.
func selectType(message string, options []string, describe func(string) string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Description: func(value string, index int) string {
			return describe(value)
		},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("selecting type: %w", err)
	}
	return choice, nil
}
