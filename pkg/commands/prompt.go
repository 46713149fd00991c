package commands

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// promptLine asks for a single required value.
func promptLine(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New(label + " is required")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptSecret asks for a masked value.
func promptSecret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New(label + " is required")
			}
			return nil
		},
	}
	return prompt.Run()
}
