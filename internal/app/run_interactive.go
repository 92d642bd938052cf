package app

import (
	"fmt"
	"strings"

	"github.com/Solomko2/aicommit/internal/config"
	"github.com/Solomko2/aicommit/internal/provider"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Action enum for the confirmation form
type Action int

const (
	ActionCommit Action = iota
	ActionEdit
	ActionCopy
	ActionRegenerate
	ActionCancel
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			MarginBottom(1)
)

func confirmCommit(commitMsg string) (Action, error) {
	fmt.Println()
	fmt.Println(titleStyle.Render("Generated Commit Message:"))
	fmt.Println(boxStyle.Render(strings.TrimSpace(commitMsg)))

	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Commit (Apply)", "commit"),
					huh.NewOption("Edit", "edit"),
					huh.NewOption("Copy to clipboard", "copy"),
					huh.NewOption("Regenerate", "regenerate"),
					huh.NewOption("Cancel", "cancel"),
				).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return ActionCancel, err
	}

	switch selected {
	case "commit":
		return ActionCommit, nil
	case "edit":
		return ActionEdit, nil
	case "copy":
		return ActionCopy, nil
	case "regenerate":
		return ActionRegenerate, nil
	default:
		return ActionCancel, nil
	}
}

func editCommitMessage(commitMsg string) (string, error) {
	edited := commitMsg

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Edit Commit Message").
				Description("Modify the message below (Press Esc+Enter or standard submit key to finish)").
				Value(&edited),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(edited), nil
}

func copyToClipboard(commitMsg string) error {
	return clipboard.WriteAll(commitMsg)
}

// runConfig launches a TUI form to edit the settings file
func runConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	backend := cfg.Provider
	if backend == "" {
		backend = string(provider.BackendAnthropic)
	}
	style := cfg.Style
	if style == "" {
		style = "concise"
	}
	model := cfg.Model
	anthropicKey := cfg.AnthropicKey
	openaiKey := cfg.OpenAIKey
	geminiKey := cfg.GeminiKey
	autoCommit := cfg.AutoCommit != nil && *cfg.AutoCommit

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("aicommit Configuration").
				Description("Update your settings in ~/.aicommit.json"),

			huh.NewSelect[string]().
				Title("Default Backend").
				Options(
					huh.NewOption("Anthropic (Claude)", string(provider.BackendAnthropic)),
					huh.NewOption("OpenAI", string(provider.BackendOpenAI)),
					huh.NewOption("Google Gemini", string(provider.BackendGemini)),
				).
				Value(&backend),

			huh.NewInput().
				Title("Model").
				Description("Leave empty for the backend default").
				Suggestions([]string{
					provider.DefaultModel(provider.BackendAnthropic),
					provider.DefaultModel(provider.BackendOpenAI),
					provider.DefaultModel(provider.BackendGemini),
				}).
				Value(&model),

			huh.NewSelect[string]().
				Title("Message Style").
				Options(
					huh.NewOption("Concise", "concise"),
					huh.NewOption("Thorough", "thorough"),
				).
				Value(&style),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Anthropic API Key").
				Description("Falls back to "+provider.EnvKey(provider.BackendAnthropic)).
				Value(&anthropicKey).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Title("OpenAI API Key").
				Description("Falls back to "+provider.EnvKey(provider.BackendOpenAI)).
				Value(&openaiKey).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Title("Gemini API Key").
				Description("Falls back to "+provider.EnvKey(provider.BackendGemini)).
				Value(&geminiKey).
				EchoMode(huh.EchoModePassword),
		),

		huh.NewGroup(
			huh.NewConfirm().
				Title("Auto Commit").
				Description("Commit without confirmation?").
				Value(&autoCommit),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Provider = backend
	cfg.Model = strings.TrimSpace(model)
	cfg.Style = style
	cfg.AnthropicKey = strings.TrimSpace(anthropicKey)
	cfg.OpenAIKey = strings.TrimSpace(openaiKey)
	cfg.GeminiKey = strings.TrimSpace(geminiKey)
	cfg.AutoCommit = &autoCommit

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Println("Configuration saved.")
	return nil
}
