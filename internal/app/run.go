package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Solomko2/aicommit/internal/gitx"
	"github.com/Solomko2/aicommit/internal/prompt"
	"github.com/Solomko2/aicommit/internal/provider"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
)

type Config struct {
	Command string

	RepoArg    string
	ConfigPath string

	Provider string
	Model    string
	Style    string

	// BaseRef switches from the staged diff to base...HEAD.
	BaseRef string

	AutoCommit bool

	// HookFile, when set, receives the accepted message instead of a commit.
	HookFile string

	Secrets map[provider.Backend]string
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

func Run(ctx context.Context, cfg Config) error {
	switch cfg.Command {
	case "config":
		return runConfig(cfg.ConfigPath)
	case "install-hook":
		return InstallHook()
	case "suggest", "show-prompt", "":
		// handled below
	default:
		return fmt.Errorf("unknown command %q (use suggest | show-prompt | config | install-hook)", cfg.Command)
	}

	backend := provider.Backend(cfg.Provider)
	if !provider.Known(backend) {
		return &provider.UnknownBackendError{Backend: backend}
	}

	style := prompt.Style(cfg.Style)
	if style == "" {
		style = prompt.StyleConcise
	}
	if !prompt.Known(style) {
		return fmt.Errorf("unknown style %q (use concise | thorough)", cfg.Style)
	}

	repoRoot, err := gitx.ResolveRepoRoot(ctx, cfg.RepoArg)
	if err != nil {
		return err
	}

	diff, files, err := collectDiff(ctx, repoRoot, cfg.BaseRef)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" {
		if cfg.BaseRef != "" {
			return fmt.Errorf("no changes between %s and HEAD", cfg.BaseRef)
		}
		return errors.New("no staged changes. Run: git add -A")
	}

	branch, _ := gitx.CurrentBranch(ctx, repoRoot)
	surfaceAdvisory(diff, backend, branch, files)

	if cfg.Command == "show-prompt" {
		bounded := provider.BoundDiff(diff, backend)
		fmt.Print(prompt.Build(bounded.Text, style))
		return nil
	}

	d := &provider.Dispatcher{
		Secrets: cfg.Secrets,
		Model:   cfg.Model,
		Style:   style,
	}

	return suggestLoop(ctx, cfg, repoRoot, d, diff, backend)
}

func collectDiff(ctx context.Context, repoRoot, baseRef string) (string, []string, error) {
	if baseRef != "" {
		diff, err := gitx.BranchDiff(ctx, repoRoot, baseRef)
		if err != nil {
			return "", nil, err
		}
		files, _ := gitx.BranchFiles(ctx, repoRoot, baseRef)
		return diff, files, nil
	}
	diff, err := gitx.StagedDiff(ctx, repoRoot)
	if err != nil {
		return "", nil, err
	}
	files, _ := gitx.StagedFiles(ctx, repoRoot)
	return diff, files, nil
}

// surfaceAdvisory prints the changed files and, when the diff exceeds the
// backend's limit, a truncation notice with sizes in KB. Informational only.
func surfaceAdvisory(diff string, backend provider.Backend, branch string, files []string) {
	if len(files) > 0 {
		if branch != "" {
			fmt.Printf("Branch %s: %d file(s) changed: %s\n", branch, len(files), strings.Join(files, ", "))
		} else {
			fmt.Printf("%d file(s) changed: %s\n", len(files), strings.Join(files, ", "))
		}
	}

	res := provider.BoundDiff(diff, backend)
	if !res.Truncated {
		return
	}
	fmt.Println(warnStyle.Render(fmt.Sprintf(
		"Diff is %.1f KB; only the first %.1f KB will be sent to %s. Consider splitting into smaller commits.",
		float64(res.OriginalLen)/1024, float64(res.BoundedLen)/1024, backend)))
}

func suggestLoop(ctx context.Context, cfg Config, repoRoot string, d *provider.Dispatcher, diff string, backend provider.Backend) error {
	for {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Asking %s for a commit message...", backend)
		s.Start()

		raw, err := d.Generate(ctx, diff, backend)
		s.Stop()
		if err != nil {
			return err
		}

		commitMsg := prompt.Sanitize(raw)

		if cfg.AutoCommit {
			return finishCommit(ctx, cfg, repoRoot, commitMsg)
		}

		for {
			action, err := confirmCommit(commitMsg)
			if err != nil {
				return err
			}

			switch action {
			case ActionCommit:
				return finishCommit(ctx, cfg, repoRoot, commitMsg)

			case ActionEdit:
				newMsg, err := editCommitMessage(commitMsg)
				if err != nil {
					return err
				}
				commitMsg = newMsg
				continue

			case ActionCopy:
				if err := copyToClipboard(commitMsg); err != nil {
					fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
					continue
				}
				fmt.Println("Copied to clipboard.")
				return nil

			case ActionRegenerate:
				fmt.Println("Regenerating...")
				goto NextGeneration

			case ActionCancel:
				fmt.Println("Cancelled.")
				if cfg.HookFile != "" {
					return fmt.Errorf("commit cancelled by user")
				}
				return nil
			}
		}
	NextGeneration:
	}
}

func finishCommit(ctx context.Context, cfg Config, repoRoot, commitMsg string) error {
	if cfg.HookFile != "" {
		if err := os.WriteFile(cfg.HookFile, []byte(commitMsg), 0644); err != nil {
			return fmt.Errorf("write hook file: %w", err)
		}
		fmt.Println("Message written for git hook.")
		return nil
	}
	if err := gitx.Commit(ctx, repoRoot, commitMsg); err != nil {
		return err
	}
	fmt.Println("Commit created.")
	return nil
}
