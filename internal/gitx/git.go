package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func Git(ctx context.Context, repoRoot string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoRoot}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %v failed: %v\n%s", args, err, stderr.String())
	}
	return stdout.String(), nil
}

func CurrentBranch(ctx context.Context, repoRoot string) (string, error) {
	out, err := Git(ctx, repoRoot, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// StagedDiff returns the full staged diff as one opaque string.
func StagedDiff(ctx context.Context, repoRoot string) (string, error) {
	return Git(ctx, repoRoot, "diff", "--staged")
}

// StagedFiles returns the names of staged files.
func StagedFiles(ctx context.Context, repoRoot string) ([]string, error) {
	out, err := Git(ctx, repoRoot, "diff", "--staged", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

// BranchDiff returns the diff between base and HEAD (three-dot form, so
// only changes on the current branch count).
func BranchDiff(ctx context.Context, repoRoot, base string) (string, error) {
	return Git(ctx, repoRoot, "diff", base+"...HEAD")
}

// BranchFiles returns the names of files changed between base and HEAD.
func BranchFiles(ctx context.Context, repoRoot, base string) ([]string, error) {
	out, err := Git(ctx, repoRoot, "diff", base+"...HEAD", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

func Commit(ctx context.Context, repoRoot, message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	_, err := Git(ctx, repoRoot, "commit", "-m", msg)
	return err
}

func splitNonEmptyLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
