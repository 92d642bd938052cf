package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// InstallHook installs the prepare-commit-msg hook
func InstallHook() error {
	gitDir := ".git"
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		return fmt.Errorf("current directory is not a git repository root (no .git found)")
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "prepare-commit-msg")
	if _, err := os.Stat(hookPath); err == nil {
		return fmt.Errorf("hook %s already exists. Please remove it first", hookPath)
	}

	exe, err := os.Executable()
	if err != nil {
		exe = "aicommit"
	} else {
		exe, _ = filepath.Abs(exe)
	}

	script := fmt.Sprintf(`#!/bin/sh
# aicommit hook
# Generates a commit message when none is given.

COMMIT_MSG_FILE=$1
COMMIT_SOURCE=$2

# Skip if a message was already provided (-m, merge, squash).
if [ -n "$COMMIT_SOURCE" ]; then
  exit 0
fi

# Redirect stdin to the tty so the confirmation form works inside the hook.
if [ -t 0 ]; then
    exec < /dev/tty
fi

"%s" -hook "$COMMIT_MSG_FILE" < /dev/tty > /dev/tty
`, exe)

	if err := os.WriteFile(hookPath, []byte(script), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	fmt.Printf("Hook installed to %s\n", hookPath)
	return nil
}
