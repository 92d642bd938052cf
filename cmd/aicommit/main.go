package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Solomko2/aicommit/internal/app"
	"github.com/Solomko2/aicommit/internal/config"
	"github.com/Solomko2/aicommit/internal/provider"
)

func main() {
	var (
		repoArg    = flag.String("repo", "", "path to the git repository (default: walk up from cwd)")
		configPath = flag.String("config", "", "path to the settings file (default: ~/.aicommit.json)")
		providerFl = flag.String("provider", "", "AI backend: anthropic | openai | gemini")
		modelFl    = flag.String("model", "", "model name (default depends on backend)")
		styleFl    = flag.String("style", "", "message style: concise | thorough")
		baseRef    = flag.String("base", "", "generate from BASE...HEAD instead of the staged diff")
		yes        = flag.Bool("yes", false, "commit without confirmation")
		hookFile   = flag.String("hook", "", "write the accepted message to this file (git hook mode)")
	)
	flag.Usage = usage
	flag.Parse()

	command := flag.Arg(0)

	fileCfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aicommit: %v\n", err)
		os.Exit(1)
	}

	yesSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "yes" {
			yesSet = true
		}
	})

	cfg := app.Config{
		Command:    command,
		RepoArg:    *repoArg,
		ConfigPath: *configPath,
		Provider: config.ResolveString(*providerFl, os.Getenv("AICOMMIT_PROVIDER"),
			fileCfg.Provider, string(provider.BackendAnthropic)),
		Model: config.ResolveString(*modelFl, os.Getenv("AICOMMIT_MODEL"),
			fileCfg.Model, ""),
		Style: config.ResolveString(*styleFl, os.Getenv("AICOMMIT_STYLE"),
			fileCfg.Style, "concise"),
		BaseRef:    *baseRef,
		AutoCommit: config.ResolveBool(*yes, yesSet, fileCfg.AutoCommit, false),
		HookFile:   *hookFile,
		Secrets:    fileCfg.Secrets(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aicommit: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `aicommit - generate commit messages from your staged diff

Usage:
  aicommit [flags] [command]

Commands:
  suggest       generate a message and offer to commit (default)
  show-prompt   print the instruction document that would be sent
  config        edit the settings file interactively
  install-hook  install the prepare-commit-msg hook

Flags:
`)
	flag.PrintDefaults()
}
