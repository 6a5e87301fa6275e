package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"solid-example/cmd"
	"solid-example/config"
	apperrors "solid-example/pkg/errors"
)

func main() {
	var (
		configPath string
		principles string
		variants   string
		list       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&principles, "principle", "", "Comma separated principles to run (dip,isp,ocp,srp)")
	flag.StringVar(&variants, "variant", "", "Comma separated variants to run (violation,compliant)")
	flag.BoolVar(&list, "list", false, "List available examples and exit")
	flag.Parse()

	os.Exit(run(configPath, principles, variants, list, flag.Args()))
}

func run(configPath, principles, variants string, list bool, names []string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fail(apperrors.Config(err))
	}
	if principles != "" {
		cfg.Demo.Principles = splitList(principles)
	}
	if variants != "" {
		cfg.Demo.Variants = splitList(variants)
	}

	app, err := cmd.NewBuilder(cfg).Build()
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	if list {
		app.List()
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, names); err != nil {
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	return apperrors.AsAppError(err).ExitCode()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
