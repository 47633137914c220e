// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "console",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "serve",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "serve"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"serve"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "serve" {
		t.Errorf("dispatched to %q, want %q", called, "serve")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "console",
		Subcommands: []*Command{
			{
				Name: "history",
				Subcommands: []*Command{
					{
						Name: "clear",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "history clear"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"history", "clear", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "history clear" {
		t.Errorf("dispatched to %q, want %q", called, "history clear")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_RunReceivesContextAndLogger(t *testing.T) {
	command := &Command{
		Name: "serve",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if ctx == nil {
				t.Error("Run should receive a non-nil context")
			}
			if logger == nil {
				t.Error("Run should receive a non-nil logger")
			}
			return nil
		},
	}

	if err := command.Execute(nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var configPath string
	var target string

	command := &Command{
		Name: "serve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "/default.yaml", "config path")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--config", "/custom.yaml", "positional"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "/custom.yaml" {
		t.Errorf("configPath = %q, want %q", configPath, "/custom.yaml")
	}
	if target != "positional" {
		t.Errorf("target = %q, want %q", target, "positional")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "serve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.Bool("echo", false, "echo input bytes")
			flagSet.String("config", "/default.yaml", "config path")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute([]string{"--confgi"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --config") {
		t.Errorf("error = %q, want suggestion for '--config'", errStr)
	}
	// Suggestion should be on the same line as the error, not buried.
	if !strings.Contains(errStr, "confgi") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	// Should include a pointer to --help.
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "serve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.Bool("echo", false, "echo input bytes")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "console",
		Subcommands: []*Command{
			{Name: "serve"},
			{Name: "attach"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"sevre"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"serve\"") {
		t.Errorf("error = %q, want suggestion for 'serve'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "console",
		Subcommands: []*Command{
			{Name: "serve"},
			{Name: "attach"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "console",
				Summary: "Interactive menu consoles",
				Subcommands: []*Command{
					{Name: "serve", Summary: "Serve a console over a socket"},
				},
			}

			err := root.Execute([]string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "console",
		Subcommands: []*Command{
			{Name: "serve", Summary: "Serve a console over a socket"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "console",
		Description: "Interactive menu-driven command consoles.",
		Subcommands: []*Command{
			{Name: "demo", Summary: "Run the demo console on this terminal"},
			{Name: "serve", Summary: "Serve a console over a socket"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Run the demo console",
				Command:     "console demo",
			},
			{
				Description: "Serve the demo tree over TCP",
				Command:     "console serve --address 127.0.0.1:7623",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Interactive menu-driven command consoles.",
		"Usage:",
		"console <command> [flags]",
		"Commands:",
		"demo",
		"Run the demo console on this terminal",
		"serve",
		"Serve a console over a socket",
		"Examples:",
		"console demo",
		"console serve --address 127.0.0.1:7623",
		"Run 'console <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "serve",
		Summary: "Serve a console over a socket",
		Usage:   "console serve [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.String("config", "", "config file path")
			flagSet.Bool("echo", true, "echo input bytes")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"console serve [flags]",
		"Flags:",
		"config",
		"echo",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "console"}
	history := &Command{Name: "history", parent: root}
	clear := &Command{Name: "clear", parent: history}

	if got := root.fullName(); got != "console" {
		t.Errorf("root.fullName() = %q, want %q", got, "console")
	}
	if got := history.fullName(); got != "console history" {
		t.Errorf("history.fullName() = %q, want %q", got, "console history")
	}
	if got := clear.fullName(); got != "console history clear" {
		t.Errorf("clear.fullName() = %q, want %q", got, "console history clear")
	}
}
