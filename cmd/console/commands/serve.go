// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/console"
	"github.com/bureau-foundation/console/cmd/console/cli"
	"github.com/bureau-foundation/console/serve"
)

// ServeCommand returns the "serve" subcommand: the demo tree exposed as
// a network service.
func ServeCommand() *cli.Command {
	var configPath string
	var network string
	var address string

	return &cli.Command{
		Name:    "serve",
		Summary: "Serve the demo console over TCP or a Unix socket",
		Description: `Serve the built-in demo tree as a line-oriented network service.

Every accepted connection gets its own session over the shared tree:
menu position and input state are per connection. Connect with
'console attach', telnet, or nc. Sessions echo input back by default
so that character-mode clients see their own typing; set session.echo
to false in the config for line-mode clients.

Configuration comes from the --config file if given, else from the
file named by the CONSOLE_CONFIG environment variable, else from
built-in defaults (TCP on 127.0.0.1:7623, 10 minute idle timeout).
The --network and --address flags override the configured listener.

The server runs until interrupted; SIGINT or SIGTERM drains live
sessions before exiting.`,
		Usage: "console serve [flags]",
		Examples: []cli.Example{
			{
				Description: "Serve on the default loopback address",
				Command:     "console serve",
			},
			{
				Description: "Serve on a specific TCP address",
				Command:     "console serve --address 0.0.0.0:7623",
			},
			{
				Description: "Serve on a Unix socket",
				Command:     "console serve --network unix --address /run/console.sock",
			},
			{
				Description: "Serve with a config file",
				Command:     "console serve --config /etc/console/console.yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to a console.yaml config file")
			flagSet.StringVar(&network, "network", "", "listener network, tcp or unix (overrides config)")
			flagSet.StringVar(&address, "address", "", "listen address (overrides config)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			cfg, err := loadServeConfig(configPath)
			if err != nil {
				return cli.Validation("%w", err)
			}
			if network != "" {
				cfg.Listen.Network = network
			}
			if address != "" {
				cfg.Listen.Address = address
			}
			if err := cfg.Validate(); err != nil {
				return cli.Validation("invalid configuration: %w", err)
			}

			idleTimeout, err := cfg.ParseIdleTimeout()
			if err != nil {
				return cli.Validation("%w", err)
			}
			logLevel, err := cfg.ParseLogLevel()
			if err != nil {
				return cli.Validation("%w", err)
			}

			var prompt console.PromptFunc
			if cfg.Session.PathPrompt {
				prompt = console.PathPrompt
			}

			server := &serve.Server{
				Network:      cfg.Listen.Network,
				Address:      cfg.Listen.Address,
				Root:         demoTree(),
				Banner:       cfg.Session.Banner,
				Prompt:       prompt,
				IdleTimeout:  idleTimeout,
				LineCapacity: cfg.Session.LineCapacity,
				MaxDepth:     cfg.Session.MaxDepth,
				Echo:         cfg.Session.Echo,
				Logger:       newServerLogger(logLevel),
			}
			if err := server.Start(ctx); err != nil {
				return cli.Transient("%w", err).
					WithHint("Another process may already be listening on the address.")
			}

			<-ctx.Done()
			server.Stop()
			return nil
		},
	}
}

// loadServeConfig resolves the configuration source: an explicit
// --config path wins, then the CONSOLE_CONFIG environment variable,
// then the built-in defaults.
func loadServeConfig(configPath string) (*serve.Config, error) {
	if configPath != "" {
		return serve.LoadFile(configPath)
	}
	if os.Getenv("CONSOLE_CONFIG") != "" {
		return serve.Load()
	}
	return serve.Default(), nil
}

// newServerLogger builds the server's logger at the configured level.
// log.level from the config governs it, not the command logger's fixed
// level. Text output on a terminal, JSON when piped.
func newServerLogger(level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, options))
}
