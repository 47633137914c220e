// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the console CLI command tree: a demo console
// on the local terminal (raw line editing or the full-screen TUI), a
// socket server publishing a tree to network clients, and an attach
// client for connecting to one.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/console/cmd/console/cli"
	"github.com/bureau-foundation/console/lib/version"
)

// Root builds and returns the complete console CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "console",
		Description: `Interactive menu-driven command consoles.

Run the built-in demo tree on this terminal, serve it over a TCP or
Unix socket, or attach to a console served elsewhere.`,
		Subcommands: []*cli.Command{
			DemoCommand(),
			TUICommand(),
			ServeCommand(),
			AttachCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("console %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Run the demo console on this terminal",
				Command:     "console demo",
			},
			{
				Description: "Run the full-screen demo console",
				Command:     "console tui",
			},
			{
				Description: "Serve the demo tree on loopback TCP",
				Command:     "console serve --address 127.0.0.1:7623",
			},
			{
				Description: "Serve from a config file",
				Command:     "console serve --config ./console.yaml",
			},
			{
				Description: "Attach to a served console",
				Command:     "console attach 127.0.0.1:7623",
			},
			{
				Description: "Attach over a Unix socket",
				Command:     "console attach --network unix /run/console.sock",
			},
		},
	}
}
