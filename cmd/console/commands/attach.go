// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/console/cmd/console/cli"
	"github.com/bureau-foundation/console/lib/netutil"
)

// AttachCommand returns the "attach" subcommand: a thin terminal client
// for a running console server.
func AttachCommand() *cli.Command {
	var network string

	return &cli.Command{
		Name:    "attach",
		Summary: "Connect the terminal to a console server",
		Description: `Connect the local terminal to a running console server and relay
bytes in both directions until the session ends.

When standard input is a terminal it is switched to raw mode for the
duration: keystrokes reach the server unbuffered, and the server's echo
renders the typing. With input piped from a file or another process the
terminal is left alone and lines are relayed as they are read.

The session ends when the server closes the connection (after 'exit' at
the root menu, or an idle timeout) or when input reaches end of file.`,
		Usage: "console attach [flags] <address>",
		Examples: []cli.Example{
			{
				Description: "Attach to a local server",
				Command:     "console attach 127.0.0.1:7623",
			},
			{
				Description: "Attach over a Unix socket",
				Command:     "console attach --network unix /run/console.sock",
			},
			{
				Description: "Drive a server from a script",
				Command:     "printf 'foo 1\\nexit\\n' | console attach 127.0.0.1:7623",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("attach", pflag.ContinueOnError)
			flagSet.StringVar(&network, "network", "tcp", "connection network, tcp or unix")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("server address required").
					WithHint("The default server address is 127.0.0.1:7623.")
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}
			address := args[0]

			connection, err := net.Dial(network, address)
			if err != nil {
				return cli.Transient("connect to %s: %w", address, err).
					WithHint("Is a console server running there? Start one with 'console serve'.")
			}
			defer connection.Close()

			// SIGINT and SIGTERM cancel the command context; closing the
			// connection unblocks the relay so the deferred terminal
			// restore runs.
			stop := context.AfterFunc(ctx, func() { connection.Close() })
			defer stop()

			stdinFd := int(os.Stdin.Fd())
			if term.IsTerminal(stdinFd) {
				oldState, err := term.MakeRaw(stdinFd)
				if err != nil {
					return cli.Internal("set terminal raw mode: %w", err)
				}
				defer term.Restore(stdinFd, oldState)
			}

			logger.Debug("attached", "network", network, "address", address)
			if err := netutil.Relay(connection, os.Stdin, os.Stdout); err != nil {
				return cli.Transient("session interrupted: %w", err)
			}
			return nil
		},
	}
}
