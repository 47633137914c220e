// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/console/menu"
)

// builtinHelp implements the help command: with no argument it lists the
// current menu, with one argument it details that command's parameters.
func (s *Session) builtinHelp(tokens []string) error {
	switch len(tokens) {
	case 0:
		return s.helpList()
	case 1:
		return s.helpDetail(tokens[0])
	default:
		return s.report(menu.TooManyArguments("too many arguments: help takes at most one command"))
	}
}

// helpList prints one line per item in the current menu, then the builtin
// words. Items show the first line of their help text, or the bare command
// word when they have none.
func (s *Session) helpList() error {
	var b strings.Builder
	for _, item := range s.Current().Items {
		if item.Help == "" {
			fmt.Fprintf(&b, "%s\n", item.Command)
			continue
		}
		fmt.Fprintf(&b, "%s - %s\n", item.Command, firstLine(item.Help))
	}
	if s.Depth() > 1 {
		b.WriteString("exit - leave this menu.\n")
	}
	b.WriteString("help - print this help text.\n")
	return s.write(b.String())
}

// helpDetail prints the synopsis, parameter table, and full description
// for one command in the current menu. The parameter table precedes the
// description so a long description never buries the schema.
func (s *Session) helpDetail(command string) error {
	switch command {
	case "help":
		return s.write("Usage: help [command]\n\nList the current menu, or show detailed help for one command.\n")
	case "exit":
		return s.write("Usage: exit\n\nLeave the current menu.\n")
	}

	item := s.Current().Find(command)
	if item == nil {
		return s.reportUnrecognized(command)
	}

	entry := menu.ItemHelp(item)
	var b bytes.Buffer
	fmt.Fprintf(&b, "Usage: %s\n", menu.Synopsis(item))
	if len(entry.Parameters) > 0 {
		b.WriteString("\nParameters:\n")
		tw := tabwriter.NewWriter(&b, 2, 0, 3, ' ', 0)
		for _, parameter := range entry.Parameters {
			fmt.Fprintf(tw, "  %s\t%s\n", parameter.Label, parameter.Help)
		}
		tw.Flush()
	}
	fmt.Fprintf(&b, "\n%s", entry.Help)
	if !strings.HasSuffix(entry.Help, "\n") {
		b.WriteByte('\n')
	}
	return s.write(b.String())
}

// firstLine returns text up to the first newline.
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
