// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bureau-foundation/console/menu"
)

// demoTree builds the menu tree used by the demo, tui, and serve
// subcommands: a root with a parameterized command, a trivial command,
// and one submenu, enough to exercise matching, help derivation, and
// navigation from any front-end.
func demoTree() *menu.Menu {
	return &menu.Menu{
		Label: "demo",
		Entry: func(output io.Writer, _ any) {
			fmt.Fprintln(output, "demo console; 'help' lists commands")
		},
		Items: []*menu.Item{
			{
				Command: "foo",
				Help:    "echo its arguments back, demonstrating the parameter kinds",
				Parameters: []menu.Parameter{
					menu.Mandatory("a", "required first value"),
					menu.Optional("b", "optional second value"),
					menu.Named("verbose", "also print every binding"),
					menu.NamedValue("level", "INT", "numeric detail level"),
				},
				Handler: runFoo,
			},
			{
				Command: "bar",
				Help:    "print a fixed line",
				Handler: func(invocation *menu.Invocation) error {
					fmt.Fprintln(invocation.Output, "bar!")
					return nil
				},
			},
			{
				Command: "sub",
				Help:    "enter the sub-menu",
				Submenu: &menu.Menu{
					Label: "sub",
					Entry: func(output io.Writer, _ any) {
						fmt.Fprintln(output, "two more commands live here")
					},
					Exit: func(output io.Writer, _ any) {
						fmt.Fprintln(output, "leaving sub")
					},
					Items: []*menu.Item{
						{
							Command: "baz",
							Help:    "do a baz",
							Handler: func(invocation *menu.Invocation) error {
								fmt.Fprintln(invocation.Output, "baz done")
								return nil
							},
						},
						{
							Command: "quux",
							Help:    "report the current depth and path",
							Handler: func(invocation *menu.Invocation) error {
								fmt.Fprintf(invocation.Output, "depth %d at %v\n",
									invocation.Navigator.Depth(), invocation.Navigator.Path())
								return nil
							},
						},
					},
				},
			},
		},
	}
}

// runFoo prints the bound arguments. With --verbose it also dumps the
// full binding table, supplied or not.
func runFoo(invocation *menu.Invocation) error {
	// Validate before writing anything, so a bad level does not leave a
	// partial line in front of the error report.
	level, levelSupplied := 0, false
	if value, ok := invocation.Args.Value("level"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("level must be an integer, got %q", value)
		}
		level, levelSupplied = parsed, true
	}

	a, _ := invocation.Args.Value("a")
	fmt.Fprintf(invocation.Output, "foo a=%s", a)
	if b, ok := invocation.Args.Value("b"); ok {
		fmt.Fprintf(invocation.Output, " b=%s", b)
	}
	if levelSupplied {
		fmt.Fprintf(invocation.Output, " level=%d", level)
	}
	fmt.Fprintln(invocation.Output)

	if invocation.Args.Present("verbose") {
		for _, binding := range invocation.Args.Bindings() {
			fmt.Fprintf(invocation.Output, "  %s supplied=%t value=%q\n",
				binding.Parameter.Name, binding.Supplied, binding.Value)
		}
	}
	return nil
}
