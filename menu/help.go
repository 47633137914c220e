// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import "strings"

// NoHelpText is the sentinel substituted for items and parameters that
// declare no help text.
const NoHelpText = "no help text found"

// HelpEntry is the structured help derived from one item. Derivation is
// independent of any particular invocation: every declared parameter
// appears exactly once, in declaration order, whatever a given command
// line supplied.
type HelpEntry struct {
	// Command is the item's command word.
	Command string

	// Help is the item's free-text description, or [NoHelpText].
	Help string

	// Submenu reports whether the item descends into a nested menu
	// rather than running a handler.
	Submenu bool

	// Parameters describe the declared schema, in declaration order.
	// Empty for submenu items.
	Parameters []ParameterHelp
}

// ParameterHelp is the help data for one declared parameter.
type ParameterHelp struct {
	// Kind is the declaration form.
	Kind ParameterKind

	// Name is the parameter or flag name.
	Name string

	// ArgumentName is the value placeholder for value flags, empty
	// otherwise.
	ArgumentName string

	// Help is the parameter's description, or [NoHelpText].
	Help string

	// Label is the parameter as it appears in a synopsis: <name> for
	// mandatory, [name] for optional, --name for flags, --name=ARG for
	// value flags.
	Label string
}

// ItemHelp derives the help data for item.
func ItemHelp(item *Item) HelpEntry {
	entry := HelpEntry{
		Command: item.Command,
		Help:    item.Help,
		Submenu: item.Submenu != nil,
	}
	if entry.Help == "" {
		entry.Help = NoHelpText
	}
	if len(item.Parameters) > 0 {
		entry.Parameters = make([]ParameterHelp, len(item.Parameters))
		for i, parameter := range item.Parameters {
			entry.Parameters[i] = parameterHelp(parameter)
		}
	}
	return entry
}

func parameterHelp(parameter Parameter) ParameterHelp {
	help := ParameterHelp{
		Kind:         parameter.Kind,
		Name:         parameter.Name,
		ArgumentName: parameter.ArgumentName,
		Help:         parameter.Help,
		Label:        parameterLabel(parameter),
	}
	if help.Help == "" {
		help.Help = NoHelpText
	}
	return help
}

func parameterLabel(parameter Parameter) string {
	switch parameter.Kind {
	case KindMandatory:
		return "<" + parameter.Name + ">"
	case KindOptional:
		return "[" + parameter.Name + "]"
	case KindNamed:
		return "--" + parameter.Name
	case KindNamedValue:
		return "--" + parameter.Name + "=" + parameter.ArgumentName
	default:
		return parameter.Name
	}
}

// Synopsis builds the one-line usage form for item: the command word
// followed by each parameter's label, flags bracketed as optional.
// Submenu items have no parameters, so their synopsis is the bare word.
func Synopsis(item *Item) string {
	var b strings.Builder
	b.WriteString(item.Command)
	for _, parameter := range item.Parameters {
		b.WriteByte(' ')
		label := parameterLabel(parameter)
		if parameter.named() {
			label = "[" + label + "]"
		}
		b.WriteString(label)
	}
	return b.String()
}
