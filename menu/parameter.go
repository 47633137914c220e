// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

// ParameterKind distinguishes the four parameter declaration forms.
type ParameterKind int

const (
	// KindMandatory is a required positional parameter, matched by
	// position among the positional tokens.
	KindMandatory ParameterKind = iota

	// KindOptional is an optional positional parameter, filled after all
	// mandatory ones when enough positional tokens remain.
	KindOptional

	// KindNamed is a presence-only flag: --name, carrying no value.
	KindNamed

	// KindNamedValue is a flag carrying a textual value: --name=value.
	KindNamedValue
)

// String returns the kind name used in diagnostics and help output.
func (k ParameterKind) String() string {
	switch k {
	case KindMandatory:
		return "mandatory"
	case KindOptional:
		return "optional"
	case KindNamed:
		return "named"
	case KindNamedValue:
		return "named value"
	default:
		return "unknown"
	}
}

// Parameter declares one expected argument of a command item. Use the
// [Mandatory], [Optional], [Named], and [NamedValue] constructors rather
// than filling the struct directly.
//
// Values stay textual throughout: the matcher binds the exact bytes the
// user typed and any numeric or boolean interpretation is the handler's
// responsibility.
type Parameter struct {
	// Kind selects the declaration form.
	Kind ParameterKind

	// Name is the parameter name: the positional name shown in help, or
	// the flag name matched against --name tokens. Matching is exact and
	// case-sensitive.
	Name string

	// ArgumentName is the value placeholder shown in help for
	// [KindNamedValue] parameters (for example INT in --level=INT).
	// Empty for the other kinds.
	ArgumentName string

	// Help is the free-text description shown by detailed help. Help
	// derivation substitutes [NoHelpText] when it is empty.
	Help string
}

// Mandatory declares a required positional parameter.
func Mandatory(name, help string) Parameter {
	return Parameter{Kind: KindMandatory, Name: name, Help: help}
}

// Optional declares an optional positional parameter. Optional parameters
// must follow all mandatory ones in the schema; [Menu.Validate] rejects
// schemas that interleave them.
func Optional(name, help string) Parameter {
	return Parameter{Kind: KindOptional, Name: name, Help: help}
}

// Named declares a presence-only flag matched by a --name token.
func Named(name, help string) Parameter {
	return Parameter{Kind: KindNamed, Name: name, Help: help}
}

// NamedValue declares a value-carrying flag matched by a --name=value
// token. argumentName is the placeholder help shows for the value.
func NamedValue(name, argumentName, help string) Parameter {
	return Parameter{Kind: KindNamedValue, Name: name, ArgumentName: argumentName, Help: help}
}

// positional reports whether the parameter is filled from positional
// tokens.
func (p Parameter) positional() bool {
	return p.Kind == KindMandatory || p.Kind == KindOptional
}

// named reports whether the parameter is bound from --name tokens.
func (p Parameter) named() bool {
	return p.Kind == KindNamed || p.Kind == KindNamedValue
}
