// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import "strings"

// Binding describes how one declared parameter fared during a match.
type Binding struct {
	// Parameter is the declaration the binding belongs to.
	Parameter Parameter

	// Supplied reports whether the invocation provided the parameter: a
	// positional token for mandatory and optional parameters, a --name
	// token for named flags, or a --name=value token for value flags.
	Supplied bool

	// Value is the bound text. Meaningful only when Supplied is true and
	// the parameter kind carries a value; a supplied --name=value flag
	// with an empty right-hand side binds the empty string.
	Value string
}

// Args is the bound argument set produced by a successful [Match]: one
// [Binding] per declared parameter, in declaration order, plus the names
// of any supplied flags the schema does not declare. Its lifetime is one
// dispatch; sessions never retain it.
type Args struct {
	bindings []Binding
	unknown  []string
}

// Value returns the text bound to the named value-bearing parameter and
// whether the invocation supplied it. Unsupplied optionals and flags, and
// names the schema does not declare, report false.
func (a *Args) Value(name string) (string, bool) {
	for i := range a.bindings {
		if a.bindings[i].Parameter.Name == name {
			return a.bindings[i].Value, a.bindings[i].Supplied
		}
	}
	return "", false
}

// Present reports whether the named parameter was supplied. For [Named]
// flags this is the presence query; for the value-bearing kinds it is
// equivalent to the second result of [Args.Value].
func (a *Args) Present(name string) bool {
	for i := range a.bindings {
		if a.bindings[i].Parameter.Name == name {
			return a.bindings[i].Supplied
		}
	}
	return false
}

// Lookup returns the full binding for name. Querying a name that no
// parameter in the schema declares returns an [*Error] with
// [CategoryUnknownArgument], distinguishing "declared but not supplied"
// (a zero-Supplied binding, nil error) from "not declared at all".
func (a *Args) Lookup(name string) (Binding, error) {
	for i := range a.bindings {
		if a.bindings[i].Parameter.Name == name {
			return a.bindings[i], nil
		}
	}
	return Binding{}, UnknownArgument("no such argument %q", name)
}

// Unknown returns the names of supplied --flags that no parameter in the
// schema declares, in order of first appearance. Unknown flags do not fail
// the match; the session decides whether to report them.
func (a *Args) Unknown() []string {
	return a.unknown
}

// Bindings returns the binding for every declared parameter in declaration
// order, independent of what the invocation supplied.
func (a *Args) Bindings() []Binding {
	return a.bindings
}

// Match binds raw argument tokens against a declared parameter schema,
// producing either a complete [Args] set or a classified [*Error].
//
// Tokens beginning with -- are named: the text after the prefix splits at
// the first = into a flag name and an optional value. A [Named] parameter
// matches a bare --name token; giving it a value is malformed. A
// [NamedValue] parameter requires --name=value; omitting the =value part
// is malformed, while --name= binds the empty string. A bare -- with no
// name is malformed. Flag names the schema does not declare are recorded
// on the result (see [Args.Unknown]) without failing the match. When the
// same flag appears more than once, the last occurrence wins.
//
// All other tokens are positional and fill the schema's mandatory then
// optional parameters in declaration order, wherever the named tokens were
// interleaved. Fewer positional tokens than mandatory parameters fail with
// [CategoryInsufficientArguments]; more than the schema declares fail with
// [CategoryTooManyArguments]. Unfilled optionals are recorded absent.
//
// Matching is case-sensitive and exact on names. Match assumes a schema
// that [Menu.Validate] accepts; in particular every mandatory parameter
// precedes every optional one.
func Match(parameters []Parameter, tokens []string) (*Args, error) {
	args := &Args{bindings: make([]Binding, len(parameters))}
	positionals := make([]int, 0, len(parameters))
	mandatoryCount := 0
	for i, parameter := range parameters {
		args.bindings[i].Parameter = parameter
		if parameter.positional() {
			positionals = append(positionals, i)
		}
		if parameter.Kind == KindMandatory {
			mandatoryCount++
		}
	}

	nextPositional := 0
	for _, token := range tokens {
		if strings.HasPrefix(token, "--") {
			if err := args.bindNamed(parameters, token); err != nil {
				return nil, err
			}
			continue
		}
		if nextPositional >= len(positionals) {
			return nil, TooManyArguments("too many arguments: unexpected %q", token)
		}
		binding := &args.bindings[positionals[nextPositional]]
		binding.Value = token
		binding.Supplied = true
		nextPositional++
	}

	if nextPositional < mandatoryCount {
		missing := parameters[positionals[nextPositional]]
		return nil, InsufficientArguments("insufficient arguments: %q is required", missing.Name)
	}
	return args, nil
}

// bindNamed resolves one --token against the schema's flag parameters.
func (a *Args) bindNamed(parameters []Parameter, token string) error {
	name, value, hasValue := strings.Cut(strings.TrimPrefix(token, "--"), "=")
	if name == "" {
		return MalformedArgument("malformed argument %q: missing flag name", token)
	}
	for i, parameter := range parameters {
		if !parameter.named() || parameter.Name != name {
			continue
		}
		switch parameter.Kind {
		case KindNamed:
			if hasValue {
				return MalformedArgument("argument --%s does not take a value", name)
			}
		case KindNamedValue:
			if !hasValue {
				return MalformedArgument("argument --%s requires a value: --%s=%s",
					name, name, parameter.ArgumentName)
			}
			a.bindings[i].Value = value
		}
		a.bindings[i].Supplied = true
		return nil
	}
	for _, seen := range a.unknown {
		if seen == name {
			return nil
		}
	}
	a.unknown = append(a.unknown, name)
	return nil
}
