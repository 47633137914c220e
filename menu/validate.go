// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"fmt"
	"strings"
	"unicode"
)

// Reserved command words implemented by the session at every menu level.
// Items must not claim them: the builtin would shadow the item or the item
// the builtin, depending on resolution order, so validation rejects the
// collision outright.
var reservedWords = map[string]bool{
	"help": true,
	"exit": true,
}

// Validate checks the whole tree rooted at m for well-formedness. It
// returns the first problem found, with the path to the offending menu or
// item in the message, or nil when the tree is sound.
//
// A sound tree has: non-empty menu labels; items with exactly one of
// Handler and Submenu set; non-empty, whitespace-free command words that
// are unique within their menu and avoid the reserved builtin words;
// parameter schemas whose names are non-empty, unique, free of whitespace,
// "=" and a leading "-"; value flags with a non-empty ArgumentName;
// every mandatory parameter declared before any optional one; and no menu
// reachable from itself.
//
// The matcher and the session assume a validated tree; construct sessions
// only over trees Validate accepts.
func (m *Menu) Validate() error {
	return m.validate(nil)
}

// validate walks the tree depth-first. path holds the menus on the descent
// from the root so a submenu edge closing a cycle is caught.
func (m *Menu) validate(path []*Menu) error {
	if m.Label == "" {
		return fmt.Errorf("menu has no label")
	}
	for _, ancestor := range path {
		if ancestor == m {
			return fmt.Errorf("menu %q: menu reachable from itself", m.Label)
		}
	}
	path = append(path, m)

	seen := make(map[string]bool, len(m.Items))
	for _, item := range m.Items {
		if err := m.validateItem(item, seen); err != nil {
			return err
		}
		if item.Submenu != nil {
			if err := item.Submenu.validate(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Menu) validateItem(item *Item, seen map[string]bool) error {
	if item == nil {
		return fmt.Errorf("menu %q: nil item", m.Label)
	}
	if item.Command == "" {
		return fmt.Errorf("menu %q: item has no command word", m.Label)
	}
	if strings.ContainsFunc(item.Command, unicode.IsSpace) {
		return fmt.Errorf("menu %q: command word %q contains whitespace", m.Label, item.Command)
	}
	if reservedWords[item.Command] {
		return fmt.Errorf("menu %q: command word %q is reserved", m.Label, item.Command)
	}
	if seen[item.Command] {
		return fmt.Errorf("menu %q: duplicate command word %q", m.Label, item.Command)
	}
	seen[item.Command] = true

	switch {
	case item.Handler == nil && item.Submenu == nil:
		return fmt.Errorf("menu %q: item %q has neither handler nor submenu", m.Label, item.Command)
	case item.Handler != nil && item.Submenu != nil:
		return fmt.Errorf("menu %q: item %q has both handler and submenu", m.Label, item.Command)
	case item.Submenu != nil && len(item.Parameters) > 0:
		return fmt.Errorf("menu %q: submenu item %q declares parameters", m.Label, item.Command)
	}

	return m.validateParameters(item)
}

func (m *Menu) validateParameters(item *Item) error {
	names := make(map[string]bool, len(item.Parameters))
	optionalSeen := false
	for _, parameter := range item.Parameters {
		where := fmt.Sprintf("menu %q: item %q: parameter %q", m.Label, item.Command, parameter.Name)
		switch {
		case parameter.Name == "":
			return fmt.Errorf("menu %q: item %q: parameter has no name", m.Label, item.Command)
		case strings.ContainsFunc(parameter.Name, unicode.IsSpace):
			return fmt.Errorf("%s: name contains whitespace", where)
		case strings.Contains(parameter.Name, "="):
			return fmt.Errorf("%s: name contains %q", where, "=")
		case strings.HasPrefix(parameter.Name, "-"):
			return fmt.Errorf("%s: name starts with %q", where, "-")
		case names[parameter.Name]:
			return fmt.Errorf("%s: duplicate name", where)
		}
		names[parameter.Name] = true

		switch parameter.Kind {
		case KindMandatory:
			if optionalSeen {
				return fmt.Errorf("%s: mandatory parameter declared after an optional one", where)
			}
		case KindOptional:
			optionalSeen = true
		case KindNamed:
		case KindNamedValue:
			if parameter.ArgumentName == "" {
				return fmt.Errorf("%s: value flag has no argument name", where)
			}
		default:
			return fmt.Errorf("%s: unknown kind %d", where, parameter.Kind)
		}
	}
	return nil
}
