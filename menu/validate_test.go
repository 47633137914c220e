// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"strings"
	"testing"
)

func nopHandler(*Invocation) error { return nil }

func TestValidateAcceptsSoundTree(t *testing.T) {
	root := &Menu{
		Label: "root",
		Items: []*Item{
			{
				Command:    "foo",
				Help:       "makes a foo appear",
				Handler:    nopHandler,
				Parameters: testParameters(),
			},
			{Command: "bar", Help: "fandoggles a bar", Handler: nopHandler},
			{
				Command: "sub",
				Help:    "enter sub-menu",
				Submenu: &Menu{
					Label: "sub",
					Items: []*Item{
						{Command: "baz", Handler: nopHandler},
						{Command: "quux", Handler: nopHandler},
					},
				},
			},
		},
	}

	if err := root.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		menu    *Menu
		wantErr string
	}{
		{
			name:    "menu without label",
			menu:    &Menu{},
			wantErr: "no label",
		},
		{
			name: "item without command word",
			menu: &Menu{Label: "root", Items: []*Item{
				{Handler: nopHandler},
			}},
			wantErr: "no command word",
		},
		{
			name: "command word with whitespace",
			menu: &Menu{Label: "root", Items: []*Item{
				{Command: "two words", Handler: nopHandler},
			}},
			wantErr: "whitespace",
		},
		{
			name: "reserved command word",
			menu: &Menu{Label: "root", Items: []*Item{
				{Command: "help", Handler: nopHandler},
			}},
			wantErr: "reserved",
		},
		{
			name: "duplicate command word",
			menu: &Menu{Label: "root", Items: []*Item{
				{Command: "foo", Handler: nopHandler},
				{Command: "foo", Handler: nopHandler},
			}},
			wantErr: "duplicate",
		},
		{
			name: "item with neither handler nor submenu",
			menu: &Menu{Label: "root", Items: []*Item{
				{Command: "foo"},
			}},
			wantErr: "neither handler nor submenu",
		},
		{
			name: "item with both handler and submenu",
			menu: &Menu{Label: "root", Items: []*Item{
				{Command: "foo", Handler: nopHandler, Submenu: &Menu{Label: "sub"}},
			}},
			wantErr: "both handler and submenu",
		},
		{
			name: "submenu item with parameters",
			menu: &Menu{Label: "root", Items: []*Item{
				{
					Command:    "sub",
					Submenu:    &Menu{Label: "sub"},
					Parameters: []Parameter{Mandatory("a", "")},
				},
			}},
			wantErr: "declares parameters",
		},
		{
			name: "mandatory after optional",
			menu: &Menu{Label: "root", Items: []*Item{
				{
					Command: "foo",
					Handler: nopHandler,
					Parameters: []Parameter{
						Optional("b", ""),
						Mandatory("a", ""),
					},
				},
			}},
			wantErr: "mandatory parameter declared after an optional one",
		},
		{
			name: "duplicate parameter name",
			menu: &Menu{Label: "root", Items: []*Item{
				{
					Command: "foo",
					Handler: nopHandler,
					Parameters: []Parameter{
						Mandatory("a", ""),
						Named("a", ""),
					},
				},
			}},
			wantErr: "duplicate name",
		},
		{
			name: "parameter name with equals sign",
			menu: &Menu{Label: "root", Items: []*Item{
				{
					Command:    "foo",
					Handler:    nopHandler,
					Parameters: []Parameter{Named("a=b", "")},
				},
			}},
			wantErr: "contains",
		},
		{
			name: "parameter name with leading dash",
			menu: &Menu{Label: "root", Items: []*Item{
				{
					Command:    "foo",
					Handler:    nopHandler,
					Parameters: []Parameter{Named("-a", "")},
				},
			}},
			wantErr: "starts with",
		},
		{
			name: "value flag without argument name",
			menu: &Menu{Label: "root", Items: []*Item{
				{
					Command:    "foo",
					Handler:    nopHandler,
					Parameters: []Parameter{{Kind: KindNamedValue, Name: "level"}},
				},
			}},
			wantErr: "no argument name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.menu.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	inner := &Menu{Label: "inner"}
	outer := &Menu{Label: "outer", Items: []*Item{
		{Command: "down", Submenu: inner},
	}}
	inner.Items = []*Item{
		{Command: "around", Submenu: outer},
	}

	err := outer.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want cycle error")
	}
	if !strings.Contains(err.Error(), "reachable from itself") {
		t.Errorf("Validate() = %q, want it to mention the cycle", err)
	}
}

func TestValidateDescendsIntoSubmenus(t *testing.T) {
	root := &Menu{Label: "root", Items: []*Item{
		{
			Command: "sub",
			Submenu: &Menu{Label: "sub", Items: []*Item{
				{Command: "exit", Handler: nopHandler},
			}},
		},
	}}

	err := root.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want reserved-word error from submenu")
	}
	if !strings.Contains(err.Error(), "reserved") {
		t.Errorf("Validate() = %q, want it to mention the reserved word", err)
	}
}
