// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramdef

import (
	"strings"
	"testing"
)

func intPointer(value int) *int { return &value }

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		definition     *Definition
		expectedIssues int
		wantSubstrings []string
	}{
		{
			name: "valid minimal definition",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "verbose", Short: "v", Type: TypeSwitch},
				},
			},
			expectedIssues: 0,
		},
		{
			name: "valid definition with groups and defaults",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "file", Short: "f", Type: TypeString},
					{Name: "url", Short: "u", Type: TypeString},
					{Name: "count", Type: TypeInt, Default: 3},
					{Name: "tags", Type: TypeStrings, Arity: intPointer(2)},
				},
				Groups: []Group{
					{Mutex: true, Required: true, Members: []string{"file", "url"}},
				},
				Positional: &Positional{Arity: intPointer(0)},
			},
			expectedIssues: 0,
		},
		{
			name:           "empty definition",
			definition:     &Definition{},
			expectedIssues: 2,
			wantSubstrings: []string{"program is required", "no parameters"},
		},
		{
			name: "duplicate names",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "file", Short: "f", Type: TypeString},
					{Name: "file", Short: "f", Type: TypeString},
				},
			},
			expectedIssues: 2,
			wantSubstrings: []string{"duplicate name", "duplicate short name"},
		},
		{
			name: "built-in collisions",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "help", Type: TypeSwitch},
					{Name: "host", Short: "h", Type: TypeString},
				},
			},
			expectedIssues: 2,
			wantSubstrings: []string{"collides with a built-in option", `short name "h"`},
		},
		{
			name: "unknown type and bad short",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "mode", Short: "mo", Type: "enum"},
				},
			},
			expectedIssues: 2,
			wantSubstrings: []string{"must be a single character", `unknown type "enum"`},
		},
		{
			name: "default type mismatch",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "count", Type: TypeInt, Default: "three"},
					{Name: "ratio", Type: TypeFloat, Default: true},
					{Name: "tags", Type: TypeStrings, Default: "a"},
				},
			},
			expectedIssues: 3,
			wantSubstrings: []string{
				"not an integer",
				"not a number",
				"default is not supported for strings parameters",
			},
		},
		{
			name: "fractional int default",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "count", Type: TypeInt, Default: 1.5},
				},
			},
			expectedIssues: 1,
			wantSubstrings: []string{"not an integer"},
		},
		{
			name: "arity misuse",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "file", Type: TypeString, Arity: intPointer(2)},
					{Name: "tags", Type: TypeStrings, Arity: intPointer(-1)},
				},
			},
			expectedIssues: 2,
			wantSubstrings: []string{"only valid on strings parameters", "can't be negative"},
		},
		{
			name: "group problems",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "file", Type: TypeString, Required: true},
					{Name: "url", Type: TypeString},
				},
				Groups: []Group{
					{Mutex: true, Members: []string{"file", "ghost"}},
					{Mutex: true, Members: []string{"file", "url"}},
					{Required: true, Members: []string{}},
				},
			},
			expectedIssues: 5,
			wantSubstrings: []string{
				"does not reference a declared parameter",
				"can't be required itself",
				"already belongs to groups[0]",
				"group has no members",
				"required is only meaningful on mutex groups",
			},
		},
		{
			name: "negative positional arity",
			definition: &Definition{
				Program: "tool",
				Parameters: []Parameter{
					{Name: "verbose", Type: TypeSwitch},
				},
				Positional: &Positional{Arity: intPointer(-2)},
			},
			expectedIssues: 1,
			wantSubstrings: []string{"arity -2 can't be negative"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			issues := Validate(test.definition)
			if len(issues) != test.expectedIssues {
				t.Errorf("Validate() returned %d issues, want %d:\n%s",
					len(issues), test.expectedIssues, strings.Join(issues, "\n"))
			}
			joined := strings.Join(issues, "\n")
			for _, want := range test.wantSubstrings {
				if !strings.Contains(joined, want) {
					t.Errorf("Validate() issues missing %q:\n%s", want, joined)
				}
			}
		})
	}
}
