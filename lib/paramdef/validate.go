// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramdef

import (
	"fmt"
	"regexp"
)

// namePattern matches valid long option names: start with a letter,
// followed by letters, digits, dashes, or underscores. Anchored to the
// full string.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// validTypes is the closed set of parameter type strings.
var validTypes = map[string]bool{
	TypeSwitch:  true,
	TypeBool:    true,
	TypeInt:     true,
	TypeFloat:   true,
	TypeString:  true,
	TypeStrings: true,
}

// Validate checks a Definition for structural issues. Returns a list
// of human-readable issue descriptions. An empty list means the
// definition compiles cleanly with [Build].
//
// Structural checks include:
//   - Program must be non-empty
//   - At least one parameter is required
//   - Parameter names must be valid, unique, and not "help"/"version"
//   - Short names must be a single character and unique
//   - Type must be one of switch, bool, int, float, string, strings
//   - Default (when present) must agree with the declared type
//   - Arity is only valid on strings parameters and must be >= 0
//   - Group members must reference declared parameters, each at most once
//   - A mutex group member cannot itself be required
//   - Positional arity (when present) must be >= 0
func Validate(definition *Definition) []string {
	var issues []string

	if definition.Program == "" {
		issues = append(issues, "program is required")
	}
	if len(definition.Parameters) == 0 {
		issues = append(issues, "definition has no parameters (at least one is required)")
	}

	names := make(map[string]int, len(definition.Parameters))
	shorts := make(map[string]int, len(definition.Parameters))
	for index, parameter := range definition.Parameters {
		prefix := fmt.Sprintf("parameters[%d]", index)
		issues = append(issues, validateParameter(parameter, prefix)...)

		if parameter.Name != "" {
			if firstIndex, exists := names[parameter.Name]; exists {
				issues = append(issues, fmt.Sprintf(
					"%s %q: duplicate name (first used at parameters[%d])",
					prefix, parameter.Name, firstIndex,
				))
			} else {
				names[parameter.Name] = index
			}
		}
		if parameter.Short != "" {
			if firstIndex, exists := shorts[parameter.Short]; exists {
				issues = append(issues, fmt.Sprintf(
					"%s %q: duplicate short name %q (first used at parameters[%d])",
					prefix, parameter.Name, parameter.Short, firstIndex,
				))
			} else {
				shorts[parameter.Short] = index
			}
		}
	}

	grouped := make(map[string]int)
	for index, group := range definition.Groups {
		prefix := fmt.Sprintf("groups[%d]", index)
		if len(group.Members) == 0 {
			issues = append(issues, prefix+": group has no members")
		}
		if group.Required && !group.Mutex {
			issues = append(issues, prefix+": required is only meaningful on mutex groups")
		}
		for _, member := range group.Members {
			memberIndex, exists := names[member]
			if !exists {
				issues = append(issues, fmt.Sprintf(
					"%s: member %q does not reference a declared parameter", prefix, member))
				continue
			}
			if firstGroup, taken := grouped[member]; taken {
				issues = append(issues, fmt.Sprintf(
					"%s: member %q already belongs to groups[%d]", prefix, member, firstGroup))
				continue
			}
			grouped[member] = index
			if group.Mutex && definition.Parameters[memberIndex].Required {
				issues = append(issues, fmt.Sprintf(
					"%s: member %q of a mutex group can't be required itself, mark the group required instead",
					prefix, member))
			}
		}
	}

	if definition.Positional != nil && definition.Positional.Arity != nil && *definition.Positional.Arity < 0 {
		issues = append(issues, fmt.Sprintf(
			"positional: arity %d can't be negative", *definition.Positional.Arity))
	}

	return issues
}

func validateParameter(parameter Parameter, prefix string) []string {
	var issues []string

	switch {
	case parameter.Name == "":
		issues = append(issues, prefix+": name is required")
	case !namePattern.MatchString(parameter.Name):
		issues = append(issues, fmt.Sprintf("%s %q: invalid name", prefix, parameter.Name))
	case parameter.Name == "help" || parameter.Name == "version":
		issues = append(issues, fmt.Sprintf(
			"%s %q: name collides with a built-in option", prefix, parameter.Name))
	}

	if len(parameter.Short) > 1 {
		issues = append(issues, fmt.Sprintf(
			"%s %q: short name %q must be a single character",
			prefix, parameter.Name, parameter.Short))
	}
	if parameter.Short == "h" {
		issues = append(issues, fmt.Sprintf(
			"%s %q: short name \"h\" collides with the built-in help option",
			prefix, parameter.Name))
	}

	if !validTypes[parameter.Type] {
		issues = append(issues, fmt.Sprintf(
			"%s %q: unknown type %q (must be one of switch, bool, int, float, string, strings)",
			prefix, parameter.Name, parameter.Type))
		return issues
	}

	if parameter.Arity != nil {
		if parameter.Type != TypeStrings {
			issues = append(issues, fmt.Sprintf(
				"%s %q: arity is only valid on strings parameters", prefix, parameter.Name))
		} else if *parameter.Arity < 0 {
			issues = append(issues, fmt.Sprintf(
				"%s %q: arity %d can't be negative", prefix, parameter.Name, *parameter.Arity))
		}
	}

	if parameter.Default != nil {
		if _, err := coerceDefault(parameter.Type, parameter.Default); err != nil {
			issues = append(issues, fmt.Sprintf("%s %q: %v", prefix, parameter.Name, err))
		}
	}

	return issues
}
