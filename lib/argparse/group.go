// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"fmt"
	"strings"
)

// group records the relationship between a set of co-registered
// parameters. A plain group only affects usage-line layout; a mutex
// group additionally enforces at-most-one invocation, and a required
// mutex group exactly-one.
type group struct {
	members  []Parameter
	mutex    bool
	required bool

	// invoked is the mutex-group member that has already been parsed,
	// used to reject a second member and to satisfy the required check.
	invoked Parameter
}

func newGroup(members []Parameter, mutex, required bool) *group {
	if mutex {
		for _, member := range members {
			if member.Required() {
				panic(fmt.Sprintf(
					"argparse: parameter '%s' in a mutually exclusive group can't be required itself, mark the group required instead",
					member.Name()))
			}
		}
	}
	return &group{members: members, mutex: mutex, required: required}
}

// label renders the group for diagnostics and usage text: the
// preferred spelling of every member, comma-joined.
func (g *group) label() string {
	spellings := make([]string, len(g.members))
	for i, member := range g.members {
		spellings[i] = preferredSpellingOf(member)
	}
	return strings.Join(spellings, ", ")
}

// preferredSpellingOf is the short form if the parameter has one, else
// the long form. Mirrors Param.preferredSpelling for arbitrary
// Parameter implementations.
func preferredSpellingOf(p Parameter) string {
	if short := p.Short(); short != "" {
		return "-" + short
	}
	return "--" + p.Name()
}
