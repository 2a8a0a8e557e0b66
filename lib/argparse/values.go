// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDisplayedMetaVars bounds how many metavars an array parameter
// spells out in usage/help fragments before collapsing to the
// "META [META...]" form.
const maxDisplayedMetaVars = 3

// Switch is a no-argument boolean parameter. Each invocation toggles
// the stored value; it never consumes tokens, which is what allows
// several switches to share one short-option cluster.
type Switch struct {
	Param
	value bool
}

// NewSwitch creates a switch parameter with the given default value.
// Pass "" for short to register only the long name.
func NewSwitch(name, short string, defaultValue bool, description string) *Switch {
	return &Switch{Param: NewParam(name, short, description), value: defaultValue}
}

// TakesValue reports false: a switch consumes no tokens.
func (s *Switch) TakesValue() bool { return false }

// Usage returns the preferred spelling with no metavar.
func (s *Switch) Usage() string { return s.preferredSpelling() }

// Help returns both spellings with no metavar.
func (s *Switch) Help() string { return s.helpSpelling() }

// Parse toggles the stored value without touching the stream.
func (s *Switch) Parse(*TokenStream) error {
	s.value = !s.value
	return nil
}

// Value returns the stored boolean.
func (s *Switch) Value() bool { return s.value }

// Bool is a boolean parameter taking an explicit true/yes or false/no
// argument (case-sensitive).
type Bool struct {
	Param
	value bool
}

// NewBool creates a boolean parameter with the given default value.
func NewBool(name, short string, defaultValue bool, description string) *Bool {
	return &Bool{Param: NewParam(name, short, description), value: defaultValue}
}

// Parse reads one value token and maps the literals true/yes and
// false/no onto the stored boolean.
func (b *Bool) Parse(stream *TokenStream) error {
	token, err := ScalarValue(stream)
	if err != nil {
		return err
	}
	switch token {
	case "true", "yes":
		b.value = true
	case "false", "no":
		b.value = false
	default:
		return usageErrorf("invalid argument '%s' for option '--%s'", token, b.Name())
	}
	return nil
}

// Value returns the stored boolean.
func (b *Bool) Value() bool { return b.value }

// Int is an integer parameter.
type Int struct {
	Param
	value int
}

// NewInt creates an integer parameter with the given default value.
func NewInt(name, short string, defaultValue int, description string) *Int {
	return &Int{Param: NewParam(name, short, description), value: defaultValue}
}

// Parse reads one value token and parses it as a decimal integer.
func (i *Int) Parse(stream *TokenStream) error {
	token, err := ScalarValue(stream)
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return usageErrorf("invalid argument '%s' for option '--%s'", token, i.Name())
	}
	i.value = value
	return nil
}

// Value returns the stored integer.
func (i *Int) Value() int { return i.value }

// Float is a floating-point parameter.
type Float struct {
	Param
	value float64
}

// NewFloat creates a floating-point parameter with the given default
// value.
func NewFloat(name, short string, defaultValue float64, description string) *Float {
	return &Float{Param: NewParam(name, short, description), value: defaultValue}
}

// Parse reads one value token and parses it as a floating-point
// literal.
func (f *Float) Parse(stream *TokenStream) error {
	token, err := ScalarValue(stream)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return usageErrorf("invalid argument '%s' for option '--%s'", token, f.Name())
	}
	f.value = value
	return nil
}

// Value returns the stored float.
func (f *Float) Value() float64 { return f.value }

// String is a string parameter.
type String struct {
	Param
	value string
}

// NewString creates a string parameter with the given default value.
func NewString(name, short string, defaultValue string, description string) *String {
	return &String{Param: NewParam(name, short, description), value: defaultValue}
}

// Parse reads one value token.
func (s *String) Parse(stream *TokenStream) error {
	token, err := ScalarValue(stream)
	if err != nil {
		return err
	}
	s.value = token
	return nil
}

// Value returns the stored string.
func (s *String) Value() string { return s.value }

// StringSlice is an array-of-strings parameter with a declared arity:
// a fixed count, or [VariableArity] for one-or-more.
type StringSlice struct {
	Param
	value []string
	arity int
}

// NewStringSlice creates an array parameter. arity is the exact number
// of values the parameter consumes, or [VariableArity] for one or
// more. A negative arity is a programmer error and panics.
func NewStringSlice(name, short string, arity int, description string) *StringSlice {
	if arity < 0 {
		panic(fmt.Sprintf("argparse: invalid arity %d for parameter '%s', arity can't be negative",
			arity, name))
	}
	return &StringSlice{Param: NewParam(name, short, description), arity: arity}
}

// Usage spells out the metavar once per value for small fixed arities
// and collapses to "META [META...]" otherwise.
func (s *StringSlice) Usage() string {
	return s.preferredSpelling() + " " + s.metaVars()
}

// Help is the options-table variant of [StringSlice.Usage].
func (s *StringSlice) Help() string {
	return s.helpSpelling() + " " + s.metaVars()
}

func (s *StringSlice) metaVars() string {
	if s.arity != VariableArity && s.arity >= 1 && s.arity <= maxDisplayedMetaVars {
		parts := make([]string, s.arity)
		for i := range parts {
			parts[i] = s.MetaVar()
		}
		return strings.Join(parts, " ")
	}
	return s.MetaVar() + " [" + s.MetaVar() + "...]"
}

// Parse collects the parameter's values, bounded by its arity.
func (s *StringSlice) Parse(stream *TokenStream) error {
	values, err := ArrayValues(stream, s.arity)
	if err != nil {
		return err
	}
	s.value = values
	return nil
}

// Value returns the collected values. It is nil until the parameter
// has been invoked.
func (s *StringSlice) Value() []string { return s.value }
