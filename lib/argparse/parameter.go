// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"math"
	"strings"
)

const (
	// VariableArity declares an array parameter as accepting one or
	// more values instead of a fixed count.
	VariableArity = math.MaxInt

	// arrayDelimiter separates array values in the --name=v1,v2,v3 form.
	arrayDelimiter = ","

	// defaultMetaVar is the placeholder shown in usage and help text
	// for a parameter's expected argument when none was set.
	defaultMetaVar = "VALUE"
)

// Parameter is the capability shared by every option variant. The
// built-in variants ([Switch], [Bool], [Int], [Float], [String],
// [StringSlice]) cover the common cases; custom variants implement
// this interface directly, usually by embedding [Param].
type Parameter interface {
	// Name returns the long option name (without the -- prefix).
	Name() string

	// Short returns the single-character short name, or "" if the
	// parameter has none.
	Short() string

	// Description returns the help-table description.
	Description() string

	// MetaVar returns the argument placeholder used in usage and
	// help fragments.
	MetaVar() string

	// Required reports whether the parameter must be invoked. A
	// parameter inside a mutex group must not be required itself;
	// requiredness belongs to the group.
	Required() bool

	// TakesValue reports whether Parse consumes value tokens from
	// the stream. The engine uses it to decide whether a short
	// option may be followed by further characters in a cluster.
	TakesValue() bool

	// Usage returns the short fragment for the usage synopsis line,
	// e.g. "-f FILE".
	Usage() string

	// Help returns the longer fragment for the options table,
	// e.g. "-f, --file FILE".
	Help() string

	// Parse consumes zero or more tokens from the stream and updates
	// the stored value. The engine has already positioned the stream
	// on the option token itself and set the option spelling for
	// error messages.
	Parse(stream *TokenStream) error
}

// Param holds the descriptor fields common to all parameter variants:
// names, description, metavar, and the required flag. It provides the
// default scalar usage/help fragments; variants with a different shape
// (no argument, multiple arguments) override Usage and Help.
type Param struct {
	name        string
	short       string
	description string
	metaVar     string
	required    bool
}

// NewParam returns the descriptor base for a custom parameter variant.
// The built-in New* constructors call this internally.
func NewParam(name, short, description string) Param {
	return Param{
		name:        name,
		short:       short,
		description: description,
		metaVar:     defaultMetaVar,
	}
}

// Name returns the long option name.
func (p *Param) Name() string { return p.name }

// Short returns the short option name, or "" if none.
func (p *Param) Short() string { return p.short }

// Description returns the help-table description.
func (p *Param) Description() string { return p.description }

// MetaVar returns the argument placeholder.
func (p *Param) MetaVar() string { return p.metaVar }

// Required reports whether the parameter must be invoked.
func (p *Param) Required() bool { return p.required }

// TakesValue reports true; variants that consume no tokens override it.
func (p *Param) TakesValue() bool { return true }

// SetDescription replaces the help-table description.
func (p *Param) SetDescription(description string) {
	p.description = description
}

// SetMetaVar sets the argument placeholder shown in usage and help
// text. The value is upper-cased for display.
func (p *Param) SetMetaVar(metaVar string) {
	p.metaVar = strings.ToUpper(metaVar)
}

// SetRequired marks the parameter as required. Do not combine with
// mutex-group membership; mark the group required instead.
func (p *Param) SetRequired() {
	p.required = true
}

// Usage returns the default scalar synopsis fragment: the preferred
// spelling followed by the metavar.
func (p *Param) Usage() string {
	return p.preferredSpelling() + " " + p.metaVar
}

// Help returns the default scalar options-table fragment: both
// spellings followed by the metavar.
func (p *Param) Help() string {
	return p.helpSpelling() + " " + p.metaVar
}

// preferredSpelling is the short form if one exists, else the long
// form. Used in usage lines and group labels.
func (p *Param) preferredSpelling() string {
	if p.short != "" {
		return "-" + p.short
	}
	return "--" + p.name
}

// helpSpelling lists the short form (when present) and the long form.
func (p *Param) helpSpelling() string {
	if p.short != "" {
		return "-" + p.short + ", --" + p.name
	}
	return "--" + p.name
}

// ScalarValue implements the single-value tokenization shared by the
// scalar variants. If the current token carries an inline "=value",
// that value is used (a value containing the array delimiter is
// rejected). Otherwise the next stream token is consumed, unless it
// looks like an option or the stream is exhausted. The value is
// cleaned before being returned: surrounding whitespace trimmed, one
// trailing comma dropped, and one full layer of matching single or
// double quotes stripped.
func ScalarValue(stream *TokenStream) (string, error) {
	current := stream.Current()
	if index := strings.IndexByte(current, '='); index >= 0 {
		value := current[index+1:]
		if strings.Contains(value, arrayDelimiter) {
			return "", usageErrorf(
				"invalid number of arguments to option '%s', expected one",
				stream.Option())
		}
		return cleanToken(value), nil
	}
	if next, ok := stream.Peek(); ok {
		if isOptionToken(next) {
			return "", usageErrorf("expected <value> for option '%s', got '%s'",
				stream.Option(), next)
		}
		return cleanToken(stream.Next()), nil
	}
	return "", usageErrorf("expected <value> for option '%s', got ''",
		stream.Option())
}

// ArrayValues implements the multi-value tokenization used by array
// variants. The inline form "--name=v1,v2,v3" splits on the array
// delimiter; the spaced form consumes subsequent tokens greedily,
// stopping at the next option-shaped token or once the fixed arity is
// reached. Each value is cleaned as in [ScalarValue]. After
// collection the count is validated against arity: a fixed arity must
// match exactly, and [VariableArity] requires at least one value.
func ArrayValues(stream *TokenStream, arity int) ([]string, error) {
	var values []string

	current := stream.Current()
	if index := strings.IndexByte(current, '='); index >= 0 {
		pieces := strings.Split(current[index+1:], arrayDelimiter)
		// A trailing delimiter does not produce an empty value.
		if len(pieces) > 0 && pieces[len(pieces)-1] == "" {
			pieces = pieces[:len(pieces)-1]
		}
		for _, piece := range pieces {
			values = append(values, cleanToken(piece))
		}
	} else if next, ok := stream.Peek(); ok {
		if isOptionToken(next) {
			return nil, usageErrorf("expected argument for option '%s', got '%s'",
				stream.Option(), next)
		}
		for {
			next, ok := stream.Peek()
			if !ok || isOptionToken(next) || len(values) >= arity {
				break
			}
			values = append(values, cleanToken(stream.Next()))
		}
	} else {
		return nil, usageErrorf("expected array of arguments for option '%s', got ''",
			stream.Option())
	}

	if arity != VariableArity && len(values) != arity {
		return nil, usageErrorf("expected %d arguments for option '%s', got %d",
			arity, stream.Option(), len(values))
	}
	if arity == VariableArity && len(values) == 0 {
		return nil, usageErrorf("expected one or more arguments for option '%s', got 0",
			stream.Option())
	}
	return values, nil
}

// cleanToken normalizes a raw value token: trim surrounding
// whitespace, drop one trailing array delimiter, then strip one layer
// of fully wrapping matching quotes.
func cleanToken(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimSuffix(token, arrayDelimiter)
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			token = token[1 : len(token)-1]
		}
	}
	return token
}
