// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import "strings"

// TokenStream is a forward-only cursor over the raw argument vector.
// The parsing engine creates one per Parse call and hands it to each
// dispatched [Parameter]; the stream is never rewound.
//
// Besides the cursor, the stream carries the user-facing spelling of
// the option currently being resolved ("-x" or "--name"), set by the
// engine before dispatch. Parameter implementations read it through
// [TokenStream.Option] so their error messages cite the exact form the
// user typed rather than an internal identifier.
type TokenStream struct {
	args    []string
	index   int
	current string
	option  string
}

func newTokenStream(args []string) *TokenStream {
	return &TokenStream{args: args}
}

// HasNext reports whether at least one unconsumed token remains.
func (ts *TokenStream) HasNext() bool {
	return ts.index < len(ts.args)
}

// Peek returns the next token without consuming it. The second return
// is false when the stream is exhausted.
func (ts *TokenStream) Peek() (string, bool) {
	if !ts.HasNext() {
		return "", false
	}
	return ts.args[ts.index], true
}

// Next consumes and returns the next token. Callers must check HasNext
// first; calling Next on an exhausted stream is a programming error
// and panics.
func (ts *TokenStream) Next() string {
	if !ts.HasNext() {
		panic("argparse: TokenStream.Next called on exhausted stream")
	}
	ts.current = ts.args[ts.index]
	ts.index++
	return ts.current
}

// Current returns the token most recently returned by Next.
func (ts *TokenStream) Current() string {
	return ts.current
}

// Option returns the user-facing spelling of the option currently
// being resolved.
func (ts *TokenStream) Option() string {
	return ts.option
}

func (ts *TokenStream) setOption(option string) {
	ts.option = option
}

// optionSpelling strips a trailing "=value" part from a raw token,
// leaving the spelling suitable for error messages.
func optionSpelling(token string) string {
	if index := strings.IndexByte(token, '='); index >= 0 {
		return token[:index]
	}
	return token
}

// isOptionToken reports whether a token looks like an option: it
// starts with "-" or "--" and is not the bare "-" or "--" literal
// (both of which are treated as positional arguments).
func isOptionToken(token string) bool {
	if token == "-" || token == "--" {
		return false
	}
	return len(token) > 0 && token[0] == '-'
}
