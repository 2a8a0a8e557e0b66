// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package argparse parses command-line arguments against a declared set
// of typed parameters, producing typed values, a positional-argument
// list, and auto-generated help text.
//
// The central type is [Parser]. Parameters are created with the New*
// constructors ([NewSwitch], [NewBool], [NewInt], [NewFloat],
// [NewString], [NewStringSlice]), registered with [Parser.Add],
// [Parser.AddGroup], or [Parser.AddMutex], and read through their
// Value accessors after [Parser.Parse] returns.
//
// Every parameter has a long name (--name) and optionally a single-
// character short name (-n). Values are accepted as "--name value" or
// "--name=value"; array parameters additionally accept
// "--name=v1,v2,v3" or "--name v1 v2 v3" (the space form stops at the
// declared arity or at the next option-shaped token). Short switches
// combine into clusters ("-abc"); a value-taking short option must be
// the last character of its cluster. Tokens that are not options are
// collected as positional arguments, which by default may only appear
// after all options.
//
// Parsing never terminates the process. The built-in --help and
// --version switches cause [Parser.Parse] to return an [*ExitError]
// carrying the rendered output and a zero exit code; all other
// parse-time failures are end-user input errors that match
// [ErrUsage] under [errors.Is]. Mistakes in the parameter declaration
// itself (duplicate names, a required member inside a mutex group,
// negative arity) are programmer errors and panic during setup.
//
// Custom parameter variants implement the [Parameter] interface,
// typically by embedding [Param] for the descriptor fields and the
// default usage/help fragments, and implementing Parse with
// [ScalarValue] or [ArrayValues].
//
// A Parser is not safe for concurrent use: invocation flags on the
// registered parameters are stateful, so a single instance must not
// serve overlapping Parse calls.
package argparse
