// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import "fmt"

// ExitError is returned by [Parser.Parse] when the built-in --help or
// --version switch was invoked. It carries the fully rendered output
// and the exit code the process should use (zero for both built-ins).
//
// The library never terminates the process itself. Callers are
// expected to check for this type, print Output, and exit:
//
//	if err := parser.Parse(os.Args[1:]); err != nil {
//	    var exit *argparse.ExitError
//	    if errors.As(err, &exit) {
//	        fmt.Print(exit.Output)
//	        os.Exit(exit.Code)
//	    }
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//
// Returning the outcome instead of exiting keeps the short-circuit
// behavior interceptable by tests and by embedding applications.
type ExitError struct {
	// Code is the process exit code the caller should use.
	Code int

	// Output is the rendered help or version text.
	Output string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. Callers that dispatch on a generic
// error can check for this interface instead of the concrete type.
func (e *ExitError) ExitCode() int {
	return e.Code
}
