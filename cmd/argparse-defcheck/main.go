// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// argparse-defcheck validates a parameter-set definition file (JSONC
// or YAML) and prints the help text the compiled parser would render.
// Exit code 0 means the definition is valid, 1 means it has issues,
// 2 means the invocation itself was wrong.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/argparse/lib/argparse"
	"github.com/bureau-foundation/argparse/lib/paramdef"
	"github.com/bureau-foundation/argparse/lib/version"
)

var quiet = argparse.NewSwitch("quiet", "q", false, "Only validate, don't render the help text")

func main() {
	os.Exit(run())
}

func run() int {
	parser := argparse.New("argparse-defcheck").
		SetVersion(version.Info()).
		SetDescription("Validate a parameter-set definition file").
		SetExample("argparse-defcheck deploy/params/example.jsonc").
		SetPositionalArity(1).
		SetPositionalUsage("DEFINITION")
	parser.Add(quiet)

	if err := parser.Parse(os.Args[1:]); err != nil {
		var exit *argparse.ExitError
		if errors.As(err, &exit) {
			fmt.Print(exit.Output)
			return exit.Code
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	path := parser.Positionals()[0]
	definition, err := paramdef.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if issues := paramdef.Validate(definition); len(issues) > 0 {
		fmt.Fprintf(os.Stderr, "%s: %d issue(s):\n", path, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue)
		}
		return 1
	}

	compiled, _, err := paramdef.Build(definition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("%s: ok (%d parameters)\n", paramdef.NameFromPath(path), len(definition.Parameters))
	if !quiet.Value() {
		fmt.Print(compiled.Help())
	}
	return 0
}
