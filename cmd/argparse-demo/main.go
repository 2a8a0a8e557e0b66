// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// argparse-demo exercises the argparse library end to end: a switch, a
// required mutually exclusive input pair, typed value options, and the
// generated help text. Run it with --help to see the rendered output.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/argparse/lib/argparse"
	"github.com/bureau-foundation/argparse/lib/version"
)

var (
	active     = argparse.NewSwitch("active", "a", false, "Switches mode to active")
	inputFile  = argparse.NewString("file", "f", "", "Specify an input file")
	inputURL   = argparse.NewString("url", "u", "", "Specify an input url")
	convert    = argparse.NewBool("convert", "", false, "Enable/Disable number conversions")
	groupCount = argparse.NewInt("group", "", 1, "Number of group entries")
	output     = argparse.NewString("out", "o", "", "Specify an output file")
)

func main() {
	os.Exit(run())
}

func run() int {
	parser := argparse.New("argparse-demo").
		SetDisplayName("Example").
		SetVersion(version.Info()).
		SetDescription("A small example for the argparse library").
		SetSynopsis("Reads from an input file or url and writes a converted copy\nto the output file.").
		SetExample("argparse-demo -a --convert=true --group=1 -o output.txt").
		SetPositionalArity(0).
		SetPositionalUsage("")

	if os.Getenv("ARGPARSE_DEBUG") != "" {
		parser.SetLogger(argparse.NewCommandLogger(slog.LevelDebug))
	}

	inputFile.SetMetaVar("FILE")
	inputURL.SetMetaVar("URL")
	output.SetMetaVar("FILE")

	parser.Add(active)
	parser.AddMutex(true, inputFile, inputURL)
	parser.Add(convert).Add(groupCount).Add(output)

	if err := parser.Parse(os.Args[1:]); err != nil {
		var exit *argparse.ExitError
		if errors.As(err, &exit) {
			fmt.Print(exit.Output)
			return exit.Code
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	source := inputFile.Value()
	if source == "" {
		source = inputURL.Value()
	}
	fmt.Printf("active=%v source=%s convert=%v group=%d out=%s\n",
		active.Value(), source, convert.Value(), groupCount.Value(), output.Value())
	return 0
}
