// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Parser owns the registered parameters and drives a single parse of
// an argument vector. Construct it with [New], register parameters
// with [Parser.Add], [Parser.AddGroup], and [Parser.AddMutex] during
// setup, then call [Parser.Parse] once.
//
// Registration methods panic on programmer mistakes (duplicate names,
// a required parameter inside a mutex group); Parse returns errors for
// end-user mistakes. A Parser is not safe for concurrent use and its
// invocation state is not reset between Parse calls.
type Parser struct {
	programName string
	displayName string
	description string
	synopsis    string
	example     string
	version     string

	disableDefaults bool
	enforceOrder    bool
	posMetaVar      string
	posArity        int

	order   []Parameter
	byName  map[string]Parameter
	byShort map[string]Parameter
	groups  map[Parameter]*group
	grouped []*group
	invoked map[Parameter]bool

	positionals []string

	logger      *slog.Logger
	interactive bool

	helpParam     *Switch
	versionParam  *Switch
	defaultsAdded bool
}

// New creates a parser. programName is the executable name shown in
// the usage synopsis.
func New(programName string) *Parser {
	return &Parser{
		programName:  programName,
		version:      "1.0.0",
		enforceOrder: true,
		posMetaVar:   "[ARGS...]",
		posArity:     VariableArity,
		byName:       make(map[string]Parameter),
		byShort:      make(map[string]Parameter),
		groups:       make(map[Parameter]*group),
		invoked:      make(map[Parameter]bool),
		logger:       slog.New(slog.DiscardHandler),
		interactive:  term.IsTerminal(int(os.Stdout.Fd())) && !termenv.EnvNoColor(),
		helpParam:    NewSwitch("help", "h", false, "Print this help text"),
		versionParam: NewSwitch("version", "", false, "Print the version number"),
	}
}

// SetDisplayName sets the name shown in the help header in place of
// the program name.
func (p *Parser) SetDisplayName(name string) *Parser {
	p.displayName = name
	return p
}

// SetVersion sets the string printed by the built-in --version switch.
func (p *Parser) SetVersion(version string) *Parser {
	p.version = version
	return p
}

// SetDescription sets the one-line description shown next to the name
// in the help header.
func (p *Parser) SetDescription(description string) *Parser {
	p.description = description
	return p
}

// SetSynopsis sets a longer free-form paragraph rendered verbatim
// (indented) in the help text.
func (p *Parser) SetSynopsis(synopsis string) *Parser {
	p.synopsis = synopsis
	return p
}

// SetExample sets an invocation example rendered at the end of the
// help text.
func (p *Parser) SetExample(example string) *Parser {
	p.example = example
	return p
}

// SetLogger installs a logger for parse-time debug traces. The default
// discards everything.
func (p *Parser) SetLogger(logger *slog.Logger) *Parser {
	p.logger = logger
	return p
}

// DisablePositionalEnforcement allows option tokens to appear after
// positional arguments. By default an option following a positional is
// an error.
func (p *Parser) DisablePositionalEnforcement() *Parser {
	p.enforceOrder = false
	return p
}

// SetPositionalUsage replaces the "[ARGS...]" placeholder appended to
// the usage synopsis. Pass "" for programs taking no positionals.
func (p *Parser) SetPositionalUsage(usage string) *Parser {
	p.posMetaVar = usage
	return p
}

// SetPositionalArity declares how many positional arguments the
// program expects, validated at the end of parsing. The default,
// [VariableArity], accepts one or more. A negative arity panics.
func (p *Parser) SetPositionalArity(arity int) *Parser {
	if arity < 0 {
		panic(fmt.Sprintf("argparse: invalid positional arguments arity %d, arity can't be negative",
			arity))
	}
	p.posArity = arity
	return p
}

// DisableDefaultParameters drops the built-in '-h, --help' and
// '--version' switches.
func (p *Parser) DisableDefaultParameters() *Parser {
	p.disableDefaults = true
	return p
}

// Interactive reports whether stdout is an interactive terminal and
// color output has not been disabled through the environment.
func (p *Parser) Interactive() bool {
	return p.interactive
}

// Add registers a single parameter. It panics if the long name or a
// non-empty short name is already taken.
func (p *Parser) Add(param Parameter) *Parser {
	p.register(param)
	return p
}

// AddGroup registers parameters as a plain group. Grouping without
// mutual exclusion only affects usage-line layout.
func (p *Parser) AddGroup(parameters ...Parameter) *Parser {
	return p.addGroup(newGroup(parameters, false, false))
}

// AddMutex registers parameters as a mutually exclusive group: at most
// one member may be invoked, or exactly one if required is true. It
// panics if any member carries its own required flag; requiredness
// belongs to the group.
func (p *Parser) AddMutex(required bool, parameters ...Parameter) *Parser {
	return p.addGroup(newGroup(parameters, true, required))
}

func (p *Parser) register(param Parameter) {
	name := param.Name()
	if name == "" {
		panic("argparse: parameter must have a long name")
	}
	if _, exists := p.byName[name]; exists {
		panic(fmt.Sprintf("argparse: the parameter '%s' was already registered", name))
	}
	p.byName[name] = param
	p.order = append(p.order, param)

	short := param.Short()
	if short == "" {
		return
	}
	if _, exists := p.byShort[short]; exists {
		panic(fmt.Sprintf("argparse: a parameter with short name '%s' already exists", short))
	}
	p.byShort[short] = param
}

func (p *Parser) addGroup(g *group) *Parser {
	for _, member := range g.members {
		if _, exists := p.groups[member]; exists {
			panic(fmt.Sprintf("argparse: parameter '%s' already belongs to a group", member.Name()))
		}
	}
	for _, member := range g.members {
		p.register(member)
		p.groups[member] = g
	}
	p.grouped = append(p.grouped, g)
	return p
}

// ensureDefaults registers the built-in help and version switches at
// the end of the registration order, so they render last in the help
// table. Deferred to Parse so user parameters always come first.
func (p *Parser) ensureDefaults() {
	if p.disableDefaults || p.defaultsAdded {
		return
	}
	p.Add(p.helpParam)
	p.Add(p.versionParam)
	p.defaultsAdded = true
}

// Parse walks the argument vector (excluding the program path),
// dispatches every option token to its parameter, collects positional
// arguments, and runs end-of-parse validation.
//
// When the built-in --help or --version switch was invoked anywhere in
// the arguments, Parse short-circuits all validation and returns an
// [*ExitError] carrying the rendered output and a zero exit code. Any
// other non-nil error is an end-user input error matching [ErrUsage].
func (p *Parser) Parse(args []string) error {
	p.ensureDefaults()
	p.positionals = nil

	stream := newTokenStream(args)
	positionalsStarted := false

	for stream.HasNext() {
		token := stream.Next()
		stream.setOption(optionSpelling(token))

		switch {
		case strings.HasPrefix(token, "--") && token != "--":
			if positionalsStarted && p.enforceOrder {
				return usageErrorf("invalid positional argument '%s'", p.positionals[0])
			}
			name := token[2:]
			if index := strings.IndexByte(name, '='); index >= 0 {
				name = name[:index]
			}
			if err := p.dispatch(p.byName[name], stream); err != nil {
				return err
			}

		case strings.HasPrefix(token, "-") && !strings.HasPrefix(token, "--") && token != "-":
			if positionalsStarted && p.enforceOrder {
				return usageErrorf("invalid positional argument '%s'", p.positionals[0])
			}
			if err := p.parseCluster(token[1:], stream); err != nil {
				return err
			}

		default:
			// Includes the bare "-" and "--" literals.
			p.positionals = append(p.positionals, token)
			positionalsStarted = true
			p.logger.Debug("positional argument", "token", token)
		}
	}

	if !p.disableDefaults {
		if p.helpParam.Value() {
			return &ExitError{Code: 0, Output: p.Help()}
		}
		if p.versionParam.Value() {
			return &ExitError{Code: 0, Output: "Version: " + p.version + "\n"}
		}
	}

	return p.validate()
}

// parseCluster dispatches the characters of a short-option token left
// to right. Scanning stops after the first parameter that consumes
// value tokens: its values come from the remaining stream, and any
// trailing characters in the cluster are not processed.
func (p *Parser) parseCluster(cluster string, stream *TokenStream) error {
	for i := 0; i < len(cluster); i++ {
		stream.setOption("-" + string(cluster[i]))
		param := p.byShort[string(cluster[i])]
		if err := p.dispatch(param, stream); err != nil {
			return err
		}
		if param.TakesValue() {
			break
		}
	}
	return nil
}

// dispatch runs the registry checks for the resolved parameter, then
// its Parse, and marks it (and its mutex group) invoked.
func (p *Parser) dispatch(param Parameter, stream *TokenStream) error {
	option := stream.Option()
	if param == nil {
		if suggestion := p.suggest(option); suggestion != "" {
			return usageErrorf("unknown option '%s', did you mean '%s'?", option, suggestion)
		}
		return usageErrorf("unknown option '%s', see '--help' for more information", option)
	}
	if p.invoked[param] {
		return usageErrorf("option '%s' has already been invoked", option)
	}
	if g := p.groups[param]; g != nil && g.mutex {
		if g.invoked != nil {
			return usageErrorf("another option from the same mutually exclusive group as '%s' has already been invoked",
				option)
		}
		g.invoked = param
	}
	if err := param.Parse(stream); err != nil {
		return err
	}
	p.invoked[param] = true
	p.logger.Debug("option parsed", "option", option, "parameter", param.Name())
	return nil
}

// validate runs the end-of-parse checks: required ungrouped or
// plain-grouped parameters, required mutex groups, and positional
// arity.
func (p *Parser) validate() error {
	for _, param := range p.order {
		if g := p.groups[param]; g != nil && g.mutex {
			continue
		}
		if param.Required() && !p.invoked[param] {
			return usageErrorf("missing required option '%s'", param.Name())
		}
	}
	for _, g := range p.grouped {
		if g.mutex && g.required && g.invoked == nil {
			return usageErrorf("missing required mutually exclusive option, exactly one of '%s' must be specified",
				g.label())
		}
	}
	if p.posArity == VariableArity && len(p.positionals) == 0 {
		return usageErrorf("expected one or more positional arguments, got 0")
	}
	if p.posArity != VariableArity && len(p.positionals) != p.posArity {
		return usageErrorf("expected exactly %d positional arguments, got %d",
			p.posArity, len(p.positionals))
	}
	return nil
}

// Positionals returns the positional arguments collected by the last
// Parse call, in order.
func (p *Parser) Positionals() []string {
	return p.positionals
}
