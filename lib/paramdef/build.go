// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramdef

import (
	"fmt"
	"math"
	"strings"

	"github.com/bureau-foundation/argparse/lib/argparse"
)

// Build compiles a validated definition into a configured parser and a
// [Values] handle for reading the parsed results by parameter name.
// Returns an error joining all validation issues if the definition is
// not structurally valid.
func Build(definition *Definition) (*argparse.Parser, *Values, error) {
	if issues := Validate(definition); len(issues) > 0 {
		return nil, nil, fmt.Errorf("invalid definition:\n  %s", strings.Join(issues, "\n  "))
	}

	parser := argparse.New(definition.Program)
	if definition.DisplayName != "" {
		parser.SetDisplayName(definition.DisplayName)
	}
	if definition.Description != "" {
		parser.SetDescription(definition.Description)
	}
	if definition.Synopsis != "" {
		parser.SetSynopsis(definition.Synopsis)
	}
	if definition.Example != "" {
		parser.SetExample(definition.Example)
	}
	if definition.Version != "" {
		parser.SetVersion(definition.Version)
	}
	if definition.Positional != nil {
		if definition.Positional.Arity != nil {
			parser.SetPositionalArity(*definition.Positional.Arity)
		}
		if definition.Positional.Usage != nil {
			parser.SetPositionalUsage(*definition.Positional.Usage)
		}
		if definition.Positional.Unordered {
			parser.DisablePositionalEnforcement()
		}
	}

	values := &Values{params: make(map[string]argparse.Parameter, len(definition.Parameters))}
	for _, declared := range definition.Parameters {
		values.params[declared.Name] = buildParameter(declared)
	}

	// Members of a group are registered together when the first member
	// is reached, so the usage synopsis keeps the declaration order.
	memberGroup := make(map[string]int)
	for index, group := range definition.Groups {
		for _, member := range group.Members {
			memberGroup[member] = index
		}
	}
	registered := make(map[int]bool, len(definition.Groups))
	for _, declared := range definition.Parameters {
		index, inGroup := memberGroup[declared.Name]
		if !inGroup {
			parser.Add(values.params[declared.Name])
			continue
		}
		if registered[index] {
			continue
		}
		registered[index] = true
		group := definition.Groups[index]
		members := make([]argparse.Parameter, len(group.Members))
		for i, member := range group.Members {
			members[i] = values.params[member]
		}
		if group.Mutex {
			parser.AddMutex(group.Required, members...)
		} else {
			parser.AddGroup(members...)
		}
	}

	return parser, values, nil
}

// buildParameter constructs the typed parameter for one declaration.
// The declaration has already passed Validate, so default coercion
// cannot fail here.
func buildParameter(declared Parameter) argparse.Parameter {
	defaultValue, err := coerceDefault(declared.Type, declared.Default)
	if err != nil {
		panic(fmt.Sprintf("paramdef: unvalidated default for %q: %v", declared.Name, err))
	}

	switch declared.Type {
	case TypeSwitch:
		p := argparse.NewSwitch(declared.Name, declared.Short, defaultValue.(bool), declared.Description)
		configure(&p.Param, declared)
		return p
	case TypeBool:
		p := argparse.NewBool(declared.Name, declared.Short, defaultValue.(bool), declared.Description)
		configure(&p.Param, declared)
		return p
	case TypeInt:
		p := argparse.NewInt(declared.Name, declared.Short, defaultValue.(int), declared.Description)
		configure(&p.Param, declared)
		return p
	case TypeFloat:
		p := argparse.NewFloat(declared.Name, declared.Short, defaultValue.(float64), declared.Description)
		configure(&p.Param, declared)
		return p
	case TypeString:
		p := argparse.NewString(declared.Name, declared.Short, defaultValue.(string), declared.Description)
		configure(&p.Param, declared)
		return p
	case TypeStrings:
		arity := argparse.VariableArity
		if declared.Arity != nil {
			arity = *declared.Arity
		}
		p := argparse.NewStringSlice(declared.Name, declared.Short, arity, declared.Description)
		configure(&p.Param, declared)
		return p
	}
	panic(fmt.Sprintf("paramdef: unvalidated type %q for %q", declared.Type, declared.Name))
}

func configure(param *argparse.Param, declared Parameter) {
	if declared.MetaVar != "" {
		param.SetMetaVar(declared.MetaVar)
	}
	if declared.Required {
		param.SetRequired()
	}
}

// coerceDefault maps a decoded default value onto the Go type the
// parameter constructors expect. JSON decodes numbers as float64 and
// YAML as int, so both spellings are accepted for the numeric types.
// When raw is nil the type's zero value is returned.
func coerceDefault(parameterType string, raw any) (any, error) {
	switch parameterType {
	case TypeSwitch, TypeBool:
		if raw == nil {
			return false, nil
		}
		value, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("default %v is not a boolean", raw)
		}
		return value, nil

	case TypeInt:
		switch value := raw.(type) {
		case nil:
			return 0, nil
		case int:
			return value, nil
		case int64:
			return int(value), nil
		case float64:
			if value != math.Trunc(value) {
				return nil, fmt.Errorf("default %v is not an integer", raw)
			}
			return int(value), nil
		}
		return nil, fmt.Errorf("default %v is not an integer", raw)

	case TypeFloat:
		switch value := raw.(type) {
		case nil:
			return 0.0, nil
		case float64:
			return value, nil
		case int:
			return float64(value), nil
		case int64:
			return float64(value), nil
		}
		return nil, fmt.Errorf("default %v is not a number", raw)

	case TypeString:
		if raw == nil {
			return "", nil
		}
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("default %v is not a string", raw)
		}
		return value, nil

	case TypeStrings:
		if raw != nil {
			return nil, fmt.Errorf("default is not supported for strings parameters")
		}
		return nil, nil
	}
	return nil, fmt.Errorf("unknown type %q", parameterType)
}

// Values reads the typed results of a parse by parameter name. The
// getters panic on an unknown name or a type mismatch; both are
// programmer errors against a validated definition.
type Values struct {
	params map[string]argparse.Parameter
}

func (v *Values) lookup(name string) argparse.Parameter {
	param, exists := v.params[name]
	if !exists {
		panic(fmt.Sprintf("paramdef: no parameter named %q", name))
	}
	return param
}

// Bool returns the value of a switch or bool parameter.
func (v *Values) Bool(name string) bool {
	switch param := v.lookup(name).(type) {
	case *argparse.Switch:
		return param.Value()
	case *argparse.Bool:
		return param.Value()
	}
	panic(fmt.Sprintf("paramdef: parameter %q is not a switch or bool", name))
}

// Int returns the value of an int parameter.
func (v *Values) Int(name string) int {
	param, ok := v.lookup(name).(*argparse.Int)
	if !ok {
		panic(fmt.Sprintf("paramdef: parameter %q is not an int", name))
	}
	return param.Value()
}

// Float returns the value of a float parameter.
func (v *Values) Float(name string) float64 {
	param, ok := v.lookup(name).(*argparse.Float)
	if !ok {
		panic(fmt.Sprintf("paramdef: parameter %q is not a float", name))
	}
	return param.Value()
}

// String returns the value of a string parameter.
func (v *Values) String(name string) string {
	param, ok := v.lookup(name).(*argparse.String)
	if !ok {
		panic(fmt.Sprintf("paramdef: parameter %q is not a string", name))
	}
	return param.Value()
}

// Strings returns the values of a strings parameter. Nil until the
// parameter has been invoked.
func (v *Values) Strings(name string) []string {
	param, ok := v.lookup(name).(*argparse.StringSlice)
	if !ok {
		panic(fmt.Sprintf("paramdef: parameter %q is not a strings parameter", name))
	}
	return param.Value()
}
