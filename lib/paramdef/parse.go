// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package paramdef provides parsing, validation, and compilation of
// declarative parameter-set definitions. A definition describes a
// program's command-line interface (its options, groups, and
// positional-argument policy) as data, and compiles into a ready
// [argparse.Parser].
//
// Definitions are authored on disk as JSONC files (JSON extended with
// comments and trailing commas) or as YAML, selected by file
// extension.
//
// The typical flow:
//
//  1. ReadFile or Parse: definition bytes → Definition
//  2. Validate: structural checks (unique names, known types, group
//     membership, default/type agreement)
//  3. Build: Definition → configured parser plus a Values handle for
//     typed access to the parsed results
package paramdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parameter types accepted in a definition.
const (
	TypeSwitch  = "switch"
	TypeBool    = "bool"
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeString  = "string"
	TypeStrings = "strings"
)

// Definition is the on-disk description of a program's command-line
// interface.
type Definition struct {
	// Program is the executable name shown in the usage synopsis.
	Program string `json:"program" yaml:"program"`

	// DisplayName, Description, Synopsis, and Example feed the
	// corresponding help-text sections. All optional.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Synopsis    string `json:"synopsis,omitempty" yaml:"synopsis,omitempty"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`

	// Version is the string printed by --version. Empty keeps the
	// parser default.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Positional configures positional-argument handling. Nil keeps
	// the defaults (one or more, enforced at the end, "[ARGS...]").
	Positional *Positional `json:"positional,omitempty" yaml:"positional,omitempty"`

	// Parameters lists the options in registration (and help) order.
	Parameters []Parameter `json:"parameters" yaml:"parameters"`

	// Groups partitions parameters, by long name, into plain or
	// mutually exclusive groups.
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Positional configures positional-argument handling.
type Positional struct {
	// Arity is the exact number of expected positional arguments.
	// Nil means one or more.
	Arity *int `json:"arity,omitempty" yaml:"arity,omitempty"`

	// Usage replaces the "[ARGS...]" synopsis placeholder when set.
	Usage *string `json:"usage,omitempty" yaml:"usage,omitempty"`

	// Unordered allows option tokens after positional arguments.
	Unordered bool `json:"unordered,omitempty" yaml:"unordered,omitempty"`
}

// Parameter declares a single option.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Short       string `json:"short,omitempty" yaml:"short,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	MetaVar     string `json:"metavar,omitempty" yaml:"metavar,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`

	// Default is the value before parsing. Must agree with Type;
	// ignored for "strings". Switches treat it as the toggle origin.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Arity applies to "strings" parameters only: the exact number of
	// values. Nil means one or more.
	Arity *int `json:"arity,omitempty" yaml:"arity,omitempty"`
}

// Group declares a parameter group by member long names.
type Group struct {
	Mutex    bool     `json:"mutex,omitempty" yaml:"mutex,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Members  []string `json:"members" yaml:"members"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a Definition.
func Parse(data []byte) (*Definition, error) {
	stripped := jsonc.ToJSON(data)

	var definition Definition
	if err := json.Unmarshal(stripped, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	return &definition, nil
}

// ParseYAML unmarshals a YAML definition.
func ParseYAML(data []byte) (*Definition, error) {
	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	return &definition, nil
}

// ReadFile reads a definition file from disk, choosing the format by
// extension: .yaml and .yml parse as YAML, everything else as JSONC.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var definition *Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		definition, err = ParseYAML(data)
	default:
		definition, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return definition, nil
}

// NameFromPath extracts a definition name from a file path by
// stripping the directory prefix and the file extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	extension := filepath.Ext(base)
	return strings.TrimSuffix(base, extension)
}
