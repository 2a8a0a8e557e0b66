// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scalarStream positions a fresh stream on the option token itself,
// the way the engine does before dispatching to a parameter.
func scalarStream(t *testing.T, args ...string) *TokenStream {
	t.Helper()
	stream := newTokenStream(args)
	token := stream.Next()
	stream.setOption(optionSpelling(token))
	return stream
}

func TestCleanToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"value", "value"},
		{"  value  ", "value"},
		{"value,", "value"},
		{"'value'", "value"},
		{`"value"`, "value"},
		{`"'value'"`, "'value'"},
		{" 'value', ", "value"},
		{"'mismatched\"", "'mismatched\""},
		{"'", "'"},
		{"''", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := cleanToken(test.raw); got != test.want {
			t.Errorf("cleanToken(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}

func TestScalarValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "inline form", args: []string{"--out=result.txt"}, want: "result.txt"},
		{name: "spaced form", args: []string{"--out", "result.txt"}, want: "result.txt"},
		{name: "quoted value", args: []string{"--out", "'result.txt'"}, want: "result.txt"},
		{name: "bare dash is a value", args: []string{"--out", "-"}, want: "-"},
		{name: "double dash is a value", args: []string{"--out", "--"}, want: "--"},
		{
			name:    "inline value with delimiter",
			args:    []string{"--out=a,b"},
			wantErr: "expected one",
		},
		{
			name:    "next token is an option",
			args:    []string{"--out", "--other"},
			wantErr: "expected <value> for option '--out', got '--other'",
		},
		{
			name:    "exhausted stream",
			args:    []string{"--out"},
			wantErr: "expected <value> for option '--out', got ''",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := ScalarValue(scalarStream(t, test.args...))
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("ScalarValue() = %q, want error containing %q", got, test.wantErr)
				}
				if !strings.Contains(err.Error(), test.wantErr) {
					t.Errorf("ScalarValue() error = %q, want substring %q", err, test.wantErr)
				}
				if !errors.Is(err, ErrUsage) {
					t.Errorf("ScalarValue() error does not match ErrUsage")
				}
				return
			}
			if err != nil {
				t.Fatalf("ScalarValue() error = %v", err)
			}
			if got != test.want {
				t.Errorf("ScalarValue() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestArrayValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		arity   int
		want    []string
		wantErr string
	}{
		{
			name:  "inline form",
			args:  []string{"--list=a,b,c"},
			arity: VariableArity,
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "inline trailing delimiter",
			args:  []string{"--list=a,b,"},
			arity: VariableArity,
			want:  []string{"a", "b"},
		},
		{
			name:  "spaced form stops at option",
			args:  []string{"--list", "a", "b", "--other"},
			arity: VariableArity,
			want:  []string{"a", "b"},
		},
		{
			name:  "spaced form bounded by arity",
			args:  []string{"--pair", "a", "b", "c"},
			arity: 2,
			want:  []string{"a", "b"},
		},
		{
			name:  "quoted pieces cleaned",
			args:  []string{"--list", "'a'", `"b"`},
			arity: VariableArity,
			want:  []string{"a", "b"},
		},
		{
			name:    "inline count above fixed arity",
			args:    []string{"--pair=a,b,c"},
			arity:   2,
			wantErr: "expected 2 arguments for option '--pair', got 3",
		},
		{
			name:    "spaced count below fixed arity",
			args:    []string{"--pair", "a"},
			arity:   2,
			wantErr: "expected 2 arguments for option '--pair', got 1",
		},
		{
			name:    "next token is an option",
			args:    []string{"--list", "--other"},
			arity:   VariableArity,
			wantErr: "expected argument for option '--list', got '--other'",
		},
		{
			name:    "exhausted stream",
			args:    []string{"--list"},
			arity:   VariableArity,
			wantErr: "expected array of arguments for option '--list', got ''",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := ArrayValues(scalarStream(t, test.args...), test.arity)
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("ArrayValues() = %v, want error containing %q", got, test.wantErr)
				}
				if !strings.Contains(err.Error(), test.wantErr) {
					t.Errorf("ArrayValues() error = %q, want substring %q", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ArrayValues() error = %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ArrayValues() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSwitchToggles(t *testing.T) {
	t.Parallel()

	active := NewSwitch("active", "a", false, "")
	if err := active.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !active.Value() {
		t.Error("Value() = false after one toggle, want true")
	}
	if err := active.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if active.Value() {
		t.Error("Value() = true after two toggles, want false")
	}

	quiet := NewSwitch("quiet", "q", true, "")
	if err := quiet.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if quiet.Value() {
		t.Error("Value() = true after toggling a default-true switch, want false")
	}
}

func TestBoolLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		literal string
		want    bool
		wantErr bool
	}{
		{literal: "true", want: true},
		{literal: "yes", want: true},
		{literal: "false", want: false},
		{literal: "no", want: false},
		{literal: "TRUE", wantErr: true},
		{literal: "Yes", wantErr: true},
		{literal: "1", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.literal, func(t *testing.T) {
			t.Parallel()
			convert := NewBool("convert", "", !test.want, "")
			err := convert.Parse(scalarStream(t, "--convert", test.literal))
			if test.wantErr {
				if err == nil {
					t.Fatal("Parse() error = nil, want invalid-argument error")
				}
				want := "invalid argument '" + test.literal + "' for option '--convert'"
				if err.Error() != want {
					t.Errorf("Parse() error = %q, want %q", err, want)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if convert.Value() != test.want {
				t.Errorf("Value() = %v, want %v", convert.Value(), test.want)
			}
		})
	}
}

func TestIntParse(t *testing.T) {
	t.Parallel()

	count := NewInt("count", "c", 1, "")
	if err := count.Parse(scalarStream(t, "--count=42")); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if count.Value() != 42 {
		t.Errorf("Value() = %d, want 42", count.Value())
	}

	bad := NewInt("count", "c", 1, "")
	err := bad.Parse(scalarStream(t, "--count", "many"))
	if err == nil {
		t.Fatal("Parse() error = nil for non-numeric literal")
	}
	if want := "invalid argument 'many' for option '--count'"; err.Error() != want {
		t.Errorf("Parse() error = %q, want %q", err, want)
	}
}

func TestFloatParse(t *testing.T) {
	t.Parallel()

	ratio := NewFloat("ratio", "", 0, "")
	if err := ratio.Parse(scalarStream(t, "--ratio", "0.75")); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if ratio.Value() != 0.75 {
		t.Errorf("Value() = %v, want 0.75", ratio.Value())
	}

	bad := NewFloat("ratio", "", 0, "")
	if err := bad.Parse(scalarStream(t, "--ratio", "wide")); err == nil {
		t.Fatal("Parse() error = nil for non-numeric literal")
	}
}

func TestStringSliceArityPanicsWhenNegative(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewStringSlice with negative arity did not panic")
		}
	}()
	NewStringSlice("list", "", -1, "")
}

func TestUsageAndHelpFragments(t *testing.T) {
	t.Parallel()

	file := NewString("file", "f", "", "")
	file.SetMetaVar("file")
	if got, want := file.Usage(), "-f FILE"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
	if got, want := file.Help(), "-f, --file FILE"; got != want {
		t.Errorf("Help() = %q, want %q", got, want)
	}

	convert := NewBool("convert", "", false, "")
	if got, want := convert.Usage(), "--convert VALUE"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
	if got, want := convert.Help(), "--convert VALUE"; got != want {
		t.Errorf("Help() = %q, want %q", got, want)
	}

	active := NewSwitch("active", "a", false, "")
	if got, want := active.Usage(), "-a"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
	if got, want := active.Help(), "-a, --active"; got != want {
		t.Errorf("Help() = %q, want %q", got, want)
	}

	pair := NewStringSlice("pair", "", 2, "")
	if got, want := pair.Usage(), "--pair VALUE VALUE"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}

	many := NewStringSlice("many", "", VariableArity, "")
	if got, want := many.Usage(), "--many VALUE [VALUE...]"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}

	wide := NewStringSlice("wide", "", 4, "")
	if got, want := wide.Usage(), "--wide VALUE [VALUE...]"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
}

func TestStringSliceParse(t *testing.T) {
	t.Parallel()

	list := NewStringSlice("list", "l", VariableArity, "")
	if err := list.Parse(scalarStream(t, "--list", "a", "b", "c")); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, list.Value()); diff != "" {
		t.Errorf("Value() mismatch (-want +got):\n%s", diff)
	}
}
