// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// enum generates the boilerplate for the enums of the ast package: node
// kinds and operators.
//
// Each YAML file holds an array of Enum. Use it with
//
//	//go:generate go run github.com/bufbuild/jsast/internal/enum kind.yaml operator.yaml
//
// The output for foo.yaml is written to foo.enum.go in the same directory.
//
//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Enum is a single enum type.
type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of a "total values" constant, if any.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

// Values returns the enum's values, linked back to it.
func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// check reports configuration mistakes that would otherwise surface as
// compile errors in the generated file.
func (e *Enum) check() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum needs a name and a type")
	}
	if len(e.Values_) == 0 {
		return fmt.Errorf("%s: no values", e.Name)
	}

	names := map[string]bool{}
	for _, v := range e.Values_ {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
	}

	for _, m := range e.Methods {
		if _, err := m.Name(); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: %s method skips unknown value %s", e.Name, m.Kind, skip)
			}
		}
		if m.Kind != MethodFromString {
			continue
		}
		// Map literal keys must be unique.
		seen := map[string]string{}
		for _, v := range e.Values_ {
			if slices.Contains(m.Skip, v.Name) {
				continue
			}
			if prev, ok := seen[v.String()]; ok {
				return fmt.Errorf("%s: %s and %s both have string %q", e.Name, prev, v.Name, v.String())
			}
			seen[v.String()] = v.Name
		}
	}
	return nil
}

// Value is one constant of an Enum.
type Value struct {
	Name    string `yaml:"name"`   // The name of the value.
	String_ string `yaml:"string"` // The string representation of this value.
	Docs    string `yaml:"docs"`   // Documentation for the value.
	Gap     bool   `yaml:"gap"`    // Whether a blank line precedes this value.

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

// HasSuffixDocs returns whether this value's docs go at the end of its line,
// which is the case for one-line docs not followed by an undocumented value.
func (v Value) HasSuffixDocs() bool {
	if v.Docs == "" || strings.Contains(v.Docs, "\n") {
		return false
	}
	next := v.Idx + 1
	return next >= len(v.Parent.Values_) || v.Parent.Values_[next].Docs != ""
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

// Method is a function generated for an Enum.
type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
	Skip  []string   `yaml:"skip"` // Enum values to leave out of this method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString, MethodAll:
		return "", fmt.Errorf("missing name for kind: %#v", m.Kind)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	case MethodValid:
		return "IsValid", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	case MethodValid:
		return "IsValid returns whether this is one of the named constants."
	default:
		return ""
	}
}

// MethodKind selects what a Method does.
type MethodKind string

const (
	MethodString     MethodKind = "string"      // Value to string; skipped values format as T(n).
	MethodGoString   MethodKind = "go-string"   // Value to qualified Go name.
	MethodFromString MethodKind = "from-string" // String to value, as a function.
	MethodAll        MethodKind = "all"         // Iterator over the values, as a function.
	MethodValid      MethodKind = "valid"       // Whether a value is named and not skipped.
)

//go:embed enum.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("enum.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
	"contains": slices.Contains[[]string],
}).Parse(tmplText))

// makeDocs converts text into doc comment lines, each ending in a newline.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// Generate writes the enums configured in config.
func Generate(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	var input struct {
		Package, Config string
		YAML            []Enum
	}
	input.Package = os.Getenv("GOPACKAGE")
	input.Config = config
	if input.Package == "" {
		return errors.New("GOPACKAGE is not set; run this with go generate")
	}

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return err
	}
	for i := range input.YAML {
		if err := input.YAML[i].check(); err != nil {
			return err
		}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, input); err != nil {
		return err
	}
	path := strings.TrimSuffix(config, ".yaml") + ".enum.go"
	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Generate(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
