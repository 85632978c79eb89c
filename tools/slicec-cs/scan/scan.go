// Copyright (C) 2017 Google Inc.
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

// Package scan loads the Slice definitions the code generator works from.
//
// The front end serializes each Slice file to a YAML schema holding the
// module name and its type definitions, with the supported encodings of each
// struct already computed. Field types are written in Slice syntax, eg
// "sequence<int32?>" or "dictionary<string, Point>".
package scan

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/core/fault"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Tool is the name written into generated file headers.
const Tool = "slicec-cs"

const (
	// ErrEmptySchema is returned for a schema file with no document.
	ErrEmptySchema = fault.Const("empty schema")
	// ErrUnresolved is returned for a reference to an unknown type.
	ErrUnresolved = fault.Const("unresolved type")
	// ErrSyntax is returned for a malformed type string.
	ErrSyntax = fault.Const("invalid type syntax")
	// ErrDuplicate is returned when a file declares a name twice.
	ErrDuplicate = fault.Const("duplicate definition")
)

type fileSchema struct {
	Source  string         `yaml:"source"`
	Module  string         `yaml:"module"`
	Enums   []enumSchema   `yaml:"enums"`
	Customs []namedSchema  `yaml:"customs"`
	Classes []namedSchema  `yaml:"classes"`
	Structs []structSchema `yaml:"structs"`
}

type namedSchema struct {
	Name string `yaml:"name"`
}

type enumSchema struct {
	Name       string `yaml:"name"`
	Underlying string `yaml:"underlying"`
}

type structSchema struct {
	Name       string         `yaml:"name"`
	Compact    bool           `yaml:"compact"`
	Encodings  []string       `yaml:"encodings"`
	Readonly   bool           `yaml:"readonly"`
	Internal   bool           `yaml:"internal"`
	Deprecated deprecation    `yaml:"deprecated"`
	Doc        *commentSchema `yaml:"doc"`
	Fields     []fieldSchema  `yaml:"fields"`
}

type fieldSchema struct {
	Name       string         `yaml:"name"`
	Type       string         `yaml:"type"`
	Tag        *int32         `yaml:"tag"`
	Default    string         `yaml:"default"`
	Deprecated deprecation    `yaml:"deprecated"`
	Doc        *commentSchema `yaml:"doc"`
}

type commentSchema struct {
	Overview string   `yaml:"overview"`
	See      []string `yaml:"see"`
}

// deprecation accepts either a boolean or a reason string.
type deprecation struct {
	set    bool
	reason string
}

func (d *deprecation) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: deprecated must be a boolean or a reason", n.Line)
	}
	if n.ShortTag() == "!!bool" {
		return n.Decode(&d.set)
	}
	d.set, d.reason = true, n.Value
	return nil
}

func (d deprecation) get() *grammar.Deprecation {
	if !d.set {
		return nil
	}
	return &grammar.Deprecation{Reason: d.reason}
}

func (c *commentSchema) get() *grammar.Comment {
	if c == nil {
		return nil
	}
	return &grammar.Comment{Overview: c.Overview, See: c.See}
}

// Load reads and resolves the schema file.
func Load(ctx context.Context, filename string) (*grammar.Module, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, filename, data)
}

// LoadAll loads each of the schema files, in order.
func LoadAll(ctx context.Context, filenames []string) ([]*grammar.Module, error) {
	modules := make([]*grammar.Module, 0, len(filenames))
	for _, f := range filenames {
		m, err := Load(ctx, f)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// Parse decodes and resolves a schema.
// Unknown keys are rejected.
func Parse(ctx context.Context, filename string, data []byte) (*grammar.Module, error) {
	ctx = log.V{"schema": filename}.Bind(ctx)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	schema := fileSchema{}
	if err := dec.Decode(&schema); err != nil {
		if err == io.EOF {
			err = ErrEmptySchema
		}
		return nil, errors.Wrap(err, filename)
	}
	m, err := schema.resolve(ctx, filename)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	log.D(ctx, "Loaded %d structs from module %s", len(m.Structs), m.Name)
	return m, nil
}

func (f *fileSchema) resolve(ctx context.Context, filename string) (*grammar.Module, error) {
	if f.Module == "" {
		return nil, errors.New("missing module")
	}
	module := strings.TrimPrefix(f.Module, "::")
	source := f.Source
	if source == "" {
		source = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + ".slice"
	}
	r := newResolver(module)
	for _, e := range f.Enums {
		enum := &grammar.Enum{Named: grammar.Named{Name: e.Name, Module: module}}
		if e.Underlying != "" {
			enum.Underlying = grammar.FindPrimitive(e.Underlying)
			if enum.Underlying == grammar.InvalidPrimitive || enum.Underlying == grammar.String {
				return nil, errors.Errorf("enum %s: invalid underlying type %q", e.Name, e.Underlying)
			}
		}
		if err := r.declare(e.Name, enum); err != nil {
			return nil, err
		}
	}
	for _, c := range f.Customs {
		if err := r.declare(c.Name, &grammar.Custom{Named: grammar.Named{Name: c.Name, Module: module}}); err != nil {
			return nil, err
		}
	}
	for _, c := range f.Classes {
		if err := r.declare(c.Name, &grammar.Class{Named: grammar.Named{Name: c.Name, Module: module}}); err != nil {
			return nil, err
		}
	}
	structs := make([]*grammar.Struct, len(f.Structs))
	for i, s := range f.Structs {
		structs[i] = &grammar.Struct{Named: grammar.Named{Name: s.Name, Module: module}}
		if err := r.declare(s.Name, structs[i]); err != nil {
			return nil, err
		}
	}
	for i, s := range f.Structs {
		if err := s.fill(ctx, r, structs[i]); err != nil {
			return nil, errors.Wrapf(err, "struct %s", s.Name)
		}
	}
	return &grammar.Module{Source: source, Name: module, Structs: structs}, nil
}

func (s *structSchema) fill(ctx context.Context, r *resolver, out *grammar.Struct) error {
	encodings := []grammar.Encoding{}
	for _, name := range s.Encodings {
		e, err := grammar.ParseEncoding(name)
		if err != nil {
			return err
		}
		encodings = append(encodings, e)
	}
	if len(encodings) == 0 {
		log.D(ctx, "Struct %s has no encodings, assuming Slice2", s.Name)
		encodings = append(encodings, grammar.Slice2)
	}
	supported, err := grammar.NewSupportedEncodings(encodings...)
	if err != nil {
		return err
	}
	out.Encodings = supported
	out.IsCompact = s.Compact
	out.Readonly = s.Readonly
	out.Internal = s.Internal
	out.Deprecated = s.Deprecated.get()
	out.Doc = s.Doc.get()
	for _, f := range s.Fields {
		ref, err := r.parse(f.Type)
		if err != nil {
			return errors.Wrapf(err, "field %s", f.Name)
		}
		out.Fields = append(out.Fields, &grammar.Field{
			Name:       f.Name,
			Type:       ref,
			Tag:        f.Tag,
			Default:    f.Default,
			Deprecated: f.Deprecated.get(),
			Doc:        f.Doc.get(),
		})
	}
	return nil
}
