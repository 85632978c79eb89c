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

package grammar

import "github.com/pkg/errors"

// Struct is a Slice struct definition.
type Struct struct {
	Named
	Fields     []*Field           // In wire order.
	IsCompact  bool               // Compact structs have no tag section.
	Encodings  SupportedEncodings // Computed by the front end.
	Readonly   bool               // Generate a readonly record struct.
	Internal   bool               // Generate with internal access.
	Deprecated *Deprecation
	Doc        *Comment
}

func (*Struct) isType() {}

// TypeName returns the struct identifier.
func (s *Struct) TypeName() string { return s.Name }

// Field is a member of a Struct.
type Field struct {
	Name       string
	Type       TypeRef
	Tag        *int32 // nil for untagged fields
	Default    string // the default value literal, if any
	Deprecated *Deprecation
	Doc        *Comment
}

// IsTagged returns true if the field carries a tag.
func (f *Field) IsTagged() bool { return f.Tag != nil }

// Validate checks the structural invariants the code generator relies on.
// All failures have ErrInvalidStruct as their cause.
func (s *Struct) Validate() error {
	fail := func(format string, args ...interface{}) error {
		return errors.Wrapf(ErrInvalidStruct, "struct %s: "+format, append([]interface{}{s.Name}, args...)...)
	}
	if s.Encodings.Len() == 0 {
		return fail("%v", ErrNoEncodings)
	}
	names := map[string]bool{}
	tags := map[int32]string{}
	for _, f := range s.Fields {
		if f.Type.Type == nil {
			return fail("field %s has no type", f.Name)
		}
		if names[f.Name] {
			return fail("duplicate field %s", f.Name)
		}
		names[f.Name] = true
		if err := checkEncodable(f.Type, s.Encodings); err != nil {
			return fail("field %s: %v", f.Name, err)
		}
		if f.IsTagged() && !s.Encodings.Supports(Slice2) {
			return fail("field %s: tagged fields are not supported by Slice1", f.Name)
		}
		if !f.IsTagged() {
			if f.Type.Optional && s.Encodings.Supports(Slice1) && !nullable(f.Type.Type) {
				return fail("field %s: optional %s is not supported by Slice1", f.Name, f.Type.Type.TypeName())
			}
			continue
		}
		tag := *f.Tag
		switch {
		case s.IsCompact:
			return fail("compact structs cannot have tagged field %s", f.Name)
		case !f.Type.Optional:
			return fail("tagged field %s must be optional", f.Name)
		case tag < 0:
			return fail("field %s has negative tag %d", f.Name, tag)
		}
		if other, dup := tags[tag]; dup {
			return fail("fields %s and %s share tag %d", other, f.Name, tag)
		}
		tags[tag] = f.Name
	}
	return nil
}

// nullable returns true for the types Slice1 can encode as absent.
func nullable(t Type) bool {
	switch t.(type) {
	case ServiceAddress, *Class:
		return true
	default:
		return false
	}
}

func checkEncodable(r TypeRef, encodings SupportedEncodings) error {
	switch t := r.Type.(type) {
	case nil:
		return errors.New("missing type")
	case *Class:
		if encodings.Supports(Slice2) {
			return errors.Errorf("class %s is not supported by Slice2", t.Name)
		}
	case *Sequence:
		if err := checkElement(t.Element, encodings); err != nil {
			return errors.Wrapf(err, "sequence element")
		}
		return checkEncodable(t.Element, encodings)
	case *Dictionary:
		if t.Key.Optional {
			return errors.Errorf("dictionary key %s cannot be optional", t.Key)
		}
		if err := checkEncodable(t.Key, encodings); err != nil {
			return err
		}
		if err := checkElement(t.Value, encodings); err != nil {
			return errors.Wrapf(err, "dictionary value")
		}
		return checkEncodable(t.Value, encodings)
	}
	return nil
}

// checkElement rejects optional collection elements Slice1 has no nullable
// form for.
func checkElement(r TypeRef, encodings SupportedEncodings) error {
	if r.Type != nil && r.Optional && encodings.Supports(Slice1) && !nullable(r.Type) {
		return errors.Errorf("optional %s is not supported by Slice1", r.Type.TypeName())
	}
	return nil
}
