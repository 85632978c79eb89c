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

import "strings"

// Type is the interface to anything that can be the type of a field.
type Type interface {
	isType() // A dummy function that's implemented by all grammar types.
	// TypeName returns the Slice spelling of the type.
	TypeName() string
}

// TypeRef is a use of a type, which may be marked optional.
type TypeRef struct {
	Type     Type
	Optional bool
}

func (r TypeRef) String() string {
	if r.Type == nil {
		return "<nil>"
	}
	if r.Optional {
		return r.Type.TypeName() + "?"
	}
	return r.Type.TypeName()
}

// Named is embedded by the user defined types.
type Named struct {
	Name   string // The unscoped identifier.
	Module string // The Slice module the type is declared in, eg "Demo::Geo".
}

// ScopedName returns the fully scoped Slice name, eg "::Demo::Geo::Point".
func (n Named) ScopedName() string {
	if n.Module == "" {
		return "::" + n.Name
	}
	return "::" + n.Module + "::" + n.Name
}

// Namespace returns the C# namespace of the module the type is declared in.
func (n Named) Namespace() string { return Namespace(n.Module) }

// Namespace maps a Slice module name to its C# namespace.
func Namespace(module string) string {
	return strings.ReplaceAll(strings.TrimPrefix(module, "::"), "::", ".")
}

// Primitive is one of the builtin Slice types.
type Primitive int

const (
	InvalidPrimitive Primitive = iota
	Bool
	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	VarInt32
	VarUInt32
	Int64
	UInt64
	VarInt62
	VarUInt62
	Float32
	Float64
	String
)

var primitiveNames = []string{
	InvalidPrimitive: "invalid",
	Bool:             "bool",
	Int8:             "int8",
	UInt8:            "uint8",
	Int16:            "int16",
	UInt16:           "uint16",
	Int32:            "int32",
	UInt32:           "uint32",
	VarInt32:         "varint32",
	VarUInt32:        "varuint32",
	Int64:            "int64",
	UInt64:           "uint64",
	VarInt62:         "varint62",
	VarUInt62:        "varuint62",
	Float32:          "float32",
	Float64:          "float64",
	String:           "string",
}

func (Primitive) isType() {}

// TypeName returns the Slice keyword for the primitive.
func (p Primitive) TypeName() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return primitiveNames[InvalidPrimitive]
	}
	return primitiveNames[p]
}

func (p Primitive) String() string { return p.TypeName() }

// FindPrimitive returns the primitive with the Slice keyword name, or
// InvalidPrimitive.
func FindPrimitive(name string) Primitive {
	for i, n := range primitiveNames {
		if i != int(InvalidPrimitive) && n == name {
			return Primitive(i)
		}
	}
	return InvalidPrimitive
}

// Enum is a Slice enum. Underlying is InvalidPrimitive when the enum has no
// underlying type.
type Enum struct {
	Named
	Underlying Primitive
}

func (*Enum) isType() {}

// TypeName returns the enum's identifier.
func (t *Enum) TypeName() string { return t.Name }

// Sequence is a Slice sequence.
type Sequence struct {
	Element TypeRef
}

func (*Sequence) isType() {}

// TypeName returns the sequence spelling, eg "sequence<int32>".
func (t *Sequence) TypeName() string { return "sequence<" + t.Element.String() + ">" }

// Dictionary is a Slice dictionary. Keys are never optional.
type Dictionary struct {
	Key   TypeRef
	Value TypeRef
}

func (*Dictionary) isType() {}

// TypeName returns the dictionary spelling, eg "dictionary<string, int32>".
func (t *Dictionary) TypeName() string {
	return "dictionary<" + t.Key.String() + ", " + t.Value.String() + ">"
}

// ServiceAddress is the builtin proxy type.
type ServiceAddress struct{}

func (ServiceAddress) isType() {}

// TypeName returns "ServiceAddress".
func (ServiceAddress) TypeName() string { return "ServiceAddress" }

// Custom is a type whose encoding is supplied by hand written code.
type Custom struct {
	Named
}

func (*Custom) isType() {}

// TypeName returns the custom type's identifier.
func (t *Custom) TypeName() string { return t.Name }

// Class is a Slice class. Classes can only be encoded with Slice1.
type Class struct {
	Named
}

func (*Class) isType() {}

// TypeName returns the class identifier.
func (t *Class) TypeName() string { return t.Name }
