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

package encoding

import (
	"fmt"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

// valuePlaceholder stands in Codec.Encode for the expression being encoded.
const valuePlaceholder = "{value}"

// Codec is how a type is read and written by one encoding.
// It is a plain value so instructions holding codecs stay comparable.
type Codec struct {
	Type   string // The C# type of the value.
	Encode string // The encode expression, with valuePlaceholder for the value.
	Decode string // The decode expression.
	Size   int    // The fixed encoded size in bytes, or 0 if variable.
}

// EncodeValue returns the encode expression applied to value.
func (c Codec) EncodeValue(value string) string {
	return strings.ReplaceAll(c.Encode, valuePlaceholder, value)
}

// EncodeAction returns the codec as a C# EncodeAction lambda.
func (c Codec) EncodeAction() string {
	return fmt.Sprintf("(ref SliceEncoder encoder, %s value) => %s", c.Type, c.EncodeValue("value"))
}

// DecodeFunc returns the codec as a C# DecodeFunc lambda.
func (c Codec) DecodeFunc() string {
	return "(ref SliceDecoder decoder) => " + c.Decode
}

type primitiveInfo struct {
	cs     string // C# type
	method string // suffix of the Encode/Decode methods
	size   int
}

var primitives = map[grammar.Primitive]primitiveInfo{
	grammar.Bool:      {"bool", "Bool", 1},
	grammar.Int8:      {"sbyte", "Int8", 1},
	grammar.UInt8:     {"byte", "UInt8", 1},
	grammar.Int16:     {"short", "Int16", 2},
	grammar.UInt16:    {"ushort", "UInt16", 2},
	grammar.Int32:     {"int", "Int32", 4},
	grammar.UInt32:    {"uint", "UInt32", 4},
	grammar.VarInt32:  {"int", "VarInt32", 0},
	grammar.VarUInt32: {"uint", "VarUInt32", 0},
	grammar.Int64:     {"long", "Int64", 8},
	grammar.UInt64:    {"ulong", "UInt64", 8},
	grammar.VarInt62:  {"long", "VarInt62", 0},
	grammar.VarUInt62: {"ulong", "VarUInt62", 0},
	grammar.Float32:   {"float", "Float32", 4},
	grammar.Float64:   {"double", "Float64", 8},
	grammar.String:    {"string", "String", 0},
}

// CSType returns the C# spelling of the type reference, including the
// nullable marker for optional references.
func CSType(r grammar.TypeRef) string {
	s := csType(r.Type)
	if r.Optional {
		s += "?"
	}
	return s
}

func csType(t grammar.Type) string {
	switch t := t.(type) {
	case grammar.Primitive:
		return primitives[t].cs
	case *grammar.Enum:
		return qualified(t.Named)
	case *grammar.Struct:
		return qualified(t.Named)
	case *grammar.Custom:
		return qualified(t.Named)
	case *grammar.Class:
		return qualified(t.Named)
	case *grammar.Sequence:
		return "IList<" + CSType(t.Element) + ">"
	case *grammar.Dictionary:
		return "IDictionary<" + CSType(t.Key) + ", " + CSType(t.Value) + ">"
	case grammar.ServiceAddress:
		return "ServiceAddress"
	default:
		panic(fmt.Errorf("Unsupported type %T", t))
	}
}

func qualified(n grammar.Named) string {
	if n.Module == "" {
		return "global::" + n.Name
	}
	return "global::" + n.Namespace() + "." + n.Name
}

// codecFor returns the codec of a non-optional value of type t under enc.
// The codecs of the two encodings only differ where the type's own layout
// does, which is for collections of optional values. Enums are encoded by
// their generated extension methods, which handle both encodings.
func codecFor(t grammar.Type, enc grammar.Encoding) Codec {
	cs := csType(t)
	switch t := t.(type) {
	case grammar.Primitive:
		p := primitives[t]
		return Codec{
			Type:   cs,
			Encode: "encoder.Encode" + p.method + "(" + valuePlaceholder + ")",
			Decode: "decoder.Decode" + p.method + "()",
			Size:   p.size,
		}
	case *grammar.Enum:
		size := 0
		if t.Underlying != grammar.InvalidPrimitive {
			size = primitives[t.Underlying].size
		}
		return Codec{
			Type:   cs,
			Encode: "encoder.Encode" + t.Name + "(" + valuePlaceholder + ")",
			Decode: "decoder.Decode" + t.Name + "()",
			Size:   size,
		}
	case *grammar.Struct:
		return Codec{
			Type:   cs,
			Encode: valuePlaceholder + ".Encode(ref encoder)",
			Decode: "new " + cs + "(ref decoder)",
		}
	case *grammar.Custom:
		return Codec{
			Type:   cs,
			Encode: "encoder.Encode" + t.Name + "(" + valuePlaceholder + ")",
			Decode: "decoder.Decode" + t.Name + "()",
		}
	case *grammar.Class:
		return Codec{
			Type:   cs,
			Encode: "encoder.EncodeClass(" + valuePlaceholder + ")",
			Decode: "decoder.DecodeClass<" + cs + ">()",
		}
	case grammar.ServiceAddress:
		return Codec{
			Type:   cs,
			Encode: "encoder.EncodeServiceAddress(" + valuePlaceholder + ")",
			Decode: "decoder.DecodeServiceAddress()",
		}
	case *grammar.Sequence:
		return sequenceCodec(t, enc)
	case *grammar.Dictionary:
		return dictionaryCodec(t, enc)
	default:
		panic(fmt.Errorf("Unsupported type %T", t))
	}
}

// nullableCodecFor returns the Slice1 codec of an optional value of type t.
// Only proxies and classes have a nullable form. Other optional types, as
// fields or as collection elements, are rejected by Struct.Validate when
// Slice1 is supported.
func nullableCodecFor(t grammar.Type) Codec {
	c := codecFor(t, grammar.Slice1)
	c.Type += "?"
	switch t.(type) {
	case grammar.ServiceAddress:
		c.Encode = "encoder.EncodeNullableServiceAddress(" + valuePlaceholder + ")"
		c.Decode = "decoder.DecodeNullableServiceAddress()"
	case *grammar.Class:
		c.Encode = "encoder.EncodeNullableClass(" + valuePlaceholder + ")"
		c.Decode = "decoder.DecodeNullableClass<" + csType(t) + ">()"
	}
	return c
}

// elementCodec returns the codec used for the elements of a collection.
// Under Slice1 optional elements use their nullable form inline.
func elementCodec(r grammar.TypeRef, enc grammar.Encoding) Codec {
	if r.Optional && enc == grammar.Slice1 {
		return nullableCodecFor(r.Type)
	}
	return codecFor(r.Type, enc)
}

func sequenceCodec(t *grammar.Sequence, enc grammar.Encoding) Codec {
	cs := csType(t)
	e := elementCodec(t.Element, enc)
	if p, ok := t.Element.Type.(grammar.Primitive); ok && !t.Element.Optional && p != grammar.Bool && primitives[p].size > 0 {
		return Codec{
			Type:   cs,
			Encode: "encoder.EncodeSequence(" + valuePlaceholder + ")",
			Decode: "decoder.DecodeSequence<" + e.Type + ">()",
		}
	}
	if t.Element.Optional && enc == grammar.Slice2 {
		return Codec{
			Type:   cs,
			Encode: "encoder.EncodeSequenceOfOptionals(" + valuePlaceholder + ", " + e.EncodeAction() + ")",
			Decode: "decoder.DecodeSequenceOfOptionals(" + e.DecodeFunc() + ")",
		}
	}
	return Codec{
		Type:   cs,
		Encode: "encoder.EncodeSequence(" + valuePlaceholder + ", " + e.EncodeAction() + ")",
		Decode: "decoder.DecodeSequence(" + e.DecodeFunc() + ")",
	}
}

func dictionaryCodec(t *grammar.Dictionary, enc grammar.Encoding) Codec {
	cs := csType(t)
	k := codecFor(t.Key.Type, enc)
	v := elementCodec(t.Value, enc)
	encode, decode := "EncodeDictionary", "DecodeDictionary"
	if t.Value.Optional && enc == grammar.Slice2 {
		encode, decode = "EncodeDictionaryWithOptionalValues", "DecodeDictionaryWithOptionalValues"
	}
	create := "size => new Dictionary<" + CSType(t.Key) + ", " + CSType(t.Value) + ">(size)"
	return Codec{
		Type: cs,
		Encode: "encoder." + encode + "(" + valuePlaceholder + ", " +
			fmt.Sprintf("(ref SliceEncoder encoder, %s key) => %s", k.Type, k.EncodeValue("key")) + ", " +
			v.EncodeAction() + ")",
		Decode: "decoder." + decode + "(" + create + ", " + k.DecodeFunc() + ", " + v.DecodeFunc() + ")",
	}
}
