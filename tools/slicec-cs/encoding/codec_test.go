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
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

func TestCSType(t *testing.T) {
	ctx := log.Testing(t)
	color := &grammar.Enum{Named: grammar.Named{Name: "Color", Module: "Demo::Paint"}}
	for _, test := range []struct {
		ref  grammar.TypeRef
		want string
	}{
		{grammar.TypeRef{Type: grammar.UInt8}, "byte"},
		{grammar.TypeRef{Type: grammar.VarInt62, Optional: true}, "long?"},
		{grammar.TypeRef{Type: color}, "global::Demo.Paint.Color"},
		{grammar.TypeRef{Type: &grammar.Sequence{Element: grammar.TypeRef{Type: grammar.String, Optional: true}}}, "IList<string?>"},
		{grammar.TypeRef{Type: &grammar.Dictionary{
			Key:   grammar.TypeRef{Type: grammar.String},
			Value: grammar.TypeRef{Type: grammar.ServiceAddress{}},
		}}, "IDictionary<string, ServiceAddress>"},
	} {
		assert.For(ctx, test.want).ThatString(CSType(test.ref)).Equals(test.want)
	}
}

func TestPrimitiveCodecsMatchAcrossEncodings(t *testing.T) {
	ctx := log.Testing(t)
	for p := range primitives {
		assert.For(ctx, "%v", p).That(codecFor(p, grammar.Slice1)).Equals(codecFor(p, grammar.Slice2))
	}
	c := codecFor(grammar.Float64, grammar.Slice2)
	assert.For(ctx, "encode").ThatString(c.EncodeValue("this.F")).Equals("encoder.EncodeFloat64(this.F)")
	assert.For(ctx, "size").That(c.Size).Equals(8)
}

func TestEnumCodec(t *testing.T) {
	ctx := log.Testing(t)
	plain := &grammar.Enum{Named: grammar.Named{Name: "Color"}}
	sized := &grammar.Enum{Named: grammar.Named{Name: "Level"}, Underlying: grammar.UInt16}
	assert.For(ctx, "plain").ThatString(codecFor(plain, grammar.Slice2).EncodeValue("v")).Equals("encoder.EncodeColor(v)")
	assert.For(ctx, "plain size").That(codecFor(plain, grammar.Slice2).Size).Equals(0)
	assert.For(ctx, "sized size").That(codecFor(sized, grammar.Slice2).Size).Equals(2)
	assert.For(ctx, "same codec").That(codecFor(plain, grammar.Slice1)).Equals(codecFor(plain, grammar.Slice2))

	both, err := grammar.NewSupportedEncodings(grammar.Slice1, grammar.Slice2)
	assert.For(ctx, "encodings").ThatError(err).Succeeded()
	fields := []*grammar.Field{{Name: "color", Type: grammar.TypeRef{Type: plain}}}
	for _, dir := range []Direction{Decode, Encode} {
		b, err := Blocks(fields, both, dir)
		assert.For(ctx, "%s err", dir).ThatError(err).Succeeded()
		assert.For(ctx, "%s collapsed", dir).ThatString(b.String()).DoesNotContain("SliceEncoding.Slice1")
	}
}

func TestSequenceOfOptionalsDiverges(t *testing.T) {
	ctx := log.Testing(t)
	seq := &grammar.Sequence{Element: grammar.TypeRef{Type: grammar.ServiceAddress{}, Optional: true}}
	s1 := codecFor(seq, grammar.Slice1)
	s2 := codecFor(seq, grammar.Slice2)
	assert.For(ctx, "differ").That(s1).NotEquals(s2)
	assert.For(ctx, "slice1").ThatString(s1.EncodeValue("v")).Equals(
		"encoder.EncodeSequence(v, (ref SliceEncoder encoder, ServiceAddress? value) => encoder.EncodeNullableServiceAddress(value))")
	assert.For(ctx, "slice2").ThatString(s2.EncodeValue("v")).Equals(
		"encoder.EncodeSequenceOfOptionals(v, (ref SliceEncoder encoder, ServiceAddress value) => encoder.EncodeServiceAddress(value))")
	assert.For(ctx, "slice2 decode").ThatString(s2.Decode).Equals(
		"decoder.DecodeSequenceOfOptionals((ref SliceDecoder decoder) => decoder.DecodeServiceAddress())")
}

func TestSequenceOfFixedSize(t *testing.T) {
	ctx := log.Testing(t)
	c := codecFor(&grammar.Sequence{Element: grammar.TypeRef{Type: grammar.Int32}}, grammar.Slice1)
	assert.For(ctx, "encode").ThatString(c.EncodeValue("v")).Equals("encoder.EncodeSequence(v)")
	assert.For(ctx, "decode").ThatString(c.Decode).Equals("decoder.DecodeSequence<int>()")
	b := codecFor(&grammar.Sequence{Element: grammar.TypeRef{Type: grammar.Bool}}, grammar.Slice1)
	assert.For(ctx, "bool").ThatString(b.Decode).Equals("decoder.DecodeSequence((ref SliceDecoder decoder) => decoder.DecodeBool())")
}

func TestDictionaryCodec(t *testing.T) {
	ctx := log.Testing(t)
	dict := &grammar.Dictionary{
		Key:   grammar.TypeRef{Type: grammar.String},
		Value: grammar.TypeRef{Type: grammar.Int32, Optional: true},
	}
	c := codecFor(dict, grammar.Slice2)
	assert.For(ctx, "encode").ThatString(c.EncodeValue("this.D")).Equals(
		"encoder.EncodeDictionaryWithOptionalValues(this.D, " +
			"(ref SliceEncoder encoder, string key) => encoder.EncodeString(key), " +
			"(ref SliceEncoder encoder, int value) => encoder.EncodeInt32(value))")
	assert.For(ctx, "decode").ThatString(c.Decode).Equals(
		"decoder.DecodeDictionaryWithOptionalValues(size => new Dictionary<string, int?>(size), " +
			"(ref SliceDecoder decoder) => decoder.DecodeString(), " +
			"(ref SliceDecoder decoder) => decoder.DecodeInt32())")
}

func TestInstructionsFor(t *testing.T) {
	ctx := log.Testing(t)
	point := &grammar.Struct{Named: grammar.Named{Name: "Point"}}
	proxy := grammar.TypeRef{Type: grammar.ServiceAddress{}, Optional: true}
	nested := &grammar.Field{Name: "p", Type: grammar.TypeRef{Type: point}}
	optional := &grammar.Field{Name: "s", Type: proxy}
	tagged := &grammar.Field{Name: "t", Type: proxy, Tag: new(int32)}

	assert.For(ctx, "nested").That(InstructionsFor(nested, grammar.Slice1)).DeepEquals(
		[]Instruction{Nested{Field: nested, Type: point}})
	assert.For(ctx, "nullable").That(InstructionsFor(optional, grammar.Slice1)).DeepEquals(
		[]Instruction{Nullable{Field: optional, Codec: nullableCodecFor(grammar.ServiceAddress{})}})
	assert.For(ctx, "bit optional").That(InstructionsFor(optional, grammar.Slice2)).DeepEquals(
		[]Instruction{BitOptional{Field: optional, Codec: codecFor(grammar.ServiceAddress{}, grammar.Slice2)}})
	assert.For(ctx, "slice1 tagged").ThatSlice(InstructionsFor(tagged, grammar.Slice1)).IsEmpty()
	assert.For(ctx, "slice2 tagged").That(InstructionsFor(tagged, grammar.Slice2)).DeepEquals(
		[]Instruction{Tagged{Field: tagged, Tag: 0, Codec: codecFor(grammar.ServiceAddress{}, grammar.Slice2)}})
}

func TestSynthesizeOrder(t *testing.T) {
	ctx := log.Testing(t)
	optProxy := grammar.TypeRef{Type: grammar.ServiceAddress{}, Optional: true}
	two, five := int32(2), int32(5)
	fields := []*grammar.Field{
		{Name: "late", Type: optProxy, Tag: &five},
		{Name: "a", Type: optProxy},
		{Name: "early", Type: optProxy, Tag: &two},
		{Name: "b", Type: optProxy},
	}
	b := Synthesize(fields, grammar.Slice2, Decode)
	assert.For(ctx, "decode").ThatString(b.Render().String()).Equals(
		"var bitSequenceReader = decoder.GetBitSequenceReader(2);\n" +
			"this.A = bitSequenceReader.Read() ? decoder.DecodeServiceAddress() : null;\n" +
			"this.B = bitSequenceReader.Read() ? decoder.DecodeServiceAddress() : null;\n" +
			"this.Early = decoder.DecodeTagged(2, (ref SliceDecoder decoder) => decoder.DecodeServiceAddress() as ServiceAddress?);\n" +
			"this.Late = decoder.DecodeTagged(5, (ref SliceDecoder decoder) => decoder.DecodeServiceAddress() as ServiceAddress?);")
	s1 := Synthesize(fields, grammar.Slice1, Encode)
	assert.For(ctx, "slice1 encode").ThatString(s1.Render().String()).Equals(
		"encoder.EncodeNullableServiceAddress(this.A);\n" +
			"encoder.EncodeNullableServiceAddress(this.B);")
	assert.For(ctx, "fields unchanged").ThatString(fields[0].Name).Equals("late")
}

func TestRenderBitOptionalEncode(t *testing.T) {
	ctx := log.Testing(t)
	fields := []*grammar.Field{{Name: "count", Type: grammar.TypeRef{Type: grammar.Int32, Optional: true}}}
	b := Synthesize(fields, grammar.Slice2, Encode)
	assert.For(ctx, "encode").ThatString(b.Render().String()).Equals(
		"var bitSequenceWriter = encoder.GetBitSequenceWriter(1);\n" +
			"bitSequenceWriter.Write(this.Count is not null);\n" +
			"if (this.Count is {} countValue)\n" +
			"{\n" +
			"    encoder.EncodeInt32(countValue);\n" +
			"}")
}
