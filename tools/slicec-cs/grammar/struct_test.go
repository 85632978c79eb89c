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

package grammar_test

import (
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

func tag(v int32) *int32 { return &v }

func encodings(t *testing.T, list ...grammar.Encoding) grammar.SupportedEncodings {
	s, err := grammar.NewSupportedEncodings(list...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestValidate(t *testing.T) {
	ctx := log.Testing(t)
	both := encodings(t, grammar.Slice1, grammar.Slice2)
	slice2 := encodings(t, grammar.Slice2)
	slice1 := encodings(t, grammar.Slice1)
	i32 := grammar.TypeRef{Type: grammar.Int32}
	optI32 := grammar.TypeRef{Type: grammar.Int32, Optional: true}
	shape := &grammar.Class{Named: grammar.Named{Name: "Shape"}}
	for _, test := range []struct {
		name   string
		s      grammar.Struct
		failed bool
	}{
		{"plain", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "x", Type: i32}, {Name: "y", Type: i32},
		}}, false},
		{"tagged", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "x", Type: i32}, {Name: "y", Type: optI32, Tag: tag(1)},
		}}, false},
		{"no encodings", grammar.Struct{}, true},
		{"duplicate name", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "x", Type: i32}, {Name: "x", Type: i32},
		}}, true},
		{"tagged not optional", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "x", Type: i32, Tag: tag(1)},
		}}, true},
		{"negative tag", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "x", Type: optI32, Tag: tag(-1)},
		}}, true},
		{"duplicate tag", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "x", Type: optI32, Tag: tag(2)}, {Name: "y", Type: optI32, Tag: tag(2)},
		}}, true},
		{"compact tagged", grammar.Struct{Encodings: slice2, IsCompact: true, Fields: []*grammar.Field{
			{Name: "x", Type: optI32, Tag: tag(0)},
		}}, true},
		{"slice1 optional int", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "x", Type: optI32},
		}}, true},
		{"slice2 optional int", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "x", Type: optI32},
		}}, false},
		{"slice1 optional proxy", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "x", Type: grammar.TypeRef{Type: grammar.ServiceAddress{}, Optional: true}},
		}}, false},
		{"class with slice2", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "s", Type: grammar.TypeRef{Type: shape}},
		}}, true},
		{"class with slice1", grammar.Struct{Encodings: slice1, Fields: []*grammar.Field{
			{Name: "s", Type: grammar.TypeRef{Type: shape, Optional: true}},
		}}, false},
		{"optional key", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "d", Type: grammar.TypeRef{Type: &grammar.Dictionary{Key: optI32, Value: i32}}},
		}}, true},
		{"slice1 sequence of optional int", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "items", Type: grammar.TypeRef{Type: &grammar.Sequence{Element: optI32}}},
		}}, true},
		{"slice2 sequence of optional int", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "items", Type: grammar.TypeRef{Type: &grammar.Sequence{Element: optI32}}},
		}}, false},
		{"slice1 sequence of optional proxy", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "items", Type: grammar.TypeRef{Type: &grammar.Sequence{
				Element: grammar.TypeRef{Type: grammar.ServiceAddress{}, Optional: true}}}},
		}}, false},
		{"slice1 dictionary of optional string", grammar.Struct{Encodings: both, Fields: []*grammar.Field{
			{Name: "d", Type: grammar.TypeRef{Type: &grammar.Dictionary{
				Key: i32, Value: grammar.TypeRef{Type: grammar.String, Optional: true}}}},
		}}, true},
		{"slice1 nested optional element", grammar.Struct{Encodings: slice1, Fields: []*grammar.Field{
			{Name: "d", Type: grammar.TypeRef{Type: &grammar.Dictionary{
				Key: i32, Value: grammar.TypeRef{Type: &grammar.Sequence{Element: optI32}}}}},
		}}, true},
		{"slice1 only tagged", grammar.Struct{Encodings: slice1, Fields: []*grammar.Field{
			{Name: "x", Type: i32}, {Name: "name", Type: grammar.TypeRef{Type: grammar.String, Optional: true}, Tag: tag(1)},
		}}, true},
		{"missing type", grammar.Struct{Encodings: slice2, Fields: []*grammar.Field{
			{Name: "x"},
		}}, true},
	} {
		test.s.Name = "S"
		err := test.s.Validate()
		if test.failed {
			assert.For(ctx, test.name).ThatError(err).HasCause(grammar.ErrInvalidStruct)
		} else {
			assert.For(ctx, test.name).ThatError(err).Succeeded()
		}
	}
}
