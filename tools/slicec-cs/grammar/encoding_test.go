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

func TestSupportedEncodingsCanonicalOrder(t *testing.T) {
	ctx := log.Testing(t)
	s, err := grammar.NewSupportedEncodings(grammar.Slice2, grammar.Slice1, grammar.Slice2)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "list").ThatSlice(s.List()).Equals([]grammar.Encoding{grammar.Slice1, grammar.Slice2})
	assert.For(ctx, "string").ThatString(s.String()).Equals("[Slice1, Slice2]")
	assert.For(ctx, "supports").ThatBoolean(s.Supports(grammar.Slice1)).IsTrue()
}

func TestSupportedEncodingsRejects(t *testing.T) {
	ctx := log.Testing(t)
	_, err := grammar.NewSupportedEncodings()
	assert.For(ctx, "empty").ThatError(err).HasCause(grammar.ErrNoEncodings)
	_, err = grammar.NewSupportedEncodings(grammar.Encoding(7))
	assert.For(ctx, "unknown").ThatError(err).HasCause(grammar.ErrUnknownEncoding)
	assert.For(ctx, "zero").That(grammar.SupportedEncodings{}.Len()).Equals(0)
}

func TestParseEncoding(t *testing.T) {
	ctx := log.Testing(t)
	e, err := grammar.ParseEncoding("slice2")
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "encoding").That(e).Equals(grammar.Slice2)
	_, err = grammar.ParseEncoding("Slice3")
	assert.For(ctx, "unknown").ThatError(err).HasCause(grammar.ErrUnknownEncoding)
}

func TestTypeNames(t *testing.T) {
	ctx := log.Testing(t)
	point := &grammar.Struct{Named: grammar.Named{Name: "Point", Module: "Demo::Geo"}}
	for _, test := range []struct {
		ref  grammar.TypeRef
		want string
	}{
		{grammar.TypeRef{Type: grammar.Int32}, "int32"},
		{grammar.TypeRef{Type: grammar.String, Optional: true}, "string?"},
		{grammar.TypeRef{Type: &grammar.Sequence{Element: grammar.TypeRef{Type: point, Optional: true}}}, "sequence<Point?>"},
		{grammar.TypeRef{Type: &grammar.Dictionary{
			Key:   grammar.TypeRef{Type: grammar.String},
			Value: grammar.TypeRef{Type: grammar.ServiceAddress{}},
		}}, "dictionary<string, ServiceAddress>"},
	} {
		assert.For(ctx, test.want).ThatString(test.ref.String()).Equals(test.want)
	}
	assert.For(ctx, "scoped").ThatString(point.ScopedName()).Equals("::Demo::Geo::Point")
	assert.For(ctx, "namespace").ThatString(point.Namespace()).Equals("Demo.Geo")
	assert.For(ctx, "find").That(grammar.FindPrimitive("varuint62")).Equals(grammar.VarUInt62)
	assert.For(ctx, "not found").That(grammar.FindPrimitive("Point")).Equals(grammar.InvalidPrimitive)
}
