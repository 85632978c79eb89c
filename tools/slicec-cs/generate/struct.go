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

package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/builders"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/encoding"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/names"
	"github.com/pkg/errors"
)

const (
	skipTagged   = "decoder.SkipTagged();"
	tagEndMarker = "encoder.EncodeVarInt32(Slice2Definitions.TagEndMarker);"
)

// Struct returns the C# record struct declaration for s.
// It fails if s is invalid, or if the encoding blocks for s are
// inconsistent. The latter is an internal error and should abort generation.
func Struct(ctx context.Context, s *grammar.Struct) (*codeblock.Block, error) {
	ctx = log.V{"struct": s.Name}.Bind(ctx)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	name := names.Type(s.Name)
	access := accessModifier(s)

	declaration := []string{access}
	if s.Readonly {
		declaration = append(declaration, "readonly")
	}
	declaration = append(declaration, "partial", "record", "struct")

	b := builders.NewContainer(strings.Join(declaration, " "), name)
	if text := summary(s.Doc); text != "" {
		b.AddComment("summary", text)
	}
	b.AddComments(builders.GeneratedRemark("record struct", "struct", s.ScopedName()))
	b.AddComments(seeAlso(s.Doc)...)
	if s.Deprecated != nil {
		b.AddAttribute(builders.ObsoleteAttribute(s.Deprecated.Reason))
	}

	fields := &codeblock.Block{}
	for _, f := range s.Fields {
		fields.AddBlock(fieldDeclaration(s, f))
	}
	b.AddBlock(fields)
	b.AddBlock(mainConstructor(s, name, access))

	decode, err := encoding.Blocks(s.Fields, s.Encodings, encoding.Decode)
	if err != nil {
		return nil, errors.Wrapf(err, "struct %s", s.Name)
	}
	if !s.IsCompact {
		decode.Writeln(skipTagged)
	}
	b.AddBlock(builders.NewFunction(access, "", name).
		AddComment("summary", fmt.Sprintf(
			`Constructs a new instance of <see cref="%s" /> and decodes its fields from a Slice decoder.`, name)).
		AddParameter("ref SliceDecoder", "decoder", "", "The Slice decoder.").
		SetBody(decode).
		Build())

	encode, err := encoding.Blocks(s.Fields, s.Encodings, encoding.Encode)
	if err != nil {
		return nil, errors.Wrapf(err, "struct %s", s.Name)
	}
	if !s.IsCompact {
		encode.Writeln(tagEndMarker)
	}
	b.AddBlock(builders.NewFunction(access+" readonly", "void", "Encode").
		AddComment("summary", "Encodes the fields of this struct with a Slice encoder.").
		AddParameter("ref SliceEncoder", "encoder", "", "The Slice encoder.").
		SetBody(encode).
		Build())

	log.D(ctx, "Generated %d fields for %v", len(s.Fields), s.Encodings)
	return b.Build(), nil
}

func accessModifier(s *grammar.Struct) string {
	if s.Internal {
		return "internal"
	}
	return "public"
}

func fieldDeclaration(s *grammar.Struct, f *grammar.Field) *codeblock.Block {
	b := &codeblock.Block{}
	if text := summary(f.Doc); text != "" {
		builders.NewCommentTag("summary", text).Write(b)
	}
	for _, tag := range seeAlso(f.Doc) {
		tag.Write(b)
	}
	if f.Deprecated != nil {
		b.Writeln("[%s]", builders.ObsoleteAttribute(f.Deprecated.Reason))
	}
	modifiers := accessModifier(s)
	if s.Readonly {
		modifiers += " readonly"
	}
	b.Writeln("%s %s %s;", modifiers, encoding.CSType(f.Type), names.Field(f.Name))
	return b
}

// firstDefaulted returns the index of the first of the trailing fields that
// all have default values.
func firstDefaulted(fields []*grammar.Field) int {
	i := len(fields)
	for i > 0 && fields[i-1].Default != "" {
		i--
	}
	return i
}

func mainConstructor(s *grammar.Struct, name, access string) *codeblock.Block {
	f := builders.NewFunction(access, "", name).
		AddComment("summary", fmt.Sprintf(`Constructs a new instance of <see cref="%s" />.`, name))
	body := &codeblock.Block{}
	defaulted := firstDefaulted(s.Fields)
	for i, field := range s.Fields {
		def := ""
		if i >= defaulted {
			def = field.Default
		}
		param := names.Parameter(field.Name)
		f.AddParameter(encoding.CSType(field.Type), param, def, summary(field.Doc))
		body.Writeln("this.%s = %s;", names.Field(field.Name), param)
	}
	return f.SetBody(body).Build()
}
