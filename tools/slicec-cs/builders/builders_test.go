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

package builders_test

import (
	"strings"
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/builders"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
)

func TestCommentTag(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		tag  builders.CommentTag
		want string
	}{
		{builders.NewCommentTag("summary", "A point."), "/// <summary>A point.</summary>"},
		{builders.NewCommentTagWithAttribute("seealso", "cref", "Color", ""), `/// <seealso cref="Color" />`},
		{builders.NewCommentTag("remarks", "one\ntwo"), "/// <remarks>\n/// one\n/// two\n/// </remarks>"},
	} {
		b := &codeblock.Block{}
		test.tag.Write(b)
		assert.For(ctx, test.tag.Tag).ThatString(b.String()).Equals(test.want)
	}
}

func TestObsoleteAttribute(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "plain").ThatString(builders.ObsoleteAttribute("")).Equals("global::System.Obsolete")
	assert.For(ctx, "reason").ThatString(builders.ObsoleteAttribute(`use "y"`)).Equals(`global::System.Obsolete("use \"y\"")`)
}

func TestFunction(t *testing.T) {
	ctx := log.Testing(t)
	got := builders.NewFunction("public", "", "Point").
		AddComment("summary", "Constructs a point.").
		AddParameter("int", "x", "", "The x.").
		AddParameter("string", "@class", `"a"`, "").
		SetBody(codeblock.New("this.X = x;\nthis.Class = @class;")).
		Build()
	assert.For(ctx, "function").ThatString(got.String()).Equals(strings.Join([]string{
		"/// <summary>Constructs a point.</summary>",
		`/// <param name="x">The x.</param>`,
		`public Point(int x, string @class = "a")`,
		"{",
		"    this.X = x;",
		"    this.Class = @class;",
		"}",
	}, "\n"))
	empty := builders.NewFunction("public readonly", "void", "Encode").AddParameter("ref SliceEncoder", "encoder", "", "").Build()
	assert.For(ctx, "empty body").ThatString(empty.String()).Equals("public readonly void Encode(ref SliceEncoder encoder)\n{\n}")
}

func TestContainer(t *testing.T) {
	ctx := log.Testing(t)
	got := builders.NewContainer("public partial record struct", "Point").
		AddComment("summary", "A point.").
		AddComments(builders.GeneratedRemark("record struct", "struct", "::Demo::Point")).
		AddAttribute(builders.ObsoleteAttribute("")).
		AddBlock(codeblock.New("public int X;")).
		AddBlock(&codeblock.Block{}).
		AddBlock(codeblock.New("public int Y;")).
		Build()
	assert.For(ctx, "container").ThatString(got.String()).Equals(strings.Join([]string{
		"/// <summary>A point.</summary>",
		"/// <remarks>The Slice compiler generated this record struct from Slice struct <c>::Demo::Point</c>.</remarks>",
		"[global::System.Obsolete]",
		"public partial record struct Point",
		"{",
		"    public int X;",
		"",
		"    public int Y;",
		"}",
	}, "\n"))
}
