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

package codeblock_test

import (
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
)

func TestWrite(t *testing.T) {
	ctx := log.Testing(t)
	b := &codeblock.Block{}
	assert.For(ctx, "empty").ThatBoolean(b.IsEmpty()).IsTrue()
	b.Writeln("this.X = decoder.DecodeInt32();")
	b.Writeln("this.%s = %d;", "Y", 2)
	b.Write("a\nb\n")
	assert.For(ctx, "lines").ThatSlice(b.Lines()).Equals([]string{
		"this.X = decoder.DecodeInt32();",
		"this.Y = 2;",
		"a",
		"b",
	})
	literal := "100%" // no args: Writeln must write the string verbatim
	assert.For(ctx, "percent").ThatString(codeblock.New("").Writeln(literal).String()).Equals("100%")
}

func TestIndent(t *testing.T) {
	ctx := log.Testing(t)
	b := codeblock.New("if (x)\n{\n\ny();\n}")
	assert.For(ctx, "indent").ThatString(b.Indent().String()).Equals("    if (x)\n    {\n\n    y();\n    }")
	assert.For(ctx, "unchanged").ThatString(b.String()).Equals("if (x)\n{\n\ny();\n}")
}

func TestAddBlock(t *testing.T) {
	ctx := log.Testing(t)
	b := &codeblock.Block{}
	b.AddBlock(codeblock.New("a"))
	b.AddBlock(&codeblock.Block{})
	b.AddBlock(nil)
	b.AddBlock(codeblock.New("b"))
	b.Append(codeblock.New("c"))
	assert.For(ctx, "blocks").ThatString(b.String()).Equals("a\n\nb\nc")
	var none *codeblock.Block
	assert.For(ctx, "nil").ThatString(none.String()).Equals("")
}
