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

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/names"
)

// Render returns the C# statements of the block.
func (b Block) Render() *codeblock.Block {
	out := &codeblock.Block{}
	for _, in := range b.Instructions {
		if b.Direction == Encode {
			renderEncode(out, in)
		} else {
			renderDecode(out, in)
		}
	}
	return out
}

func renderEncode(out *codeblock.Block, in Instruction) {
	switch in := in.(type) {
	case Fixed:
		out.Writeln("%s;", in.Codec.EncodeValue("this."+names.Field(in.Field.Name)))
	case Nested:
		out.Writeln("this.%s.Encode(ref encoder);", names.Field(in.Field.Name))
	case BitSequence:
		out.Writeln("var bitSequenceWriter = encoder.GetBitSequenceWriter(%d);", in.Size)
	case BitOptional:
		name := names.Field(in.Field.Name)
		local := names.Local(in.Field.Name, "Value")
		out.Writeln("bitSequenceWriter.Write(this.%s is not null);", name)
		out.Writeln("if (this.%s is {} %s)", name, local)
		out.Writeln("{")
		out.Writeln("%s%s;", codeblock.Indent, in.Codec.EncodeValue(local))
		out.Writeln("}")
	case Nullable:
		out.Writeln("%s;", in.Codec.EncodeValue("this."+names.Field(in.Field.Name)))
	case Tagged:
		name := names.Field(in.Field.Name)
		local := names.Local(in.Field.Name, "Value")
		size := ""
		if in.Codec.Size > 0 {
			size = fmt.Sprintf("size: %d, ", in.Codec.Size)
		}
		out.Writeln("if (this.%s is {} %s)", name, local)
		out.Writeln("{")
		out.Writeln("%sencoder.EncodeTagged(%d, %s%s, %s);", codeblock.Indent, in.Tag, size, local, in.Codec.EncodeAction())
		out.Writeln("}")
	default:
		panic(fmt.Errorf("Unknown instruction %T", in))
	}
}

func renderDecode(out *codeblock.Block, in Instruction) {
	switch in := in.(type) {
	case Fixed:
		out.Writeln("this.%s = %s;", names.Field(in.Field.Name), in.Codec.Decode)
	case Nested:
		out.Writeln("this.%s = new %s(ref decoder);", names.Field(in.Field.Name), csType(in.Type))
	case BitSequence:
		out.Writeln("var bitSequenceReader = decoder.GetBitSequenceReader(%d);", in.Size)
	case BitOptional:
		out.Writeln("this.%s = bitSequenceReader.Read() ? %s : null;", names.Field(in.Field.Name), in.Codec.Decode)
	case Nullable:
		out.Writeln("this.%s = %s;", names.Field(in.Field.Name), in.Codec.Decode)
	case Tagged:
		out.Writeln("this.%s = decoder.DecodeTagged(%d, (ref SliceDecoder decoder) => %s as %s?);",
			names.Field(in.Field.Name), in.Tag, in.Codec.Decode, in.Codec.Type)
	default:
		panic(fmt.Errorf("Unknown instruction %T", in))
	}
}
