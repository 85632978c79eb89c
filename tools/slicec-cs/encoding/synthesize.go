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
	"sort"

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

// InstructionsFor returns the instructions that encode or decode the field
// under enc. The same instructions serve both directions.
//
// Slice1 has no tag section for struct members, so a tagged field has no
// instructions under Slice1 and decodes as absent.
func InstructionsFor(f *grammar.Field, enc grammar.Encoding) []Instruction {
	if f.IsTagged() {
		if enc == grammar.Slice1 {
			return nil
		}
		return []Instruction{Tagged{Field: f, Tag: *f.Tag, Codec: codecFor(f.Type.Type, enc)}}
	}
	if f.Type.Optional {
		if enc == grammar.Slice1 {
			return []Instruction{Nullable{Field: f, Codec: nullableCodecFor(f.Type.Type)}}
		}
		return []Instruction{BitOptional{Field: f, Codec: codecFor(f.Type.Type, enc)}}
	}
	if s, ok := f.Type.Type.(*grammar.Struct); ok {
		return []Instruction{Nested{Field: f, Type: s}}
	}
	return []Instruction{Fixed{Field: f, Codec: codecFor(f.Type.Type, enc)}}
}

// Block is the instruction sequence for one encoding and direction.
type Block struct {
	Encoding     grammar.Encoding
	Direction    Direction
	Instructions []Instruction
}

// IsEmpty returns true if the block has no instructions.
func (b Block) IsEmpty() bool { return len(b.Instructions) == 0 }

// Equal returns true if the two blocks have the same direction and the same
// instructions. The encodings are not compared.
func (b Block) Equal(o Block) bool {
	if b.Direction != o.Direction || len(b.Instructions) != len(o.Instructions) {
		return false
	}
	for i, in := range b.Instructions {
		if in != o.Instructions[i] {
			return false
		}
	}
	return true
}

// Synthesize builds the block for the fields under enc.
// Untagged fields come first in declaration order, preceded under Slice2 by
// a bit sequence when any of them is optional. Tagged fields follow in tag
// order. No framing is added.
func Synthesize(fields []*grammar.Field, enc grammar.Encoding, dir Direction) Block {
	b := Block{Encoding: enc, Direction: dir}
	var untagged, tagged []*grammar.Field
	optional := 0
	for _, f := range fields {
		switch {
		case f.IsTagged():
			tagged = append(tagged, f)
		case f.Type.Optional:
			optional++
			fallthrough
		default:
			untagged = append(untagged, f)
		}
	}
	if enc == grammar.Slice2 && optional > 0 {
		b.Instructions = append(b.Instructions, BitSequence{Size: optional})
	}
	for _, f := range untagged {
		b.Instructions = append(b.Instructions, InstructionsFor(f, enc)...)
	}
	sort.SliceStable(tagged, func(i, j int) bool { return *tagged[i].Tag < *tagged[j].Tag })
	for _, f := range tagged {
		b.Instructions = append(b.Instructions, InstructionsFor(f, enc)...)
	}
	return b
}
