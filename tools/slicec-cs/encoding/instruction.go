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

import "github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"

// Instruction is a single field level step of an encode or decode block.
// All instructions are comparable values, so two blocks can be compared
// with ==.
type Instruction interface {
	isInstruction() // A dummy function that's implemented by all instructions.
}

// Fixed reads or writes a field directly with its codec.
type Fixed struct {
	Field *grammar.Field
	Codec Codec
}

// Nested delegates a struct typed field to the nested struct's own Encode
// method and decoding constructor.
type Nested struct {
	Field *grammar.Field
	Type  *grammar.Struct
}

// BitSequence declares the Slice2 bit sequence that records which optional
// untagged fields are set.
type BitSequence struct {
	Size int
}

// BitOptional is a Slice2 optional untagged field guarded by its bit in the
// bit sequence.
type BitOptional struct {
	Field *grammar.Field
	Codec Codec
}

// Nullable is a Slice1 optional untagged field, written inline with the
// nullable form of its codec.
type Nullable struct {
	Field *grammar.Field
	Codec Codec
}

// Tagged is a Slice2 tag framed field.
type Tagged struct {
	Field *grammar.Field
	Tag   int32
	Codec Codec
}

func (Fixed) isInstruction()       {}
func (Nested) isInstruction()      {}
func (BitSequence) isInstruction() {}
func (BitOptional) isInstruction() {}
func (Nullable) isInstruction()    {}
func (Tagged) isInstruction()      {}
