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

// Package encoding synthesizes the C# statements that encode and decode the
// fields of a struct, for each Slice encoding the struct supports.
//
// Field instructions are computed per encoding as a small intermediate
// representation. When a struct supports both encodings the two instruction
// sequences are compared structurally: identical sequences produce a single
// code path, otherwise the generated code branches on the encoding carried by
// the encoder or decoder at run time.
package encoding

import (
	"github.com/InsertCreativityHere/icerpc-csharp/core/fault"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

const (
	// ErrNoEncodings is returned when asked to generate for an empty set of
	// supported encodings.
	ErrNoEncodings = grammar.ErrNoEncodings
	// ErrInconsistentEncodings is returned when the Slice1 block has
	// instructions but the Slice2 block does not. Every field Slice1 can
	// encode is also encoded by Slice2, so this is an internal error.
	ErrInconsistentEncodings = fault.Const("non-empty Slice1 block with an empty Slice2 block")
)

// Direction selects between encoding and decoding.
type Direction int

const (
	// Decode generates the body of the decoding constructor.
	Decode Direction = iota
	// Encode generates the body of the Encode method.
	Encode
)

func (d Direction) String() string {
	if d == Encode {
		return "encode"
	}
	return "decode"
}

// variable returns the name of the encoder or decoder parameter.
func (d Direction) variable() string {
	if d == Encode {
		return "encoder"
	}
	return "decoder"
}
