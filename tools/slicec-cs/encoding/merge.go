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
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
	"github.com/pkg/errors"
)

// Merge combines the Slice1 and Slice2 blocks of the same direction into
// the code for a struct that supports both encodings.
//
// Equal blocks produce a single path. An empty Slice1 block produces the
// Slice2 block behind a guard with no else arm. Two non-empty blocks produce
// an if/else on the run time encoding. A non-empty Slice1 block with an empty
// Slice2 block is an internal error.
func Merge(slice1, slice2 Block) (*codeblock.Block, error) {
	if slice1.Equal(slice2) {
		return slice2.Render(), nil
	}
	variable := slice2.Direction.variable()
	out := &codeblock.Block{}
	switch {
	case slice1.IsEmpty() && !slice2.IsEmpty():
		out.Writeln("if (%s.Encoding != SliceEncoding.Slice1) // Slice2 only", variable)
		out.Writeln("{")
		out.Append(slice2.Render().Indent())
		out.Writeln("}")
	case !slice1.IsEmpty() && !slice2.IsEmpty():
		out.Writeln("if (%s.Encoding == SliceEncoding.Slice1)", variable)
		out.Writeln("{")
		out.Append(slice1.Render().Indent())
		out.Writeln("}")
		out.Writeln("else // Slice2")
		out.Writeln("{")
		out.Append(slice2.Render().Indent())
		out.Writeln("}")
	default:
		return nil, errors.Wrapf(ErrInconsistentEncodings, "%s block", slice2.Direction)
	}
	return out, nil
}

// Blocks returns the code for the fields in direction dir, for all of the
// supported encodings.
// A single encoding is rendered as is, without any comparison.
func Blocks(fields []*grammar.Field, supported grammar.SupportedEncodings, dir Direction) (*codeblock.Block, error) {
	list := supported.List()
	switch len(list) {
	case 0:
		return nil, ErrNoEncodings
	case 1:
		return Synthesize(fields, list[0], dir).Render(), nil
	default:
		return Merge(
			Synthesize(fields, grammar.Slice1, dir),
			Synthesize(fields, grammar.Slice2, dir),
		)
	}
}
