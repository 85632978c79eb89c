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

// Package codeblock holds blocks of generated source text.
package codeblock

import (
	"fmt"
	"strings"
)

// Indent is the string used for one level of indentation.
const Indent = "    "

// Block is a sequence of lines of generated code.
// The zero value is an empty block ready to use.
type Block struct {
	lines []string
}

// New returns a block holding text, split into lines.
func New(text string) *Block {
	b := &Block{}
	b.Write(text)
	return b
}

// Write appends text, which may span several lines.
func (b *Block) Write(text string) *Block {
	if text == "" {
		return b
	}
	b.lines = append(b.lines, strings.Split(strings.TrimSuffix(text, "\n"), "\n")...)
	return b
}

// Writeln appends a single formatted line.
func (b *Block) Writeln(format string, args ...interface{}) *Block {
	if len(args) == 0 {
		return b.Write(format + "\n")
	}
	return b.Write(fmt.Sprintf(format, args...) + "\n")
}

// Append appends the lines of o with no separation.
func (b *Block) Append(o *Block) *Block {
	if o != nil {
		b.lines = append(b.lines, o.lines...)
	}
	return b
}

// AddBlock appends o, separated from any existing content by a blank line.
// Empty blocks are ignored.
func (b *Block) AddBlock(o *Block) *Block {
	if o.IsEmpty() {
		return b
	}
	if !b.IsEmpty() {
		b.lines = append(b.lines, "")
	}
	return b.Append(o)
}

// Indent returns a copy of the block indented by one level.
// Blank lines are left blank.
func (b *Block) Indent() *Block {
	out := &Block{lines: make([]string, len(b.lines))}
	for i, l := range b.lines {
		if l != "" {
			l = Indent + l
		}
		out.lines[i] = l
	}
	return out
}

// IsEmpty returns true if the block has no lines.
func (b *Block) IsEmpty() bool { return b == nil || len(b.lines) == 0 }

// Lines returns a copy of the lines of the block.
func (b *Block) Lines() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.lines...)
}

// String returns the lines joined by newlines, without a trailing newline.
func (b *Block) String() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.lines, "\n")
}
