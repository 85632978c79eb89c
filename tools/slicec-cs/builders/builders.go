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

// Package builders assembles C# declarations from blocks of generated code.
package builders

import (
	"fmt"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
)

// CommentTag is a single XML doc comment element.
type CommentTag struct {
	Tag       string
	Attribute string // The attribute name, eg "cref". Empty for none.
	Value     string // The attribute value.
	Content   string
}

// NewCommentTag returns a tag with content and no attribute.
func NewCommentTag(tag, content string) CommentTag {
	return CommentTag{Tag: tag, Content: content}
}

// NewCommentTagWithAttribute returns a tag with a single attribute.
func NewCommentTagWithAttribute(tag, attribute, value, content string) CommentTag {
	return CommentTag{Tag: tag, Attribute: attribute, Value: value, Content: content}
}

// Write appends the tag to b as /// lines.
func (c CommentTag) Write(b *codeblock.Block) {
	open := c.Tag
	if c.Attribute != "" {
		open = fmt.Sprintf("%s %s=\"%s\"", c.Tag, c.Attribute, c.Value)
	}
	content := strings.TrimSpace(c.Content)
	switch {
	case content == "":
		b.Writeln("/// <%s />", open)
	case !strings.Contains(content, "\n"):
		b.Writeln("/// <%s>%s</%s>", open, content, c.Tag)
	default:
		b.Writeln("/// <%s>", open)
		for _, line := range strings.Split(content, "\n") {
			b.Writeln("/// %s", strings.TrimRight(line, " "))
		}
		b.Writeln("/// </%s>", c.Tag)
	}
}

// ObsoleteAttribute returns the C# attribute marking a deprecated entity.
func ObsoleteAttribute(reason string) string {
	if reason == "" {
		return "global::System.Obsolete"
	}
	return fmt.Sprintf("global::System.Obsolete(\"%s\")", strings.ReplaceAll(reason, `"`, `\"`))
}

// GeneratedRemark returns the remark added to every generated type.
func GeneratedRemark(kind, sliceKind, scopedName string) CommentTag {
	return NewCommentTag("remarks",
		fmt.Sprintf("The Slice compiler generated this %s from Slice %s <c>%s</c>.", kind, sliceKind, scopedName))
}

type declaration struct {
	comments   []CommentTag
	attributes []string
}

func (d *declaration) writeHeader(b *codeblock.Block) {
	for _, c := range d.comments {
		c.Write(b)
	}
	for _, a := range d.attributes {
		b.Writeln("[%s]", a)
	}
}
