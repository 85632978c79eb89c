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

package builders

import "github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"

// ContainerBuilder builds a type declaration such as a class or struct.
type ContainerBuilder struct {
	declaration
	container string
	name      string
	contents  []*codeblock.Block
}

// NewContainer starts a container with the given declaration keywords and
// name, eg NewContainer("public partial record struct", "Point").
func NewContainer(container, name string) *ContainerBuilder {
	return &ContainerBuilder{container: container, name: name}
}

// AddComment adds a doc comment element.
func (c *ContainerBuilder) AddComment(tag, content string) *ContainerBuilder {
	return c.AddComments(NewCommentTag(tag, content))
}

// AddComments adds doc comment elements.
func (c *ContainerBuilder) AddComments(tags ...CommentTag) *ContainerBuilder {
	c.comments = append(c.comments, tags...)
	return c
}

// AddAttribute adds a C# attribute, without the square brackets.
func (c *ContainerBuilder) AddAttribute(attribute string) *ContainerBuilder {
	c.attributes = append(c.attributes, attribute)
	return c
}

// AddBlock adds a member block. Members are separated by blank lines.
func (c *ContainerBuilder) AddBlock(b *codeblock.Block) *ContainerBuilder {
	c.contents = append(c.contents, b)
	return c
}

// Build returns the declaration.
func (c *ContainerBuilder) Build() *codeblock.Block {
	b := &codeblock.Block{}
	c.writeHeader(b)
	b.Writeln("%s %s", c.container, c.name)
	b.Writeln("{")
	body := &codeblock.Block{}
	for _, content := range c.contents {
		body.AddBlock(content)
	}
	b.Append(body.Indent())
	b.Writeln("}")
	return b
}
