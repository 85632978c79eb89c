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

import (
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/codeblock"
)

type parameter struct {
	typ, name, defaultValue, doc string
}

// FunctionBuilder builds a method or constructor with a block body.
type FunctionBuilder struct {
	declaration
	access     string
	returnType string
	name       string
	parameters []parameter
	body       *codeblock.Block
}

// NewFunction starts a function. Constructors have an empty return type.
func NewFunction(access, returnType, name string) *FunctionBuilder {
	return &FunctionBuilder{access: access, returnType: returnType, name: name}
}

// AddComment adds a doc comment element.
func (f *FunctionBuilder) AddComment(tag, content string) *FunctionBuilder {
	f.comments = append(f.comments, NewCommentTag(tag, content))
	return f
}

// AddAttribute adds a C# attribute, without the square brackets.
func (f *FunctionBuilder) AddAttribute(attribute string) *FunctionBuilder {
	f.attributes = append(f.attributes, attribute)
	return f
}

// AddParameter adds a parameter. An empty defaultValue means the parameter
// is required, and an empty doc adds no param comment.
func (f *FunctionBuilder) AddParameter(typ, name, defaultValue, doc string) *FunctionBuilder {
	f.parameters = append(f.parameters, parameter{typ, name, defaultValue, doc})
	return f
}

// SetBody sets the statements of the function.
func (f *FunctionBuilder) SetBody(body *codeblock.Block) *FunctionBuilder {
	f.body = body
	return f
}

// Build returns the function declaration.
func (f *FunctionBuilder) Build() *codeblock.Block {
	b := &codeblock.Block{}
	for _, c := range f.comments {
		c.Write(b)
	}
	for _, p := range f.parameters {
		if p.doc != "" {
			NewCommentTagWithAttribute("param", "name", strings.TrimPrefix(p.name, "@"), p.doc).Write(b)
		}
	}
	for _, a := range f.attributes {
		b.Writeln("[%s]", a)
	}
	params := make([]string, len(f.parameters))
	for i, p := range f.parameters {
		params[i] = p.typ + " " + p.name
		if p.defaultValue != "" {
			params[i] += " = " + p.defaultValue
		}
	}
	signature := []string{f.access}
	if f.returnType != "" {
		signature = append(signature, f.returnType)
	}
	b.Writeln("%s %s(%s)", strings.Join(signature, " "), f.name, strings.Join(params, ", "))
	b.Writeln("{")
	if f.body != nil {
		b.Append(f.body.Indent())
	}
	b.Writeln("}")
	return b
}
