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

// Package names maps Slice identifiers to C# identifiers.
package names

import (
	"sort"

	"github.com/InsertCreativityHere/icerpc-csharp/core/text/cases"
)

// keywords is the sorted list of reserved C# keywords.
var keywords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char",
	"checked", "class", "const", "continue", "decimal", "default", "delegate",
	"do", "double", "else", "enum", "event", "explicit", "extern", "false",
	"finally", "fixed", "float", "for", "foreach", "goto", "if", "implicit",
	"in", "int", "interface", "internal", "is", "lock", "long", "namespace",
	"new", "null", "object", "operator", "out", "override", "params", "private",
	"protected", "public", "readonly", "ref", "return", "sbyte", "sealed",
	"short", "sizeof", "stackalloc", "static", "string", "struct", "switch",
	"this", "throw", "true", "try", "typeof", "uint", "ulong", "unchecked",
	"unsafe", "ushort", "using", "virtual", "void", "volatile", "while",
}

// IsKeyword returns true if id is a reserved C# keyword.
func IsKeyword(id string) bool {
	i := sort.SearchStrings(keywords, id)
	return i < len(keywords) && keywords[i] == id
}

// Escape prefixes id with @ if it is a C# keyword.
func Escape(id string) string {
	if IsKeyword(id) {
		return "@" + id
	}
	return id
}

// Type returns the C# identifier for a type, field or method name.
func Type(id string) string { return Escape(cases.ToPascal(id)) }

// Field returns the C# identifier of a struct field.
func Field(id string) string { return Type(id) }

// Parameter returns the C# identifier of a method parameter for a field.
func Parameter(id string) string { return Escape(cases.ToCamel(id)) }

// Local returns the name of a local variable derived from a field name.
// The suffix keeps it clear of keywords and of the parameter names.
func Local(id, suffix string) string { return cases.ToCamel(id) + suffix }
