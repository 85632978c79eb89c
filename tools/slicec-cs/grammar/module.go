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

package grammar

// Comment is a parsed doc comment.
// Links in the overview are written {@link Name}.
type Comment struct {
	Overview string
	See      []string
}

// Deprecation marks a deprecated entity.
type Deprecation struct {
	Reason string
}

// Module is the content of one Slice source file.
type Module struct {
	Source  string // The Slice file the definitions were read from.
	Name    string // The Slice module, eg "Demo::Geo".
	Structs []*Struct
}

// Namespace returns the C# namespace the module maps to.
func (m *Module) Namespace() string { return Namespace(m.Name) }
