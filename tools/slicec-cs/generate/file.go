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

package generate

import (
	"context"

	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/core/text/copyright"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
	"github.com/pkg/errors"
)

// Usings are the namespaces imported by every generated file.
var Usings = []string{
	"IceRpc.Slice",
	"System.Collections.Generic",
}

// File holds the parts of one generated C# file.
type File struct {
	Header    string   // The generated file header.
	Usings    []string // The imported namespaces, sorted.
	Namespace string   // The file scoped namespace.
	Structs   []string // The struct declarations, in definition order.
}

// NewFile generates the declarations of every struct in m.
func NewFile(ctx context.Context, m *grammar.Module, info copyright.Info) (*File, error) {
	ctx = log.V{"source": m.Source}.Bind(ctx)
	if m.Name == "" {
		return nil, errors.Errorf("%s: missing module name", m.Source)
	}
	info.Source = m.Source
	f := &File{
		Header:    copyright.FindLanguage("csharp").Build(info),
		Usings:    Usings,
		Namespace: m.Namespace(),
	}
	for _, s := range m.Structs {
		b, err := Struct(ctx, s)
		if err != nil {
			return nil, errors.Wrap(err, m.Source)
		}
		f.Structs = append(f.Structs, b.String())
	}
	log.D(ctx, "Generated %d structs", len(f.Structs))
	return f, nil
}
