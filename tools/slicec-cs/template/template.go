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

// Package template renders generated C# files and writes them to disk.
package template

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"text/template"

	"github.com/InsertCreativityHere/icerpc-csharp/core/fault"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/core/text/copyright"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/generate"
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

// ErrNotGenerated is returned when the output path holds a file that was not
// written by a code generator.
const ErrNotGenerated = fault.Const("refusing to overwrite a file without a generated header")

const fileTemplate = `{{.Header}}
#nullable enable

{{range .Usings}}using {{.}};
{{end}}
namespace {{.Namespace}};
{{range .Structs}}
{{.}}
{{end}}`

// Templates renders generation requests.
// A Templates is not safe for concurrent use; each worker should own one.
type Templates struct {
	file     *template.Template
	language *copyright.Language
	buf      bytes.Buffer
}

// New returns a Templates ready to render C# files.
func New() *Templates {
	return &Templates{
		file:     template.Must(template.New("file").Parse(fileTemplate)),
		language: copyright.FindLanguage("csharp"),
	}
}

// Render returns the full content of the file for task.
func (t *Templates) Render(ctx context.Context, task generate.Generate) ([]byte, error) {
	f, err := generate.NewFile(ctx, task.Module, task.Info)
	if err != nil {
		return nil, err
	}
	t.buf.Reset()
	if err := t.file.Execute(&t.buf, f); err != nil {
		return nil, errors.Wrap(err, task.Name)
	}
	return append([]byte(nil), t.buf.Bytes()...), nil
}

// Generate renders task and writes it to task.Output.
// It returns false if the file already held the same content. With no
// output path nothing is written and the result is always true.
func (t *Templates) Generate(ctx context.Context, task generate.Generate) (bool, error) {
	data, err := t.Render(ctx, task)
	if err != nil {
		return false, err
	}
	return t.Write(ctx, task.Output, data)
}

// Write stores data at path unless the file already holds it.
// An existing file is only replaced if it starts with a generated header.
func (t *Templates) Write(ctx context.Context, path string, data []byte) (bool, error) {
	digest := xxhash.Sum64(data)
	if path == "" {
		log.D(ctx, "Rendered %d bytes, digest %016x", len(data), digest)
		return true, nil
	}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if xxhash.Sum64(existing) == digest {
			return false, nil
		}
		if t.language.MatchGenerated(existing) == 0 {
			return false, errors.Wrap(ErrNotGenerated, path)
		}
	case os.IsNotExist(err):
	default:
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	log.D(ctx, "Wrote %d bytes, digest %016x", len(data), digest)
	return true, nil
}
