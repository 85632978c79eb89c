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

// Package generate converts the loaded Slice definitions into C# declarations
// and file generation requests.
package generate

import (
	"path/filepath"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/core/text/copyright"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

// Generate is a file generation request.
// It holds all the information needed to generate the file, and is passed in
// to a work queue.
type Generate struct {
	Name   string          // The name of the request, for logging.
	Module *grammar.Module // The definitions to generate.
	Info   copyright.Info  // The header information.
	Output string          // The file to write, empty for no output.
}

// Requests sends one generation request per module to out.
// Each module produces <source base name>.cs in outDir.
func Requests(modules []*grammar.Module, info copyright.Info, outDir string, out chan<- Generate) {
	for _, m := range modules {
		base := filepath.Base(m.Source)
		name := strings.TrimSuffix(base, filepath.Ext(base)) + ".cs"
		out <- Generate{
			Name:   m.Source,
			Module: m,
			Info:   info,
			Output: filepath.Join(outDir, name),
		}
	}
}
