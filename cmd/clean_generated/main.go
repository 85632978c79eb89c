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

// clean_generated finds and deletes generated C# source files.
package main

import (
	"context"
	"flag"

	"github.com/InsertCreativityHere/icerpc-csharp/core/app"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/template"
)

var noactions = flag.Bool("n", false, "don't perform any actions, just print information")

func main() {
	app.ShortHelp = "clean_generated finds and deletes generated source files.\n" +
		"It removes files with a known extension that start with a generated file header."
	app.ShortUsage = "[directories]"
	app.Version = app.VersionSpec{Major: 0, Minor: 1}
	app.Run(run)
}

func run(ctx context.Context) error {
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	total := 0
	for _, path := range paths {
		found, err := template.Clean(ctx, path, nil, *noactions)
		if err != nil {
			return err
		}
		total += len(found)
	}
	log.I(ctx, "Found %d generated files", total)
	return nil
}
