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

// The slicec-cs command generates C# record structs from the Slice
// definitions serialized by the Slice front end.
package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/InsertCreativityHere/icerpc-csharp/core/app"
	"github.com/InsertCreativityHere/icerpc-csharp/core/fault"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/core/text/copyright"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/generate"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/scan"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/template"
	"github.com/pkg/errors"
)

var (
	nowrite = flag.Bool("n", false, "don't write the files")
	out     = flag.String("out", ".", "the directory to generate files in")
	workers = flag.Int("workers", 8, "the number of generation workers to use")
	prune   = flag.Bool("prune", false, "remove generated files in the output directory that were not generated by this run")
)

func main() {
	app.ShortHelp = "slicec-cs: A tool to generate C# structs from Slice definitions."
	app.ShortUsage = "<schema files>"
	app.Version = app.VersionSpec{Major: 0, Minor: 1}
	app.Run(run)
}

type rendered struct {
	task generate.Generate
	data []byte
}

// worker renders tasks until the channel is closed or ctx is cancelled.
func worker(ctx context.Context, wg *sync.WaitGroup, errs *fault.One, cancel func(), tasks <-chan generate.Generate, results chan<- rendered) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := template.New()
		for task := range tasks {
			if ctx.Err() != nil {
				continue
			}
			ctx := log.V{"out": task.Output}.Bind(ctx)
			data, err := t.Render(ctx, task)
			if err != nil {
				if errs.Collect(err) {
					cancel()
				}
				continue
			}
			results <- rendered{task, data}
		}
	}()
}

func run(ctx context.Context) error {
	if flag.NArg() == 0 {
		return errors.New("no schema files given")
	}
	log.I(ctx, "Loading")
	modules, err := scan.LoadAll(ctx, flag.Args())
	if err != nil {
		return err
	}
	info := copyright.Info{Tool: scan.Tool, Version: versionString()}

	// Every file is rendered before any is written, so a failure in one
	// leaves the output directory untouched.
	log.I(ctx, "Generating")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errs := &fault.One{}
	tasks := make(chan generate.Generate)
	results := make(chan rendered, len(modules))
	wg := &sync.WaitGroup{}
	for i := 0; i < *workers || i == 0; i++ {
		worker(ctx, wg, errs, cancel, tasks, results)
	}
	generate.Requests(modules, info, *out, tasks)
	close(tasks)
	wg.Wait()
	close(results)
	if err := errs.First(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	files := make([]rendered, 0, len(modules))
	for r := range results {
		files = append(files, r)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].task.Output < files[j].task.Output })
	for i := 1; i < len(files); i++ {
		if files[i].task.Output == files[i-1].task.Output {
			return errors.Errorf("%s and %s both generate %s",
				files[i-1].task.Name, files[i].task.Name, files[i].task.Output)
		}
	}

	writer := template.New()
	keep := map[string]bool{}
	for _, r := range files {
		ctx := log.V{"out": r.task.Output}.Bind(ctx)
		keep[filepath.Clean(r.task.Output)] = true
		path := r.task.Output
		if *nowrite {
			path = ""
		}
		changed, err := writer.Write(ctx, path, r.data)
		switch {
		case err != nil:
			return err
		case !changed:
			log.I(ctx, "No change")
		case *nowrite:
			log.I(ctx, "Not writing")
		default:
			log.I(ctx, "Generated")
		}
	}
	if *prune {
		if _, err := template.Clean(ctx, *out, keep, *nowrite); err != nil {
			return err
		}
	}
	return nil
}

func versionString() string {
	return fmt.Sprint(app.Version)
}
