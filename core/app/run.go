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

// Package app provides the common entry point for the command line tools.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/pkg/errors"
)

var (
	// Name is the full name of the application.
	Name string
	// ExitFuncForTesting can be set to change the behaviour when the main task
	// fails. It defaults to os.Exit.
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// Version holds the version specification for the application.
	Version = VersionSpec{Major: -1}
)

// Task is the signature of the main function of an application.
type Task func(ctx context.Context) error

// Run performs all the work needed to start up an application.
// It parses the command line, builds a root context carrying the log handler
// and runs the task. The context is cancelled on interrupt. A failed task
// exits the process with code 1.
func Run(main Task) {
	if code := run(flag.CommandLine, os.Args[1:], os.Stdout, main); code != 0 {
		ExitFuncForTesting(code)
	}
}

func run(flags *flag.FlagSet, args []string, stdout io.Writer, main Task) int {
	lf := logDefaults()
	lf.install(flags)
	version := flags.Bool("version", false, "print the version and exit")
	flags.Usage = func() { usage(flags) }
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *version {
		fmt.Fprint(stdout, Name, " version ", Version, "\n")
		return 0
	}

	handler := wrapHandler(lf.Style.Handler(lf.writer()))
	ctx := prepareContext(handler, &lf)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	err := main(ctx)
	if err == nil {
		handler.Close()
		return 0
	}
	if errors.Cause(err) == context.Canceled {
		log.W(ctx, "Interrupted")
	} else {
		log.E(ctx, "Main failed\nError: %v", err)
	}
	handler.Close()
	return 1
}

func usage(flags *flag.FlagSet) {
	out := flags.Output()
	if ShortHelp != "" {
		fmt.Fprintln(out, ShortHelp)
	}
	fmt.Fprintf(out, "Usage: %s [flags] %s\n", Name, ShortUsage)
	flags.PrintDefaults()
}
