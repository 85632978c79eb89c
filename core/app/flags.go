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

package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"golang.org/x/term"
)

const logChanBufferSize = 100

// LogFlags holds the command line options that control logging.
type LogFlags struct {
	Level  log.Severity
	Style  log.Style
	Stdout bool
}

// logDefaults uses the brief style when stderr is not a terminal, as the
// output is then usually captured by a build system.
func logDefaults() LogFlags {
	f := LogFlags{
		Level: log.Info,
		Style: log.Normal,
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		f.Style = log.Brief
	}
	return f
}

func (f *LogFlags) install(flags *flag.FlagSet) {
	flags.Var(&f.Level, "log-level", "the minimum severity to log (verbose, debug, info, warning, error, fatal)")
	flags.Var(&f.Style, "log-style", "the log message style (raw, brief, normal, detailed)")
	flags.BoolVar(&f.Stdout, "log-stdout", false, "log to stdout instead of stderr")
}

func (f *LogFlags) writer() log.Writer {
	if f.Stdout {
		return log.Stdout()
	}
	return log.Std()
}

func wrapHandler(to log.Handler) log.Handler {
	return log.Channel(to, logChanBufferSize)
}

func prepareContext(handler log.Handler, flags *LogFlags) context.Context {
	ctx := context.Background()
	ctx = log.PutTag(ctx, Name)
	ctx = log.PutFilter(ctx, log.SeverityFilter(flags.Level))
	ctx = log.PutHandler(ctx, handler)
	return ctx
}

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// VersionSpec is the structure for the version of an application.
type VersionSpec struct {
	// Major version, the version structure is invalid if <0
	Major int
	// Minor version
	Minor int
	// Point version
	Point int
	// The build identifier, not used if an empty string
	Build string
}

// IsValid reports true if the VersionSpec is valid, ie it has a Major version.
func (v VersionSpec) IsValid() bool {
	return v.Major >= 0
}

// Format implements fmt.Formatter to print the version.
func (v VersionSpec) Format(f fmt.State, c rune) {
	if !v.IsValid() {
		fmt.Fprint(f, "unknown")
		return
	}
	fmt.Fprint(f, v.Major, ".", v.Minor, ".", v.Point)
	if v.Build != "" {
		fmt.Fprint(f, "-", v.Build)
	}
}
