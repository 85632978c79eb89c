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

package log

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Severity defines the severity of a logging message.
type Severity int

const (
	// Verbose indicates extremely verbose level messages.
	Verbose Severity = iota
	// Debug indicates debug-level messages.
	Debug
	// Info indicates minor informational messages that should generally be ignored.
	Info
	// Warning indicates issues that might affect performance or compatibility, but could be ignored.
	Warning
	// Error indicates non terminal failure conditions that may have an effect on results.
	Error
	// Fatal indicates a fatal error.
	Fatal
)

var severities = []struct {
	long, short string
}{
	Verbose: {"Verbose", "V"},
	Debug:   {"Debug", "D"},
	Info:    {"Info", "I"},
	Warning: {"Warning", "W"},
	Error:   {"Error", "E"},
	Fatal:   {"Fatal", "F"},
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severities) {
		return fmt.Sprintf("Severity<%d>", int(s))
	}
	return severities[s].long
}

// Short returns the single character name of the severity.
func (s Severity) Short() string {
	if s < 0 || int(s) >= len(severities) {
		return "?"
	}
	return severities[s].short
}

// ParseSeverity returns the severity with the given long or short name.
// Matching is case insensitive.
func ParseSeverity(name string) (Severity, error) {
	for i, s := range severities {
		if strings.EqualFold(name, s.long) || strings.EqualFold(name, s.short) {
			return Severity(i), nil
		}
	}
	return Info, errors.Errorf("Unknown log severity %q", name)
}

// Set implements flag.Value so a Severity can be bound to a command line flag.
func (s *Severity) Set(name string) error {
	v, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
