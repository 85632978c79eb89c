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

// Package copyright builds and recognises the headers placed at the top of
// generated source files.
package copyright

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// Info holds the values substituted into a header.
type Info struct {
	Year    string
	Tool    string
	Version string
	Source  string
}

// Language describes the header used for one output language.
type Language struct {
	Name       string
	Extensions []string
	Header     string
	Emit       string
	Generated  *regexp.Regexp
}

var languages = []*Language{
	{
		Name:       "csharp",
		Extensions: []string{".cs"},
		Header: `// Copyright (c) ZeroC, Inc.

// <auto-generated/>
// «Tool» version: '«Version»'
// Generated from file: '«Source»'
`,
	},
}

func init() {
	for _, l := range languages {
		l.Generated = Regexp(l.Header, Info{})
	}
}

func build(name string, header string, i Info) string {
	funcs := template.FuncMap{
		"Year":    func() string { return i.Year },
		"Tool":    func() string { return i.Tool },
		"Version": func() string { return i.Version },
		"Source":  func() string { return i.Source },
	}
	t := template.Must(template.New(name).
		Delims("«", "»").
		Funcs(funcs).
		Parse(header))
	b := &bytes.Buffer{}
	if err := t.Execute(b, i); err != nil {
		panic(fmt.Errorf("Error building %s: %s", name, err))
	}
	return b.String()
}

// Build returns the header of l filled in from i.
func (l *Language) Build(i Info) string {
	return build(l.Name, l.Header, i)
}

// Regexp returns a regular expression that matches header with the fields of
// i substituted. Empty fields match anything on the line.
func Regexp(header string, i Info) *regexp.Regexp {
	if i.Year == "" {
		i.Year = `(.*)`
	}
	if i.Tool == "" {
		i.Tool = `(.*)`
	}
	if i.Version == "" {
		i.Version = `(.*)`
	}
	if i.Source == "" {
		i.Source = `(.*)`
	}
	header = `^\s*` + regexp.QuoteMeta(strings.TrimSpace(header)) + `\s*`
	return regexp.MustCompile(build("regexp", header, i))
}

// FindLanguage returns the language with the given name, or nil.
func FindLanguage(name string) *Language {
	for _, l := range languages {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// FindExtension returns the language for the file name, or nil.
func FindExtension(name string) *Language {
	for _, l := range languages {
		for _, e := range l.Extensions {
			if strings.HasSuffix(name, e) {
				return l
			}
		}
	}
	return nil
}

// MatchGenerated returns the length of the generated header at the start of
// file, or 0 if the file does not start with one.
func (l *Language) MatchGenerated(file []byte) int {
	return len(l.Generated.Find(file))
}
