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

// Package cases contains functions for mapping identifiers between various
// cases (snake, pascal, camel).
package cases

import (
	"bytes"
	"strings"
	"unicode"
)

// Words are a list of strings.
type Words []string

// Split separates and returns the words in s.
// Words are separated by underscores, by a lower-case letter or digit followed
// by an upper-case letter, and at the end of an upper-case run that is
// followed by a lower-case letter, so "URIValue" splits into "URI" and "Value".
func Split(s string) Words {
	out := Words{}
	for _, part := range strings.Split(s, "_") {
		out = append(out, splitRun([]rune(part))...)
	}
	return out
}

func splitRun(runes []rune) Words {
	out := Words{}
	buf := bytes.Buffer{}
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				out = append(out, buf.String())
				buf.Reset()
			}
		}
		buf.WriteRune(r)
	}
	if buf.Len() > 0 {
		out = append(out, buf.String())
	}
	return out
}

// Snake separates and returns the words in s by underscore.
func Snake(s string) Words {
	if s == "" {
		// strings.Split() of an empty string returns a list containing a single
		// empty string. This is undesirable.
		return Words{}
	}
	return Words(strings.Split(s, "_"))
}

// Pascal separates and returns the words in s, where each word begins with a
// uppercase letter.
func Pascal(s string) Words { return Split(s) }

// Camel separates and returns the words in s, where each new word begins with
// an uppercase letter.
// Camel parses identically to Pascal(), but is declared for symmetry with
// Words.ToCamel().
func Camel(s string) Words { return Split(s) }

// ToSnake returns all the words concatenated with an underscore.
func (w Words) ToSnake() string {
	return strings.Join([]string(w), "_")
}

// ToPascal returns all the words concatenated with each word beginning with an
// uppercase letter.
func (w Words) ToPascal() string {
	return strings.Join(w.Title(), "")
}

// ToCamel returns all the words concatenated with each word beginning with
// an uppercase letter, except for the first which is lower-cased entirely.
func (w Words) ToCamel() string {
	if len(w) == 0 {
		return ""
	}
	return strings.ToLower(w[0]) + strings.Join(w[1:].Title(), "")
}

// Map returns a new list of words, each mapped by f.
func (w Words) Map(f func(string) string) Words {
	out := make(Words, len(w))
	for i, word := range w {
		out[i] = f(word)
	}
	return out
}

// Title capitalizes the first letter of each word.
func (w Words) Title() Words {
	return w.Map(Title)
}

// Untitle lower-cases the first letter of each word.
func (w Words) Untitle() Words {
	return w.Map(Untitle)
}

// Title capitalizes the first letter of the string.
func Title(s string) string {
	first := true
	return strings.Map(func(r rune) rune {
		if first {
			first = false
			return unicode.ToTitle(r)
		}
		return r
	}, s)
}

// Untitle lower-cases the first letter of the string.
func Untitle(s string) string {
	first := true
	return strings.Map(func(r rune) rune {
		if first {
			first = false
			return unicode.ToLower(r)
		}
		return r
	}, s)
}

// ToPascal converts the identifier s to PascalCase.
func ToPascal(s string) string { return Pascal(s).ToPascal() }

// ToCamel converts the identifier s to camelCase.
func ToCamel(s string) string { return Camel(s).ToCamel() }
