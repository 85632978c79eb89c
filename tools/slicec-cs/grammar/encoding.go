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

package grammar

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Encoding is one of the Slice binary wire formats.
type Encoding int

const (
	// Slice1 is the original encoding. It has no tag section for struct
	// members and only supports optional values through nullable types.
	Slice1 Encoding = iota + 1
	// Slice2 is the newer encoding. It supports tagged members and encodes
	// optional members behind a bit sequence.
	Slice2
)

var encodingNames = map[Encoding]string{
	Slice1: "Slice1",
	Slice2: "Slice2",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "Unknown"
}

// ParseEncoding returns the encoding with the given name.
func ParseEncoding(name string) (Encoding, error) {
	for e, n := range encodingNames {
		if strings.EqualFold(n, name) {
			return e, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownEncoding, "%q", name)
}

// SupportedEncodings is the set of encodings a type can be encoded with.
// The members are always held in canonical order, oldest first.
// The zero value is an empty set and is never produced by
// NewSupportedEncodings.
type SupportedEncodings struct {
	list []Encoding
}

// NewSupportedEncodings builds the set from the given encodings.
// Duplicates are merged. It fails if the set would be empty or any
// encoding is unknown.
func NewSupportedEncodings(encodings ...Encoding) (SupportedEncodings, error) {
	seen := map[Encoding]bool{}
	list := []Encoding{}
	for _, e := range encodings {
		if _, ok := encodingNames[e]; !ok {
			return SupportedEncodings{}, errors.Wrapf(ErrUnknownEncoding, "%d", int(e))
		}
		if !seen[e] {
			seen[e] = true
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		return SupportedEncodings{}, ErrNoEncodings
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return SupportedEncodings{list: list}, nil
}

// Len returns the number of encodings in the set.
func (s SupportedEncodings) Len() int { return len(s.list) }

// List returns the encodings in canonical order.
func (s SupportedEncodings) List() []Encoding {
	return append([]Encoding(nil), s.list...)
}

// Supports returns true if e is a member of the set.
func (s SupportedEncodings) Supports(e Encoding) bool {
	for _, m := range s.list {
		if m == e {
			return true
		}
	}
	return false
}

func (s SupportedEncodings) String() string {
	names := make([]string, len(s.list))
	for i, e := range s.list {
		names[i] = e.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
