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

package generate

import (
	"regexp"
	"strings"

	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/builders"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/grammar"
)

var link = regexp.MustCompile(`\{@link\s+([^}\s]+)\s*\}`)

// linkTarget maps a Slice reference to a C# cref.
func linkTarget(ref string) string {
	return strings.ReplaceAll(strings.TrimPrefix(ref, "::"), "::", ".")
}

// summary returns the overview of c with links resolved, or "".
func summary(c *grammar.Comment) string {
	if c == nil {
		return ""
	}
	return link.ReplaceAllStringFunc(strings.TrimSpace(c.Overview), func(m string) string {
		return `<see cref="` + linkTarget(link.FindStringSubmatch(m)[1]) + `" />`
	})
}

// seeAlso returns a seealso tag for each @see entry of c.
func seeAlso(c *grammar.Comment) []builders.CommentTag {
	if c == nil {
		return nil
	}
	out := make([]builders.CommentTag, len(c.See))
	for i, s := range c.See {
		out[i] = builders.NewCommentTagWithAttribute("seealso", "cref", linkTarget(s), "")
	}
	return out
}
