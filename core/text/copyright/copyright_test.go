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

package copyright_test

import (
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/core/text/copyright"
)

func TestBuild(t *testing.T) {
	ctx := log.Testing(t)
	l := copyright.FindExtension("Point.cs")
	if !assert.For(ctx, "language").That(l).IsNotNil() {
		return
	}
	got := l.Build(copyright.Info{Tool: "slicec-cs", Version: "0.3.0", Source: "Point.slice"})
	assert.For(ctx, "header").ThatString(got).Equals(`// Copyright (c) ZeroC, Inc.

// <auto-generated/>
// slicec-cs version: '0.3.0'
// Generated from file: 'Point.slice'
`)
	assert.For(ctx, "match").ThatInteger(l.MatchGenerated([]byte(got + "\nnamespace X;\n"))).IsAtLeast(len(got) - 1)
}

func TestMatchGenerated(t *testing.T) {
	ctx := log.Testing(t)
	l := copyright.FindLanguage("csharp")
	assert.For(ctx, "hand written").ThatInteger(l.MatchGenerated([]byte("namespace X;\n"))).Equals(0)
	assert.For(ctx, "unknown language").That(copyright.FindLanguage("cobol")).IsNil()
	assert.For(ctx, "unknown extension").That(copyright.FindExtension("a.java")).IsNil()
}
