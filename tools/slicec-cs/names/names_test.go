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

package names

import (
	"sort"
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
)

func TestKeywordsSorted(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "sorted").ThatBoolean(sort.StringsAreSorted(keywords)).IsTrue()
}

func TestNames(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		id, field, param, local string
	}{
		{"x", "X", "x", "xValue"},
		{"myField", "MyField", "myField", "myFieldValue"},
		{"class", "Class", "@class", "classValue"},
		{"Event", "Event", "@event", "eventValue"},
		{"tag_end", "TagEnd", "tagEnd", "tagEndValue"},
	} {
		assert.For(ctx, "field %s", test.id).ThatString(Field(test.id)).Equals(test.field)
		assert.For(ctx, "param %s", test.id).ThatString(Parameter(test.id)).Equals(test.param)
		assert.For(ctx, "local %s", test.id).ThatString(Local(test.id, "Value")).Equals(test.local)
	}
	assert.For(ctx, "escape").ThatString(Escape("string")).Equals("@string")
	assert.For(ctx, "plain").ThatString(Escape("point")).Equals("point")
}
