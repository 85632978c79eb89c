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

package cases

import (
	"fmt"
	"reflect"
	"testing"
)

func ExampleSnake() {
	fmt.Println(Snake("tag_end_marker"), Words{"tag", "end", "marker"}.ToSnake())
	// Output:
	// [tag end marker] tag_end_marker
}

func ExamplePascal() {
	fmt.Println(Pascal("bitSequenceWriter"), Words{"bit", "sequence", "writer"}.ToPascal())
	// Output:
	// [bit Sequence Writer] BitSequenceWriter
}

func ExampleCamel() {
	fmt.Println(Camel("ServiceAddress"), Words{"Service", "Address"}.ToCamel())
	// Output:
	// [Service Address] serviceAddress
}

func TestSnake(t *testing.T) {
	for str, want := range map[string]Words{
		"a_simple_case":     {"a", "simple", "case"},
		"case_Is_PRESERVED": {"case", "Is", "PRESERVED"},
		"no-underscores":    {"no-underscores"},
		"":                  {},
	} {
		if got := Snake(str); !reflect.DeepEqual(got, want) {
			t.Errorf("Snake(%v) - Got: %v, Want: %v", str, got, want)
		}
		if got := want.ToSnake(); got != str {
			t.Errorf("%v.ToSnake() - Got: %v, Want: %v", want, got, str)
		}
	}
}

func TestSplit(t *testing.T) {
	for _, test := range []struct {
		str  string
		want Words
	}{
		{"ASimpleCase", Words{"A", "Simple", "Case"}},
		{"startsWithLower", Words{"starts", "With", "Lower"}},
		{"URIValue", Words{"URI", "Value"}},
		{"myURI", Words{"my", "URI"}},
		{"int32Value", Words{"int32", "Value"}},
		{"tag_end", Words{"tag", "end"}},
		{"", Words{}},
	} {
		if got := Split(test.str); !reflect.DeepEqual(got, test.want) {
			t.Errorf("Split(%v) - Got: %v, Want: %v", test.str, got, test.want)
		}
	}
}

func TestConvert(t *testing.T) {
	for _, test := range []struct {
		str    string
		pascal string
		camel  string
	}{
		{"x", "X", "x"},
		{"myField", "MyField", "myField"},
		{"MyField", "MyField", "myField"},
		{"URIValue", "URIValue", "uriValue"},
		{"tag_end_marker", "TagEndMarker", "tagEndMarker"},
		{"", "", ""},
	} {
		if got := ToPascal(test.str); got != test.pascal {
			t.Errorf("ToPascal(%v) - Got: %v, Want: %v", test.str, got, test.pascal)
		}
		if got := ToCamel(test.str); got != test.camel {
			t.Errorf("ToCamel(%v) - Got: %v, Want: %v", test.str, got, test.camel)
		}
	}
}

func TestTitleUntitle(t *testing.T) {
	for _, test := range []struct {
		words   Words // input words
		title   Words // expected
		untitle Words // expected
	}{
		{Words{"Hello", "there", "HOW", "are", "YOU?"},
			Words{"Hello", "There", "HOW", "Are", "YOU?"},
			Words{"hello", "there", "hOW", "are", "yOU?"}},
		{Words{"Numbers", "are", "not", "affected", "12345"},
			Words{"Numbers", "Are", "Not", "Affected", "12345"},
			Words{"numbers", "are", "not", "affected", "12345"}},
	} {
		if got := test.words.Title(); !reflect.DeepEqual(got, test.title) {
			t.Errorf("Title(%v) - Got: %v, Want: %v", test.words, got, test.title)
		}
		if got := test.words.Untitle(); !reflect.DeepEqual(got, test.untitle) {
			t.Errorf("Untitle(%v) - Got: %v, Want: %v", test.words, got, test.untitle)
		}
	}
}
