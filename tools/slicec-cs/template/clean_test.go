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

package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/InsertCreativityHere/icerpc-csharp/core/assert"
	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/tools/slicec-cs/template"
)

func TestClean(t *testing.T) {
	ctx := log.Testing(t)
	g := loadGolden(ctx, filepath.Join("testdata", "point.txtar"))
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		assert.For(ctx, "mkdir").ThatError(os.MkdirAll(filepath.Dir(path), 0755)).Succeeded()
		assert.For(ctx, "write").ThatError(os.WriteFile(path, data, 0644)).Succeeded()
		return path
	}
	stale := write("Stale.cs", g.output)
	kept := write("Point.cs", g.output)
	hand := write("Hand.cs", []byte("public struct Hand {}\n"))
	other := write("notes.txt", g.output)
	ignored := write(filepath.Join("obj", "Old.cs"), g.output)
	keep := map[string]bool{filepath.Clean(kept): true}

	found, err := template.Clean(ctx, dir, keep, true)
	assert.For(ctx, "dry err").ThatError(err).Succeeded()
	assert.For(ctx, "dry found").ThatSlice(found).Equals([]string{stale})
	_, err = os.Stat(stale)
	assert.For(ctx, "dry kept").ThatError(err).Succeeded()

	found, err = template.Clean(ctx, dir, keep, false)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "found").ThatSlice(found).Equals([]string{stale})
	_, err = os.Stat(stale)
	assert.For(ctx, "removed").That(os.IsNotExist(err)).Equals(true)
	for _, path := range []string{kept, hand, other, ignored} {
		_, err := os.Stat(path)
		assert.For(ctx, "%s kept", path).ThatError(err).Succeeded()
	}
}
