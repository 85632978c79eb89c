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

package template

import (
	"context"
	"os"
	"path/filepath"

	"github.com/InsertCreativityHere/icerpc-csharp/core/log"
	"github.com/InsertCreativityHere/icerpc-csharp/core/text/copyright"
)

// skipDirs are never searched for generated files.
var skipDirs = map[string]bool{"bin": true, "obj": true, ".git": true}

// Clean finds the generated source files under root and deletes them.
// Files named in keep are left alone. With dryRun set the files are reported
// but not removed. The paths found are returned in walk order.
func Clean(ctx context.Context, root string, keep map[string]bool, dryRun bool) ([]string, error) {
	found := []string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if keep[filepath.Clean(path)] {
			return nil
		}
		lang := copyright.FindExtension(path)
		if lang == nil {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if lang.MatchGenerated(data) == 0 {
			return nil
		}
		found = append(found, path)
		if dryRun {
			log.I(ctx, "Would remove %s", path)
			return nil
		}
		log.I(ctx, "Removing %s", path)
		return os.Remove(path)
	})
	return found, err
}
