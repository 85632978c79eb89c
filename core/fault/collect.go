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

package fault

import (
	"strings"
	"sync"
)

type (
	// List is the type for a list of errors.
	// A non-empty List is itself an error reporting every collected message.
	List []error
	// One is the type for something that collects only the first error.
	// It is safe to use from multiple goroutines.
	One struct {
		mu  sync.Mutex
		err error
	}
)

// First returns the first error added to it.
func (l List) First() error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// Collect adds an error to the list, nil errors are ignored.
func (l *List) Collect(err error) {
	if err == nil {
		return
	}
	*l = append(*l, err)
}

// Err returns nil if the list is empty, the list otherwise.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// First returns the first error added to it.
func (o *One) First() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Collect records err if it is the first non-nil error seen.
// It returns true if err was recorded.
func (o *One) Collect(err error) bool {
	if err == nil {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return false
	}
	o.err = err
	return true
}
