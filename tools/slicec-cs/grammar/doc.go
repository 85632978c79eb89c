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

// Package grammar holds the semantic model of the Slice definitions that code
// is generated from.
//
// The model is produced by a front end (see package scan) and is read-only
// while code is being generated.
package grammar

import "github.com/InsertCreativityHere/icerpc-csharp/core/fault"

const (
	// ErrNoEncodings is returned when a set of supported encodings is empty.
	ErrNoEncodings = fault.Const("no supported encodings")
	// ErrUnknownEncoding is returned for an encoding that is not Slice1 or Slice2.
	ErrUnknownEncoding = fault.Const("unknown encoding")
	// ErrInvalidStruct is the cause of all struct validation failures.
	ErrInvalidStruct = fault.Const("invalid struct")
)
