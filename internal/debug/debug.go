// Copyright 2025 go-linmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package debug holds the assertion hooks used on the unchecked fast paths.
//
// Assertions are compiled in only with the linmath_debug build tag:
//
//	go test -tags linmath_debug ./...
//
// Without the tag Enabled is a false constant and every Assert call folds away.
package debug

import (
	"fmt"
	"log/slog"
)

// Assert panics with msg when cond is false and assertions are enabled.
// The failure is logged at error level on slog.Default before panicking so it
// shows up even when the panic is recovered higher up.
func Assert(cond bool, msg string) {
	if !Enabled || cond {
		return
	}
	fail(msg)
}

// AssertIndex checks 0 <= i < n.
func AssertIndex(i, n int) {
	if !Enabled || (i >= 0 && i < n) {
		return
	}
	fail(fmt.Sprintf("index %d out of range [0, %d)", i, n))
}

func fail(msg string) {
	slog.Error("linmath: assertion failed", "msg", msg)
	panic("linmath: " + msg)
}
