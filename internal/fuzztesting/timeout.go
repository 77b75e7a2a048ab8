// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package fuzztesting keeps fuzz targets fast enough for the fuzzer.
package fuzztesting

import (
	"context"
	"testing"
	"time"
)

// RunWithFuzzerTimeout runs fn a few times under a short deadline, and fails
// t if the deadline passes. fn should check ctx at its own stopping points.
func RunWithFuzzerTimeout(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()
	// The fuzzer gives up on inputs that take more than a second per
	// iteration, and it runs each one many times.
	allowed := 2 * time.Second
	if isRace {
		// The race detector has been observed to make targets ~8x slower.
		allowed = 20 * time.Second
		t.Logf("allowing %v since race detector is enabled", allowed)
	}
	ctx, cancel := context.WithTimeout(context.Background(), allowed)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", allowed)
		}
		cancel()
	}()
	for range 3 {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
