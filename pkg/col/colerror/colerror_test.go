// Copyright 2020 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package colerror

import (
	"testing"

	"github.com/cockroachdb/colcmp/pkg/testutils"
	"github.com/cockroachdb/colcmp/pkg/util/leaktest"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCatchRuntimeError(t *testing.T) {
	defer leaktest.AfterTest(t)()

	t.Run("no panic", func(t *testing.T) {
		require.NoError(t, CatchRuntimeError(func() {}))
	})

	t.Run("internal error", func(t *testing.T) {
		err := CatchRuntimeError(func() {
			InternalError(errors.AssertionFailedf("bad state"))
		})
		require.True(t, testutils.IsError(err, "bad state"), "unexpected error %v", err)
		require.True(t, errors.HasAssertionFailure(err))
	})

	t.Run("expected error", func(t *testing.T) {
		cause := errors.New("out of budget")
		err := CatchRuntimeError(func() {
			ExpectedError(cause)
		})
		require.True(t, testutils.IsError(err, "out of budget"), "unexpected error %v", err)
		require.False(t, errors.HasAssertionFailure(err))
		// The caught error still unwraps to the one that was thrown.
		require.True(t, errors.Is(err, cause))
	})

	t.Run("index out of range", func(t *testing.T) {
		s := make([]int, 0)
		idx := 1
		err := CatchRuntimeError(func() {
			_ = s[idx]
		})
		require.True(t, testutils.IsError(err, "index out of range"), "unexpected error %v", err)
		require.True(t, errors.HasAssertionFailure(err))
	})

	t.Run("non-error panic", func(t *testing.T) {
		err := CatchRuntimeError(func() {
			panic("boom")
		})
		require.True(t, testutils.IsError(err, "unexpected panic.*boom"), "unexpected error %v", err)
	})
}
