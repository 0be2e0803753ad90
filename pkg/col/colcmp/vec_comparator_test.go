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

package colcmp

import (
	"math"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colcmp/pkg/col/coldata"
	"github.com/cockroachdb/colcmp/pkg/col/coltypes"
	"github.com/cockroachdb/colcmp/pkg/testutils"
	"github.com/cockroachdb/colcmp/pkg/util/leaktest"
	"github.com/stretchr/testify/require"
)

// requireVerdicts checks the verdicts of comparing position 0 against 1, 1
// against 0, and 1 against 2 of the given vector, which is expected to hold
// values such that v[0] < v[1] = v[2].
func requireVerdicts(t *testing.T, v coldata.Vec) {
	t.Helper()
	cmp, err := NewVecComparator(v, v)
	require.NoError(t, err)
	require.Equal(t, Before, cmp.Compare(0, 1))
	require.Equal(t, After, cmp.Compare(1, 0))
	require.Equal(t, Undecided, cmp.Compare(1, 2))
	require.Equal(t, Undecided, cmp.Compare(0, 0))
}

func TestVecComparatorKernels(t *testing.T) {
	defer leaktest.AfterTest(t)()

	t.Run("bool", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Bool, 3)
		copy(v.Bool(), []bool{false, true, true})
		requireVerdicts(t, v)
	})

	t.Run("bytes", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Bytes, 3)
		copy(v.Bytes(), [][]byte{[]byte("a"), []byte("ab"), []byte("ab")})
		requireVerdicts(t, v)
		// The empty slice sorts first.
		v.Bytes()[1] = nil
		cmp, err := NewVecComparator(v, v)
		require.NoError(t, err)
		require.Equal(t, After, cmp.Compare(0, 1))
	})

	t.Run("decimal", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Decimal, 3)
		// 1.5 < 2.0 = 2.00: numeric equality must ignore the exponent.
		v.Decimal()[0] = *apd.New(15, -1)
		v.Decimal()[1] = *apd.New(20, -1)
		v.Decimal()[2] = *apd.New(200, -2)
		requireVerdicts(t, v)
	})

	t.Run("int16", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Int16, 3)
		copy(v.Int16(), []int16{-3, 12, 12})
		requireVerdicts(t, v)
	})

	t.Run("int32", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Int32, 3)
		copy(v.Int32(), []int32{-3, 12, 12})
		requireVerdicts(t, v)
	})

	t.Run("int64", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Int64, 3)
		copy(v.Int64(), []int64{-3, 12, 12})
		requireVerdicts(t, v)
	})

	t.Run("float64", func(t *testing.T) {
		v := coldata.NewMemColumn(coltypes.Float64, 3)
		copy(v.Float64(), []float64{-1.5, 2.25, 2.25})
		requireVerdicts(t, v)
	})

	t.Run("timestamp", func(t *testing.T) {
		ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		v := coldata.NewMemColumn(coltypes.Timestamp, 3)
		copy(v.Timestamp(), []time.Time{ts, ts.Add(time.Second), ts.Add(time.Second)})
		requireVerdicts(t, v)
	})
}

func TestFloatNaNOrdering(t *testing.T) {
	defer leaktest.AfterTest(t)()

	v := coldata.NewMemColumn(coltypes.Float64, 4)
	copy(v.Float64(), []float64{math.NaN(), math.Inf(-1), 0, math.NaN()})
	cmp, err := NewVecComparator(v, v)
	require.NoError(t, err)
	// NaN equals NaN and sorts before every non-NaN value, including -Inf,
	// so that floats form a total order.
	require.Equal(t, Undecided, cmp.Compare(0, 3))
	require.Equal(t, Before, cmp.Compare(0, 1))
	require.Equal(t, After, cmp.Compare(1, 0))
	require.Equal(t, After, cmp.Compare(2, 3))
}

func TestVecComparatorTypeMismatch(t *testing.T) {
	defer leaktest.AfterTest(t)()

	iv := coldata.NewMemColumn(coltypes.Int64, 1)
	fv := coldata.NewMemColumn(coltypes.Float64, 1)
	_, err := NewVecComparator(iv, fv)
	require.True(t, testutils.IsError(err, "cannot compare a Int64 column against a Float64 column"),
		"unexpected error %v", err)
}

func TestNullAwareVecComparator(t *testing.T) {
	defer leaktest.AfterTest(t)()

	// Rows 0 and 2 are NULL, row 1 holds 5.
	v := coldata.NewMemColumn(coltypes.Int64, 3)
	v.Int64()[1] = 5
	v.Nulls().SetNull(0)
	v.Nulls().SetNull(2)

	for _, tc := range []struct {
		nullOrder NullOrder
		// verdicts[i][j] is the expected verdict of comparing row i against
		// row j.
		verdicts [3][3]Verdict
	}{
		{
			nullOrder: NullsSmallest,
			verdicts: [3][3]Verdict{
				{Undecided, Before, Undecided},
				{After, Undecided, After},
				{Undecided, Before, Undecided},
			},
		},
		{
			nullOrder: NullsLargest,
			verdicts: [3][3]Verdict{
				{Undecided, After, Undecided},
				{Before, Undecided, Before},
				{Undecided, After, Undecided},
			},
		},
	} {
		t.Run(tc.nullOrder.String(), func(t *testing.T) {
			cmp, err := NewNullAwareVecComparator(v, v, tc.nullOrder)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					require.Equal(t, tc.verdicts[i][j], cmp.Compare(i, j),
						"Compare(%d, %d) under %s", i, j, tc.nullOrder)
				}
			}
		})
	}

	t.Run("invalid null order", func(t *testing.T) {
		_, err := NewNullAwareVecComparator(v, v, NullOrder(42))
		require.True(t, testutils.IsError(err, "invalid null order 42"), "unexpected error %v", err)
	})

	t.Run("null positions read as zero values", func(t *testing.T) {
		// The null-oblivious comparator sees the backing zeros at the NULL
		// positions.
		cmp, err := NewVecComparator(v, v)
		require.NoError(t, err)
		require.Equal(t, Undecided, cmp.Compare(0, 2))
		require.Equal(t, Before, cmp.Compare(0, 1))
	})
}
