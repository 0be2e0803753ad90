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
	"bytes"
	"math"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colcmp/pkg/col/coldata"
	"github.com/cockroachdb/colcmp/pkg/col/coltypes"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// VecComparator compares values between two bound column vectors of the
// same type.
type VecComparator interface {
	// Compare returns the ordering verdict between the value at lhsRow of
	// the left-hand vector and the value at rhsRow of the right-hand
	// vector. Row indices outside of the bound vectors cause a runtime
	// panic that colerror.CatchRuntimeError converts into an error.
	Compare(lhsRow, rhsRow int) Verdict
}

// NewVecComparator returns a null-oblivious VecComparator over the two
// column vectors, which must be of the same type. The comparison kernel is
// selected once here; Compare performs no type dispatch. NULL positions are
// read as their backing zero values, so vectors that may contain NULLs
// should be compared through NewNullAwareVecComparator instead.
func NewVecComparator(lhs, rhs coldata.Vec) (VecComparator, error) {
	if lhs.Type() != rhs.Type() {
		return nil, errors.Newf(
			"cannot compare a %s column against a %s column", lhs.Type(), rhs.Type())
	}
	switch t := lhs.Type(); t {
	case coltypes.Bool:
		return &boolVecComparator{lhs: lhs.Bool(), rhs: rhs.Bool()}, nil
	case coltypes.Bytes:
		return &bytesVecComparator{lhs: lhs.Bytes(), rhs: rhs.Bytes()}, nil
	case coltypes.Decimal:
		return &decimalVecComparator{lhs: lhs.Decimal(), rhs: rhs.Decimal()}, nil
	case coltypes.Int16:
		return &orderedVecComparator[int16]{lhs: lhs.Int16(), rhs: rhs.Int16()}, nil
	case coltypes.Int32:
		return &orderedVecComparator[int32]{lhs: lhs.Int32(), rhs: rhs.Int32()}, nil
	case coltypes.Int64:
		return &orderedVecComparator[int64]{lhs: lhs.Int64(), rhs: rhs.Int64()}, nil
	case coltypes.Float64:
		return &floatVecComparator{lhs: lhs.Float64(), rhs: rhs.Float64()}, nil
	case coltypes.Timestamp:
		return &timestampVecComparator{lhs: lhs.Timestamp(), rhs: rhs.Timestamp()}, nil
	default:
		return nil, errors.Newf("unsupported column type %s", t)
	}
}

// NewNullAwareVecComparator returns a VecComparator that first applies the
// NULL placement decided by nullOrder and only compares values when both
// positions are non-NULL. Two NULLs compare as Undecided.
func NewNullAwareVecComparator(
	lhs, rhs coldata.Vec, nullOrder NullOrder,
) (VecComparator, error) {
	values, err := NewVecComparator(lhs, rhs)
	if err != nil {
		return nil, err
	}
	c := &nullAwareVecComparator{
		values:   values,
		lhsNulls: lhs.Nulls(),
		rhsNulls: rhs.Nulls(),
	}
	switch nullOrder {
	case NullsSmallest:
		c.lhsNullVerdict, c.rhsNullVerdict = Before, After
	case NullsLargest:
		c.lhsNullVerdict, c.rhsNullVerdict = After, Before
	default:
		return nil, errors.Newf("invalid null order %d", int8(nullOrder))
	}
	return c, nil
}

// orderedVecComparator is the comparator for all types whose Go
// representation is totally ordered by <.
type orderedVecComparator[T constraints.Ordered] struct {
	lhs, rhs []T
}

func (c *orderedVecComparator[T]) Compare(lhsRow, rhsRow int) Verdict {
	a, b := c.lhs[lhsRow], c.rhs[rhsRow]
	if a < b {
		return Before
	} else if a > b {
		return After
	}
	return Undecided
}

type boolVecComparator struct {
	lhs, rhs []bool
}

func (c *boolVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	// false sorts before true.
	a, b := c.lhs[lhsRow], c.rhs[rhsRow]
	if !a && b {
		return Before
	} else if a && !b {
		return After
	}
	return Undecided
}

type bytesVecComparator struct {
	lhs, rhs [][]byte
}

func (c *bytesVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	return Verdict(bytes.Compare(c.lhs[lhsRow], c.rhs[rhsRow]))
}

type decimalVecComparator struct {
	lhs, rhs []apd.Decimal
}

func (c *decimalVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	return Verdict(c.lhs[lhsRow].Cmp(&c.rhs[rhsRow]))
}

// floatVecComparator orders floats totally: NaN compares equal to itself
// and before every non-NaN value.
type floatVecComparator struct {
	lhs, rhs []float64
}

func (c *floatVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	a, b := c.lhs[lhsRow], c.rhs[rhsRow]
	if a < b {
		return Before
	} else if a > b {
		return After
	} else if a == b {
		return Undecided
	} else if math.IsNaN(a) {
		if math.IsNaN(b) {
			return Undecided
		}
		return Before
	}
	return After
}

type timestampVecComparator struct {
	lhs, rhs []time.Time
}

func (c *timestampVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	a, b := c.lhs[lhsRow], c.rhs[rhsRow]
	if a.Before(b) {
		return Before
	} else if b.Before(a) {
		return After
	}
	return Undecided
}

// nullAwareVecComparator wraps a value comparator with a NULL placement
// policy. The verdicts for the one-sided NULL cases are fixed at
// construction so that Compare itself branches only on the null bitmaps.
type nullAwareVecComparator struct {
	values             VecComparator
	lhsNulls, rhsNulls *coldata.Nulls
	// lhsNullVerdict is returned when only the left-hand value is NULL,
	// rhsNullVerdict when only the right-hand value is.
	lhsNullVerdict Verdict
	rhsNullVerdict Verdict
}

func (c *nullAwareVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	lhsNull := c.lhsNulls.MaybeHasNulls() && c.lhsNulls.NullAt(lhsRow)
	rhsNull := c.rhsNulls.MaybeHasNulls() && c.rhsNulls.NullAt(rhsRow)
	if lhsNull {
		if rhsNull {
			// Two NULLs are indistinguishable, so the ordering falls
			// through to later columns.
			return Undecided
		}
		return c.lhsNullVerdict
	}
	if rhsNull {
		return c.rhsNullVerdict
	}
	return c.values.Compare(lhsRow, rhsRow)
}

// swappedVecComparator realizes a descending ordering by swapping the
// operands of an ascending comparator. The wrapped comparator must have
// been built with the left-hand and right-hand vectors exchanged; Compare
// then exchanges the row indices to match. NULL placement inverts along
// with the values.
type swappedVecComparator struct {
	swapped VecComparator
}

func (c *swappedVecComparator) Compare(lhsRow, rhsRow int) Verdict {
	return c.swapped.Compare(rhsRow, lhsRow)
}
