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
	"github.com/cockroachdb/colcmp/pkg/col/coldata"
	"github.com/cockroachdb/errors"
)

// RowEqualityComparator compares rows between two bound tables for
// equality. Directions play no part since they cannot affect whether two
// rows are equal.
type RowEqualityComparator interface {
	// Equal returns whether the row at lhsRow of the left-hand table equals
	// the row at rhsRow of the right-hand table in every column.
	Equal(lhsRow, rhsRow int) bool
}

// NewRowEqualityComparator returns a RowEqualityComparator over the two
// tables. rhs may be nil to compare lhs against itself. nullsAreEqual
// decides whether two NULLs in the same column count as equal (as in
// grouping and DISTINCT) or not (as in joins); a NULL facing a non-NULL
// value is unequal either way. Values are equal whenever the ordering
// kernel is undecided between them, so NaN equals NaN just as it does in
// the sort order.
func NewRowEqualityComparator(
	lhs, rhs *coldata.Table, nullsAreEqual bool,
) (RowEqualityComparator, error) {
	lhs, rhs, err := bindTables(lhs, rhs)
	if err != nil {
		return nil, err
	}
	c := &rowEqualityComparator{
		cols:          make([]VecComparator, lhs.Width()),
		lhsNulls:      make([]*coldata.Nulls, lhs.Width()),
		rhsNulls:      make([]*coldata.Nulls, lhs.Width()),
		nullsAreEqual: nullsAreEqual,
	}
	for i := range c.cols {
		lvec, rvec := lhs.ColVec(i), rhs.ColVec(i)
		cmp, err := NewVecComparator(lvec, rvec)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", i)
		}
		c.cols[i] = cmp
		c.lhsNulls[i] = lvec.Nulls()
		c.rhsNulls[i] = rvec.Nulls()
	}
	return c, nil
}

type rowEqualityComparator struct {
	cols               []VecComparator
	lhsNulls, rhsNulls []*coldata.Nulls
	nullsAreEqual      bool
}

var _ RowEqualityComparator = &rowEqualityComparator{}

func (c *rowEqualityComparator) Equal(lhsRow, rhsRow int) bool {
	for i, col := range c.cols {
		lhsNull := c.lhsNulls[i].MaybeHasNulls() && c.lhsNulls[i].NullAt(lhsRow)
		rhsNull := c.rhsNulls[i].MaybeHasNulls() && c.rhsNulls[i].NullAt(rhsRow)
		if lhsNull && rhsNull {
			if !c.nullsAreEqual {
				return false
			}
			// Both values are NULL and NULLs are considered equal: move on
			// to the next column.
			continue
		}
		if lhsNull || rhsNull {
			return false
		}
		if col.Compare(lhsRow, rhsRow) != Undecided {
			return false
		}
	}
	return true
}
