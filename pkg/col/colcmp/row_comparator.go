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

// RowComparator compares rows between two bound tables lexicographically:
// columns are consulted in declared order and the first column on which the
// values differ decides the ordering.
type RowComparator interface {
	// Less returns whether the row at lhsRow of the left-hand table sorts
	// strictly before the row at rhsRow of the right-hand table. Equal rows
	// are not Less in either direction, making Less a strict weak ordering
	// usable with the sort package. Row indices outside of the bound tables
	// cause a runtime panic that colerror.CatchRuntimeError converts into
	// an error.
	Less(lhsRow, rhsRow int) bool
}

// NewRowComparator returns a null-oblivious RowComparator over the two
// tables. rhs may be nil to compare lhs against itself. dirs holds the sort
// direction of each column and may be nil for all-ascending; every column
// participates in the ordering. The tables must have the same width and
// column types, which is validated here so that Less itself performs no
// checking. NULL positions are read as their backing zero values; use
// NewNullAwareRowComparator for tables that may contain NULLs.
func NewRowComparator(
	lhs, rhs *coldata.Table, dirs []Direction,
) (RowComparator, error) {
	cols, err := buildColComparators(lhs, rhs, dirs, func(lvec, rvec coldata.Vec) (VecComparator, error) {
		return NewVecComparator(lvec, rvec)
	})
	if err != nil {
		return nil, err
	}
	return &rowComparator{cols: cols}, nil
}

// NewNullAwareRowComparator is like NewRowComparator for tables that may
// contain NULLs: each column applies the NULL placement decided by
// nullOrder before comparing values. On a descending column the placement
// inverts together with the values, so NullsSmallest sorts NULLs last
// there.
func NewNullAwareRowComparator(
	lhs, rhs *coldata.Table, dirs []Direction, nullOrder NullOrder,
) (RowComparator, error) {
	cols, err := buildColComparators(lhs, rhs, dirs, func(lvec, rvec coldata.Vec) (VecComparator, error) {
		return NewNullAwareVecComparator(lvec, rvec, nullOrder)
	})
	if err != nil {
		return nil, err
	}
	return &rowComparator{cols: cols}, nil
}

// NewDistinctRowComparator returns the self-comparison RowComparator used
// by duplicate-detection passes over a single table. All columns are
// consulted in ascending order, and a row holding a NULL in any consulted
// column never sorts before another row, which keeps NULL-bearing rows out
// of equality classes. There is no direction or NULL order to configure.
func NewDistinctRowComparator(tbl *coldata.Table) (RowComparator, error) {
	if tbl == nil {
		return nil, errors.New("a comparator requires a table")
	}
	cols := make([]VecComparator, tbl.Width())
	nulls := make([]*coldata.Nulls, tbl.Width())
	for i := range cols {
		vec := tbl.ColVec(i)
		cmp, err := NewVecComparator(vec, vec)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", i)
		}
		cols[i] = cmp
		nulls[i] = vec.Nulls()
	}
	return &distinctRowComparator{cols: cols, nulls: nulls}, nil
}

// rowComparator implements RowComparator as a loop over per-column
// comparators. Both the null-oblivious and the null-aware flavors use it;
// they differ only in the comparators built for the columns.
type rowComparator struct {
	cols []VecComparator
}

var _ RowComparator = &rowComparator{}

func (c *rowComparator) Less(lhsRow, rhsRow int) bool {
	for _, col := range c.cols {
		switch col.Compare(lhsRow, rhsRow) {
		case Before:
			return true
		case After:
			return false
		}
	}
	// Every column is undecided: the rows are equal, and a row does not
	// sort before itself.
	return false
}

// distinctRowComparator short-circuits to false as soon as any consulted
// position is NULL; otherwise it behaves like an all-ascending
// rowComparator.
type distinctRowComparator struct {
	cols  []VecComparator
	nulls []*coldata.Nulls
}

var _ RowComparator = &distinctRowComparator{}

func (c *distinctRowComparator) Less(lhsRow, rhsRow int) bool {
	for i, col := range c.cols {
		if n := c.nulls[i]; n.MaybeHasNulls() && (n.NullAt(lhsRow) || n.NullAt(rhsRow)) {
			return false
		}
		switch col.Compare(lhsRow, rhsRow) {
		case Before:
			return true
		case After:
			return false
		}
	}
	return false
}

// bindTables applies the self-comparison default and validates that the
// two tables have compatible schemas.
func bindTables(lhs, rhs *coldata.Table) (*coldata.Table, *coldata.Table, error) {
	if lhs == nil {
		return nil, nil, errors.New("a comparator requires a table")
	}
	if rhs == nil {
		rhs = lhs
	}
	if lhs.Width() != rhs.Width() {
		return nil, nil, errors.Newf(
			"mismatched table widths: %d columns against %d columns", lhs.Width(), rhs.Width())
	}
	for i := 0; i < lhs.Width(); i++ {
		if lt, rt := lhs.ColVec(i).Type(), rhs.ColVec(i).Type(); lt != rt {
			return nil, nil, errors.Newf("type mismatch at column %d: %s against %s", i, lt, rt)
		}
	}
	return lhs, rhs, nil
}

// buildColComparators validates the binding and produces one comparator
// per column, realizing descending columns by constructing the comparator
// with swapped operands and wrapping it in a swappedVecComparator.
func buildColComparators(
	lhs, rhs *coldata.Table,
	dirs []Direction,
	newComparator func(lvec, rvec coldata.Vec) (VecComparator, error),
) ([]VecComparator, error) {
	lhs, rhs, err := bindTables(lhs, rhs)
	if err != nil {
		return nil, err
	}
	if dirs == nil {
		dirs = make([]Direction, lhs.Width())
	} else if len(dirs) != lhs.Width() {
		return nil, errors.Newf(
			"%d directions provided for %d columns", len(dirs), lhs.Width())
	}
	cols := make([]VecComparator, lhs.Width())
	for i := range cols {
		lvec, rvec := lhs.ColVec(i), rhs.ColVec(i)
		switch dirs[i] {
		case Ascending:
			cmp, err := newComparator(lvec, rvec)
			if err != nil {
				return nil, errors.Wrapf(err, "column %d", i)
			}
			cols[i] = cmp
		case Descending:
			cmp, err := newComparator(rvec, lvec)
			if err != nil {
				return nil, errors.Wrapf(err, "column %d", i)
			}
			cols[i] = &swappedVecComparator{swapped: cmp}
		default:
			return nil, errors.Newf("invalid direction %d for column %d", int8(dirs[i]), i)
		}
	}
	return cols, nil
}
