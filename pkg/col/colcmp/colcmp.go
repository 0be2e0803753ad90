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

// Package colcmp provides row-wise comparators over columnar tables.
//
// A comparator is built once against a pair of tables (or a single table
// compared against itself) and then invoked many times to decide whether
// one row sorts strictly before another under per-column directions and an
// optional NULL ordering policy. Construction validates the schemas and
// selects a monomorphic comparison kernel per column, so the per-call path
// performs no type dispatch. Comparators are stateless after construction
// and safe for concurrent use as long as the underlying column data is not
// mutated.
package colcmp

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

var (
	_ redact.SafeValue = Verdict(0)
	_ redact.SafeValue = Direction(0)
	_ redact.SafeValue = NullOrder(0)
)

// Verdict is the outcome of comparing two values or two rows. Its values
// share the -1/0/1 encoding returned by bytes.Compare and apd's Cmp.
type Verdict int8

const (
	// Before indicates that the left-hand value sorts strictly before the
	// right-hand value.
	Before Verdict = -1
	// Undecided indicates that the two values are equal, so the ordering is
	// decided by later columns, if any.
	Undecided Verdict = 0
	// After indicates that the left-hand value sorts strictly after the
	// right-hand value.
	After Verdict = 1
)

func (v Verdict) String() string {
	switch v {
	case Before:
		return "before"
	case Undecided:
		return "undecided"
	case After:
		return "after"
	default:
		return fmt.Sprintf("invalid verdict: %d", int8(v))
	}
}

// SafeValue implements the redact.SafeValue interface.
func (v Verdict) SafeValue() {}

// Direction specifies the sort direction of a single column.
type Direction int8

const (
	// Ascending directs smaller values to sort first. It is the zero value
	// of Direction.
	Ascending Direction = iota
	// Descending directs larger values to sort first.
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("invalid direction: %d", int8(d))
	}
}

// SafeValue implements the redact.SafeValue interface.
func (d Direction) SafeValue() {}

// NullOrder specifies where NULL values place in the sort order of
// null-aware comparators.
type NullOrder int8

const (
	// NullsSmallest places NULLs before every non-NULL value. It is the
	// zero value of NullOrder.
	NullsSmallest NullOrder = iota
	// NullsLargest places NULLs after every non-NULL value.
	NullsLargest
)

func (o NullOrder) String() string {
	switch o {
	case NullsSmallest:
		return "nulls-smallest"
	case NullsLargest:
		return "nulls-largest"
	default:
		return fmt.Sprintf("invalid null order: %d", int8(o))
	}
}

// SafeValue implements the redact.SafeValue interface.
func (o NullOrder) SafeValue() {}
