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
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/colcmp/pkg/col/coldata"
	"github.com/cockroachdb/colcmp/pkg/col/colerror"
	"github.com/cockroachdb/colcmp/pkg/col/coltypes"
	"github.com/cockroachdb/colcmp/pkg/util/leaktest"
	"github.com/cockroachdb/datadriven"
)

var typesByName = map[string]coltypes.T{
	"bool":    coltypes.Bool,
	"bytes":   coltypes.Bytes,
	"int64":   coltypes.Int64,
	"float64": coltypes.Float64,
}

var nullOrdersByName = map[string]NullOrder{
	"smallest": NullsSmallest,
	"largest":  NullsLargest,
}

// TestDataDriven walks through testdata/row_comparator. The directives are:
//
//	table
//	<type>: <value>, <value>, ...
//
//	  Replaces the current table. Each input line declares one column; the
//	  literal NULL marks a null slot. Prints the rows of the new table.
//
//	less lhs=<row> rhs=<row> [dirs=(asc|desc,...)] [null-order=smallest|largest]
//
//	  Prints cmp.Less(lhs, rhs) for an ordering comparator over the current
//	  table. The comparator is null-aware iff null-order is given.
//
//	distinct lhs=<row> rhs=<row>
//
//	  Prints cmp.Less(lhs, rhs) for the distinct-variant comparator.
//
//	equal lhs=<row> rhs=<row> [nulls-are-equal]
//
//	  Prints eq.Equal(lhs, rhs).
//
// Construction errors and caught runtime errors print as "error: ...".
func TestDataDriven(t *testing.T) {
	defer leaktest.AfterTest(t)()

	var tbl *coldata.Table
	datadriven.RunTest(t, "testdata/row_comparator", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "table":
			var vecs []coldata.Vec
			for _, line := range strings.Split(d.Input, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				typeName, valueList, ok := strings.Cut(line, ":")
				if !ok {
					d.Fatalf(t, "malformed column %q", line)
				}
				typ, ok := typesByName[strings.TrimSpace(typeName)]
				if !ok {
					d.Fatalf(t, "unknown column type %q", typeName)
				}
				fields := strings.Split(valueList, ",")
				vec := coldata.NewMemColumn(typ, len(fields))
				for i, field := range fields {
					field = strings.TrimSpace(field)
					if field == "NULL" {
						vec.Nulls().SetNull(i)
						continue
					}
					switch typ {
					case coltypes.Bool:
						v, err := strconv.ParseBool(field)
						if err != nil {
							d.Fatalf(t, "%v", err)
						}
						vec.Bool()[i] = v
					case coltypes.Bytes:
						vec.Bytes()[i] = []byte(field)
					case coltypes.Int64:
						v, err := strconv.ParseInt(field, 10, 64)
						if err != nil {
							d.Fatalf(t, "%v", err)
						}
						vec.Int64()[i] = v
					case coltypes.Float64:
						v, err := strconv.ParseFloat(field, 64)
						if err != nil {
							d.Fatalf(t, "%v", err)
						}
						vec.Float64()[i] = v
					}
				}
				vecs = append(vecs, vec)
			}
			var err error
			if tbl, err = coldata.NewTable(vecs...); err != nil {
				tbl = nil
				return fmt.Sprintf("error: %s\n", err)
			}
			var sb strings.Builder
			for row := 0; row < tbl.Length(); row++ {
				vals := make([]string, tbl.Width())
				for col := range vals {
					vals[col] = tbl.ColVec(col).PrettyValueAt(row)
				}
				fmt.Fprintf(&sb, "row %d: %s\n", row, strings.Join(vals, " "))
			}
			return sb.String()

		case "less", "distinct":
			if tbl == nil {
				d.Fatalf(t, "no table defined")
			}
			lhsRow, rhsRow := scanRows(t, d)
			var dirs []Direction
			for _, arg := range d.CmdArgs {
				if arg.Key != "dirs" {
					continue
				}
				for _, v := range arg.Vals {
					switch v {
					case "asc":
						dirs = append(dirs, Ascending)
					case "desc":
						dirs = append(dirs, Descending)
					default:
						d.Fatalf(t, "unknown direction %q", v)
					}
				}
			}
			var cmp RowComparator
			var err error
			switch {
			case d.Cmd == "distinct":
				cmp, err = NewDistinctRowComparator(tbl)
			case d.HasArg("null-order"):
				var nullOrderName string
				d.ScanArgs(t, "null-order", &nullOrderName)
				nullOrder, ok := nullOrdersByName[nullOrderName]
				if !ok {
					d.Fatalf(t, "unknown null order %q", nullOrderName)
				}
				cmp, err = NewNullAwareRowComparator(tbl, nil, dirs, nullOrder)
			default:
				cmp, err = NewRowComparator(tbl, nil, dirs)
			}
			if err != nil {
				return fmt.Sprintf("error: %s\n", err)
			}
			var less bool
			if err := colerror.CatchRuntimeError(func() {
				less = cmp.Less(lhsRow, rhsRow)
			}); err != nil {
				return fmt.Sprintf("error: %s\n", err)
			}
			return fmt.Sprintf("%t\n", less)

		case "equal":
			if tbl == nil {
				d.Fatalf(t, "no table defined")
			}
			lhsRow, rhsRow := scanRows(t, d)
			eq, err := NewRowEqualityComparator(tbl, nil, d.HasArg("nulls-are-equal"))
			if err != nil {
				return fmt.Sprintf("error: %s\n", err)
			}
			var equal bool
			if err := colerror.CatchRuntimeError(func() {
				equal = eq.Equal(lhsRow, rhsRow)
			}); err != nil {
				return fmt.Sprintf("error: %s\n", err)
			}
			return fmt.Sprintf("%t\n", equal)
		}
		d.Fatalf(t, "unknown command %s", d.Cmd)
		return ""
	})
}

func scanRows(t *testing.T, d *datadriven.TestData) (lhsRow, rhsRow int) {
	d.ScanArgs(t, "lhs", &lhsRow)
	d.ScanArgs(t, "rhs", &rhsRow)
	return lhsRow, rhsRow
}
