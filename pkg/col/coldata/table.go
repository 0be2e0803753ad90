// Copyright 2019 The Cockroach Authors.
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

package coldata

import (
	"github.com/cockroachdb/colcmp/pkg/col/coltypes"
	"github.com/cockroachdb/errors"
)

// Table is an ordered, non-owning view over a set of equal-length column
// vectors. It neither copies nor mutates the vectors it is built from, so
// the vectors must outlive the Table (and anything derived from it, like a
// comparator), and must not be mutated while such derived objects are in
// use.
type Table struct {
	vecs   []Vec
	length int
}

// NewTable returns a Table over the given column vectors. It returns an
// error if no vectors are given or if the vectors are not all of the same
// length.
func NewTable(vecs ...Vec) (*Table, error) {
	if len(vecs) == 0 {
		return nil, errors.New("a table requires at least one column")
	}
	length := vecs[0].Length()
	for i, v := range vecs[1:] {
		if v.Length() != length {
			return nil, errors.Newf(
				"column %d has length %d, expected %d", i+1, v.Length(), length)
		}
	}
	t := &Table{vecs: make([]Vec, len(vecs)), length: length}
	copy(t.vecs, vecs)
	return t, nil
}

// Width returns the number of columns in the table.
func (t *Table) Width() int {
	return len(t.vecs)
}

// Length returns the number of rows in the table.
func (t *Table) Length() int {
	return t.length
}

// ColVec returns the ith column vector.
func (t *Table) ColVec(i int) Vec {
	return t.vecs[i]
}

// ColVecs returns the underlying column vectors. Callers must not modify
// the returned slice.
func (t *Table) ColVecs() []Vec {
	return t.vecs
}

// Types returns the types of the columns in the table, in column order.
func (t *Table) Types() []coltypes.T {
	typs := make([]coltypes.T, len(t.vecs))
	for i, v := range t.vecs {
		typs[i] = v.Type()
	}
	return typs
}
