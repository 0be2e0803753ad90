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

// Package coldata exposes utilities for handling columnarized data: column
// vectors backed by Go native slices, validity bitmaps, and read-only table
// handles over collections of equal-length vectors.
package coldata

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colcmp/pkg/col/coltypes"
)

// column is an interface that represents a raw array of a Go native type.
type column interface{}

// Vec is an interface that represents a column vector that's accessible by
// Go native types.
type Vec interface {
	// Type returns the type of data stored in this Vec.
	Type() coltypes.T
	// Length returns the number of values in this Vec.
	Length() int

	// Bool returns a bool list.
	Bool() []bool
	// Bytes returns a [][]byte list.
	Bytes() [][]byte
	// Decimal returns an apd.Decimal list.
	Decimal() []apd.Decimal
	// Int16 returns an int16 list.
	Int16() []int16
	// Int32 returns an int32 list.
	Int32() []int32
	// Int64 returns an int64 list.
	Int64() []int64
	// Float64 returns a float64 list.
	Float64() []float64
	// Timestamp returns a time.Time list.
	Timestamp() []time.Time
	// Col returns the raw, typeless backing storage for this Vec.
	Col() interface{}

	// Nulls returns the nulls vector for this Vec.
	Nulls() *Nulls
	// SetNulls sets the nulls vector for this Vec.
	SetNulls(Nulls)

	// PrettyValueAt returns a "pretty" representation of the specified value
	// in this Vec, with NULL values rendered as the string "NULL".
	PrettyValueAt(i int) string
}

// memColumn is a simple pass-through implementation of Vec that just casts
// and returns a slice directly.
type memColumn struct {
	t      coltypes.T
	length int
	col    column
	nulls  Nulls
}

var _ Vec = &memColumn{}

// NewMemColumn returns a new memColumn, initialized with a type and length.
// All values start off as non-null.
func NewMemColumn(t coltypes.T, n int) Vec {
	m := &memColumn{t: t, length: n, nulls: NewNulls(n)}
	switch t {
	case coltypes.Bool:
		m.col = make([]bool, n)
	case coltypes.Bytes:
		m.col = make([][]byte, n)
	case coltypes.Decimal:
		m.col = make([]apd.Decimal, n)
	case coltypes.Int16:
		m.col = make([]int16, n)
	case coltypes.Int32:
		m.col = make([]int32, n)
	case coltypes.Int64:
		m.col = make([]int64, n)
	case coltypes.Float64:
		m.col = make([]float64, n)
	case coltypes.Timestamp:
		m.col = make([]time.Time, n)
	default:
		panic(fmt.Sprintf("unhandled type %s", t))
	}
	return m
}

func (m *memColumn) Type() coltypes.T {
	return m.t
}

func (m *memColumn) Length() int {
	return m.length
}

func (m *memColumn) Bool() []bool {
	return m.col.([]bool)
}

func (m *memColumn) Bytes() [][]byte {
	return m.col.([][]byte)
}

func (m *memColumn) Decimal() []apd.Decimal {
	return m.col.([]apd.Decimal)
}

func (m *memColumn) Int16() []int16 {
	return m.col.([]int16)
}

func (m *memColumn) Int32() []int32 {
	return m.col.([]int32)
}

func (m *memColumn) Int64() []int64 {
	return m.col.([]int64)
}

func (m *memColumn) Float64() []float64 {
	return m.col.([]float64)
}

func (m *memColumn) Timestamp() []time.Time {
	return m.col.([]time.Time)
}

func (m *memColumn) Col() interface{} {
	return m.col
}

func (m *memColumn) Nulls() *Nulls {
	return &m.nulls
}

func (m *memColumn) SetNulls(n Nulls) {
	m.nulls = n
}

func (m *memColumn) PrettyValueAt(i int) string {
	if m.nulls.MaybeHasNulls() && m.nulls.NullAt(i) {
		return "NULL"
	}
	switch m.t {
	case coltypes.Bool:
		return fmt.Sprintf("%v", m.Bool()[i])
	case coltypes.Bytes:
		return string(m.Bytes()[i])
	case coltypes.Decimal:
		d := m.Decimal()[i]
		return d.String()
	case coltypes.Int16:
		return fmt.Sprintf("%d", m.Int16()[i])
	case coltypes.Int32:
		return fmt.Sprintf("%d", m.Int32()[i])
	case coltypes.Int64:
		return fmt.Sprintf("%d", m.Int64()[i])
	case coltypes.Float64:
		return fmt.Sprintf("%v", m.Float64()[i])
	case coltypes.Timestamp:
		return m.Timestamp()[i].UTC().Format(time.RFC3339Nano)
	default:
		panic(fmt.Sprintf("unhandled type %s", m.t))
	}
}
