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

// Package coltypes enumerates the physical types that columnar data can be
// stored as.
package coltypes

import "github.com/cockroachdb/redact"

var _ redact.SafeValue = T(0)

// T represents a physical column type - the in-memory representation of a
// single column of values.
type T int

//go:generate stringer -type=T

const (
	// Bool is a column of type bool.
	Bool T = iota
	// Bytes is a column of type []byte.
	Bytes
	// Decimal is a column of type apd.Decimal.
	Decimal
	// Int16 is a column of type int16.
	Int16
	// Int32 is a column of type int32.
	Int32
	// Int64 is a column of type int64.
	Int64
	// Float64 is a column of type float64.
	Float64
	// Timestamp is a column of type time.Time.
	Timestamp

	// NumberOfTypes tracks the number of physical types. It must appear last.
	NumberOfTypes int = iota
)

// AllTypes is a slice of all physical types, useful for tests that want to
// iterate over the full type space.
var AllTypes []T

func init() {
	AllTypes = make([]T, NumberOfTypes)
	for i := range AllTypes {
		AllTypes[i] = T(i)
	}
}

// GoTypeName returns the stringified Go type backing a column of type t.
func (t T) GoTypeName() string {
	switch t {
	case Bool:
		return "bool"
	case Bytes:
		return "[]byte"
	case Decimal:
		return "apd.Decimal"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Timestamp:
		return "time.Time"
	default:
		return "unknown type"
	}
}

// SafeValue implements the redact.SafeValue interface.
func (t T) SafeValue() {}
