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

// Nulls represents a list of potentially nulled values using a bitmap. It is
// intended to be used alongside a slice (e.g. in the Vec interface) -- if the
// ith bit is off, then the ith element in that slice is NULL.
type Nulls struct {
	nulls []byte
	// maybeHasNulls is a best-effort representation of whether or not the
	// vector has any null values set. If it is false, there definitely will be
	// no null values. If it is true, there may or may not be null values.
	maybeHasNulls bool
}

const onesMask = byte(255)

// fillChunkBytes is the size of the template bitmaps that SetNulls and
// UnsetNulls copy from.
const fillChunkBytes = 64

// zeroedNulls is a zeroed out chunk of a bitmap, copied to efficiently set
// all values to null.
var zeroedNulls [fillChunkBytes]byte

// filledNulls is a chunk of a bitmap with every single bit set, copied to
// efficiently unset all nulls.
var filledNulls [fillChunkBytes]byte

// bitMask[i] is a byte with a single bit set at the ith position.
var bitMask = [8]byte{0x1, 0x2, 0x4, 0x8, 0x10, 0x20, 0x40, 0x80}

// flippedBitMask[i] is a byte with every bit set except at the ith position.
var flippedBitMask = [8]byte{0xFE, 0xFD, 0xFB, 0xF7, 0xEF, 0xDF, 0xBF, 0x7F}

func init() {
	for i := range filledNulls {
		filledNulls[i] = onesMask
	}
}

// NewNulls returns a new nulls vector, initialized with a length. All values
// start off as non-null.
func NewNulls(len int) Nulls {
	if len > 0 {
		n := Nulls{nulls: make([]byte, (len-1)/8+1)}
		n.UnsetNulls()
		return n
	}
	return Nulls{nulls: make([]byte, 0)}
}

// MaybeHasNulls returns true if the column possibly has any null values, and
// returns false if the column definitely has no null values.
func (n *Nulls) MaybeHasNulls() bool {
	return n.maybeHasNulls
}

// NullAt returns true if the ith value of the column is null.
func (n *Nulls) NullAt(i int) bool {
	return n.nulls[i>>3]&bitMask[i&7] == 0
}

// SetNull sets the ith value of the column to null.
func (n *Nulls) SetNull(i int) {
	n.maybeHasNulls = true
	n.nulls[i>>3] &= flippedBitMask[i&7]
}

// UnsetNull unsets the ith value of the column. Note that this method does
// not clear maybeHasNulls: unsetting the last null leaves the flag
// conservatively set.
func (n *Nulls) UnsetNull(i int) {
	n.nulls[i>>3] |= bitMask[i&7]
}

// SetNulls sets the column to all null values.
func (n *Nulls) SetNulls() {
	n.maybeHasNulls = true
	startIdx := 0
	for startIdx < len(n.nulls) {
		startIdx += copy(n.nulls[startIdx:], zeroedNulls[:])
	}
}

// UnsetNulls sets the column to have no null values.
func (n *Nulls) UnsetNulls() {
	n.maybeHasNulls = false
	startIdx := 0
	for startIdx < len(n.nulls) {
		startIdx += copy(n.nulls[startIdx:], filledNulls[:])
	}
}

// SetNullRange sets all the values in [startIdx, endIdx) to null.
func (n *Nulls) SetNullRange(startIdx int, endIdx int) {
	if startIdx >= endIdx {
		return
	}

	n.maybeHasNulls = true
	sIdx := startIdx / 8
	eIdx := (endIdx - 1) / 8

	// Case where mask only spans one byte.
	if sIdx == eIdx {
		mask := onesMask >> (8 - byte(startIdx%8))
		// Mask the end if needed.
		if endIdx%8 != 0 {
			mask |= onesMask << byte(endIdx%8)
		}
		n.nulls[sIdx] &= mask
		return
	}

	// Case where mask spans at least two bytes.
	mask := onesMask >> (8 - byte(startIdx%8))
	n.nulls[sIdx] &= mask
	for idx := sIdx + 1; idx < eIdx; idx++ {
		n.nulls[idx] = 0
	}
	mask = onesMask << byte(endIdx%8)
	if endIdx%8 == 0 {
		mask = 0
	}
	n.nulls[eIdx] &= mask
}

// UnsetNullRange unsets all the values in [startIdx, endIdx), so that they
// are no longer null.
func (n *Nulls) UnsetNullRange(startIdx, endIdx int) {
	if startIdx >= endIdx {
		return
	}
	if !n.maybeHasNulls {
		return
	}

	sIdx := startIdx / 8
	eIdx := (endIdx - 1) / 8

	// Case where mask only spans one byte.
	if sIdx == eIdx {
		mask := onesMask << byte(startIdx%8)
		if endIdx%8 != 0 {
			mask &= onesMask >> (8 - byte(endIdx%8))
		}
		n.nulls[sIdx] |= mask
		return
	}

	// Case where mask spans at least two bytes.
	mask := onesMask << byte(startIdx%8)
	n.nulls[sIdx] |= mask
	for idx := sIdx + 1; idx < eIdx; idx++ {
		n.nulls[idx] = onesMask
	}
	if endIdx%8 == 0 {
		n.nulls[eIdx] = onesMask
	} else {
		mask = onesMask >> (8 - byte(endIdx%8))
		n.nulls[eIdx] |= mask
	}
}

// Slice returns a new Nulls representing a slice of the receiver in the range
// [start, end).
func (n *Nulls) Slice(start int, end int) Nulls {
	switch {
	case start >= end:
		return NewNulls(0)
	case !n.maybeHasNulls:
		return NewNulls(end - start)
	}
	s := NewNulls(end - start)
	s.maybeHasNulls = true
	mod := start % 8
	startIdx := start / 8
	if mod == 0 {
		copy(s.nulls, n.nulls[startIdx:])
	} else {
		for i := range s.nulls {
			// If start is not a multiple of 8, we need to shift over the
			// bitmap to have the first index correspond.
			s.nulls[i] = n.nulls[startIdx+i] >> byte(mod)
			if startIdx+i+1 < len(n.nulls) {
				// And now bitwise or the remaining bits with the bits we
				// want to bring over from the next index.
				s.nulls[i] |= n.nulls[startIdx+i+1] << byte(8-mod)
			}
		}
	}
	return s
}

// Or returns a new Nulls vector where NullAt(i) iff n.NullAt(i) or
// n2.NullAt(i).
func (n *Nulls) Or(n2 *Nulls) *Nulls {
	// For simplicity, enforce that len(n.nulls) <= len(n2.nulls).
	if len(n.nulls) > len(n2.nulls) {
		n, n2 = n2, n
	}
	res := &Nulls{
		maybeHasNulls: n.maybeHasNulls || n2.maybeHasNulls,
		nulls:         make([]byte, len(n2.nulls)),
	}
	if n.maybeHasNulls && n2.maybeHasNulls {
		for i := 0; i < len(n.nulls); i++ {
			res.nulls[i] = n.nulls[i] & n2.nulls[i]
		}
		// If n2 is longer, we can just copy the remainder.
		copy(res.nulls[len(n.nulls):], n2.nulls[len(n.nulls):])
	} else if n.maybeHasNulls {
		copy(res.nulls, n.nulls)
		// The trailing positions that only n2 covers are all non-null.
		for i := len(n.nulls); i < len(n2.nulls); i++ {
			res.nulls[i] = onesMask
		}
	} else if n2.maybeHasNulls {
		// Since n2 is not of a smaller length, we can just copy its bitmap.
		copy(res.nulls, n2.nulls)
	} else {
		for i := range res.nulls {
			res.nulls[i] = onesMask
		}
	}
	return res
}

// Copy returns a copy of n which can be modified independently.
func (n *Nulls) Copy() Nulls {
	c := Nulls{
		maybeHasNulls: n.maybeHasNulls,
		nulls:         make([]byte, len(n.nulls)),
	}
	copy(c.nulls, n.nulls)
	return c
}
