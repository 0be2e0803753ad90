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

// Package coldatatestutils generates random columnar data for tests.
package coldatatestutils

import (
	"math/rand"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colcmp/pkg/col/coldata"
	"github.com/cockroachdb/colcmp/pkg/col/coltypes"
	"github.com/cockroachdb/colcmp/pkg/util/randutil"
)

// maxRandBytesLength is the maximum length of a random []byte value.
const maxRandBytesLength = 16

// RandomVec returns a new vector of the given type and length populated
// with random values, each of which is independently set to NULL with a
// probability of nullProbability.
func RandomVec(
	rng *rand.Rand, typ coltypes.T, n int, nullProbability float64,
) coldata.Vec {
	vec := coldata.NewMemColumn(typ, n)
	switch typ {
	case coltypes.Bool:
		col := vec.Bool()
		for i := range col {
			col[i] = rng.Float64() < 0.5
		}
	case coltypes.Bytes:
		col := vec.Bytes()
		for i := range col {
			col[i] = randutil.RandBytes(rng, 1+rng.Intn(maxRandBytesLength))
		}
	case coltypes.Decimal:
		col := vec.Decimal()
		for i := range col {
			col[i] = *apd.New(rng.Int63()%100000, int32(rng.Intn(6)-3))
		}
	case coltypes.Int16:
		col := vec.Int16()
		for i := range col {
			col[i] = int16(rng.Uint64())
		}
	case coltypes.Int32:
		col := vec.Int32()
		for i := range col {
			col[i] = int32(rng.Uint64())
		}
	case coltypes.Int64:
		col := vec.Int64()
		for i := range col {
			col[i] = int64(rng.Uint64())
		}
	case coltypes.Float64:
		col := vec.Float64()
		for i := range col {
			col[i] = rng.NormFloat64()
		}
	case coltypes.Timestamp:
		col := vec.Timestamp()
		for i := range col {
			col[i] = time.Unix(rng.Int63n(1000000), rng.Int63n(1000000)).UTC()
		}
	}
	if nullProbability > 0 {
		for i := 0; i < n; i++ {
			if rng.Float64() < nullProbability {
				vec.Nulls().SetNull(i)
			}
		}
	}
	return vec
}

// RandomTable returns a new table with the given column types and length
// populated via RandomVec.
func RandomTable(
	rng *rand.Rand, typs []coltypes.T, n int, nullProbability float64,
) *coldata.Table {
	vecs := make([]coldata.Vec, len(typs))
	for i, typ := range typs {
		vecs[i] = RandomVec(rng, typ, n, nullProbability)
	}
	tbl, err := coldata.NewTable(vecs...)
	if err != nil {
		panic(err)
	}
	return tbl
}
