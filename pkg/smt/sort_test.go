// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sort_Primitives(t *testing.T) {
	assert.True(t, BoolSort().IsBool())
	assert.True(t, IntSort().IsInt())
	assert.True(t, RealSort().IsReal())
	//
	assert.False(t, BoolSort().IsInt())
	assert.False(t, IntSort().IsBv())
	assert.False(t, RealSort().IsArray())
	//
	assert.Equal(t, uint(0), BoolSort().SortsLen())
	assert.Equal(t, uint(0), IntSort().BvWidth())
}

func Test_Sort_Interning(t *testing.T) {
	// Primitive sorts are singletons.
	assert.Same(t, BoolSort(), BoolSort())
	// Bit-vector sorts intern per (signedness, width).
	assert.Same(t, NewBvSort(true, 32), NewBvSort(true, 32))
	assert.NotSame(t, NewBvSort(true, 32), NewBvSort(false, 32))
	assert.NotSame(t, NewBvSort(true, 32), NewBvSort(true, 16))
	// Composite sorts intern structurally.
	assert.Same(t,
		NewArraySort(NewBvSort(false, 8), BoolSort()),
		NewArraySort(NewBvSort(false, 8), BoolSort()))
	assert.Same(t,
		NewFuncSort(IntSort(), IntSort(), BoolSort()),
		NewFuncSort(IntSort(), IntSort(), BoolSort()))
	assert.Same(t,
		NewTupleSort(IntSort(), RealSort()),
		NewTupleSort(IntSort(), RealSort()))
}

func Test_Sort_Bv(t *testing.T) {
	u8 := NewBvSort(false, 8)
	i64 := NewBvSort(true, 64)
	//
	assert.True(t, u8.IsBv())
	assert.False(t, u8.IsSigned())
	assert.Equal(t, uint(8), u8.BvWidth())
	//
	assert.True(t, i64.IsBv())
	assert.True(t, i64.IsSigned())
	assert.Equal(t, uint(64), i64.BvWidth())
	//
	assert.Panics(t, func() { NewBvSort(false, 0) })
}

func Test_Sort_Array(t *testing.T) {
	sort := NewArraySort(NewBvSort(false, 16), NewBvSort(true, 8))
	//
	require.True(t, sort.IsArray())
	assert.Equal(t, uint(2), sort.SortsLen())
	assert.Same(t, NewBvSort(false, 16), sort.Sorts(0))
	assert.Same(t, NewBvSort(true, 8), sort.Sorts(1))
	//
	assert.Panics(t, func() { sort.Sorts(2) })
}

func Test_Sort_Func(t *testing.T) {
	sort := NewFuncSort(NewBvSort(true, 32), NewBvSort(true, 32), BoolSort())
	//
	require.True(t, sort.IsFunc())
	assert.Equal(t, uint(3), sort.SortsLen())
	assert.Same(t, BoolSort(), sort.Sorts(2))
	//
	assert.Panics(t, func() { NewFuncSort(BoolSort()) })
}

func Test_Sort_Equals(t *testing.T) {
	assert.True(t, BoolSort().Equals(BoolSort()))
	assert.False(t, BoolSort().Equals(IntSort()))
	assert.False(t, BoolSort().Equals(nil))
	assert.True(t, NewBvSort(true, 8).Equals(NewBvSort(true, 8)))
	assert.False(t, NewBvSort(true, 8).Equals(NewBvSort(false, 8)))
	// Structural fallback for an independently constructed sort.
	other := &Sort{isBv: true, isSigned: true, bvWidth: 8}
	assert.True(t, NewBvSort(true, 8).Equals(other))
}

func Test_Sort_String(t *testing.T) {
	assert.Equal(t, "Bool", BoolSort().String())
	assert.Equal(t, "Int", IntSort().String())
	assert.Equal(t, "Real", RealSort().String())
	assert.Equal(t, "u8", NewBvSort(false, 8).String())
	assert.Equal(t, "i32", NewBvSort(true, 32).String())
	assert.Equal(t, "(Array u8 Bool)", NewArraySort(NewBvSort(false, 8), BoolSort()).String())
	assert.Equal(t, "(-> Int Int Bool)", NewFuncSort(IntSort(), IntSort(), BoolSort()).String())
	assert.Equal(t, "(Tuple Int Real)", NewTupleSort(IntSort(), RealSort()).String())
}

func Test_Sort_SortOf(t *testing.T) {
	assert.Same(t, BoolSort(), SortOf[Bool]())
	assert.Same(t, IntSort(), SortOf[Int]())
	assert.Same(t, RealSort(), SortOf[Real]())
	assert.Same(t, NewBvSort(true, 32), SortOf[Bv[int32]]())
	assert.Same(t, NewBvSort(false, 64), SortOf[Bv[uint64]]())
	assert.Same(t,
		NewArraySort(NewBvSort(false, 8), NewBvSort(true, 16)),
		SortOf[Array[Bv[uint8], Bv[int16]]]())
	assert.Same(t,
		NewFuncSort(IntSort(), BoolSort()),
		SortOf[Func1[Int, Bool]]())
	assert.Same(t,
		NewFuncSort(IntSort(), IntSort(), IntSort(), BoolSort()),
		SortOf[Func3[Int, Int, Int, Bool]]())
}
