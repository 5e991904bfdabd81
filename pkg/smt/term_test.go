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

func Test_Term_Null(t *testing.T) {
	var (
		unsafe UnsafeTerm
		typed  Term[Bool]
	)
	//
	assert.True(t, unsafe.IsNull())
	assert.True(t, typed.IsNull())
	assert.Equal(t, uintptr(0), unsafe.Addr())
	//
	assert.Panics(t, func() { unsafe.ExprKind() })
	assert.Panics(t, func() { unsafe.Sort() })
	assert.Panics(t, func() { typed.Sort() })
}

func Test_Term_Aliasing(t *testing.T) {
	x := Any[Bv[uint8]]("x")
	sum := Add(x, x)
	other := Add(x, x)
	//
	// Handles onto the same node compare equal ...
	assert.Equal(t, x.Unsafe(), x.Unsafe())
	assert.Equal(t, x.Unsafe().Addr(), x.Unsafe().Addr())
	// ... whilst structurally equal but distinct nodes do not.
	assert.NotEqual(t, sum.Unsafe(), other.Unsafe())
	assert.NotEqual(t, sum.Unsafe().Addr(), other.Unsafe().Addr())
}

func Test_Term_Kinds(t *testing.T) {
	x := Any[Int]("term_kinds_x")
	one := Literal[Int](1)
	//
	assert.Equal(t, ConstantExprKind, x.ExprKind())
	assert.Equal(t, LiteralExprKind, one.ExprKind())
	assert.Equal(t, UnaryExprKind, Neg(x).ExprKind())
	assert.Equal(t, BinaryExprKind, Add(x, one).ExprKind())
	assert.Equal(t, NaryExprKind, Distinct(x, one).ExprKind())
}

func Test_Term_Sorts(t *testing.T) {
	x := Any[Bv[int16]]("term_sorts_x")
	y := Any[Bv[int16]]("term_sorts_y")
	//
	// Arithmetic keeps the operand sort.
	assert.Same(t, NewBvSort(true, 16), Add(x, y).Sort())
	assert.Same(t, NewBvSort(true, 16), Neg(x).Sort())
	// Relations are Boolean-sorted regardless of operand sort.
	assert.Same(t, BoolSort(), Lt(x, y).Sort())
	assert.Same(t, BoolSort(), Eq(x, y).Sort())
	assert.Same(t, BoolSort(), Ne(x, y).Sort())
}

func Test_Term_Downcast(t *testing.T) {
	x := Any[Bv[uint32]]("term_downcast_x")
	erased := x.Unsafe()
	//
	// Matching sort recovers a non-null typed handle onto the same node.
	back := Downcast[Bv[uint32]](erased)
	require.False(t, back.IsNull())
	assert.Equal(t, erased, back.Unsafe())
	// Mismatched sort yields the null handle, never a panic.
	assert.True(t, Downcast[Bv[int32]](erased).IsNull())
	assert.True(t, Downcast[Bool](erased).IsNull())
	// So does downcasting the null handle.
	assert.True(t, Downcast[Bool](UnsafeTerm{}).IsNull())
}

func Test_Term_Literals(t *testing.T) {
	assert.Same(t, BoolSort(), Literal[Bool](true).Sort())
	assert.Same(t, IntSort(), Literal[Int](42).Sort())
	assert.Same(t, NewBvSort(false, 8), Literal[Bv[uint8]](uint8(7)).Sort())
	// Boolean scalars only fit the Boolean sort, and vice versa.
	assert.Panics(t, func() { UnsafeLiteral(IntSort(), true) })
	assert.Panics(t, func() { UnsafeLiteral(BoolSort(), 1) })
}

func Test_Term_NaryEmpty(t *testing.T) {
	assert.Panics(t, func() { UnsafeNary(LAND, nil) })
	assert.Panics(t, func() { Distinct[Int]() })
}

func Test_Term_NullOperands(t *testing.T) {
	var null UnsafeTerm
	//
	assert.Panics(t, func() { UnsafeUnary(LNOT, null) })
	assert.Panics(t, func() { UnsafeBinary(ADD, UnsafeConstant(NewUnsafeDecl("nz", IntSort())), null) })
}

func Test_Term_Apply(t *testing.T) {
	f := NewDecl[Func1[Int, Bool]]("term_apply_f")
	x := Any[Int]("term_apply_x")
	app := Apply1(f, x)
	//
	assert.Equal(t, FuncAppExprKind, app.ExprKind())
	assert.Same(t, BoolSort(), app.Sort())
	// Arity and sort preconditions fail immediately.
	assert.Panics(t, func() { UnsafeApply(f.UnsafeDecl) })
	assert.Panics(t, func() { UnsafeApply(f.UnsafeDecl, x.Unsafe(), x.Unsafe()) })
	assert.Panics(t, func() { UnsafeApply(NewUnsafeDecl("term_apply_c", IntSort()), x.Unsafe()) })
}

func Test_Term_Arrays(t *testing.T) {
	arr := Any[Array[Bv[uint8], Bv[int32]]]("term_arrays_a")
	idx := Literal[Bv[uint8]](uint8(3))
	val := Literal[Bv[int32]](int32(-1))
	//
	sel := Select(arr, idx)
	assert.Equal(t, ArraySelectExprKind, sel.ExprKind())
	assert.Same(t, NewBvSort(true, 32), sel.Sort())
	//
	sto := Store(arr, idx, val)
	assert.Equal(t, ArrayStoreExprKind, sto.ExprKind())
	assert.Same(t, arr.Sort(), sto.Sort())
	//
	ca := ConstArray[Bv[uint8]](val)
	assert.Equal(t, ConstArrayExprKind, ca.ExprKind())
	assert.Same(t, arr.Sort(), ca.Sort())
	// Array shape is checked on the erased path.
	assert.Panics(t, func() { UnsafeSelect(idx.Unsafe(), idx.Unsafe()) })
	assert.Panics(t, func() { UnsafeStore(idx.Unsafe(), idx.Unsafe(), val.Unsafe()) })
	assert.Panics(t, func() { UnsafeConstArray(IntSort(), val.Unsafe()) })
}
