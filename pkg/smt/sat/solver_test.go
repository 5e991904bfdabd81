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
package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-smt/pkg/smt"
)

func Test_Sat_Empty(t *testing.T) {
	solver := New()
	//
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_BoolLiterals(t *testing.T) {
	solver := New()
	//
	require.Equal(t, smt.OK, solver.Add(smt.Literal[smt.Bool](true)))
	assert.Equal(t, smt.Sat, solver.Check())
	//
	require.Equal(t, smt.OK, solver.Add(smt.Literal[smt.Bool](false)))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_LiteralRoundtrips(t *testing.T) {
	solver := New()
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Literal[smt.Bv[uint8]](uint8(200)), smt.Literal[smt.Bv[uint8]](uint8(200)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Literal[smt.Bv[int16]](int16(-1234)), smt.Literal[smt.Bv[int16]](int16(-1234)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Literal[smt.Bv[uint64]](uint64(0xdeadbeefcafe)), smt.Literal[smt.Bv[uint64]](uint64(0xdeadbeefcafe)))))
	assert.Equal(t, smt.Sat, solver.Check())
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Literal[smt.Bv[int8]](int8(-1)), smt.Literal[smt.Bv[int8]](int8(1)))))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_IntUnsupported(t *testing.T) {
	solver := New()
	//
	// A bit-level back end has no rendering of the mathematical integers.
	assert.Equal(t, smt.UnsupportError,
		solver.Add(smt.Eq(smt.Literal[smt.Int](1), smt.Literal[smt.Int](1))))
	// The failed assertion must not have been retained.
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_SharedConstants(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[uint8]]("x")
	y := smt.Any[smt.Bv[uint8]]("y")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Lt(x, y)))
	require.Equal(t, smt.OK, solver.Add(smt.Gt(y, x)))
	require.Equal(t, smt.Sat, solver.Check())
	// x and y were each rendered exactly once, despite appearing in two
	// assertions apiece.
	assert.Equal(t, uint(2), solver.Stats().Constants)
}

func Test_Sat_SymbolIdentity(t *testing.T) {
	solver := New()
	// Two distinct nodes declaring the same symbol at the same sort denote
	// the same constant.
	a := smt.Any[smt.Bv[uint8]]("shared")
	b := smt.Any[smt.Bv[uint8]]("shared")
	//
	require.NotEqual(t, a.Unsafe(), b.Unsafe())
	require.Equal(t, smt.OK, solver.Add(smt.Ne(a, b)))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_Distinct(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[uint8]]("x")
	y := smt.Any[smt.Bv[uint8]]("y")
	z := smt.Any[smt.Bv[uint8]]("z")
	w := smt.Any[smt.Bv[uint8]]("w")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Distinct(x, y, z)))
	require.Equal(t, smt.Sat, solver.Check())
	// w is unconstrained by the distinctness of x, y, z.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(w, x)))
	require.Equal(t, smt.Sat, solver.Check())
	// Distinctness is pairwise, so equating any two members refutes it.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(x, z)))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_UnsignedComparisons(t *testing.T) {
	solver := New()
	//
	// 255 is the largest unsigned byte, not -1.
	require.Equal(t, smt.OK, solver.Add(smt.Lt(
		smt.Literal[smt.Bv[uint8]](uint8(255)), smt.Literal[smt.Bv[uint8]](uint8(0)))))
	assert.Equal(t, smt.Unsat, solver.Check())
	//
	solver.Reset()
	require.Equal(t, smt.OK, solver.Add(smt.Ge(
		smt.Literal[smt.Bv[uint8]](uint8(255)), smt.Literal[smt.Bv[uint8]](uint8(128)))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_SignedComparisons(t *testing.T) {
	solver := New()
	//
	// The same bit pattern compares negative at a signed sort.
	require.Equal(t, smt.OK, solver.Add(smt.Lt(
		smt.Literal[smt.Bv[int8]](int8(-1)), smt.Literal[smt.Bv[int8]](int8(0)))))
	require.Equal(t, smt.OK, solver.Add(smt.Le(
		smt.Literal[smt.Bv[int8]](int8(-128)), smt.Literal[smt.Bv[int8]](int8(127)))))
	require.Equal(t, smt.OK, solver.Add(smt.Gt(
		smt.Literal[smt.Bv[int8]](int8(5)), smt.Literal[smt.Bv[int8]](int8(-5)))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_SignedBounds(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[int8]]("x")
	//
	// No signed byte lies strictly below the minimum.
	require.Equal(t, smt.OK, solver.Add(smt.Lt(x, smt.Literal[smt.Bv[int8]](int8(-128)))))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_Arithmetic(t *testing.T) {
	solver := New()
	three := smt.Literal[smt.Bv[uint8]](uint8(3))
	four := smt.Literal[smt.Bv[uint8]](uint8(4))
	seven := smt.Literal[smt.Bv[uint8]](uint8(7))
	two := smt.Literal[smt.Bv[uint8]](uint8(2))
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Add(three, four), seven)))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Sub(seven, four), three)))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Mul(three, four),
		smt.Literal[smt.Bv[uint8]](uint8(12)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Quo(seven, two), three)))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Rem(seven, two),
		smt.Literal[smt.Bv[uint8]](uint8(1)))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_ArithmeticOverflow(t *testing.T) {
	solver := New()
	//
	// Addition wraps modulo the width.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Add(smt.Literal[smt.Bv[uint8]](uint8(255)), smt.Literal[smt.Bv[uint8]](uint8(1))),
		smt.Literal[smt.Bv[uint8]](uint8(0)))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_SignedDivision(t *testing.T) {
	solver := New()
	//
	// Division truncates towards zero; the remainder takes the dividend's
	// sign.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Quo(smt.Literal[smt.Bv[int8]](int8(-7)), smt.Literal[smt.Bv[int8]](int8(2))),
		smt.Literal[smt.Bv[int8]](int8(-3)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.Rem(smt.Literal[smt.Bv[int8]](int8(-7)), smt.Literal[smt.Bv[int8]](int8(2))),
		smt.Literal[smt.Bv[int8]](int8(-1)))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_DivisionByZero(t *testing.T) {
	solver := New()
	zero := smt.Literal[smt.Bv[uint8]](uint8(0))
	seven := smt.Literal[smt.Bv[uint8]](uint8(7))
	//
	// The bit-vector theory convention: x / 0 is all ones, x % 0 is x.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Quo(seven, zero),
		smt.Literal[smt.Bv[uint8]](uint8(255)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Rem(seven, zero), seven)))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_Bitwise(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[uint8]]("x")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.BvXor(x, x), smt.Literal[smt.Bv[uint8]](uint8(0)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.BvOr(x, smt.BvNot(x)), smt.Literal[smt.Bv[uint8]](uint8(255)))))
	require.Equal(t, smt.OK, solver.Add(smt.Eq(
		smt.BvAnd(x, smt.BvNot(x)), smt.Literal[smt.Bv[uint8]](uint8(0)))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_Implication(t *testing.T) {
	truthTable := []struct {
		left, right bool
		expected    smt.CheckResult
	}{
		{false, false, smt.Sat},
		{false, true, smt.Sat},
		{true, false, smt.Unsat},
		{true, true, smt.Sat},
	}
	//
	for _, row := range truthTable {
		solver := New()
		//
		require.Equal(t, smt.OK, solver.Add(smt.Implies(
			smt.Literal[smt.Bool](row.left), smt.Literal[smt.Bool](row.right))))
		assert.Equal(t, row.expected, solver.Check(), "%t => %t", row.left, row.right)
	}
}

func Test_Sat_PushPop(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[uint8]]("x")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(x, smt.Literal[smt.Bv[uint8]](uint8(1)))))
	require.Equal(t, smt.Sat, solver.Check())
	//
	solver.Push()
	require.Equal(t, smt.OK, solver.Add(smt.Eq(x, smt.Literal[smt.Bv[uint8]](uint8(2)))))
	require.Equal(t, smt.Unsat, solver.Check())
	//
	// Popping discards the conflicting assertion, restoring satisfiability.
	solver.Pop()
	assert.Equal(t, smt.Sat, solver.Check())
	//
	assert.Panics(t, func() { solver.Pop() })
}

func Test_Sat_Reset(t *testing.T) {
	solver := New()
	//
	require.Equal(t, smt.OK, solver.Add(smt.Literal[smt.Bool](false)))
	require.Equal(t, smt.Unsat, solver.Check())
	//
	solver.Reset()
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_StoreSelect(t *testing.T) {
	solver := New()
	arr := smt.Any[smt.Array[smt.Bv[uint8], smt.Bv[uint8]]]("arr")
	three := smt.Literal[smt.Bv[uint8]](uint8(3))
	nine := smt.Literal[smt.Bv[uint8]](uint8(9))
	stored := smt.Store(arr, three, nine)
	//
	// Reading back the stored index yields the stored value.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Select(stored, three), nine)))
	require.Equal(t, smt.Sat, solver.Check())
	//
	solver.Push()
	require.Equal(t, smt.OK, solver.Add(smt.Ne(smt.Select(stored, three), nine)))
	require.Equal(t, smt.Unsat, solver.Check())
	solver.Pop()
	//
	// Any other index reads through to the unconstrained base, so both
	// outcomes are possible.
	j := smt.Any[smt.Bv[uint8]]("j")
	require.Equal(t, smt.OK, solver.Add(smt.Ne(j, three)))
	//
	solver.Push()
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Select(stored, j), nine)))
	require.Equal(t, smt.Sat, solver.Check())
	solver.Pop()
	//
	require.Equal(t, smt.OK, solver.Add(smt.Ne(smt.Select(stored, j), nine)))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_SelectCongruence(t *testing.T) {
	solver := New()
	arr := smt.Any[smt.Array[smt.Bv[uint8], smt.Bv[uint8]]]("arr")
	i := smt.Any[smt.Bv[uint8]]("i")
	j := smt.Any[smt.Bv[uint8]]("j")
	//
	// Equal indices into the same unconstrained array read equal values.
	require.Equal(t, smt.OK, solver.Add(smt.Eq(i, j)))
	require.Equal(t, smt.OK, solver.Add(smt.Ne(smt.Select(arr, i), smt.Select(arr, j))))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_ConstArray(t *testing.T) {
	solver := New()
	five := smt.Literal[smt.Bv[uint8]](uint8(5))
	ca := smt.ConstArray[smt.Bv[uint8]](five)
	j := smt.Any[smt.Bv[uint8]]("j")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Ne(smt.Select(ca, j), five)))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_FuncCongruence(t *testing.T) {
	solver := New()
	f := smt.NewDecl[smt.Func1[smt.Bv[uint8], smt.Bv[uint8]]]("f")
	a := smt.Any[smt.Bv[uint8]]("a")
	b := smt.Any[smt.Bv[uint8]]("b")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(a, b)))
	require.Equal(t, smt.OK, solver.Add(smt.Ne(smt.Apply1(f, a), smt.Apply1(f, b))))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_FuncUninterpreted(t *testing.T) {
	solver := New()
	f := smt.NewDecl[smt.Func1[smt.Bv[uint8], smt.Bv[uint8]]]("f")
	a := smt.Any[smt.Bv[uint8]]("a")
	b := smt.Any[smt.Bv[uint8]]("b")
	//
	// Distinct arguments leave the results unconstrained.
	require.Equal(t, smt.OK, solver.Add(smt.Ne(a, b)))
	require.Equal(t, smt.OK, solver.Add(smt.Ne(smt.Apply1(f, a), smt.Apply1(f, b))))
	require.Equal(t, smt.Sat, solver.Check())
	//
	solver.Reset()
	require.Equal(t, smt.OK, solver.Add(smt.Eq(smt.Apply1(f, a), smt.Apply1(f, b))))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_Func2(t *testing.T) {
	solver := New()
	g := smt.NewDecl[smt.Func2[smt.Bv[uint8], smt.Bv[uint8], smt.Bool]]("g")
	x := smt.Any[smt.Bv[uint8]]("x")
	y := smt.Any[smt.Bv[uint8]]("y")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(x, y)))
	require.Equal(t, smt.OK, solver.Add(smt.Apply2(g, x, y)))
	require.Equal(t, smt.OK, solver.Add(smt.Not(smt.Apply2(g, y, x))))
	assert.Equal(t, smt.Unsat, solver.Check())
}

func Test_Sat_UnsafeAdd(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[uint8]]("x")
	//
	// Only Boolean-sorted terms are assertable.
	assert.Equal(t, smt.OpcodeError, solver.UnsafeAdd(x.Unsafe()))
	//
	erased := smt.UnsafeBinary(smt.EQL, x.Unsafe(), smt.UnsafeLiteral(smt.NewBvSort(false, 8), uint8(1)))
	require.Equal(t, smt.OK, solver.UnsafeAdd(erased))
	assert.Equal(t, smt.Sat, solver.Check())
}

func Test_Sat_Stats(t *testing.T) {
	solver := New()
	x := smt.Any[smt.Bv[uint8]]("x")
	y := smt.Any[smt.Bv[uint8]]("y")
	//
	require.Equal(t, smt.OK, solver.Add(smt.Eq(x, y)))
	require.Equal(t, smt.OK, solver.Add(smt.Lt(x, y)))
	require.Equal(t, smt.OK, solver.Add(smt.Distinct(x, y)))
	//
	stats := solver.Stats()
	assert.Equal(t, uint(2), stats.Constants)
	assert.Equal(t, uint(1), stats.Equalities)
	assert.Equal(t, uint(1), stats.Inequalities)
	assert.Equal(t, uint(1), stats.Disequalities)
	assert.Equal(t, uint(1), stats.NaryOps)
	assert.Equal(t, uint(2), stats.BinaryOps)
}

func Test_Sat_Logic(t *testing.T) {
	assert.Equal(t, smt.QF_AUFBV, New().Logic())
	assert.Equal(t, smt.QF_BV, NewWithLogic(smt.QF_BV).Logic())
}
