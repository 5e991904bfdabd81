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

// Type is the closed set of compile-time tags which index the typed term API.
// A tag carries no data; its only purpose is to map, via SortOf, onto the
// interned Sort describing it.  Since the defining method is unexported, the
// set of tags cannot be extended outside this package, which is what makes
// typed construction sort-safe: operators are only defined between terms
// whose tags agree.
type Type interface {
	smtSort() *Sort
}

// Arith restricts a type tag to those sorts supporting arithmetic operators
// and order relations (Int, Real and the bit-vectors).
type Arith interface {
	Type
	arith()
}

// Bits restricts a type tag to the bit-vector sorts, which alone support the
// bitwise operators.
type Bits interface {
	Arith
	bits()
}

// Bool is the type tag of the Boolean sort.
type Bool struct{}

// Int is the type tag of the mathematical integer sort.
type Int struct{}

// Real is the type tag of the mathematical real sort.
type Real struct{}

// BvScalar is the set of built-in integer types which induce a bit-vector
// sort, with width and signedness taken from the Go type itself.
type BvScalar interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Bv is the type tag of the fixed-size bit-vector sort induced by the
// built-in integer type T.  For example, Bv[int16] tags the signed 16-bit
// bit-vector sort.
type Bv[T BvScalar] struct{}

// Array is the type tag of the McCarthy array sort mapping domain D to
// range R.
type Array[D Type, R Type] struct{}

// Func1 is the type tag of unary uninterpreted functions from A to R.
type Func1[A Type, R Type] struct{}

// Func2 is the type tag of binary uninterpreted functions from (A, B) to R.
type Func2[A Type, B Type, R Type] struct{}

// Func3 is the type tag of ternary uninterpreted functions from (A, B, C)
// to R.
type Func3[A Type, B Type, C Type, R Type] struct{}

// SortOf returns the interned sort described by the type tag T.
func SortOf[T Type]() *Sort {
	var tag T
	return tag.smtSort()
}

func (p Bool) smtSort() *Sort { return BoolSort() }
func (p Int) smtSort() *Sort  { return IntSort() }
func (p Real) smtSort() *Sort { return RealSort() }

func (p Bv[T]) smtSort() *Sort {
	var zero T
	//
	switch any(zero).(type) {
	case int8:
		return NewBvSort(true, 8)
	case int16:
		return NewBvSort(true, 16)
	case int32:
		return NewBvSort(true, 32)
	case int64:
		return NewBvSort(true, 64)
	case uint8:
		return NewBvSort(false, 8)
	case uint16:
		return NewBvSort(false, 16)
	case uint32:
		return NewBvSort(false, 32)
	case uint64:
		return NewBvSort(false, 64)
	}
	// Unreachable, since BvScalar is closed.
	panic("unknown bit-vector scalar")
}

func (p Array[D, R]) smtSort() *Sort {
	var (
		domain D
		rng    R
	)
	//
	return NewArraySort(domain.smtSort(), rng.smtSort())
}

func (p Func1[A, R]) smtSort() *Sort {
	var (
		a A
		r R
	)
	//
	return NewFuncSort(a.smtSort(), r.smtSort())
}

func (p Func2[A, B, R]) smtSort() *Sort {
	var (
		a A
		b B
		r R
	)
	//
	return NewFuncSort(a.smtSort(), b.smtSort(), r.smtSort())
}

func (p Func3[A, B, C, R]) smtSort() *Sort {
	var (
		a A
		b B
		c C
		r R
	)
	//
	return NewFuncSort(a.smtSort(), b.smtSort(), c.smtSort(), r.smtSort())
}

func (p Int) arith()   {}
func (p Real) arith()  {}
func (p Bv[T]) arith() {}
func (p Bv[T]) bits()  {}
