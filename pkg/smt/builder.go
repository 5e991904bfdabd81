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

import "fmt"

// Scalar is the set of built-in scalar types which can be wrapped as literal
// nodes.  The machine-sized int and uint are accepted for convenience and
// normalised to their 64-bit counterparts.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | int | uint8 | uint16 | uint32 | uint64 | uint
}

// Literal wraps a built-in scalar as a literal node of the sort given by the
// type tag T.  This is also the promotion path by which scalars participate
// in the typed operators: e.g. Add(x, Literal[Int](1)).
func Literal[T Type, V Scalar](value V) Term[T] {
	return Term[T]{newLiteral(SortOf[T](), value)}
}

// UnsafeLiteral wraps a built-in scalar as a literal node of the given sort.
// No check is made that the scalar is representable at that sort.
func UnsafeLiteral[V Scalar](sort *Sort, value V) UnsafeTerm {
	return UnsafeTerm{newLiteral(sort, value)}
}

// Constant wraps a typed declaration as a constant node.
func Constant[T Type](decl Decl[T]) Term[T] {
	return Term[T]{&constantExpr{decl.UnsafeDecl}}
}

// UnsafeConstant wraps a type-erased declaration as a constant node.
func UnsafeConstant(decl UnsafeDecl) UnsafeTerm {
	return UnsafeTerm{&constantExpr{decl}}
}

// Any returns a fresh constant node declaring the given symbol at the sort of
// the type tag T.  Symbol names must be globally unique; see UnsafeDecl.
func Any[T Type](symbol string) Term[T] {
	return Constant(NewDecl[T](symbol))
}

// Apply1 applies a declared unary function to its argument.
func Apply1[A Type, R Type](decl Decl[Func1[A, R]], arg Term[A]) Term[R] {
	return Term[R]{UnsafeApply(decl.UnsafeDecl, arg.Unsafe()).node}
}

// Apply2 applies a declared binary function to its arguments.
func Apply2[A Type, B Type, R Type](decl Decl[Func2[A, B, R]], arg1 Term[A], arg2 Term[B]) Term[R] {
	return Term[R]{UnsafeApply(decl.UnsafeDecl, arg1.Unsafe(), arg2.Unsafe()).node}
}

// Apply3 applies a declared ternary function to its arguments.
func Apply3[A Type, B Type, C Type, R Type](decl Decl[Func3[A, B, C, R]], arg1 Term[A], arg2 Term[B],
	arg3 Term[C]) Term[R] {
	return Term[R]{UnsafeApply(decl.UnsafeDecl, arg1.Unsafe(), arg2.Unsafe(), arg3.Unsafe()).node}
}

// UnsafeApply applies a declared function to the given arguments.  The
// declaration must be of function sort and the number of arguments must match
// its parameter count; the resulting node's sort is the declaration's result
// sort (the last component).
func UnsafeApply(decl UnsafeDecl, args ...UnsafeTerm) UnsafeTerm {
	sort := decl.Sort()
	//
	if !sort.IsFunc() {
		panic(fmt.Sprintf("applying non-function declaration %s", decl))
	} else if uint(len(args))+1 != sort.SortsLen() {
		panic(fmt.Sprintf("applying %s to %d arguments", decl, len(args)))
	}
	//
	requireNonNull(args...)
	//
	result := sort.Sorts(sort.SortsLen() - 1)
	//
	return UnsafeTerm{&funcAppExpr{decl: decl, sort: result, args: copyTerms(args)}}
}

// Select reads the given array at the given index.
func Select[D Type, R Type](array Term[Array[D, R]], index Term[D]) Term[R] {
	return Term[R]{UnsafeSelect(array.Unsafe(), index.Unsafe()).node}
}

// UnsafeSelect reads the given array at the given index; the resulting
// node's sort is the range sort of the array operand.
func UnsafeSelect(array UnsafeTerm, index UnsafeTerm) UnsafeTerm {
	requireNonNull(array, index)
	//
	sort := array.Sort()
	//
	if !sort.IsArray() {
		panic(fmt.Sprintf("selecting from non-array term of sort %s", sort))
	}
	//
	return UnsafeTerm{&arraySelectExpr{sort: sort.Sorts(1), array: array, index: index}}
}

// Store updates the given array at the given index with the given value,
// yielding a new array term.
func Store[D Type, R Type](array Term[Array[D, R]], index Term[D], value Term[R]) Term[Array[D, R]] {
	return Term[Array[D, R]]{UnsafeStore(array.Unsafe(), index.Unsafe(), value.Unsafe()).node}
}

// UnsafeStore updates the given array at the given index with the given
// value; the resulting node keeps the array operand's sort.
func UnsafeStore(array UnsafeTerm, index UnsafeTerm, value UnsafeTerm) UnsafeTerm {
	requireNonNull(array, index, value)
	//
	sort := array.Sort()
	//
	if !sort.IsArray() {
		panic(fmt.Sprintf("storing into non-array term of sort %s", sort))
	}
	//
	return UnsafeTerm{&arrayStoreExpr{sort: sort, array: array, index: index, value: value}}
}

// ConstArray returns the array which maps every index of domain D to the
// given initialiser.
func ConstArray[D Type, R Type](init Term[R]) Term[Array[D, R]] {
	return Term[Array[D, R]]{UnsafeConstArray(SortOf[Array[D, R]](), init.Unsafe()).node}
}

// UnsafeConstArray returns the array of the given sort which maps every
// index to the given initialiser.
func UnsafeConstArray(sort *Sort, init UnsafeTerm) UnsafeTerm {
	requireNonNull(init)
	//
	if !sort.IsArray() {
		panic(fmt.Sprintf("constant array of non-array sort %s", sort))
	}
	//
	return UnsafeTerm{&constArrayExpr{sort: sort, init: init}}
}

// Distinct asserts pairwise distinctness of the given terms, as an n-ary NEQ
// node.  At least one term is required (two, to be meaningful).
func Distinct[T Type](terms ...Term[T]) Term[Bool] {
	args := make([]UnsafeTerm, len(terms))
	//
	for i, t := range terms {
		args[i] = t.Unsafe()
	}
	//
	return Term[Bool]{UnsafeNary(NEQ, args).node}
}

// UnsafeDistinct asserts pairwise distinctness of the given terms, as an
// n-ary NEQ node.  At least one term is required.
func UnsafeDistinct(terms ...UnsafeTerm) UnsafeTerm {
	return UnsafeNary(NEQ, terms)
}

// Implies is sugar for the binary IMP node.
func Implies(left Term[Bool], right Term[Bool]) Term[Bool] {
	return Term[Bool]{UnsafeImplies(left.Unsafe(), right.Unsafe()).node}
}

// UnsafeImplies is sugar for the binary IMP node.
func UnsafeImplies(left UnsafeTerm, right UnsafeTerm) UnsafeTerm {
	return UnsafeBinary(IMP, left, right)
}

// ============================================================================
// Helpers
// ============================================================================

func newLiteral(sort *Sort, value any) expr {
	if sort == nil {
		panic("literal with nil sort")
	}
	// Normalise machine-sized scalars.
	switch v := value.(type) {
	case int:
		value = int64(v)
	case uint:
		value = uint64(v)
	case bool:
		if !sort.IsBool() {
			panic(fmt.Sprintf("boolean literal at sort %s", sort))
		}
	}
	//
	if _, ok := value.(bool); !ok && sort.IsBool() {
		panic("non-boolean literal at sort Bool")
	}
	//
	return &literalExpr{sort: sort, value: value}
}

func requireNonNull(terms ...UnsafeTerm) {
	for _, t := range terms {
		if t.IsNull() {
			panic("null term operand")
		}
	}
}

func copyTerms(terms []UnsafeTerm) []UnsafeTerm {
	return append([]UnsafeTerm(nil), terms...)
}
