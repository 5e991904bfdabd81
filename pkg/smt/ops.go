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

// This file provides the operator layer in two parallel flavours.  The
// type-erased builders (UnsafeUnary, UnsafeBinary, UnsafeNary) accept any
// opcode and consult the opcode table for the result sort; beyond non-null
// operands they perform no sort validation, so an ill-sorted combination
// surfaces only when a back end attempts to encode it.  The typed operators
// are thin wrappers whose constraints reject sort mismatches at compile time.

// UnsafeUnary builds a unary node applying the given opcode to the given
// operand.  Relational opcodes yield a Boolean-sorted node; all others keep
// the operand's sort.
func UnsafeUnary(op Opcode, arg UnsafeTerm) UnsafeTerm {
	requireNonNull(arg)
	//
	return UnsafeTerm{&unaryExpr{op: op, sort: resultSort(op, arg), arg: arg}}
}

// UnsafeBinary builds a binary node applying the given opcode to the given
// operands.  Relational opcodes yield a Boolean-sorted node; all others keep
// the left operand's sort.
func UnsafeBinary(op Opcode, left UnsafeTerm, right UnsafeTerm) UnsafeTerm {
	requireNonNull(left, right)
	//
	return UnsafeTerm{&binaryExpr{op: op, sort: resultSort(op, left), left: left, right: right}}
}

// UnsafeNary builds an n-ary node applying the given opcode to the given
// operand sequence, which must not be empty.
func UnsafeNary(op Opcode, args []UnsafeTerm) UnsafeTerm {
	if len(args) == 0 {
		panic("n-ary expression without operands")
	}
	//
	requireNonNull(args...)
	//
	return UnsafeTerm{&naryExpr{op: op, sort: resultSort(op, args[0]), args: copyTerms(args)}}
}

func resultSort(op Opcode, operand UnsafeTerm) *Sort {
	if op.IsRelational() {
		return BoolSort()
	}
	//
	return operand.Sort()
}

// ============================================================================
// Boolean operators
// ============================================================================

// Not is logical negation.
func Not(arg Term[Bool]) Term[Bool] {
	return Term[Bool]{UnsafeUnary(LNOT, arg.Unsafe()).node}
}

// And is binary logical conjunction.
func And(left Term[Bool], right Term[Bool]) Term[Bool] {
	return newBinary[Bool](LAND, left.Unsafe(), right.Unsafe())
}

// Or is binary logical disjunction.
func Or(left Term[Bool], right Term[Bool]) Term[Bool] {
	return newBinary[Bool](LOR, left.Unsafe(), right.Unsafe())
}

// Ands is n-ary logical conjunction of one or more terms.
func Ands(terms ...Term[Bool]) Term[Bool] {
	return newNary[Bool](LAND, terms)
}

// Ors is n-ary logical disjunction of one or more terms.
func Ors(terms ...Term[Bool]) Term[Bool] {
	return newNary[Bool](LOR, terms)
}

// ============================================================================
// Equality
// ============================================================================

// Eq is equality between terms of any matching sort.
func Eq[T Type](left Term[T], right Term[T]) Term[Bool] {
	return newBinary[Bool](EQL, left.Unsafe(), right.Unsafe())
}

// Ne is disequality between terms of any matching sort.
func Ne[T Type](left Term[T], right Term[T]) Term[Bool] {
	return newBinary[Bool](NEQ, left.Unsafe(), right.Unsafe())
}

// ============================================================================
// Arithmetic operators and order relations
// ============================================================================

// Neg is arithmetic negation.
func Neg[T Arith](arg Term[T]) Term[T] {
	return Term[T]{UnsafeUnary(SUB, arg.Unsafe()).node}
}

// Add is arithmetic addition.
func Add[T Arith](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](ADD, left.Unsafe(), right.Unsafe())
}

// Sub is arithmetic subtraction.
func Sub[T Arith](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](SUB, left.Unsafe(), right.Unsafe())
}

// Mul is arithmetic multiplication.
func Mul[T Arith](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](MUL, left.Unsafe(), right.Unsafe())
}

// Quo is arithmetic division.
func Quo[T Arith](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](QUO, left.Unsafe(), right.Unsafe())
}

// Rem is arithmetic remainder.
func Rem[T Arith](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](REM, left.Unsafe(), right.Unsafe())
}

// Lt is the strictly-less-than relation.  Over bit-vectors, signedness of the
// operand sort selects the signed or unsigned rendering.
func Lt[T Arith](left Term[T], right Term[T]) Term[Bool] {
	return newBinary[Bool](LSS, left.Unsafe(), right.Unsafe())
}

// Gt is the strictly-greater-than relation.
func Gt[T Arith](left Term[T], right Term[T]) Term[Bool] {
	return newBinary[Bool](GTR, left.Unsafe(), right.Unsafe())
}

// Le is the less-than-or-equal relation.
func Le[T Arith](left Term[T], right Term[T]) Term[Bool] {
	return newBinary[Bool](LEQ, left.Unsafe(), right.Unsafe())
}

// Ge is the greater-than-or-equal relation.
func Ge[T Arith](left Term[T], right Term[T]) Term[Bool] {
	return newBinary[Bool](GEQ, left.Unsafe(), right.Unsafe())
}

// ============================================================================
// Bitwise operators
// ============================================================================

// BvNot is bitwise negation.
func BvNot[T Bits](arg Term[T]) Term[T] {
	return Term[T]{UnsafeUnary(NOT, arg.Unsafe()).node}
}

// BvAnd is bitwise conjunction.
func BvAnd[T Bits](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](AND, left.Unsafe(), right.Unsafe())
}

// BvOr is bitwise disjunction.
func BvOr[T Bits](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](OR, left.Unsafe(), right.Unsafe())
}

// BvXor is bitwise exclusive disjunction.
func BvXor[T Bits](left Term[T], right Term[T]) Term[T] {
	return newBinary[T](XOR, left.Unsafe(), right.Unsafe())
}

// ============================================================================
// Helpers
// ============================================================================

func newBinary[R Type](op Opcode, left UnsafeTerm, right UnsafeTerm) Term[R] {
	return Term[R]{UnsafeBinary(op, left, right).node}
}

func newNary[R Type, T Type](op Opcode, terms []Term[T]) Term[R] {
	args := make([]UnsafeTerm, len(terms))
	//
	for i, t := range terms {
		args[i] = t.Unsafe()
	}
	//
	return Term[R]{UnsafeNary(op, args).node}
}
