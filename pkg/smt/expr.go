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

// ExprKind discriminates the node kinds of the expression graph.
type ExprKind uint8

const (
	// LiteralExprKind is a node holding a built-in scalar value.
	LiteralExprKind ExprKind = iota
	// UnaryExprKind is a node applying an opcode to one operand.
	UnaryExprKind
	// BinaryExprKind is a node applying an opcode to two operands.
	BinaryExprKind
	// NaryExprKind is a node applying an opcode to one or more operands.
	NaryExprKind
	// ConstArrayExprKind is a node denoting the array which is everywhere
	// equal to its initialiser.
	ConstArrayExprKind
	// ArraySelectExprKind is a node reading an array at an index.
	ArraySelectExprKind
	// ArrayStoreExprKind is a node updating an array at an index.
	ArrayStoreExprKind
	// ConstantExprKind is a node naming a declared constant.
	ConstantExprKind
	// FuncAppExprKind is a node applying a declared function to arguments.
	FuncAppExprKind
)

// String returns a short name for this node kind.
func (p ExprKind) String() string {
	switch p {
	case LiteralExprKind:
		return "literal"
	case UnaryExprKind:
		return "unary"
	case BinaryExprKind:
		return "binary"
	case NaryExprKind:
		return "nary"
	case ConstArrayExprKind:
		return "const-array"
	case ArraySelectExprKind:
		return "select"
	case ArrayStoreExprKind:
		return "store"
	case ConstantExprKind:
		return "constant"
	case FuncAppExprKind:
		return "apply"
	}
	//
	return "?"
}

// expr is a node of the expression graph.  Nodes are immutable once
// constructed, carry their own result sort, and own handles onto their
// operands; since construction is bottom-up and nothing is ever mutated, the
// graph is acyclic by construction (a DAG, since sub-expressions may be
// shared).  The encode hook is the node's half of the double dispatch into a
// Solver: it forwards the node's own type-erased operands, leaving the back
// end responsible for recursively encoding them.
type expr interface {
	exprKind() ExprKind
	exprSort() *Sort
	encode(solver Solver) Error
}

// ============================================================================
// Literal
// ============================================================================

type literalExpr struct {
	sort *Sort
	// One of the built-in scalar types; int and uint are normalised to their
	// 64-bit counterparts at construction.
	value any
}

func (p *literalExpr) exprKind() ExprKind { return LiteralExprKind }
func (p *literalExpr) exprSort() *Sort    { return p.sort }

func (p *literalExpr) encode(solver Solver) Error {
	switch value := p.value.(type) {
	case bool:
		return solver.EncodeLiteralBool(p.sort, value)
	case int8:
		return solver.EncodeLiteralInt8(p.sort, value)
	case int16:
		return solver.EncodeLiteralInt16(p.sort, value)
	case int32:
		return solver.EncodeLiteralInt32(p.sort, value)
	case int64:
		return solver.EncodeLiteralInt64(p.sort, value)
	case uint8:
		return solver.EncodeLiteralUint8(p.sort, value)
	case uint16:
		return solver.EncodeLiteralUint16(p.sort, value)
	case uint32:
		return solver.EncodeLiteralUint32(p.sort, value)
	case uint64:
		return solver.EncodeLiteralUint64(p.sort, value)
	}
	// Unreachable via the public builders.
	return UnsupportError
}

// ============================================================================
// Constant
// ============================================================================

type constantExpr struct {
	decl UnsafeDecl
}

func (p *constantExpr) exprKind() ExprKind { return ConstantExprKind }
func (p *constantExpr) exprSort() *Sort    { return p.decl.Sort() }

func (p *constantExpr) encode(solver Solver) Error {
	return solver.EncodeConstant(p.decl)
}

// ============================================================================
// Unary / Binary / Nary
// ============================================================================

type unaryExpr struct {
	op   Opcode
	sort *Sort
	arg  UnsafeTerm
}

func (p *unaryExpr) exprKind() ExprKind { return UnaryExprKind }
func (p *unaryExpr) exprSort() *Sort    { return p.sort }

func (p *unaryExpr) encode(solver Solver) Error {
	return solver.EncodeUnary(p.op, p.sort, p.arg)
}

type binaryExpr struct {
	op    Opcode
	sort  *Sort
	left  UnsafeTerm
	right UnsafeTerm
}

func (p *binaryExpr) exprKind() ExprKind { return BinaryExprKind }
func (p *binaryExpr) exprSort() *Sort    { return p.sort }

func (p *binaryExpr) encode(solver Solver) Error {
	return solver.EncodeBinary(p.op, p.sort, p.left, p.right)
}

type naryExpr struct {
	op   Opcode
	sort *Sort
	args []UnsafeTerm
}

func (p *naryExpr) exprKind() ExprKind { return NaryExprKind }
func (p *naryExpr) exprSort() *Sort    { return p.sort }

func (p *naryExpr) encode(solver Solver) Error {
	return solver.EncodeNary(p.op, p.sort, p.args)
}

// ============================================================================
// Arrays
// ============================================================================

type constArrayExpr struct {
	sort *Sort
	init UnsafeTerm
}

func (p *constArrayExpr) exprKind() ExprKind { return ConstArrayExprKind }
func (p *constArrayExpr) exprSort() *Sort    { return p.sort }

func (p *constArrayExpr) encode(solver Solver) Error {
	return solver.EncodeConstArray(p.sort, p.init)
}

type arraySelectExpr struct {
	sort  *Sort
	array UnsafeTerm
	index UnsafeTerm
}

func (p *arraySelectExpr) exprKind() ExprKind { return ArraySelectExprKind }
func (p *arraySelectExpr) exprSort() *Sort    { return p.sort }

func (p *arraySelectExpr) encode(solver Solver) Error {
	return solver.EncodeArraySelect(p.array, p.index)
}

type arrayStoreExpr struct {
	sort  *Sort
	array UnsafeTerm
	index UnsafeTerm
	value UnsafeTerm
}

func (p *arrayStoreExpr) exprKind() ExprKind { return ArrayStoreExprKind }
func (p *arrayStoreExpr) exprSort() *Sort    { return p.sort }

func (p *arrayStoreExpr) encode(solver Solver) Error {
	return solver.EncodeArrayStore(p.array, p.index, p.value)
}

// ============================================================================
// Function application
// ============================================================================

type funcAppExpr struct {
	decl UnsafeDecl
	sort *Sort
	args []UnsafeTerm
}

func (p *funcAppExpr) exprKind() ExprKind { return FuncAppExprKind }
func (p *funcAppExpr) exprSort() *Sort    { return p.sort }

func (p *funcAppExpr) encode(solver Solver) Error {
	return solver.EncodeFuncApp(p.decl, p.args)
}
