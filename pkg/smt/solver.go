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

// Error is the contingency code returned by every encode operation.  Encode
// contingencies are recoverable and reported by value — never by panic — so
// callers must check every encode result.
type Error uint

const (
	// OK signals a successful encoding.  OK is zero.
	OK Error = iota
	// OpcodeError signals an opcode which this back end does not support for
	// this node.
	OpcodeError
	// UnsupportError signals a literal type or SMT-LIB feature which this
	// back end declines to support.  This is the default for every
	// scalar-literal hook unless a back end opts in.
	UnsupportError
)

// String returns a short description of this contingency code.
func (p Error) String() string {
	switch p {
	case OK:
		return "ok"
	case OpcodeError:
		return "unexpected opcode"
	case UnsupportError:
		return "unsupported feature"
	}
	//
	return "?"
}

// CheckResult is the tri-valued outcome of a satisfiability check.
type CheckResult uint8

const (
	// Unsat means the asserted constraints are unsatisfiable.
	Unsat CheckResult = iota
	// Sat means the asserted constraints are satisfiable.
	Sat
	// Unknown means the back end could not decide.
	Unknown
)

// String returns the conventional name of this outcome.
func (p CheckResult) String() string {
	switch p {
	case Unsat:
		return "unsat"
	case Sat:
		return "sat"
	case Unknown:
		return "unknown"
	}
	//
	return "?"
}

// Stats is an optional side channel of encoding counters.  The core never
// increments these; a back end wanting this telemetry is responsible for
// updating them as it encodes.
type Stats struct {
	Constants     uint
	FuncApps      uint
	ArraySelects  uint
	ArrayStores   uint
	UnaryOps      uint
	BinaryOps     uint
	NaryOps       uint
	Equalities    uint
	Disequalities uint
	Inequalities  uint
	Implications  uint
	Conjunctions  uint
	Disjunctions  uint
}

// Solver is the abstract contract a concrete solving back end implements.
// There is one encode operation per node kind; each receives the node's own
// type-erased operand terms and is responsible for recursively encoding
// them.  Since a shared node is reachable from several parents, a naive back
// end re-translates it once per occurrence; node identity (UnsafeTerm
// comparability) is exposed precisely so back ends can memoise instead.
//
// Every encode operation returns a contingency code which callers must
// check.  The scalar-literal hooks default to UnsupportError when a back end
// embeds SolverBase; a back end opts in per scalar type by overriding the
// corresponding hook.
type Solver interface {
	EncodeLiteralBool(sort *Sort, value bool) Error
	EncodeLiteralInt8(sort *Sort, value int8) Error
	EncodeLiteralInt16(sort *Sort, value int16) Error
	EncodeLiteralInt32(sort *Sort, value int32) Error
	EncodeLiteralInt64(sort *Sort, value int64) Error
	EncodeLiteralUint8(sort *Sort, value uint8) Error
	EncodeLiteralUint16(sort *Sort, value uint16) Error
	EncodeLiteralUint32(sort *Sort, value uint32) Error
	EncodeLiteralUint64(sort *Sort, value uint64) Error
	// EncodeConstant encodes a constant declared at a given sort.
	EncodeConstant(decl UnsafeDecl) Error
	// EncodeFuncApp encodes the application of a declared function to
	// argument terms.
	EncodeFuncApp(decl UnsafeDecl, args []UnsafeTerm) Error
	// EncodeConstArray encodes the array of the given sort which everywhere
	// holds the initialiser term.
	EncodeConstArray(sort *Sort, init UnsafeTerm) Error
	// EncodeArraySelect encodes reading an array term at an index term.
	EncodeArraySelect(array UnsafeTerm, index UnsafeTerm) Error
	// EncodeArrayStore encodes updating an array term at an index term with
	// a value term.
	EncodeArrayStore(array UnsafeTerm, index UnsafeTerm, value UnsafeTerm) Error
	// EncodeUnary encodes a unary operator applied to an operand term.
	EncodeUnary(op Opcode, sort *Sort, arg UnsafeTerm) Error
	// EncodeBinary encodes a binary operator applied to two operand terms.
	// For bit-vector order relations, the signed theory operator is selected
	// exactly when the operand sort is signed.
	EncodeBinary(op Opcode, sort *Sort, left UnsafeTerm, right UnsafeTerm) Error
	// EncodeNary encodes an n-ary operator applied to one or more operand
	// terms.
	EncodeNary(op Opcode, sort *Sort, args []UnsafeTerm) Error
	// Reset discards all asserted constraints and all checkpoints.
	Reset()
	// Push establishes a checkpoint over the asserted constraints.
	Push()
	// Pop discards every constraint asserted since the matching Push.  Every
	// Push must be matched by exactly one later Pop; that discipline is the
	// caller's responsibility.
	Pop()
	// Add asserts a Boolean-sorted term as a constraint.
	Add(condition Term[Bool]) Error
	// UnsafeAdd asserts a term as a constraint.  The term's sort must be
	// Boolean; the consequences of violating that precondition are
	// undefined.
	UnsafeAdd(condition UnsafeTerm) Error
	// Check decides satisfiability of the asserted constraints, blocking the
	// calling goroutine until the back end produces an answer.
	Check() CheckResult
	// Stats returns the back end's encoding counters.
	Stats() *Stats
}

// SolverBase provides the default behaviour a concrete back end builds on:
// every scalar-literal hook declines with UnsupportError until overridden,
// and the statistics counters live here.  Back ends embed it and implement
// the remaining operations.
type SolverBase struct {
	stats Stats
}

// Stats returns the encoding counters.
func (p *SolverBase) Stats() *Stats { return &p.stats }

// EncodeLiteralBool declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralBool(sort *Sort, value bool) Error { return UnsupportError }

// EncodeLiteralInt8 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralInt8(sort *Sort, value int8) Error { return UnsupportError }

// EncodeLiteralInt16 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralInt16(sort *Sort, value int16) Error { return UnsupportError }

// EncodeLiteralInt32 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralInt32(sort *Sort, value int32) Error { return UnsupportError }

// EncodeLiteralInt64 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralInt64(sort *Sort, value int64) Error { return UnsupportError }

// EncodeLiteralUint8 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralUint8(sort *Sort, value uint8) Error { return UnsupportError }

// EncodeLiteralUint16 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralUint16(sort *Sort, value uint16) Error { return UnsupportError }

// EncodeLiteralUint32 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralUint32(sort *Sort, value uint32) Error { return UnsupportError }

// EncodeLiteralUint64 declines; back ends opt in per scalar type.
func (p *SolverBase) EncodeLiteralUint64(sort *Sort, value uint64) Error { return UnsupportError }
