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

// Opcode identifies the operator of a unary, binary or n-ary expression.  The
// theory rendering of an opcode is left entirely to the back end; in
// particular, the order relations (LSS, GTR, LEQ, GEQ) over bit-vector
// operands must be rendered with the signed theory operator exactly when the
// operand sort is signed, whilst NEQ over bit-vectors always renders as a
// distinctness assertion.
type Opcode uint8

const (
	// LNOT is logical negation.
	LNOT Opcode = iota
	// NOT is bitwise negation.
	NOT
	// SUB is arithmetic negation (unary) or subtraction (binary).
	SUB
	// AND is bitwise conjunction.
	AND
	// OR is bitwise disjunction.
	OR
	// XOR is bitwise exclusive disjunction.
	XOR
	// LAND is logical conjunction.
	LAND
	// LOR is logical disjunction.
	LOR
	// IMP is logical implication.
	IMP
	// EQL is equality.
	EQL
	// ADD is arithmetic addition.
	ADD
	// MUL is arithmetic multiplication.
	MUL
	// QUO is arithmetic division.
	QUO
	// REM is arithmetic remainder.
	REM
	// LSS is the strictly-less-than order relation.
	LSS
	// GTR is the strictly-greater-than order relation.
	GTR
	// NEQ is disequality (pairwise distinctness in the n-ary case).
	NEQ
	// LEQ is the less-than-or-equal order relation.
	LEQ
	// GEQ is the greater-than-or-equal order relation.
	GEQ
)

// Opcode metadata consulted by the generic builders.  An opcode is relational
// when the expression it heads is Boolean-sorted regardless of its operand
// sort.  This table is the single point describing opcode behaviour, rather
// than one builder per operator symbol.
var opcodes = [...]struct {
	name       string
	relational bool
}{
	LNOT: {"!", false},
	NOT:  {"~", false},
	SUB:  {"-", false},
	AND:  {"&", false},
	OR:   {"|", false},
	XOR:  {"^", false},
	LAND: {"&&", false},
	LOR:  {"||", false},
	IMP:  {"=>", false},
	EQL:  {"==", true},
	ADD:  {"+", false},
	MUL:  {"*", false},
	QUO:  {"/", false},
	REM:  {"%", false},
	LSS:  {"<", true},
	GTR:  {">", true},
	NEQ:  {"!=", true},
	LEQ:  {"<=", true},
	GEQ:  {">=", true},
}

// String returns the conventional operator symbol for this opcode.
func (p Opcode) String() string {
	return opcodes[p].name
}

// IsRelational determines whether expressions headed by this opcode are
// Boolean-sorted regardless of their operand sort.
func (p Opcode) IsRelational() bool {
	return opcodes[p].relational
}
