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

// Package sat provides a bit-blasting back end over the gini SAT solver.  It
// supports the quantifier-free Boolean and fixed-width bit-vector fragment,
// plus arrays over and uninterpreted functions between such sorts; terms of
// the mathematical Int and Real sorts are declined with UnsupportError.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-smt/pkg/smt"
)

// value is the rendering of one term: a word of circuit literals for scalar
// sorts, or a symbolic array for array sorts.  Exactly one field is set.
type value struct {
	bits word
	arr  *array
}

// Solver translates terms into an and-inverter circuit and decides
// satisfiability by handing the circuit's CNF to gini.  Translation is
// memoised on node identity, so shared sub-expressions cost one translation
// regardless of how many parents reach them.
//
// Not thread safe.
type Solver struct {
	smt.SolverBase
	// Logic hint given at construction.  Recorded for diagnostics only; terms
	// are never validated against it.
	logic smt.Logic
	// Shared and-inverter circuit.  The circuit only ever grows; Pop drops
	// assertion literals, not the nodes behind them.
	circuit *logic.C
	// Memoised translations, keyed by node identity.
	cache map[smt.UnsafeTerm]value
	// Constant words, keyed by symbol and sort.  Two constant nodes declaring
	// the same symbol at the same sort share one word.
	consts map[string]value
	// Uninterpreted function applications, keyed by declaration.
	apps map[string][]appRecord
	// Congruence axioms for arrays and function applications.  Always
	// asserted: they only constrain variables this back end invented, so they
	// never exclude a model of the caller's constraints.
	axioms []z.Lit
	// Assertion frames; frame zero is the outermost scope.
	frames [][]z.Lit
	// Result of the most recent encode hook.
	last value
}

// New constructs an empty solver with no logic hint.
func New() *Solver {
	return NewWithLogic(smt.QF_AUFBV)
}

// NewWithLogic constructs an empty solver hinted at the given logic.
func NewWithLogic(hint smt.Logic) *Solver {
	p := &Solver{logic: hint}
	p.Reset()
	//
	return p
}

// Logic returns the logic hint given at construction.
func (p *Solver) Logic() smt.Logic {
	return p.logic
}

// Reset discards all asserted constraints, all checkpoints and the entire
// translation state.
func (p *Solver) Reset() {
	p.circuit = logic.NewC()
	p.cache = make(map[smt.UnsafeTerm]value)
	p.consts = make(map[string]value)
	p.apps = make(map[string][]appRecord)
	p.axioms = nil
	p.frames = [][]z.Lit{nil}
}

// Push establishes a checkpoint over the asserted constraints.
func (p *Solver) Push() {
	p.frames = append(p.frames, nil)
}

// Pop discards every constraint asserted since the matching Push.
func (p *Solver) Pop() {
	if len(p.frames) == 1 {
		panic("pop without matching push")
	}
	//
	p.frames = p.frames[:len(p.frames)-1]
}

// Add asserts a Boolean-sorted term as a constraint.
func (p *Solver) Add(condition smt.Term[smt.Bool]) smt.Error {
	return p.UnsafeAdd(condition.Unsafe())
}

// UnsafeAdd asserts a term as a constraint; its sort must be Boolean.
func (p *Solver) UnsafeAdd(condition smt.UnsafeTerm) smt.Error {
	if !condition.Sort().IsBool() {
		return smt.OpcodeError
	}
	//
	v, err := p.eval(condition)
	//
	if err != smt.OK {
		return err
	}
	//
	top := len(p.frames) - 1
	p.frames[top] = append(p.frames[top], v.bits.lit())
	//
	return smt.OK
}

// Check decides satisfiability of the asserted constraints.  The circuit cone
// reachable from the assertions (and any congruence axioms) is translated to
// CNF and handed to a fresh gini instance.
func (p *Solver) Check() smt.CheckResult {
	var roots []z.Lit
	//
	for _, frame := range p.frames {
		roots = append(roots, frame...)
	}
	//
	roots = append(roots, p.axioms...)
	//
	g := gini.New()
	clauses := 0
	//
	for _, root := range roots {
		if root == p.circuit.F {
			return smt.Unsat
		} else if root == p.circuit.T {
			continue
		}
		//
		p.circuit.ToCnfFrom(g, root)
		g.Add(root)
		g.Add(0)
		clauses++
	}
	//
	log.Debugf("checking %d assertions over %d circuit nodes (%s)", clauses, p.circuit.Len(), p.logic)
	//
	switch g.Solve() {
	case 1:
		return smt.Sat
	case -1:
		return smt.Unsat
	}
	//
	return smt.Unknown
}

// ============================================================================
// Literals
// ============================================================================

// EncodeLiteralBool renders a Boolean literal as a constant circuit literal.
func (p *Solver) EncodeLiteralBool(sort *smt.Sort, v bool) smt.Error {
	if v {
		p.last = value{bits: boolWord(p.circuit.T)}
	} else {
		p.last = value{bits: boolWord(p.circuit.F)}
	}
	//
	return smt.OK
}

// EncodeLiteralInt8 renders a signed scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralInt8(sort *smt.Sort, v int8) smt.Error {
	return p.scalar(sort, uint64(int64(v)))
}

// EncodeLiteralInt16 renders a signed scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralInt16(sort *smt.Sort, v int16) smt.Error {
	return p.scalar(sort, uint64(int64(v)))
}

// EncodeLiteralInt32 renders a signed scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralInt32(sort *smt.Sort, v int32) smt.Error {
	return p.scalar(sort, uint64(int64(v)))
}

// EncodeLiteralInt64 renders a signed scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralInt64(sort *smt.Sort, v int64) smt.Error {
	return p.scalar(sort, uint64(v))
}

// EncodeLiteralUint8 renders an unsigned scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralUint8(sort *smt.Sort, v uint8) smt.Error {
	return p.scalar(sort, uint64(v))
}

// EncodeLiteralUint16 renders an unsigned scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralUint16(sort *smt.Sort, v uint16) smt.Error {
	return p.scalar(sort, uint64(v))
}

// EncodeLiteralUint32 renders an unsigned scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralUint32(sort *smt.Sort, v uint32) smt.Error {
	return p.scalar(sort, uint64(v))
}

// EncodeLiteralUint64 renders an unsigned scalar at a bit-vector sort.
func (p *Solver) EncodeLiteralUint64(sort *smt.Sort, v uint64) smt.Error {
	return p.scalar(sort, v)
}

// Scalar literals are only meaningful at bit-vector sorts; in particular the
// mathematical Int sort is beyond a bit-level back end.
func (p *Solver) scalar(sort *smt.Sort, bits uint64) smt.Error {
	if !sort.IsBv() {
		return smt.UnsupportError
	}
	//
	p.last = value{bits: litWord(p.circuit, bits, sort.BvWidth())}
	//
	return smt.OK
}

// ============================================================================
// Constants and function applications
// ============================================================================

// EncodeConstant renders a declared constant as fresh circuit inputs, shared
// between every constant node declaring the same symbol at the same sort.
func (p *Solver) EncodeConstant(decl smt.UnsafeDecl) smt.Error {
	key := decl.String()
	//
	if v, ok := p.consts[key]; ok {
		p.last = v
		return smt.OK
	}
	//
	sort := decl.Sort()
	//
	var v value
	//
	switch {
	case sort.IsArray():
		if !scalarSort(sort.Sorts(0)) || !scalarSort(sort.Sorts(1)) {
			return smt.UnsupportError
		}
		//
		v = value{arr: &array{sort: sort, base: &baseArray{}}}
	case scalarSort(sort):
		v = value{bits: newWord(p.circuit, sortWidth(sort))}
	default:
		return smt.UnsupportError
	}
	//
	p.consts[key] = v
	p.last = v
	p.Stats().Constants++
	//
	return smt.OK
}

// EncodeFuncApp renders an uninterpreted function application.
func (p *Solver) EncodeFuncApp(decl smt.UnsafeDecl, args []smt.UnsafeTerm) smt.Error {
	sort := decl.Sort()
	//
	if !scalarSort(sort.Sorts(sort.SortsLen() - 1)) {
		return smt.UnsupportError
	}
	//
	words := make([]word, len(args))
	//
	for i, arg := range args {
		v, err := p.eval(arg)
		//
		if err != smt.OK {
			return err
		} else if v.bits == nil {
			return smt.UnsupportError
		}
		//
		words[i] = v.bits
	}
	//
	p.last = value{bits: p.applyFunc(decl, words)}
	p.Stats().FuncApps++
	//
	return smt.OK
}

// ============================================================================
// Arrays
// ============================================================================

// EncodeConstArray renders the array everywhere equal to its initialiser.
func (p *Solver) EncodeConstArray(sort *smt.Sort, init smt.UnsafeTerm) smt.Error {
	v, err := p.eval(init)
	//
	if err != smt.OK {
		return err
	} else if v.bits == nil {
		return smt.UnsupportError
	}
	//
	p.last = value{arr: &array{sort: sort, init: v.bits}}
	//
	return smt.OK
}

// EncodeArraySelect renders reading an array at an index.
func (p *Solver) EncodeArraySelect(arr smt.UnsafeTerm, index smt.UnsafeTerm) smt.Error {
	av, err := p.eval(arr)
	//
	if err != smt.OK {
		return err
	} else if av.arr == nil {
		return smt.UnsupportError
	}
	//
	iv, err := p.eval(index)
	//
	if err != smt.OK {
		return err
	}
	//
	p.last = value{bits: p.selectFrom(av.arr, iv.bits)}
	p.Stats().ArraySelects++
	//
	return smt.OK
}

// EncodeArrayStore renders updating an array at an index, as a new frame on
// the store chain.
func (p *Solver) EncodeArrayStore(arr smt.UnsafeTerm, index smt.UnsafeTerm, val smt.UnsafeTerm) smt.Error {
	av, err := p.eval(arr)
	//
	if err != smt.OK {
		return err
	} else if av.arr == nil {
		return smt.UnsupportError
	}
	//
	iv, err := p.eval(index)
	//
	if err != smt.OK {
		return err
	}
	//
	vv, err := p.eval(val)
	//
	if err != smt.OK {
		return err
	} else if vv.bits == nil {
		return smt.UnsupportError
	}
	//
	p.last = value{arr: &array{sort: av.arr.sort, prev: av.arr, index: iv.bits, value: vv.bits}}
	p.Stats().ArrayStores++
	//
	return smt.OK
}

// ============================================================================
// Operators
// ============================================================================

// EncodeUnary renders a unary operator application.
func (p *Solver) EncodeUnary(op smt.Opcode, sort *smt.Sort, arg smt.UnsafeTerm) smt.Error {
	v, err := p.eval(arg)
	//
	if err != smt.OK {
		return err
	}
	//
	operand := arg.Sort()
	//
	switch {
	case op == smt.LNOT && operand.IsBool():
		p.last = value{bits: boolWord(v.bits.lit().Not())}
	case op == smt.NOT && operand.IsBv():
		p.last = value{bits: notWord(v.bits)}
	case op == smt.SUB && operand.IsBv():
		p.last = value{bits: negWords(p.circuit, v.bits)}
	case !scalarSort(operand):
		return smt.UnsupportError
	default:
		return p.reject(op, operand)
	}
	//
	p.Stats().UnaryOps++
	//
	return smt.OK
}

// EncodeBinary renders a binary operator application.  Order relations over
// signed bit-vector operands compare in two's complement; unsigned operands
// compare as magnitudes.
func (p *Solver) EncodeBinary(op smt.Opcode, sort *smt.Sort, left smt.UnsafeTerm,
	right smt.UnsafeTerm) smt.Error {
	lv, err := p.eval(left)
	//
	if err != smt.OK {
		return err
	}
	//
	rv, err := p.eval(right)
	//
	if err != smt.OK {
		return err
	}
	//
	operand := left.Sort()
	//
	if lv.bits == nil || rv.bits == nil {
		return smt.UnsupportError
	}
	//
	bits, err := p.binary(op, operand, lv.bits, rv.bits)
	//
	if err != smt.OK {
		return err
	}
	//
	p.last = value{bits: bits}
	p.Stats().BinaryOps++
	//
	return smt.OK
}

// Render one binary operator over already-encoded operand words.
func (p *Solver) binary(op smt.Opcode, operand *smt.Sort, l, r word) (word, smt.Error) {
	c := p.circuit
	//
	switch op {
	case smt.EQL:
		p.Stats().Equalities++
		return boolWord(eqWords(c, l, r)), smt.OK
	case smt.NEQ:
		p.Stats().Disequalities++
		return boolWord(eqWords(c, l, r).Not()), smt.OK
	}
	//
	if operand.IsBool() {
		switch op {
		case smt.LAND, smt.AND:
			p.Stats().Conjunctions++
			return boolWord(c.And(l.lit(), r.lit())), smt.OK
		case smt.LOR, smt.OR:
			p.Stats().Disjunctions++
			return boolWord(c.Or(l.lit(), r.lit())), smt.OK
		case smt.IMP:
			p.Stats().Implications++
			return boolWord(c.Implies(l.lit(), r.lit())), smt.OK
		case smt.XOR:
			return boolWord(c.Xor(l.lit(), r.lit())), smt.OK
		}
		//
		return nil, p.reject(op, operand)
	} else if !operand.IsBv() {
		return nil, smt.UnsupportError
	}
	//
	switch op {
	case smt.AND:
		return andWords(c, l, r), smt.OK
	case smt.OR:
		return orWords(c, l, r), smt.OK
	case smt.XOR:
		return xorWords(c, l, r), smt.OK
	case smt.ADD:
		sum, _ := addWords(c, l, r, c.F)
		return sum, smt.OK
	case smt.SUB:
		return subWords(c, l, r), smt.OK
	case smt.MUL:
		return mulWords(c, l, r), smt.OK
	case smt.QUO:
		quo, _ := p.divide(operand, l, r)
		return quo, smt.OK
	case smt.REM:
		_, rem := p.divide(operand, l, r)
		return rem, smt.OK
	case smt.LSS:
		p.Stats().Inequalities++
		return boolWord(p.less(operand, l, r)), smt.OK
	case smt.GTR:
		p.Stats().Inequalities++
		return boolWord(p.less(operand, r, l)), smt.OK
	case smt.LEQ:
		p.Stats().Inequalities++
		return boolWord(p.less(operand, r, l).Not()), smt.OK
	case smt.GEQ:
		p.Stats().Inequalities++
		return boolWord(p.less(operand, l, r).Not()), smt.OK
	}
	//
	return nil, p.reject(op, operand)
}

func (p *Solver) less(operand *smt.Sort, l, r word) z.Lit {
	if operand.IsSigned() {
		return sltWords(p.circuit, l, r)
	}
	//
	return ultWords(p.circuit, l, r)
}

func (p *Solver) divide(operand *smt.Sort, l, r word) (word, word) {
	if operand.IsSigned() {
		return sdivWords(p.circuit, l, r)
	}
	//
	return udivWords(p.circuit, l, r)
}

// EncodeNary renders an n-ary operator application.  NEQ asserts pairwise
// distinctness of all operands; LAND, LOR and EQL fold left to right.
func (p *Solver) EncodeNary(op smt.Opcode, sort *smt.Sort, args []smt.UnsafeTerm) smt.Error {
	words := make([]word, len(args))
	//
	for i, arg := range args {
		v, err := p.eval(arg)
		//
		if err != smt.OK {
			return err
		} else if v.bits == nil {
			return smt.UnsupportError
		}
		//
		words[i] = v.bits
	}
	//
	c := p.circuit
	operand := args[0].Sort()
	//
	switch op {
	case smt.LAND:
		lits := make([]z.Lit, len(words))
		//
		for i, w := range words {
			lits[i] = w.lit()
		}
		//
		p.last = value{bits: boolWord(c.Ands(lits...))}
		p.Stats().Conjunctions++
	case smt.LOR:
		lits := make([]z.Lit, len(words))
		//
		for i, w := range words {
			lits[i] = w.lit()
		}
		//
		p.last = value{bits: boolWord(c.Ors(lits...))}
		p.Stats().Disjunctions++
	case smt.EQL:
		all := c.T
		//
		for i := 1; i < len(words); i++ {
			all = c.And(all, eqWords(c, words[i-1], words[i]))
		}
		//
		p.last = value{bits: boolWord(all)}
		p.Stats().Equalities++
	case smt.NEQ:
		distinct := c.T
		//
		for i := 0; i < len(words); i++ {
			for j := i + 1; j < len(words); j++ {
				distinct = c.And(distinct, eqWords(c, words[i], words[j]).Not())
			}
		}
		//
		p.last = value{bits: boolWord(distinct)}
		p.Stats().Disequalities++
	default:
		return p.reject(op, operand)
	}
	//
	p.Stats().NaryOps++
	//
	return smt.OK
}

// ============================================================================
// Helpers
// ============================================================================

// eval translates a term, memoised on node identity.
func (p *Solver) eval(term smt.UnsafeTerm) (value, smt.Error) {
	if v, ok := p.cache[term]; ok {
		return v, smt.OK
	}
	//
	if err := term.Encode(p); err != smt.OK {
		return value{}, err
	}
	//
	p.cache[term] = p.last
	//
	return p.last, smt.OK
}

// An opcode this back end understands but cannot apply at the operand sort.
func (p *Solver) reject(op smt.Opcode, operand *smt.Sort) smt.Error {
	log.Debugf("rejecting opcode %s at sort %s", op, operand)
	//
	return smt.OpcodeError
}

// scalarSort holds for the sorts this back end renders as plain words.
func scalarSort(sort *smt.Sort) bool {
	return sort.IsBool() || sort.IsBv()
}

func sortWidth(sort *smt.Sort) uint {
	if sort.IsBool() {
		return 1
	}
	//
	return sort.BvWidth()
}
