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
	"github.com/go-air/gini/z"

	"github.com/consensys/go-smt/pkg/smt"
)

// array is the symbolic rendering of an array-sorted term: a chain of store
// frames over either a constant initialiser or an unconstrained base.  Selects
// resolve the chain with index-equality multiplexers; only selects reaching an
// unconstrained base cost fresh variables.
type array struct {
	sort *smt.Sort
	// Store frame (prev non-nil): holds value at index, prev everywhere else.
	prev  *array
	index word
	value word
	// Constant initialiser (init non-nil): holds init everywhere.
	init word
	// Unconstrained base (base non-nil): read-over-read consistency is
	// enforced lazily, one congruence axiom per pair of selects.
	base *baseArray
}

type baseArray struct {
	selections []selection
}

type selection struct {
	index word
	out   word
}

// selectFrom reads an array at a symbolic index.  Reads from an unconstrained
// base allocate a fresh result and assert, for every earlier read of the same
// base, that equal indices read equal results.
func (p *Solver) selectFrom(a *array, index word) word {
	if a.prev != nil {
		inner := p.selectFrom(a.prev, index)
		hit := eqWords(p.circuit, index, a.index)
		//
		return muxWords(p.circuit, hit, a.value, inner)
	}
	//
	if a.init != nil {
		return a.init
	}
	//
	out := newWord(p.circuit, sortWidth(a.sort.Sorts(1)))
	//
	for _, s := range a.base.selections {
		same := eqWords(p.circuit, index, s.index)
		p.axioms = append(p.axioms, p.circuit.Implies(same, eqWords(p.circuit, out, s.out)))
	}
	//
	a.base.selections = append(a.base.selections, selection{index: index, out: out})
	//
	return out
}

// appRecord remembers one application of an uninterpreted function, so later
// applications can be tied to it by functional congruence.
type appRecord struct {
	args []word
	out  word
}

// applyFunc renders an uninterpreted function application in the Ackermann
// style: a fresh result, constrained to agree with every earlier application
// of the same declaration on equal arguments.
func (p *Solver) applyFunc(decl smt.UnsafeDecl, args []word) word {
	sort := decl.Sort()
	key := decl.String()
	out := newWord(p.circuit, sortWidth(sort.Sorts(sort.SortsLen()-1)))
	//
	for _, rec := range p.apps[key] {
		same := make([]z.Lit, 0, len(args))
		//
		for i := range args {
			same = append(same, eqWords(p.circuit, args[i], rec.args[i]))
		}
		//
		agree := p.circuit.Implies(p.circuit.Ands(same...), eqWords(p.circuit, out, rec.out))
		p.axioms = append(p.axioms, agree)
	}
	//
	p.apps[key] = append(p.apps[key], appRecord{args: args, out: out})
	//
	return out
}
