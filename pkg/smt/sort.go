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
	"fmt"
	"strings"
	"sync"
)

// Sort describes the type of a logic term: one of the primitive sorts (Bool,
// Int, Real, fixed-width bit-vector) or a composite sort built from component
// sorts (array, function, tuple).  Sorts are immutable and interned, so two
// structurally equal sorts are almost always the same pointer; Equals keeps a
// field-by-field fallback for sorts constructed independently.
type Sort struct {
	isBool   bool
	isInt    bool
	isReal   bool
	isBv     bool
	isSigned bool
	bvWidth  uint
	isArray  bool
	isFunc   bool
	isTuple  bool
	// Component sorts.  For arrays this holds exactly the domain and range;
	// for functions the parameter sorts followed by the result sort; for
	// tuples the element sorts.  Empty for primitive sorts.
	sorts []*Sort
}

// Statically allocated primitive sorts.  These are handed out by the
// constructors below, so pointer comparison is the common equality case.
var (
	boolSort = &Sort{isBool: true}
	intSort  = &Sort{isInt: true}
	realSort = &Sort{isReal: true}
)

// sortTable interns every dynamically constructed sort, keyed by its String
// representation.  This is the registry which replaces per-type static
// allocation: one allocation per distinct sort, reused forever after.
var (
	sortMutex sync.Mutex
	sortTable = make(map[string]*Sort)
)

// BoolSort returns the Boolean sort.
func BoolSort() *Sort { return boolSort }

// IntSort returns the (mathematical) integer sort.
func IntSort() *Sort { return intSort }

// RealSort returns the (mathematical) real sort.
func RealSort() *Sort { return realSort }

// NewBvSort returns the bit-vector sort of the given width and signedness.
// Signedness is metadata carried by the sort: it determines whether order
// relations over terms of this sort are rendered with the signed or the
// unsigned theory operator.  Width must be strictly positive.
func NewBvSort(signed bool, width uint) *Sort {
	if width == 0 {
		panic("bit-vector sort of width zero")
	}
	//
	return intern(&Sort{isBv: true, isSigned: signed, bvWidth: width})
}

// NewArraySort returns the sort of arrays mapping domain to range.
func NewArraySort(domain *Sort, rng *Sort) *Sort {
	if domain == nil || rng == nil {
		panic("array sort with nil component")
	}
	//
	return intern(&Sort{isArray: true, sorts: []*Sort{domain, rng}})
}

// NewFuncSort returns the sort of functions whose parameter sorts are all but
// the last given sort, and whose result sort is the last.  At least two
// component sorts are required (one parameter and the result).
func NewFuncSort(sorts ...*Sort) *Sort {
	if len(sorts) < 2 {
		panic("function sort requires at least one parameter and a result")
	}
	//
	for _, s := range sorts {
		if s == nil {
			panic("function sort with nil component")
		}
	}
	//
	return intern(&Sort{isFunc: true, sorts: copySorts(sorts)})
}

// NewTupleSort returns the sort of tuples with the given element sorts.
func NewTupleSort(sorts ...*Sort) *Sort {
	if len(sorts) == 0 {
		panic("tuple sort requires at least one element")
	}
	//
	for _, s := range sorts {
		if s == nil {
			panic("tuple sort with nil component")
		}
	}
	//
	return intern(&Sort{isTuple: true, sorts: copySorts(sorts)})
}

// IsBool determines whether this is the Boolean sort.
func (p *Sort) IsBool() bool { return p.isBool }

// IsInt determines whether this is the integer sort.
func (p *Sort) IsInt() bool { return p.isInt }

// IsReal determines whether this is the real sort.
func (p *Sort) IsReal() bool { return p.isReal }

// IsBv determines whether this is a bit-vector sort.
func (p *Sort) IsBv() bool { return p.isBv }

// IsSigned determines whether this is a signed bit-vector sort.
func (p *Sort) IsSigned() bool { return p.isSigned }

// BvWidth returns the width (in bits) of a bit-vector sort, and zero for any
// other sort.
func (p *Sort) BvWidth() uint { return p.bvWidth }

// IsArray determines whether this is an array sort.
func (p *Sort) IsArray() bool { return p.isArray }

// IsFunc determines whether this is a function sort.
func (p *Sort) IsFunc() bool { return p.isFunc }

// IsTuple determines whether this is a tuple sort.
func (p *Sort) IsTuple() bool { return p.isTuple }

// SortsLen returns the number of component sorts of a composite sort, and
// zero for primitive sorts.
func (p *Sort) SortsLen() uint { return uint(len(p.sorts)) }

// Sorts returns the index'th component sort of a composite sort.  Indexing
// out of range is a programming error which fails immediately, rather than
// something callers are expected to recover from.
func (p *Sort) Sorts(index uint) *Sort {
	if index >= uint(len(p.sorts)) {
		panic(fmt.Sprintf("sort component index %d out of range (%d components)", index, len(p.sorts)))
	}
	//
	return p.sorts[index]
}

// Equals determines whether two sorts are structurally equal.  Since sorts
// are interned, identical pointers are the common case and checked first.
func (p *Sort) Equals(other *Sort) bool {
	if p == other {
		return true
	} else if other == nil {
		return false
	}
	//
	if p.isBool != other.isBool || p.isInt != other.isInt || p.isReal != other.isReal ||
		p.isBv != other.isBv || p.isSigned != other.isSigned || p.bvWidth != other.bvWidth ||
		p.isArray != other.isArray || p.isFunc != other.isFunc || p.isTuple != other.isTuple ||
		len(p.sorts) != len(other.sorts) {
		return false
	}
	// Compare component sorts recursively.
	for i := range p.sorts {
		if !p.sorts[i].Equals(other.sorts[i]) {
			return false
		}
	}
	//
	return true
}

// String returns a textual representation of this sort, following the
// teacher's compact convention for bit-vectors (e.g. "u8", "i32") and an
// s-expression convention for composites (e.g. "(Array u8 Bool)").
func (p *Sort) String() string {
	switch {
	case p.isBool:
		return "Bool"
	case p.isInt:
		return "Int"
	case p.isReal:
		return "Real"
	case p.isBv:
		if p.isSigned {
			return fmt.Sprintf("i%d", p.bvWidth)
		}
		//
		return fmt.Sprintf("u%d", p.bvWidth)
	case p.isArray:
		return fmt.Sprintf("(Array %s %s)", p.sorts[0], p.sorts[1])
	case p.isFunc:
		return fmt.Sprintf("(-> %s)", joinSorts(p.sorts))
	case p.isTuple:
		return fmt.Sprintf("(Tuple %s)", joinSorts(p.sorts))
	}
	// Unreachable via the public constructors.
	return "?"
}

// ============================================================================
// Helpers
// ============================================================================

// Intern a freshly built sort, returning the canonical instance.  Composite
// sorts always intern their components first, hence component slices of equal
// sorts are pointer-wise identical.
func intern(sort *Sort) *Sort {
	key := sort.String()
	//
	sortMutex.Lock()
	defer sortMutex.Unlock()
	//
	if existing, ok := sortTable[key]; ok {
		return existing
	}
	//
	sortTable[key] = sort
	//
	return sort
}

func copySorts(sorts []*Sort) []*Sort {
	return append([]*Sort(nil), sorts...)
}

func joinSorts(sorts []*Sort) string {
	var builder strings.Builder
	//
	for i, s := range sorts {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(s.String())
	}
	//
	return builder.String()
}
