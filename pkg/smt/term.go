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

import "reflect"

// UnsafeTerm is a shared, read-only handle onto exactly one expression node,
// or the null handle when it references nothing.  It is "unsafe" in the sense
// that it carries no static guarantee about the sort of the node it
// references; the sort and node kind are only observable at run time.
//
// Handles are comparable values: two handles are == exactly when they alias
// the same node.  Node identity is stable for the node's lifetime, which is
// the basis on which back ends memoise the translation of shared
// sub-expressions (e.g. using a map keyed by UnsafeTerm).  Nodes are jointly
// owned by every handle referencing them, directly or as another node's
// operand; the garbage collector guarantees no node is reclaimed whilst still
// reachable.
type UnsafeTerm struct {
	node expr
}

// IsNull determines whether this handle references no node at all.  Every
// other operation on a null handle is a programming error which fails
// immediately.
func (p UnsafeTerm) IsNull() bool {
	return p.node == nil
}

// ExprKind returns the kind of the referenced node.
func (p UnsafeTerm) ExprKind() ExprKind {
	if p.node == nil {
		panic("kind of null term")
	}
	//
	return p.node.exprKind()
}

// Sort returns the result sort of the referenced node.
func (p UnsafeTerm) Sort() *Sort {
	if p.node == nil {
		panic("sort of null term")
	}
	//
	return p.node.exprSort()
}

// Addr returns the identity of the referenced node, or zero for the null
// handle.  Identity is stable for the node's lifetime and equal for handles
// aliasing the same node; it carries no other meaning.
func (p UnsafeTerm) Addr() uintptr {
	if p.node == nil {
		return 0
	}
	//
	return reflect.ValueOf(p.node).Pointer()
}

// Encode translates the referenced node via the given solver, dispatching
// through the node's own hook into the matching encode operation.  The
// solver receives the node's own type-erased operand terms, not pre-encoded
// results: recursively encoding operands (and memoising repeated nodes, if
// desired) is the solver's responsibility.
func (p UnsafeTerm) Encode(solver Solver) Error {
	if p.node == nil {
		panic("encode of null term")
	}
	//
	return p.node.encode(solver)
}

// Term is a shared, read-only and well-sorted handle onto exactly one
// expression node: the referenced node's sort is statically known to be the
// sort of the type tag T, so no run-time sort checking is required when
// operating on it.  The zero value is the null handle.
type Term[T Type] struct {
	node expr
}

// IsNull determines whether this handle references no node at all.
func (p Term[T]) IsNull() bool {
	return p.node == nil
}

// ExprKind returns the kind of the referenced node.
func (p Term[T]) ExprKind() ExprKind {
	return p.Unsafe().ExprKind()
}

// Sort returns the result sort of the referenced node.
func (p Term[T]) Sort() *Sort {
	return p.Unsafe().Sort()
}

// Addr returns the identity of the referenced node, or zero for the null
// handle.
func (p Term[T]) Addr() uintptr {
	return p.Unsafe().Addr()
}

// Unsafe converts this handle into its type-erased counterpart.  The
// conversion is total: both handles alias the same node.
func (p Term[T]) Unsafe() UnsafeTerm {
	return UnsafeTerm{p.node}
}

// Downcast attempts to view a type-erased handle at the sort of the type tag
// T.  When the referenced node's sort is not that of T (or the handle is
// null), the result is the null handle — never a panic or an error — so
// callers must test IsNull before dereferencing.
func Downcast[T Type](term UnsafeTerm) Term[T] {
	if term.IsNull() || !term.Sort().Equals(SortOf[T]()) {
		return Term[T]{}
	}
	//
	return Term[T]{term.node}
}
