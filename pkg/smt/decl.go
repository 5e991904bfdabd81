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

// UnsafeDecl binds a symbol name to a sort, without any compile-time record
// of which sort that is.  Declarations are pure value carriers consumed by
// the constant and function-application builders and by the encoding
// protocol; no registry of declared symbols is maintained.  Symbol names must
// be globally unique across one solving session — that is a caller
// obligation which this package neither checks nor enforces.
type UnsafeDecl struct {
	symbol string
	sort   *Sort
}

// NewUnsafeDecl constructs a declaration of the given symbol at the given
// sort.
func NewUnsafeDecl(symbol string, sort *Sort) UnsafeDecl {
	if sort == nil {
		panic("declaration with nil sort")
	}
	//
	return UnsafeDecl{symbol: symbol, sort: sort}
}

// Symbol returns the declared symbol name.
func (p UnsafeDecl) Symbol() string { return p.symbol }

// Sort returns the declared sort.
func (p UnsafeDecl) Sort() *Sort { return p.sort }

// Equals determines whether two declarations declare the same symbol at the
// same sort.
func (p UnsafeDecl) Equals(other UnsafeDecl) bool {
	return p.symbol == other.symbol && p.sort.Equals(other.sort)
}

func (p UnsafeDecl) String() string {
	return p.symbol + ":" + p.sort.String()
}

// Decl is the typed counterpart of UnsafeDecl: its sort is derived from the
// type tag T at construction, so terms built from it are well-sorted by
// construction.
type Decl[T Type] struct {
	UnsafeDecl
}

// NewDecl constructs a typed declaration of the given symbol, whose sort is
// derived from the type tag T.  Symbol names must be globally unique; see
// UnsafeDecl.
func NewDecl[T Type](symbol string) Decl[T] {
	return Decl[T]{NewUnsafeDecl(symbol, SortOf[T]())}
}
