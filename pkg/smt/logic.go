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

// Logic identifies a named SMT-LIB logic fragment.  A logic is only ever used
// as a hint handed to a concrete solver back end on construction; it is never
// validated against the terms actually asserted.
//
// See http://smtlib.cs.uiowa.edu/logics.html for the catalogue.
type Logic uint

const (
	// AUFLIA is linear integer arithmetic with uninterpreted functions and
	// extensional arrays, with quantifiers.
	AUFLIA Logic = iota
	// AUFLIRA is arrays, uninterpreted functions and linear arithmetic over
	// integers and reals, with quantifiers.
	AUFLIRA
	// AUFNIRA is arrays, uninterpreted functions and nonlinear arithmetic
	// over integers and reals, with quantifiers.
	AUFNIRA
	// LRA is closed linear real arithmetic.
	LRA
	// QF_ABV is quantifier-free bit-vectors with bit-vector arrays.
	QF_ABV
	// QF_AUFBV is quantifier-free bit-vectors with arrays and uninterpreted
	// functions.
	QF_AUFBV
	// QF_UFBV is quantifier-free bit-vectors with uninterpreted functions.
	QF_UFBV
	// QF_AUFLIA is quantifier-free linear integer arithmetic with
	// uninterpreted functions and arrays.
	QF_AUFLIA
	// QF_AX is quantifier-free arrays with extensionality.
	QF_AX
	// QF_BV is quantifier-free fixed-size bit-vectors.
	QF_BV
	// QF_IDL is quantifier-free integer difference logic.
	QF_IDL
	// QF_RDL is quantifier-free real difference logic.
	QF_RDL
	// QF_LIA is quantifier-free linear integer arithmetic.
	QF_LIA
	// QF_LRA is quantifier-free linear real arithmetic.
	QF_LRA
	// QF_NIA is quantifier-free nonlinear integer arithmetic.
	QF_NIA
	// QF_NRA is quantifier-free nonlinear real arithmetic.
	QF_NRA
	// QF_UF is quantifier-free formulas over uninterpreted functions.
	QF_UF
	// QF_UFIDL is quantifier-free integer difference logic with
	// uninterpreted functions.
	QF_UFIDL
	// QF_UFLIA is quantifier-free linear integer arithmetic with
	// uninterpreted functions.
	QF_UFLIA
	// QF_UFLRA is quantifier-free linear real arithmetic with uninterpreted
	// functions.
	QF_UFLRA
	// QF_UFNRA is quantifier-free nonlinear real arithmetic with
	// uninterpreted functions.
	QF_UFNRA
	// UFLRA is linear real arithmetic with uninterpreted functions, with
	// quantifiers.
	UFLRA
	// UFNIA is nonlinear integer arithmetic with uninterpreted functions,
	// with quantifiers.
	UFNIA
)

// Parallel table of SMT-LIB acronym strings, indexed by Logic.  Read-only and
// initialised once, before first use.
var acronyms = [...]string{
	AUFLIA:    "AUFLIA",
	AUFLIRA:   "AUFLIRA",
	AUFNIRA:   "AUFNIRA",
	LRA:       "LRA",
	QF_ABV:    "QF_ABV",
	QF_AUFBV:  "QF_AUFBV",
	QF_UFBV:   "QF_UFBV",
	QF_AUFLIA: "QF_AUFLIA",
	QF_AX:     "QF_AX",
	QF_BV:     "QF_BV",
	QF_IDL:    "QF_IDL",
	QF_RDL:    "QF_RDL",
	QF_LIA:    "QF_LIA",
	QF_LRA:    "QF_LRA",
	QF_NIA:    "QF_NIA",
	QF_NRA:    "QF_NRA",
	QF_UF:     "QF_UF",
	QF_UFIDL:  "QF_UFIDL",
	QF_UFLIA:  "QF_UFLIA",
	QF_UFLRA:  "QF_UFLRA",
	QF_UFNRA:  "QF_UFNRA",
	UFLRA:     "UFLRA",
	UFNIA:     "UFNIA",
}

// Logics returns every known logic, in enumeration order.
func Logics() []Logic {
	logics := make([]Logic, len(acronyms))
	//
	for i := range logics {
		logics[i] = Logic(i)
	}
	//
	return logics
}

// String returns the standard SMT-LIB acronym for this logic (e.g. "QF_BV").
func (p Logic) String() string {
	return acronyms[p]
}
