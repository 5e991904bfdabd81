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
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// word is a little-endian vector of circuit literals: word[0] is the least
// significant bit.  Boolean terms are one-bit words; a bit-vector term of
// width n is an n-bit word.
type word []z.Lit

// lit views a one-bit word as its single literal.
func (p word) lit() z.Lit {
	return p[0]
}

func boolWord(m z.Lit) word {
	return word{m}
}

// newWord allocates a word of fresh circuit inputs.
func newWord(c *logic.C, width uint) word {
	w := make(word, width)
	//
	for i := range w {
		w[i] = c.Lit()
	}
	//
	return w
}

// litWord renders the low width bits of the given pattern as circuit
// constants.  Callers sign-extend signed scalars into the pattern beforehand.
func litWord(c *logic.C, bits uint64, width uint) word {
	w := make(word, width)
	//
	for i := uint(0); i < width; i++ {
		if bits&(1<<i) != 0 {
			w[i] = c.T
		} else {
			w[i] = c.F
		}
	}
	//
	return w
}

func notWord(a word) word {
	w := make(word, len(a))
	//
	for i, m := range a {
		w[i] = m.Not()
	}
	//
	return w
}

func andWords(c *logic.C, a, b word) word {
	w := make(word, len(a))
	//
	for i := range a {
		w[i] = c.And(a[i], b[i])
	}
	//
	return w
}

func orWords(c *logic.C, a, b word) word {
	w := make(word, len(a))
	//
	for i := range a {
		w[i] = c.Or(a[i], b[i])
	}
	//
	return w
}

func xorWords(c *logic.C, a, b word) word {
	w := make(word, len(a))
	//
	for i := range a {
		w[i] = c.Xor(a[i], b[i])
	}
	//
	return w
}

// eqWords yields a single literal asserting bitwise equality of two words of
// equal length.
func eqWords(c *logic.C, a, b word) z.Lit {
	eqs := make([]z.Lit, len(a))
	//
	for i := range a {
		eqs[i] = c.Xor(a[i], b[i]).Not()
	}
	//
	return c.Ands(eqs...)
}

// muxWords selects t when sel holds and e otherwise, bit by bit.
func muxWords(c *logic.C, sel z.Lit, t, e word) word {
	w := make(word, len(t))
	//
	for i := range t {
		w[i] = c.Choice(sel, t[i], e[i])
	}
	//
	return w
}

// addWords is a ripple-carry adder, returning the sum (modulo 2^width) and
// the carry out of the top bit.
func addWords(c *logic.C, a, b word, carry z.Lit) (word, z.Lit) {
	w := make(word, len(a))
	//
	for i := range a {
		half := c.Xor(a[i], b[i])
		w[i] = c.Xor(half, carry)
		carry = c.Or(c.And(a[i], b[i]), c.And(half, carry))
	}
	//
	return w, carry
}

func subWords(c *logic.C, a, b word) word {
	diff, _ := addWords(c, a, notWord(b), c.T)
	return diff
}

// negWords is two's-complement negation.
func negWords(c *logic.C, a word) word {
	neg, _ := addWords(c, notWord(a), litWord(c, 0, uint(len(a))), c.T)
	return neg
}

// mulWords is a shift-and-add multiplier, modulo 2^width.
func mulWords(c *logic.C, a, b word) word {
	width := len(a)
	acc := litWord(c, 0, uint(width))
	//
	for i := 0; i < width; i++ {
		// Partial product: a shifted left by i, gated on b's i'th bit.
		partial := litWord(c, 0, uint(width))
		//
		for j := i; j < width; j++ {
			partial[j] = c.And(b[i], a[j-i])
		}
		//
		acc, _ = addWords(c, acc, partial, c.F)
	}
	//
	return acc
}

// ultWords yields a literal asserting a < b as unsigned words.  Computed via
// the borrow out of a - b: the subtraction carries out exactly when a >= b.
func ultWords(c *logic.C, a, b word) z.Lit {
	_, carry := addWords(c, a, notWord(b), c.T)
	return carry.Not()
}

// sltWords yields a literal asserting a < b as two's-complement words, by
// flipping the sign bits and comparing unsigned.
func sltWords(c *logic.C, a, b word) z.Lit {
	msb := len(a) - 1
	//
	fa := append(word(nil), a...)
	fb := append(word(nil), b...)
	fa[msb] = fa[msb].Not()
	fb[msb] = fb[msb].Not()
	//
	return ultWords(c, fa, fb)
}

// udivWords is a restoring divider, returning quotient and remainder of
// unsigned division.  Division by zero yields the all-ones quotient and the
// dividend as remainder, matching the bit-vector theory convention.
func udivWords(c *logic.C, a, b word) (word, word) {
	width := len(a)
	quo := make(word, width)
	// One guard bit on the partial remainder: shifting in a dividend bit can
	// exceed the divisor width before the subtraction restores it.
	rem := litWord(c, 0, uint(width)+1)
	ext := append(append(word(nil), b...), c.F)
	//
	for i := width - 1; i >= 0; i-- {
		// rem = (rem << 1) | a[i]
		rem = append(word{a[i]}, rem[:width]...)
		//
		fits := ultWords(c, rem, ext).Not()
		rem = muxWords(c, fits, subWords(c, rem, ext), rem)
		quo[i] = fits
	}
	//
	return quo, rem[:width]
}

// sdivWords implements two's-complement division truncating towards zero:
// quotient sign is the XOR of the operand signs, remainder sign follows the
// dividend.
func sdivWords(c *logic.C, a, b word) (word, word) {
	msb := len(a) - 1
	sa, sb := a[msb], b[msb]
	//
	absA := muxWords(c, sa, negWords(c, a), a)
	absB := muxWords(c, sb, negWords(c, b), b)
	quo, rem := udivWords(c, absA, absB)
	//
	quo = muxWords(c, c.Xor(sa, sb), negWords(c, quo), quo)
	rem = muxWords(c, sa, negWords(c, rem), rem)
	//
	return quo, rem
}
