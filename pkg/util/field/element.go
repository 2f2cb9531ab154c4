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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x - y
	Sub(y Operand) Operand
	// SetBytes assigns the value given in big endian byte order.
	SetBytes(bytes []byte) Operand
	// SetUint64 assigns a given (small) value.
	SetUint64(val uint64) Operand
	// Bytes returns the big-endian encoded value, possibly with leading zeros.
	Bytes() []byte
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val big.Int) F {
	var element F
	//
	element = element.SetBytes(val.Bytes())
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element
}

// Pow raises a given element to a given power.
func Pow[F Element[F]](base F, exp uint64) F {
	acc := One[F]()
	//
	for exp > 0 {
		if exp&1 == 1 {
			acc = acc.Mul(base)
		}
		// div 2
		exp >>= 1
		base = base.Mul(base)
	}
	//
	return acc
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}

// Modulus returns the modulus of the given field.
func Modulus[F Element[F]]() *big.Int {
	var element F
	//
	return element.Modulus()
}

// RequiredBits returns the number of bits needed to represent the modulus of
// the given field.
func RequiredBits[F Element[F]]() uint {
	var element F
	//
	return uint(element.Modulus().BitLen())
}

// ToBigInt returns the numerical value of a given element as an exact
// (unbounded) integer in the range [0, modulus).
func ToBigInt[F Element[F]](element F) big.Int {
	var val big.Int
	//
	val.SetBytes(element.Bytes())
	//
	return val
}
