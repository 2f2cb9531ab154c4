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
package math

import (
	"math/big"
	"testing"
)

func Test_Pow_0(t *testing.T) {
	check(0, t)
}

func Test_Pow_1(t *testing.T) {
	check(1, t)
}

func Test_Pow_2(t *testing.T) {
	check(2, t)
}

func Test_Pow_3(t *testing.T) {
	check(3, t)
}

func Test_Pow_4(t *testing.T) {
	check(4, t)
}

func Test_Pow2_Big(t *testing.T) {
	for i := uint(0); i < 256; i++ {
		val := Pow2(i)
		m1 := Pow2m1(i)
		// 2^i has exactly i+1 bits
		if uint(val.BitLen()) != i+1 {
			t.Errorf("2^%d has %d bits", i, val.BitLen())
		}
		// 2^i - 1 has exactly i bits
		if uint(m1.BitLen()) != i {
			t.Errorf("2^%d - 1 has %d bits", i, m1.BitLen())
		}
	}
}

func check(base uint64, t *testing.T) {
	for i := uint64(0); i < 10; i++ {
		// Bruteforce solution
		e := bruteForce(base, i)
		// Check for a match
		if x := PowUint64(base, i); x != e {
			t.Errorf("%d^%d == %d != %d", base, i, x, e)
		}
	}
}

func bruteForce(base, exp uint64) uint64 {
	acc := uint64(1)
	for i := uint64(0); i < exp; i++ {
		acc *= base
	}

	return acc
}

func Test_Checked_Add(t *testing.T) {
	limit := big.NewInt(100)
	//
	if v, ok := CheckedAdd(big.NewInt(42), big.NewInt(33), limit); !ok || v.Int64() != 75 {
		t.Errorf("42 + 33 gave (%s,%t)", v.String(), ok)
	}
	// boundary: limit itself is not representable
	if _, ok := CheckedAdd(big.NewInt(67), big.NewInt(33), limit); ok {
		t.Errorf("67 + 33 should not fit below 100")
	}
}

func Test_Checked_Mul(t *testing.T) {
	limit := Pow2(128)
	//
	x := Pow2(64)
	//
	if _, ok := CheckedMul(&x, &x, &limit); ok {
		t.Errorf("2^64 * 2^64 should not fit below 2^128")
	}
	//
	y := Pow2m1(64)
	//
	if v, ok := CheckedMul(&y, &y, &limit); !ok || v.BitLen() != 128 {
		t.Errorf("(2^64 - 1)^2 gave (%s,%t)", v.String(), ok)
	}
}
