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
package field_test

import (
	"testing"

	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/field/bls12_377"
	"github.com/consensys/go-zirc/pkg/util/field/bn254"
)

func Test_RequiredBits_Bn254(t *testing.T) {
	if bits := field.RequiredBits[bn254.Element](); bits != 254 {
		t.Errorf("expected 254 bits, got %d", bits)
	}
}

func Test_RequiredBits_Bls12377(t *testing.T) {
	if bits := field.RequiredBits[bls12_377.Element](); bits != 253 {
		t.Errorf("expected 253 bits, got %d", bits)
	}
}

func Test_TwoPowN(t *testing.T) {
	for _, n := range []uint{0, 1, 31, 32, 64, 128} {
		val := field.ToBigInt(field.TwoPowN[bn254.Element](n))
		//
		if uint(val.BitLen()) != n+1 {
			t.Errorf("2^%d has %d bits", n, val.BitLen())
		}
	}
}

func Test_Pow(t *testing.T) {
	x := field.Uint64[bn254.Element](3)
	y := field.Pow(x, 5)
	//
	if y.Cmp(field.Uint64[bn254.Element](243)) != 0 {
		t.Errorf("3^5 != %s", y.String())
	}
}

func Test_GetConfig(t *testing.T) {
	if cfg := field.GetConfig("BN254"); cfg == nil || cfg.RequiredBits != 254 {
		t.Errorf("missing or malformed BN254 config")
	}
	//
	if cfg := field.GetConfig("GF_9999"); cfg != nil {
		t.Errorf("unexpected config: %v", cfg)
	}
}
