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

import "math/big"

// CheckedAdd computes x + y exactly, signalling failure (rather than
// wrapping) when the sum is not strictly below the given limit.  On failure
// the returned value is unspecified.
func CheckedAdd(x *big.Int, y *big.Int, limit *big.Int) (big.Int, bool) {
	var val big.Int
	//
	val.Add(x, y)
	//
	return val, val.Cmp(limit) < 0
}

// CheckedMul computes x * y exactly, signalling failure (rather than
// wrapping) when the product is not strictly below the given limit.  On
// failure the returned value is unspecified.
func CheckedMul(x *big.Int, y *big.Int, limit *big.Int) (big.Int, bool) {
	var val big.Int
	//
	val.Mul(x, y)
	//
	return val, val.Cmp(limit) < 0
}
