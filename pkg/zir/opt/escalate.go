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
package opt

import "math/big"

// checkedOp combines two exact bounds, signalling failure when the result
// does not fit strictly below the given limit.
type checkedOp func(x *big.Int, y *big.Int, limit *big.Int) (big.Int, bool)

// escalate determines the minimal set of operand reductions required for the
// combined bound of a binary operator to stay below the given limit.  Each
// operand is tried at its actual bound first and, failing that, at the bound
// it would have after a range reduction.  The escalation order is fixed:
// reduce neither, then left only, then right only, then both.  Reducing the
// left operand first is a deliberate bias: by convention the left operand is
// more likely already in canonical form.  The final combination is accepted
// unconditionally, since the width precondition guarantees two canonical
// operands always combine safely.
func escalate(op checkedOp, leftMax *big.Int, leftReduced *big.Int,
	rightMax *big.Int, rightReduced *big.Int, limit *big.Int) (bool, bool, big.Int) {
	//
	if max, ok := op(leftMax, rightMax, limit); ok {
		return false, false, max
	}
	//
	if max, ok := op(leftReduced, rightMax, limit); ok {
		return true, false, max
	}
	//
	if max, ok := op(leftMax, rightReduced, limit); ok {
		return false, true, max
	}
	// Reduce both.
	max, _ := op(leftReduced, rightReduced, limit)
	//
	return true, true, max
}
