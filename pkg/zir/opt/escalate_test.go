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

import (
	"math/big"
	"testing"

	"github.com/consensys/go-zirc/pkg/util/math"
)

func Test_Escalate_NoReduction(t *testing.T) {
	checkEscalate(t, 42, 33, 100, false, false, 75)
}

func Test_Escalate_ReduceLeft(t *testing.T) {
	// left at its reduced bound (15) fits, left at 90 does not
	checkEscalate(t, 90, 33, 100, true, false, 48)
}

func Test_Escalate_ReduceRight(t *testing.T) {
	// reducing left alone is not enough, reducing right alone is
	checkEscalate(t, 90, 95, 110, false, true, 105)
}

func Test_Escalate_ReduceBoth(t *testing.T) {
	checkEscalate(t, 95, 95, 100, true, true, 30)
}

// checkEscalate runs the escalation chain for addition with both reduced
// bounds fixed at 15, checking the chosen reduction set and resulting bound.
func checkEscalate(t *testing.T, left int64, right int64, limit int64,
	expectLeft bool, expectRight bool, expected int64) {
	t.Helper()
	//
	reduced := big.NewInt(15)
	//
	redLeft, redRight, max := escalate(math.CheckedAdd,
		big.NewInt(left), reduced, big.NewInt(right), reduced, big.NewInt(limit))
	//
	if redLeft != expectLeft || redRight != expectRight {
		t.Errorf("escalate(%d,%d) chose (%t,%t), expected (%t,%t)",
			left, right, redLeft, redRight, expectLeft, expectRight)
	}
	//
	if max.Int64() != expected {
		t.Errorf("escalate(%d,%d) bound %s, expected %d", left, right, max.String(), expected)
	}
}

func Test_Escalate_Order(t *testing.T) {
	// When reducing either operand alone would do, the left operand is
	// chosen: this pins the fixed escalation order (none, left, right, both).
	reduced := big.NewInt(15)
	//
	redLeft, redRight, max := escalate(math.CheckedAdd,
		big.NewInt(90), reduced, big.NewInt(90), reduced, big.NewInt(110))
	//
	if !redLeft || redRight {
		t.Errorf("expected left reduction only, got (%t,%t)", redLeft, redRight)
	}
	//
	if max.Int64() != 105 {
		t.Errorf("expected bound 105, got %s", max.String())
	}
}
