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
package zir

import "github.com/consensys/go-zirc/pkg/util/sexp"

// UintIfElse represents a conditional unsigned integer expression which
// selects between two branches under a boolean condition.
type UintIfElse struct {
	Condition   BoolExpr
	Consequence UintExpr
	Alternative UintExpr
}

// IfElse constructs a conditional expression selecting between a consequence
// and an alternative.
func IfElse(condition BoolExpr, consequence UintExpr, alternative UintExpr) UintExpr {
	return NewUint(&UintIfElse{condition, consequence, alternative}, sameWidth(consequence, alternative))
}

func (*UintIfElse) isUintTerm() {}

// Lisp implementation for UintTerm interface.
func (p *UintIfElse) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("if"),
		p.Condition.Lisp(),
		p.Consequence.Lisp(),
		p.Alternative.Lisp(),
	})
}
