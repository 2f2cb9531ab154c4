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

// UintLeftShift represents an unsigned integer expression shifted left by a
// (non-uint) amount.
type UintLeftShift struct {
	Arg UintExpr
	By  FieldExpr
}

// UintRightShift represents an unsigned integer expression shifted right by
// a (non-uint) amount.
type UintRightShift struct {
	Arg UintExpr
	By  FieldExpr
}

// ShiftLeft constructs a left shift of a given expression.
func ShiftLeft(arg UintExpr, by FieldExpr) UintExpr {
	return NewUint(&UintLeftShift{arg, by}, arg.Width)
}

// ShiftRight constructs a right shift of a given expression.
func ShiftRight(arg UintExpr, by FieldExpr) UintExpr {
	return NewUint(&UintRightShift{arg, by}, arg.Width)
}

func (*UintLeftShift) isUintTerm()  {}
func (*UintRightShift) isUintTerm() {}

// Lisp implementation for UintTerm interface.
func (p *UintLeftShift) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("<<"), p.Arg.Lisp(), p.By.Lisp()})
}

// Lisp implementation for UintTerm interface.
func (p *UintRightShift) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol(">>"), p.Arg.Lisp(), p.By.Lisp()})
}
