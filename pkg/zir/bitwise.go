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

// UintXor represents the bitwise exclusive-or of two unsigned integer
// expressions.
type UintXor struct {
	Left  UintExpr
	Right UintExpr
}

// UintAnd represents the bitwise conjunction of two unsigned integer
// expressions.
type UintAnd struct {
	Left  UintExpr
	Right UintExpr
}

// UintOr represents the bitwise disjunction of two unsigned integer
// expressions.
type UintOr struct {
	Left  UintExpr
	Right UintExpr
}

// UintNot represents the bitwise complement of an unsigned integer
// expression.
type UintNot struct {
	Arg UintExpr
}

// Xor constructs the bitwise exclusive-or of two expressions.
func Xor(left UintExpr, right UintExpr) UintExpr {
	return NewUint(&UintXor{left, right}, sameWidth(left, right))
}

// And constructs the bitwise conjunction of two expressions.
func And(left UintExpr, right UintExpr) UintExpr {
	return NewUint(&UintAnd{left, right}, sameWidth(left, right))
}

// Or constructs the bitwise disjunction of two expressions.
func Or(left UintExpr, right UintExpr) UintExpr {
	return NewUint(&UintOr{left, right}, sameWidth(left, right))
}

// Not constructs the bitwise complement of an expression.
func Not(arg UintExpr) UintExpr {
	return NewUint(&UintNot{arg}, arg.Width)
}

func (*UintXor) isUintTerm() {}
func (*UintAnd) isUintTerm() {}
func (*UintOr) isUintTerm()  {}
func (*UintNot) isUintTerm() {}

// Lisp implementation for UintTerm interface.
func (p *UintXor) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("^"), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for UintTerm interface.
func (p *UintAnd) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("&"), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for UintTerm interface.
func (p *UintOr) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("|"), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for UintTerm interface.
func (p *UintNot) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("~"), p.Arg.Lisp()})
}
