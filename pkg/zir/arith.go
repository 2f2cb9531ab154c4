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

// UintAdd represents the addition of two unsigned integer expressions.
type UintAdd struct {
	Left  UintExpr
	Right UintExpr
}

// UintSub represents the subtraction of one unsigned integer expression from
// another.
type UintSub struct {
	Left  UintExpr
	Right UintExpr
}

// UintMul represents the multiplication of two unsigned integer expressions.
type UintMul struct {
	Left  UintExpr
	Right UintExpr
}

// Sum adds two expressions together.
func Sum(left UintExpr, right UintExpr) UintExpr {
	return NewUint(&UintAdd{left, right}, sameWidth(left, right))
}

// Subtract one expression from another.
func Subtract(left UintExpr, right UintExpr) UintExpr {
	return NewUint(&UintSub{left, right}, sameWidth(left, right))
}

// Product multiplies two expressions together.
func Product(left UintExpr, right UintExpr) UintExpr {
	return NewUint(&UintMul{left, right}, sameWidth(left, right))
}

func (*UintAdd) isUintTerm() {}
func (*UintSub) isUintTerm() {}
func (*UintMul) isUintTerm() {}

// Lisp implementation for UintTerm interface.
func (p *UintAdd) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("+"), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for UintTerm interface.
func (p *UintSub) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("-"), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for UintTerm interface.
func (p *UintMul) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("*"), p.Left.Lisp(), p.Right.Lisp()})
}
