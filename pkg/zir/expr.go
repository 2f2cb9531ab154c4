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

import (
	"math/big"

	"github.com/consensys/go-zirc/pkg/util/sexp"
)

// Expr represents an arbitrary ZIR expression: a field expression, a boolean
// expression or an unsigned integer expression.
type Expr interface {
	// Lisp converts this expression into a simple S-Expression, for example
	// so it can be printed.
	Lisp() sexp.SExp
}

// ============================================================================
// Field Expressions
// ============================================================================

// FieldExpr represents an expression evaluating to a raw field element.
// Observe that field expressions are never folded by the range optimiser;
// they simply pass through it untouched.
type FieldExpr interface {
	Expr
	//
	isFieldExpr()
}

// FieldValue represents a field constant, held as an exact unbounded integer
// in the range [0, modulus).
type FieldValue struct {
	Val big.Int
}

// FieldIdent represents a reference to a field-typed variable.
type FieldIdent struct {
	Name string
}

// FieldConst constructs a field constant from a given unbounded integer.
func FieldConst(val big.Int) *FieldValue {
	return &FieldValue{val}
}

// FieldConst64 constructs a field constant from a given small value.
func FieldConst64(val uint64) *FieldValue {
	var v big.Int
	//
	v.SetUint64(val)
	//
	return &FieldValue{v}
}

// FieldVar constructs a reference to a field-typed variable.
func FieldVar(name string) *FieldIdent {
	return &FieldIdent{name}
}

func (*FieldValue) isFieldExpr() {}
func (*FieldIdent) isFieldExpr() {}

// Lisp implementation for Expr interface.
func (p *FieldValue) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Val.String())
}

// Lisp implementation for Expr interface.
func (p *FieldIdent) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

// ============================================================================
// Boolean Expressions
// ============================================================================

// BoolExpr represents an expression evaluating to a boolean, as used for the
// condition of a conditional expression.
type BoolExpr interface {
	Expr
	//
	isBoolExpr()
}

// BoolValue represents a boolean constant.
type BoolValue struct {
	Val bool
}

// BoolIdent represents a reference to a boolean variable.
type BoolIdent struct {
	Name string
}

// UintEq represents an equality test between two unsigned integer
// expressions.
type UintEq struct {
	Left  UintExpr
	Right UintExpr
}

// FieldEq represents an equality test between two field expressions.
type FieldEq struct {
	Left  FieldExpr
	Right FieldExpr
}

// BoolAnd represents the conjunction of two boolean expressions.
type BoolAnd struct {
	Left  BoolExpr
	Right BoolExpr
}

// BoolNot represents the negation of a boolean expression.
type BoolNot struct {
	Arg BoolExpr
}

// BoolConst constructs a boolean constant.
func BoolConst(val bool) *BoolValue {
	return &BoolValue{val}
}

// BoolVar constructs a reference to a boolean variable.
func BoolVar(name string) *BoolIdent {
	return &BoolIdent{name}
}

func (*BoolValue) isBoolExpr() {}
func (*BoolIdent) isBoolExpr() {}
func (*UintEq) isBoolExpr()    {}
func (*FieldEq) isBoolExpr()   {}
func (*BoolAnd) isBoolExpr()   {}
func (*BoolNot) isBoolExpr()   {}

// Lisp implementation for Expr interface.
func (p *BoolValue) Lisp() sexp.SExp {
	if p.Val {
		return sexp.NewSymbol("true")
	}
	//
	return sexp.NewSymbol("false")
}

// Lisp implementation for Expr interface.
func (p *BoolIdent) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

// Lisp implementation for Expr interface.
func (p *UintEq) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("=="), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for Expr interface.
func (p *FieldEq) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("=="), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for Expr interface.
func (p *BoolAnd) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("&&"), p.Left.Lisp(), p.Right.Lisp()})
}

// Lisp implementation for Expr interface.
func (p *BoolNot) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("!"), p.Arg.Lisp()})
}
