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

// Statement represents a single statement within a ZIR function body.
type Statement interface {
	// Lisp converts this statement into a simple S-Expression, for example
	// so it can be printed.
	Lisp() sexp.SExp
	//
	isStatement()
}

// Definition assigns the value of an expression to a fresh variable.
type Definition struct {
	Var  Variable
	Expr Expr
}

// MultiDefinition assigns the results of a function call to one or more
// fresh variables.
type MultiDefinition struct {
	Vars []Variable
	Call FunctionCall
}

// FunctionCall identifies an external function together with its arguments
// and result types.
type FunctionCall struct {
	Name    string
	Args    []Expr
	Returns []Type
}

// Assertion constrains two expressions to be equal.
type Assertion struct {
	Left  Expr
	Right Expr
}

// Return yields the final results of the enclosing function.
type Return struct {
	Exprs []Expr
}

func (*Definition) isStatement()      {}
func (*MultiDefinition) isStatement() {}
func (*Assertion) isStatement()       {}
func (*Return) isStatement()          {}

// Lisp implementation for Statement interface.
func (p *Definition) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("define"),
		sexp.NewSymbol(p.Var.Name),
		p.Expr.Lisp(),
	})
}

// Lisp implementation for Statement interface.
func (p *MultiDefinition) Lisp() sexp.SExp {
	vars := sexp.EmptyList()
	//
	for _, v := range p.Vars {
		vars.Append(sexp.NewSymbol(v.Name))
	}
	//
	call := sexp.NewList([]sexp.SExp{sexp.NewSymbol(p.Call.Name)})
	//
	for _, arg := range p.Call.Args {
		call.Append(arg.Lisp())
	}
	//
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("define"), vars, call})
}

// Lisp implementation for Statement interface.
func (p *Assertion) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("assert"),
		sexp.NewList([]sexp.SExp{sexp.NewSymbol("=="), p.Left.Lisp(), p.Right.Lisp()}),
	})
}

// Lisp implementation for Statement interface.
func (p *Return) Lisp() sexp.SExp {
	list := sexp.NewList([]sexp.SExp{sexp.NewSymbol("return")})
	//
	for _, e := range p.Exprs {
		list.Append(e.Lisp())
	}
	//
	return list
}
