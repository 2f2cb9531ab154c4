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
	"strings"

	"github.com/consensys/go-zirc/pkg/util/sexp"
)

// Function represents a single (flattened) ZIR function: a list of formal
// parameters followed by a straight-line sequence of statements.
type Function struct {
	Name       string
	Params     []Parameter
	Statements []Statement
	Returns    []Type
}

// Program represents a complete ZIR program.  After inlining, only the main
// function remains.
type Program struct {
	Main Function
}

// Lisp converts a function into an S-Expression of the form
// (defn name (params...) stmts...).
func (p *Function) Lisp() sexp.SExp {
	params := sexp.EmptyList()
	//
	for _, param := range p.Params {
		params.Append(sexp.NewSymbol(param.Variable.String()))
	}
	//
	list := sexp.NewList([]sexp.SExp{sexp.NewSymbol("defn"), sexp.NewSymbol(p.Name), params})
	//
	for _, stmt := range p.Statements {
		list.Append(stmt.Lisp())
	}
	//
	return list
}

// Lisp converts a program into an S-Expression.
func (p *Program) Lisp() sexp.SExp {
	return p.Main.Lisp()
}

// Format renders this program, aiming to fit within a given line width.
func (p *Program) Format(width uint) string {
	formatter := sexp.NewFormatter(width)
	//
	var builder strings.Builder
	//
	builder.WriteString(formatter.Format(p.Main.Lisp()))
	//
	return builder.String()
}

func (p *Program) String() string {
	return p.Lisp().String(false)
}
