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
	"strconv"

	"github.com/consensys/go-zirc/pkg/util/sexp"
)

// UintValue represents an unsigned integer literal.
type UintValue struct {
	Val uint64
}

// UintIdent represents a reference to an unsigned integer variable.
type UintIdent struct {
	Name string
}

// Const constructs a literal of the given width.
func Const(val uint64, width uint) UintExpr {
	return NewUint(&UintValue{val}, width)
}

// Var constructs a variable reference of the given width.
func Var(name string, width uint) UintExpr {
	return NewUint(&UintIdent{name}, width)
}

func (*UintValue) isUintTerm() {}
func (*UintIdent) isUintTerm() {}

// Lisp implementation for UintTerm interface.
func (p *UintValue) Lisp() sexp.SExp {
	return sexp.NewSymbol(strconv.FormatUint(p.Val, 10))
}

// Lisp implementation for UintTerm interface.
func (p *UintIdent) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}
