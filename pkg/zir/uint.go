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
	"fmt"

	"github.com/consensys/go-zirc/pkg/util/sexp"
)

// UintExpr represents an unsigned integer expression, annotated with the
// bitwidth of its canonical range and (once the range optimiser has visited
// it) the metadata describing its provable upper bound.
type UintExpr struct {
	// Width is the canonical bitwidth of this expression, i.e. the range
	// [0, 2^Width - 1] its value occupies once reduced.
	Width uint
	// Term is the underlying operation.
	Term UintTerm
	// Meta is nil until this expression has been resolved.
	Meta *Metadata
}

// UintTerm represents the underlying operation of an unsigned integer
// expression.
type UintTerm interface {
	// Lisp converts this term into a simple S-Expression, for example so it
	// can be printed.
	Lisp() sexp.SExp
	//
	isUintTerm()
}

// NewUint annotates a given term with its canonical bitwidth.
func NewUint(term UintTerm, width uint) UintExpr {
	return UintExpr{Width: width, Term: term}
}

// WithMeta attaches resolved metadata to this expression.  Attaching
// metadata twice is an internal invariant violation.
func (e UintExpr) WithMeta(meta *Metadata) UintExpr {
	if e.Meta != nil {
		panic(fmt.Sprintf("metadata already attached (%s)", e.Meta.String()))
	}
	//
	e.Meta = meta
	//
	return e
}

// IsResolved reports whether this expression already carries metadata.
func (e UintExpr) IsResolved() bool {
	return e.Meta != nil
}

// Lisp implementation for Expr interface.
func (e UintExpr) Lisp() sexp.SExp {
	var inner = e.Term.Lisp()
	// Mark pending reductions explicitly.
	if e.Meta != nil && e.Meta.ShouldReduce {
		inner = sexp.NewList([]sexp.SExp{sexp.NewSymbol("reduce"), inner})
	}
	//
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol(fmt.Sprintf(":u%d", e.Width)),
		inner,
	})
}

// sameWidth enforces the typing assumption that both operands of a binary
// operator share one canonical bitwidth.
func sameWidth(left UintExpr, right UintExpr) uint {
	if left.Width != right.Width {
		panic(fmt.Sprintf("operand widths differ (u%d vs u%d)", left.Width, right.Width))
	}
	//
	return left.Width
}
