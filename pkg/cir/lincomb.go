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
package cir

import (
	"strings"

	"github.com/consensys/go-zirc/pkg/util/field"
)

// Term is a single scaled wire within a linear combination.
type Term[F field.Element[F]] struct {
	Variable    Variable
	Coefficient F
}

// LinComb represents a linear combination of wires, i.e. a sum of scaled
// wires.  The empty combination represents zero.
type LinComb[F field.Element[F]] []Term[F]

// NewLinComb constructs a linear combination from its terms.
func NewLinComb[F field.Element[F]](terms ...Term[F]) LinComb[F] {
	return LinComb[F](terms)
}

// Summand constructs the single-wire combination coefficient * variable.
func Summand[F field.Element[F]](coefficient F, variable Variable) LinComb[F] {
	return LinComb[F]{{variable, coefficient}}
}

// FromVariable constructs the combination 1 * variable.
func FromVariable[F field.Element[F]](variable Variable) LinComb[F] {
	return Summand(field.One[F](), variable)
}

// Constant constructs the combination value * ~one.
func Constant[F field.Element[F]](value F) LinComb[F] {
	return Summand(value, One())
}

// IsZero reports whether this combination is identically zero.
func (p LinComb[F]) IsZero() bool {
	return len(p) == 0
}

func (p LinComb[F]) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	var builder strings.Builder
	//
	for i, term := range p {
		if i != 0 {
			builder.WriteString(" + ")
		}
		//
		if term.Coefficient.IsOne() {
			builder.WriteString(term.Variable.String())
		} else {
			builder.WriteString(term.Coefficient.String())
			builder.WriteString(" * ")
			builder.WriteString(term.Variable.String())
		}
	}
	//
	return builder.String()
}

// QuadComb represents the product of two linear combinations, the most
// general left-hand side a rank-1 constraint permits.
type QuadComb[F field.Element[F]] struct {
	Left  LinComb[F]
	Right LinComb[F]
}

// Product constructs the quadratic combination left * right.
func Product[F field.Element[F]](left LinComb[F], right LinComb[F]) QuadComb[F] {
	return QuadComb[F]{left, right}
}

// FromLinear lifts a linear combination into a (degenerate) quadratic one by
// multiplying with the constant-one wire.
func FromLinear[F field.Element[F]](lin LinComb[F]) QuadComb[F] {
	return QuadComb[F]{FromVariable[F](One()), lin}
}

func (p QuadComb[F]) String() string {
	return "(" + p.Left.String() + ") * (" + p.Right.String() + ")"
}
