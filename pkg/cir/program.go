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
	"sort"
	"strings"

	"github.com/consensys/go-zirc/pkg/util/field"
)

// Parameter represents a formal circuit input.
type Parameter struct {
	Variable Variable
	// Private indicates the input is part of the secret witness, rather than
	// the public statement.
	Private bool
}

// Prog represents a flattened circuit as a flat list of statements over
// numbered wires.
type Prog[F field.Element[F]] struct {
	Arguments   []Parameter
	ReturnCount uint
	Statements  []Statement[F]
}

// Constraints returns the proving statements of this program, skipping
// directives and logs.
func (p *Prog[F]) Constraints() []*Constraint[F] {
	var constraints []*Constraint[F]
	//
	for _, s := range p.Statements {
		if c, ok := s.(*Constraint[F]); ok {
			constraints = append(constraints, c)
		}
	}
	//
	return constraints
}

// Variables returns every wire mentioned anywhere in this program (arguments
// included) in canonical order.  The constant-one wire is always present.
func (p *Prog[F]) Variables() []Variable {
	seen := make(map[Variable]bool)
	seen[One()] = true
	//
	for _, arg := range p.Arguments {
		seen[arg.Variable] = true
	}
	//
	for i := uint(0); i < p.ReturnCount; i++ {
		seen[Output(i)] = true
	}
	//
	for _, s := range p.Statements {
		collectVariables[F](s, seen)
	}
	//
	var variables = make([]Variable, 0, len(seen))
	//
	for v := range seen {
		variables = append(variables, v)
	}
	//
	sort.Slice(variables, func(i, j int) bool {
		return variables[i].Cmp(variables[j]) < 0
	})
	//
	return variables
}

func collectVariables[F field.Element[F]](s Statement[F], seen map[Variable]bool) {
	switch t := s.(type) {
	case *Constraint[F]:
		collectLinComb(t.Quad.Left, seen)
		collectLinComb(t.Quad.Right, seen)
		collectLinComb(t.Lin, seen)
	case *Directive[F]:
		for _, in := range t.Inputs {
			collectLinComb(in, seen)
		}
		//
		for _, out := range t.Outputs {
			seen[out] = true
		}
	case *Log[F]:
		for _, arg := range t.Arguments {
			collectLinComb(arg, seen)
		}
	default:
		panic("unreachable")
	}
}

func collectLinComb[F field.Element[F]](lin LinComb[F], seen map[Variable]bool) {
	for _, term := range lin {
		seen[term.Variable] = true
	}
}

func (p *Prog[F]) String() string {
	var builder strings.Builder
	//
	for _, s := range p.Statements {
		builder.WriteString(s.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
