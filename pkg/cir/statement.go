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
	"fmt"
	"strings"

	"github.com/consensys/go-zirc/pkg/util/field"
)

// Statement represents a single statement of a flattened circuit.
type Statement[F field.Element[F]] interface {
	fmt.Stringer
	//
	isStatement()
}

// Constraint enforces the rank-1 equality Quad == Lin over the field.
type Constraint[F field.Element[F]] struct {
	Quad QuadComb[F]
	Lin  LinComb[F]
	// Message is an optional diagnostic reported when the constraint fails
	// at witness time.
	Message string
}

// Directive instructs the witness generator how to solve for the given output
// wires.  Directives carry no proving semantics.
type Directive[F field.Element[F]] struct {
	Inputs  []LinComb[F]
	Outputs []Variable
	Solver  string
}

// Log records a debugging message interpolating the given combinations.
// Like directives, logs carry no proving semantics.
type Log[F field.Element[F]] struct {
	Format    string
	Arguments []LinComb[F]
}

func (*Constraint[F]) isStatement() {}
func (*Directive[F]) isStatement()  {}
func (*Log[F]) isStatement()        {}

func (p *Constraint[F]) String() string {
	if p.Message != "" {
		return fmt.Sprintf("%s == %s  // %s", p.Quad.String(), p.Lin.String(), p.Message)
	}
	//
	return fmt.Sprintf("%s == %s", p.Quad.String(), p.Lin.String())
}

func (p *Directive[F]) String() string {
	var (
		inputs  = make([]string, len(p.Inputs))
		outputs = make([]string, len(p.Outputs))
	)
	//
	for i, in := range p.Inputs {
		inputs[i] = in.String()
	}
	//
	for i, out := range p.Outputs {
		outputs[i] = out.String()
	}
	//
	return fmt.Sprintf("# %s = %s(%s)", strings.Join(outputs, ", "), p.Solver, strings.Join(inputs, ", "))
}

func (p *Log[F]) String() string {
	return fmt.Sprintf("# log %q", p.Format)
}
