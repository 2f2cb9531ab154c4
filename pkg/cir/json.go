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
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/go-zirc/pkg/util/field"
)

// ProgFromJsonBytes parses a flattened circuit from its JSON representation,
// instantiating its coefficients in the given field.
func ProgFromJsonBytes[F field.Element[F]](bytes []byte) (Prog[F], error) {
	var (
		jprog jsonProg
		prog  Prog[F]
	)
	//
	if err := json.Unmarshal(bytes, &jprog); err != nil {
		return prog, err
	}
	//
	return to[F](jprog)
}

// ProgToJsonBytes renders a flattened circuit into its JSON representation.
func ProgToJsonBytes[F field.Element[F]](prog *Prog[F]) ([]byte, error) {
	return json.MarshalIndent(fromProg(prog), "", "  ")
}

// ============================================================================
// JSON structures
// ============================================================================

type jsonProg struct {
	Arguments   []jsonParameter `json:"arguments,omitempty"`
	ReturnCount uint            `json:"return_count"`
	Statements  []jsonStatement `json:"statements,omitempty"`
}

type jsonParameter struct {
	Variable string `json:"variable"`
	Private  bool   `json:"private,omitempty"`
}

type jsonStatement struct {
	Constraint *jsonConstraint `json:"constraint,omitempty"`
	Directive  *jsonDirective  `json:"directive,omitempty"`
	Log        *jsonLog        `json:"log,omitempty"`
}

type jsonConstraint struct {
	Quad    jsonQuadComb `json:"quad"`
	Lin     jsonLinComb  `json:"lin"`
	Message string       `json:"message,omitempty"`
}

type jsonDirective struct {
	Inputs  []jsonLinComb `json:"inputs,omitempty"`
	Outputs []string      `json:"outputs,omitempty"`
	Solver  string        `json:"solver"`
}

type jsonLog struct {
	Format    string        `json:"format"`
	Arguments []jsonLinComb `json:"arguments,omitempty"`
}

type jsonQuadComb struct {
	Left  jsonLinComb `json:"left"`
	Right jsonLinComb `json:"right"`
}

// jsonLinComb maps each wire name to its (decimal) coefficient.  A slice of
// pairs is used rather than a map, so term order survives round trips.
type jsonLinComb []jsonTerm

type jsonTerm struct {
	Variable    string `json:"variable"`
	Coefficient string `json:"coefficient"`
}

// ============================================================================
// Decoding
// ============================================================================

func to[F field.Element[F]](p jsonProg) (Prog[F], error) {
	var prog = Prog[F]{ReturnCount: p.ReturnCount}
	//
	for _, ja := range p.Arguments {
		v, err := ParseVariable(ja.Variable)
		if err != nil {
			return prog, err
		}
		//
		prog.Arguments = append(prog.Arguments, Parameter{v, ja.Private})
	}
	//
	for _, js := range p.Statements {
		stmt, err := toStatement[F](js)
		if err != nil {
			return prog, err
		}
		//
		prog.Statements = append(prog.Statements, stmt)
	}
	//
	return prog, nil
}

func toStatement[F field.Element[F]](p jsonStatement) (Statement[F], error) {
	switch {
	case p.Constraint != nil:
		left, err := toLinComb[F](p.Constraint.Quad.Left)
		if err != nil {
			return nil, err
		}
		//
		right, err := toLinComb[F](p.Constraint.Quad.Right)
		if err != nil {
			return nil, err
		}
		//
		lin, err := toLinComb[F](p.Constraint.Lin)
		if err != nil {
			return nil, err
		}
		//
		return &Constraint[F]{QuadComb[F]{left, right}, lin, p.Constraint.Message}, nil
	case p.Directive != nil:
		var directive = Directive[F]{Solver: p.Directive.Solver}
		//
		for _, jin := range p.Directive.Inputs {
			in, err := toLinComb[F](jin)
			if err != nil {
				return nil, err
			}
			//
			directive.Inputs = append(directive.Inputs, in)
		}
		//
		for _, jout := range p.Directive.Outputs {
			out, err := ParseVariable(jout)
			if err != nil {
				return nil, err
			}
			//
			directive.Outputs = append(directive.Outputs, out)
		}
		//
		return &directive, nil
	case p.Log != nil:
		var log = Log[F]{Format: p.Log.Format}
		//
		for _, jarg := range p.Log.Arguments {
			arg, err := toLinComb[F](jarg)
			if err != nil {
				return nil, err
			}
			//
			log.Arguments = append(log.Arguments, arg)
		}
		//
		return &log, nil
	default:
		return nil, fmt.Errorf("empty statement")
	}
}

func toLinComb[F field.Element[F]](p jsonLinComb) (LinComb[F], error) {
	var lin = make(LinComb[F], len(p))
	//
	for i, jt := range p {
		v, err := ParseVariable(jt.Variable)
		if err != nil {
			return nil, err
		}
		//
		var coefficient big.Int
		//
		if _, ok := coefficient.SetString(jt.Coefficient, 10); !ok || coefficient.Sign() < 0 {
			return nil, fmt.Errorf("malformed coefficient: %q", jt.Coefficient)
		}
		//
		lin[i] = Term[F]{v, field.BigInt[F](coefficient)}
	}
	//
	return lin, nil
}

// ============================================================================
// Encoding
// ============================================================================

func fromProg[F field.Element[F]](prog *Prog[F]) jsonProg {
	var jprog = jsonProg{ReturnCount: prog.ReturnCount}
	//
	for _, arg := range prog.Arguments {
		jprog.Arguments = append(jprog.Arguments, jsonParameter{arg.Variable.String(), arg.Private})
	}
	//
	for _, stmt := range prog.Statements {
		jprog.Statements = append(jprog.Statements, fromStatement[F](stmt))
	}
	//
	return jprog
}

func fromStatement[F field.Element[F]](stmt Statement[F]) jsonStatement {
	switch s := stmt.(type) {
	case *Constraint[F]:
		return jsonStatement{Constraint: &jsonConstraint{
			Quad:    jsonQuadComb{fromLinComb(s.Quad.Left), fromLinComb(s.Quad.Right)},
			Lin:     fromLinComb(s.Lin),
			Message: s.Message,
		}}
	case *Directive[F]:
		var directive = jsonDirective{Solver: s.Solver}
		//
		for _, in := range s.Inputs {
			directive.Inputs = append(directive.Inputs, fromLinComb(in))
		}
		//
		for _, out := range s.Outputs {
			directive.Outputs = append(directive.Outputs, out.String())
		}
		//
		return jsonStatement{Directive: &directive}
	case *Log[F]:
		var log = jsonLog{Format: s.Format}
		//
		for _, arg := range s.Arguments {
			log.Arguments = append(log.Arguments, fromLinComb(arg))
		}
		//
		return jsonStatement{Log: &log}
	default:
		panic("unreachable")
	}
}

func fromLinComb[F field.Element[F]](lin LinComb[F]) jsonLinComb {
	var jlin = make(jsonLinComb, len(lin))
	//
	for i, term := range lin {
		jlin[i] = jsonTerm{term.Variable.String(), term.Coefficient.Text(10)}
	}
	//
	return jlin
}
