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
package smt

import (
	"os"
	"testing"

	"github.com/consensys/go-zirc/pkg/cir"
	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/field/bn254"
	"github.com/stretchr/testify/require"
)

// x * x == out, with a directive and a log thrown in to exercise the empty
// renderings.
func squareProg() cir.Prog[bn254.Element] {
	x := cir.FromVariable[bn254.Element](cir.NewVariable(0))
	out := cir.FromVariable[bn254.Element](cir.Output(0))
	//
	return cir.Prog[bn254.Element]{
		Arguments:   []cir.Parameter{{Variable: cir.NewVariable(0), Private: true}},
		ReturnCount: 1,
		Statements: []cir.Statement[bn254.Element]{
			&cir.Constraint[bn254.Element]{Quad: cir.Product(x, x), Lin: out},
			&cir.Directive[bn254.Element]{Inputs: []cir.LinComb[bn254.Element]{x},
				Outputs: []cir.Variable{cir.NewVariable(1)}, Solver: "bits32"},
			&cir.Log[bn254.Element]{Format: "x = {}"},
		},
	}
}

func Test_Smt_Golden(t *testing.T) {
	expected := `; Auto generated by go-zirc
; Number of circuit variables: 4
; Number of equalities: 3
(declare-const |~prime| Int)
(declare-const |~out_0| Int)
(declare-const |~one| Int)
(declare-const |_0| Int)
(declare-const |_1| Int)
(assert (and
(= |~prime| 21888242871839275222246405745257275088548364400416034343698204186575808495617)
(= |~one| 1)
(= (mod (* (* |_0| 1) (* |_0| 1)) |~prime|) (mod (* |~out_0| 1) |~prime|))


))`
	//
	prog := squareProg()
	//
	require.Equal(t, expected, NewWriter(&prog).String())
}

func Test_Smt_ZeroAndSum(t *testing.T) {
	two := field.Uint64[bn254.Element](2)
	// 0 * (2*_0 + 1*~one) == 0
	prog := cir.Prog[bn254.Element]{
		Statements: []cir.Statement[bn254.Element]{
			&cir.Constraint[bn254.Element]{
				Quad: cir.Product(
					cir.LinComb[bn254.Element]{},
					cir.NewLinComb(
						cir.Term[bn254.Element]{Variable: cir.NewVariable(0), Coefficient: two},
						cir.Term[bn254.Element]{Variable: cir.One(), Coefficient: field.One[bn254.Element]()},
					),
				),
				Lin: cir.LinComb[bn254.Element]{},
			},
		},
	}
	//
	output := NewWriter(&prog).String()
	//
	require.Contains(t, output,
		"(= (mod (* 0 (+ (* |_0| 2) (* |~one| 1))) |~prime|) (mod 0 |~prime|))")
}

func Test_Smt_SampleCircuit(t *testing.T) {
	bytes, err := os.ReadFile("../../../testdata/square_cir.json")
	require.NoError(t, err)
	//
	prog, err := cir.ProgFromJsonBytes[bn254.Element](bytes)
	require.NoError(t, err)
	// decoded circuit matches the in-memory one
	expected := squareProg()
	require.Equal(t, expected.String(), prog.String())
	//
	require.Equal(t, NewWriter(&expected).String(), NewWriter(&prog).String())
}

func Test_Smt_ModulusTracksField(t *testing.T) {
	prog := squareProg()
	output := NewWriter(&prog).String()
	//
	require.Contains(t, output, field.Modulus[bn254.Element]().String())
}
