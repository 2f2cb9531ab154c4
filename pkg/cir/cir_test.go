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
	"testing"

	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/field/bn254"
	"github.com/stretchr/testify/require"
)

func Test_Variable_Names(t *testing.T) {
	checkName(t, One(), "~one")
	checkName(t, NewVariable(0), "_0")
	checkName(t, NewVariable(7), "_7")
	checkName(t, Output(0), "~out_0")
	checkName(t, Output(3), "~out_3")
}

func checkName(t *testing.T, v Variable, expected string) {
	t.Helper()
	//
	if v.String() != expected {
		t.Errorf("got %s, expected %s", v.String(), expected)
	}
	// names parse back to the same wire
	parsed, err := ParseVariable(expected)
	//
	if err != nil {
		t.Errorf("failed parsing %s: %v", expected, err)
	} else if parsed != v {
		t.Errorf("%s parsed to %s", expected, parsed.String())
	}
}

func Test_Variable_Malformed(t *testing.T) {
	for _, name := range []string{"", "x", "~out_", "_", "_abc", "~two"} {
		if _, err := ParseVariable(name); err == nil {
			t.Errorf("expected error parsing %q", name)
		}
	}
}

func Test_Variable_Ordering(t *testing.T) {
	// outputs sort before the one wire, which sorts before internals
	ordered := []Variable{Output(1), Output(0), One(), NewVariable(0), NewVariable(1)}
	//
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Cmp(ordered[i]) >= 0 {
			t.Errorf("%s should sort before %s", ordered[i-1].String(), ordered[i].String())
		}
	}
}

func Test_Prog_Variables(t *testing.T) {
	prog := Prog[bn254.Element]{
		Arguments:   []Parameter{{NewVariable(0), true}},
		ReturnCount: 1,
		Statements: []Statement[bn254.Element]{
			&Constraint[bn254.Element]{
				Quad: Product(FromVariable[bn254.Element](NewVariable(0)), FromVariable[bn254.Element](NewVariable(1))),
				Lin:  FromVariable[bn254.Element](Output(0)),
			},
		},
	}
	//
	variables := prog.Variables()
	expected := []Variable{Output(0), One(), NewVariable(0), NewVariable(1)}
	//
	require.Equal(t, expected, variables)
}

func Test_Prog_JsonRoundTrip(t *testing.T) {
	two := field.Uint64[bn254.Element](2)
	//
	prog := Prog[bn254.Element]{
		Arguments:   []Parameter{{NewVariable(0), true}, {NewVariable(1), false}},
		ReturnCount: 1,
		Statements: []Statement[bn254.Element]{
			&Constraint[bn254.Element]{
				Quad: FromLinear(NewLinComb(
					Term[bn254.Element]{NewVariable(0), two},
					Term[bn254.Element]{One(), field.One[bn254.Element]()},
				)),
				Lin: FromVariable[bn254.Element](Output(0)),
			},
			&Directive[bn254.Element]{
				Inputs:  []LinComb[bn254.Element]{FromVariable[bn254.Element](NewVariable(0))},
				Outputs: []Variable{NewVariable(1)},
				Solver:  "bits32",
			},
			&Log[bn254.Element]{Format: "x = {}", Arguments: []LinComb[bn254.Element]{
				FromVariable[bn254.Element](NewVariable(0)),
			}},
		},
	}
	//
	bytes, err := ProgToJsonBytes(&prog)
	require.NoError(t, err)
	//
	parsed, err := ProgFromJsonBytes[bn254.Element](bytes)
	require.NoError(t, err)
	//
	require.Equal(t, prog, parsed)
}

func Test_Prog_JsonMalformed(t *testing.T) {
	inputs := []string{
		`{"statements": [{}]}`,
		`{"statements": [{"constraint": {"quad": {"left": [], "right": []}, "lin": [{"variable": "bad", "coefficient": "1"}]}}]}`,
		`{"statements": [{"constraint": {"quad": {"left": [], "right": []}, "lin": [{"variable": "_0", "coefficient": "xyz"}]}}]}`,
		`{"arguments": [{"variable": "nope"}]}`,
	}
	//
	for _, input := range inputs {
		_, err := ProgFromJsonBytes[bn254.Element]([]byte(input))
		require.Error(t, err, input)
	}
}
