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
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Json_RoundTrip(t *testing.T) {
	program := Program{Function{
		Name: "main",
		Params: []Parameter{
			{UintVariable("a", 32), true},
			{UintVariable("b", 32), true},
		},
		Statements: []Statement{
			&Definition{
				UintVariable("c", 32),
				Sum(Var("a", 32), Var("b", 32)),
			},
			&Assertion{
				Var("c", 32),
				Const(75, 32),
			},
			&Return{[]Expr{
				IfElse(BoolVar("flag"), Var("c", 32), Const(0, 32)),
			}},
		},
		Returns: []Type{UintType{32}},
	}}
	//
	bytes, err := ProgramToJsonBytes(&program)
	require.NoError(t, err)
	//
	parsed, err := ProgramFromJsonBytes(bytes)
	require.NoError(t, err)
	// compare via the canonical rendering
	require.Equal(t, program.String(), parsed.String())
}

func Test_Json_Metadata_RoundTrip(t *testing.T) {
	expr := Var("x", 32).WithMeta(WithMax64(42).Reduce(true))
	//
	program := Program{Function{
		Name:       "main",
		Statements: []Statement{&Return{[]Expr{expr}}},
		Returns:    []Type{UintType{32}},
	}}
	//
	bytes, err := ProgramToJsonBytes(&program)
	require.NoError(t, err)
	//
	parsed, err := ProgramFromJsonBytes(bytes)
	require.NoError(t, err)
	//
	ret := parsed.Main.Statements[0].(*Return)
	meta := ret.Exprs[0].(UintExpr).Meta
	//
	require.NotNil(t, meta)
	require.Equal(t, uint64(42), meta.Max.Uint64())
	require.True(t, meta.ShouldReduce)
}

func Test_Json_Malformed(t *testing.T) {
	// empty statement
	_, err := ProgramFromJsonBytes([]byte(`{"main": {"name": "main", "statements": [{}]}}`))
	require.Error(t, err)
	// unknown type kind
	_, err = ProgramFromJsonBytes([]byte(
		`{"main": {"name": "main", "returns": [{"kind": "u256"}]}}`))
	require.Error(t, err)
}
