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
	"strconv"
	"strings"
)

// Variable identifies a single wire of a flattened circuit.  Wires fall into
// three families: the constant-one wire, the public output wires and the
// internal wires.  All three are packed into a single signed identifier such
// that outputs sort before the one wire, which sorts before internals.
type Variable struct {
	id int
}

// NewVariable constructs the ith internal wire.
func NewVariable(index uint) Variable {
	return Variable{int(index) + 1}
}

// One returns the constant-one wire.
func One() Variable {
	return Variable{0}
}

// Output constructs the ith public output wire.
func Output(index uint) Variable {
	return Variable{-(int(index) + 1)}
}

// IsOne reports whether this is the constant-one wire.
func (p Variable) IsOne() bool {
	return p.id == 0
}

// Cmp provides the canonical wire ordering (outputs, one, internals).
func (p Variable) Cmp(other Variable) int {
	switch {
	case p.id < other.id:
		return -1
	case p.id > other.id:
		return 1
	default:
		return 0
	}
}

func (p Variable) String() string {
	switch {
	case p.id == 0:
		return "~one"
	case p.id > 0:
		return fmt.Sprintf("_%d", p.id-1)
	default:
		return fmt.Sprintf("~out_%d", -p.id-1)
	}
}

// ParseVariable reconstructs a wire from its textual name, as used within
// serialised programs.
func ParseVariable(name string) (Variable, error) {
	switch {
	case name == "~one":
		return One(), nil
	case strings.HasPrefix(name, "~out_"):
		index, err := strconv.ParseUint(name[5:], 10, 32)
		//
		if err != nil {
			return Variable{}, fmt.Errorf("malformed output wire %q", name)
		}
		//
		return Output(uint(index)), nil
	case strings.HasPrefix(name, "_"):
		index, err := strconv.ParseUint(name[1:], 10, 32)
		//
		if err != nil {
			return Variable{}, fmt.Errorf("malformed wire %q", name)
		}
		//
		return NewVariable(uint(index)), nil
	default:
		return Variable{}, fmt.Errorf("unknown wire %q", name)
	}
}
