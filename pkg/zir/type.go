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

import "fmt"

// Type describes the underlying type of a ZIR expression or variable.  At
// this level of the pipeline only three families remain: field elements,
// booleans and unsigned integers of a fixed bitwidth.
type Type interface {
	fmt.Stringer
	//
	isType()
}

// FieldType represents the native prime-field type.
type FieldType struct{}

// BoolType represents the boolean type.
type BoolType struct{}

// UintType represents an unsigned integer type of a given bitwidth.
type UintType struct {
	Width uint
}

func (FieldType) isType() {}
func (BoolType) isType()  {}
func (UintType) isType()  {}

func (FieldType) String() string { return "field" }

func (BoolType) String() string { return "bool" }

func (t UintType) String() string { return fmt.Sprintf("u%d", t.Width) }

// Variable represents a named, typed variable within a ZIR program.
type Variable struct {
	Name string
	Type Type
}

// NewVariable constructs a variable of the given name and type.
func NewVariable(name string, datatype Type) Variable {
	return Variable{name, datatype}
}

// UintVariable constructs an unsigned integer variable of the given width.
func UintVariable(name string, width uint) Variable {
	return Variable{name, UintType{width}}
}

func (v Variable) String() string {
	return fmt.Sprintf("%s: %s", v.Name, v.Type.String())
}

// Parameter represents a formal parameter of a ZIR function.
type Parameter struct {
	Variable Variable
	// Private indicates the parameter is part of the secret witness, rather
	// than the public statement.
	Private bool
}
