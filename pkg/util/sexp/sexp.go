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
package sexp

import (
	"strings"
	"unicode"
)

// SExp is an S-Expression: either a List of zero or more S-Expressions, or a
// Symbol.
type SExp interface {
	// AsList checks whether this S-Expression is a list and, if so, returns
	// it.  Otherwise, it returns nil.
	AsList() *List
	// AsSymbol checks whether this S-Expression is a symbol and, if so,
	// returns it.  Otherwise, it returns nil.
	AsSymbol() *Symbol
	// String generates a string representation which may (may not) be quoted.
	// Quoting is used to manage symbol names which contain whitespace
	// characters and braces, etc.
	String(quote bool) string
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*List)(nil)

// EmptyList creates an empty list.
func EmptyList() *List {
	return &List{}
}

// NewList creates a new list from a given array of S-Expressions.
func NewList(elements []SExp) *List {
	return &List{elements}
}

// AsList returns the given list.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil for a list.
func (l *List) AsSymbol() *Symbol { return nil }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this list
func (l *List) Get(i int) SExp { return l.Elements[i] }

// Append a new element onto this list.
func (l *List) Append(element SExp) {
	l.Elements = append(l.Elements, element)
}

func (l *List) String(quote bool) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, e := range l.Elements {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(e.String(quote))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating symbol.
type Symbol struct {
	Value string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Symbol)(nil)

// NewSymbol creates a new symbol from a given string.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

// AsList returns nil for a symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns the given symbol.
func (s *Symbol) AsSymbol() *Symbol { return s }

func (s *Symbol) String(quote bool) string {
	if quote && needsQuoting(s.Value) {
		return "\"" + s.Value + "\""
	}
	//
	return s.Value
}

func needsQuoting(value string) bool {
	for _, c := range value {
		if unicode.IsSpace(c) || c == '(' || c == ')' {
			return true
		}
	}
	//
	return false
}
