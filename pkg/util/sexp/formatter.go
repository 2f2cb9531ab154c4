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

import "strings"

// Formatter produces a human-readable rendering of S-Expressions which aims
// to fit within a given maximum line width.  Lists which fit on the current
// line are printed inline; lists which do not are broken after their head
// symbol, with subsequent elements indented one level.
type Formatter struct {
	// Maximum desired width
	maxWidth uint
	// Indentation unit (number of spaces per level)
	indent uint
}

// NewFormatter constructs a new formatter which aims to fit its output within
// a given width.
func NewFormatter(width uint) *Formatter {
	return &Formatter{width, 2}
}

// Format a given S-Expression, producing a string terminated by a newline.
func (p *Formatter) Format(sexp SExp) string {
	var builder strings.Builder
	//
	p.format(sexp, 0, &builder)
	builder.WriteString("\n")
	//
	return builder.String()
}

func (p *Formatter) format(sexp SExp, depth uint, builder *strings.Builder) {
	var prefix = depth * p.indent
	// Attempt inline rendering first.
	if line := sexp.String(true); prefix+uint(len(line)) <= p.maxWidth {
		builder.WriteString(line)
		return
	}
	// Doesn't fit, hence must be a list worth splitting.
	list := sexp.AsList()
	//
	if list == nil || list.Len() <= 1 {
		// Nothing sensible to split.
		builder.WriteString(sexp.String(true))
		return
	}
	//
	builder.WriteString("(")
	builder.WriteString(list.Get(0).String(true))
	//
	for i := 1; i < list.Len(); i++ {
		builder.WriteString("\n")
		builder.WriteString(strings.Repeat(" ", int(prefix+p.indent)))
		p.format(list.Get(i), depth+1, builder)
	}
	//
	builder.WriteString(")")
}
