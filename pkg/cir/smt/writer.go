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

// Package smt renders a flattened circuit as an SMT-LIB2 problem over the
// integers.  Every wire becomes an integer constant and every rank-1
// constraint becomes an equality modulo the field prime, so the circuit is
// satisfiable exactly when the conjunction is.
package smt

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-zirc/pkg/cir"
	"github.com/consensys/go-zirc/pkg/util/field"
)

// Writer renders a given program as SMT-LIB2 via io.WriterTo.
type Writer[F field.Element[F]] struct {
	Prog *cir.Prog[F]
}

// NewWriter constructs a writer for a given program.
func NewWriter[F field.Element[F]](prog *cir.Prog[F]) *Writer[F] {
	return &Writer[F]{prog}
}

// WriteTo implements io.WriterTo, returning the number of bytes written.
func (p *Writer[F]) WriteTo(w io.Writer) (int64, error) {
	var (
		cw        = countingWriter{writer: w}
		variables = p.Prog.Variables()
	)
	//
	cw.printf("; Auto generated by go-zirc\n")
	cw.printf("; Number of circuit variables: %d\n", len(variables))
	cw.printf("; Number of equalities: %d\n", len(p.Prog.Statements))
	//
	cw.printf("(declare-const |~prime| Int)\n")
	//
	for _, v := range variables {
		cw.printf("(declare-const |%s| Int)\n", v.String())
	}
	//
	cw.printf("(assert (and\n")
	cw.printf("(= |~prime| %s)\n", field.Modulus[F]().String())
	cw.printf("(= |~one| 1)\n")
	//
	for _, s := range p.Prog.Statements {
		cw.printf("%s\n", statement[F](s))
	}
	//
	cw.printf("))")
	//
	return cw.total, cw.err
}

func (p *Writer[F]) String() string {
	var builder strings.Builder
	//
	_, _ = p.WriteTo(&builder)
	//
	return builder.String()
}

// statement renders a single statement.  Only constraints contribute to the
// problem; directives and logs render empty (leaving a blank line, so the
// statement count stated in the header still matches).
func statement[F field.Element[F]](s cir.Statement[F]) string {
	if c, ok := s.(*cir.Constraint[F]); ok {
		return fmt.Sprintf("(= (mod %s |~prime|) (mod %s |~prime|))",
			quadComb(c.Quad), linComb(c.Lin))
	}
	//
	return ""
}

func quadComb[F field.Element[F]](quad cir.QuadComb[F]) string {
	return fmt.Sprintf("(* %s %s)", linComb(quad.Left), linComb(quad.Right))
}

func linComb[F field.Element[F]](lin cir.LinComb[F]) string {
	if lin.IsZero() {
		return "0"
	}
	//
	if len(lin) == 1 {
		return term(lin[0])
	}
	//
	var builder strings.Builder
	//
	builder.WriteString("(+")
	//
	for _, t := range lin {
		builder.WriteString(" ")
		builder.WriteString(term(t))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func term[F field.Element[F]](t cir.Term[F]) string {
	return fmt.Sprintf("(* |%s| %s)", t.Variable.String(), t.Coefficient.Text(10))
}

// countingWriter accumulates the byte count and first error across writes,
// keeping WriteTo free of per-line error plumbing.
type countingWriter struct {
	writer io.Writer
	total  int64
	err    error
}

func (p *countingWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	//
	n, err := fmt.Fprintf(p.writer, format, args...)
	//
	p.total += int64(n)
	p.err = err
}
