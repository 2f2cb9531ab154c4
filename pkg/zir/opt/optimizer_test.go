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
package opt

import (
	"math/big"
	"os"
	"testing"

	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/field/bn254"
	"github.com/consensys/go-zirc/pkg/util/math"
	"github.com/consensys/go-zirc/pkg/zir"
)

// bounded constructs a resolved variable reference with a hand-specified
// bound, as produced by an earlier definition.
func bounded(name string, max *big.Int) zir.UintExpr {
	return zir.Var(name, 32).WithMeta(zir.WithMax(max))
}

func bounded64(name string, max uint64) zir.UintExpr {
	return zir.Var(name, 32).WithMeta(zir.WithMax64(max))
}

func fold(e zir.UintExpr) zir.UintExpr {
	return NewOptimizer[bn254.Element]().FoldUintExpression(e)
}

func checkMax(t *testing.T, e zir.UintExpr, expected *big.Int) {
	t.Helper()
	//
	if e.Meta == nil {
		t.Fatalf("expression not resolved")
	}
	//
	if e.Meta.Max.Cmp(expected) != 0 {
		t.Errorf("bound %s, expected %s", e.Meta.Max.String(), expected.String())
	}
}

func Test_Optimizer_Add(t *testing.T) {
	// max(left + right) == max(left) + max(right)
	res := fold(zir.Sum(bounded64("foo", 42), bounded64("foo", 33)))
	//
	checkMax(t, res, big.NewInt(75))
	//
	if res.Meta.ShouldReduce {
		t.Errorf("unexpected reduction")
	}
}

func Test_Optimizer_Sub(t *testing.T) {
	// left and right are smaller than the target
	res := fold(zir.Subtract(bounded64("a", 42), bounded64("b", 33)))
	// offset scheme: 2^32 + 42
	expected := math.Pow2(32)
	expected.Add(&expected, big.NewInt(42))
	//
	checkMax(t, res, &expected)
}

func Test_Optimizer_Sub_LargeOperands(t *testing.T) {
	// left and right larger than the target, but no readjustment required
	u64max := math.Pow2m1(64)
	//
	res := fold(zir.Subtract(bounded("a", &u64max), bounded("b", &u64max)))
	// 2^64 + (2^64 - 1)
	expected := math.Pow2(64)
	expected.Add(&expected, &u64max)
	//
	checkMax(t, res, &expected)
}

func Test_Optimizer_Sub_Escalation(t *testing.T) {
	// left bound is the largest value the field can safely accumulate, which
	// forces a reduction during readjustment
	leftMax := math.Pow2m1(field.RequiredBits[bn254.Element]() - 1)
	//
	res := fold(zir.Subtract(bounded("a", &leftMax), bounded64("b", 42)))
	// 2 * 2^32 - 1
	expected := math.Pow2(33)
	expected.Sub(&expected, big.NewInt(1))
	//
	checkMax(t, res, &expected)
	// left operand was reduced
	sub := res.Term.(*zir.UintSub)
	//
	if !sub.Left.Meta.ShouldReduce {
		t.Errorf("expected left operand to be reduced")
	}
}

func Test_Optimizer_Mul(t *testing.T) {
	res := fold(zir.Product(bounded64("a", 42), bounded64("b", 33)))
	//
	checkMax(t, res, big.NewInt(42*33))
}

func Test_Optimizer_Mul_Escalation(t *testing.T) {
	// both operands at the field's safe maximum forces both to be reduced
	opMax := math.Pow2m1(field.RequiredBits[bn254.Element]() - 1)
	//
	res := fold(zir.Product(bounded("a", &opMax), bounded("b", &opMax)))
	// (2^32 - 1)^2
	rangeMax := math.Pow2m1(32)
	//
	var expected big.Int
	expected.Mul(&rangeMax, &rangeMax)
	//
	checkMax(t, res, &expected)
	//
	mul := res.Term.(*zir.UintMul)
	//
	if !mul.Left.Meta.ShouldReduce || !mul.Right.Meta.ShouldReduce {
		t.Errorf("expected both operands to be reduced")
	}
}

func Test_Optimizer_IfElse(t *testing.T) {
	res := fold(zir.IfElse(zir.BoolConst(true), bounded64("a", 42), bounded64("b", 33)))
	// bound of either branch, regardless of the condition
	checkMax(t, res, big.NewInt(42))
	//
	if res.Meta.ShouldReduce {
		t.Errorf("unexpected reduction")
	}
}

func Test_Optimizer_Bitwise(t *testing.T) {
	rangeMax := math.Pow2m1(32)
	//
	for _, res := range []zir.UintExpr{
		fold(zir.Xor(bounded64("a", 5000), bounded64("b", 3))),
		fold(zir.And(bounded64("a", 5000), bounded64("b", 3))),
		fold(zir.Or(bounded64("a", 5000), bounded64("b", 3))),
		fold(zir.Not(bounded64("a", 5000))),
	} {
		// result is canonical at the target width, independent of operands
		checkMax(t, res, &rangeMax)
		//
		if res.Meta.ShouldReduce {
			t.Errorf("unexpected reduction of bitwise result")
		}
	}
}

func Test_Optimizer_Bitwise_ReducesOperands(t *testing.T) {
	res := fold(zir.Xor(bounded64("a", 5000), bounded64("b", 3)))
	//
	xor := res.Term.(*zir.UintXor)
	//
	if !xor.Left.Meta.ShouldReduce || !xor.Right.Meta.ShouldReduce {
		t.Errorf("expected both operands to be reduced")
	}
}

func Test_Optimizer_Shift(t *testing.T) {
	rangeMax := math.Pow2m1(32)
	//
	lsh := fold(zir.ShiftLeft(bounded64("a", 5000), zir.FieldConst64(2)))
	rsh := fold(zir.ShiftRight(bounded64("a", 5000), zir.FieldConst64(2)))
	//
	checkMax(t, lsh, &rangeMax)
	checkMax(t, rsh, &rangeMax)
	// a left shift must itself be reduced by its consumer
	if !lsh.Meta.ShouldReduce {
		t.Errorf("expected left shift result to require reduction")
	}
	//
	if rsh.Meta.ShouldReduce {
		t.Errorf("unexpected reduction of right shift result")
	}
	// shifted operands are always reduced
	if !lsh.Term.(*zir.UintLeftShift).Arg.Meta.ShouldReduce {
		t.Errorf("expected shifted operand to be reduced")
	}
}

func Test_Optimizer_Value(t *testing.T) {
	res := fold(zir.Const(42, 32))
	//
	checkMax(t, res, big.NewInt(42))
}

func Test_Optimizer_Idempotent(t *testing.T) {
	meta := zir.WithMax64(42)
	expr := zir.Var("foo", 32).WithMeta(meta)
	//
	res := fold(expr)
	// already-resolved expressions are returned unchanged
	if res.Meta != meta {
		t.Errorf("metadata was rederived")
	}
}

func Test_Optimizer_UndefinedVariable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for undefined variable")
		}
	}()
	//
	fold(zir.Var("ghost", 32))
}

func Test_Optimizer_WidthTooLarge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for oversized width")
		}
	}()
	//
	fold(zir.Const(0, 130))
}

// ============================================================================
// Statement-level canonicalisation
// ============================================================================

func optimizeMain(fn zir.Function) zir.Program {
	return Optimize[bn254.Element](zir.Program{Main: fn})
}

func Test_Optimizer_Parameter(t *testing.T) {
	// a uint parameter is registered at its canonical bound
	program := optimizeMain(zir.Function{
		Name:   "main",
		Params: []zir.Parameter{{Variable: zir.UintVariable("x", 32), Private: true}},
		Statements: []zir.Statement{
			&zir.Return{Exprs: []zir.Expr{zir.Var("x", 32)}},
		},
	})
	//
	ret := program.Main.Statements[0].(*zir.Return)
	expr := ret.Exprs[0].(zir.UintExpr)
	rangeMax := math.Pow2m1(32)
	//
	checkMax(t, expr, &rangeMax)
}

func Test_Optimizer_Return_Reduces(t *testing.T) {
	// returned outputs are always canonical, even when their defining
	// statement left them unreduced
	program := optimizeMain(zir.Function{
		Name:   "main",
		Params: []zir.Parameter{{Variable: zir.UintVariable("x", 32), Private: true}},
		Statements: []zir.Statement{
			&zir.Definition{
				Var:  zir.UintVariable("y", 32),
				Expr: zir.Sum(zir.Var("x", 32), zir.Const(1, 32)),
			},
			&zir.Return{Exprs: []zir.Expr{zir.Var("y", 32)}},
		},
	})
	//
	def := program.Main.Statements[0].(*zir.Definition)
	//
	if def.Expr.(zir.UintExpr).Meta.ShouldReduce {
		t.Errorf("defined value should not carry a reduction obligation")
	}
	//
	ret := program.Main.Statements[1].(*zir.Return)
	//
	if !ret.Exprs[0].(zir.UintExpr).Meta.ShouldReduce {
		t.Errorf("returned value must be reduced")
	}
}

func Test_Optimizer_Definition_Registers(t *testing.T) {
	// definitions propagate their bound to later uses
	program := optimizeMain(zir.Function{
		Name: "main",
		Statements: []zir.Statement{
			&zir.Definition{
				Var:  zir.UintVariable("y", 32),
				Expr: zir.Sum(zir.Const(42, 32), zir.Const(33, 32)),
			},
			&zir.Definition{
				Var:  zir.UintVariable("z", 32),
				Expr: zir.Sum(zir.Var("y", 32), zir.Const(1, 32)),
			},
		},
	})
	//
	def := program.Main.Statements[1].(*zir.Definition)
	//
	checkMax(t, def.Expr.(zir.UintExpr), big.NewInt(76))
}

func Test_Optimizer_Assertion_Reduces(t *testing.T) {
	program := optimizeMain(zir.Function{
		Name:   "main",
		Params: []zir.Parameter{{Variable: zir.UintVariable("x", 32), Private: true}},
		Statements: []zir.Statement{
			&zir.Assertion{Left: zir.Var("x", 32), Right: zir.Const(7, 32)},
		},
	})
	//
	assertion := program.Main.Statements[0].(*zir.Assertion)
	//
	left := assertion.Left.(zir.UintExpr)
	right := assertion.Right.(zir.UintExpr)
	//
	if !left.Meta.ShouldReduce || !right.Meta.ShouldReduce {
		t.Errorf("compared values must both be reduced")
	}
}

func Test_Optimizer_U32FromBits(t *testing.T) {
	program := optimizeMain(zir.Function{
		Name: "main",
		Statements: []zir.Statement{
			&zir.MultiDefinition{
				Vars: []zir.Variable{zir.UintVariable("y", 32)},
				Call: zir.FunctionCall{Name: "_U32_FROM_BITS", Returns: []zir.Type{zir.UintType{Width: 32}}},
			},
			&zir.Return{Exprs: []zir.Expr{zir.Var("y", 32)}},
		},
	})
	//
	ret := program.Main.Statements[1].(*zir.Return)
	rangeMax := math.Pow2m1(32)
	//
	checkMax(t, ret.Exprs[0].(zir.UintExpr), &rangeMax)
}

func Test_Optimizer_SampleProgram(t *testing.T) {
	bytes, err := os.ReadFile("../../../testdata/sum_zir.json")
	if err != nil {
		t.Fatal(err)
	}
	//
	program, err := zir.ProgramFromJsonBytes(bytes)
	if err != nil {
		t.Fatal(err)
	}
	//
	program = optimizeMain(program.Main)
	// z = x + y accumulates one bit past the canonical range
	def := program.Main.Statements[0].(*zir.Definition)
	expected := math.Pow2m1(33)
	expected.Sub(&expected, big.NewInt(1))
	//
	checkMax(t, def.Expr.(zir.UintExpr), &expected)
	// w = z ^ 255 forces z back into range
	xor := program.Main.Statements[1].(*zir.Definition).Expr.(zir.UintExpr)
	//
	if !xor.Term.(*zir.UintXor).Left.Meta.ShouldReduce {
		t.Errorf("expected xor operand to be reduced")
	}
	// returned w is canonical
	ret := program.Main.Statements[2].(*zir.Return)
	//
	if !ret.Exprs[0].(zir.UintExpr).Meta.ShouldReduce {
		t.Errorf("returned value must be reduced")
	}
}

func Test_Optimizer_UnknownCall_FoldsArguments(t *testing.T) {
	program := optimizeMain(zir.Function{
		Name:   "main",
		Params: []zir.Parameter{{Variable: zir.UintVariable("x", 32), Private: true}},
		Statements: []zir.Statement{
			&zir.MultiDefinition{
				Vars: []zir.Variable{zir.NewVariable("y", zir.FieldType{})},
				Call: zir.FunctionCall{
					Name: "_SOME_BUILTIN",
					Args: []zir.Expr{zir.Sum(zir.Var("x", 32), zir.Const(1, 32))},
				},
			},
		},
	})
	//
	multi := program.Main.Statements[0].(*zir.MultiDefinition)
	arg := multi.Call.Args[0].(zir.UintExpr)
	// 2^32 - 1 + 1
	expected := math.Pow2(32)
	//
	checkMax(t, arg, &expected)
}
