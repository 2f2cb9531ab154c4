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
	"fmt"
	"math/big"

	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/math"
	"github.com/consensys/go-zirc/pkg/zir"
	log "github.com/sirupsen/logrus"
)

// u32FromBits identifies the composition builtin whose single result is
// known, by construction, to be bounded by 2^32 - 1.
const u32FromBits = "_U32_FROM_BITS"

// Optimizer tracks, for every unsigned integer expression within a program,
// the tightest provable upper bound on its true (unreduced) value, and marks
// the points at which a range reduction must be inserted to stop bounds
// escaping the safe range of the proving field.  Reductions are expensive,
// hence a reduction is only ever inserted when the bound would otherwise
// grow beyond what the field can safely represent.
type Optimizer[F field.Element[F]] struct {
	// bounds maps each defined variable to its last registered metadata.
	bounds map[varKey]*zir.Metadata
	// reductions counts the reductions forced so far (for logging only).
	reductions uint
}

// varKey identifies a tracked variable by name and declared bitwidth.
type varKey struct {
	name  string
	width uint
}

// NewOptimizer constructs an optimizer for a fresh pass invocation.
func NewOptimizer[F field.Element[F]]() *Optimizer[F] {
	return &Optimizer[F]{bounds: make(map[varKey]*zir.Metadata)}
}

// Optimize runs the range optimiser over a given program, returning the
// structurally equivalent program in which every unsigned integer expression
// carries resolved metadata and every required reduction point is marked.
func Optimize[F field.Element[F]](program zir.Program) zir.Program {
	return NewOptimizer[F]().Optimize(program)
}

// Optimize implementation, using the variable bounds accumulated so far.
func (p *Optimizer[F]) Optimize(program zir.Program) zir.Program {
	main := p.foldFunction(program.Main)
	//
	log.Debugf("range optimiser inserted %d reduction(s)", p.reductions)
	//
	return zir.Program{Main: main}
}

func (p *Optimizer[F]) foldFunction(fn zir.Function) zir.Function {
	var params = make([]zir.Parameter, len(fn.Params))
	//
	for i, param := range fn.Params {
		params[i] = p.foldParameter(param)
	}
	//
	var stmts = make([]zir.Statement, len(fn.Statements))
	//
	for i, stmt := range fn.Statements {
		stmts[i] = p.foldStatement(stmt)
	}
	//
	return zir.Function{Name: fn.Name, Params: params, Statements: stmts, Returns: fn.Returns}
}

// foldParameter registers an unsigned integer parameter as canonical: its
// bound is exactly 2^width - 1, with no pending reduction (circuit inputs
// are assumed already in range by construction).
func (p *Optimizer[F]) foldParameter(param zir.Parameter) zir.Parameter {
	if t, ok := param.Variable.Type.(zir.UintType); ok {
		max := math.Pow2m1(t.Width)
		//
		p.register(param.Variable, zir.WithMax(&max))
	}
	//
	return param
}

//nolint:gocyclo
func (p *Optimizer[F]) foldStatement(stmt zir.Statement) zir.Statement {
	switch s := stmt.(type) {
	case *zir.Definition:
		expr := p.foldExpression(s.Expr)
		// The stored value is trusted to be exactly its computed bound, hence
		// no reduction obligation attaches to the definition itself; whether
		// a consumer must reduce is decided independently at each use site.
		if ue, ok := expr.(zir.UintExpr); ok {
			ue = forceNoReduce(ue)
			p.register(s.Var, ue.Meta)
			expr = ue
		}
		//
		return &zir.Definition{Var: s.Var, Expr: expr}
	case *zir.MultiDefinition:
		return p.foldMultiDefinition(s)
	case *zir.Assertion:
		left := p.foldExpression(s.Left)
		right := p.foldExpression(s.Right)
		// Comparisons require canonical representations on both sides.
		if ul, ok := left.(zir.UintExpr); ok {
			if ur, ok := right.(zir.UintExpr); ok {
				return &zir.Assertion{Left: p.forceReduce(ul), Right: p.forceReduce(ur)}
			}
		}
		//
		return &zir.Assertion{Left: left, Right: right}
	case *zir.Return:
		var exprs = make([]zir.Expr, len(s.Exprs))
		// Returned circuit outputs must be canonical.
		for i, e := range s.Exprs {
			if ue, ok := e.(zir.UintExpr); ok {
				exprs[i] = p.forceReduce(p.FoldUintExpression(ue))
			} else {
				exprs[i] = p.foldExpression(e)
			}
		}
		//
		return &zir.Return{Exprs: exprs}
	default:
		panic("unreachable")
	}
}

// foldMultiDefinition handles a definition whose right-hand side is a call.
// The 32-bit composition builtin is special-cased: its single result is
// always bounded by 2^32 - 1 and its arguments pass through untouched.  Any
// other call has its arguments resolved, but no result bound is predicted
// here.
func (p *Optimizer[F]) foldMultiDefinition(s *zir.MultiDefinition) zir.Statement {
	if s.Call.Name == u32FromBits {
		if len(s.Vars) != 1 {
			panic(fmt.Sprintf("%s must define exactly one variable, not %d", u32FromBits, len(s.Vars)))
		}
		//
		max := math.Pow2m1(32)
		p.register(s.Vars[0], zir.WithMax(&max))
		//
		return s
	}
	//
	var args = make([]zir.Expr, len(s.Call.Args))
	//
	for i, arg := range s.Call.Args {
		args[i] = p.foldExpression(arg)
	}
	//
	return &zir.MultiDefinition{
		Vars: s.Vars,
		Call: zir.FunctionCall{Name: s.Call.Name, Args: args, Returns: s.Call.Returns},
	}
}

// foldExpression resolves any unsigned integer sub-expressions of a given
// expression.  Field expressions pass through untouched, as this pass does
// not fold them.
func (p *Optimizer[F]) foldExpression(expr zir.Expr) zir.Expr {
	switch e := expr.(type) {
	case zir.UintExpr:
		return p.FoldUintExpression(e)
	case zir.BoolExpr:
		return p.foldBoolExpression(e)
	default:
		return expr
	}
}

func (p *Optimizer[F]) foldBoolExpression(expr zir.BoolExpr) zir.BoolExpr {
	switch e := expr.(type) {
	case *zir.UintEq:
		return &zir.UintEq{
			Left:  p.FoldUintExpression(e.Left),
			Right: p.FoldUintExpression(e.Right),
		}
	case *zir.BoolAnd:
		return &zir.BoolAnd{
			Left:  p.foldBoolExpression(e.Left),
			Right: p.foldBoolExpression(e.Right),
		}
	case *zir.BoolNot:
		return &zir.BoolNot{Arg: p.foldBoolExpression(e.Arg)}
	default:
		return expr
	}
}

// FoldUintExpression resolves the bound metadata of a given unsigned integer
// expression, recursively resolving its children first.  An expression which
// already carries metadata is returned unchanged.
//
//nolint:gocyclo
func (p *Optimizer[F]) FoldUintExpression(e zir.UintExpr) zir.UintExpr {
	if e.IsResolved() {
		return e
	}
	//
	var (
		// Number of bits needed to represent the field modulus.
		requiredBits = field.RequiredBits[F]()
		// Largest bitwidth at which every field element is uniquely
		// representable.
		maxWidth = requiredBits - 1
		width    = e.Width
		// Bounds may accumulate freely up to (but excluding) this limit.
		limit = math.Pow2(maxWidth)
		// Largest canonical value at this width.
		rangeMax = math.Pow2m1(width)
	)
	// Width must leave room to combine two canonical values multiplicatively.
	if width >= maxWidth/2 {
		panic(fmt.Sprintf("bitwidth u%d too large for %d-bit field", width, requiredBits))
	}
	//
	switch t := e.Term.(type) {
	case *zir.UintValue:
		return e.WithMeta(zir.ExactValue(t.Val))
	case *zir.UintIdent:
		meta, ok := p.bounds[varKey{t.Name, width}]
		//
		if !ok {
			panic(fmt.Sprintf("variable should have been defined: %s", t.Name))
		}
		//
		return e.WithMeta(meta)
	case *zir.UintAdd:
		left := p.FoldUintExpression(t.Left)
		right := p.FoldUintExpression(t.Right)
		//
		redLeft, redRight, max := escalate(math.CheckedAdd,
			&left.Meta.Max, &rangeMax, &right.Meta.Max, &rangeMax, &limit)
		//
		left, right = p.applyReductions(left, right, redLeft, redRight)
		//
		return zir.Sum(left, right).WithMeta(zir.WithMax(&max))
	case *zir.UintSub:
		return p.foldSub(t, width, &rangeMax, &limit)
	case *zir.UintMul:
		left := p.FoldUintExpression(t.Left)
		right := p.FoldUintExpression(t.Right)
		//
		redLeft, redRight, max := escalate(math.CheckedMul,
			&left.Meta.Max, &rangeMax, &right.Meta.Max, &rangeMax, &limit)
		//
		left, right = p.applyReductions(left, right, redLeft, redRight)
		//
		return zir.Product(left, right).WithMeta(zir.WithMax(&max))
	case *zir.UintXor:
		left := p.forceReduce(p.FoldUintExpression(t.Left))
		right := p.forceReduce(p.FoldUintExpression(t.Right))
		//
		return zir.Xor(left, right).WithMeta(zir.WithMax(&rangeMax))
	case *zir.UintAnd:
		left := p.forceReduce(p.FoldUintExpression(t.Left))
		right := p.forceReduce(p.FoldUintExpression(t.Right))
		//
		return zir.And(left, right).WithMeta(zir.WithMax(&rangeMax))
	case *zir.UintOr:
		left := p.forceReduce(p.FoldUintExpression(t.Left))
		right := p.forceReduce(p.FoldUintExpression(t.Right))
		//
		return zir.Or(left, right).WithMeta(zir.WithMax(&rangeMax))
	case *zir.UintNot:
		arg := p.forceReduce(p.FoldUintExpression(t.Arg))
		//
		return zir.Not(arg).WithMeta(zir.WithMax(&rangeMax))
	case *zir.UintLeftShift:
		arg := p.forceReduce(p.FoldUintExpression(t.Arg))
		// The shifted result may spill outside the canonical range, hence the
		// consumer must reduce it before further use.
		meta := zir.WithMax(&rangeMax).Reduce(true)
		//
		return zir.ShiftLeft(arg, t.By).WithMeta(meta)
	case *zir.UintRightShift:
		arg := p.forceReduce(p.FoldUintExpression(t.Arg))
		//
		return zir.ShiftRight(arg, t.By).WithMeta(zir.WithMax(&rangeMax))
	case *zir.UintIfElse:
		consequence := p.FoldUintExpression(t.Consequence)
		alternative := p.FoldUintExpression(t.Alternative)
		// Bound is already tight, hence no reduction is needed.
		max := &consequence.Meta.Max
		//
		if alternative.Meta.Max.Cmp(max) > 0 {
			max = &alternative.Meta.Max
		}
		//
		return zir.IfElse(t.Condition, consequence, alternative).WithMeta(zir.WithMax(max))
	default:
		panic("unreachable")
	}
}

// foldSub resolves a subtraction.  Since the true value of left - right may
// borrow, the bound is computed through an offset scheme: an offset of
// 2^max(rightBits, width) is added to keep the encoded result non-negative,
// hence the resulting bound is always at least 2^width.
func (p *Optimizer[F]) foldSub(t *zir.UintSub, width uint, rangeMax *big.Int, limit *big.Int) zir.UintExpr {
	left := p.FoldUintExpression(t.Left)
	right := p.FoldUintExpression(t.Right)
	//
	var (
		rightBits = right.Meta.BitWidth()
		offset    = math.Pow2(max(rightBits, width))
		// Offset applying once the right operand has been reduced.
		targetOffset = math.Pow2(width)
	)
	//
	redLeft, redRight, bound := escalate(math.CheckedAdd,
		&left.Meta.Max, rangeMax, &offset, &targetOffset, limit)
	//
	left, right = p.applyReductions(left, right, redLeft, redRight)
	//
	return zir.Subtract(left, right).WithMeta(zir.WithMax(&bound))
}

// register associates a variable with its latest metadata, replacing any
// prior entry wholesale.
func (p *Optimizer[F]) register(v zir.Variable, meta *zir.Metadata) {
	t, ok := v.Type.(zir.UintType)
	//
	if !ok {
		panic(fmt.Sprintf("cannot register bound for non-uint variable %s", v.String()))
	}
	//
	p.bounds[varKey{v.Name, t.Width}] = meta
}

func (p *Optimizer[F]) applyReductions(left zir.UintExpr, right zir.UintExpr,
	redLeft bool, redRight bool) (zir.UintExpr, zir.UintExpr) {
	//
	if redLeft {
		left = p.forceReduce(left)
	}
	//
	if redRight {
		right = p.forceReduce(right)
	}
	//
	return left, right
}

// forceReduce marks an expression as requiring a range reduction before its
// value is consumed.  The bound itself is unchanged.
func (p *Optimizer[F]) forceReduce(e zir.UintExpr) zir.UintExpr {
	if !e.Meta.ShouldReduce {
		p.reductions++
		//
		log.Debugf("forcing reduction of u%d expression (max %s)", e.Width, e.Meta.Max.String())
	}
	//
	e.Meta = e.Meta.Reduce(true)
	//
	return e
}

// forceNoReduce marks an expression as consumable at its full (unreduced)
// bound.
func forceNoReduce(e zir.UintExpr) zir.UintExpr {
	e.Meta = e.Meta.Reduce(false)
	//
	return e
}
