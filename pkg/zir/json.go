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
	"encoding/json"
	"fmt"
	"math/big"
)

// ProgramFromJsonBytes parses a ZIR program from its JSON representation.
func ProgramFromJsonBytes(bytes []byte) (Program, error) {
	var (
		jprog   jsonProgram
		program Program
	)
	//
	if err := json.Unmarshal(bytes, &jprog); err != nil {
		return program, err
	}
	//
	return jprog.to()
}

// ProgramToJsonBytes renders a ZIR program into its JSON representation.
func ProgramToJsonBytes(program *Program) ([]byte, error) {
	return json.MarshalIndent(fromProgram(program), "", "  ")
}

// ============================================================================
// JSON structures
// ============================================================================

type jsonProgram struct {
	Main jsonFunction `json:"main"`
}

type jsonFunction struct {
	Name       string          `json:"name"`
	Params     []jsonParameter `json:"parameters,omitempty"`
	Statements []jsonStatement `json:"statements,omitempty"`
	Returns    []jsonType      `json:"returns,omitempty"`
}

type jsonParameter struct {
	Name    string   `json:"name"`
	Type    jsonType `json:"type"`
	Private bool     `json:"private,omitempty"`
}

type jsonType struct {
	Kind  string `json:"kind"`
	Width uint   `json:"width,omitempty"`
}

type jsonVariable struct {
	Name string   `json:"name"`
	Type jsonType `json:"type"`
}

type jsonStatement struct {
	Define *jsonDefinition      `json:"define,omitempty"`
	Multi  *jsonMultiDefinition `json:"multi,omitempty"`
	Assert *jsonAssertion       `json:"assert,omitempty"`
	Return *jsonReturn          `json:"return,omitempty"`
}

type jsonDefinition struct {
	Var  jsonVariable `json:"var"`
	Expr jsonExpr     `json:"expr"`
}

type jsonMultiDefinition struct {
	Vars    []jsonVariable `json:"vars"`
	Name    string         `json:"name"`
	Args    []jsonExpr     `json:"args,omitempty"`
	Returns []jsonType     `json:"returns,omitempty"`
}

type jsonAssertion struct {
	Left  jsonExpr `json:"left"`
	Right jsonExpr `json:"right"`
}

type jsonReturn struct {
	Exprs []jsonExpr `json:"exprs,omitempty"`
}

type jsonExpr struct {
	Field *jsonFieldExpr `json:"field,omitempty"`
	Bool  *jsonBoolExpr  `json:"bool,omitempty"`
	Uint  *jsonUintExpr  `json:"uint,omitempty"`
}

type jsonFieldExpr struct {
	Value *string `json:"value,omitempty"`
	Ident *string `json:"ident,omitempty"`
}

type jsonBoolExpr struct {
	Value   *bool          `json:"value,omitempty"`
	Ident   *string        `json:"ident,omitempty"`
	UintEq  *jsonUintPair  `json:"uint_eq,omitempty"`
	FieldEq *jsonFieldPair `json:"field_eq,omitempty"`
	And     *jsonBoolPair  `json:"and,omitempty"`
	Not     *jsonBoolExpr  `json:"not,omitempty"`
}

type jsonUintExpr struct {
	Width  uint          `json:"width"`
	Value  *uint64       `json:"value,omitempty"`
	Ident  *string       `json:"ident,omitempty"`
	Add    *jsonUintPair `json:"add,omitempty"`
	Sub    *jsonUintPair `json:"sub,omitempty"`
	Mul    *jsonUintPair `json:"mul,omitempty"`
	Xor    *jsonUintPair `json:"xor,omitempty"`
	And    *jsonUintPair `json:"and,omitempty"`
	Or     *jsonUintPair `json:"or,omitempty"`
	Not    *jsonUintExpr `json:"not,omitempty"`
	Lshift *jsonShift    `json:"lshift,omitempty"`
	Rshift *jsonShift    `json:"rshift,omitempty"`
	IfElse *jsonIfElse   `json:"if_else,omitempty"`
	// resolved metadata (absent until the optimiser has run)
	Max    *string `json:"max,omitempty"`
	Reduce *bool   `json:"reduce,omitempty"`
}

type jsonUintPair struct {
	Left  jsonUintExpr `json:"left"`
	Right jsonUintExpr `json:"right"`
}

type jsonFieldPair struct {
	Left  jsonFieldExpr `json:"left"`
	Right jsonFieldExpr `json:"right"`
}

type jsonBoolPair struct {
	Left  jsonBoolExpr `json:"left"`
	Right jsonBoolExpr `json:"right"`
}

type jsonShift struct {
	Arg jsonUintExpr  `json:"arg"`
	By  jsonFieldExpr `json:"by"`
}

type jsonIfElse struct {
	Condition   jsonBoolExpr `json:"condition"`
	Consequence jsonUintExpr `json:"consequence"`
	Alternative jsonUintExpr `json:"alternative"`
}

// ============================================================================
// Decoding
// ============================================================================

func (p jsonProgram) to() (Program, error) {
	main, err := p.Main.to()
	//
	return Program{main}, err
}

func (p jsonFunction) to() (Function, error) {
	var fn = Function{Name: p.Name}
	//
	for _, jp := range p.Params {
		datatype, err := jp.Type.to()
		if err != nil {
			return fn, err
		}
		//
		fn.Params = append(fn.Params, Parameter{Variable{jp.Name, datatype}, jp.Private})
	}
	//
	for _, js := range p.Statements {
		stmt, err := js.to()
		if err != nil {
			return fn, err
		}
		//
		fn.Statements = append(fn.Statements, stmt)
	}
	//
	for _, jt := range p.Returns {
		datatype, err := jt.to()
		if err != nil {
			return fn, err
		}
		//
		fn.Returns = append(fn.Returns, datatype)
	}
	//
	return fn, nil
}

func (p jsonType) to() (Type, error) {
	switch p.Kind {
	case "field":
		return FieldType{}, nil
	case "bool":
		return BoolType{}, nil
	case "uint":
		if p.Width == 0 {
			return nil, fmt.Errorf("uint type missing width")
		}
		//
		return UintType{p.Width}, nil
	default:
		return nil, fmt.Errorf("unknown type kind: %q", p.Kind)
	}
}

func (p jsonVariable) to() (Variable, error) {
	datatype, err := p.Type.to()
	//
	return Variable{p.Name, datatype}, err
}

func (p jsonStatement) to() (Statement, error) {
	switch {
	case p.Define != nil:
		v, err := p.Define.Var.to()
		if err != nil {
			return nil, err
		}
		//
		expr, err := p.Define.Expr.to()
		if err != nil {
			return nil, err
		}
		//
		return &Definition{v, expr}, nil
	case p.Multi != nil:
		return p.Multi.to()
	case p.Assert != nil:
		left, err := p.Assert.Left.to()
		if err != nil {
			return nil, err
		}
		//
		right, err := p.Assert.Right.to()
		if err != nil {
			return nil, err
		}
		//
		return &Assertion{left, right}, nil
	case p.Return != nil:
		var exprs []Expr
		//
		for _, je := range p.Return.Exprs {
			expr, err := je.to()
			if err != nil {
				return nil, err
			}
			//
			exprs = append(exprs, expr)
		}
		//
		return &Return{exprs}, nil
	default:
		return nil, fmt.Errorf("empty statement")
	}
}

func (p *jsonMultiDefinition) to() (Statement, error) {
	var stmt MultiDefinition
	//
	for _, jv := range p.Vars {
		v, err := jv.to()
		if err != nil {
			return nil, err
		}
		//
		stmt.Vars = append(stmt.Vars, v)
	}
	//
	stmt.Call.Name = p.Name
	//
	for _, ja := range p.Args {
		arg, err := ja.to()
		if err != nil {
			return nil, err
		}
		//
		stmt.Call.Args = append(stmt.Call.Args, arg)
	}
	//
	for _, jt := range p.Returns {
		datatype, err := jt.to()
		if err != nil {
			return nil, err
		}
		//
		stmt.Call.Returns = append(stmt.Call.Returns, datatype)
	}
	//
	return &stmt, nil
}

func (p jsonExpr) to() (Expr, error) {
	switch {
	case p.Field != nil:
		return p.Field.to()
	case p.Bool != nil:
		return p.Bool.to()
	case p.Uint != nil:
		return p.Uint.to()
	default:
		return nil, fmt.Errorf("empty expression")
	}
}

func (p *jsonFieldExpr) to() (FieldExpr, error) {
	switch {
	case p.Value != nil:
		var val big.Int
		//
		if _, ok := val.SetString(*p.Value, 10); !ok {
			return nil, fmt.Errorf("malformed field constant: %q", *p.Value)
		}
		//
		return &FieldValue{val}, nil
	case p.Ident != nil:
		return &FieldIdent{*p.Ident}, nil
	default:
		return nil, fmt.Errorf("empty field expression")
	}
}

func (p *jsonBoolExpr) to() (BoolExpr, error) {
	switch {
	case p.Value != nil:
		return &BoolValue{*p.Value}, nil
	case p.Ident != nil:
		return &BoolIdent{*p.Ident}, nil
	case p.UintEq != nil:
		left, err := p.UintEq.Left.to()
		if err != nil {
			return nil, err
		}
		//
		right, err := p.UintEq.Right.to()
		if err != nil {
			return nil, err
		}
		//
		return &UintEq{left, right}, nil
	case p.FieldEq != nil:
		left, err := p.FieldEq.Left.to()
		if err != nil {
			return nil, err
		}
		//
		right, err := p.FieldEq.Right.to()
		if err != nil {
			return nil, err
		}
		//
		return &FieldEq{left, right}, nil
	case p.And != nil:
		left, err := p.And.Left.to()
		if err != nil {
			return nil, err
		}
		//
		right, err := p.And.Right.to()
		if err != nil {
			return nil, err
		}
		//
		return &BoolAnd{left, right}, nil
	case p.Not != nil:
		arg, err := p.Not.to()
		//
		return &BoolNot{arg}, err
	default:
		return nil, fmt.Errorf("empty boolean expression")
	}
}

//nolint:gocyclo
func (p *jsonUintExpr) to() (UintExpr, error) {
	var (
		expr UintExpr
		err  error
	)
	//
	switch {
	case p.Value != nil:
		expr = Const(*p.Value, p.Width)
	case p.Ident != nil:
		expr = Var(*p.Ident, p.Width)
	case p.Add != nil:
		expr, err = p.Add.to(Sum)
	case p.Sub != nil:
		expr, err = p.Sub.to(Subtract)
	case p.Mul != nil:
		expr, err = p.Mul.to(Product)
	case p.Xor != nil:
		expr, err = p.Xor.to(Xor)
	case p.And != nil:
		expr, err = p.And.to(And)
	case p.Or != nil:
		expr, err = p.Or.to(Or)
	case p.Not != nil:
		var arg UintExpr
		//
		if arg, err = p.Not.to(); err == nil {
			expr = Not(arg)
		}
	case p.Lshift != nil:
		expr, err = p.Lshift.to(ShiftLeft)
	case p.Rshift != nil:
		expr, err = p.Rshift.to(ShiftRight)
	case p.IfElse != nil:
		expr, err = p.IfElse.to()
	default:
		return expr, fmt.Errorf("empty uint expression")
	}
	//
	if err != nil {
		return expr, err
	} else if expr.Width != p.Width {
		return expr, fmt.Errorf("inconsistent width (u%d vs u%d)", expr.Width, p.Width)
	}
	// Restore any resolved metadata.
	if p.Max != nil {
		var max big.Int
		//
		if _, ok := max.SetString(*p.Max, 10); !ok {
			return expr, fmt.Errorf("malformed bound: %q", *p.Max)
		}
		//
		meta := WithMax(&max)
		//
		if p.Reduce != nil {
			meta.ShouldReduce = *p.Reduce
		}
		//
		expr = expr.WithMeta(meta)
	}
	//
	return expr, nil
}

func (p *jsonUintPair) to(build func(UintExpr, UintExpr) UintExpr) (UintExpr, error) {
	var expr UintExpr
	//
	left, err := p.Left.to()
	if err != nil {
		return expr, err
	}
	//
	right, err := p.Right.to()
	if err != nil {
		return expr, err
	}
	//
	return build(left, right), nil
}

func (p *jsonShift) to(build func(UintExpr, FieldExpr) UintExpr) (UintExpr, error) {
	var expr UintExpr
	//
	arg, err := p.Arg.to()
	if err != nil {
		return expr, err
	}
	//
	by, err := p.By.to()
	if err != nil {
		return expr, err
	}
	//
	return build(arg, by), nil
}

func (p *jsonIfElse) to() (UintExpr, error) {
	var expr UintExpr
	//
	condition, err := p.Condition.to()
	if err != nil {
		return expr, err
	}
	//
	consequence, err := p.Consequence.to()
	if err != nil {
		return expr, err
	}
	//
	alternative, err := p.Alternative.to()
	if err != nil {
		return expr, err
	}
	//
	return IfElse(condition, consequence, alternative), nil
}

// ============================================================================
// Encoding
// ============================================================================

func fromProgram(program *Program) jsonProgram {
	return jsonProgram{fromFunction(&program.Main)}
}

func fromFunction(fn *Function) jsonFunction {
	var jfn = jsonFunction{Name: fn.Name}
	//
	for _, param := range fn.Params {
		jfn.Params = append(jfn.Params, jsonParameter{
			Name:    param.Variable.Name,
			Type:    fromType(param.Variable.Type),
			Private: param.Private,
		})
	}
	//
	for _, stmt := range fn.Statements {
		jfn.Statements = append(jfn.Statements, fromStatement(stmt))
	}
	//
	for _, datatype := range fn.Returns {
		jfn.Returns = append(jfn.Returns, fromType(datatype))
	}
	//
	return jfn
}

func fromType(datatype Type) jsonType {
	switch t := datatype.(type) {
	case FieldType:
		return jsonType{Kind: "field"}
	case BoolType:
		return jsonType{Kind: "bool"}
	case UintType:
		return jsonType{Kind: "uint", Width: t.Width}
	default:
		panic("unreachable")
	}
}

func fromVariable(v Variable) jsonVariable {
	return jsonVariable{v.Name, fromType(v.Type)}
}

func fromStatement(stmt Statement) jsonStatement {
	switch s := stmt.(type) {
	case *Definition:
		return jsonStatement{Define: &jsonDefinition{fromVariable(s.Var), fromExpr(s.Expr)}}
	case *MultiDefinition:
		var multi = jsonMultiDefinition{Name: s.Call.Name}
		//
		for _, v := range s.Vars {
			multi.Vars = append(multi.Vars, fromVariable(v))
		}
		//
		for _, arg := range s.Call.Args {
			multi.Args = append(multi.Args, fromExpr(arg))
		}
		//
		for _, datatype := range s.Call.Returns {
			multi.Returns = append(multi.Returns, fromType(datatype))
		}
		//
		return jsonStatement{Multi: &multi}
	case *Assertion:
		return jsonStatement{Assert: &jsonAssertion{fromExpr(s.Left), fromExpr(s.Right)}}
	case *Return:
		var ret jsonReturn
		//
		for _, e := range s.Exprs {
			ret.Exprs = append(ret.Exprs, fromExpr(e))
		}
		//
		return jsonStatement{Return: &ret}
	default:
		panic("unreachable")
	}
}

func fromExpr(expr Expr) jsonExpr {
	switch e := expr.(type) {
	case FieldExpr:
		fe := fromFieldExpr(e)
		return jsonExpr{Field: &fe}
	case BoolExpr:
		be := fromBoolExpr(e)
		return jsonExpr{Bool: &be}
	case UintExpr:
		ue := fromUintExpr(e)
		return jsonExpr{Uint: &ue}
	default:
		panic("unreachable")
	}
}

func fromFieldExpr(expr FieldExpr) jsonFieldExpr {
	switch e := expr.(type) {
	case *FieldValue:
		str := e.Val.String()
		return jsonFieldExpr{Value: &str}
	case *FieldIdent:
		return jsonFieldExpr{Ident: &e.Name}
	default:
		panic("unreachable")
	}
}

func fromBoolExpr(expr BoolExpr) jsonBoolExpr {
	switch e := expr.(type) {
	case *BoolValue:
		return jsonBoolExpr{Value: &e.Val}
	case *BoolIdent:
		return jsonBoolExpr{Ident: &e.Name}
	case *UintEq:
		return jsonBoolExpr{UintEq: &jsonUintPair{fromUintExpr(e.Left), fromUintExpr(e.Right)}}
	case *FieldEq:
		return jsonBoolExpr{FieldEq: &jsonFieldPair{fromFieldExpr(e.Left), fromFieldExpr(e.Right)}}
	case *BoolAnd:
		return jsonBoolExpr{And: &jsonBoolPair{fromBoolExpr(e.Left), fromBoolExpr(e.Right)}}
	case *BoolNot:
		arg := fromBoolExpr(e.Arg)
		return jsonBoolExpr{Not: &arg}
	default:
		panic("unreachable")
	}
}

func fromUintExpr(expr UintExpr) jsonUintExpr {
	var jexpr = jsonUintExpr{Width: expr.Width}
	//
	switch t := expr.Term.(type) {
	case *UintValue:
		jexpr.Value = &t.Val
	case *UintIdent:
		jexpr.Ident = &t.Name
	case *UintAdd:
		jexpr.Add = fromUintPair(t.Left, t.Right)
	case *UintSub:
		jexpr.Sub = fromUintPair(t.Left, t.Right)
	case *UintMul:
		jexpr.Mul = fromUintPair(t.Left, t.Right)
	case *UintXor:
		jexpr.Xor = fromUintPair(t.Left, t.Right)
	case *UintAnd:
		jexpr.And = fromUintPair(t.Left, t.Right)
	case *UintOr:
		jexpr.Or = fromUintPair(t.Left, t.Right)
	case *UintNot:
		arg := fromUintExpr(t.Arg)
		jexpr.Not = &arg
	case *UintLeftShift:
		jexpr.Lshift = &jsonShift{fromUintExpr(t.Arg), fromFieldExpr(t.By)}
	case *UintRightShift:
		jexpr.Rshift = &jsonShift{fromUintExpr(t.Arg), fromFieldExpr(t.By)}
	case *UintIfElse:
		jexpr.IfElse = &jsonIfElse{
			fromBoolExpr(t.Condition),
			fromUintExpr(t.Consequence),
			fromUintExpr(t.Alternative),
		}
	default:
		panic("unreachable")
	}
	//
	if expr.Meta != nil {
		max := expr.Meta.Max.String()
		jexpr.Max = &max
		jexpr.Reduce = &expr.Meta.ShouldReduce
	}
	//
	return jexpr
}

func fromUintPair(left UintExpr, right UintExpr) *jsonUintPair {
	return &jsonUintPair{fromUintExpr(left), fromUintExpr(right)}
}
