package ml

import (
	"fmt"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/common"
)

// List cells are ordinary variants of the target's list type.
const (
	NilTag  = ast.Identifier("nil")
	ConsTag = ast.Identifier("cons")
)

type Expression interface {
	fmt.Stringer
	_expression()
}

type Var struct {
	Name ast.QualifiedIdentifier
}

func (Var) _expression() {}

func (e Var) String() string {
	return fmt.Sprintf("Var(%s)", e.Name)
}

type Const struct {
	Value ast.ConstValue
}

func (Const) _expression() {}

func (e Const) String() string {
	return fmt.Sprintf("Const(%s)", e.Value)
}

type Let struct {
	Pattern Pattern
	Value   Expression
	Body    Expression
}

func (Let) _expression() {}

func (e Let) String() string {
	return fmt.Sprintf("Let(%s,%s,%s)", e.Pattern, e.Value, e.Body)
}

// Apply supplies exactly one argument; the target has no multi-argument
// application form.
type Apply struct {
	Func Expression
	Arg  Expression
}

func (Apply) _expression() {}

func (e Apply) String() string {
	return fmt.Sprintf("Apply(%s,%s)", e.Func, e.Arg)
}

type MatchCase struct {
	Pattern Pattern
	Body    Expression
}

func (c MatchCase) String() string {
	return fmt.Sprintf("%s->%s", c.Pattern, c.Body)
}

type Match struct {
	Subject Expression
	Cases   []MatchCase
}

func (Match) _expression() {}

func (e Match) String() string {
	return fmt.Sprintf("Match(%s,[%s])", e.Subject, common.Join(e.Cases, ";"))
}

type Tuple struct {
	Items []Expression
}

func (Tuple) _expression() {}

func (e Tuple) String() string {
	return fmt.Sprintf("Tuple(%s)", common.Join(e.Items, ","))
}

// Variant constructs a tagged value. A nil payload is a bare tag.
type Variant struct {
	Tag     ast.Identifier
	Payload Expression
}

func (Variant) _expression() {}

func (e Variant) String() string {
	if e.Payload == nil {
		return fmt.Sprintf("Variant(%s)", e.Tag)
	}
	return fmt.Sprintf("Variant(%s,%s)", e.Tag, e.Payload)
}

type Lambda struct {
	Param Pattern
	Body  Expression
}

func (Lambda) _expression() {}

func (e Lambda) String() string {
	return fmt.Sprintf("Lambda(%s,%s)", e.Param, e.Body)
}

// MatchLambda is a single-parameter function value that dispatches on its
// argument, one case per clause.
type MatchLambda struct {
	Cases []MatchCase
}

func (MatchLambda) _expression() {}

func (e MatchLambda) String() string {
	return fmt.Sprintf("MatchLambda([%s])", common.Join(e.Cases, ";"))
}

// Unit is the unit value.
func Unit() Expression {
	return Const{Value: ast.CUnit{}}
}

// NilList is the empty list constructor.
func NilList() Expression {
	return Variant{Tag: NilTag}
}

// ConsCell builds one cons cell; the payload is the (head, tail) pair.
func ConsCell(head, tail Expression) Expression {
	return Variant{Tag: ConsTag, Payload: Tuple{Items: []Expression{head, tail}}}
}
