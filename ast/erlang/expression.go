package erlang

import (
	"github.com/ilya-klyuchnikov/caramel/ast"
)

type Expression interface {
	_expression()
}

type Var struct {
	Name Name
}

func (Var) _expression() {}

type Const struct {
	Value ast.ConstValue
}

func (Const) _expression() {}

// Let is a single non-recursive binding.
type Let struct {
	Pattern Pattern
	Value   Expression
	Body    Expression
}

func (Let) _expression() {}

type Call struct {
	Func Expression
	Args []Expression
}

func (Call) _expression() {}

type List struct {
	Items []Expression
}

func (List) _expression() {}

// Cons builds a list from fixed head elements and a tail.
type Cons struct {
	Items []Expression
	Tail  Expression
}

func (Cons) _expression() {}

type CaseClause struct {
	Pattern Pattern
	Body    Expression
}

type Case struct {
	Subject Expression
	Cases   []CaseClause
}

func (Case) _expression() {}

type Tuple struct {
	Items []Expression
}

func (Tuple) _expression() {}

type Fun struct {
	Clauses []Clause
}

func (Fun) _expression() {}

// Spawn is a process-creation call; Fun is the spawned body.
type Spawn struct {
	Fun Expression
}

func (Spawn) _expression() {}

// Receive is a mailbox-receive block.
type Receive struct {
	Cases []CaseClause
}

func (Receive) _expression() {}
