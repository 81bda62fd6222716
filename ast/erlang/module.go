package erlang

import (
	"github.com/ilya-klyuchnikov/caramel/ast"
)

// Clause is one head+body alternative of a function or fun literal.
type Clause struct {
	Params []Pattern
	Body   Expression
}

type FunDecl struct {
	Name    ast.Identifier
	Clauses []Clause
}

type Module struct {
	Name  ast.Identifier
	Funcs []FunDecl
}
