package erlang

import (
	"github.com/ilya-klyuchnikov/caramel/ast"
)

type Name interface {
	_name()
}

// Local is a bound variable reference.
type Local struct {
	Name ast.Identifier
}

func (Local) _name() {}

// Global is an atom used as a function reference.
type Global struct {
	Name ast.Identifier
}

func (Global) _name() {}

// Qualified is a module-qualified function reference.
type Qualified struct {
	Module ast.Identifier
	Name   ast.Identifier
}

func (Qualified) _name() {}

// Macro references are never translatable.
type Macro struct {
	Name ast.Identifier
}

func (Macro) _name() {}
