package erlang

import (
	"github.com/ilya-klyuchnikov/caramel/ast"
)

type Pattern interface {
	_pattern()
}

type PAny struct {
}

func (PAny) _pattern() {}

type PNamed struct {
	Name ast.Identifier
}

func (PNamed) _pattern() {}

type PTuple struct {
	Items []Pattern
}

func (PTuple) _pattern() {}

type PList struct {
	Items []Pattern
}

func (PList) _pattern() {}

// PCons matches a list with fixed head elements and a tail.
type PCons struct {
	Items []Pattern
	Tail  Pattern
}

func (PCons) _pattern() {}

type PConst struct {
	Value ast.ConstValue
}

func (PConst) _pattern() {}
