package ml

import (
	"fmt"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/common"
)

type Pattern interface {
	fmt.Stringer
	_pattern()
}

type PAny struct {
}

func (PAny) _pattern() {}

func (p PAny) String() string {
	return "PAny()"
}

type PNamed struct {
	Name ast.Identifier
}

func (PNamed) _pattern() {}

func (p PNamed) String() string {
	return fmt.Sprintf("PNamed(%s)", p.Name)
}

type PConst struct {
	Value ast.ConstValue
}

func (PConst) _pattern() {}

func (p PConst) String() string {
	return fmt.Sprintf("PConst(%s)", p.Value)
}

type PTuple struct {
	Items []Pattern
}

func (PTuple) _pattern() {}

func (p PTuple) String() string {
	return fmt.Sprintf("PTuple(%s)", common.Join(p.Items, ","))
}

// PVariant matches a tagged value. A nil payload matches a bare tag.
type PVariant struct {
	Tag     ast.Identifier
	Payload Pattern
}

func (PVariant) _pattern() {}

func (p PVariant) String() string {
	if p.Payload == nil {
		return fmt.Sprintf("PVariant(%s)", p.Tag)
	}
	return fmt.Sprintf("PVariant(%s,%s)", p.Tag, p.Payload)
}

// UnitPattern matches the unit value.
func UnitPattern() Pattern {
	return PConst{Value: ast.CUnit{}}
}

// NilListPattern matches the empty list constructor.
func NilListPattern() Pattern {
	return PVariant{Tag: NilTag}
}

// ConsCellPattern matches one cons cell; the payload is the (head, tail) pair.
func ConsCellPattern(head, tail Pattern) Pattern {
	return PVariant{Tag: ConsTag, Payload: PTuple{Items: []Pattern{head, tail}}}
}
