package ml

import (
	"fmt"
	"strings"

	"github.com/ilya-klyuchnikov/caramel/ast"
)

// Binding is one named value of a module's mutually-recursive group.
type Binding struct {
	Name  ast.Identifier
	Value Expression
}

func (b Binding) String() string {
	return fmt.Sprintf("%s = %s", b.Name, b.Value)
}

// Module is one ordered group of bindings. Every binding may reference
// every other regardless of position.
type Module struct {
	Name     ast.Identifier
	Bindings []Binding
}

func (m Module) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("module %s", m.Name))
	for _, b := range m.Bindings {
		sb.WriteString(fmt.Sprintf("\n  %s", b))
	}
	return sb.String()
}
