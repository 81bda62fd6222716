package common

import "fmt"

// ErrorKind classifies the source shapes the translator cannot encode.
// The kinds are mutually exclusive; the first failure aborts the whole
// module translation.
type ErrorKind string

const (
	FunctionWithoutCases  ErrorKind = "function-without-cases"
	UnsupportedConstant   ErrorKind = "unsupported-constant"
	UnsupportedPattern    ErrorKind = "unsupported-pattern"
	UnsupportedExpression ErrorKind = "unsupported-expression"
	UnsupportedName       ErrorKind = "unsupported-name"
	InvalidName           ErrorKind = "invalid-name"
)

// Error carries the failure kind and the offending source node.
type Error struct {
	Kind ErrorKind
	Node any
}

func (e Error) Error() string {
	if e.Node == nil {
		return string(e.Kind)
	}
	if s, ok := e.Node.(fmt.Stringer); ok {
		return fmt.Sprintf("%s: %s", e.Kind, s)
	}
	return fmt.Sprintf("%s: %T", e.Kind, e.Node)
}

func NewError(kind ErrorKind, node any) error {
	return Error{Kind: kind, Node: node}
}

// ModuleError reports module-level input or output violations that fall
// outside the construct taxonomy: clause arity mismatches, reserved-name
// collisions, and structural check failures over the produced tree.
type ModuleError struct {
	Message string
}

func (e ModuleError) Error() string {
	return e.Message
}

func NewModuleError(format string, args ...any) error {
	return ModuleError{Message: fmt.Sprintf(format, args...)}
}

type SystemError struct {
	Message string
}

func (e SystemError) Error() string {
	return fmt.Sprintf("system error: %s", e.Message)
}
