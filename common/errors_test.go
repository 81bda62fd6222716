package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(UnsupportedExpression, word("receive"))
	if got := err.Error(); got != "unsupported-expression: receive" {
		t.Errorf("unexpected message %q", got)
	}

	var e Error
	if !errors.As(fmt.Errorf("wrapped: %w", err), &e) {
		t.Fatal("expected error to unwrap")
	}
	if e.Kind != UnsupportedExpression {
		t.Errorf("unexpected kind %s", e.Kind)
	}
}

func TestErrorWithoutNode(t *testing.T) {
	err := NewError(InvalidName, nil)
	if got := err.Error(); got != "invalid-name" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestModuleErrorFormatting(t *testing.T) {
	err := NewModuleError("clauses disagree on arity: %d vs %d", 1, 2)
	if got := err.Error(); got != "clauses disagree on arity: 1 vs 2" {
		t.Errorf("unexpected message %q", got)
	}
}
