package processors

import (
	"strings"
	"testing"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/ast/ml"
)

func validModule() ml.Module {
	return ml.Module{
		Name: "sample",
		Bindings: []ml.Binding{
			{Name: "id", Value: ml.Lambda{
				Param: ml.PNamed{Name: "x"},
				Body:  ml.Var{Name: "x"},
			}},
			{Name: "classify", Value: ml.MatchLambda{Cases: []ml.MatchCase{
				{Pattern: ml.NilListPattern(), Body: ml.Variant{Tag: "empty"}},
				{
					Pattern: ml.ConsCellPattern(ml.PAny{}, ml.PAny{}),
					Body:    ml.Variant{Tag: "some", Payload: ml.Const{Value: ast.CInt{Value: 1}}},
				},
			}}},
		},
	}
}

func assertViolation(t *testing.T, mod ml.Module, fragment string) {
	t.Helper()
	errs := Validate(mod)
	for _, e := range errs {
		if strings.Contains(e, fragment) {
			return
		}
	}
	t.Errorf("expected violation containing %q, got %v", fragment, errs)
}

func TestValidateAcceptsWellFormedModule(t *testing.T) {
	if errs := Validate(validModule()); len(errs) != 0 {
		t.Errorf("expected no violations, got %v", errs)
	}
}

func TestValidateEmptyModuleName(t *testing.T) {
	mod := validModule()
	mod.Name = ""
	assertViolation(t, mod, "empty name")
}

func TestValidateNilBindingValue(t *testing.T) {
	mod := validModule()
	mod.Bindings[0].Value = nil
	assertViolation(t, mod, "nil value")
}

func TestValidateDuplicateBindingNames(t *testing.T) {
	mod := validModule()
	mod.Bindings[1].Name = mod.Bindings[0].Name
	assertViolation(t, mod, "duplicate binding name")
}

func TestValidateReservedBindingName(t *testing.T) {
	mod := validModule()
	mod.Bindings[0].Name = "recv"
	assertViolation(t, mod, "reserved receive binding")
}

func TestValidateRejectsSourceOnlyConstant(t *testing.T) {
	mod := validModule()
	mod.Bindings[0].Value = ml.Const{Value: ast.CAtom{Value: "ok"}}
	assertViolation(t, mod, "source-only constant")
}

func TestValidateEmptyMatch(t *testing.T) {
	mod := validModule()
	mod.Bindings[0].Value = ml.Match{Subject: ml.Var{Name: "x"}}
	assertViolation(t, mod, "Match has no cases")

	mod.Bindings[0].Value = ml.MatchLambda{}
	assertViolation(t, mod, "MatchLambda has no cases")
}

func TestValidateEmptyVariantTag(t *testing.T) {
	mod := validModule()
	mod.Bindings[0].Value = ml.Variant{}
	assertViolation(t, mod, "empty tag")

	mod.Bindings[0].Value = ml.Lambda{
		Param: ml.PVariant{},
		Body:  ml.Unit(),
	}
	assertViolation(t, mod, "empty tag")
}

func TestValidateNilChildren(t *testing.T) {
	mod := validModule()
	mod.Bindings[0].Value = ml.Apply{Func: ml.Var{Name: "f"}}
	assertViolation(t, mod, "Apply has nil Arg")

	mod.Bindings[0].Value = ml.Let{Value: ml.Unit(), Body: ml.Unit()}
	assertViolation(t, mod, "Let has nil Pattern")

	mod.Bindings[0].Value = ml.Tuple{Items: []ml.Expression{ml.Unit(), nil}}
	assertViolation(t, mod, "Tuple item 1 is nil")
}
