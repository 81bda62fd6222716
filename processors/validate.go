package processors

import (
	"fmt"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/ast/ml"
)

// Validate checks a produced module for structural well-formedness and
// returns a list of violations. An empty slice means the module is valid.
// Translation runs this as its final step; any violation aborts the whole
// pass with no partial output.
func Validate(mod ml.Module) []string {
	var errors []string

	if mod.Name == "" {
		errors = append(errors, "module has empty name")
	}

	seen := make(map[ast.Identifier]bool)
	for i, b := range mod.Bindings {
		context := fmt.Sprintf("binding %d (%s)", i, b.Name)
		if b.Name == "" {
			errors = append(errors, fmt.Sprintf("binding %d has empty name", i))
		}
		if seen[b.Name] {
			errors = append(errors, fmt.Sprintf("duplicate binding name %q", b.Name))
		}
		if b.Name == ReceiveCapability {
			errors = append(errors, fmt.Sprintf("binding name %q shadows the reserved receive binding", b.Name))
		}
		seen[b.Name] = true
		if b.Value == nil {
			errors = append(errors, fmt.Sprintf("%s has nil value", context))
		} else {
			errors = append(errors, validateExpr(b.Value, context)...)
		}
	}

	return errors
}

func validateExpr(expr ml.Expression, context string) []string {
	var errors []string

	switch e := expr.(type) {
	case ml.Var:
		if e.Name == "" {
			errors = append(errors, fmt.Sprintf("%s: Var has empty name", context))
		}

	case ml.Const:
		errors = append(errors, validateConst(e.Value, context)...)

	case ml.Let:
		if e.Pattern == nil {
			errors = append(errors, fmt.Sprintf("%s: Let has nil Pattern", context))
		} else {
			errors = append(errors, validatePattern(e.Pattern, context)...)
		}
		if e.Value == nil {
			errors = append(errors, fmt.Sprintf("%s: Let has nil Value", context))
		} else {
			errors = append(errors, validateExpr(e.Value, context)...)
		}
		if e.Body == nil {
			errors = append(errors, fmt.Sprintf("%s: Let has nil Body", context))
		} else {
			errors = append(errors, validateExpr(e.Body, context)...)
		}

	case ml.Apply:
		if e.Func == nil {
			errors = append(errors, fmt.Sprintf("%s: Apply has nil Func", context))
		} else {
			errors = append(errors, validateExpr(e.Func, context)...)
		}
		if e.Arg == nil {
			errors = append(errors, fmt.Sprintf("%s: Apply has nil Arg", context))
		} else {
			errors = append(errors, validateExpr(e.Arg, context)...)
		}

	case ml.Match:
		if e.Subject == nil {
			errors = append(errors, fmt.Sprintf("%s: Match has nil Subject", context))
		} else {
			errors = append(errors, validateExpr(e.Subject, context)...)
		}
		errors = append(errors, validateCases(e.Cases, "Match", context)...)

	case ml.Tuple:
		for i, item := range e.Items {
			if item == nil {
				errors = append(errors, fmt.Sprintf("%s: Tuple item %d is nil", context, i))
			} else {
				errors = append(errors, validateExpr(item, context)...)
			}
		}

	case ml.Variant:
		if e.Tag == "" {
			errors = append(errors, fmt.Sprintf("%s: Variant has empty tag", context))
		}
		if e.Payload != nil {
			errors = append(errors, validateExpr(e.Payload, context)...)
		}

	case ml.Lambda:
		if e.Param == nil {
			errors = append(errors, fmt.Sprintf("%s: Lambda has nil Param", context))
		} else {
			errors = append(errors, validatePattern(e.Param, context)...)
		}
		if e.Body == nil {
			errors = append(errors, fmt.Sprintf("%s: Lambda has nil Body", context))
		} else {
			errors = append(errors, validateExpr(e.Body, context)...)
		}

	case ml.MatchLambda:
		errors = append(errors, validateCases(e.Cases, "MatchLambda", context)...)

	default:
		errors = append(errors, fmt.Sprintf("%s: unknown expression type %T", context, expr))
	}

	return errors
}

func validateCases(cases []ml.MatchCase, kind, context string) []string {
	var errors []string
	if len(cases) == 0 {
		errors = append(errors, fmt.Sprintf("%s: %s has no cases", context, kind))
	}
	for i, c := range cases {
		if c.Pattern == nil {
			errors = append(errors, fmt.Sprintf("%s: %s case %d has nil Pattern", context, kind, i))
		} else {
			errors = append(errors, validatePattern(c.Pattern, context)...)
		}
		if c.Body == nil {
			errors = append(errors, fmt.Sprintf("%s: %s case %d has nil Body", context, kind, i))
		} else {
			errors = append(errors, validateExpr(c.Body, context)...)
		}
	}
	return errors
}

func validatePattern(pattern ml.Pattern, context string) []string {
	var errors []string

	switch p := pattern.(type) {
	case ml.PAny:

	case ml.PNamed:
		if p.Name == "" {
			errors = append(errors, fmt.Sprintf("%s: PNamed has empty name", context))
		}

	case ml.PConst:
		errors = append(errors, validateConst(p.Value, context)...)

	case ml.PTuple:
		for i, item := range p.Items {
			if item == nil {
				errors = append(errors, fmt.Sprintf("%s: PTuple item %d is nil", context, i))
			} else {
				errors = append(errors, validatePattern(item, context)...)
			}
		}

	case ml.PVariant:
		if p.Tag == "" {
			errors = append(errors, fmt.Sprintf("%s: PVariant has empty tag", context))
		}
		if p.Payload != nil {
			errors = append(errors, validatePattern(p.Payload, context)...)
		}

	default:
		errors = append(errors, fmt.Sprintf("%s: unknown pattern type %T", context, pattern))
	}

	return errors
}

// validateConst rejects source-only constants leaking into the output.
func validateConst(value ast.ConstValue, context string) []string {
	switch value.(type) {
	case nil:
		return []string{fmt.Sprintf("%s: nil constant", context)}
	case ast.CAtom:
		return []string{fmt.Sprintf("%s: source-only constant %s in output", context, value)}
	}
	return nil
}
