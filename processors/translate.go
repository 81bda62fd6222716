package processors

import (
	"strings"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/ast/erlang"
	"github.com/ilya-klyuchnikov/caramel/ast/ml"
	"github.com/ilya-klyuchnikov/caramel/common"
)

// Translate lowers one source module into one target module. It is a pure
// function over the input tree; the first failure aborts the whole
// translation and no partial output is ever returned.
func Translate(module erlang.Module) (ml.Module, error) {
	out := ml.Module{Name: module.Name}
	for _, fn := range module.Funcs {
		value, err := translateFunction(fn)
		if err != nil {
			return ml.Module{}, err
		}
		out.Bindings = append(out.Bindings, ml.Binding{Name: fn.Name, Value: value})
	}
	if errs := Validate(out); len(errs) > 0 {
		return ml.Module{}, common.NewModuleError("malformed output module: %s", strings.Join(errs, "; "))
	}
	return out, nil
}

func translateFunction(fn erlang.FunDecl) (ml.Expression, error) {
	if len(fn.Clauses) == 0 {
		return nil, common.NewError(common.FunctionWithoutCases, fn)
	}
	if fn.Name == ReceiveCapability {
		return nil, common.NewModuleError(
			"function name %q collides with the reserved receive binding", fn.Name)
	}
	return translateClauses(fn.Clauses)
}

// translateClauses turns one or many clauses into a single-parameter
// function value: a plain lambda for one clause, a pattern-matching
// function with one case per clause (in declaration order) for many.
// Clauses must agree on arity; a mismatch would produce cases matching
// different tuple shapes of the one packed argument.
func translateClauses(clauses []erlang.Clause) (ml.Expression, error) {
	arity := len(clauses[0].Params)
	for _, c := range clauses[1:] {
		if len(c.Params) != arity {
			return nil, common.NewModuleError(
				"clauses disagree on arity: %d vs %d", arity, len(c.Params))
		}
	}
	if len(clauses) == 1 {
		param, err := parameterPattern(clauses[0].Params)
		if err != nil {
			return nil, err
		}
		body, err := translateExpression(clauses[0].Body)
		if err != nil {
			return nil, err
		}
		return ml.Lambda{Param: param, Body: body}, nil
	}

	cases, err := common.MapError(func(c erlang.Clause) (ml.MatchCase, error) {
		pattern, err := parameterPattern(c.Params)
		if err != nil {
			return ml.MatchCase{}, err
		}
		body, err := translateExpression(c.Body)
		if err != nil {
			return ml.MatchCase{}, err
		}
		return ml.MatchCase{Pattern: pattern, Body: body}, nil
	}, clauses)
	if err != nil {
		return nil, err
	}
	return ml.MatchLambda{Cases: cases}, nil
}

// parameterPattern packs a clause's parameter patterns into the one
// pattern its single-parameter rendition matches on.
func parameterPattern(params []erlang.Pattern) (ml.Pattern, error) {
	switch len(params) {
	case 0:
		return ml.UnitPattern(), nil
	case 1:
		return translatePattern(params[0])
	default:
		items, err := common.MapError(translatePattern, params)
		if err != nil {
			return nil, err
		}
		return ml.PTuple{Items: items}, nil
	}
}

func translateExpression(expr erlang.Expression) (ml.Expression, error) {
	switch e := expr.(type) {
	case erlang.Var:
		return translateName(e.Name)
	case erlang.Const:
		if atom, ok := e.Value.(ast.CAtom); ok {
			return ml.Variant{Tag: atom.Value}, nil
		}
		value, err := translateConstant(e.Value)
		if err != nil {
			return nil, err
		}
		return ml.Const{Value: value}, nil
	case erlang.Let:
		pattern, err := translatePattern(e.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := translateExpression(e.Value)
		if err != nil {
			return nil, err
		}
		body, err := translateExpression(e.Body)
		if err != nil {
			return nil, err
		}
		return ml.Let{Pattern: pattern, Value: value, Body: body}, nil
	case erlang.Call:
		fn, err := translateExpression(e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := packArguments(e.Args)
		if err != nil {
			return nil, err
		}
		return ml.Apply{Func: fn, Arg: arg}, nil
	case erlang.List:
		return expressionChain(e.Items, ml.NilList())
	case erlang.Cons:
		tail, err := translateExpression(e.Tail)
		if err != nil {
			return nil, err
		}
		return expressionChain(e.Items, tail)
	case erlang.Case:
		subject, err := translateExpression(e.Subject)
		if err != nil {
			return nil, err
		}
		cases, err := translateCaseClauses(e.Cases)
		if err != nil {
			return nil, err
		}
		return ml.Match{Subject: subject, Cases: cases}, nil
	case erlang.Tuple:
		if len(e.Items) == 0 {
			return ml.Unit(), nil
		}
		if tag, ok := expressionAtomTag(e.Items[0]); ok {
			return variantExpression(tag, e.Items[1:])
		}
		if len(e.Items) == 1 {
			return translateExpression(e.Items[0])
		}
		items, err := common.MapError(translateExpression, e.Items)
		if err != nil {
			return nil, err
		}
		return ml.Tuple{Items: items}, nil
	case erlang.Fun:
		if len(e.Clauses) == 0 {
			return nil, common.NewError(common.FunctionWithoutCases, expr)
		}
		return translateClauses(e.Clauses)
	case erlang.Spawn:
		return translateSpawn(e)
	case erlang.Receive:
		return translateReceive(e)
	}
	return nil, common.NewError(common.UnsupportedExpression, expr)
}

// packArguments uncurries a multi-argument call into the single argument
// the target application supplies: unit when there are none, the argument
// itself for one, a tuple of all of them otherwise.
func packArguments(args []erlang.Expression) (ml.Expression, error) {
	switch len(args) {
	case 0:
		return ml.Unit(), nil
	case 1:
		return translateExpression(args[0])
	default:
		items, err := common.MapError(translateExpression, args)
		if err != nil {
			return nil, err
		}
		return ml.Tuple{Items: items}, nil
	}
}

func translateCaseClauses(clauses []erlang.CaseClause) ([]ml.MatchCase, error) {
	return common.MapError(func(c erlang.CaseClause) (ml.MatchCase, error) {
		pattern, err := translatePattern(c.Pattern)
		if err != nil {
			return ml.MatchCase{}, err
		}
		body, err := translateExpression(c.Body)
		if err != nil {
			return ml.MatchCase{}, err
		}
		return ml.MatchCase{Pattern: pattern, Body: body}, nil
	}, clauses)
}

func translatePattern(pattern erlang.Pattern) (ml.Pattern, error) {
	switch p := pattern.(type) {
	case erlang.PAny:
		return ml.PAny{}, nil
	case erlang.PNamed:
		id, err := valueIdentifier(p.Name)
		if err != nil {
			return nil, err
		}
		return ml.PNamed{Name: id}, nil
	case erlang.PTuple:
		if len(p.Items) == 0 {
			return ml.UnitPattern(), nil
		}
		if tag, ok := patternAtomTag(p.Items[0]); ok {
			return variantPattern(tag, p.Items[1:])
		}
		if len(p.Items) == 1 {
			return translatePattern(p.Items[0])
		}
		items, err := common.MapError(translatePattern, p.Items)
		if err != nil {
			return nil, err
		}
		return ml.PTuple{Items: items}, nil
	case erlang.PList:
		return patternChain(p.Items, ml.NilListPattern())
	case erlang.PCons:
		tail, err := translatePattern(p.Tail)
		if err != nil {
			return nil, err
		}
		return patternChain(p.Items, tail)
	case erlang.PConst:
		if atom, ok := p.Value.(ast.CAtom); ok {
			return ml.PVariant{Tag: atom.Value}, nil
		}
		value, err := translateConstant(p.Value)
		if err != nil {
			return nil, err
		}
		return ml.PConst{Value: value}, nil
	}
	return nil, common.NewError(common.UnsupportedPattern, pattern)
}

// translateConstant maps source literals onto target constants 1:1.
// Atoms never pass through here; they are variant-encoded at the tuple,
// expression and pattern levels.
func translateConstant(value ast.ConstValue) (ast.ConstValue, error) {
	switch value.(type) {
	case ast.CInt, ast.CChar, ast.CString, ast.CFloat:
		return value, nil
	}
	return nil, common.NewError(common.UnsupportedConstant, value)
}

// A tuple whose first element is an atom literal is a tagged value, not a
// positional tuple. The remaining elements form the payload: dropped when
// empty, unwrapped when single, a nested tuple otherwise.

func expressionAtomTag(e erlang.Expression) (ast.Identifier, bool) {
	if c, ok := e.(erlang.Const); ok {
		if atom, ok := c.Value.(ast.CAtom); ok {
			return atom.Value, true
		}
	}
	return "", false
}

func patternAtomTag(p erlang.Pattern) (ast.Identifier, bool) {
	if c, ok := p.(erlang.PConst); ok {
		if atom, ok := c.Value.(ast.CAtom); ok {
			return atom.Value, true
		}
	}
	return "", false
}

func variantExpression(tag ast.Identifier, rest []erlang.Expression) (ml.Expression, error) {
	switch len(rest) {
	case 0:
		return ml.Variant{Tag: tag}, nil
	case 1:
		payload, err := translateExpression(rest[0])
		if err != nil {
			return nil, err
		}
		return ml.Variant{Tag: tag, Payload: payload}, nil
	default:
		items, err := common.MapError(translateExpression, rest)
		if err != nil {
			return nil, err
		}
		return ml.Variant{Tag: tag, Payload: ml.Tuple{Items: items}}, nil
	}
}

func variantPattern(tag ast.Identifier, rest []erlang.Pattern) (ml.Pattern, error) {
	switch len(rest) {
	case 0:
		return ml.PVariant{Tag: tag}, nil
	case 1:
		payload, err := translatePattern(rest[0])
		if err != nil {
			return nil, err
		}
		return ml.PVariant{Tag: tag, Payload: payload}, nil
	default:
		items, err := common.MapError(translatePattern, rest)
		if err != nil {
			return nil, err
		}
		return ml.PVariant{Tag: tag, Payload: ml.PTuple{Items: items}}, nil
	}
}

// expressionChain and patternChain realize sequences as right folds over
// binary cons cells, terminated by the given tail.

func expressionChain(items []erlang.Expression, tail ml.Expression) (ml.Expression, error) {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		head, err := translateExpression(items[i])
		if err != nil {
			return nil, err
		}
		result = ml.ConsCell(head, result)
	}
	return result, nil
}

func patternChain(items []erlang.Pattern, tail ml.Pattern) (ml.Pattern, error) {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		head, err := translatePattern(items[i])
		if err != nil {
			return nil, err
		}
		result = ml.ConsCellPattern(head, result)
	}
	return result, nil
}
