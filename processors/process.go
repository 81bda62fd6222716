package processors

import (
	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/ast/erlang"
	"github.com/ilya-klyuchnikov/caramel/ast/ml"
	"github.com/ilya-klyuchnikov/caramel/common"
)

// receiveRef is the ambient receive-capability reference that spawn
// lowering binds in the enclosing function's parameter scope.
func receiveRef() ml.Expression {
	return ml.Var{Name: ast.QualifiedIdentifier(ReceiveCapability)}
}

// translateReceive lowers a mailbox-receive block to a match over a
// zero-argument call of the receive capability.
func translateReceive(e erlang.Receive) (ml.Expression, error) {
	cases, err := translateCaseClauses(e.Cases)
	if err != nil {
		return nil, err
	}
	return ml.Match{
		Subject: ml.Apply{Func: receiveRef(), Arg: ml.Unit()},
		Cases:   cases,
	}, nil
}

// translateSpawn lowers process creation of an inline single-clause,
// zero-parameter fun into a runtime spawn call whose sole argument is a
// new function of the receive capability.
func translateSpawn(e erlang.Spawn) (ml.Expression, error) {
	fn, ok := e.Fun.(erlang.Fun)
	if !ok || len(fn.Clauses) != 1 || len(fn.Clauses[0].Params) != 0 {
		return nil, common.NewError(common.UnsupportedExpression, e)
	}
	body, err := spawnBody(fn.Clauses[0].Body)
	if err != nil {
		return nil, err
	}
	return ml.Apply{
		Func: ml.Var{Name: runtimeSpawnRef},
		Arg:  ml.Lambda{Param: ml.PNamed{Name: ReceiveCapability}, Body: body},
	}, nil
}

// spawnBody rewrites a body that is a single top-level application so the
// receive capability threads through recursive calls: the callee's one
// argument becomes a pair of the capability and the original packed
// arguments. Any other body shape is translated unmodified and cannot
// reach the ambient receive unless restructured as a call.
func spawnBody(body erlang.Expression) (ml.Expression, error) {
	call, ok := body.(erlang.Call)
	if !ok {
		return translateExpression(body)
	}
	fn, err := translateExpression(call.Func)
	if err != nil {
		return nil, err
	}
	packed, err := packArguments(call.Args)
	if err != nil {
		return nil, err
	}
	return ml.Apply{
		Func: fn,
		Arg:  ml.Tuple{Items: []ml.Expression{receiveRef(), packed}},
	}, nil
}
