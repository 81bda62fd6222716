package processors

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/ast/erlang"
	"github.com/ilya-klyuchnikov/caramel/ast/ml"
	"github.com/ilya-klyuchnikov/caramel/common"
)

// ReceiveCapability is the reserved binding through which a spawned process
// body polls its mailbox. User code must not bind this name.
const ReceiveCapability = ast.Identifier("recv")

const (
	runtimeQualifier = ast.Identifier("runtime")
	stdlibQualifier  = ast.Identifier("erlang")
)

const (
	runtimeSpawnRef = ast.QualifiedIdentifier("Runtime.spawn")
	runtimeSendRef  = ast.QualifiedIdentifier("Runtime.send")
	stdlibModule    = "Stdlib"
)

var moduleCaser = cases.Title(language.Und, cases.NoLower)

func translateName(name erlang.Name) (ml.Expression, error) {
	switch n := name.(type) {
	case erlang.Local:
		id, err := valueIdentifier(n.Name)
		if err != nil {
			return nil, err
		}
		return ml.Var{Name: ast.QualifiedIdentifier(id)}, nil
	case erlang.Global:
		return ml.Var{Name: ast.QualifiedIdentifier(n.Name)}, nil
	case erlang.Qualified:
		if n.Module == "" || n.Name == "" {
			return nil, common.NewError(common.InvalidName, name)
		}
		if n.Module == runtimeQualifier && n.Name == "spawn" {
			return ml.Var{Name: runtimeSpawnRef}, nil
		}
		if n.Module == runtimeQualifier && n.Name == "send" {
			return ml.Var{Name: runtimeSendRef}, nil
		}
		if n.Module == stdlibQualifier {
			return ml.Var{Name: ast.QualifiedIdentifier(stdlibModule + "." + string(n.Name))}, nil
		}
		module := moduleCaser.String(string(n.Module))
		return ml.Var{Name: ast.QualifiedIdentifier(module + "." + string(n.Name))}, nil
	case erlang.Macro:
		return nil, common.NewError(common.UnsupportedName, name)
	}
	return nil, common.NewError(common.UnsupportedName, name)
}

// valueIdentifier normalizes a source binding to the target's value
// convention: leading rune lower-cased. The source language is
// case-insensitive about binding heads in ways the target is not.
// A normalized identifier that spells the reserved receive binding
// aborts translation instead of silently shadowing it.
func valueIdentifier(id ast.Identifier) (ast.Identifier, error) {
	normalized := id
	if r, size := utf8.DecodeRuneInString(string(id)); r != utf8.RuneError {
		normalized = ast.Identifier(string(unicode.ToLower(r)) + string(id)[size:])
	}
	if normalized == ReceiveCapability {
		return "", common.NewModuleError(
			"identifier %q collides with the reserved receive binding %q", id, ReceiveCapability)
	}
	return normalized, nil
}
