package erlang

import (
	"strings"
	"testing"

	"github.com/ilya-klyuchnikov/caramel/ast"
)

func TestDecodeModule(t *testing.T) {
	src := `{
		"name": "demo",
		"functions": [
			{
				"name": "pick",
				"clauses": [
					{
						"params": [
							{"pat": "cons", "items": [{"pat": "var", "id": "H"}], "tail": {"pat": "any"}},
							{"pat": "const", "const": {"kind": "int", "value": 0}}
						],
						"body": {
							"expr": "case",
							"subject": {"expr": "name", "name": {"kind": "local", "id": "H"}},
							"cases": [
								{
									"pattern": {"pat": "tuple", "items": [
										{"pat": "const", "const": {"kind": "atom", "text": "ok"}},
										{"pat": "var", "id": "V"}
									]},
									"body": {"expr": "name", "name": {"kind": "local", "id": "V"}}
								},
								{
									"pattern": {"pat": "any"},
									"body": {
										"expr": "let",
										"pattern": {"pat": "var", "id": "D"},
										"value": {"expr": "const", "const": {"kind": "string", "text": "none"}},
										"body": {"expr": "name", "name": {"kind": "local", "id": "D"}}
									}
								}
							]
						}
					}
				]
			},
			{
				"name": "len",
				"clauses": [
					{
						"params": [{"pat": "var", "id": "Xs"}],
						"body": {
							"expr": "call",
							"func": {"expr": "name", "name": {"kind": "qualified", "module": "erlang", "id": "length"}},
							"args": [{"expr": "name", "name": {"kind": "local", "id": "Xs"}}]
						}
					}
				]
			}
		]
	}`

	module, err := DecodeModule([]byte(src))
	if err != nil {
		t.Fatalf("decode module: %v", err)
	}
	if module.Name != "demo" {
		t.Errorf("expected module name demo, got %q", module.Name)
	}
	if len(module.Funcs) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(module.Funcs))
	}

	pick := module.Funcs[0]
	if pick.Name != "pick" || len(pick.Clauses) != 1 {
		t.Fatalf("unexpected first function: %s with %d clauses", pick.Name, len(pick.Clauses))
	}
	if len(pick.Clauses[0].Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(pick.Clauses[0].Params))
	}
	cons, ok := pick.Clauses[0].Params[0].(PCons)
	if !ok {
		t.Fatalf("expected PCons param, got %T", pick.Clauses[0].Params[0])
	}
	if _, ok := cons.Tail.(PAny); !ok {
		t.Errorf("expected PAny tail, got %T", cons.Tail)
	}
	caseExpr, ok := pick.Clauses[0].Body.(Case)
	if !ok {
		t.Fatalf("expected Case body, got %T", pick.Clauses[0].Body)
	}
	if len(caseExpr.Cases) != 2 {
		t.Fatalf("expected 2 case clauses, got %d", len(caseExpr.Cases))
	}
	tuple, ok := caseExpr.Cases[0].Pattern.(PTuple)
	if !ok {
		t.Fatalf("expected PTuple pattern, got %T", caseExpr.Cases[0].Pattern)
	}
	tag, ok := tuple.Items[0].(PConst)
	if !ok {
		t.Fatalf("expected PConst tag, got %T", tuple.Items[0])
	}
	if atom, ok := tag.Value.(ast.CAtom); !ok || atom.Value != "ok" {
		t.Errorf("expected atom ok tag, got %v", tag.Value)
	}

	call, ok := module.Funcs[1].Clauses[0].Body.(Call)
	if !ok {
		t.Fatalf("expected Call body, got %T", module.Funcs[1].Clauses[0].Body)
	}
	name, ok := call.Func.(Var)
	if !ok {
		t.Fatalf("expected Var callee, got %T", call.Func)
	}
	qualified, ok := name.Name.(Qualified)
	if !ok || qualified.Module != "erlang" || qualified.Name != "length" {
		t.Errorf("expected erlang:length callee, got %v", name.Name)
	}
}

func TestDecodeConstants(t *testing.T) {
	cases := []struct {
		src  string
		want ast.ConstValue
	}{
		{`{"kind": "int", "value": 42}`, ast.CInt{Value: 42}},
		{`{"kind": "float", "value": 1.5}`, ast.CFloat{Value: 1.5}},
		{`{"kind": "char", "text": "a"}`, ast.CChar{Value: 'a'}},
		{`{"kind": "string", "text": "hi"}`, ast.CString{Value: "hi"}},
		{`{"kind": "atom", "text": "ok"}`, ast.CAtom{Value: "ok"}},
	}
	for _, c := range cases {
		expr, err := decodeExpression([]byte(`{"expr": "const", "const": ` + c.src + `}`))
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.src, err)
			continue
		}
		constant, ok := expr.(Const)
		if !ok {
			t.Errorf("%s: expected Const, got %T", c.src, expr)
			continue
		}
		if constant.Value != c.want {
			t.Errorf("%s: expected %v, got %v", c.src, c.want, constant.Value)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		fragment string
	}{
		{"not json", `nope`, "decoding module"},
		{"no module name", `{"functions": []}`, "module has no name"},
		{"no function name", `{"name": "m", "functions": [{"clauses": []}]}`, "function has no name"},
		{
			"unknown expression",
			`{"name": "m", "functions": [{"name": "f", "clauses": [{"params": [], "body": {"expr": "throw"}}]}]}`,
			`unknown expression kind "throw"`,
		},
		{
			"unknown pattern",
			`{"name": "m", "functions": [{"name": "f", "clauses": [{"params": [{"pat": "map"}], "body": {"expr": "tuple"}}]}]}`,
			`unknown pattern kind "map"`,
		},
		{
			"unknown name kind",
			`{"name": "m", "functions": [{"name": "f", "clauses": [{"params": [], "body": {"expr": "name", "name": {"kind": "remote", "id": "g"}}}]}]}`,
			`unknown name kind "remote"`,
		},
		{
			"missing clause body",
			`{"name": "m", "functions": [{"name": "f", "clauses": [{"params": []}]}]}`,
			"missing expression",
		},
		{
			"multi-rune char",
			`{"name": "m", "functions": [{"name": "f", "clauses": [{"params": [], "body": {"expr": "const", "const": {"kind": "char", "text": "ab"}}}]}]}`,
			"not a single rune",
		},
		{
			"empty atom",
			`{"name": "m", "functions": [{"name": "f", "clauses": [{"params": [], "body": {"expr": "const", "const": {"kind": "atom"}}}]}]}`,
			"atom constant has empty text",
		},
	}
	for _, c := range cases {
		_, err := DecodeModule([]byte(c.src))
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.fragment) {
			t.Errorf("%s: expected error containing %q, got %v", c.name, c.fragment, err)
		}
	}
}
