package erlang

import (
	"encoding/json"
	"fmt"

	"github.com/ilya-klyuchnikov/caramel/ast"
	"github.com/ilya-klyuchnikov/caramel/common"
)

// DecodeModule parses the JSON interchange form the front end hands over.
// Nodes are discriminated by "expr", "pat" and "kind" fields. Decoding
// errors are input errors, not translation failures.
func DecodeModule(data []byte) (Module, error) {
	var m jsonModule
	if err := json.Unmarshal(data, &m); err != nil {
		return Module{}, fmt.Errorf("decoding module: %w", err)
	}
	if m.Name == "" {
		return Module{}, fmt.Errorf("module has no name")
	}
	funcs, err := common.MapError(decodeFunction, m.Functions)
	if err != nil {
		return Module{}, err
	}
	return Module{Name: ast.Identifier(m.Name), Funcs: funcs}, nil
}

type jsonModule struct {
	Name      string         `json:"name"`
	Functions []jsonFunction `json:"functions"`
}

type jsonFunction struct {
	Name    string       `json:"name"`
	Clauses []jsonClause `json:"clauses"`
}

type jsonClause struct {
	Params []json.RawMessage `json:"params"`
	Body   json.RawMessage   `json:"body"`
}

type jsonExpression struct {
	Expr    string            `json:"expr"`
	Name    *jsonName         `json:"name,omitempty"`
	Const   *jsonConst        `json:"const,omitempty"`
	Pattern json.RawMessage   `json:"pattern,omitempty"`
	Value   json.RawMessage   `json:"value,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
	Func    json.RawMessage   `json:"func,omitempty"`
	Args    []json.RawMessage `json:"args,omitempty"`
	Items   []json.RawMessage `json:"items,omitempty"`
	Tail    json.RawMessage   `json:"tail,omitempty"`
	Subject json.RawMessage   `json:"subject,omitempty"`
	Cases   []jsonCaseClause  `json:"cases,omitempty"`
	Clauses []jsonClause      `json:"clauses,omitempty"`
	Fun     json.RawMessage   `json:"fun,omitempty"`
}

type jsonCaseClause struct {
	Pattern json.RawMessage `json:"pattern"`
	Body    json.RawMessage `json:"body"`
}

type jsonPattern struct {
	Pat   string            `json:"pat"`
	Id    string            `json:"id,omitempty"`
	Items []json.RawMessage `json:"items,omitempty"`
	Tail  json.RawMessage   `json:"tail,omitempty"`
	Const *jsonConst        `json:"const,omitempty"`
}

type jsonName struct {
	Kind   string `json:"kind"`
	Module string `json:"module,omitempty"`
	Id     string `json:"id"`
}

type jsonConst struct {
	Kind  string      `json:"kind"`
	Value json.Number `json:"value,omitempty"`
	Text  string      `json:"text,omitempty"`
}

func decodeFunction(f jsonFunction) (FunDecl, error) {
	if f.Name == "" {
		return FunDecl{}, fmt.Errorf("function has no name")
	}
	clauses, err := common.MapError(decodeClause, f.Clauses)
	if err != nil {
		return FunDecl{}, fmt.Errorf("function %s: %w", f.Name, err)
	}
	return FunDecl{Name: ast.Identifier(f.Name), Clauses: clauses}, nil
}

func decodeClause(c jsonClause) (Clause, error) {
	params, err := common.MapError(decodePattern, c.Params)
	if err != nil {
		return Clause{}, err
	}
	body, err := decodeExpression(c.Body)
	if err != nil {
		return Clause{}, err
	}
	return Clause{Params: params, Body: body}, nil
}

func decodeExpression(raw json.RawMessage) (Expression, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	var e jsonExpression
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decoding expression: %w", err)
	}

	switch e.Expr {
	case "name":
		if e.Name == nil {
			return nil, fmt.Errorf("name expression has no name")
		}
		name, err := decodeName(*e.Name)
		if err != nil {
			return nil, err
		}
		return Var{Name: name}, nil
	case "const":
		if e.Const == nil {
			return nil, fmt.Errorf("const expression has no constant")
		}
		value, err := decodeConst(*e.Const)
		if err != nil {
			return nil, err
		}
		return Const{Value: value}, nil
	case "let":
		pattern, err := decodePattern(e.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(e.Value)
		if err != nil {
			return nil, err
		}
		body, err := decodeExpression(e.Body)
		if err != nil {
			return nil, err
		}
		return Let{Pattern: pattern, Value: value, Body: body}, nil
	case "call":
		fn, err := decodeExpression(e.Func)
		if err != nil {
			return nil, err
		}
		args, err := common.MapError(decodeExpression, e.Args)
		if err != nil {
			return nil, err
		}
		return Call{Func: fn, Args: args}, nil
	case "list":
		items, err := common.MapError(decodeExpression, e.Items)
		if err != nil {
			return nil, err
		}
		return List{Items: items}, nil
	case "cons":
		items, err := common.MapError(decodeExpression, e.Items)
		if err != nil {
			return nil, err
		}
		tail, err := decodeExpression(e.Tail)
		if err != nil {
			return nil, err
		}
		return Cons{Items: items, Tail: tail}, nil
	case "case":
		subject, err := decodeExpression(e.Subject)
		if err != nil {
			return nil, err
		}
		cases, err := common.MapError(decodeCaseClause, e.Cases)
		if err != nil {
			return nil, err
		}
		return Case{Subject: subject, Cases: cases}, nil
	case "tuple":
		items, err := common.MapError(decodeExpression, e.Items)
		if err != nil {
			return nil, err
		}
		return Tuple{Items: items}, nil
	case "fun":
		clauses, err := common.MapError(decodeClause, e.Clauses)
		if err != nil {
			return nil, err
		}
		return Fun{Clauses: clauses}, nil
	case "spawn":
		fn, err := decodeExpression(e.Fun)
		if err != nil {
			return nil, err
		}
		return Spawn{Fun: fn}, nil
	case "receive":
		cases, err := common.MapError(decodeCaseClause, e.Cases)
		if err != nil {
			return nil, err
		}
		return Receive{Cases: cases}, nil
	}
	return nil, fmt.Errorf("unknown expression kind %q", e.Expr)
}

func decodeCaseClause(c jsonCaseClause) (CaseClause, error) {
	pattern, err := decodePattern(c.Pattern)
	if err != nil {
		return CaseClause{}, err
	}
	body, err := decodeExpression(c.Body)
	if err != nil {
		return CaseClause{}, err
	}
	return CaseClause{Pattern: pattern, Body: body}, nil
}

func decodePattern(raw json.RawMessage) (Pattern, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing pattern")
	}
	var p jsonPattern
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding pattern: %w", err)
	}

	switch p.Pat {
	case "any":
		return PAny{}, nil
	case "var":
		if p.Id == "" {
			return nil, fmt.Errorf("var pattern has no id")
		}
		return PNamed{Name: ast.Identifier(p.Id)}, nil
	case "tuple":
		items, err := common.MapError(decodePattern, p.Items)
		if err != nil {
			return nil, err
		}
		return PTuple{Items: items}, nil
	case "list":
		items, err := common.MapError(decodePattern, p.Items)
		if err != nil {
			return nil, err
		}
		return PList{Items: items}, nil
	case "cons":
		items, err := common.MapError(decodePattern, p.Items)
		if err != nil {
			return nil, err
		}
		tail, err := decodePattern(p.Tail)
		if err != nil {
			return nil, err
		}
		return PCons{Items: items, Tail: tail}, nil
	case "const":
		if p.Const == nil {
			return nil, fmt.Errorf("const pattern has no constant")
		}
		value, err := decodeConst(*p.Const)
		if err != nil {
			return nil, err
		}
		return PConst{Value: value}, nil
	}
	return nil, fmt.Errorf("unknown pattern kind %q", p.Pat)
}

func decodeName(n jsonName) (Name, error) {
	switch n.Kind {
	case "local":
		return Local{Name: ast.Identifier(n.Id)}, nil
	case "global":
		return Global{Name: ast.Identifier(n.Id)}, nil
	case "qualified":
		return Qualified{Module: ast.Identifier(n.Module), Name: ast.Identifier(n.Id)}, nil
	case "macro":
		return Macro{Name: ast.Identifier(n.Id)}, nil
	}
	return nil, fmt.Errorf("unknown name kind %q", n.Kind)
}

func decodeConst(c jsonConst) (ast.ConstValue, error) {
	switch c.Kind {
	case "int":
		v, err := c.Value.Int64()
		if err != nil {
			return nil, fmt.Errorf("decoding int constant: %w", err)
		}
		return ast.CInt{Value: v}, nil
	case "float":
		v, err := c.Value.Float64()
		if err != nil {
			return nil, fmt.Errorf("decoding float constant: %w", err)
		}
		return ast.CFloat{Value: v}, nil
	case "char":
		runes := []rune(c.Text)
		if len(runes) != 1 {
			return nil, fmt.Errorf("char constant %q is not a single rune", c.Text)
		}
		return ast.CChar{Value: runes[0]}, nil
	case "string":
		return ast.CString{Value: c.Text}, nil
	case "atom":
		if c.Text == "" {
			return nil, fmt.Errorf("atom constant has empty text")
		}
		return ast.CAtom{Value: ast.Identifier(c.Text)}, nil
	}
	return nil, fmt.Errorf("unknown constant kind %q", c.Kind)
}
