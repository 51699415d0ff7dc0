// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estree

import (
	"encoding/json"
	"fmt"
	"os"
)

// Decode converts the ESTree JSON encoding of a parsed program, as
// emitted by conformant JavaScript parsers, into a *Program.
// Node types outside the handled union decode to Opaque leaves;
// only malformed JSON or a non-Program root is an error.
func Decode(sourceID string, data []byte) (*Program, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("estree: decoding %s: %w", sourceID, err)
	}
	d := &decoder{sourceID: sourceID}
	n, err := d.node(raw)
	if err != nil {
		return nil, fmt.Errorf("estree: decoding %s: %w", sourceID, err)
	}
	prog, ok := n.(*Program)
	if !ok {
		return nil, fmt.Errorf("estree: decoding %s: root node is %T, not a Program", sourceID, n)
	}
	return prog, nil
}

// DecodeFile reads and decodes one ESTree JSON file.
func DecodeFile(sourceID, filename string) (*Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decode(sourceID, data)
}

type decoder struct {
	sourceID string
}

// rawNode is the superset of fields this decoder reads from any node.
// Fields whose JSON value is itself a node (or node list) stay raw
// until the node's type is known.
type rawNode struct {
	Type string `json:"type"`
	Loc  *struct {
		Start rawPos `json:"start"`
		End   rawPos `json:"end"`
	} `json:"loc"`

	// scalar fields
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Operator   string `json:"operator"`
	Raw        string `json:"raw"`
	SourceType string `json:"sourceType"`
	Computed   bool   `json:"computed"`
	Optional   bool   `json:"optional"`
	Static     bool   `json:"static"`
	Prefix     bool   `json:"prefix"`
	Shorthand  bool   `json:"shorthand"`
	Method     bool   `json:"method"`
	Delegate   bool   `json:"delegate"`
	Async      bool   `json:"async"`
	Generator  bool   `json:"generator"`

	// node and node-list fields
	Body         json.RawMessage   `json:"body"`
	Declarations []json.RawMessage `json:"declarations"`
	ID           json.RawMessage   `json:"id"`
	Init         json.RawMessage   `json:"init"`
	Params       []json.RawMessage `json:"params"`
	Test         json.RawMessage   `json:"test"`
	Update       json.RawMessage   `json:"update"`
	Consequent   json.RawMessage   `json:"consequent"`
	Alternate    json.RawMessage   `json:"alternate"`
	Discriminant json.RawMessage   `json:"discriminant"`
	Cases        []json.RawMessage `json:"cases"`
	Block        json.RawMessage   `json:"block"`
	Handler      json.RawMessage   `json:"handler"`
	Finalizer    json.RawMessage   `json:"finalizer"`
	Param        json.RawMessage   `json:"param"`
	Argument     json.RawMessage   `json:"argument"`
	Arguments    []json.RawMessage `json:"arguments"`
	Label        json.RawMessage   `json:"label"`
	Object       json.RawMessage   `json:"object"`
	Property     json.RawMessage   `json:"property"`
	Properties   []json.RawMessage `json:"properties"`
	Callee       json.RawMessage   `json:"callee"`
	Expressions  []json.RawMessage `json:"expressions"`
	Expression   json.RawMessage   `json:"expression"`
	Elements     []json.RawMessage `json:"elements"`
	Key          json.RawMessage   `json:"key"`
	Value        json.RawMessage   `json:"value"`
	Left         json.RawMessage   `json:"left"`
	Right        json.RawMessage   `json:"right"`
	SuperClass   json.RawMessage   `json:"superClass"`
	Specifiers   []json.RawMessage `json:"specifiers"`
	Source       json.RawMessage   `json:"source"`
	Local        json.RawMessage   `json:"local"`
	Imported     json.RawMessage   `json:"imported"`
	Exported     json.RawMessage   `json:"exported"`
	Declaration  json.RawMessage   `json:"declaration"`
	Quasi        json.RawMessage   `json:"quasi"`
	Tag          json.RawMessage   `json:"tag"`
}

type rawPos struct {
	Line   int32 `json:"line"`
	Column int32 `json:"column"`
}

func (r *rawNode) span() span {
	if r.Loc == nil {
		return span{}
	}
	return span{
		StartPos: Position{Line: r.Loc.Start.Line, Col: r.Loc.Start.Column},
		EndPos:   Position{Line: r.Loc.End.Line, Col: r.Loc.End.Column},
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// node decodes one raw node, or nil for an absent one.
func (d *decoder) node(raw json.RawMessage) (Node, error) {
	if isNull(raw) {
		return nil, nil
	}
	var r rawNode
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}

	switch r.Type {
	case "Program":
		body, err := d.stmts(listOf(r.Body))
		if err != nil {
			return nil, err
		}
		return &Program{
			span:     r.span(),
			SourceID: d.sourceID,
			Module:   r.SourceType == "module",
			Body:     body,
		}, nil

	case "VariableDeclaration":
		n := &VariableDeclaration{span: r.span(), Kind: r.Kind}
		for _, dr := range r.Declarations {
			child, err := d.node(dr)
			if err != nil {
				return nil, err
			}
			decl, ok := child.(*VariableDeclarator)
			if !ok {
				return nil, fmt.Errorf("VariableDeclaration: unexpected declarator %T", child)
			}
			n.Decls = append(n.Decls, decl)
		}
		return n, nil

	case "VariableDeclarator":
		id, err := d.pattern(r.ID)
		if err != nil {
			return nil, err
		}
		init, err := d.expr(r.Init)
		if err != nil {
			return nil, err
		}
		return &VariableDeclarator{span: r.span(), ID: id, Init: init}, nil

	case "FunctionDeclaration":
		fn, err := d.function(&r)
		if err != nil {
			return nil, err
		}
		return &FunctionDeclaration{Function: *fn}, nil
	case "FunctionExpression":
		fn, err := d.function(&r)
		if err != nil {
			return nil, err
		}
		return &FunctionExpression{Function: *fn}, nil
	case "ArrowFunctionExpression":
		fn, err := d.function(&r)
		if err != nil {
			return nil, err
		}
		return &ArrowFunction{Function: *fn}, nil

	case "ClassDeclaration":
		c, err := d.class(&r)
		if err != nil {
			return nil, err
		}
		return &ClassDeclaration{Class: *c}, nil
	case "ClassExpression":
		c, err := d.class(&r)
		if err != nil {
			return nil, err
		}
		return &ClassExpression{Class: *c}, nil

	case "ClassBody":
		n := &ClassBody{span: r.span()}
		for _, mr := range listOf(r.Body) {
			m, err := d.node(mr)
			if err != nil {
				return nil, err
			}
			n.Body = append(n.Body, m)
		}
		return n, nil

	case "MethodDefinition":
		key, err := d.expr(r.Key)
		if err != nil {
			return nil, err
		}
		value, err := d.node(r.Value)
		if err != nil {
			return nil, err
		}
		fn, _ := value.(*FunctionExpression)
		return &MethodDefinition{
			span: r.span(), Key: key, Value: fn,
			Kind: r.Kind, Computed: r.Computed, Static: r.Static,
		}, nil

	case "PropertyDefinition", "ClassProperty":
		key, err := d.expr(r.Key)
		if err != nil {
			return nil, err
		}
		value, err := d.expr(r.Value)
		if err != nil {
			return nil, err
		}
		return &PropertyDefinition{
			span: r.span(), Key: key, Value: value,
			Computed: r.Computed, Static: r.Static,
		}, nil

	case "BlockStatement":
		body, err := d.stmts(listOf(r.Body))
		if err != nil {
			return nil, err
		}
		return &BlockStatement{span: r.span(), Body: body}, nil

	case "ExpressionStatement":
		x, err := d.expr(r.Expression)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{span: r.span(), X: x}, nil

	case "IfStatement":
		cond, err := d.expr(r.Test)
		if err != nil {
			return nil, err
		}
		then, err := d.stmt(r.Consequent)
		if err != nil {
			return nil, err
		}
		els, err := d.stmt(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &IfStatement{span: r.span(), Cond: cond, Then: then, Else: els}, nil

	case "ForStatement":
		init, err := d.node(r.Init)
		if err != nil {
			return nil, err
		}
		test, err := d.expr(r.Test)
		if err != nil {
			return nil, err
		}
		update, err := d.expr(r.Update)
		if err != nil {
			return nil, err
		}
		body, err := d.stmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &ForStatement{span: r.span(), Init: init, Test: test, Update: update, Body: body}, nil

	case "ForInStatement", "ForOfStatement":
		left, err := d.node(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.expr(r.Right)
		if err != nil {
			return nil, err
		}
		body, err := d.stmt(r.Body)
		if err != nil {
			return nil, err
		}
		if r.Type == "ForInStatement" {
			return &ForInStatement{span: r.span(), Left: left, Right: right, Body: body}, nil
		}
		return &ForOfStatement{span: r.span(), Left: left, Right: right, Body: body}, nil

	case "WhileStatement":
		cond, err := d.expr(r.Test)
		if err != nil {
			return nil, err
		}
		body, err := d.stmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStatement{span: r.span(), Cond: cond, Body: body}, nil

	case "DoWhileStatement":
		body, err := d.stmt(r.Body)
		if err != nil {
			return nil, err
		}
		cond, err := d.expr(r.Test)
		if err != nil {
			return nil, err
		}
		return &DoWhileStatement{span: r.span(), Body: body, Cond: cond}, nil

	case "SwitchStatement":
		disc, err := d.expr(r.Discriminant)
		if err != nil {
			return nil, err
		}
		n := &SwitchStatement{span: r.span(), Disc: disc}
		for _, cr := range r.Cases {
			child, err := d.node(cr)
			if err != nil {
				return nil, err
			}
			c, ok := child.(*SwitchCase)
			if !ok {
				return nil, fmt.Errorf("SwitchStatement: unexpected case %T", child)
			}
			n.Cases = append(n.Cases, c)
		}
		return n, nil

	case "SwitchCase":
		test, err := d.expr(r.Test)
		if err != nil {
			return nil, err
		}
		body, err := d.stmts(listOf(r.Consequent))
		if err != nil {
			return nil, err
		}
		return &SwitchCase{span: r.span(), Test: test, Body: body}, nil

	case "TryStatement":
		block, err := d.block(r.Block)
		if err != nil {
			return nil, err
		}
		handler, err := d.node(r.Handler)
		if err != nil {
			return nil, err
		}
		finalizer, err := d.block(r.Finalizer)
		if err != nil {
			return nil, err
		}
		catch, _ := handler.(*CatchClause)
		return &TryStatement{span: r.span(), Block: block, Handler: catch, Finalizer: finalizer}, nil

	case "CatchClause":
		param, err := d.pattern(r.Param)
		if err != nil {
			return nil, err
		}
		body, err := d.block(r.Body)
		if err != nil {
			return nil, err
		}
		return &CatchClause{span: r.span(), Param: param, Body: body}, nil

	case "ReturnStatement":
		arg, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ReturnStatement{span: r.span(), Arg: arg}, nil

	case "ThrowStatement":
		arg, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ThrowStatement{span: r.span(), Arg: arg}, nil

	case "LabeledStatement":
		label, err := d.ident(r.Label)
		if err != nil {
			return nil, err
		}
		body, err := d.stmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &LabeledStatement{span: r.span(), Label: label, Body: body}, nil

	case "BreakStatement":
		label, err := d.ident(r.Label)
		if err != nil {
			return nil, err
		}
		return &BreakStatement{span: r.span(), Label: label}, nil

	case "ContinueStatement":
		label, err := d.ident(r.Label)
		if err != nil {
			return nil, err
		}
		return &ContinueStatement{span: r.span(), Label: label}, nil

	case "EmptyStatement", "DebuggerStatement":
		return &EmptyStatement{span: r.span()}, nil

	case "ImportDeclaration":
		n := &ImportDeclaration{span: r.span()}
		for _, sr := range r.Specifiers {
			s, err := d.node(sr)
			if err != nil {
				return nil, err
			}
			n.Specs = append(n.Specs, s)
		}
		src, err := d.node(r.Source)
		if err != nil {
			return nil, err
		}
		n.Source, _ = src.(*Literal)
		return n, nil

	case "ImportSpecifier":
		local, err := d.ident(r.Local)
		if err != nil {
			return nil, err
		}
		imported, err := d.node(r.Imported)
		if err != nil {
			return nil, err
		}
		return &ImportSpecifier{span: r.span(), Local: local, Imported: imported}, nil

	case "ImportDefaultSpecifier":
		local, err := d.ident(r.Local)
		if err != nil {
			return nil, err
		}
		return &ImportDefaultSpecifier{span: r.span(), Local: local}, nil

	case "ImportNamespaceSpecifier":
		local, err := d.ident(r.Local)
		if err != nil {
			return nil, err
		}
		return &ImportNamespaceSpecifier{span: r.span(), Local: local}, nil

	case "ExportNamedDeclaration":
		decl, err := d.stmt(r.Declaration)
		if err != nil {
			return nil, err
		}
		n := &ExportNamedDeclaration{span: r.span(), Decl: decl}
		for _, sr := range r.Specifiers {
			s, err := d.node(sr)
			if err != nil {
				return nil, err
			}
			n.Specs = append(n.Specs, s)
		}
		src, err := d.node(r.Source)
		if err != nil {
			return nil, err
		}
		n.Source, _ = src.(*Literal)
		return n, nil

	case "ExportSpecifier":
		local, err := d.ident(r.Local)
		if err != nil {
			return nil, err
		}
		exported, err := d.node(r.Exported)
		if err != nil {
			return nil, err
		}
		return &ExportSpecifier{span: r.span(), Local: local, Exported: exported}, nil

	case "ExportDefaultDeclaration":
		decl, err := d.node(r.Declaration)
		if err != nil {
			return nil, err
		}
		return &ExportDefaultDeclaration{span: r.span(), Decl: decl}, nil

	case "Identifier":
		return &Identifier{span: r.span(), Name: r.Name}, nil

	case "ThisExpression":
		return &ThisExpression{span: r.span()}, nil

	case "Literal":
		var value interface{}
		if !isNull(r.Value) {
			if err := json.Unmarshal(r.Value, &value); err != nil {
				return nil, err
			}
			if _, ok := value.(map[string]interface{}); ok {
				value = nil // regexp literal; only Raw is meaningful
			}
		}
		return &Literal{span: r.span(), Value: value, Raw: r.Raw}, nil

	case "TemplateLiteral":
		n := &TemplateLiteral{span: r.span()}
		for _, er := range r.Expressions {
			e, err := d.expr(er)
			if err != nil {
				return nil, err
			}
			n.Exprs = append(n.Exprs, e)
		}
		return n, nil

	case "TaggedTemplateExpression":
		tag, err := d.expr(r.Tag)
		if err != nil {
			return nil, err
		}
		quasi, err := d.node(r.Quasi)
		if err != nil {
			return nil, err
		}
		tl, _ := quasi.(*TemplateLiteral)
		return &TaggedTemplateExpression{span: r.span(), Tag: tag, Quasi: tl}, nil

	case "MemberExpression", "OptionalMemberExpression":
		object, err := d.expr(r.Object)
		if err != nil {
			return nil, err
		}
		prop, err := d.expr(r.Property)
		if err != nil {
			return nil, err
		}
		return &MemberExpression{
			span: r.span(), Object: object, Property: prop,
			Computed: r.Computed,
			Optional: r.Optional || r.Type == "OptionalMemberExpression",
		}, nil

	case "CallExpression", "OptionalCallExpression":
		callee, err := d.expr(r.Callee)
		if err != nil {
			return nil, err
		}
		args, err := d.exprs(r.Arguments)
		if err != nil {
			return nil, err
		}
		return &CallExpression{
			span: r.span(), Callee: callee, Args: args,
			Optional: r.Optional || r.Type == "OptionalCallExpression",
		}, nil

	case "NewExpression":
		callee, err := d.expr(r.Callee)
		if err != nil {
			return nil, err
		}
		args, err := d.exprs(r.Arguments)
		if err != nil {
			return nil, err
		}
		return &NewExpression{span: r.span(), Callee: callee, Args: args}, nil

	case "SequenceExpression":
		exprs, err := d.exprs(r.Expressions)
		if err != nil {
			return nil, err
		}
		return &SequenceExpression{span: r.span(), Exprs: exprs}, nil

	case "AssignmentExpression":
		target, err := d.node(r.Left)
		if err != nil {
			return nil, err
		}
		value, err := d.expr(r.Right)
		if err != nil {
			return nil, err
		}
		return &AssignmentExpression{span: r.span(), Op: r.Operator, Target: target, Value: value}, nil

	case "BinaryExpression":
		x, err := d.expr(r.Left)
		if err != nil {
			return nil, err
		}
		y, err := d.expr(r.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpression{span: r.span(), Op: r.Operator, X: x, Y: y}, nil

	case "LogicalExpression":
		x, err := d.expr(r.Left)
		if err != nil {
			return nil, err
		}
		y, err := d.expr(r.Right)
		if err != nil {
			return nil, err
		}
		return &LogicalExpression{span: r.span(), Op: r.Operator, X: x, Y: y}, nil

	case "UnaryExpression":
		x, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{span: r.span(), Op: r.Operator, X: x}, nil

	case "UpdateExpression":
		x, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &UpdateExpression{span: r.span(), Op: r.Operator, X: x, Prefix: r.Prefix}, nil

	case "ConditionalExpression":
		cond, err := d.expr(r.Test)
		if err != nil {
			return nil, err
		}
		then, err := d.expr(r.Consequent)
		if err != nil {
			return nil, err
		}
		els, err := d.expr(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpression{span: r.span(), Cond: cond, Then: then, Else: els}, nil

	case "SpreadElement":
		arg, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &SpreadElement{span: r.span(), Arg: arg}, nil

	case "ObjectExpression":
		n := &ObjectExpression{span: r.span()}
		for _, pr := range r.Properties {
			p, err := d.property(pr)
			if err != nil {
				return nil, err
			}
			n.Props = append(n.Props, p)
		}
		return n, nil

	case "ArrayExpression":
		elems, err := d.exprs(r.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayExpression{span: r.span(), Elems: elems}, nil

	case "ObjectPattern":
		n := &ObjectPattern{span: r.span()}
		for _, pr := range r.Properties {
			p, err := d.patternProperty(pr)
			if err != nil {
				return nil, err
			}
			n.Props = append(n.Props, p)
		}
		return n, nil

	case "ArrayPattern":
		n := &ArrayPattern{span: r.span()}
		for _, er := range r.Elements {
			if isNull(er) {
				n.Elems = append(n.Elems, nil) // hole
				continue
			}
			p, err := d.pattern(er)
			if err != nil {
				return nil, err
			}
			n.Elems = append(n.Elems, p)
		}
		return n, nil

	case "AssignmentPattern":
		left, err := d.pattern(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.expr(r.Right)
		if err != nil {
			return nil, err
		}
		return &AssignmentPattern{span: r.span(), Left: left, Right: right}, nil

	case "RestElement":
		arg, err := d.pattern(r.Argument)
		if err != nil {
			return nil, err
		}
		return &RestElement{span: r.span(), Arg: arg}, nil

	case "AwaitExpression":
		arg, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &AwaitExpression{span: r.span(), Arg: arg}, nil

	case "YieldExpression":
		arg, err := d.expr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &YieldExpression{span: r.span(), Arg: arg, Delegate: r.Delegate}, nil
	}

	return &Opaque{span: r.span(), Type: r.Type}, nil
}

func (d *decoder) function(r *rawNode) (*Function, error) {
	var id *Identifier
	if !isNull(r.ID) {
		var err error
		if id, err = d.ident(r.ID); err != nil {
			return nil, err
		}
	}
	fn := &Function{
		span: r.span(), ID: id,
		Async: r.Async, Generator: r.Generator,
	}
	for _, pr := range r.Params {
		p, err := d.pattern(pr)
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, p)
	}
	body, err := d.node(r.Body)
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func (d *decoder) class(r *rawNode) (*Class, error) {
	var id *Identifier
	if !isNull(r.ID) {
		var err error
		if id, err = d.ident(r.ID); err != nil {
			return nil, err
		}
	}
	super, err := d.expr(r.SuperClass)
	if err != nil {
		return nil, err
	}
	bodyNode, err := d.node(r.Body)
	if err != nil {
		return nil, err
	}
	body, _ := bodyNode.(*ClassBody)
	return &Class{span: r.span(), ID: id, Super: super, Body: body}, nil
}

// property decodes a Property in object-literal position.
func (d *decoder) property(raw json.RawMessage) (Node, error) {
	var r rawNode
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	if r.Type == "SpreadElement" {
		return d.node(raw)
	}
	key, err := d.expr(r.Key)
	if err != nil {
		return nil, err
	}
	value, err := d.expr(r.Value)
	if err != nil {
		return nil, err
	}
	kind := r.Kind
	if kind == "" {
		kind = "init"
	}
	return &Property{
		span: r.span(), Key: key, Value: value, Kind: kind,
		Computed: r.Computed, Shorthand: r.Shorthand, Method: r.Method,
	}, nil
}

// patternProperty decodes a Property in object-pattern position,
// where the value is a binding target rather than an expression.
func (d *decoder) patternProperty(raw json.RawMessage) (Node, error) {
	var r rawNode
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	if r.Type == "RestElement" {
		return d.node(raw)
	}
	key, err := d.expr(r.Key)
	if err != nil {
		return nil, err
	}
	value, err := d.pattern(r.Value)
	if err != nil {
		return nil, err
	}
	return &PatternProperty{span: r.span(), Key: key, Value: value, Computed: r.Computed}, nil
}

// block decodes a field that must be a block statement (or null).
func (d *decoder) block(raw json.RawMessage) (*BlockStatement, error) {
	n, err := d.node(raw)
	if err != nil || n == nil {
		return nil, err
	}
	b, ok := n.(*BlockStatement)
	if !ok {
		return nil, fmt.Errorf("unexpected %T where a block is required", n)
	}
	return b, nil
}

func (d *decoder) stmt(raw json.RawMessage) (Stmt, error) {
	n, err := d.node(raw)
	if err != nil || n == nil {
		return nil, err
	}
	s, ok := n.(Stmt)
	if !ok {
		return nil, fmt.Errorf("unexpected %T in statement position", n)
	}
	return s, nil
}

func (d *decoder) expr(raw json.RawMessage) (Expr, error) {
	n, err := d.node(raw)
	if err != nil || n == nil {
		return nil, err
	}
	e, ok := n.(Expr)
	if !ok {
		return nil, fmt.Errorf("unexpected %T in expression position", n)
	}
	return e, nil
}

func (d *decoder) pattern(raw json.RawMessage) (Pattern, error) {
	n, err := d.node(raw)
	if err != nil || n == nil {
		return nil, err
	}
	p, ok := n.(Pattern)
	if !ok {
		return nil, fmt.Errorf("unexpected %T in binding position", n)
	}
	return p, nil
}

func (d *decoder) ident(raw json.RawMessage) (*Identifier, error) {
	n, err := d.node(raw)
	if err != nil || n == nil {
		return nil, err
	}
	id, ok := n.(*Identifier)
	if !ok {
		return nil, fmt.Errorf("unexpected %T where an identifier is required", n)
	}
	return id, nil
}

func (d *decoder) stmts(raws []json.RawMessage) ([]Stmt, error) {
	var stmts []Stmt
	for _, raw := range raws {
		s, err := d.stmt(raw)
		if err != nil {
			return nil, err
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, nil
}

func (d *decoder) exprs(raws []json.RawMessage) ([]Expr, error) {
	var exprs []Expr
	for _, raw := range raws {
		if isNull(raw) {
			exprs = append(exprs, nil) // array hole
			continue
		}
		e, err := d.expr(raw)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// listOf unwraps a field that is sometimes a node list and sometimes a
// single node (Program.body vs. ArrowFunctionExpression.body).
func listOf(raw json.RawMessage) []json.RawMessage {
	if isNull(raw) {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return []json.RawMessage{raw}
	}
	return list
}
