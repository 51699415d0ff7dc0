// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estree

// Walk traverses the syntax tree in depth-first order, in source order
// within each node. It calls f(n) for each node n before visiting n's
// children. If f returns false, Walk does not visit n's children.
// Walk calls f(nil) on leaving each visited node's subtree.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		walkStmts(n.Body, f)

	case *VariableDeclaration:
		for _, d := range n.Decls {
			Walk(d, f)
		}
	case *VariableDeclarator:
		walk(n.ID, f)
		walk(n.Init, f)

	case *FunctionDeclaration:
		walkFunction(&n.Function, f)
	case *FunctionExpression:
		walkFunction(&n.Function, f)
	case *ArrowFunction:
		walkFunction(&n.Function, f)

	case *ClassDeclaration:
		walkClass(&n.Class, f)
	case *ClassExpression:
		walkClass(&n.Class, f)
	case *ClassBody:
		for _, m := range n.Body {
			Walk(m, f)
		}
	case *MethodDefinition:
		walk(n.Key, f)
		walk(n.Value, f)
	case *PropertyDefinition:
		walk(n.Key, f)
		walk(n.Value, f)

	case *BlockStatement:
		walkStmts(n.Body, f)
	case *ExpressionStatement:
		walk(n.X, f)
	case *IfStatement:
		walk(n.Cond, f)
		walk(n.Then, f)
		walk(n.Else, f)
	case *ForStatement:
		walk(n.Init, f)
		walk(n.Test, f)
		walk(n.Update, f)
		walk(n.Body, f)
	case *ForInStatement:
		walk(n.Left, f)
		walk(n.Right, f)
		walk(n.Body, f)
	case *ForOfStatement:
		walk(n.Left, f)
		walk(n.Right, f)
		walk(n.Body, f)
	case *WhileStatement:
		walk(n.Cond, f)
		walk(n.Body, f)
	case *DoWhileStatement:
		walk(n.Body, f)
		walk(n.Cond, f)
	case *SwitchStatement:
		walk(n.Disc, f)
		for _, c := range n.Cases {
			Walk(c, f)
		}
	case *SwitchCase:
		walk(n.Test, f)
		walkStmts(n.Body, f)
	case *TryStatement:
		walk(n.Block, f)
		walk(n.Handler, f)
		walk(n.Finalizer, f)
	case *CatchClause:
		walk(n.Param, f)
		walk(n.Body, f)
	case *ReturnStatement:
		walk(n.Arg, f)
	case *ThrowStatement:
		walk(n.Arg, f)
	case *LabeledStatement:
		walk(n.Label, f)
		walk(n.Body, f)
	case *BreakStatement:
		walk(n.Label, f)
	case *ContinueStatement:
		walk(n.Label, f)
	case *EmptyStatement:
		// no children

	case *ImportDeclaration:
		for _, s := range n.Specs {
			Walk(s, f)
		}
		walk(n.Source, f)
	case *ImportSpecifier:
		walk(n.Local, f)
		walk(n.Imported, f)
	case *ImportDefaultSpecifier:
		walk(n.Local, f)
	case *ImportNamespaceSpecifier:
		walk(n.Local, f)
	case *ExportNamedDeclaration:
		walk(n.Decl, f)
		for _, s := range n.Specs {
			Walk(s, f)
		}
		walk(n.Source, f)
	case *ExportSpecifier:
		walk(n.Local, f)
		walk(n.Exported, f)
	case *ExportDefaultDeclaration:
		walk(n.Decl, f)

	case *Identifier, *ThisExpression, *Literal, *Opaque:
		// leaves

	case *TemplateLiteral:
		for _, e := range n.Exprs {
			walk(e, f)
		}
	case *TaggedTemplateExpression:
		walk(n.Tag, f)
		walk(n.Quasi, f)
	case *MemberExpression:
		walk(n.Object, f)
		walk(n.Property, f)
	case *CallExpression:
		walk(n.Callee, f)
		for _, a := range n.Args {
			walk(a, f)
		}
	case *NewExpression:
		walk(n.Callee, f)
		for _, a := range n.Args {
			walk(a, f)
		}
	case *SequenceExpression:
		for _, e := range n.Exprs {
			walk(e, f)
		}
	case *AssignmentExpression:
		walk(n.Target, f)
		walk(n.Value, f)
	case *BinaryExpression:
		walk(n.X, f)
		walk(n.Y, f)
	case *LogicalExpression:
		walk(n.X, f)
		walk(n.Y, f)
	case *UnaryExpression:
		walk(n.X, f)
	case *UpdateExpression:
		walk(n.X, f)
	case *ConditionalExpression:
		walk(n.Cond, f)
		walk(n.Then, f)
		walk(n.Else, f)
	case *SpreadElement:
		walk(n.Arg, f)
	case *ObjectExpression:
		for _, p := range n.Props {
			Walk(p, f)
		}
	case *Property:
		walk(n.Key, f)
		walk(n.Value, f)
	case *ArrayExpression:
		for _, e := range n.Elems {
			walk(e, f)
		}
	case *AwaitExpression:
		walk(n.Arg, f)
	case *YieldExpression:
		walk(n.Arg, f)

	case *ObjectPattern:
		for _, p := range n.Props {
			Walk(p, f)
		}
	case *PatternProperty:
		walk(n.Key, f)
		walk(n.Value, f)
	case *ArrayPattern:
		for _, e := range n.Elems {
			walk(e, f)
		}
	case *AssignmentPattern:
		walk(n.Left, f)
		walk(n.Right, f)
	case *RestElement:
		walk(n.Arg, f)

	default:
		panic(n)
	}

	f(nil) // pop
}

func walkFunction(fn *Function, f func(Node) bool) {
	walk(fn.ID, f)
	for _, p := range fn.Params {
		walk(p, f)
	}
	walk(fn.Body, f)
}

func walkClass(c *Class, f func(Node) bool) {
	walk(c.ID, f)
	walk(c.Super, f)
	walk(c.Body, f)
}

func walkStmts(stmts []Stmt, f func(Node) bool) {
	for _, s := range stmts {
		Walk(s, f)
	}
}

// walk is Walk for possibly-absent children held in interface fields.
// A nil interface and a typed nil pointer are both absent.
func walk(n Node, f func(Node) bool) {
	if n == nil || isNilNode(n) {
		return
	}
	Walk(n, f)
}

func isNilNode(n Node) bool {
	switch n := n.(type) {
	case *Identifier:
		return n == nil
	case *Literal:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *CatchClause:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *FunctionExpression:
		return n == nil
	case *ClassBody:
		return n == nil
	}
	return false
}
