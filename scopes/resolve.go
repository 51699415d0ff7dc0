// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"go.jsscope.dev/estree"
)

// Options configures one build.
type Options struct {
	// IsGenerated marks the source as the output of a build step.
	// Generated code is always given a flat script-style global scope,
	// since module scoping does not apply to emitted code.
	IsGenerated bool
}

// A Provider supplies the inputs the pass does not compute itself.
type Provider interface {
	// GetAST returns the parsed program for a source,
	// or nil if none is available.
	GetAST(sourceID string) *estree.Program

	// IsGenerated reports whether the source is build output.
	IsGenerated(sourceID string) bool
}

// For builds the scope tree for one source using p's AST.
// It returns nil if the provider has no AST for the source.
func For(p Provider, sourceID string) []*Scope {
	prog := p.GetAST(sourceID)
	if prog == nil {
		return nil
	}
	return Build(sourceID, prog, Options{IsGenerated: p.IsGenerated(sourceID)})
}

// Build computes the scope tree of one parsed program. The result is
// a single root scope (the synthetic global), or nil if prog is nil.
// The returned tree is never mutated afterward; each call is
// independent and callers may run builds concurrently.
func Build(sourceID string, prog *estree.Program, opts Options) []*Scope {
	if prog == nil {
		return nil
	}

	start := loc(sourceID, estree.Start(prog))
	end := loc(sourceID, estree.End(prog))

	b := &builder{sourceID: sourceID, arena: &arena{}}

	// The synthetic two-level root: script-style var and function
	// bindings land on the object-typed global, while top-level
	// let/const/class/import bindings land on the lexical global.
	global := b.arena.add(-1, Object, "Global", start, end)
	for _, name := range pseudoGlobals {
		b.implicit(global, name)
	}
	lexical := b.arena.add(global, Block, "Lexical Global", start, end)
	b.scope = lexical

	estree.Walk(prog, func(n estree.Node) bool {
		if n == nil {
			b.exit()
		} else {
			b.enter(n)
		}
		return true
	})

	if opts.IsGenerated || (!prog.Module && looksLikeScript(b.arena)) {
		stripModuleScope(b.arena)
	}

	return []*Scope{b.arena.freeze(global)}
}

// pseudoGlobals are the bindings every script-style program sees on
// its global object. References to them are also how the normalizer
// recognizes script-style code.
var pseudoGlobals = []string{"module", "exports", "__dirname", "__filename", "require"}

// A builder is the traversal context of one build: the active scope,
// the stack of scopes to restore on node exit, and the chain of
// enclosing syntax nodes. It is exclusively owned by its build.
type builder struct {
	sourceID  string
	arena     *arena
	scope     int
	saved     []int
	ancestors []estree.Node
}

// enter applies the scope and binding rules for one node before its
// children are visited. It saves the active scope; exit restores it.
func (b *builder) enter(n estree.Node) {
	b.saved = append(b.saved, b.scope)

	switch n := n.(type) {
	case *estree.Program:
		module := b.push(Module, "Module", b.loc(estree.Start(n)), b.loc(estree.End(n)))
		// Module-scope this is distinct from any function's this.
		b.implicit(module, "this")

	case *estree.FunctionDeclaration:
		b.function(n, &n.Function)
	case *estree.FunctionExpression:
		b.function(n, &n.Function)
	case *estree.ArrowFunction:
		b.function(n, &n.Function)

	case *estree.ClassDeclaration:
		b.class(n, &n.Class)
	case *estree.ClassExpression:
		b.class(n, &n.Class)

	case *estree.PropertyDefinition:
		// A field initializer runs with its own receiver, like a
		// method body.
		if n.Value != nil {
			field := b.push(Function, "Class Field",
				b.loc(estree.Start(n.Value)), b.loc(estree.End(n.Value)))
			b.implicit(field, "this")
			b.implicit(field, "arguments")
		}

	case *estree.ForStatement:
		b.forHeader(n.Init, n)
	case *estree.ForInStatement:
		b.forHeader(n.Left, n)
	case *estree.ForOfStatement:
		b.forHeader(n.Left, n)

	case *estree.CatchClause:
		catch := b.push(Block, "Catch", b.loc(estree.Start(n)), b.loc(estree.End(n)))
		if n.Param != nil {
			b.declarePattern(catch, n.Param, Var,
				b.loc(estree.Start(n)), b.loc(estree.End(n)))
		}

	case *estree.BlockStatement:
		if blockHasLexical(n, b.parentNode()) {
			b.push(Block, "Block", b.loc(estree.Start(n)), b.loc(estree.End(n)))
		}

	case *estree.SwitchStatement:
		// All cases share one lexical environment.
		if switchHasLexical(n) {
			b.push(Block, "Switch", b.loc(estree.Start(n)), b.loc(estree.End(n)))
		}

	case *estree.VariableDeclaration:
		if !isLexicalForHeader(n, b.parentNode()) {
			target := b.scope
			if n.Kind == "var" {
				target = b.arena.varScope(b.scope)
			}
			for _, d := range n.Decls {
				b.declarePattern(target, d.ID, declKind(n.Kind),
					b.loc(estree.Start(n)), b.loc(estree.End(n)))
			}
		}

	case *estree.ImportDeclaration:
		b.importDecl(n)

	case *estree.Identifier:
		if isReferenced(b.parentNode(), n) {
			b.reference(n.Name, n)
		}

	case *estree.ThisExpression:
		b.reference("this", n)
	}

	b.ancestors = append(b.ancestors, n)
}

// exit restores the scope that was active when the matching enter ran.
// An exit without a matching enter is a traversal bug, never input-
// dependent, and aborts the pass.
func (b *builder) exit() {
	if len(b.saved) == 0 {
		panic("jsscope: internal error: scope stack underflow")
	}
	b.scope = b.saved[len(b.saved)-1]
	b.saved = b.saved[:len(b.saved)-1]
	b.ancestors = b.ancestors[:len(b.ancestors)-1]
}

// push makes a new child of the active scope and activates it.
func (b *builder) push(typ ScopeType, name string, start, end Location) int {
	i := b.arena.add(b.scope, typ, name, start, end)
	b.scope = i
	return i
}

// parentNode returns the node enclosing the one being entered, or nil
// at the root.
func (b *builder) parentNode() estree.Node {
	if len(b.ancestors) == 0 {
		return nil
	}
	return b.ancestors[len(b.ancestors)-1]
}

func (b *builder) loc(p estree.Position) Location {
	return loc(b.sourceID, p)
}

func loc(sourceID string, p estree.Position) Location {
	return Location{SourceID: sourceID, Line: p.Line, Col: p.Col}
}

// function applies the rules for any function-like node.
func (b *builder) function(n estree.Node, fn *estree.Function) {
	parent := b.parentNode()
	start, end := n.Span()

	// A named function expression sees its own name inside the body
	// but nowhere outside; a wrapper scope holds that one binding.
	if _, isExpr := n.(*estree.FunctionExpression); isExpr && fn.ID != nil {
		wrapper := b.push(Block, "Function Expression", b.loc(start), b.loc(end))
		b.bind(wrapper, fn.ID.Name, Const, b.declRef(fn.ID, n))
	}

	// A function declared directly in a function or module body is
	// hoisted function-wide; one inside a nested block is block-scoped.
	if _, isDecl := n.(*estree.FunctionDeclaration); isDecl && fn.ID != nil {
		kind := Let
		if b.arena.varScope(b.scope) == b.scope {
			kind = Var
		}
		b.bind(b.scope, fn.ID.Name, kind, b.declRef(fn.ID, n))
	}

	// The scope proper begins at the parameter list: the keyword and
	// arrow tokens are outside the function.
	bodyStart := start
	if len(fn.Params) > 0 {
		bodyStart = estree.Start(fn.Params[0])
	}
	scope := b.push(Function, FunctionName(n, parent), b.loc(bodyStart), b.loc(end))

	for _, p := range fn.Params {
		b.declarePattern(scope, p, Var, b.loc(start), b.loc(end))
	}

	if _, isArrow := n.(*estree.ArrowFunction); !isArrow {
		b.implicit(scope, "this")
		b.implicit(scope, "arguments")
	}
}

// class applies the rules for class declarations and expressions.
func (b *builder) class(n estree.Node, c *estree.Class) {
	if c.ID == nil {
		return
	}
	// Unlike functions, class declarations are not hoisted.
	if _, isDecl := n.(*estree.ClassDeclaration); isDecl {
		b.bind(b.scope, c.ID.Name, Let, b.declRef(c.ID, n))
	}
	start, end := n.Span()
	inner := b.push(Block, "Class", b.loc(start), b.loc(end))
	b.bind(inner, c.ID.Name, Const, b.declRef(c.ID, n))
}

// forHeader handles a lexical declaration in a loop header: the
// declaration and the loop body share one block scope, which starts at
// the declaration, not at the for keyword.
func (b *builder) forHeader(init estree.Node, loop estree.Node) {
	vd, ok := init.(*estree.VariableDeclaration)
	if !ok || !vd.Lexical() {
		return
	}
	scope := b.push(Block, "For", b.loc(estree.Start(vd)), b.loc(estree.End(loop)))
	for _, d := range vd.Decls {
		b.declarePattern(scope, d.ID, declKind(vd.Kind),
			b.loc(estree.Start(vd)), b.loc(estree.End(vd)))
	}
}

// importDecl registers the local name of each import specifier.
// Cross-module resolution is not attempted.
func (b *builder) importDecl(n *estree.ImportDeclaration) {
	for _, spec := range n.Specs {
		switch spec := spec.(type) {
		case *estree.ImportNamespaceSpecifier:
			// Namespace objects are not live re-exports; they behave
			// like ordinary constants.
			b.bind(b.scope, spec.Local.Name, Const, b.declRef(spec.Local, n))
		case *estree.ImportDefaultSpecifier:
			ref := b.declRef(spec.Local, n)
			ref.ImportName = "default"
			b.bind(b.scope, spec.Local.Name, Import, ref)
		case *estree.ImportSpecifier:
			ref := b.declRef(spec.Local, n)
			ref.ImportName = spec.ImportedName()
			b.bind(b.scope, spec.Local.Name, Import, ref)
		}
	}
}

// declarePattern registers every plain name bound by a declaration
// pattern, recursing through destructuring forms.
func (b *builder) declarePattern(scope int, p estree.Pattern, kind BindingKind, declStart, declEnd Location) {
	switch p := p.(type) {
	case *estree.Identifier:
		ref := &Ref{
			Kind:      DeclRef,
			Start:     b.loc(estree.Start(p)),
			End:       b.loc(estree.End(p)),
			DeclStart: declStart,
			DeclEnd:   declEnd,
		}
		b.bind(scope, p.Name, kind, ref)
	case *estree.ObjectPattern:
		for _, prop := range p.Props {
			switch prop := prop.(type) {
			case *estree.PatternProperty:
				b.declarePattern(scope, prop.Value, kind, declStart, declEnd)
			case *estree.RestElement:
				b.declarePattern(scope, prop.Arg, kind, declStart, declEnd)
			}
		}
	case *estree.ArrayPattern:
		for _, elem := range p.Elems {
			if elem != nil {
				b.declarePattern(scope, elem, kind, declStart, declEnd)
			}
		}
	case *estree.AssignmentPattern:
		b.declarePattern(scope, p.Left, kind, declStart, declEnd)
	case *estree.RestElement:
		b.declarePattern(scope, p.Arg, kind, declStart, declEnd)
	}
	// Member expressions in target position assign to a property,
	// not a binding.
}

// declRef makes a declaration reference for a name token within decl.
func (b *builder) declRef(id *estree.Identifier, decl estree.Node) *Ref {
	return &Ref{
		Kind:      DeclRef,
		Start:     b.loc(estree.Start(id)),
		End:       b.loc(estree.End(id)),
		DeclStart: b.loc(estree.Start(decl)),
		DeclEnd:   b.loc(estree.End(decl)),
	}
}

// bind registers a binding in the given scope, or appends a reference
// to the existing binding of that name. Names are unique per scope.
func (b *builder) bind(scope int, name string, kind BindingKind, ref *Ref) {
	s := &b.arena.scopes[scope]
	if existing := s.bindings[name]; existing != nil {
		existing.Refs = append(existing.Refs, ref)
		return
	}
	s.bindings[name] = &Binding{Kind: kind, Refs: []*Ref{ref}}
}

// implicit seeds an engine-introduced binding with no references.
func (b *builder) implicit(scope int, name string) {
	s := &b.arena.scopes[scope]
	if s.bindings[name] == nil {
		s.bindings[name] = &Binding{Kind: Implicit}
	}
}

// reference resolves an identifier (or this) use by searching outward
// from the active scope. An unresolved name is a free variable this
// pass does not track, not an error.
func (b *builder) reference(name string, n estree.Node) {
	bind := b.arena.lookup(b.scope, name)
	if bind == nil {
		return
	}
	start, end := n.Span()
	bind.Refs = append(bind.Refs, &Ref{
		Kind:  UseRef,
		Start: b.loc(start),
		End:   b.loc(end),
		Meta:  b.metaFor(n),
	})
}

// blockHasLexical reports whether a block needs a scope of its own:
// it directly contains a let/const, a class declaration, or, when the
// block is not a function body, a function declaration.
func blockHasLexical(n *estree.BlockStatement, parent estree.Node) bool {
	isFunctionBody := false
	if fn := functionOf(parent); fn != nil && fn.Body == estree.Node(n) {
		isFunctionBody = true
	}
	for _, s := range n.Body {
		switch s := s.(type) {
		case *estree.VariableDeclaration:
			if s.Lexical() {
				return true
			}
		case *estree.ClassDeclaration:
			return true
		case *estree.FunctionDeclaration:
			if !isFunctionBody {
				return true
			}
		}
	}
	return false
}

func switchHasLexical(n *estree.SwitchStatement) bool {
	for _, c := range n.Cases {
		for _, s := range c.Body {
			if vd, ok := s.(*estree.VariableDeclaration); ok && vd.Lexical() {
				return true
			}
		}
	}
	return false
}

// isLexicalForHeader reports whether the declaration is the init/left
// of a loop header and lexical; those are registered by the loop rule.
func isLexicalForHeader(n *estree.VariableDeclaration, parent estree.Node) bool {
	if !n.Lexical() {
		return false
	}
	switch p := parent.(type) {
	case *estree.ForStatement:
		return p.Init == n
	case *estree.ForInStatement:
		return p.Left == n
	case *estree.ForOfStatement:
		return p.Left == n
	}
	return false
}

func declKind(kind string) BindingKind {
	switch kind {
	case "let":
		return Let
	case "const":
		return Const
	}
	return Var
}

// isReferenced reports whether an identifier in the given parent
// context denotes a use of a binding, as opposed to a declaration
// target, a property name, a label, or similar.
func isReferenced(parent estree.Node, n *estree.Identifier) bool {
	switch p := parent.(type) {
	case *estree.MemberExpression:
		if p.Property == n {
			return p.Computed
		}
		return true
	case *estree.VariableDeclarator:
		return p.Init == n
	case *estree.FunctionDeclaration:
		return inFunctionBody(&p.Function, n)
	case *estree.FunctionExpression:
		return inFunctionBody(&p.Function, n)
	case *estree.ArrowFunction:
		return inFunctionBody(&p.Function, n)
	case *estree.ClassDeclaration:
		return p.ID != n
	case *estree.ClassExpression:
		return p.ID != n
	case *estree.MethodDefinition:
		if p.Key == n {
			return p.Computed
		}
		return true
	case *estree.PropertyDefinition:
		if p.Key == n {
			return p.Computed
		}
		return true
	case *estree.Property:
		if p.Key == n {
			return p.Computed
		}
		return true
	case *estree.PatternProperty:
		if p.Key == n {
			return p.Computed
		}
		return false // the value is a binding target
	case *estree.AssignmentPattern:
		return p.Right == n
	case *estree.ObjectPattern, *estree.ArrayPattern, *estree.RestElement:
		return false
	case *estree.LabeledStatement:
		return p.Label != n
	case *estree.BreakStatement, *estree.ContinueStatement:
		return false
	case *estree.ImportSpecifier, *estree.ImportDefaultSpecifier,
		*estree.ImportNamespaceSpecifier:
		return false
	case *estree.ExportSpecifier:
		return p.Local == n
	case *estree.CatchClause:
		return p.Param != estree.Pattern(n)
	}
	return true
}

func inFunctionBody(fn *estree.Function, n *estree.Identifier) bool {
	if fn.ID == n {
		return false
	}
	for _, p := range fn.Params {
		if p == estree.Pattern(n) {
			return false
		}
	}
	return true
}

func functionOf(n estree.Node) *estree.Function {
	switch n := n.(type) {
	case *estree.FunctionDeclaration:
		return &n.Function
	case *estree.FunctionExpression:
		return &n.Function
	case *estree.ArrowFunction:
		return &n.Function
	}
	return nil
}
