// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package estree defines an abstract syntax tree for JavaScript programs
// in the shape produced by ESTree-conformant parsers, plus a decoder for
// the JSON interchange form and a traversal over the tree.
//
// The tree is a closed union: one struct per syntactic form this module
// handles, each implementing Node and one of the Stmt, Expr, or Pattern
// marker interfaces. Forms outside the union decode to Opaque leaves.
package estree

// A Position identifies a point in the source text.
// Lines are 1-based and columns are 0-based, as ESTree emits them.
type Position struct {
	Line int32
	Col  int32
}

// IsValid reports whether the position was set by the decoder.
func (p Position) IsValid() bool { return p.Line > 0 }

// Before reports whether p precedes q in the source.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}

// A Node is a node in a JavaScript syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// span is embedded by every concrete node.
// Unlike a hand-built tree, decoded positions are stored, not derived.
type span struct {
	StartPos Position
	EndPos   Position
}

func (s span) Span() (start, end Position) { return s.StartPos, s.EndPos }

// A Stmt is a JavaScript statement or declaration.
type Stmt interface {
	Node
	stmt()
}

func (*BlockStatement) stmt()           {}
func (*BreakStatement) stmt()           {}
func (*ClassDeclaration) stmt()         {}
func (*ContinueStatement) stmt()        {}
func (*DoWhileStatement) stmt()         {}
func (*EmptyStatement) stmt()           {}
func (*ExportDefaultDeclaration) stmt() {}
func (*ExportNamedDeclaration) stmt()   {}
func (*ExpressionStatement) stmt()      {}
func (*ForInStatement) stmt()           {}
func (*ForOfStatement) stmt()           {}
func (*ForStatement) stmt()             {}
func (*FunctionDeclaration) stmt()      {}
func (*IfStatement) stmt()              {}
func (*ImportDeclaration) stmt()        {}
func (*LabeledStatement) stmt()         {}
func (*Opaque) stmt()                   {}
func (*ReturnStatement) stmt()          {}
func (*SwitchStatement) stmt()          {}
func (*ThrowStatement) stmt()           {}
func (*TryStatement) stmt()             {}
func (*VariableDeclaration) stmt()      {}
func (*WhileStatement) stmt()           {}

// An Expr is a JavaScript expression.
type Expr interface {
	Node
	expr()
}

func (*ArrayExpression) expr()          {}
func (*ArrowFunction) expr()            {}
func (*AssignmentExpression) expr()     {}
func (*AwaitExpression) expr()          {}
func (*BinaryExpression) expr()         {}
func (*CallExpression) expr()           {}
func (*ClassExpression) expr()          {}
func (*ConditionalExpression) expr()    {}
func (*FunctionExpression) expr()       {}
func (*Identifier) expr()               {}
func (*Literal) expr()                  {}
func (*LogicalExpression) expr()        {}
func (*MemberExpression) expr()         {}
func (*NewExpression) expr()            {}
func (*ObjectExpression) expr()         {}
func (*Opaque) expr()                   {}
func (*SequenceExpression) expr()       {}
func (*SpreadElement) expr()            {}
func (*TaggedTemplateExpression) expr() {}
func (*TemplateLiteral) expr()          {}
func (*ThisExpression) expr()           {}
func (*UnaryExpression) expr()          {}
func (*UpdateExpression) expr()         {}
func (*YieldExpression) expr()          {}

// A Pattern is a binding target: a plain name or a destructuring form.
type Pattern interface {
	Node
	pattern()
}

func (*ArrayPattern) pattern()      {}
func (*AssignmentPattern) pattern() {}
func (*Identifier) pattern()        {}
func (*MemberExpression) pattern()  {} // assignment targets such as a.b = 1
func (*ObjectPattern) pattern()     {}
func (*Opaque) pattern()            {}
func (*RestElement) pattern()       {}

// A Program is the root of a parsed source file.
type Program struct {
	span
	SourceID string
	Module   bool // sourceType was "module", not "script"
	Body     []Stmt
}

// A VariableDeclaration is var/let/const with one or more declarators.
type VariableDeclaration struct {
	span
	Kind  string // "var", "let", or "const"
	Decls []*VariableDeclarator
}

// Lexical reports whether the declaration is block-scoped.
func (d *VariableDeclaration) Lexical() bool {
	return d.Kind == "let" || d.Kind == "const"
}

// A VariableDeclarator is one ID = Init pair of a declaration.
type VariableDeclarator struct {
	span
	ID   Pattern
	Init Expr // may be nil
}

// A Function holds the parts common to all function-like forms.
type Function struct {
	span
	ID        *Identifier // nil if anonymous
	Params    []Pattern
	Body      Node // *BlockStatement, or an Expr for concise arrows
	Async     bool
	Generator bool
}

// A FunctionDeclaration is a hoisted function statement.
type FunctionDeclaration struct {
	Function
}

// A FunctionExpression is a function in expression position,
// including method bodies.
type FunctionExpression struct {
	Function
}

// An ArrowFunction is an arrow function expression.
// Arrows have no this/arguments of their own.
type ArrowFunction struct {
	Function
}

// A Class holds the parts common to class declarations and expressions.
type Class struct {
	span
	ID    *Identifier // nil if anonymous
	Super Expr        // may be nil
	Body  *ClassBody
}

// A ClassDeclaration is a class statement.
type ClassDeclaration struct {
	Class
}

// A ClassExpression is a class in expression position.
type ClassExpression struct {
	Class
}

// A ClassBody is the brace-enclosed member list of a class.
type ClassBody struct {
	span
	Body []Node // *MethodDefinition | *PropertyDefinition | *Opaque
}

// A MethodDefinition is a method, getter, setter, or constructor.
type MethodDefinition struct {
	span
	Key      Expr
	Value    *FunctionExpression
	Kind     string // "method", "get", "set", or "constructor"
	Computed bool
	Static   bool
}

// A PropertyDefinition is a class field, possibly with an initializer.
type PropertyDefinition struct {
	span
	Key      Expr
	Value    Expr // may be nil
	Computed bool
	Static   bool
}

// A BlockStatement is a brace-enclosed statement list.
type BlockStatement struct {
	span
	Body []Stmt
}

// An ExpressionStatement is an expression evaluated for side effects.
type ExpressionStatement struct {
	span
	X Expr
}

// An IfStatement is a conditional statement.
type IfStatement struct {
	span
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

// A ForStatement is a classic three-clause loop.
type ForStatement struct {
	span
	Init   Node // *VariableDeclaration, Expr, or nil
	Test   Expr // may be nil
	Update Expr // may be nil
	Body   Stmt
}

// A ForInStatement is a for-in enumeration loop.
type ForInStatement struct {
	span
	Left  Node // *VariableDeclaration or Pattern
	Right Expr
	Body  Stmt
}

// A ForOfStatement is a for-of iteration loop.
type ForOfStatement struct {
	span
	Left  Node // *VariableDeclaration or Pattern
	Right Expr
	Body  Stmt
}

// A WhileStatement is a while loop.
type WhileStatement struct {
	span
	Cond Expr
	Body Stmt
}

// A DoWhileStatement is a do-while loop.
type DoWhileStatement struct {
	span
	Body Stmt
	Cond Expr
}

// A SwitchStatement is a switch over a discriminant.
// All cases share one lexical environment.
type SwitchStatement struct {
	span
	Disc  Expr
	Cases []*SwitchCase
}

// A SwitchCase is one case (or default) clause of a switch.
type SwitchCase struct {
	span
	Test Expr // nil for default
	Body []Stmt
}

// A TryStatement is try/catch/finally.
type TryStatement struct {
	span
	Block     *BlockStatement
	Handler   *CatchClause // may be nil
	Finalizer *BlockStatement
}

// A CatchClause is the catch part of a try statement.
type CatchClause struct {
	span
	Param Pattern // nil for catch { }
	Body  *BlockStatement
}

// A ReturnStatement returns from a function.
type ReturnStatement struct {
	span
	Arg Expr // may be nil
}

// A ThrowStatement raises an exception.
type ThrowStatement struct {
	span
	Arg Expr
}

// A LabeledStatement attaches a label to a statement.
type LabeledStatement struct {
	span
	Label *Identifier
	Body  Stmt
}

// A BreakStatement exits a loop or labeled statement.
type BreakStatement struct {
	span
	Label *Identifier // may be nil
}

// A ContinueStatement resumes the next loop iteration.
type ContinueStatement struct {
	span
	Label *Identifier // may be nil
}

// An EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	span
}

// An ImportDeclaration binds names from another module.
// Only the local names matter to this module; the remote module
// is never resolved.
type ImportDeclaration struct {
	span
	Specs  []Node // *ImportSpecifier | *ImportDefaultSpecifier | *ImportNamespaceSpecifier
	Source *Literal
}

// An ImportSpecifier is a named import: import { a as b } from "m".
type ImportSpecifier struct {
	span
	Local    *Identifier
	Imported Node // *Identifier or string *Literal
}

// ImportedName returns the remote name the specifier refers to.
func (s *ImportSpecifier) ImportedName() string {
	switch imp := s.Imported.(type) {
	case *Identifier:
		return imp.Name
	case *Literal:
		if str, ok := imp.Value.(string); ok {
			return str
		}
	}
	return ""
}

// An ImportDefaultSpecifier is a default import: import a from "m".
type ImportDefaultSpecifier struct {
	span
	Local *Identifier
}

// An ImportNamespaceSpecifier is a namespace import: import * as a from "m".
type ImportNamespaceSpecifier struct {
	span
	Local *Identifier
}

// An ExportNamedDeclaration is export of a declaration or specifier list.
type ExportNamedDeclaration struct {
	span
	Decl   Stmt   // may be nil
	Specs  []Node // *ExportSpecifier
	Source *Literal
}

// An ExportSpecifier is one name of an export list: export { a as b }.
type ExportSpecifier struct {
	span
	Local    *Identifier
	Exported Node
}

// An ExportDefaultDeclaration is export default of a declaration
// or expression.
type ExportDefaultDeclaration struct {
	span
	Decl Node
}

// An Identifier is a name in the source.
type Identifier struct {
	span
	Name string
}

// A ThisExpression is the this keyword.
type ThisExpression struct {
	span
}

// A Literal is a literal string, number, boolean, null, or regexp.
type Literal struct {
	span
	Value interface{} // string | float64 | bool | nil
	Raw   string
}

// IsNumber reports whether the literal is numeric.
func (l *Literal) IsNumber() bool {
	_, ok := l.Value.(float64)
	return ok
}

// StringValue returns the literal's string value, if it is a string.
func (l *Literal) StringValue() (string, bool) {
	s, ok := l.Value.(string)
	return s, ok
}

// A TemplateLiteral is a template string; only the interpolated
// expressions are retained.
type TemplateLiteral struct {
	span
	Exprs []Expr
}

// A TaggedTemplateExpression is tag`template`.
type TaggedTemplateExpression struct {
	span
	Tag   Expr
	Quasi *TemplateLiteral
}

// A MemberExpression is a property access: Object.Property
// or Object[Property].
type MemberExpression struct {
	span
	Object   Expr
	Property Expr
	Computed bool
	Optional bool // a?.b
}

// PropertyName returns the accessed property name when it is statically
// known: a non-computed identifier key, or a computed string literal.
func (m *MemberExpression) PropertyName() (string, bool) {
	if !m.Computed {
		if id, ok := m.Property.(*Identifier); ok {
			return id.Name, true
		}
		return "", false
	}
	if lit, ok := m.Property.(*Literal); ok {
		return lit.StringValue()
	}
	return "", false
}

// A CallExpression is an invocation: Callee(Args).
type CallExpression struct {
	span
	Callee   Expr
	Args     []Expr
	Optional bool // f?.()
}

// A NewExpression is a constructor invocation: new Callee(Args).
type NewExpression struct {
	span
	Callee Expr
	Args   []Expr
}

// A SequenceExpression is a comma expression: Exprs[0], Exprs[1], ...
type SequenceExpression struct {
	span
	Exprs []Expr
}

// An AssignmentExpression assigns Value to Target: Target Op Value.
type AssignmentExpression struct {
	span
	Op     string // "=", "+=", ...
	Target Node   // Pattern or Expr
	Value  Expr
}

// A BinaryExpression is X Op Y for a non-short-circuit operator.
type BinaryExpression struct {
	span
	Op string
	X  Expr
	Y  Expr
}

// A LogicalExpression is X Op Y for &&, ||, or ??.
type LogicalExpression struct {
	span
	Op string
	X  Expr
	Y  Expr
}

// A UnaryExpression is Op X.
type UnaryExpression struct {
	span
	Op string
	X  Expr
}

// An UpdateExpression is ++X, --X, X++, or X--.
type UpdateExpression struct {
	span
	Op     string
	X      Expr
	Prefix bool
}

// A ConditionalExpression is Cond ? Then : Else.
type ConditionalExpression struct {
	span
	Cond Expr
	Then Expr
	Else Expr
}

// A SpreadElement is ...Arg in a call, array, or object.
type SpreadElement struct {
	span
	Arg Expr
}

// An ObjectExpression is an object literal.
type ObjectExpression struct {
	span
	Props []Node // *Property | *SpreadElement
}

// A Property is one key-value entry of an object literal.
type Property struct {
	span
	Key       Expr
	Value     Expr
	Kind      string // "init", "get", or "set"
	Computed  bool
	Shorthand bool
	Method    bool
}

// An ArrayExpression is an array literal; holes are nil elements.
type ArrayExpression struct {
	span
	Elems []Expr
}

// An ObjectPattern destructures an object.
type ObjectPattern struct {
	span
	Props []Node // *PatternProperty | *RestElement
}

// A PatternProperty is one key-target entry of an object pattern.
type PatternProperty struct {
	span
	Key      Expr
	Value    Pattern
	Computed bool
}

// An ArrayPattern destructures an array; holes are nil elements.
type ArrayPattern struct {
	span
	Elems []Pattern
}

// An AssignmentPattern is a binding target with a default: Left = Right.
type AssignmentPattern struct {
	span
	Left  Pattern
	Right Expr
}

// A RestElement is ...Arg in a pattern or parameter list.
type RestElement struct {
	span
	Arg Pattern
}

// An AwaitExpression is await Arg.
type AwaitExpression struct {
	span
	Arg Expr
}

// A YieldExpression is yield or yield* Arg.
type YieldExpression struct {
	span
	Arg      Expr // may be nil
	Delegate bool
}

// An Opaque node stands in for a syntactic form outside the union.
// It is a leaf: the traversal does not descend into it.
type Opaque struct {
	span
	Type string // the ESTree type tag
}
