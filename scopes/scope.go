// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scopes resolves the lexical scopes and bindings of a parsed
// JavaScript program.
//
// Given a program's syntax tree, Build produces a tree of scopes, each
// holding the variable, parameter, class, and import bindings declared
// in it, and every reference to those bindings annotated with the
// syntactic context the reference appears in. The result backs
// debugger features such as listing the variables visible at a paused
// location and finding all references to a binding.
package scopes

// A Location identifies a point in a source.
// Lines are 1-based and columns are 0-based.
type Location struct {
	SourceID string
	Line     int32
	Col      int32
}

// Before reports whether l precedes m in the source.
func (l Location) Before(m Location) bool {
	return l.Line < m.Line || (l.Line == m.Line && l.Col < m.Col)
}

// ScopeType describes what kind of syntactic region a scope covers.
type ScopeType uint8

const (
	Object   ScopeType = iota // script-style global object scope
	Function                  // function body, including its parameter list
	Block                     // lexical block
	Module                    // module top level; never appears in output trees
)

var scopeTypeNames = [...]string{
	Object:   "object",
	Function: "function",
	Block:    "block",
	Module:   "module",
}

func (t ScopeType) String() string { return scopeTypeNames[t] }

// BindingKind describes how a binding was introduced.
type BindingKind uint8

const (
	Implicit BindingKind = iota // engine-introduced: this, arguments, script pseudo-globals
	Var                         // var declarations, parameters, hoisted functions
	Let
	Const
	Import // a named or default import; carries the remote name on its decl ref
)

var bindingKindNames = [...]string{
	Implicit: "implicit",
	Var:      "var",
	Let:      "let",
	Const:    "const",
	Import:   "import",
}

func (k BindingKind) String() string { return bindingKindNames[k] }

// RefKind distinguishes declaration sites from uses.
type RefKind uint8

const (
	UseRef  RefKind = iota // an identifier occurrence referring to the binding
	DeclRef                // the binding's name token at its declaration
)

// A Ref is one reference to a binding.
type Ref struct {
	Kind RefKind

	// Start and End delimit the name token (declarations) or the
	// identifier occurrence (uses).
	Start, End Location

	// DeclStart and DeclEnd delimit the whole declaring construct,
	// e.g. the full "let x = ..." statement. Declarations only.
	DeclStart, DeclEnd Location

	// ImportName is the remote name of an import binding
	// ("default" for default imports). Declarations only.
	ImportName string

	// Meta describes the syntactic wrappers around a use, innermost
	// first, or nil if the use is bare. Uses only.
	Meta *Meta
}

// A Binding is a declared name together with all of its references,
// in source order.
type Binding struct {
	Kind BindingKind
	Refs []*Ref
}

// MetaKind describes one syntactic wrapper around a reference.
type MetaKind uint8

const (
	// MetaInherit marks a semantically transparent wrapper, such as a
	// comma-discard pair (0, x) or an identity call Object(x): the
	// inner reference may be treated as if it occurred at the
	// wrapper's range.
	MetaInherit MetaKind = iota

	// MetaMember marks the reference as the object of a property
	// access with a statically known property name.
	MetaMember

	// MetaCall marks the reference as the callee of a zero-argument
	// invocation.
	MetaCall
)

var metaKindNames = [...]string{
	MetaInherit: "inherit",
	MetaMember:  "member",
	MetaCall:    "call",
}

func (k MetaKind) String() string { return metaKindNames[k] }

// A Meta is one link of an immutable wrapper chain. Parent is the
// next-outer wrapper, or nil past the outermost recognized one.
type Meta struct {
	Kind       MetaKind
	Start, End Location
	Property   string // MetaMember only
	Parent     *Meta
}

// A Scope is one node of the finished scope tree. It owns its
// children; there is no parent link in the output form.
type Scope struct {
	Type       ScopeType
	Name       string
	Start, End Location
	Bindings   map[string]*Binding
	Children   []*Scope
}

// Contains reports whether the position lies within the scope's range.
func (s *Scope) Contains(line, col int32) bool {
	p := Location{Line: line, Col: col}
	return !p.Before(s.Start) && p.Before(s.End)
}

// Path returns the chain of scopes containing the position, outermost
// first, or nil if the position is outside s.
func (s *Scope) Path(line, col int32) []*Scope {
	if !s.Contains(line, col) {
		return nil
	}
	path := []*Scope{s}
	for {
		inner := false
		for _, c := range path[len(path)-1].Children {
			if c.Contains(line, col) {
				path = append(path, c)
				inner = true
				break
			}
		}
		if !inner {
			return path
		}
	}
}

// Lookup resolves a name against a containment path, innermost scope
// first. It returns the defining scope and the binding, or nils.
func Lookup(path []*Scope, name string) (*Scope, *Binding) {
	for i := len(path) - 1; i >= 0; i-- {
		if b, ok := path[i].Bindings[name]; ok {
			return path[i], b
		}
	}
	return nil, nil
}

// The builder works on an arena of scopes addressed by index. Each
// build scope records its parent's index for lookup and hoisting; the
// parent index is dropped when the output tree is frozen.

type arena struct {
	scopes []buildScope
}

type buildScope struct {
	typ        ScopeType
	name       string
	start, end Location
	bindings   map[string]*Binding
	parent     int // index into arena.scopes, -1 for the root
	children   []int
}

func (a *arena) add(parent int, typ ScopeType, name string, start, end Location) int {
	i := len(a.scopes)
	a.scopes = append(a.scopes, buildScope{
		typ:      typ,
		name:     name,
		start:    start,
		end:      end,
		bindings: make(map[string]*Binding),
		parent:   parent,
	})
	if parent >= 0 {
		a.scopes[parent].children = append(a.scopes[parent].children, i)
	}
	return i
}

// varScope returns the nearest enclosing function or module scope at
// or above i: the hoisting target for var and function declarations.
func (a *arena) varScope(i int) int {
	for {
		s := &a.scopes[i]
		if s.typ == Function || s.typ == Module || s.parent < 0 {
			return i
		}
		i = s.parent
	}
}

// lookup searches outward from scope i for a binding of name.
func (a *arena) lookup(i int, name string) *Binding {
	for ; i >= 0; i = a.scopes[i].parent {
		if b := a.scopes[i].bindings[name]; b != nil {
			return b
		}
	}
	return nil
}

// freeze converts the build scope at i and its descendants into the
// immutable output form. Module scopes are relabeled as blocks; the
// module/block distinction is internal to the pass.
func (a *arena) freeze(i int) *Scope {
	s := &a.scopes[i]
	typ := s.typ
	if typ == Module {
		typ = Block
	}
	out := &Scope{
		Type:     typ,
		Name:     s.name,
		Start:    s.start,
		End:      s.end,
		Bindings: s.bindings,
	}
	for _, c := range s.children {
		out.Children = append(out.Children, a.freeze(c))
	}
	return out
}
