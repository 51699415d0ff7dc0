// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"go.jsscope.dev/estree"
)

// metaFor classifies the syntactic wrappers around the reference node
// currently being entered, using the builder's ancestor chain.
func (b *builder) metaFor(n estree.Node) *Meta {
	return b.meta(n, b.ancestors)
}

// meta walks outward from n through its ancestors, emitting one chain
// link per recognized wrapper. The link for the innermost wrapper is
// returned; each link's Parent is the next wrapper out. Recursion
// stops at the first shape it does not recognize, or when fewer than
// two ancestors remain (nothing meaningful wraps a root expression).
func (b *builder) meta(n estree.Node, ancestors []estree.Node) *Meta {
	if len(ancestors) < 2 {
		return nil
	}
	parent := ancestors[len(ancestors)-1]
	grandparent := ancestors[len(ancestors)-2]
	outer := ancestors[:len(ancestors)-1]

	switch p := parent.(type) {
	case *estree.SequenceExpression:
		// The comma-discard idiom (0, x): the pair is transparent and
		// x may be treated as used at the pair's range. When the pair
		// is itself called with no arguments, as in (0, obj.method)(),
		// widen the range over the wrapping parentheses so it covers
		// the idiom.
		if len(p.Exprs) == 2 && isNumericLiteral(p.Exprs[0]) && p.Exprs[1] == n {
			start, end := p.Span()
			if call, ok := grandparent.(*estree.CallExpression); ok &&
				call.Callee == p && len(call.Args) == 0 {
				start.Col--
				end.Col++
			}
			return &Meta{
				Kind:   MetaInherit,
				Start:  b.loc(start),
				End:    b.loc(end),
				Parent: b.meta(p, outer),
			}
		}

	case *estree.CallExpression:
		// Object(x) returns x's value unchanged; treat the call as
		// transparent.
		if callee, ok := p.Callee.(*estree.Identifier); ok &&
			callee.Name == "Object" && len(p.Args) == 1 && p.Args[0] == n {
			start, end := p.Span()
			return &Meta{
				Kind:   MetaInherit,
				Start:  b.loc(start),
				End:    b.loc(end),
				Parent: b.meta(p, outer),
			}
		}
		if p.Callee == n && len(p.Args) == 0 {
			start, end := p.Span()
			return &Meta{
				Kind:   MetaCall,
				Start:  b.loc(start),
				End:    b.loc(end),
				Parent: b.meta(p, outer),
			}
		}

	case *estree.MemberExpression:
		if p.Object == n {
			// A computed access with a non-literal key is not
			// statically resolvable; the chain ends here.
			if name, ok := p.PropertyName(); ok {
				start, end := p.Span()
				return &Meta{
					Kind:     MetaMember,
					Start:    b.loc(start),
					End:      b.loc(end),
					Property: name,
					Parent:   b.meta(p, outer),
				}
			}
		}
	}
	return nil
}

func isNumericLiteral(e estree.Expr) bool {
	lit, ok := e.(*estree.Literal)
	return ok && lit.IsNumber()
}
