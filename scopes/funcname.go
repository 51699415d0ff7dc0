// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"go.jsscope.dev/estree"
)

// FunctionName picks the human-readable display name for a function
// scope: the function's own name if it has one, else a name inferred
// from the enclosing declarator, assignment, property, or method, else
// "anonymous". The choice is cosmetic and has no effect on bindings.
func FunctionName(n, parent estree.Node) string {
	if fn := functionOf(n); fn != nil && fn.ID != nil {
		return fn.ID.Name
	}

	switch p := parent.(type) {
	case *estree.VariableDeclarator:
		if id, ok := p.ID.(*estree.Identifier); ok {
			return id.Name
		}
	case *estree.AssignmentExpression:
		if id, ok := p.Target.(*estree.Identifier); ok {
			return id.Name
		}
		if m, ok := p.Target.(*estree.MemberExpression); ok {
			if name, ok := m.PropertyName(); ok {
				return name
			}
		}
	case *estree.Property:
		if name := keyName(p.Key, p.Computed); name != "" {
			return name
		}
	case *estree.MethodDefinition:
		if name := keyName(p.Key, p.Computed); name != "" {
			return name
		}
	case *estree.PropertyDefinition:
		if name := keyName(p.Key, p.Computed); name != "" {
			return name
		}
	case *estree.ExportDefaultDeclaration:
		return "default"
	}
	return "anonymous"
}

func keyName(key estree.Expr, computed bool) string {
	if computed {
		if lit, ok := key.(*estree.Literal); ok {
			if s, ok := lit.StringValue(); ok {
				return s
			}
		}
		return ""
	}
	if id, ok := key.(*estree.Identifier); ok {
		return id.Name
	}
	if lit, ok := key.(*estree.Literal); ok {
		if s, ok := lit.StringValue(); ok {
			return s
		}
	}
	return ""
}
