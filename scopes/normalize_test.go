// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes_test

import (
	"testing"

	"go.jsscope.dev/scopes"
)

func TestCommonJSCollapse(t *testing.T) {
	// module.exports = {};
	// 0         1
	// 01234567890123456789
	src := "module.exports = {};"
	roots := build(t, script(src,
		nd("ExpressionStatement", 0, 20, j{"expression": nd("AssignmentExpression", 0, 19, j{
			"operator": "=",
			"left": nd("MemberExpression", 0, 14, j{
				"object":   identAt("module", 0),
				"property": identAt("exports", 7),
				"computed": false,
			}),
			"right": nd("ObjectExpression", 17, 19, j{"properties": []j{}}),
		})}),
	))
	checkInvariants(t, roots)

	// The pseudo-global reference marks the program as script-style:
	// the module level is dissolved into the global pair.
	if hasScope(roots, "Module") {
		t.Fatal("script-style program must not keep a module scope")
	}

	root := roots[0]
	mod := binding(t, root, "module")
	if len(mod.Refs) != 1 {
		t.Fatalf("module has %d refs, want 1", len(mod.Refs))
	}
	checkRef(t, mod.Refs[0], scopes.UseRef, 0, 6)
	meta := mod.Refs[0].Meta
	if meta == nil || meta.Kind != scopes.MetaMember || meta.Property != "exports" {
		t.Fatalf("module ref meta = %+v, want member .exports", meta)
	}

	// The implicit module-level this migrates to the global object.
	if b := binding(t, root, "this"); b.Kind != scopes.Implicit {
		t.Errorf("global this kind = %s, want implicit", b.Kind)
	}

	lexical := findScope(t, roots, "Lexical Global")
	if len(lexical.Bindings) != 0 || len(lexical.Children) != 0 {
		t.Errorf("lexical global has %d bindings and %d children, want none",
			len(lexical.Bindings), len(lexical.Children))
	}
}

func TestCollapseKindPlacement(t *testing.T) {
	// var q = require("fs"); let s = 1;
	// 0         1         2         3
	// 012345678901234567890123456789012
	src := `var q = require("fs"); let s = 1;`
	roots := build(t, script(src,
		nd("VariableDeclaration", 0, 22, j{"kind": "var", "declarations": []j{
			nd("VariableDeclarator", 4, 21, j{
				"id": identAt("q", 4),
				"init": nd("CallExpression", 8, 21, j{
					"callee":    identAt("require", 8),
					"arguments": []j{strAt("fs", 16)},
				}),
			}),
		}}),
		nd("VariableDeclaration", 23, 33, j{"kind": "let", "declarations": []j{
			nd("VariableDeclarator", 27, 32, j{"id": identAt("s", 27), "init": numAt("1", 31, 1)}),
		}}),
	))
	checkInvariants(t, roots)

	if hasScope(roots, "Module") {
		t.Fatal("require use must trigger the collapse")
	}

	// var lands on the global object, let on the lexical global.
	root := roots[0]
	if q := binding(t, root, "q"); q.Kind != scopes.Var {
		t.Errorf("q kind = %s, want var", q.Kind)
	}
	lexical := findScope(t, roots, "Lexical Global")
	if s := binding(t, lexical, "s"); s.Kind != scopes.Let {
		t.Errorf("s kind = %s, want let", s.Kind)
	}
	if root.Bindings["s"] != nil || lexical.Bindings["q"] != nil {
		t.Error("bindings placed on the wrong side of the global pair")
	}

	req := binding(t, root, "require")
	if len(req.Refs) != 1 {
		t.Fatalf("require has %d refs, want 1", len(req.Refs))
	}
	// A one-argument call is not a zero-argument chain link.
	if req.Refs[0].Meta != nil {
		t.Errorf("require ref meta = %+v, want none", req.Refs[0].Meta)
	}
}

func TestCollapseReparentsChildren(t *testing.T) {
	// exports.f = function f() { return 1; };
	// 0         1         2         3
	// 012345678901234567890123456789012345678
	src := "exports.f = function f() { return 1; };"
	roots := build(t, script(src,
		nd("ExpressionStatement", 0, 39, j{"expression": nd("AssignmentExpression", 0, 38, j{
			"operator": "=",
			"left": nd("MemberExpression", 0, 9, j{
				"object":   identAt("exports", 0),
				"property": identAt("f", 8),
				"computed": false,
			}),
			"right": nd("FunctionExpression", 12, 38, j{
				"id":     identAt("f", 21),
				"params": []j{},
				"body": nd("BlockStatement", 25, 38, j{"body": []j{
					nd("ReturnStatement", 27, 36, j{"argument": numAt("1", 34, 1)}),
				}}),
			}),
		})}),
	))
	checkInvariants(t, roots)

	// The function's scopes survive the collapse under the lexical
	// global.
	lexical := findScope(t, roots, "Lexical Global")
	if len(lexical.Children) != 1 {
		t.Fatalf("lexical global has %d children, want 1", len(lexical.Children))
	}
	if wrapper := lexical.Children[0]; wrapper.Name != "Function Expression" {
		t.Errorf("reparented child = %q, want the function expression wrapper", wrapper.Name)
	}
	if !hasScope(roots, "f") {
		t.Error("function scope lost in the collapse")
	}
}

func TestGeneratedCollapse(t *testing.T) {
	// Generated sources collapse even without pseudo-global references.
	//
	// let s = 1;
	// 0123456789
	src := "let s = 1;"
	ast := script(src,
		nd("VariableDeclaration", 0, 10, j{"kind": "let", "declarations": []j{
			nd("VariableDeclarator", 4, 9, j{"id": identAt("s", 4), "init": numAt("1", 8, 1)}),
		}}),
	)
	roots := scopes.Build("bundle.js", parse(t, "bundle.js", ast), scopes.Options{IsGenerated: true})
	checkInvariants(t, roots)

	if hasScope(roots, "Module") {
		t.Fatal("generated source must not keep a module scope")
	}
	lexical := findScope(t, roots, "Lexical Global")
	if s := binding(t, lexical, "s"); s.Kind != scopes.Let {
		t.Errorf("s kind = %s, want let", s.Kind)
	}
}

func TestModuleNeverCollapses(t *testing.T) {
	// A real module keeps its module scope even if it happens to
	// mention a pseudo-global.
	//
	// module.exports = 1;
	// 0         1
	// 0123456789012345678
	src := "module.exports = 1;"
	roots := build(t, module(src,
		nd("ExpressionStatement", 0, 19, j{"expression": nd("AssignmentExpression", 0, 18, j{
			"operator": "=",
			"left": nd("MemberExpression", 0, 14, j{
				"object":   identAt("module", 0),
				"property": identAt("exports", 7),
				"computed": false,
			}),
			"right": numAt("1", 17, 1),
		})}),
	))
	checkInvariants(t, roots)

	if !hasScope(roots, "Module") {
		t.Error("module program must keep its module scope")
	}
}
