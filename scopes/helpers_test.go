// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes_test

import (
	"encoding/json"
	"testing"

	"go.jsscope.dev/estree"
	"go.jsscope.dev/scopes"
)

// Test programs are ESTree JSON built from small helpers. Column
// numbers are written out explicitly, matching the source line quoted
// next to each fixture; all fixtures are single-line.

type j = map[string]interface{}

// nd makes an ESTree node of type typ spanning columns [start, end)
// of line 1.
func nd(typ string, start, end int, fields j) j {
	m := j{"type": typ, "loc": j{
		"start": j{"line": 1, "column": start},
		"end":   j{"line": 1, "column": end},
	}}
	for k, v := range fields {
		m[k] = v
	}
	return m
}

func identAt(name string, col int) j {
	return nd("Identifier", col, col+len(name), j{"name": name})
}

func numAt(raw string, col int, value float64) j {
	return nd("Literal", col, col+len(raw), j{"value": value, "raw": raw})
}

func strAt(value string, col int) j {
	raw := `"` + value + `"`
	return nd("Literal", col, col+len(raw), j{"value": value, "raw": raw})
}

func script(src string, body ...j) j { return programNode(src, "script", body) }
func module(src string, body ...j) j { return programNode(src, "module", body) }

func programNode(src, sourceType string, body []j) j {
	return nd("Program", 0, len(src), j{"sourceType": sourceType, "body": body})
}

func parse(t *testing.T, sourceID string, root j) *estree.Program {
	t.Helper()
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := estree.Decode(sourceID, data)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func build(t *testing.T, root j) []*scopes.Scope {
	t.Helper()
	return scopes.Build("test.js", parse(t, "test.js", root), scopes.Options{})
}

// findScope returns the sole scope with the given display name.
func findScope(t *testing.T, roots []*scopes.Scope, name string) *scopes.Scope {
	t.Helper()
	var found *scopes.Scope
	for _, root := range roots {
		eachScope(root, func(s *scopes.Scope) {
			if s.Name == name {
				if found != nil {
					t.Fatalf("scope %q is not unique", name)
				}
				found = s
			}
		})
	}
	if found == nil {
		t.Fatalf("no scope named %q", name)
	}
	return found
}

func hasScope(roots []*scopes.Scope, name string) bool {
	found := false
	for _, root := range roots {
		eachScope(root, func(s *scopes.Scope) {
			if s.Name == name {
				found = true
			}
		})
	}
	return found
}

func eachScope(s *scopes.Scope, f func(*scopes.Scope)) {
	f(s)
	for _, c := range s.Children {
		eachScope(c, f)
	}
}

func binding(t *testing.T, s *scopes.Scope, name string) *scopes.Binding {
	t.Helper()
	b := s.Bindings[name]
	if b == nil {
		t.Fatalf("scope %q has no binding %q", s.Name, name)
	}
	return b
}

// checkRef asserts one reference's kind and name-token range.
func checkRef(t *testing.T, ref *scopes.Ref, kind scopes.RefKind, startCol, endCol int32) {
	t.Helper()
	if ref.Kind != kind {
		t.Errorf("ref kind = %d, want %d", ref.Kind, kind)
	}
	if ref.Start.Col != startCol || ref.End.Col != endCol {
		t.Errorf("ref range = %d-%d, want %d-%d", ref.Start.Col, ref.End.Col, startCol, endCol)
	}
}

// checkInvariants verifies the structural properties every output
// tree must satisfy: each child's range inside its parent's, and no
// scope visited twice.
func checkInvariants(t *testing.T, roots []*scopes.Scope) {
	t.Helper()
	seen := make(map[*scopes.Scope]bool)
	var visit func(s *scopes.Scope)
	visit = func(s *scopes.Scope) {
		if seen[s] {
			t.Fatalf("scope %q appears twice in the tree", s.Name)
		}
		seen[s] = true
		for _, c := range s.Children {
			if c.Start.Before(s.Start) || s.End.Before(c.End) {
				t.Errorf("scope %q range %d:%d-%d:%d outside parent %q %d:%d-%d:%d",
					c.Name, c.Start.Line, c.Start.Col, c.End.Line, c.End.Col,
					s.Name, s.Start.Line, s.Start.Col, s.End.Line, s.End.Col)
			}
			visit(c)
		}
	}
	for _, root := range roots {
		visit(root)
	}
}
