// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.jsscope.dev/scopes"
)

func TestDump(t *testing.T) {
	// var x = 1;
	// 0123456789
	src := "var x = 1;"
	roots := build(t, script(src,
		nd("VariableDeclaration", 0, 10, j{"kind": "var", "declarations": []j{
			nd("VariableDeclarator", 4, 9, j{"id": identAt("x", 4), "init": numAt("1", 8, 1)}),
		}}),
	))

	var buf bytes.Buffer
	scopes.Dump(&buf, roots)

	want := `object "Global" 1:0-1:10
  implicit __dirname
  implicit __filename
  implicit exports
  implicit module
  implicit require
  block "Lexical Global" 1:0-1:10
    block "Module" 1:0-1:10
      implicit this
      var x decl@1:4-1:5
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestPathAndLookup(t *testing.T) {
	roots := build(t, funcScenario())
	root := roots[0]

	path := root.Path(1, 30) // inside the return statement
	var names []string
	for _, s := range path {
		names = append(names, s.Name)
	}
	want := []string{"Global", "Lexical Global", "Module", "f", "Block"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	if s, b := scopes.Lookup(path, "b"); s == nil || s.Name != "Block" || b.Kind != scopes.Let {
		t.Errorf("b resolved in %v, want the block scope", s)
	}
	if s, _ := scopes.Lookup(path, "a"); s == nil || s.Name != "f" {
		t.Errorf("a resolved in %v, want the function scope", s)
	}
	if s, _ := scopes.Lookup(path, "require"); s != root {
		t.Errorf("require resolved in %v, want the global", s)
	}
	if s, b := scopes.Lookup(path, "zzz"); s != nil || b != nil {
		t.Errorf("zzz resolved to %v %v, want nothing", s, b)
	}

	if got := root.Path(2, 0); got != nil {
		t.Errorf("path outside the program = %v, want nil", got)
	}
}
