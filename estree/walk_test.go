// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estree_test

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.jsscope.dev/estree"
)

// walkFixture is the ESTree encoding of: var x = f(1);
func walkFixture(t *testing.T) *estree.Program {
	t.Helper()
	data := `{
		"type": "Program", "sourceType": "script", ` + loc(1, 0, 1, 13) + `,
		"body": [{
			"type": "VariableDeclaration", "kind": "var", ` + loc(1, 0, 1, 13) + `,
			"declarations": [{
				"type": "VariableDeclarator", ` + loc(1, 4, 1, 12) + `,
				"id": {"type": "Identifier", "name": "x", ` + loc(1, 4, 1, 5) + `},
				"init": {
					"type": "CallExpression", ` + loc(1, 8, 1, 12) + `,
					"callee": {"type": "Identifier", "name": "f", ` + loc(1, 8, 1, 9) + `},
					"arguments": [{"type": "Literal", "value": 1, "raw": "1", ` + loc(1, 10, 1, 11) + `}]
				}
			}]
		}]
	}`
	prog, err := estree.Decode("walk.js", []byte(data))
	require.NoError(t, err)
	return prog
}

func TestWalk(t *testing.T) {
	prog := walkFixture(t)

	var buf bytes.Buffer
	var depth int
	estree.Walk(prog, func(n estree.Node) bool {
		if n == nil {
			depth--
			return true
		}
		fmt.Fprintf(&buf, "%s%s\n",
			strings.Repeat("  ", depth),
			strings.TrimPrefix(reflect.TypeOf(n).String(), "*estree."))
		depth++
		return true
	})
	got := strings.TrimSpace(buf.String())
	want := strings.TrimSpace(`
Program
  VariableDeclaration
    VariableDeclarator
      Identifier
      CallExpression
        Identifier
        Literal`)
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if depth != 0 {
		t.Errorf("unbalanced walk: final depth %d", depth)
	}
}

func TestWalkPrune(t *testing.T) {
	prog := walkFixture(t)

	var visited []string
	estree.Walk(prog, func(n estree.Node) bool {
		if n == nil {
			return true
		}
		name := strings.TrimPrefix(reflect.TypeOf(n).String(), "*estree.")
		visited = append(visited, name)
		return name != "VariableDeclaration"
	})
	want := []string{"Program", "VariableDeclaration"}
	require.Equal(t, want, visited)
}
