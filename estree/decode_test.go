// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estree_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jsscope.dev/estree"
)

func loc(startLine, startCol, endLine, endCol int32) string {
	return fmt.Sprintf(`"loc":{"start":{"line":%d,"column":%d},"end":{"line":%d,"column":%d}}`,
		startLine, startCol, endLine, endCol)
}

func TestDecodeProgram(t *testing.T) {
	// const n = obj.f(x);
	// 0         1
	// 0123456789012345678
	data := `{
		"type": "Program", "sourceType": "module", ` + loc(1, 0, 1, 19) + `,
		"body": [{
			"type": "VariableDeclaration", "kind": "const", ` + loc(1, 0, 1, 19) + `,
			"declarations": [{
				"type": "VariableDeclarator", ` + loc(1, 6, 1, 18) + `,
				"id": {"type": "Identifier", "name": "n", ` + loc(1, 6, 1, 7) + `},
				"init": {
					"type": "CallExpression", ` + loc(1, 10, 1, 18) + `,
					"callee": {
						"type": "MemberExpression", "computed": false, ` + loc(1, 10, 1, 15) + `,
						"object": {"type": "Identifier", "name": "obj", ` + loc(1, 10, 1, 13) + `},
						"property": {"type": "Identifier", "name": "f", ` + loc(1, 14, 1, 15) + `}
					},
					"arguments": [{"type": "Identifier", "name": "x", ` + loc(1, 16, 1, 17) + `}]
				}
			}]
		}]
	}`

	prog, err := estree.Decode("mod.js", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, "mod.js", prog.SourceID)
	assert.True(t, prog.Module)
	require.Len(t, prog.Body, 1)

	start, end := prog.Span()
	assert.Equal(t, estree.Position{Line: 1, Col: 0}, start)
	assert.Equal(t, estree.Position{Line: 1, Col: 19}, end)

	vd, ok := prog.Body[0].(*estree.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "const", vd.Kind)
	assert.True(t, vd.Lexical())
	require.Len(t, vd.Decls, 1)

	id, ok := vd.Decls[0].ID.(*estree.Identifier)
	require.True(t, ok)
	assert.Equal(t, "n", id.Name)

	call, ok := vd.Decls[0].Init.(*estree.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Args, 1)

	member, ok := call.Callee.(*estree.MemberExpression)
	require.True(t, ok)
	name, ok := member.PropertyName()
	require.True(t, ok)
	assert.Equal(t, "f", name)
}

func TestDecodeLiterals(t *testing.T) {
	data := `{
		"type": "Program", "sourceType": "script", ` + loc(1, 0, 1, 20) + `,
		"body": [{
			"type": "ExpressionStatement", ` + loc(1, 0, 1, 20) + `,
			"expression": {
				"type": "SequenceExpression", ` + loc(1, 0, 1, 19) + `,
				"expressions": [
					{"type": "Literal", "value": 7, "raw": "7", ` + loc(1, 0, 1, 1) + `},
					{"type": "Literal", "value": "s", "raw": "\"s\"", ` + loc(1, 3, 1, 6) + `},
					{"type": "Literal", "value": {}, "raw": "/x/", "regex": {"pattern": "x", "flags": ""}, ` + loc(1, 8, 1, 11) + `},
					{"type": "Literal", "value": null, "raw": "null", ` + loc(1, 13, 1, 17) + `}
				]
			}
		}]
	}`

	prog, err := estree.Decode("lit.js", []byte(data))
	require.NoError(t, err)
	assert.False(t, prog.Module)

	seq := prog.Body[0].(*estree.ExpressionStatement).X.(*estree.SequenceExpression)
	require.Len(t, seq.Exprs, 4)

	num := seq.Exprs[0].(*estree.Literal)
	assert.True(t, num.IsNumber())
	assert.Equal(t, 7.0, num.Value)

	str := seq.Exprs[1].(*estree.Literal)
	s, ok := str.StringValue()
	require.True(t, ok)
	assert.Equal(t, "s", s)
	assert.False(t, str.IsNumber())

	// Regexp literals carry no usable value, only their raw text.
	re := seq.Exprs[2].(*estree.Literal)
	assert.Nil(t, re.Value)
	assert.Equal(t, "/x/", re.Raw)

	null := seq.Exprs[3].(*estree.Literal)
	assert.Nil(t, null.Value)
}

func TestDecodeUnknownNode(t *testing.T) {
	data := `{
		"type": "Program", "sourceType": "script", ` + loc(1, 0, 1, 10) + `,
		"body": [{
			"type": "ExpressionStatement", ` + loc(1, 0, 1, 10) + `,
			"expression": {"type": "JSXElement", ` + loc(1, 0, 1, 9) + `}
		}]
	}`

	prog, err := estree.Decode("jsx.js", []byte(data))
	require.NoError(t, err)

	op, ok := prog.Body[0].(*estree.ExpressionStatement).X.(*estree.Opaque)
	require.True(t, ok)
	assert.Equal(t, "JSXElement", op.Type)
}

func TestDecodeAliases(t *testing.T) {
	// Parsers disagree on a few node names; the variants decode to the
	// same union members.
	data := `{
		"type": "Program", "sourceType": "script", ` + loc(1, 0, 2, 1) + `,
		"body": [
			{"type": "DebuggerStatement", ` + loc(1, 0, 1, 9) + `},
			{
				"type": "ExpressionStatement", ` + loc(2, 0, 2, 8) + `,
				"expression": {
					"type": "OptionalMemberExpression", "computed": false, "optional": true, ` + loc(2, 0, 2, 7) + `,
					"object": {"type": "Identifier", "name": "a", ` + loc(2, 0, 2, 1) + `},
					"property": {"type": "Identifier", "name": "b", ` + loc(2, 3, 2, 4) + `}
				}
			}
		]
	}`

	prog, err := estree.Decode("alias.js", []byte(data))
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	_, ok := prog.Body[0].(*estree.EmptyStatement)
	assert.True(t, ok, "debugger decodes as an empty statement")

	member, ok := prog.Body[1].(*estree.ExpressionStatement).X.(*estree.MemberExpression)
	require.True(t, ok)
	assert.True(t, member.Optional)
}

func TestDecodeErrors(t *testing.T) {
	_, err := estree.Decode("bad.js", []byte(`{`))
	assert.Error(t, err)

	_, err = estree.Decode("bad.js", []byte(`{"type": "Identifier", "name": "x"}`))
	assert.ErrorContains(t, err, "not a Program")
}

func TestDecodeFile(t *testing.T) {
	// testdata/program.json encodes:
	//
	//	var fs = require("fs");
	//	module.exports = fs;
	prog, err := estree.DecodeFile("program.js", filepath.Join("testdata", "program.json"))
	require.NoError(t, err)
	assert.Equal(t, "program.js", prog.SourceID)
	assert.False(t, prog.Module)
	require.Len(t, prog.Body, 2)

	_, err = estree.DecodeFile("missing.js", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o666))
	_, err = estree.DecodeFile("bad.js", bad)
	assert.Error(t, err)
}
