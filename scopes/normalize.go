// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

// The module normalizer reconciles two top-level scoping models: an
// explicit module gets an isolated top level, while script-style code
// declares straight into the global object. The builder always builds
// the module shape; when the program turns out to be a script (or is
// generated code), the module scope is flattened away before the tree
// is frozen.

// looksLikeScript reports whether the program referenced any of the
// seeded script pseudo-globals, the tell of script-style code.
func looksLikeScript(a *arena) bool {
	global := &a.scopes[0]
	for _, name := range pseudoGlobals {
		if b := global.bindings[name]; b != nil && len(b.Refs) > 0 {
			return true
		}
	}
	return false
}

// stripModuleScope flattens the module scope into the two global
// scopes: let/const bindings join the lexical global, everything else
// (var, import, implicit) joins the global object, and the module's
// children are reparented onto the lexical global. After this the
// tree has the flat shape script top-level declarations actually have.
func stripModuleScope(a *arena) {
	global := &a.scopes[0]
	if len(global.children) == 0 {
		panic("jsscope: internal error: global scope has no lexical child")
	}
	lexIdx := global.children[0]
	lexical := &a.scopes[lexIdx]
	if len(lexical.children) == 0 {
		panic("jsscope: internal error: no module scope to strip")
	}
	modIdx := lexical.children[0]
	module := &a.scopes[modIdx]
	if module.typ != Module {
		panic("jsscope: internal error: expected a module scope")
	}

	for name, bind := range module.bindings {
		switch bind.Kind {
		case Let, Const:
			lexical.bindings[name] = bind
		default:
			global.bindings[name] = bind
		}
	}

	lexical.children = module.children
	for _, c := range lexical.children {
		a.scopes[c].parent = lexIdx
	}
	// The module scope stays in the arena but is no longer reachable
	// from the root; freeze never visits it.
	module.children = nil
	module.parent = -1
}
