// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect provides an interactive read-query-print loop over a
// resolved scope tree.
//
// It supports readline-style command editing and exits on EOF
// (Control-D). It is the command-line stand-in for the debugger
// frontend this module normally serves.
package inspect

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"go.jsscope.dev/scopes"
)

// A Session holds one source's resolved scope tree for querying.
type Session struct {
	SourceID string
	Roots    []*scopes.Scope
}

// REPL executes a read, query, print loop over the session's tree.
func REPL(sess *Session) {
	rl, err := readline.New("jsscope> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, sess); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads and executes one command.
// It returns an error only if readline failed; command errors are
// printed.
func rep(rl *readline.Instance, sess *Session) error {
	line, err := rl.Readline()
	if err != nil {
		return err // io.EOF or ErrInterrupt
	}
	if err := sess.Exec(line, os.Stdout); err != nil {
		if err == errQuit {
			return io.EOF
		}
		fmt.Fprintln(os.Stderr, err)
	}
	return nil
}

var errQuit = fmt.Errorf("quit")

// Exec runs a single inspector command, writing its output to w.
func (sess *Session) Exec(line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "tree":
		scopes.Dump(w, sess.Roots)
		return nil

	case "scopes":
		if len(fields) != 2 {
			return fmt.Errorf("usage: scopes <line>:<col>")
		}
		line, col, err := parsePoint(fields[1])
		if err != nil {
			return err
		}
		return sess.scopesAt(w, line, col)

	case "refs":
		if len(fields) != 2 {
			return fmt.Errorf("usage: refs <name>")
		}
		return sess.refs(w, fields[1])

	case "help":
		fmt.Fprint(w, helpText)
		return nil

	case "exit", "quit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try help)", fields[0])
}

const helpText = `commands:
  tree               print the whole scope tree
  scopes <line>:<col>  scopes and bindings visible at a position
  refs <name>        all references to the binding <name>
  exit               quit
`

// scopesAt prints the scope chain containing a position, innermost
// first, with each scope's own bindings.
func (sess *Session) scopesAt(w io.Writer, line, col int32) error {
	for _, root := range sess.Roots {
		path := root.Path(line, col)
		if path == nil {
			continue
		}
		for i := len(path) - 1; i >= 0; i-- {
			s := path[i]
			fmt.Fprintf(w, "%s %q:", s.Type, s.Name)
			for _, name := range sortedNames(s.Bindings) {
				fmt.Fprintf(w, " %s", name)
			}
			fmt.Fprintln(w)
		}
		return nil
	}
	return fmt.Errorf("no scope contains %d:%d", line, col)
}

// refs prints every reference of the named binding, resolved from the
// outermost scope inward along each branch that declares it.
func (sess *Session) refs(w io.Writer, name string) error {
	found := false
	for _, root := range sess.Roots {
		walkScopes(root, func(s *scopes.Scope) {
			b, ok := s.Bindings[name]
			if !ok {
				return
			}
			found = true
			fmt.Fprintf(w, "%s %s in %s %q:\n", b.Kind, name, s.Type, s.Name)
			for _, ref := range b.Refs {
				kind := "use"
				if ref.Kind == scopes.DeclRef {
					kind = "decl"
				}
				fmt.Fprintf(w, "  %s %d:%d-%d:%d\n", kind,
					ref.Start.Line, ref.Start.Col, ref.End.Line, ref.End.Col)
			}
		})
	}
	if !found {
		return fmt.Errorf("no binding named %q", name)
	}
	return nil
}

func walkScopes(s *scopes.Scope, f func(*scopes.Scope)) {
	f(s)
	for _, c := range s.Children {
		walkScopes(c, f)
	}
}

func sortedNames(bindings map[string]*scopes.Binding) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parsePoint(s string) (line, col int32, err error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return 0, 0, fmt.Errorf("malformed position %q, want <line>:<col>", s)
	}
	l, err := strconv.ParseInt(s[:i], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed line in %q", s)
	}
	c, err := strconv.ParseInt(s[i+1:], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed column in %q", s)
	}
	return int32(l), int32(c), nil
}
