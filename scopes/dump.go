// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dump writes an indented description of the scope trees to w, with
// binding names sorted for stable output.
func Dump(w io.Writer, roots []*Scope) {
	for _, s := range roots {
		dumpScope(w, s, 0)
	}
}

func dumpScope(w io.Writer, s *Scope, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s %q %s\n", indent, s.Type, s.Name, rangeString(s.Start, s.End))

	names := make([]string, 0, len(s.Bindings))
	for name := range s.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b := s.Bindings[name]
		fmt.Fprintf(w, "%s  %s %s", indent, b.Kind, name)
		for _, ref := range b.Refs {
			fmt.Fprintf(w, " %s", refString(ref))
		}
		fmt.Fprintln(w)
	}

	for _, c := range s.Children {
		dumpScope(w, c, depth+1)
	}
}

func refString(ref *Ref) string {
	var sb strings.Builder
	if ref.Kind == DeclRef {
		sb.WriteString("decl@")
	} else {
		sb.WriteString("use@")
	}
	sb.WriteString(rangeString(ref.Start, ref.End))
	if ref.ImportName != "" {
		fmt.Fprintf(&sb, "<%s>", ref.ImportName)
	}
	for m := ref.Meta; m != nil; m = m.Parent {
		switch m.Kind {
		case MetaMember:
			fmt.Fprintf(&sb, ".%s", m.Property)
		case MetaCall:
			sb.WriteString("()")
		case MetaInherit:
			sb.WriteString("~")
		}
	}
	return sb.String()
}

func rangeString(start, end Location) string {
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
