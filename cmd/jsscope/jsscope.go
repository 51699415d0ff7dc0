// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The jsscope command resolves the lexical scopes of a JavaScript
// program given as an ESTree JSON file and prints the scope tree.
// With -i it starts an interactive scope inspector instead.
package main // import "go.jsscope.dev/cmd/jsscope"

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"go.jsscope.dev/estree"
	"go.jsscope.dev/inspect"
	"go.jsscope.dev/scopes"
)

// flags
var (
	interactive = flag.Bool("i", false, "inspect the scope tree interactively")
	generated   = flag.Bool("generated", false, "treat the source as build output")
	execprog    = flag.String("c", "", "resolve ESTree JSON `prog` given inline")
	verbose     = flag.Bool("v", false, "log pass diagnostics")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("jsscope: ")
	log.SetFlags(0)
	flag.Parse()

	var (
		sourceID string
		data     []byte
		err      error
	)
	switch {
	case *execprog != "":
		sourceID = "cmdline"
		data = []byte(*execprog)
	case flag.NArg() == 1:
		sourceID = flag.Arg(0)
		data, err = os.ReadFile(sourceID)
		if err != nil {
			log.Print(err)
			return 1
		}
	case flag.NArg() == 0 && !term.IsTerminal(int(os.Stdin.Fd())):
		sourceID = "<stdin>"
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Print(err)
			return 1
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: jsscope [-i] [-generated] file.json")
		fmt.Fprintln(os.Stderr, "       jsscope [-c prog]")
		return 64 // EX_USAGE
	}

	prog, err := estree.Decode(sourceID, data)
	if err != nil {
		log.Print(err)
		return 1
	}

	roots := scopes.Build(sourceID, prog, scopes.Options{IsGenerated: *generated})
	if roots == nil {
		log.Printf("no scopes available for %s", sourceID)
		return 1
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Print(err)
			return 1
		}
		defer logger.Sync()
		nscopes, nbindings, nrefs := stats(roots)
		logger.Debug("resolved scopes",
			zap.String("source", sourceID),
			zap.Bool("module", prog.Module),
			zap.Int("scopes", nscopes),
			zap.Int("bindings", nbindings),
			zap.Int("refs", nrefs),
		)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Print("-i requires a terminal")
			return 1
		}
		inspect.REPL(&inspect.Session{SourceID: sourceID, Roots: roots})
		return 0
	}

	scopes.Dump(os.Stdout, roots)
	return 0
}

func stats(roots []*scopes.Scope) (nscopes, nbindings, nrefs int) {
	var visit func(*scopes.Scope)
	visit = func(s *scopes.Scope) {
		nscopes++
		nbindings += len(s.Bindings)
		for _, b := range s.Bindings {
			nrefs += len(b.Refs)
		}
		for _, c := range s.Children {
			visit(c)
		}
	}
	for _, s := range roots {
		visit(s)
	}
	return
}
