// Copyright 2025 go-bitrev Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-bitrev/internal/log"
)

const generatedMarker = "// Code generated by revgen. DO NOT EDIT.\n\n"

// Generator rewrites the sources of a From-bit package into a To-bit package.
type Generator struct {
	InputDir  string
	OutputDir string
	From      int
	To        int
}

// Run generates every source file and returns the written paths.
func (g *Generator) Run() ([]string, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	names, err := g.sourceFiles()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no source files in %s", g.InputDir)
	}

	var written []string
	for _, name := range names {
		out := filepath.Join(g.OutputDir, strings.TrimSuffix(name, ".go")+".gen.go")
		src, err := g.generate(filepath.Join(g.InputDir, name), out)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(out, src, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", out, err)
		}
		log.Debugw("wrote file", "input", name, "output", out)
		written = append(written, out)
	}
	return written, nil
}

func (g *Generator) validate() error {
	for _, w := range []int{g.From, g.To} {
		switch w {
		case 8, 16, 32, 64:
		default:
			return fmt.Errorf("unsupported word width %d", w)
		}
	}
	if g.From == g.To {
		return fmt.Errorf("source and target width are both %d", g.From)
	}
	return nil
}

// sourceFiles lists the input files to rewrite: Go sources that are not
// tests, not the package documentation and not generated themselves.
func (g *Generator) sourceFiles() ([]string, error) {
	entries, err := os.ReadDir(g.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		switch {
		case e.IsDir(),
			!strings.HasSuffix(name, ".go"),
			strings.HasSuffix(name, "_test.go"),
			strings.HasSuffix(name, ".gen.go"),
			name == "doc.go":
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (g *Generator) generate(path, out string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	rw := newRewriter(g.From, g.To)
	rw.rewrite(file)

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("format %s: %w", path, err)
	}
	src := insertMarker(buf.Bytes())

	formatted, err := imports.Process(out, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("imports %s: %w", out, err)
	}
	return formatted, nil
}

// rewriter holds the renames for one width change.
type rewriter struct {
	from, to int
	idents   map[string]string
	comments *strings.Replacer
}

func newRewriter(from, to int) *rewriter {
	pairs := []string{
		fmt.Sprintf("uint%d", from), fmt.Sprintf("uint%d", to),
		fmt.Sprintf("Reverse%d", from), fmt.Sprintf("Reverse%d", to),
	}
	idents := make(map[string]string, len(pairs)/2+1)
	for i := 0; i < len(pairs); i += 2 {
		idents[pairs[i]] = pairs[i+1]
	}
	idents[fmt.Sprintf("u%d", from)] = fmt.Sprintf("u%d", to)

	commentPairs := append([]string{
		fmt.Sprintf("%d-bit", from), fmt.Sprintf("%d-bit", to),
	}, pairs...)
	return &rewriter{
		from:     from,
		to:       to,
		idents:   idents,
		comments: strings.NewReplacer(commentPairs...),
	}
}

func (rw *rewriter) rewrite(file *ast.File) {
	astutil.Apply(file, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.Ident:
			if to, ok := rw.idents[n.Name]; ok {
				n.Name = to
			}
		case *ast.ValueSpec:
			rw.rewriteWidth(n)
		}
		return true
	}, nil)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			c.Text = rw.comments.Replace(c.Text)
		}
	}
}

// rewriteWidth updates "Width = <from>" to the target width.
func (rw *rewriter) rewriteWidth(spec *ast.ValueSpec) {
	for i, name := range spec.Names {
		if name.Name != "Width" || i >= len(spec.Values) {
			continue
		}
		lit, ok := spec.Values[i].(*ast.BasicLit)
		if !ok || lit.Kind != token.INT || lit.Value != strconv.Itoa(rw.from) {
			continue
		}
		lit.Value = strconv.Itoa(rw.to)
	}
}

// insertMarker places the generated-code comment right before the package
// clause, below any license header.
func insertMarker(src []byte) []byte {
	if bytes.HasPrefix(src, []byte("package ")) {
		return append([]byte(generatedMarker), src...)
	}
	i := bytes.Index(src, []byte("\npackage "))
	if i < 0 {
		return src
	}
	var out bytes.Buffer
	out.Grow(len(src) + len(generatedMarker))
	out.Write(src[:i+1])
	out.WriteString(generatedMarker)
	out.Write(src[i+1:])
	return out.Bytes()
}
