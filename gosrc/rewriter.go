// Package gosrc applies a rewrite.Config to Go source files: calls of the
// form fn("literal", ...) whose callee is the bare identifier fn get the
// literal replaced by its translation.
package gosrc

import (
	"bytes"
	goast "go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/napalu/litrewrite/internal/fsutil"
	"github.com/napalu/litrewrite/rewrite"
)

// Result describes one rewritten source file.
type Result struct {
	Path   string
	Source []byte
	Stats  rewrite.Stats
}

// Changed reports whether any literal was replaced
func (r *Result) Changed() bool {
	return r.Stats.Rewritten > 0
}

// Rewriter rewrites Go sources with a shared, read-only Config.
type Rewriter struct {
	cfg *rewrite.Config
}

// NewRewriter creates a Rewriter for cfg
func NewRewriter(cfg *rewrite.Config) *Rewriter {
	return &Rewriter{cfg: cfg}
}

// RewriteSource parses src, rewrites matching calls and returns the
// gofmt-formatted result. Unchanged sources are returned byte for byte.
func (r *Rewriter) RewriteSource(filename string, src []byte) (*Result, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, ErrParseSource.WithArgs(filename).Wrap(err)
	}

	res := &Result{Path: filename, Source: src}
	res.Stats = r.RewriteFile(file)
	if !res.Changed() {
		return res, nil
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, ErrFormatSource.WithArgs(filename).Wrap(err)
	}
	res.Source = buf.Bytes()
	return res, nil
}

// RewriteFile rewrites a parsed file in place. Calls are inspected after
// their arguments, so nested matches are handled inside out.
func (r *Rewriter) RewriteFile(file *goast.File) rewrite.Stats {
	var stats rewrite.Stats
	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*goast.CallExpr)
		if !ok {
			return true
		}
		stats.Calls++
		r.visitCall(call, &stats)
		return true
	})
	return stats
}

func (r *Rewriter) visitCall(call *goast.CallExpr, stats *rewrite.Stats) {
	ident, ok := call.Fun.(*goast.Ident)
	if !ok || !r.cfg.Matches(ident.Name) {
		return
	}
	stats.Matched++

	if len(call.Args) == 0 {
		return
	}
	// fn(xs...) spreads its last argument
	if call.Ellipsis.IsValid() && len(call.Args) == 1 {
		return
	}
	lit, ok := call.Args[0].(*goast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return
	}

	replacement, ok := r.cfg.Lookup(value)
	if !ok {
		return
	}
	lit.Value = strconv.Quote(replacement)
	stats.Rewritten++
}

// ProcessFile rewrites the file at path. Unless dryRun is set, a changed file
// is written back atomically.
func (r *Rewriter) ProcessFile(path string, dryRun bool) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadFile.WithArgs(path).Wrap(err)
	}

	res, err := r.RewriteSource(path, src)
	if err != nil {
		return nil, err
	}
	if dryRun || !res.Changed() {
		return res, nil
	}

	if err := fsutil.WriteFileAtomic(path, res.Source); err != nil {
		return nil, ErrWriteFile.WithArgs(path).Wrap(err)
	}
	return res, nil
}
