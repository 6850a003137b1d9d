package rewrite

import (
	"github.com/napalu/litrewrite/ast"
)

// Stats counts what a Visitor saw during a pass.
type Stats struct {
	Calls     int // call expressions visited
	Matched   int // calls whose callee is the configured function
	Rewritten int // literals replaced
}

// Add returns the sum of s and o
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Calls:     s.Calls + o.Calls,
		Matched:   s.Matched + o.Matched,
		Rewritten: s.Rewritten + o.Rewritten,
	}
}

// Visitor replaces the first string literal argument of matching calls. It is
// bound to one Config and must not be shared between concurrent walks.
type Visitor struct {
	cfg   *Config
	stats Stats
}

// NewVisitor creates a Visitor for cfg
func NewVisitor(cfg *Config) *Visitor {
	return &Visitor{cfg: cfg}
}

// Leave implements ast.Visitor. ast.Walk calls it once all of a node's
// children have been visited, so nested calls are rewritten first.
func (v *Visitor) Leave(n ast.Node) {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return
	}
	v.stats.Calls++
	v.visitCall(call)
}

func (v *Visitor) visitCall(call *ast.CallExpr) {
	callee, ok := call.Callee.(*ast.Ident)
	if !ok || !v.cfg.Matches(callee.Name) {
		return
	}
	v.stats.Matched++

	if len(call.Args) == 0 || call.Args[0] == nil {
		return
	}
	first := call.Args[0]
	if first.Spread {
		return
	}
	lit, ok := first.Expr.(*ast.StrLit)
	if !ok {
		return
	}

	replacement, ok := v.cfg.Lookup(lit.Value)
	if !ok {
		return
	}
	lit.Value = replacement
	lit.Raw = nil
	v.stats.Rewritten++
}

// Stats returns the counters accumulated so far
func (v *Visitor) Stats() Stats {
	return v.stats
}

// Rewrite applies cfg to the tree rooted at root, mutating it in place, and
// returns the same root.
func Rewrite(root ast.Node, cfg *Config) (ast.Node, Stats) {
	v := NewVisitor(cfg)
	ast.Walk(v, root)
	return root, v.Stats()
}

// Process is the host entry point: it decodes the JSON configuration payload
// and rewrites root. Configuration errors are returned before the tree is
// touched.
func Process(root ast.Node, payload []byte) (ast.Node, Stats, error) {
	cfg, err := LoadConfig(payload)
	if err != nil {
		return root, Stats{}, err
	}
	root, stats := Rewrite(root, cfg)
	return root, stats, nil
}
