package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(n Node) []string {
	var out []string
	Inspect(n, func(n Node) {
		switch n := n.(type) {
		case *Ident:
			out = append(out, "Identifier:"+n.Name)
		case *StrLit:
			out = append(out, "String:"+n.Value)
		default:
			out = append(out, n.Type())
		}
	})
	return out
}

func TestWalkPostOrder(t *testing.T) {
	// outer(inner("x"), "y")
	tree := Call(Name("outer"),
		Call(Name("inner"), String("x", `"x"`)),
		String("y", `"y"`),
	)

	assert.Equal(t, []string{
		"Identifier:outer",
		"Identifier:inner",
		"String:x",
		"CallExpression",
		"String:y",
		"CallExpression",
	}, kinds(tree))
}

func TestWalkGenericChildren(t *testing.T) {
	// { body: [ greet("a"), [ f() ] ], meta: { callee: g() } }
	tree := NewGeneric("Program",
		"body", []any{
			NewGeneric("ExpressionStatement", "expression", Call(Name("greet"), String("a", "'a'"))),
			[]any{Call(Name("f"))},
		},
		"meta", func() *Object {
			o := NewObject()
			o.Set("callee", Call(Name("g")))
			o.Set("count", 3)
			return o
		}(),
	)

	meta, ok := tree.Field("meta")
	assert.True(t, ok)
	assert.IsType(t, &Object{}, meta)

	assert.Equal(t, []string{
		"Identifier:greet",
		"String:a",
		"CallExpression",
		"ExpressionStatement",
		"Identifier:f",
		"CallExpression",
		"Identifier:g",
		"CallExpression",
		"Program",
	}, kinds(tree))
}

func TestWalkSpreadAndNil(t *testing.T) {
	call := &CallExpr{
		Callee: Name("f"),
		Args:   []*Arg{nil, Spread(Name("rest"))},
	}
	assert.Equal(t, []string{"Identifier:f", "Identifier:rest", "CallExpression"}, kinds(call))

	assert.NotPanics(t, func() {
		Walk(VisitorFunc(func(Node) {}), nil)
		var c *CallExpr
		Walk(VisitorFunc(func(Node) {}), c)
	})
}

func TestWalkDeepNesting(t *testing.T) {
	const depth = 5000
	var n Node = String("leaf", `"leaf"`)
	for i := 0; i < depth; i++ {
		n = Call(Name("f"), n)
	}

	calls := 0
	Inspect(n, func(n Node) {
		if _, ok := n.(*CallExpr); ok {
			calls++
		}
	})
	assert.Equal(t, depth, calls)
}
