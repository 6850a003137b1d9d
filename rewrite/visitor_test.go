package rewrite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/litrewrite/ast"
)

const greetPayload = `{
  "function_name": "greet",
  "strings": {
    "Hello World. Goodbye Mars.": "Hallo Welt. Auf Wiedersehen Mars.",
    "You are {{ age }} years old.": "Du bist {{ age }} Jahre alt."
  }
}`

func mustConfig(t *testing.T, name string, table map[string]string) *Config {
	t.Helper()
	cfg, err := NewConfig(name, table)
	require.NoError(t, err)
	return cfg
}

func lit(value string) *ast.StrLit {
	return ast.String(value, `"`+value+`"`)
}

func TestProcessScenarios(t *testing.T) {
	tests := []struct {
		name      string
		tree      func() (ast.Node, *ast.StrLit)
		wantValue string
		wantRaw   bool
		rewritten int
	}{
		{
			name: "matching call is translated",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				return ast.Call(ast.Name("greet"), l), l
			},
			wantValue: "Hallo Welt. Auf Wiedersehen Mars.",
			rewritten: 1,
		},
		{
			name: "placeholders are plain text",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("You are {{ age }} years old.")
				return ast.Call(ast.Name("greet"), l, ast.NewGeneric("ObjectExpression")), l
			},
			wantValue: "Du bist {{ age }} Jahre alt.",
			rewritten: 1,
		},
		{
			name: "other function is left alone",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				return ast.Call(ast.Name("hello"), l), l
			},
			wantValue: "Hello World. Goodbye Mars.",
			wantRaw:   true,
		},
		{
			name: "untranslated string keeps its raw text",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Good morning.")
				return ast.Call(ast.Name("greet"), l), l
			},
			wantValue: "Good morning.",
			wantRaw:   true,
		},
		{
			name: "member callee is not matched",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				member := ast.NewGeneric("MemberExpression",
					"object", ast.Name("i18n"),
					"property", ast.Name("greet"),
					"computed", false,
				)
				return ast.Call(member, l), l
			},
			wantValue: "Hello World. Goodbye Mars.",
			wantRaw:   true,
		},
		{
			name: "name match is case sensitive",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				return ast.Call(ast.Name("Greet"), l), l
			},
			wantValue: "Hello World. Goodbye Mars.",
			wantRaw:   true,
		},
		{
			name: "second argument is never rewritten",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				return ast.Call(ast.Name("greet"), ast.Name("prefix"), l), l
			},
			wantValue: "Hello World. Goodbye Mars.",
			wantRaw:   true,
		},
		{
			name: "spread literal is not rewritten",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				return &ast.CallExpr{Callee: ast.Name("greet"), Args: []*ast.Arg{ast.Spread(l)}}, l
			},
			wantValue: "Hello World. Goodbye Mars.",
			wantRaw:   true,
		},
		{
			name: "call nested anywhere in the tree",
			tree: func() (ast.Node, *ast.StrLit) {
				l := lit("Hello World. Goodbye Mars.")
				root := ast.NewGeneric("Program", "body", []any{
					ast.NewGeneric("ExpressionStatement", "expression",
						ast.Call(ast.Name("console"), ast.Call(ast.Name("greet"), l))),
				})
				return root, l
			},
			wantValue: "Hallo Welt. Auf Wiedersehen Mars.",
			rewritten: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, l := tt.tree()
			got, stats, err := Process(root, []byte(greetPayload))
			require.NoError(t, err)
			assert.Same(t, root, got)
			assert.Equal(t, tt.wantValue, l.Value)
			assert.Equal(t, tt.wantRaw, l.Raw != nil)
			assert.Equal(t, tt.rewritten, stats.Rewritten)
		})
	}
}

func TestNonLiteralFirstArgument(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"Hello": "Hallo"})

	args := []ast.Node{
		ast.Name("message"),
		ast.NewGeneric("TemplateLiteral", "quasis", []any{}, "expressions", []any{}),
		ast.NewGeneric("BinaryExpression", "operator", "+", "left", lit("Hel"), "right", lit("lo")),
		ast.NewGeneric("Literal", "value", 42, "raw", "42"),
	}
	for _, arg := range args {
		t.Run(arg.Type(), func(t *testing.T) {
			call := ast.Call(ast.Name("greet"), arg)
			_, stats := Rewrite(call, cfg)
			assert.Equal(t, 1, stats.Matched)
			assert.Equal(t, 0, stats.Rewritten)
			assert.Same(t, arg, call.Args[0].Expr)
		})
	}
}

func TestNoArguments(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"": "empty"})
	call := &ast.CallExpr{Callee: ast.Name("greet")}

	assert.NotPanics(t, func() {
		_, stats := Rewrite(call, cfg)
		assert.Equal(t, Stats{Calls: 1, Matched: 1}, stats)
	})
}

func TestEmptyStringKey(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"": "empty"})
	l := ast.String("", `''`)

	Rewrite(ast.Call(ast.Name("greet"), l), cfg)
	assert.Equal(t, "empty", l.Value)
	assert.Nil(t, l.Raw)
}

func TestLookupUsesDecodedValue(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"it's": "es ist"})
	l := ast.String("it's", `'it\'s'`)

	Rewrite(ast.Call(ast.Name("greet"), l), cfg)
	assert.Equal(t, "es ist", l.Value)
	assert.Nil(t, l.Raw)
}

func TestNestedCalls(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"inner": "innen", "outer": "aussen"})
	inner := lit("inner")
	outer := lit("outer")

	// greet(greet("inner"), "outer") and greet("outer", greet("inner"))
	first := ast.Call(ast.Name("greet"), ast.Call(ast.Name("greet"), inner), outer)
	_, stats := Rewrite(first, cfg)
	assert.Equal(t, "innen", inner.Value)
	assert.Equal(t, "outer", outer.Value)
	assert.Equal(t, Stats{Calls: 2, Matched: 2, Rewritten: 1}, stats)

	inner, outer = lit("inner"), lit("outer")
	second := ast.Call(ast.Name("greet"), outer, ast.Call(ast.Name("greet"), inner))
	_, stats = Rewrite(second, cfg)
	assert.Equal(t, "innen", inner.Value)
	assert.Equal(t, "aussen", outer.Value)
	assert.Equal(t, 2, stats.Rewritten)
}

func TestIdempotentTable(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"Hello": "Hallo"})
	l := lit("Hello")
	tree := ast.Call(ast.Name("greet"), l)

	Rewrite(tree, cfg)
	assert.Equal(t, "Hallo", l.Value)

	_, stats := Rewrite(tree, cfg)
	assert.Equal(t, "Hallo", l.Value)
	assert.Equal(t, 0, stats.Rewritten)
}

func TestCyclicTableRewritesOncePerPass(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"a": "b", "b": "a"})
	l := lit("a")
	tree := ast.Call(ast.Name("greet"), l)

	Rewrite(tree, cfg)
	assert.Equal(t, "b", l.Value)
	Rewrite(tree, cfg)
	assert.Equal(t, "a", l.Value)
}

func TestDeepTree(t *testing.T) {
	cfg := mustConfig(t, "greet", map[string]string{"x": "y"})
	const depth = 2000

	leaves := make([]*ast.StrLit, 0, depth)
	var n ast.Node = ast.NewGeneric("Identifier", "name", "end")
	for i := 0; i < depth; i++ {
		l := lit("x")
		leaves = append(leaves, l)
		n = ast.Call(ast.Name("greet"), l, n)
	}

	_, stats := Rewrite(n, cfg)
	assert.Equal(t, depth, stats.Rewritten)
	for _, l := range leaves {
		assert.Equal(t, "y", l.Value)
	}
}

func TestOnlyMatchingLiteralChanges(t *testing.T) {
	const payload = `{"function_name":"greet","strings":{"Hello":"Hallo"}}`
	target := lit("Hello")
	other := lit("Hello")
	tree := ast.NewGeneric("Program", "body", []any{
		ast.Call(ast.Name("greet"), target),
		ast.Call(ast.Name("log"), other),
		other,
	})

	var before []string
	ast.Inspect(tree, func(n ast.Node) { before = append(before, n.Type()) })

	_, stats, err := Process(tree, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, Stats{Calls: 2, Matched: 1, Rewritten: 1}, stats)
	assert.Equal(t, "Hallo", target.Value)
	assert.Equal(t, "Hello", other.Value)
	require.NotNil(t, other.Raw)
	assert.Equal(t, `"Hello"`, *other.Raw)

	var after []string
	ast.Inspect(tree, func(n ast.Node) { after = append(after, n.Type()) })
	assert.Equal(t, before, after)
}

func TestProcessConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr []error
	}{
		{"empty payload", "", []error{ErrConfigMissing}},
		{"whitespace payload", "  \n", []error{ErrConfigMissing}},
		{"not json", "function_name=greet", []error{ErrConfigMalformed}},
		{"missing function name", `{"strings":{}}`, []error{ErrConfigMalformed, ErrFunctionNameRequired}},
		{"empty function name", `{"function_name":"","strings":{}}`, []error{ErrConfigMalformed, ErrFunctionNameRequired}},
		{"missing strings", `{"function_name":"greet"}`, []error{ErrConfigMalformed, ErrStringsRequired}},
		{"non-string translation", `{"function_name":"greet","strings":{"a":1}}`, []error{ErrConfigMalformed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lit("Hello World. Goodbye Mars.")
			root := ast.Call(ast.Name("greet"), l)

			got, stats, err := Process(root, []byte(tt.payload))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}
			assert.Same(t, root, got)
			assert.Equal(t, Stats{}, stats)
			assert.Equal(t, "Hello World. Goodbye Mars.", l.Value)
			assert.NotNil(t, l.Raw)
		})
	}
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Calls: 1, Matched: 2, Rewritten: 3}
	b := Stats{Calls: 10, Matched: 20, Rewritten: 30}
	assert.Equal(t, Stats{Calls: 11, Matched: 22, Rewritten: 33}, a.Add(b))
}
