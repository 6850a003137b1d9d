package ast

import (
	"github.com/napalu/goopt/v2/types/orderedmap"
)

// Object is an ordered JSON object. Values are Node, *Object, []any or a JSON
// scalar (string, RawString, json.Number, bool, nil).
type Object = orderedmap.OrderedMap[string, any]

// NewObject creates an empty Object
func NewObject() *Object {
	return orderedmap.NewOrderedMap[string, any]()
}

// Node is implemented by the tree's node variants only.
type Node interface {
	// Type returns the host node type, e.g. "CallExpression"
	Type() string
	node()
}

// slot marks the position of a field whose value lives in a typed struct
// field instead of Attrs.
type slot struct{}

// CallExpr is a call to Callee with an ordered argument list.
type CallExpr struct {
	Callee Node
	Args   []*Arg
	// Attrs holds the host fields not modelled above (span, loc, optional, ...)
	Attrs *Object
}

// Arg is one call argument. A spread argument expands an iterable.
type Arg struct {
	Spread bool
	Expr   Node
	Attrs  *Object
}

// Ident is a bare name reference.
type Ident struct {
	Name  string
	Attrs *Object
}

// StrLit is a string literal. Value is the decoded string; Raw is the literal
// as written in the source, nil when the host should re-render Value.
type StrLit struct {
	// Kind is the host node type ("Literal", "StringLiteral"). Empty means the
	// dialect default.
	Kind  string
	Value string
	Raw   *string
	Attrs *Object
}

// Generic is any node kind without a dedicated variant.
type Generic struct {
	Kind  string
	Attrs *Object
}

func (*CallExpr) Type() string { return "CallExpression" }
func (*Ident) Type() string    { return "Identifier" }
func (l *StrLit) Type() string {
	if l.Kind == "" {
		return "StringLiteral"
	}
	return l.Kind
}
func (g *Generic) Type() string {
	return g.Kind
}

func (*CallExpr) node() {}
func (*Ident) node()    {}
func (*StrLit) node()   {}
func (*Generic) node()  {}

// Call builds a call expression with plain (non-spread) arguments.
func Call(callee Node, args ...Node) *CallExpr {
	c := &CallExpr{Callee: callee}
	for _, a := range args {
		c.Args = append(c.Args, &Arg{Expr: a})
	}
	return c
}

// Name builds an identifier.
func Name(name string) *Ident {
	return &Ident{Name: name}
}

// String builds a string literal with the given source text.
func String(value, raw string) *StrLit {
	return &StrLit{Value: value, Raw: &raw}
}

// Spread builds a spread argument.
func Spread(expr Node) *Arg {
	return &Arg{Spread: true, Expr: expr}
}

// NewGeneric builds a generic node from alternating key/value pairs.
func NewGeneric(kind string, kv ...any) *Generic {
	g := &Generic{Kind: kind, Attrs: NewObject()}
	for i := 0; i+1 < len(kv); i += 2 {
		g.Attrs.Set(kv[i].(string), kv[i+1])
	}
	return g
}

// Field returns the value stored under key, if any.
func (g *Generic) Field(key string) (any, bool) {
	if g.Attrs == nil {
		return nil, false
	}
	return g.Attrs.Get(key)
}
