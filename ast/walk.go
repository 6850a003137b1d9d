package ast

import "fmt"

// Visitor is notified of each node after all of the node's children have
// been walked.
type Visitor interface {
	Leave(n Node)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n Node)

// Leave calls f(n).
func (f VisitorFunc) Leave(n Node) {
	f(n)
}

// Walk traverses the tree rooted at n in post-order. For a call expression the
// callee is walked first, then every argument in order, then any remaining
// host fields, and only then is v.Leave called for the call itself.
func Walk(v Visitor, n Node) {
	switch n := n.(type) {
	case nil:
		return
	case *CallExpr:
		if n == nil {
			return
		}
		Walk(v, n.Callee)
		for _, arg := range n.Args {
			if arg == nil {
				continue
			}
			Walk(v, arg.Expr)
			walkObject(v, arg.Attrs)
		}
		walkObject(v, n.Attrs)
	case *Ident:
		if n == nil {
			return
		}
		walkObject(v, n.Attrs)
	case *StrLit:
		if n == nil {
			return
		}
		walkObject(v, n.Attrs)
	case *Generic:
		if n == nil {
			return
		}
		walkObject(v, n.Attrs)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
	v.Leave(n)
}

func walkObject(v Visitor, o *Object) {
	if o == nil {
		return
	}
	for kv := o.Front(); kv != nil; kv = kv.Next() {
		walkValue(v, kv.Value)
	}
}

func walkValue(v Visitor, val any) {
	switch val := val.(type) {
	case Node:
		Walk(v, val)
	case *Object:
		walkObject(v, val)
	case []any:
		for _, elem := range val {
			walkValue(v, elem)
		}
	}
}

// Inspect calls f for every node of the tree in post-order.
func Inspect(n Node, f func(Node)) {
	Walk(VisitorFunc(f), n)
}
