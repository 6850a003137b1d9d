package ast

// swcNode decodes the SWC node kinds that have typed variants. It returns nil
// when obj does not have the expected shape.
func (b builder) swcNode(kind string, obj *Object) Node {
	switch kind {
	case "CallExpression":
		callee, ok := b.callee(obj)
		if !ok {
			return nil
		}
		raw, ok := obj.Get("arguments")
		if !ok {
			return nil
		}
		list, ok := raw.([]any)
		if !ok {
			return nil
		}
		args := make([]*Arg, 0, len(list))
		for _, elem := range list {
			arg, ok := b.swcArg(elem)
			if !ok {
				return nil
			}
			args = append(args, arg)
		}
		return &CallExpr{Callee: callee, Args: args, Attrs: b.attrs(obj, "callee", "arguments")}
	case "Identifier":
		name, ok := stringField(obj, "value")
		if !ok {
			return nil
		}
		return &Ident{Name: name, Attrs: b.attrs(obj, "value")}
	case "StringLiteral":
		value, ok := stringField(obj, "value")
		if !ok {
			return nil
		}
		lit := &StrLit{Kind: kind, Value: value, Attrs: b.attrs(obj, "value", "raw")}
		if raw, ok := stringField(obj, "raw"); ok {
			lit.Raw = &raw
		}
		return lit
	}
	return nil
}

// swcArg decodes an ExprOrSpread wrapper: {"spread": span|null, "expression": node}.
func (b builder) swcArg(elem any) (*Arg, bool) {
	obj, ok := elem.(*Object)
	if !ok {
		return nil, false
	}
	raw, ok := obj.Get("expression")
	if !ok {
		return nil, false
	}
	expr, ok := b.value(raw).(Node)
	if !ok {
		return nil, false
	}
	spread, _ := obj.Get("spread")
	return &Arg{Spread: spread != nil, Expr: expr, Attrs: b.attrs(obj, "expression")}, true
}

// renderSWCArg renders an argument as an ExprOrSpread wrapper.
func renderSWCArg(a *Arg) *Object {
	out := NewObject()
	if a.Attrs != nil {
		for kv := a.Attrs.Front(); kv != nil; kv = kv.Next() {
			switch *kv.Key {
			case "expression":
				out.Set("expression", a.Expr)
			case "spread":
				out.Set("spread", swcSpread(a, kv.Value))
			default:
				out.Set(*kv.Key, kv.Value)
			}
		}
	}
	if _, ok := out.Get("spread"); !ok {
		out.Set("spread", swcSpread(a, nil))
	}
	if _, ok := out.Get("expression"); !ok {
		out.Set("expression", a.Expr)
	}
	return out
}

func swcSpread(a *Arg, original any) any {
	if !a.Spread {
		return nil
	}
	if original != nil {
		return original
	}
	span := NewObject()
	span.Set("start", 0)
	span.Set("end", 0)
	return span
}

func swcStrFields(l *StrLit) fields {
	return fields{
		attrs: l.Attrs,
		known: []string{"type", "value", "raw"},
		emit: func(key string) (any, bool) {
			switch key {
			case "type":
				return "StringLiteral", true
			case "value":
				return l.Value, true
			case "raw":
				if l.Raw == nil {
					return nil, true
				}
				return *l.Raw, true
			}
			return nil, false
		},
	}
}
