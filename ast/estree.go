package ast

// estreeNode decodes the ESTree node kinds that have typed variants. It
// returns nil when obj does not have the expected shape.
func (b builder) estreeNode(kind string, obj *Object) Node {
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
			arg, ok := b.estreeArg(elem)
			if !ok {
				return nil
			}
			args = append(args, arg)
		}
		return &CallExpr{Callee: callee, Args: args, Attrs: b.attrs(obj, "callee", "arguments")}
	case "Identifier":
		name, ok := stringField(obj, "name")
		if !ok {
			return nil
		}
		return &Ident{Name: name, Attrs: b.attrs(obj, "name")}
	case "Literal":
		value, ok := stringField(obj, "value")
		if !ok {
			return nil
		}
		lit := &StrLit{Kind: kind, Value: value, Attrs: b.attrs(obj, "value", "raw")}
		if raw, ok := stringField(obj, "raw"); ok {
			lit.Raw = &raw
		}
		return lit
	case "StringLiteral":
		value, ok := stringField(obj, "value")
		if !ok {
			return nil
		}
		lit := &StrLit{Kind: kind, Value: value, Attrs: b.attrs(obj, "value")}
		if v, ok := obj.Get("extra"); ok {
			if extra, ok := v.(*Object); ok {
				if raw, ok := stringField(extra, "raw"); ok {
					lit.Raw = &raw
				}
			}
		}
		return lit
	}
	return nil
}

func (b builder) estreeArg(elem any) (*Arg, bool) {
	obj, ok := elem.(*Object)
	if !ok {
		return nil, false
	}
	if kind, _ := stringField(obj, "type"); kind == "SpreadElement" {
		raw, ok := obj.Get("argument")
		if !ok {
			return nil, false
		}
		expr, ok := b.value(raw).(Node)
		if !ok {
			return nil, false
		}
		return &Arg{Spread: true, Expr: expr, Attrs: b.attrs(obj, "argument")}, true
	}
	expr, ok := b.value(obj).(Node)
	if !ok {
		return nil, false
	}
	return &Arg{Expr: expr}, true
}

// estreeSpread renders a spread argument as a SpreadElement node.
func estreeSpread(a *Arg) *Generic {
	g := &Generic{Kind: "SpreadElement", Attrs: NewObject()}
	placed := false
	if a.Attrs == nil {
		g.Attrs.Set("type", "SpreadElement")
	} else {
		for kv := a.Attrs.Front(); kv != nil; kv = kv.Next() {
			switch *kv.Key {
			case "type":
				g.Attrs.Set("type", "SpreadElement")
			case "argument":
				g.Attrs.Set("argument", a.Expr)
				placed = true
			default:
				g.Attrs.Set(*kv.Key, kv.Value)
			}
		}
	}
	if !placed {
		g.Attrs.Set("argument", a.Expr)
	}
	return g
}

func estreeStrFields(l *StrLit) fields {
	kind := l.Kind
	if kind == "" {
		kind = "Literal"
	}
	if kind == "StringLiteral" {
		return fields{
			attrs: l.Attrs,
			known: []string{"type", "value", "extra"},
			emit: func(key string) (any, bool) {
				switch key {
				case "type":
					return kind, true
				case "value":
					return l.Value, true
				case "extra":
					return babelExtra(l)
				}
				return nil, false
			},
		}
	}
	return fields{
		attrs: l.Attrs,
		known: []string{"type", "value", "raw"},
		emit: func(key string) (any, bool) {
			switch key {
			case "type":
				return kind, true
			case "value":
				return l.Value, true
			case "raw":
				if l.Raw == nil {
					return nil, false
				}
				return *l.Raw, true
			}
			return nil, false
		},
	}
}

// babelExtra rebuilds a StringLiteral's extra object. Without raw text the
// raw/rawValue pair is dropped so the generator re-renders the value.
func babelExtra(l *StrLit) (any, bool) {
	var extra *Object
	if l.Attrs != nil {
		if v, ok := l.Attrs.Get("extra"); ok {
			extra, _ = v.(*Object)
		}
	}
	if extra == nil && l.Raw == nil {
		return nil, false
	}

	out := NewObject()
	if extra != nil {
		for kv := extra.Front(); kv != nil; kv = kv.Next() {
			switch *kv.Key {
			case "raw", "rawValue":
				if l.Raw == nil {
					continue
				}
				if *kv.Key == "raw" {
					out.Set("raw", *l.Raw)
				} else {
					out.Set("rawValue", l.Value)
				}
			default:
				out.Set(*kv.Key, kv.Value)
			}
		}
	}
	if l.Raw != nil {
		if _, ok := out.Get("rawValue"); !ok {
			out.Set("rawValue", l.Value)
		}
		if _, ok := out.Get("raw"); !ok {
			out.Set("raw", *l.Raw)
		}
	}
	return out, true
}
