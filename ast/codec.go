package ast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dialect selects the JSON shape used by the host for its tree.
type Dialect int

const (
	// ESTree is the acorn/espree/Babel JSON layout
	ESTree Dialect = iota
	// SWC is the swc_ecma_ast serde layout
	SWC
)

func (d Dialect) String() string {
	switch d {
	case ESTree:
		return "estree"
	case SWC:
		return "swc"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect maps a dialect name to a Dialect. "babel" is accepted as an
// alias for ESTree.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "estree", "babel":
		return ESTree, nil
	case "swc":
		return SWC, nil
	}
	return ESTree, ErrUnknownDialect.WithArgs(name)
}

// Unmarshal decodes a JSON tree.
func Unmarshal(data []byte, d Dialect) (Node, error) {
	return Decode(bytes.NewReader(data), d)
}

// Decode reads a single JSON tree from r. The root must be an object with a
// string "type" field.
func Decode(r io.Reader, d Dialect) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrTreeMalformed.Wrap(err)
	}

	rd := &reader{data: data, dec: json.NewDecoder(bytes.NewReader(data))}
	rd.dec.UseNumber()

	raw, err := rd.value()
	if err != nil {
		return nil, ErrTreeMalformed.Wrap(err)
	}
	if _, err := rd.dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after tree root")
		}
		return nil, ErrTreeMalformed.Wrap(err)
	}

	b := builder{dialect: d}
	root, ok := b.value(raw).(Node)
	if !ok {
		return nil, ErrRootNotNode
	}
	return root, nil
}

// RawString is a JSON string holding an unpaired UTF-16 surrogate escape such
// as "\ud800". Go strings cannot represent it, so the quoted text is kept as
// read and written back unchanged.
type RawString string

// reader reads JSON values keeping object keys in source order.
type reader struct {
	data []byte
	dec  *json.Decoder
}

// token returns the next token. String tokens whose source text does not
// survive decoding are returned as RawString.
func (rd *reader) token() (json.Token, error) {
	start := rd.dec.InputOffset()
	tok, err := rd.dec.Token()
	if err != nil {
		return nil, err
	}
	if _, ok := tok.(string); !ok {
		return tok, nil
	}
	text := bytes.TrimLeft(rd.data[start:rd.dec.InputOffset()], " \t\r\n,:")
	if hasLoneSurrogate(text) {
		return RawString(text), nil
	}
	return tok, nil
}

func (rd *reader) value() (any, error) {
	tok, err := rd.token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for rd.dec.More() {
			keyTok, err := rd.token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a valid string", keyTok)
			}
			val, err := rd.value()
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if _, err := rd.dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for rd.dec.More() {
			val, err := rd.value()
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := rd.dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// hasLoneSurrogate reports whether the quoted JSON string text contains a
// \uD800-\uDFFF escape that is not part of a high/low pair.
func hasLoneSurrogate(text []byte) bool {
	for i := 0; i < len(text); i++ {
		if text[i] != '\\' {
			continue
		}
		i++
		if i >= len(text) || text[i] != 'u' {
			continue
		}
		r, ok := hexEscape(text, i-1)
		if !ok {
			continue
		}
		i += 4
		switch {
		case r >= 0xDC00 && r <= 0xDFFF:
			return true
		case r >= 0xD800 && r <= 0xDBFF:
			lo, ok := hexEscape(text, i+1)
			if !ok || lo < 0xDC00 || lo > 0xDFFF {
				return true
			}
			i += 6
		}
	}
	return false
}

// hexEscape decodes the \uXXXX escape starting at text[at].
func hexEscape(text []byte, at int) (rune, bool) {
	if at+6 > len(text) || text[at] != '\\' || text[at+1] != 'u' {
		return 0, false
	}
	n, err := strconv.ParseUint(string(text[at+2:at+6]), 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

// builder turns ordered JSON values into nodes.
type builder struct {
	dialect Dialect
}

func (b builder) value(v any) any {
	switch v := v.(type) {
	case *Object:
		if kind, ok := stringField(v, "type"); ok {
			return b.node(kind, v)
		}
		out := NewObject()
		for kv := v.Front(); kv != nil; kv = kv.Next() {
			out.Set(*kv.Key, b.value(kv.Value))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = b.value(elem)
		}
		return out
	}
	return v
}

func (b builder) node(kind string, obj *Object) Node {
	var n Node
	switch b.dialect {
	case SWC:
		n = b.swcNode(kind, obj)
	default:
		n = b.estreeNode(kind, obj)
	}
	if n != nil {
		return n
	}
	return b.generic(kind, obj)
}

func (b builder) generic(kind string, obj *Object) *Generic {
	g := &Generic{Kind: kind, Attrs: NewObject()}
	for kv := obj.Front(); kv != nil; kv = kv.Next() {
		g.Attrs.Set(*kv.Key, b.value(kv.Value))
	}
	return g
}

// attrs copies obj, replacing the named fields (and "type") with slots.
func (b builder) attrs(obj *Object, slotted ...string) *Object {
	out := NewObject()
	for kv := obj.Front(); kv != nil; kv = kv.Next() {
		key := *kv.Key
		if key == "type" || contains(slotted, key) {
			out.Set(key, slot{})
			continue
		}
		out.Set(key, b.value(kv.Value))
	}
	return out
}

func (b builder) callee(obj *Object) (Node, bool) {
	raw, ok := obj.Get("callee")
	if !ok {
		return nil, false
	}
	n, ok := b.value(raw).(Node)
	return n, ok
}

func stringField(obj *Object, key string) (string, bool) {
	v, ok := obj.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Marshal encodes a tree as compact JSON.
func Marshal(n Node, d Dialect) ([]byte, error) {
	e := &encoder{dialect: d}
	if err := e.value(n); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// Encoder writes trees to an output stream, one per line.
type Encoder struct {
	w       io.Writer
	dialect Dialect
	prefix  string
	indent  string
}

// NewEncoder returns an Encoder that writes trees in dialect d to w.
func NewEncoder(w io.Writer, d Dialect) *Encoder {
	return &Encoder{w: w, dialect: d}
}

// SetIndent makes the encoder indent each tree like json.Indent. Empty
// prefix and indent restore compact output.
func (enc *Encoder) SetIndent(prefix, indent string) {
	enc.prefix = prefix
	enc.indent = indent
}

// Encode writes n followed by a newline.
func (enc *Encoder) Encode(n Node) error {
	data, err := Marshal(n, enc.dialect)
	if err != nil {
		return err
	}
	if enc.prefix != "" || enc.indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, enc.prefix, enc.indent); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = enc.w.Write(data)
	return err
}

// fields describes how one node is laid out in a dialect: the ordered host
// attributes, the field names owned by the typed node, and how to produce
// their current values. emit returns false for fields that must be omitted.
type fields struct {
	attrs *Object
	known []string
	emit  func(key string) (any, bool)
}

type encoder struct {
	buf     bytes.Buffer
	dialect Dialect
}

func (e *encoder) value(v any) error {
	switch v := v.(type) {
	case nil, slot:
		e.buf.WriteString("null")
	case Node:
		return e.node(v)
	case *Object:
		return e.object(v)
	case []any:
		e.buf.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.value(elem); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	case string:
		e.str(v)
	case RawString:
		e.buf.WriteString(string(v))
	case json.Number:
		e.buf.WriteString(v.String())
	case bool:
		if v {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		e.buf.Write(data)
	}
	return nil
}

func (e *encoder) str(s string) {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)
	e.buf.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
}

func (e *encoder) object(o *Object) error {
	if o == nil {
		e.buf.WriteString("null")
		return nil
	}
	e.buf.WriteByte('{')
	first := true
	for kv := o.Front(); kv != nil; kv = kv.Next() {
		if err := e.field(&first, *kv.Key, kv.Value); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) field(first *bool, key string, val any) error {
	if !*first {
		e.buf.WriteByte(',')
	}
	*first = false
	e.str(key)
	e.buf.WriteByte(':')
	return e.value(val)
}

func (e *encoder) node(n Node) error {
	var f fields
	switch n := n.(type) {
	case *CallExpr:
		if n == nil {
			break
		}
		f = e.callFields(n)
	case *Ident:
		if n == nil {
			break
		}
		f = e.identFields(n)
	case *StrLit:
		if n == nil {
			break
		}
		f = e.strFields(n)
	case *Generic:
		if n == nil {
			break
		}
		f = fields{
			attrs: n.Attrs,
			known: []string{"type"},
			emit: func(string) (any, bool) {
				return n.Kind, true
			},
		}
	default:
		return fmt.Errorf("ast: unexpected node type %T", n)
	}
	if f.emit == nil {
		e.buf.WriteString("null")
		return nil
	}

	e.buf.WriteByte('{')
	first := true
	seen := make(map[string]bool)
	if f.attrs != nil {
		for kv := f.attrs.Front(); kv != nil; kv = kv.Next() {
			key := *kv.Key
			seen[key] = true
			if _, isSlot := kv.Value.(slot); isSlot || contains(f.known, key) {
				if val, ok := f.emit(key); ok {
					if err := e.field(&first, key, val); err != nil {
						return err
					}
				}
				continue
			}
			if err := e.field(&first, key, kv.Value); err != nil {
				return err
			}
		}
	}
	for _, key := range f.known {
		if seen[key] {
			continue
		}
		if val, ok := f.emit(key); ok {
			if err := e.field(&first, key, val); err != nil {
				return err
			}
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) callFields(c *CallExpr) fields {
	return fields{
		attrs: c.Attrs,
		known: []string{"type", "callee", "arguments"},
		emit: func(key string) (any, bool) {
			switch key {
			case "type":
				return c.Type(), true
			case "callee":
				return c.Callee, true
			case "arguments":
				args := make([]any, 0, len(c.Args))
				for _, arg := range c.Args {
					args = append(args, e.arg(arg))
				}
				return args, true
			}
			return nil, false
		},
	}
}

func (e *encoder) arg(a *Arg) any {
	if a == nil {
		return nil
	}
	if e.dialect == SWC {
		return renderSWCArg(a)
	}
	if !a.Spread {
		return a.Expr
	}
	return estreeSpread(a)
}

func (e *encoder) identFields(id *Ident) fields {
	nameKey := "name"
	if e.dialect == SWC {
		nameKey = "value"
	}
	return fields{
		attrs: id.Attrs,
		known: []string{"type", nameKey},
		emit: func(key string) (any, bool) {
			if key == "type" {
				return id.Type(), true
			}
			if key == nameKey {
				return id.Name, true
			}
			return nil, false
		},
	}
}

func (e *encoder) strFields(l *StrLit) fields {
	if e.dialect == SWC {
		return swcStrFields(l)
	}
	return estreeStrFields(l)
}
