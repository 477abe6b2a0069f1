package model

import (
	"fmt"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindUndefined Kind = iota // zero Value: nothing was decoded
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// Member is one key/value pair of an object Value.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON-like structured value. Objects keep their members in the
// order they were decoded or constructed.
type Value struct {
	kind    Kind
	b       bool
	text    string // string contents, or the decimal text of a number
	items   []Value
	members []Member
}

func Null() Value           { return Value{kind: KindNull} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number wraps the decimal text of a number as it appeared in the input.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

func Object(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: KindObject, members: members}
}

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsDefined() bool   { return v.kind != KindUndefined }
func (v Value) Bool() bool        { return v.b }
func (v Value) Text() string      { return v.text }
func (v Value) Items() []Value    { return v.items }
func (v Value) Members() []Member { return v.members }

// Float parses a number Value.
func (v Value) Float() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("value is %s, not a number", v.kind)
	}
	return strconv.ParseFloat(v.text, 64)
}

// Get returns the member value for key on an object Value.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// UnmarshalJSON decodes any JSON value, keeping object key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowIterator(data)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnIterator(iter)

	parsed := readIter(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return fmt.Errorf("decode value: %w", iter.Error)
	}
	*v = parsed
	return nil
}

func readIter(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		return Number(string(iter.ReadNumber()))
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		items := []Value{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, readIter(it))
			return it.Error == nil
		})
		return Array(items...)
	case jsoniter.ObjectValue:
		members := []Member{}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			members = append(members, Member{Key: key, Value: readIter(it)})
			return it.Error == nil
		})
		return Object(members...)
	default:
		iter.ReportError("readIter", "unexpected token")
		return Value{}
	}
}

// MarshalJSON encodes the value compactly, keeping object key order.
func (v Value) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	writeStream(stream, v)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func writeStream(stream *jsoniter.Stream, v Value) {
	switch v.kind {
	case KindBool:
		stream.WriteBool(v.b)
	case KindNumber:
		stream.WriteRaw(v.text)
	case KindString:
		stream.WriteString(v.text)
	case KindArray:
		stream.WriteArrayStart()
		for i, item := range v.items {
			if i > 0 {
				stream.WriteMore()
			}
			writeStream(stream, item)
		}
		stream.WriteArrayEnd()
	case KindObject:
		stream.WriteObjectStart()
		for i, m := range v.members {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key)
			writeStream(stream, m.Value)
		}
		stream.WriteObjectEnd()
	default:
		stream.WriteNil()
	}
}

// UnmarshalYAML decodes any YAML node, keeping mapping key order.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := valueFromNode(node)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func valueFromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return valueFromNode(n.Content[0])
	case yaml.AliasNode:
		return valueFromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := valueFromNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			val, err := valueFromNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: key.Value, Value: val})
		}
		return Object(members...), nil
	case yaml.ScalarNode:
		return scalarFromNode(n)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}

func scalarFromNode(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("line %d: %s is not representable", n.Line, n.Value)
		}
		return Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return String(n.Value), nil
	}
}
