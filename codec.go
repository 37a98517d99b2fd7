// codec.go
//
// Host codecs: JSON and YAML text to and from the value graph.
//
// Mapping rules (both directions):
//   - null/bool/number/string map to Null/Bool/Int|Num/Str
//   - integral numbers become Int; other numbers become Num
//   - arrays/sequences map to VTArray
//   - objects/mappings map to VTObject with *source key order preserved*
//     (JSON decodes token by token; YAML decodes at the node level)
//
// Encoding accepts the JSON-shaped subset plus boxed primitives (their
// payloads are emitted) and sets (emitted as arrays). Dictionaries encode
// only when every key is textual. Patterns, buffers, views, callables,
// symbols and handles have no faithful text form and return an error.
//
// YAML anchors decode to shared references: every alias of an anchor
// resolves to the same graph node, which deep cloning then converges on.

package lodash

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// --- JSON ---------------------------------------------------------------------

// FromJSON decodes JSON text into a value graph, preserving object key
// order from the source.
func FromJSON(src string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return Null, fmt.Errorf("json: %w", err)
	}
	if dec.More() {
		return Null, fmt.Errorf("json: trailing data after value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			o := NewObject(nil)
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return Null, err
				}
				key, ok := ktok.(string)
				if !ok {
					return Null, fmt.Errorf("object key is not a string: %v", ktok)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return Null, err
				}
				o.SetStr(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Null, err
			}
			return ObjVal(o), nil
		case '[':
			var xs []Value
			for dec.More() {
				el, err := decodeJSON(dec)
				if err != nil {
					return Null, err
				}
				xs = append(xs, el)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Null, err
			}
			return Arr(xs), nil
		}
		return Null, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return Str(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return Int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Null, err
		}
		return Num(f), nil
	case nil:
		return Null, nil
	default:
		return Null, fmt.Errorf("unexpected token %v", tok)
	}
}

// ToJSON encodes a value graph as compact JSON, emitting object fields in
// insertion order. Symbolic keys are skipped (no text form).
func ToJSON(v Value) (string, error) {
	var b strings.Builder
	if err := writeJSON(&b, v); err != nil {
		return "", fmt.Errorf("json: %w", err)
	}
	return b.String(), nil
}

func writeJSON(b *strings.Builder, v Value) error {
	switch v.Tag {
	case VTNull:
		b.WriteString("null")
	case VTBool:
		b.WriteString(strconv.FormatBool(v.Data.(bool)))
	case VTInt:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTNum:
		f := v.Data.(float64)
		out, err := json.Marshal(f) // rejects NaN/Inf for us
		if err != nil {
			return err
		}
		b.Write(out)
	case VTStr:
		out, err := json.Marshal(v.Data.(string))
		if err != nil {
			return err
		}
		b.Write(out)
	case VTArray:
		b.WriteByte('[')
		for i, el := range v.Data.(*ArrayObject).Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, el); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case VTObject:
		o := v.Data.(*Object)
		b.WriteByte('{')
		first := true
		for _, k := range o.Keys {
			if k.Symbolic() {
				continue
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			kb, err := json.Marshal(k.Name)
			if err != nil {
				return err
			}
			b.Write(kb)
			b.WriteByte(':')
			if err := writeJSON(b, o.Entries[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case VTWrapper:
		return writeJSON(b, v.Data.(*Wrapper).Prim)
	case VTSet:
		b.WriteByte('[')
		for i, el := range v.Data.(*SetObject).Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, el); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case VTDict:
		d := v.Data.(*DictObject)
		b.WriteByte('{')
		for i, e := range d.Entries {
			if e.Key.Tag != VTStr {
				return fmt.Errorf("dict key %s is not textual", e.Key)
			}
			if i > 0 {
				b.WriteByte(',')
			}
			kb, err := json.Marshal(e.Key.Data.(string))
			if err != nil {
				return err
			}
			b.Write(kb)
			b.WriteByte(':')
			if err := writeJSON(b, e.Val); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("cannot represent %s", getTag(v))
	}
	return nil
}

// --- YAML ---------------------------------------------------------------------

// FromYAML decodes a YAML document into a value graph, preserving mapping
// key order. Aliases of one anchor decode to the same node.
func FromYAML(src string) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(src), &root); err != nil {
		return Null, fmt.Errorf("yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null, nil
	}
	v, err := decodeYAML(root.Content[0], map[*yaml.Node]Value{})
	if err != nil {
		return Null, fmt.Errorf("yaml: %w", err)
	}
	return v, nil
}

func decodeYAML(n *yaml.Node, anchors map[*yaml.Node]Value) (Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if v, ok := anchors[n.Alias]; ok {
			return v, nil
		}
		return decodeYAML(n.Alias, anchors)

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return Null, nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return Null, fmt.Errorf("bad bool %q", n.Value)
			}
			return Bool(b), nil
		case "!!int":
			i, err := strconv.ParseInt(n.Value, 0, 64)
			if err != nil {
				return Null, fmt.Errorf("bad int %q", n.Value)
			}
			return Int(i), nil
		case "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return Null, fmt.Errorf("bad float %q", n.Value)
			}
			return Num(f), nil
		default:
			return Str(n.Value), nil
		}

	case yaml.SequenceNode:
		xs := make([]Value, 0, len(n.Content))
		out := Arr(xs)
		anchors[n] = out // anchors may be referenced from inside
		ao := out.Data.(*ArrayObject)
		for _, c := range n.Content {
			el, err := decodeYAML(c, anchors)
			if err != nil {
				return Null, err
			}
			ao.Elems = append(ao.Elems, el)
		}
		return out, nil

	case yaml.MappingNode:
		o := NewObject(nil)
		out := ObjVal(o)
		anchors[n] = out
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn, vn := n.Content[i], n.Content[i+1]
			if kn.Kind != yaml.ScalarNode {
				return Null, fmt.Errorf("mapping key at line %d is not scalar", kn.Line)
			}
			val, err := decodeYAML(vn, anchors)
			if err != nil {
				return Null, err
			}
			o.SetStr(kn.Value, val)
		}
		return out, nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null, nil
		}
		return decodeYAML(n.Content[0], anchors)
	}
	return Null, fmt.Errorf("unsupported node kind %d", n.Kind)
}

// ToYAML encodes a value graph as a YAML document, emitting object fields
// in insertion order. Accepts the same subset as ToJSON.
func ToYAML(v Value) (string, error) {
	node, err := encodeYAML(v)
	if err != nil {
		return "", fmt.Errorf("yaml: %w", err)
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("yaml: %w", err)
	}
	return string(out), nil
}

func encodeYAML(v Value) (*yaml.Node, error) {
	scalar := func(tag, val string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
	}
	switch v.Tag {
	case VTNull:
		return scalar("!!null", "null"), nil
	case VTBool:
		return scalar("!!bool", strconv.FormatBool(v.Data.(bool))), nil
	case VTInt:
		return scalar("!!int", strconv.FormatInt(v.Data.(int64), 10)), nil
	case VTNum:
		return scalar("!!float", strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)), nil
	case VTStr:
		return scalar("!!str", v.Data.(string)), nil
	case VTWrapper:
		return encodeYAML(v.Data.(*Wrapper).Prim)
	case VTArray, VTSet:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		var elems []Value
		if v.Tag == VTArray {
			elems = v.Data.(*ArrayObject).Elems
		} else {
			elems = v.Data.(*SetObject).Elems
		}
		for _, el := range elems {
			c, err := encodeYAML(el)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, c)
		}
		return seq, nil
	case VTObject:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		o := v.Data.(*Object)
		for _, k := range o.Keys {
			if k.Symbolic() {
				continue
			}
			c, err := encodeYAML(o.Entries[k])
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, scalar("!!str", k.Name), c)
		}
		return m, nil
	case VTDict:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.Data.(*DictObject).Entries {
			if e.Key.Tag != VTStr {
				return nil, fmt.Errorf("dict key %s is not textual", e.Key)
			}
			c, err := encodeYAML(e.Val)
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, scalar("!!str", e.Key.Data.(string)), c)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("cannot represent %s", getTag(v))
	}
}
