// printer.go
//
// Width-aware pretty-printer for runtime values. Small containers render
// on one line; larger or annotated ones fold into indented multiline form.
// Colors are for the REPL only; tests leave EnableColor false.

package lodash

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
)

/* ---------- globals & tiny helpers ---------- */

var EnableColor = false // REPL-only; tests can leave this false
var MaxInlineWidth = 80 // width threshold for single-line arrays/objects

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

func colorize(s, c string) string {
	if !EnableColor {
		return s
	}
	return c + s + colorReset
}
func blue(s string) string  { return colorize(s, colorBlue) }
func green(s string) string { return colorize(s, colorGreen) }

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	rs := []rune(s)
	if !(unicode.IsLetter(rs[0]) || rs[0] == '_') {
		return false
	}
	for _, r := range rs[1:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

/* ---------- small writer with indentation & annotations ---------- */

type out struct {
	b     *strings.Builder
	depth int
}

func (o *out) write(s string) { o.b.WriteString(s) }
func (o *out) nl()            { o.b.WriteByte('\n') }
func (o *out) pad() {
	for i := 0; i < o.depth; i++ {
		o.b.WriteString("  ")
	}
}
func (o *out) line(s string)        { o.pad(); o.b.WriteString(s) }
func (o *out) blue(s string)        { o.b.WriteString(blue(s)) }
func (o *out) withIndent(fn func()) { o.depth++; fn(); o.depth-- }
func (o *out) annot(text string) {
	if text == "" {
		return
	}
	for _, ln := range strings.Split(text, "\n") {
		o.line(green("# " + strings.TrimSpace(ln)))
		o.nl()
	}
}

/* ---------- runtime value pretty-printer ---------- */

// FormatValue returns a string for a runtime Value with width awareness
// and optional colors.
func FormatValue(v Value) string {
	var b strings.Builder
	o := out{b: &b}
	writeValue(&o, v)
	return b.String()
}

func formatKey(k PropKey) string {
	if k.Symbolic() {
		return "@" + k.Name
	}
	if isIdent(k.Name) {
		return k.Name
	}
	return quoteString(k.Name)
}

// inlineValue renders v on one line, or returns "" if v needs multiline.
func inlineValue(v Value) string {
	if v.Annot != "" {
		return ""
	}
	var b strings.Builder
	o := out{b: &b}
	writeScalarOrHeader(&o, v, true)
	s := b.String()
	if s == "" || strings.Contains(s, "\n") {
		return ""
	}
	return s
}

func arrayOneLine(xs []Value) string {
	parts := make([]string, 0, len(xs))
	for _, it := range xs {
		s := inlineValue(it)
		if s == "" {
			return ""
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func objectOneLine(o *Object) string {
	if len(o.Keys) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(o.Keys))
	for _, k := range o.Keys {
		s := inlineValue(o.Entries[k])
		if s == "" {
			return ""
		}
		parts = append(parts, formatKey(k)+": "+s)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func writeValue(o *out, v Value) {
	// Header annotation (once)
	if v.Annot != "" {
		o.annot(v.Annot)
		o.pad()
	}
	writeScalarOrHeader(o, v, false)
}

// writeScalarOrHeader renders v. With inlineOnly set, containers that
// would fold to multiline emit nothing (signalling the caller to retry in
// multiline mode).
func writeScalarOrHeader(o *out, v Value, inlineOnly bool) {
	switch v.Tag {

	case VTNull:
		o.blue("null")

	case VTBool:
		if v.Data.(bool) {
			o.blue("true")
		} else {
			o.blue("false")
		}

	case VTInt:
		o.blue(strconv.FormatInt(v.Data.(int64), 10))

	case VTNum:
		s := strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		o.blue(s)

	case VTStr:
		o.blue(quoteString(v.Data.(string)))

	case VTSymbol:
		o.blue("@" + v.Data.(*Symbol).Desc)

	case VTArray:
		xs := v.Data.(*ArrayObject).Elems
		if oneline := arrayOneLine(xs); oneline != "" && len(oneline) <= MaxInlineWidth {
			o.blue(oneline)
			return
		}
		if inlineOnly {
			return
		}
		o.blue("[")
		o.nl()
		o.withIndent(func() {
			for i, it := range xs {
				if it.Annot == "" {
					o.pad()
				}
				writeValue(o, it)
				if i < len(xs)-1 {
					o.blue(",")
				}
				o.nl()
			}
		})
		o.pad()
		o.blue("]")

	case VTObject:
		oo := v.Data.(*Object)
		if oneline := objectOneLine(oo); oneline != "" && len(oneline) <= MaxInlineWidth {
			o.blue(oneline)
			return
		}
		if inlineOnly {
			return
		}
		o.blue("{")
		o.nl()
		o.withIndent(func() {
			for i, k := range oo.Keys {
				o.pad()
				o.blue(formatKey(k))
				o.blue(": ")
				writeScalarOrHeader(o, oo.Entries[k], false)
				if i < len(oo.Keys)-1 {
					o.blue(",")
				}
				o.nl()
			}
		})
		o.pad()
		o.blue("}")

	case VTWrapper:
		w := v.Data.(*Wrapper)
		o.blue("<" + w.Kind.String() + " " + w.Prim.String() + ">")

	case VTPattern:
		p := v.Data.(*Pattern)
		o.blue("/" + p.Source + "/" + p.Flags)

	case VTBuffer:
		b := v.Data.(*Buffer)
		preview := b.Bytes
		ellipsis := ""
		if len(preview) > 8 {
			preview = preview[:8]
			ellipsis = "…"
		}
		o.blue("<buffer " + strconv.Itoa(len(b.Bytes)) + "b " + hex.EncodeToString(preview) + ellipsis + ">")

	case VTView:
		vw := v.Data.(*View)
		o.blue("<" + vw.Kind.String() + " off=" + strconv.Itoa(vw.Off) + " len=" + strconv.Itoa(vw.Len) + ">")

	case VTDict:
		d := v.Data.(*DictObject)
		if inlineOnly && len(d.Entries) > 0 {
			return
		}
		if len(d.Entries) == 0 {
			o.blue("dict{}")
			return
		}
		o.blue("dict{")
		o.nl()
		o.withIndent(func() {
			for i, e := range d.Entries {
				o.pad()
				writeScalarOrHeader(o, e.Key, false)
				o.blue(" => ")
				writeScalarOrHeader(o, e.Val, false)
				if i < len(d.Entries)-1 {
					o.blue(",")
				}
				o.nl()
			}
		})
		o.pad()
		o.blue("}")

	case VTSet:
		s := v.Data.(*SetObject)
		if oneline := arrayOneLine(s.Elems); oneline != "" && len("set"+oneline) <= MaxInlineWidth {
			o.blue("set" + oneline)
			return
		}
		if inlineOnly {
			return
		}
		o.blue("set[")
		o.nl()
		o.withIndent(func() {
			for i, it := range s.Elems {
				o.pad()
				writeScalarOrHeader(o, it, false)
				if i < len(s.Elems)-1 {
					o.blue(",")
				}
				o.nl()
			}
		})
		o.pad()
		o.blue("]")

	case VTFun:
		f := v.Data.(*Fun)
		if f.Name != "" {
			o.blue("<fun " + f.Name + ">")
		} else {
			o.blue("<fun>")
		}

	case VTHandle:
		o.blue("<handle " + v.Data.(*Handle).Kind + ">")

	default:
		o.blue("<unknown>")
	}
}
