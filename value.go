// value.go
//
// The runtime value model the clone engine operates on.
//
// OVERVIEW
// ========
// Values form a dynamic, JSON-and-then-some graph: primitives, ordered
// arrays, prototype-linked objects, boxed primitives, compiled patterns,
// binary buffers and fixed-width views, ordered dictionaries and sets,
// first-class callables, and opaque host handles. A Value is a small tagged
// carrier; the tag determines which concrete payload Data holds.
//
// Payload invariants:
//   - VTNull       Data is nil.
//   - VTBool       bool
//   - VTInt        int64
//   - VTNum        float64
//   - VTStr        string
//   - VTSymbol     *Symbol (interned identity token; never duplicated)
//   - VTArray      *ArrayObject (ordered elements, optional match metadata)
//   - VTObject     *Object (insertion-ordered fields, prototype link)
//   - VTWrapper    *Wrapper (boxed primitive payload)
//   - VTPattern    *Pattern (source text, flags, cursor, compiled form)
//   - VTBuffer     *Buffer (raw byte storage)
//   - VTView       *View (typed window over a Buffer)
//   - VTDict       *DictObject (insertion-ordered key/value pairs)
//   - VTSet        *SetObject (insertion-ordered unique elements)
//   - VTFun        *Fun (callable; opaque behavior, enumerable Props)
//   - VTHandle     *Handle (opaque host value; kind string names it)
//
// Ordering is semantic everywhere: Object fields, DictObject entries and
// SetObject elements iterate in insertion order, and clones preserve it.
//
// The optional Annot string carries user-facing documentation alongside a
// value. Annotations never affect equality and survive cloning.

package lodash

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTNull    ValueTag = iota // null (no payload)
	VTBool                    // bool
	VTInt                     // int64
	VTNum                     // float64
	VTStr                     // string
	VTSymbol                  // *Symbol (identity token)
	VTArray                   // *ArrayObject
	VTObject                  // *Object (ordered fields + prototype link)
	VTWrapper                 // *Wrapper (boxed primitive)
	VTPattern                 // *Pattern (compiled pattern object)
	VTBuffer                  // *Buffer (raw bytes)
	VTView                    // *View (typed window over a Buffer)
	VTDict                    // *DictObject (ordered key/value pairs)
	VTSet                     // *SetObject (ordered unique elements)
	VTFun                     // *Fun (callable)
	VTHandle                  // *Handle (opaque host value)
)

// Value is the universal carrier for the graph the engine walks.
type Value struct {
	Tag   ValueTag
	Data  interface{}
	Annot string
}

// String renders a short debug representation (annotations are omitted).
func (v Value) String() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTSymbol:
		return "@" + v.Data.(*Symbol).Desc
	case VTArray:
		return fmt.Sprintf("<array len=%d>", len(v.Data.(*ArrayObject).Elems))
	case VTObject:
		return "<object>"
	case VTWrapper:
		return "<" + v.Data.(*Wrapper).Kind.String() + ">"
	case VTPattern:
		p := v.Data.(*Pattern)
		return "/" + p.Source + "/" + p.Flags
	case VTBuffer:
		return fmt.Sprintf("<buffer len=%d>", len(v.Data.(*Buffer).Bytes))
	case VTView:
		vw := v.Data.(*View)
		return fmt.Sprintf("<%s len=%d>", vw.Kind.String(), vw.Len)
	case VTDict:
		return "<dict>"
	case VTSet:
		return "<set>"
	case VTFun:
		return "<fun>"
	case VTHandle:
		return "<handle " + v.Data.(*Handle).Kind + ">"
	default:
		return "<unknown>"
	}
}

// Null is the singleton null Value (no annotation, no payload).
var Null = Value{Tag: VTNull}

// Primitive constructors for convenience. They do not attach annotations.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value   { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// --- Symbols ------------------------------------------------------------------

// Symbol is an opaque identifier token. Two symbols are the same value only
// if they are the same *Symbol; the description is purely informational.
// Cloning never duplicates a symbol.
type Symbol struct {
	Desc string
	id   string
}

// NewSymbol mints a fresh symbol with the given description.
func NewSymbol(desc string) *Symbol {
	return &Symbol{Desc: desc, id: uuid.NewString()}
}

// ID returns the symbol's unique identity string.
func (s *Symbol) ID() string { return s.id }

// SymVal wraps *Symbol into a Value (Tag=VTSymbol).
func SymVal(s *Symbol) Value { return Value{Tag: VTSymbol, Data: s} }

// --- Arrays -------------------------------------------------------------------

// ArrayObject is an ordered sequence of Values. A sequence produced by a
// pattern match additionally carries the match position and the input text
// as side metadata; Matched guards those two fields.
type ArrayObject struct {
	Elems []Value

	Matched bool
	Index   int
	Input   string
}

// Arr wraps a slice of Values into an array Value. The slice is adopted,
// not copied.
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: &ArrayObject{Elems: xs}} }

// MatchArr builds an array carrying pattern-match side metadata.
func MatchArr(xs []Value, index int, input string) Value {
	return Value{Tag: VTArray, Data: &ArrayObject{Elems: xs, Matched: true, Index: index, Input: input}}
}

// --- Objects ------------------------------------------------------------------

// PropKey names an object field: a plain string key, or a symbolic key when
// Sym is non-nil (Name then holds the symbol's description for rendering).
type PropKey struct {
	Name string
	Sym  *Symbol
}

// StrKey and SymKey build the two key forms.
func StrKey(name string) PropKey { return PropKey{Name: name} }
func SymKey(s *Symbol) PropKey   { return PropKey{Name: s.Desc, Sym: s} }

// Symbolic reports whether the key is symbol-valued.
func (k PropKey) Symbolic() bool { return k.Sym != nil }

// Object is an insertion-ordered field map with an optional prototype link.
// Proto gives the object its type identity: fields of the prototype chain
// are visible through Resolve, and a faithful clone shares the same Proto.
//
// Entries is the storage; Keys records insertion order (unique keys).
// Order-sensitive operations must consult Keys.
type Object struct {
	Proto   *Object
	Entries map[PropKey]Value
	Keys    []PropKey
}

// NewObject creates an empty object with the given prototype (may be nil).
func NewObject(proto *Object) *Object {
	return &Object{Proto: proto, Entries: make(map[PropKey]Value)}
}

// ObjVal wraps *Object into a Value (Tag=VTObject).
func ObjVal(o *Object) Value { return Value{Tag: VTObject, Data: o} }

// Set binds k to v as an own field. A new key is appended to the order.
func (o *Object) Set(k PropKey, v Value) {
	if _, ok := o.Entries[k]; !ok {
		o.Keys = append(o.Keys, k)
	}
	o.Entries[k] = v
}

// SetStr binds a plain string key.
func (o *Object) SetStr(name string, v Value) { o.Set(StrKey(name), v) }

// Get retrieves an own field only.
func (o *Object) Get(k PropKey) (Value, bool) {
	v, ok := o.Entries[k]
	return v, ok
}

// GetStr retrieves an own field by string key.
func (o *Object) GetStr(name string) (Value, bool) { return o.Get(StrKey(name)) }

// Resolve walks the prototype chain, nearest binding wins.
func (o *Object) Resolve(k PropKey) (Value, bool) {
	for cur := o; cur != nil; cur = cur.Proto {
		if v, ok := cur.Entries[k]; ok {
			return v, true
		}
	}
	return Null, false
}

// Len reports the number of own fields.
func (o *Object) Len() int { return len(o.Keys) }

// --- Boxed primitives ---------------------------------------------------------

// WrapKind names the concrete boxed-primitive constructor.
type WrapKind int

const (
	WrapBool WrapKind = iota
	WrapInt
	WrapNum
	WrapStr
	WrapTime // epoch-millis payload (Date-like)
	WrapSym
)

func (k WrapKind) String() string {
	switch k {
	case WrapBool:
		return "boxed-bool"
	case WrapInt:
		return "boxed-int"
	case WrapNum:
		return "boxed-num"
	case WrapStr:
		return "boxed-str"
	case WrapTime:
		return "boxed-time"
	case WrapSym:
		return "boxed-symbol"
	default:
		return "boxed-unknown"
	}
}

// Wrapper boxes an immutable primitive payload. Reconstructing a wrapper of
// the same kind from Prim yields an equivalent, independent box.
type Wrapper struct {
	Kind WrapKind
	Prim Value
}

// Box wraps a primitive payload in a fresh box of the given kind.
func Box(kind WrapKind, prim Value) Value {
	return Value{Tag: VTWrapper, Data: &Wrapper{Kind: kind, Prim: prim}}
}

// BoxTime boxes an epoch-millis timestamp.
func BoxTime(millis int64) Value { return Box(WrapTime, Int(millis)) }

// --- Patterns -----------------------------------------------------------------

// Pattern is a pattern object: source text, flag letters, and a cursor
// position for successive matching. The compiled form is cached and shared
// by value semantics; re-construction recompiles from Source and Flags.
//
// Supported flag letters: g i m s u y. Only i, m and s affect compilation;
// the rest are carried verbatim for round-tripping.
type Pattern struct {
	Source    string
	Flags     string
	LastIndex int

	re *regexp.Regexp
}

// NewPattern compiles source with the given flag letters.
func NewPattern(source, flags string) (Value, error) {
	re, err := compilePattern(source, flags)
	if err != nil {
		return Null, err
	}
	return Value{Tag: VTPattern, Data: &Pattern{Source: source, Flags: flags, re: re}}, nil
}

// Regexp exposes the compiled form.
func (p *Pattern) Regexp() *regexp.Regexp { return p.re }

func compilePattern(source, flags string) (*regexp.Regexp, error) {
	var mode strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			mode.WriteRune(f)
		case 'g', 'u', 'y':
			// match-loop flags; no compile-time effect
		default:
			return nil, fmt.Errorf("pattern: unsupported flag %q in %q", string(f), flags)
		}
	}
	src := source
	if mode.Len() > 0 {
		src = "(?" + mode.String() + ")" + source
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	return re, nil
}

// --- Buffers and views --------------------------------------------------------

// Buffer is fixed-length raw byte storage.
type Buffer struct {
	Bytes []byte
}

// Bytes wraps a byte slice into a buffer Value. The slice is adopted.
func Bytes(b []byte) Value { return Value{Tag: VTBuffer, Data: &Buffer{Bytes: b}} }

// ViewKind names a fixed-width numeric view or the untyped data view.
type ViewKind int

const (
	ViewData ViewKind = iota
	ViewInt8
	ViewUint8
	ViewInt16
	ViewUint16
	ViewInt32
	ViewUint32
	ViewInt64
	ViewFloat32
	ViewFloat64
)

func (k ViewKind) String() string {
	switch k {
	case ViewData:
		return "dataview"
	case ViewInt8:
		return "int8view"
	case ViewUint8:
		return "uint8view"
	case ViewInt16:
		return "int16view"
	case ViewUint16:
		return "uint16view"
	case ViewInt32:
		return "int32view"
	case ViewUint32:
		return "uint32view"
	case ViewInt64:
		return "int64view"
	case ViewFloat32:
		return "float32view"
	case ViewFloat64:
		return "float64view"
	default:
		return "view-unknown"
	}
}

// Width reports the element width in bytes (1 for the untyped data view).
func (k ViewKind) Width() int {
	switch k {
	case ViewInt16, ViewUint16:
		return 2
	case ViewInt32, ViewUint32, ViewFloat32:
		return 4
	case ViewInt64, ViewFloat64:
		return 8
	default:
		return 1
	}
}

// View is a typed window over a Buffer: Off and Len are in bytes. The view
// owns its header; the storage belongs to Buf and may be shared.
type View struct {
	Kind ViewKind
	Buf  *Buffer
	Off  int
	Len  int
}

// NewView builds a view Value over buf. Off/Len are byte offsets and are
// not range-checked beyond clamping to the buffer.
func NewView(kind ViewKind, buf *Buffer, off, length int) Value {
	if off < 0 {
		off = 0
	}
	if n := len(buf.Bytes); off+length > n {
		length = n - off
	}
	return Value{Tag: VTView, Data: &View{Kind: kind, Buf: buf, Off: off, Len: length}}
}

// --- Dictionaries and sets ----------------------------------------------------

// DictEntry is one key/value pair of a DictObject.
type DictEntry struct {
	Key Value
	Val Value
}

// DictObject is an insertion-ordered mapping with arbitrary Value keys.
// Key lookup uses structural equality.
type DictObject struct {
	Entries []DictEntry
}

// NewDict creates an empty dictionary.
func NewDict() *DictObject { return &DictObject{} }

// DictVal wraps *DictObject into a Value (Tag=VTDict).
func DictVal(d *DictObject) Value { return Value{Tag: VTDict, Data: d} }

// Set binds k to v, replacing a structurally equal key in place.
func (d *DictObject) Set(k, v Value) {
	for i := range d.Entries {
		if deepEqual(d.Entries[i].Key, k) {
			d.Entries[i].Val = v
			return
		}
	}
	d.Entries = append(d.Entries, DictEntry{Key: k, Val: v})
}

// Get retrieves the value bound to a structurally equal key.
func (d *DictObject) Get(k Value) (Value, bool) {
	for i := range d.Entries {
		if deepEqual(d.Entries[i].Key, k) {
			return d.Entries[i].Val, true
		}
	}
	return Null, false
}

// Len reports the number of entries.
func (d *DictObject) Len() int { return len(d.Entries) }

// push appends without the equality scan; used by the populator, which
// iterates a source dict whose keys are already unique.
func (d *DictObject) push(k, v Value) {
	d.Entries = append(d.Entries, DictEntry{Key: k, Val: v})
}

// SetObject is an insertion-ordered collection of unique Values.
// Membership uses structural equality.
type SetObject struct {
	Elems []Value
}

// NewSet creates an empty set.
func NewSet() *SetObject { return &SetObject{} }

// SetVal wraps *SetObject into a Value (Tag=VTSet).
func SetVal(s *SetObject) Value { return Value{Tag: VTSet, Data: s} }

// Add inserts v unless a structurally equal element is already present.
func (s *SetObject) Add(v Value) {
	for i := range s.Elems {
		if deepEqual(s.Elems[i], v) {
			return
		}
	}
	s.Elems = append(s.Elems, v)
}

// Has reports structural membership.
func (s *SetObject) Has(v Value) bool {
	for i := range s.Elems {
		if deepEqual(s.Elems[i], v) {
			return true
		}
	}
	return false
}

// Len reports the number of elements.
func (s *SetObject) Len() int { return len(s.Elems) }

// push appends without the membership scan (populator use).
func (s *SetObject) push(v Value) { s.Elems = append(s.Elems, v) }

// --- Callables ----------------------------------------------------------------

// Fun is a callable value. The engine never invokes Call and never copies
// it; only the enumerable Props travel through cloning (and only when the
// callable is the root of a traversal).
type Fun struct {
	Name  string
	Call  func(args []Value) Value
	Props *Object
}

// FunVal wraps *Fun into a Value (Tag=VTFun).
func FunVal(f *Fun) Value { return Value{Tag: VTFun, Data: f} }

// --- Opaque handles -----------------------------------------------------------

// Handle is an opaque, universal host value (Lua-like userdata). Handles
// are outside the cloneable tag set: nested ones are shared by reference,
// a root one clones to an empty object.
type Handle struct {
	Kind string
	Data any
}

// HandleVal wraps arbitrary host data into a handle Value.
func HandleVal(kind string, data any) Value {
	return Value{Tag: VTHandle, Data: &Handle{Kind: kind, Data: data}}
}

// ErrVal boxes a host error as an unrecoverable-error handle.
func ErrVal(err error) Value { return HandleVal(tagError, err) }
