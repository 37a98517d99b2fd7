package lodash

import (
	"strings"
	"testing"
)

func mustPatternT(t *testing.T, src, flags string) Value {
	t.Helper()
	v, err := NewPattern(src, flags)
	if err != nil {
		t.Fatalf("NewPattern(%q, %q): %v", src, flags, err)
	}
	return v
}

func Test_Printer_Scalars(t *testing.T) {
	cases := map[string]Value{
		"null":    Null,
		"true":    Bool(true),
		"42":      Int(42),
		"2.5":     Num(2.5),
		"3.0":     Num(3),
		`"hi"`:    Str("hi"),
		"@tok":    SymVal(NewSymbol("tok")),
		"/a+/i":   mustPatternT(t, "a+", "i"),
		"<fun f>": FunVal(&Fun{Name: "f"}),
	}
	for want, v := range cases {
		if got := FormatValue(v); got != want {
			t.Fatalf("FormatValue(%#v) = %q, want %q", v, got, want)
		}
	}
}

func Test_Printer_SmallObjectOneLine(t *testing.T) {
	o := NewObject(nil)
	o.SetStr("a", Int(1))
	o.SetStr("b c", Str("x"))
	got := FormatValue(ObjVal(o))
	if got != `{ a: 1, "b c": "x" }` {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_LargeArrayFolds(t *testing.T) {
	xs := make([]Value, 12)
	for i := range xs {
		xs[i] = Str(strings.Repeat("x", 10))
	}
	got := FormatValue(Arr(xs))
	if !strings.Contains(got, "\n") {
		t.Fatalf("long array should fold multiline, got %q", got)
	}
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]") {
		t.Fatalf("unexpected shape: %q", got)
	}
}

func Test_Printer_Annotations(t *testing.T) {
	v := Int(1)
	v.Annot = "the answer\nkind of"
	got := FormatValue(v)
	if !strings.Contains(got, "# the answer") || !strings.Contains(got, "# kind of") {
		t.Fatalf("annotation lines missing: %q", got)
	}
}

func Test_Printer_DictAndSet(t *testing.T) {
	s := NewSet()
	s.Add(Int(1))
	s.Add(Int(2))
	if got := FormatValue(SetVal(s)); got != "set[1, 2]" {
		t.Fatalf("set rendering: %q", got)
	}

	d := NewDict()
	d.Set(Str("k"), Int(1))
	got := FormatValue(DictVal(d))
	if !strings.Contains(got, `"k" => 1`) {
		t.Fatalf("dict rendering: %q", got)
	}
	if got := FormatValue(DictVal(NewDict())); got != "dict{}" {
		t.Fatalf("empty dict rendering: %q", got)
	}
}

func Test_Printer_BufferAndView(t *testing.T) {
	got := FormatValue(Bytes([]byte{0xde, 0xad}))
	if got != "<buffer 2b dead>" {
		t.Fatalf("buffer rendering: %q", got)
	}
	vw := NewView(ViewFloat64, &Buffer{Bytes: make([]byte, 16)}, 0, 16)
	if got := FormatValue(vw); got != "<float64view off=0 len=16>" {
		t.Fatalf("view rendering: %q", got)
	}
}

func Test_Equal_AcrossTags(t *testing.T) {
	if Equal(Int(1), Num(1)) {
		t.Fatalf("different tags must not compare equal")
	}
	a := NewObject(nil)
	a.SetStr("x", Int(1))
	b := NewObject(nil)
	b.SetStr("x", Int(1))
	if !Equal(ObjVal(a), ObjVal(b)) {
		t.Fatalf("structurally equal objects should compare equal")
	}
	b.SetStr("y", Int(2))
	if Equal(ObjVal(a), ObjVal(b)) {
		t.Fatalf("field-count mismatch should not compare equal")
	}

	w1 := Box(WrapStr, Str("s"))
	w2 := Box(WrapStr, Str("s"))
	if !Equal(w1, w2) {
		t.Fatalf("same-kind same-payload boxes should compare equal")
	}
	if Equal(w1, Box(WrapInt, Int(1))) {
		t.Fatalf("different box kinds should not compare equal")
	}
}
