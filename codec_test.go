package lodash

import (
	"strings"
	"testing"
)

func Test_JSON_Decode_PreservesKeyOrder(t *testing.T) {
	v, err := FromJSON(`{"z": 1, "a": {"m": [1, 2.5, null, true]}, "b": "s"}`)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	o := asObj(t, v)
	wantNames(t, o.Keys, "z", "a", "b")

	if got := mustGet(t, o, "z"); got.Tag != VTInt {
		t.Fatalf("integral number should decode to Int, got %#v", got)
	}
	inner := asArr(t, mustGet(t, asObj(t, mustGet(t, o, "a")), "m"))
	if inner.Elems[1].Tag != VTNum || inner.Elems[2].Tag != VTNull || inner.Elems[3].Tag != VTBool {
		t.Fatalf("scalar mapping wrong: %s", FormatValue(mustGet(t, o, "a")))
	}
}

func Test_JSON_RoundTrip(t *testing.T) {
	src := `{"z":1,"a":{"m":[1,2.5,null,true]},"b":"s"}`
	v, err := FromJSON(src)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	out, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if out != src {
		t.Fatalf("round trip changed text:\n got: %s\nwant: %s", out, src)
	}
}

func Test_JSON_Encode_WrapperAndSet(t *testing.T) {
	o := NewObject(nil)
	o.SetStr("t", BoxTime(12))
	s := NewSet()
	s.Add(Int(1))
	s.Add(Int(2))
	o.SetStr("s", SetVal(s))

	out, err := ToJSON(ObjVal(o))
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if out != `{"t":12,"s":[1,2]}` {
		t.Fatalf("unexpected encoding: %s", out)
	}
}

func Test_JSON_Encode_RejectsOpaque(t *testing.T) {
	if _, err := ToJSON(ErrVal(errFake{})); err == nil {
		t.Fatalf("opaque handle should not encode")
	}
	if _, err := ToJSON(FunVal(&Fun{})); err == nil {
		t.Fatalf("callable should not encode")
	}
}

func Test_JSON_Decode_RejectsTrailing(t *testing.T) {
	if _, err := FromJSON(`{"a":1} trailing`); err == nil {
		t.Fatalf("trailing data should error")
	}
}

func Test_YAML_Decode_PreservesKeyOrder(t *testing.T) {
	v, err := FromYAML("z: 1\na:\n  m: [x, 2]\nb: true\n")
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	o := asObj(t, v)
	wantNames(t, o.Keys, "z", "a", "b")
	if got := mustGet(t, o, "b"); got.Tag != VTBool {
		t.Fatalf("want bool, got %#v", got)
	}
}

func Test_YAML_Anchors_DecodeToSharedNodes(t *testing.T) {
	src := "base: &b\n  n: 1\nleft: *b\nright: *b\n"
	v, err := FromYAML(src)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	o := asObj(t, v)
	left := mustGet(t, o, "left")
	right := mustGet(t, o, "right")
	if left.Data != right.Data {
		t.Fatalf("aliases of one anchor should share a node")
	}

	// ...and deep cloning then converges the shared node.
	co := asObj(t, DeepClone(v))
	if mustGet(t, co, "left").Data != mustGet(t, co, "right").Data {
		t.Fatalf("deep clone should keep the aliases converged")
	}
	if mustGet(t, co, "left").Data == left.Data {
		t.Fatalf("deep clone should not share the original node")
	}
}

func Test_YAML_RoundTrip(t *testing.T) {
	o := NewObject(nil)
	o.SetStr("name", Str("ada"))
	o.SetStr("tags", Arr([]Value{Str("x"), Str("y")}))
	o.SetStr("count", Int(2))

	text, err := ToYAML(ObjVal(o))
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	back, err := FromYAML(text)
	if err != nil {
		t.Fatalf("FromYAML: %v\ntext:\n%s", err, text)
	}
	wantEqual(t, back, ObjVal(o))
	if !strings.Contains(text, "name: ada") {
		t.Fatalf("unexpected YAML text:\n%s", text)
	}
}
