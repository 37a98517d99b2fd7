package lodash

import "testing"

func keyNames(ks []PropKey) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.Name
	}
	return out
}

func wantNames(t *testing.T, got []PropKey, want ...string) {
	t.Helper()
	names := keyNames(got)
	if len(names) != len(want) {
		t.Fatalf("key count: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("key %d: got %v, want %v", i, names, want)
		}
	}
}

func Test_Keys_Own_InsertionOrder(t *testing.T) {
	o := NewObject(nil)
	o.SetStr("b", Int(1))
	o.SetStr("a", Int(2))
	o.SetStr("c", Int(3))
	wantNames(t, ownKeys(o, false), "b", "a", "c")
}

func Test_Keys_SymbolicFiltering(t *testing.T) {
	sym := NewSymbol("hidden")
	o := NewObject(nil)
	o.SetStr("s", Int(1))
	o.Set(SymKey(sym), Int(2))

	wantNames(t, ownKeys(o, false), "s")
	wantNames(t, ownKeys(o, true), "s", "hidden")
}

func Test_Keys_Chain_NearestWins(t *testing.T) {
	grand := NewObject(nil)
	grand.SetStr("g", Int(1))
	grand.SetStr("x", Str("grand"))
	proto := NewObject(grand)
	proto.SetStr("p", Int(2))
	proto.SetStr("x", Str("proto"))
	o := NewObject(proto)
	o.SetStr("own", Int(3))

	ks := chainKeys(o, false)
	wantNames(t, ks, "own", "p", "x", "g")

	// Resolution through the chain picks the nearest binding.
	if v, _ := o.Resolve(StrKey("x")); v.Data.(string) != "proto" {
		t.Fatalf("nearest binding should win, got %s", v)
	}
}

func Test_Keys_CopyProps_SharesValues(t *testing.T) {
	child := NewObject(nil)
	src := NewObject(nil)
	src.SetStr("c", ObjVal(child))
	src.SetStr("n", Int(5))

	dst := NewObject(nil)
	copyProps(dst, src, ownKeys(src, false))
	if got, _ := dst.GetStr("c"); got.Data.(*Object) != child {
		t.Fatalf("one-level copy must share values by reference")
	}
	if got, _ := dst.GetStr("n"); got.Data.(int64) != 5 {
		t.Fatalf("field value lost: %#v", got)
	}
}

func Test_Keys_KeysFor_FlagSelection(t *testing.T) {
	proto := NewObject(nil)
	proto.SetStr("inh", Int(1))
	sym := NewSymbol("sy")
	o := NewObject(proto)
	o.SetStr("own", Int(2))
	o.Set(SymKey(sym), Int(3))

	wantNames(t, keysFor(o, 0), "own")
	wantNames(t, keysFor(o, CloneSymbols), "own", "sy")
	wantNames(t, keysFor(o, CloneFlat), "own", "inh")
	wantNames(t, keysFor(o, CloneFlat|CloneSymbols), "own", "sy", "inh")
}
