// equal.go
//
// Structural equality over the value model. Containers compare element by
// element in order; callables, handles and symbols compare by identity.
// Annotations never affect equality. Not cycle-guarded: callers compare
// acyclic graphs (the dict/set key space and test assertions).

package lodash

import "bytes"

func deepEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTSymbol:
		return a.Data.(*Symbol) == b.Data.(*Symbol)

	case VTArray:
		ax := a.Data.(*ArrayObject)
		bx := b.Data.(*ArrayObject)
		if len(ax.Elems) != len(bx.Elems) {
			return false
		}
		if ax.Matched != bx.Matched || ax.Index != bx.Index || ax.Input != bx.Input {
			return false
		}
		for i := range ax.Elems {
			if !deepEqual(ax.Elems[i], bx.Elems[i]) {
				return false
			}
		}
		return true

	case VTObject:
		ao := a.Data.(*Object)
		bo := b.Data.(*Object)
		if len(ao.Keys) != len(bo.Keys) {
			return false
		}
		for _, k := range ao.Keys {
			bv, ok := bo.Entries[k]
			if !ok || !deepEqual(ao.Entries[k], bv) {
				return false
			}
		}
		return true

	case VTWrapper:
		aw := a.Data.(*Wrapper)
		bw := b.Data.(*Wrapper)
		return aw.Kind == bw.Kind && deepEqual(aw.Prim, bw.Prim)

	case VTPattern:
		ap := a.Data.(*Pattern)
		bp := b.Data.(*Pattern)
		return ap.Source == bp.Source && ap.Flags == bp.Flags && ap.LastIndex == bp.LastIndex

	case VTBuffer:
		return bytes.Equal(a.Data.(*Buffer).Bytes, b.Data.(*Buffer).Bytes)

	case VTView:
		av := a.Data.(*View)
		bv := b.Data.(*View)
		return av.Kind == bv.Kind && av.Off == bv.Off && av.Len == bv.Len &&
			bytes.Equal(av.Buf.Bytes, bv.Buf.Bytes)

	case VTDict:
		ad := a.Data.(*DictObject)
		bd := b.Data.(*DictObject)
		if len(ad.Entries) != len(bd.Entries) {
			return false
		}
		for i := range ad.Entries {
			if !deepEqual(ad.Entries[i].Key, bd.Entries[i].Key) ||
				!deepEqual(ad.Entries[i].Val, bd.Entries[i].Val) {
				return false
			}
		}
		return true

	case VTSet:
		as := a.Data.(*SetObject)
		bs := b.Data.(*SetObject)
		if len(as.Elems) != len(bs.Elems) {
			return false
		}
		for i := range as.Elems {
			if !deepEqual(as.Elems[i], bs.Elems[i]) {
				return false
			}
		}
		return true

	case VTFun:
		return a.Data.(*Fun) == b.Data.(*Fun)
	case VTHandle:
		return a.Data.(*Handle) == b.Data.(*Handle)
	default:
		return false
	}
}

// Equal reports structural equality between two values.
func Equal(a, b Value) bool { return deepEqual(a, b) }
