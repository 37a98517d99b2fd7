// keys.go
//
// Field-key enumeration and one-level copy primitives.
//
// Four enumeration variants feed the clone engine: own keys vs. the full
// prototype chain, each with or without symbolic keys. Chain enumeration
// walks outward with nearest-binding-wins, preserving per-frame insertion
// order, so a flattened copy sees fields in the same order a chain lookup
// would discover them.

package lodash

// ownKeys returns the object's own field keys in insertion order.
// Symbolic keys are included only when syms is set.
func ownKeys(o *Object, syms bool) []PropKey {
	if o == nil {
		return nil
	}
	out := make([]PropKey, 0, len(o.Keys))
	for _, k := range o.Keys {
		if k.Symbolic() && !syms {
			continue
		}
		out = append(out, k)
	}
	return out
}

// chainKeys returns own plus inherited-visible keys, nearest wins: own keys
// first in insertion order, then each prototype frame's unshadowed keys.
func chainKeys(o *Object, syms bool) []PropKey {
	var out []PropKey
	seen := map[PropKey]bool{}
	for cur := o; cur != nil; cur = cur.Proto {
		for _, k := range cur.Keys {
			if seen[k] {
				continue // inner binding already won
			}
			seen[k] = true
			if k.Symbolic() && !syms {
				continue
			}
			out = append(out, k)
		}
	}
	return out
}

// keysFor selects the enumeration variant from the flag bits.
func keysFor(o *Object, flags CloneFlag) []PropKey {
	syms := flags&CloneSymbols != 0
	if flags&CloneFlat != 0 {
		return chainKeys(o, syms)
	}
	return ownKeys(o, syms)
}

// copyProps assigns the named fields of src into dst one level deep: values
// are shared by reference, never cloned. Reads resolve through the chain so
// flattened enumerations find inherited bindings.
func copyProps(dst, src *Object, keys []PropKey) {
	for _, k := range keys {
		if v, ok := src.Resolve(k); ok {
			dst.Set(k, v)
		}
	}
}

// copyElems assigns src's elements into dst by index, reference-shared.
func copyElems(dst, src *ArrayObject) {
	copy(dst.Elems, src.Elems)
}
