// clone.go
//
// The cycle-safe clone engine.
//
// OVERVIEW
// ========
// One recursive procedure walks a value graph depth-first and produces an
// independent copy with the same structural shape. Three pieces cooperate:
// the classifier (tags.go) picks a strategy per value, the initializers
// (shell.go) allocate the per-category shell, and the populator below
// recurses into children with a traversal registry threaded through every
// call.
//
// CYCLES AND SHARED REFERENCES
// ----------------------------
// The registry maps an already-visited original (by payload identity) to
// its in-progress clone. A value is registered *before* its children are
// visited, so a back-edge met during child traversal resolves to the
// partially populated clone instead of recursing again. The same mechanism
// makes two edges to one shared node converge on a single clone instance.
// The registry lives for exactly one top-level call unless the caller
// threads its own across a multi-root batch.
//
// DEPTH AND FAILURE
// -----------------
// The engine is total: unsupported values degrade to sharing (nested) or
// an empty object (root) rather than failing. Recursion depth equals graph
// depth; a pathologically deep acyclic graph exhausts the goroutine stack,
// which is an accepted resource limit, not a reported error. Customizer
// panics propagate unmodified.

package lodash

// CloneFlag is a composable bit-set selecting the strategy variant.
type CloneFlag uint8

const (
	// CloneDeep recurses into children; unset copies one level with
	// children shared by reference.
	CloneDeep CloneFlag = 1 << iota
	// CloneFlat enumerates inherited-visible keys flattened into own keys
	// and drops base-type identity from structure shells.
	CloneFlat
	// CloneSymbols copies symbolic keys in addition to string keys.
	CloneSymbols
)

// Customizer intercepts cloning at every node, the root included. Returning
// (replacement, true) substitutes the replacement verbatim: no recursion,
// no registry interaction for that subtree. Returning (_, false) lets the
// engine proceed with default behavior. The boolean keeps "declined"
// distinct from "replaced with null", since null is a legitimate
// replacement.
//
// key is the child's position in its parent (field name, index, dict key,
// or set element); key and parent are Null at the root. reg is the live
// traversal registry, letting a customizer pre-seed or inspect mappings.
type Customizer func(v, key, parent Value, reg *Registry) (Value, bool)

// Registry maps visited originals to their clones for one traversal.
// Identity is the payload pointer, so two Values sharing one underlying
// object resolve to the same entry. Not safe for concurrent use; a caller
// sharing one registry across goroutines must serialize access.
type Registry struct {
	seen map[any]Value
}

// NewRegistry creates an empty traversal registry.
func NewRegistry() *Registry { return &Registry{seen: make(map[any]Value)} }

// Lookup returns the clone registered for the given payload identity.
func (r *Registry) Lookup(id any) (Value, bool) {
	v, ok := r.seen[id]
	return v, ok
}

// Store registers a clone for a payload identity. At most one entry per
// original per traversal; the engine stores before visiting children.
func (r *Registry) Store(id any, clone Value) { r.seen[id] = clone }

// Clone returns a shallow copy of v: one level is copied, children are
// shared by reference. Primitives come back unchanged.
func Clone(v Value) Value {
	return CloneValue(v, 0, nil, nil)
}

// DeepClone returns a fully independent copy of v: mutating any container
// reachable from the result never affects v. Own string keys only.
func DeepClone(v Value) Value {
	return CloneValue(v, CloneDeep, nil, nil)
}

// DeepCloneWith is DeepClone with a customizer hook invoked per node.
func DeepCloneWith(v Value, cust Customizer) Value {
	return CloneValue(v, CloneDeep, cust, nil)
}

// CloneValue is the advanced surface: explicit flags, optional customizer,
// optional registry. A nil registry gets a fresh one scoped to this call;
// passing a registry across calls lets a multi-root batch converge shared
// references between roots.
func CloneValue(v Value, flags CloneFlag, cust Customizer, reg *Registry) Value {
	if reg == nil {
		reg = NewRegistry()
	}
	return cloneWith(v, flags, cust, Null, Null, reg)
}

// keyValue renders a field key as the Value handed to customizers.
func keyValue(k PropKey) Value {
	if k.Symbolic() {
		return SymVal(k.Sym)
	}
	return Str(k.Name)
}

// cloneWith is the recursive populator. key and parent describe the node's
// position (Null/Null at the root); reg is never nil.
func cloneWith(v Value, flags CloneFlag, cust Customizer, key, parent Value, reg *Registry) Value {
	if cust != nil {
		if repl, ok := cust(v, key, parent, reg); ok {
			return repl
		}
	}

	deep := flags&CloneDeep != 0
	hasParent := parent.Tag != VTNull

	switch classify(v, hasParent) {

	case catPrimitive:
		// Immutable; shared safely, never allocated.
		return v

	case catOpaque:
		// No faithful representation. Nested: share the reference (a
		// lossy in-place clone would silently corrupt structure). Root:
		// an empty structure.
		if hasParent {
			return v
		}
		return ObjVal(NewObject(nil))

	case catSequence:
		ao := v.Data.(*ArrayObject)
		if !deep {
			// Children merely assigned, so no new cycles can form here;
			// no registry entry needed.
			shell := initCloneArray(ao)
			copyElems(shell, ao)
			return Value{Tag: VTArray, Data: shell, Annot: v.Annot}
		}
		if prev, ok := reg.Lookup(ao); ok {
			return prev
		}
		shell := initCloneArray(ao)
		out := Value{Tag: VTArray, Data: shell, Annot: v.Annot}
		reg.Store(ao, out)
		for i := range ao.Elems {
			shell.Elems[i] = cloneWith(ao.Elems[i], flags, cust, Int(int64(i)), v, reg)
		}
		return out

	case catStruct:
		oo := v.Data.(*Object)
		ks := keysFor(oo, flags)
		if !deep {
			// One-level copy; same no-new-cycles argument as sequences.
			shell := protoShell(oo, flags&CloneFlat != 0)
			copyProps(shell, oo, ks)
			return Value{Tag: VTObject, Data: shell, Annot: v.Annot}
		}
		if prev, ok := reg.Lookup(oo); ok {
			return prev
		}
		shell := protoShell(oo, flags&CloneFlat != 0)
		out := Value{Tag: VTObject, Data: shell, Annot: v.Annot}
		reg.Store(oo, out)
		for _, k := range ks {
			pv, _ := oo.Resolve(k)
			shell.Set(k, cloneWith(pv, flags, cust, keyValue(k), v, reg))
		}
		return out

	case catCallable:
		// Bare callable at the root: behavior is never copied, only its
		// enumerable own fields, into a structure with no base identity.
		fn := v.Data.(*Fun)
		if prev, ok := reg.Lookup(fn); ok {
			return prev
		}
		shell := NewObject(nil)
		out := Value{Tag: VTObject, Data: shell, Annot: v.Annot}
		if fn.Props == nil {
			return out
		}
		ks := ownKeys(fn.Props, flags&CloneSymbols != 0)
		if !deep {
			copyProps(shell, fn.Props, ks)
			return out
		}
		reg.Store(fn, out)
		for _, k := range ks {
			pv, _ := fn.Props.Get(k)
			shell.Set(k, cloneWith(pv, flags, cust, keyValue(k), v, reg))
		}
		return out

	case catDict:
		do := v.Data.(*DictObject)
		if prev, ok := reg.Lookup(do); ok {
			return prev
		}
		shell := NewDict()
		out := Value{Tag: VTDict, Data: shell, Annot: v.Annot}
		reg.Store(do, out)
		for _, e := range do.Entries {
			// Keys stay shared by reference; only values are cloned.
			shell.push(e.Key, cloneWith(e.Val, flags, cust, e.Key, v, reg))
		}
		return out

	case catSet:
		so := v.Data.(*SetObject)
		if prev, ok := reg.Lookup(so); ok {
			return prev
		}
		shell := NewSet()
		out := Value{Tag: VTSet, Data: shell, Annot: v.Annot}
		reg.Store(so, out)
		for _, e := range so.Elems {
			shell.push(cloneWith(e, flags, cust, e, v, reg))
		}
		return out

	case catWrapper:
		w := v.Data.(*Wrapper)
		if prev, ok := reg.Lookup(w); ok {
			return prev
		}
		out := Value{Tag: VTWrapper, Data: cloneWrapper(w), Annot: v.Annot}
		reg.Store(w, out)
		return out

	case catPattern:
		p := v.Data.(*Pattern)
		if prev, ok := reg.Lookup(p); ok {
			return prev
		}
		out := Value{Tag: VTPattern, Data: clonePattern(p, deep), Annot: v.Annot}
		reg.Store(p, out)
		return out

	case catBuffer:
		b := v.Data.(*Buffer)
		if prev, ok := reg.Lookup(b); ok {
			return prev
		}
		shell := shareBuffer(b)
		if deep {
			shell = copyBuffer(b)
		}
		out := Value{Tag: VTBuffer, Data: shell, Annot: v.Annot}
		reg.Store(b, out)
		return out

	case catView:
		vw := v.Data.(*View)
		if prev, ok := reg.Lookup(vw); ok {
			return prev
		}
		// Fully materialized by the initializer; no child traversal.
		out := Value{Tag: VTView, Data: cloneView(vw, deep), Annot: v.Annot}
		reg.Store(vw, out)
		return out
	}

	return v
}
