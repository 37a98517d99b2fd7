// shell.go
//
// Per-tag shell initializers: given a classified value, allocate the clone
// shell for its category without populating recursive children. Collection
// shells come back empty (the populator fills them); boxed primitives,
// patterns, buffers and views come back fully materialized.

package lodash

// initCloneArray allocates a same-length sequence shell. Pattern-match side
// metadata (position marker and input-string reference) travels with the
// shell when the source carries it and its first element is textual.
func initCloneArray(ao *ArrayObject) *ArrayObject {
	shell := &ArrayObject{Elems: make([]Value, len(ao.Elems))}
	if ao.Matched && len(ao.Elems) > 0 && ao.Elems[0].Tag == VTStr {
		shell.Matched = true
		shell.Index = ao.Index
		shell.Input = ao.Input
	}
	return shell
}

// cloneWrapper reconstructs a box of the same concrete kind from the
// original's primitive payload. The payload is immutable and shared.
func cloneWrapper(w *Wrapper) *Wrapper {
	return &Wrapper{Kind: w.Kind, Prim: w.Prim}
}

// clonePattern reconstructs a pattern from source text and flags. The
// cursor position is copied only on a deep clone; a shallow one starts at
// the default. Recompilation cannot fail: the original compiled.
func clonePattern(p *Pattern, deep bool) *Pattern {
	re, _ := compilePattern(p.Source, p.Flags)
	out := &Pattern{Source: p.Source, Flags: p.Flags, re: re}
	if deep {
		out.LastIndex = p.LastIndex
	}
	return out
}

// copyBuffer duplicates raw storage byte for byte.
func copyBuffer(b *Buffer) *Buffer {
	return &Buffer{Bytes: append([]byte(nil), b.Bytes...)}
}

// shareBuffer returns a fresh header over the original storage (shallow
// buffer clone: memory is shared, the header is independent).
func shareBuffer(b *Buffer) *Buffer {
	return &Buffer{Bytes: b.Bytes}
}

// cloneView duplicates the full backing buffer on a deep clone; a shallow
// clone gets an independent header over the original's storage.
func cloneView(vw *View, deep bool) *View {
	buf := vw.Buf
	if deep {
		buf = copyBuffer(vw.Buf)
	}
	return &View{Kind: vw.Kind, Buf: buf, Off: vw.Off, Len: vw.Len}
}

// protoShell allocates an empty structure shell. The default preserves the
// original's prototype identity so instance-of relationships survive; a
// flat shell (flatten mode, or the field bag of a bare callable) carries
// no base-type identity.
func protoShell(o *Object, flat bool) *Object {
	if flat {
		return NewObject(nil)
	}
	return NewObject(o.Proto)
}
