// tags.go
//
// Runtime tag detection and the clone-strategy classifier.
//
// getTag names a value's runtime kind as a string; cloneable tags form a
// closed allowlist. Two tags are excluded from reconstruction outright:
// "error" (an unrecoverable error condition) and "weakmap" (a collection
// with non-enumerable membership). Both degrade to the opaque strategy.
//
// classify maps a value onto one of the clone strategies. The decision
// order is load-bearing: sequences and raw buffers are routed before the
// generic tag lookup, and callables before generic structures, because a
// callable still has enumerable own fields that must be copied when it is
// the root of a traversal.

package lodash

// Runtime tag strings, as reported by getTag.
const (
	tagNull     = "null"
	tagBool     = "bool"
	tagInt      = "int"
	tagNum      = "num"
	tagStr      = "str"
	tagSymbol   = "symbol"
	tagArray    = "array"
	tagObject   = "object"
	tagFunction = "function"
	tagRegexp   = "regexp"
	tagDict     = "map"
	tagSet      = "set"
	tagBuffer   = "arraybuffer"

	// distinguished uncloneable handle kinds
	tagError = "error"
	tagWeak  = "weakmap"
)

// getTag returns the runtime tag of a value. Total over any input: handles
// report their own kind string, boxed primitives and views report their
// per-kind tag.
func getTag(v Value) string {
	switch v.Tag {
	case VTNull:
		return tagNull
	case VTBool:
		return tagBool
	case VTInt:
		return tagInt
	case VTNum:
		return tagNum
	case VTStr:
		return tagStr
	case VTSymbol:
		return tagSymbol
	case VTArray:
		return tagArray
	case VTObject:
		return tagObject
	case VTWrapper:
		return v.Data.(*Wrapper).Kind.String()
	case VTPattern:
		return tagRegexp
	case VTBuffer:
		return tagBuffer
	case VTView:
		return v.Data.(*View).Kind.String()
	case VTDict:
		return tagDict
	case VTSet:
		return tagSet
	case VTFun:
		return tagFunction
	case VTHandle:
		return v.Data.(*Handle).Kind
	default:
		return "unknown"
	}
}

// cloneableTag reports whether a tag is in the supported reconstruction
// allowlist. Handle kinds are never in it; "error" and "weakmap" are the
// two distinguished exclusions callers most often hit.
func cloneableTag(tag string) bool {
	switch tag {
	case tagError, tagWeak:
		return false
	case tagNull, tagBool, tagInt, tagNum, tagStr, tagSymbol,
		tagArray, tagObject, tagFunction, tagRegexp, tagDict, tagSet, tagBuffer:
		return true
	}
	switch tag {
	case "boxed-bool", "boxed-int", "boxed-num", "boxed-str", "boxed-time", "boxed-symbol",
		"dataview", "int8view", "uint8view", "int16view", "uint16view",
		"int32view", "uint32view", "int64view", "float32view", "float64view":
		return true
	}
	return false
}

// --- predicates ---------------------------------------------------------------

// isPrimitive: immutable values that are shared, never cloned.
func isPrimitive(v Value) bool {
	switch v.Tag {
	case VTNull, VTBool, VTInt, VTNum, VTStr, VTSymbol:
		return true
	}
	return false
}

// isBufferLike: raw byte storage (not a typed window).
func isBufferLike(v Value) bool { return v.Tag == VTBuffer }

// isArrayView: a typed or untyped window over raw storage.
func isArrayView(v Value) bool { return v.Tag == VTView }

// isObjectLike: a plain prototype-linked structure.
func isObjectLike(v Value) bool { return v.Tag == VTObject }

// --- classification -----------------------------------------------------------

// cloneCategory is the closed set of cloning strategies.
type cloneCategory int

const (
	catPrimitive cloneCategory = iota
	catSequence                // element-wise array copy
	catBuffer                  // byte-for-byte raw storage
	catView                    // window header, storage per depth
	catCallable                // bare callable at the root: own fields only
	catStruct                  // prototype-linked structure
	catWrapper                 // reconstruct from boxed payload
	catPattern                 // recompile from source + flags
	catDict                    // ordered entries, values cloned
	catSet                     // ordered unique elements
	catOpaque                  // shared nested, empty object at the root
)

// classify decides the clone strategy for v. Pure and total; hasParent is
// the only context it consults (a callable reached as a child is opaque,
// one at the root still copies its own fields).
func classify(v Value, hasParent bool) cloneCategory {
	if isPrimitive(v) {
		return catPrimitive
	}
	if v.Tag == VTArray {
		return catSequence
	}
	if isBufferLike(v) {
		return catBuffer
	}
	if v.Tag == VTFun {
		if hasParent {
			return catOpaque
		}
		return catCallable
	}
	if isObjectLike(v) {
		return catStruct
	}
	if isArrayView(v) {
		return catView
	}
	switch v.Tag {
	case VTWrapper:
		return catWrapper
	case VTPattern:
		return catPattern
	case VTDict:
		return catDict
	case VTSet:
		return catSet
	}
	// Tag outside the allowlist (handles, including "error" and "weakmap").
	return catOpaque
}
