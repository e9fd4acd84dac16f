package kind

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the runtime category of a Value.
type Kind int

const (
	// KindAbsent marks a slot that was never assigned. The zero Value
	// is absent.
	KindAbsent Kind = iota
	// KindNone marks an explicit no-value assignment.
	KindNone
	// KindBool is a boolean.
	KindBool
	// KindNumber is a platform number, including NaN and the infinities.
	KindNumber
	// KindString is a string.
	KindString
	// KindFunc is a callable.
	KindFunc
	// KindSequence is an ordered list of values.
	KindSequence
	// KindBuffer is a specialized binary buffer.
	KindBuffer
	// KindRecord is a keyed record, plain or constructed.
	KindRecord
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunc:
		return "func"
	case KindSequence:
		return "sequence"
	case KindBuffer:
		return "buffer"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Tag is a structural-kind tag. Tags are compared by identity: two
// values share a shape exactly when their tags are equal.
type Tag string

// Builtin tags, one per concrete kind. Records built with Construct
// carry a caller-supplied tag instead; TagRecord marks the generic
// unconstrained record shape. The sentinels have no shape and carry the
// empty tag.
const (
	TagBool     Tag = "Boolean"
	TagNumber   Tag = "Number"
	TagString   Tag = "String"
	TagFunc     Tag = "Function"
	TagSequence Tag = "Sequence"
	TagBuffer   Tag = "Buffer"
	TagRecord   Tag = "Record"
)

// Value is a tagged runtime value. Values are immutable: composite
// constructors and accessors copy, so no internal state is ever aliased
// out. The zero Value is absent.
type Value struct {
	kind Kind
	tag  Tag
	num  float64
	str  string
	b    bool
	fn   func(...Value) Value
	seq  []Value
	buf  []byte
	rec  map[string]Value
}

// Absent returns the unset sentinel.
func Absent() Value { return Value{} }

// None returns the explicit no-value sentinel.
func None() Value { return Value{kind: KindNone} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, tag: TagBool, b: b} }

// Number wraps a float, including NaN and the infinities.
func Number(f float64) Value { return Value{kind: KindNumber, tag: TagNumber, num: f} }

// Int wraps an integer as a platform number.
func Int(n int64) Value { return Number(float64(n)) }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, tag: TagString, str: s} }

// Func wraps a callable. Func(nil) has function kind but is not
// invocable.
func Func(fn func(...Value) Value) Value {
	return Value{kind: KindFunc, tag: TagFunc, fn: fn}
}

// Sequence wraps an ordered list of values.
func Sequence(elems ...Value) Value {
	v := Value{kind: KindSequence, tag: TagSequence}
	v.seq = append(v.seq, elems...)
	return v
}

// Buffer wraps raw bytes.
func Buffer(b []byte) Value {
	v := Value{kind: KindBuffer, tag: TagBuffer}
	v.buf = append(v.buf, b...)
	return v
}

// Record wraps a generic unconstrained record.
func Record(fields map[string]Value) Value {
	return Construct(TagRecord, fields)
}

// Construct wraps a record carrying the given structural tag. An empty
// tag falls back to TagRecord.
func Construct(tag Tag, fields map[string]Value) Value {
	if tag == "" {
		tag = TagRecord
	}
	rec := make(map[string]Value, len(fields))
	for k, f := range fields {
		rec[k] = f
	}
	return Value{kind: KindRecord, tag: tag, rec: rec}
}

// Kind returns the value's runtime category.
func (v Value) Kind() Kind { return v.kind }

// Tag returns the value's structural tag, empty for the sentinels.
func (v Value) Tag() Tag { return v.tag }

// Float returns the numeric content, 0 for non-numbers.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// Bool returns the boolean content, false for non-booleans.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Text returns the string content, empty for non-strings.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Len returns the element count of a sequence, the byte count of a
// buffer, or the field count of a record. Other kinds have length 0.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindBuffer:
		return len(v.buf)
	case KindRecord:
		return len(v.rec)
	default:
		return 0
	}
}

// Elems returns a copy of a sequence's elements, nil for other kinds.
func (v Value) Elems() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Bytes returns a copy of a buffer's content, nil for other kinds.
func (v Value) Bytes() []byte {
	if v.kind != KindBuffer {
		return nil
	}
	out := make([]byte, len(v.buf))
	copy(out, v.buf)
	return out
}

// Keys returns a record's field names in sorted order, nil for other
// kinds.
func (v Value) Keys() []string {
	if v.kind != KindRecord {
		return nil
	}
	keys := make([]string, 0, len(v.rec))
	for k := range v.rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// At returns the value stored under key and whether the record
// structurally contains the key. Presence and existence are separate
// questions: a present key may hold a sentinel.
func (v Value) At(key string) (Value, bool) {
	if v.kind != KindRecord {
		return Value{}, false
	}
	f, ok := v.rec[key]
	return f, ok
}

// Call invokes a callable value with the given arguments. Non-functions
// and nil callables return Absent.
func (v Value) Call(args ...Value) Value {
	if v.kind != KindFunc || v.fn == nil {
		return Absent()
	}
	return v.fn(args...)
}

// String renders a compact debug form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "absent"
	case KindNone:
		return "none"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindFunc:
		return "func"
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, e := range v.seq {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindBuffer:
		return "buffer(" + strconv.Itoa(len(v.buf)) + ")"
	case KindRecord:
		parts := make([]string, 0, len(v.rec))
		for _, k := range v.Keys() {
			parts = append(parts, k+":"+v.rec[k].String())
		}
		return string(v.tag) + "{" + strings.Join(parts, " ") + "}"
	default:
		return "unknown"
	}
}
