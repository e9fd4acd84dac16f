package kind

import (
	"math"

	"github.com/dgnsrekt/guardrail/internal/diag"
)

// MaxSafeInteger is the largest integer magnitude a platform number
// represents exactly.
const MaxSafeInteger = 1<<53 - 1

// guard converts a fault inside a predicate into a false result.
// Callers use predicates as unconditional gates; a fault escaping one
// would bypass the gate and let invalid input through.
func guard(pred string, result *bool) {
	if r := recover(); r != nil {
		*result = false
		diag.Fault("kind."+pred, r)
	}
}

// Exists reports whether v is neither absent nor none.
func Exists(v Value) (ok bool) {
	defer guard("Exists", &ok)
	return v.kind != KindAbsent && v.kind != KindNone
}

// IsAbsent reports whether v is the unset sentinel.
func IsAbsent(v Value) (ok bool) {
	defer guard("IsAbsent", &ok)
	return v.kind == KindAbsent
}

// IsNone reports whether v is the explicit no-value sentinel.
func IsNone(v Value) (ok bool) {
	defer guard("IsNone", &ok)
	return v.kind == KindNone
}

// IsNumber reports whether v is numeric. NaN and the infinities count.
func IsNumber(v Value) (ok bool) {
	defer guard("IsNumber", &ok)
	return v.kind == KindNumber
}

// IsSafeNumber reports whether v is a finite number with magnitude at
// most MaxSafeInteger.
func IsSafeNumber(v Value) (ok bool) {
	defer guard("IsSafeNumber", &ok)
	if !IsNumber(v) {
		return false
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return false
	}
	return math.Abs(v.num) <= MaxSafeInteger
}

// IsInteger reports whether v is a number with zero fractional part.
func IsInteger(v Value) (ok bool) {
	defer guard("IsInteger", &ok)
	return IsNumber(v) && math.Mod(v.num, 1) == 0
}

// IsSafeInteger reports whether v is both a safe number and an integer.
func IsSafeInteger(v Value) (ok bool) {
	defer guard("IsSafeInteger", &ok)
	return IsSafeNumber(v) && IsInteger(v)
}

// IsBoolean reports whether v is a boolean.
func IsBoolean(v Value) (ok bool) {
	defer guard("IsBoolean", &ok)
	return v.kind == KindBool
}

// IsString reports whether v is a string.
func IsString(v Value) (ok bool) {
	defer guard("IsString", &ok)
	return v.kind == KindString
}

// IsFunction reports whether v is an invocable callable.
func IsFunction(v Value) (ok bool) {
	defer guard("IsFunction", &ok)
	return Exists(v) && v.kind == KindFunc && v.fn != nil
}

// IsSequence reports whether v is an ordered sequence. Records and
// binary buffers are not sequences.
func IsSequence(v Value) (ok bool) {
	defer guard("IsSequence", &ok)
	return Exists(v) && v.kind == KindSequence
}

// IsPlainRecord reports whether v is a record of the generic
// unconstrained shape rather than a constructed type.
func IsPlainRecord(v Value) (ok bool) {
	defer guard("IsPlainRecord", &ok)
	return IsConstructedAs(v, TagRecord)
}

// IsConstructedAs reports whether v's structural tag is identically t.
func IsConstructedAs(v Value, t Tag) (ok bool) {
	defer guard("IsConstructedAs", &ok)
	return Exists(v) && t != "" && v.tag == t
}

// Every reports whether v is a non-empty sequence whose elements all
// satisfy pred. A fault raised by pred counts as a failed element.
func Every(v Value, pred func(Value) bool) (ok bool) {
	defer guard("Every", &ok)
	if !IsSequence(v) || len(v.seq) == 0 {
		return false
	}
	for _, e := range v.seq {
		if !pred(e) {
			return false
		}
	}
	return true
}

// HasKey reports whether v is a record that structurally contains key,
// regardless of what is stored there.
func HasKey(v Value, key string) (ok bool) {
	defer guard("HasKey", &ok)
	if !Exists(v) || v.kind != KindRecord {
		return false
	}
	_, present := v.rec[key]
	return present
}

// HasValueForKey reports whether v contains key and the stored value
// itself exists.
func HasValueForKey(v Value, key string) (ok bool) {
	defer guard("HasValueForKey", &ok)
	if !HasKey(v, key) {
		return false
	}
	stored, _ := v.At(key)
	return Exists(stored)
}
