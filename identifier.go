package dertree

/*
identifier.go implements the ASN.1 identifier (tag) octet(s): class,
constructed bit, and tag number, in both short and long form. The
overflow-checked big-endian accumulator pattern used below for the
base-128 long-form tag number is mirrored in length.go for the (plain
big-endian, non-base-128) long-form length octets; both are written
generically over golang.org/x/exp/constraints.Unsigned so the same
shape of loop serves a uint32 accumulator here and a uint64 accumulator
there without copy-pasting it per width.
*/

import "golang.org/x/exp/constraints"

// Class identifies one of the four ASN.1 tag classes.
type Class int

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// ClassNames renders a [Class] the way this package's debugging and error
// output does throughout.
var ClassNames = map[Class]string{
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

// String returns the receiver's canonical ASN.1 class name.
func (c Class) String() string {
	if s, ok := ClassNames[c]; ok {
		return s
	}
	return "<invalid class>"
}

// Identifier is the decoded form of an ASN.1 identifier octet or octet
// run: a tag class, the constructed bit, and a tag number. Equality is
// structural over all three fields, so Identifier values may be compared
// directly with ==.
type Identifier struct {
	Class       Class
	Constructed bool
	Tag         int
}

// ExplicitIdentifier returns the constructed identifier used to wrap a
// value under an explicit tag: the constructed bit is always set, and
// class/number are exactly as given.
func ExplicitIdentifier(tag int, class Class) Identifier {
	return Identifier{Class: class, Constructed: true, Tag: tag}
}

// accumulateBase128 reads base-128 big-endian digits from data, one octet
// per iteration, stopping at (and consuming) the first octet whose
// continuation bit (0x80) is clear. It reports the accumulated value, the
// number of octets consumed, and a truncation or overflow error.
func accumulateBase128[T constraints.Unsigned](data []byte, max T) (value T, n int, err error) {
	for {
		if n >= len(data) {
			return 0, 0, ErrTruncatedField
		}
		b := data[n]
		n++

		shifted := value << 7
		if shifted>>7 != value || shifted > max-T(b&0x7f) {
			return 0, 0, wrapErr(ErrInvalidObject, "tag number overflow")
		}
		value = shifted | T(b&0x7f)
		if b&0x80 == 0 {
			return value, n, nil
		}
	}
}

// decodeIdentifier decodes one ASN.1 identifier from the front of data,
// returning the identifier and the number of octets it occupied.
func decodeIdentifier(data []byte) (id Identifier, n int, err error) {
	if len(data) == 0 {
		return Identifier{}, 0, wrapErr(ErrTruncatedField, "empty input where an identifier octet was expected")
	}

	b0 := data[0]
	class := Class((b0 >> 6) & 0x3)
	constructed := b0&0x20 != 0

	if b0&0x1f != 0x1f {
		// Short form.
		return Identifier{Class: class, Constructed: constructed, Tag: int(b0 & 0x1f)}, 1, nil
	}

	// Long form: base-128 big-endian digits follow, MSB-first, with the
	// continuation bit set on every octet but the last.
	tagNum, consumed, err := accumulateBase128[uint32](data[1:], 0xffffffff)
	if err != nil {
		if err == ErrTruncatedField {
			return Identifier{}, 0, wrapErr(ErrTruncatedField, "truncated long-form tag number")
		}
		return Identifier{}, 0, err
	}
	if tagNum < 31 {
		return Identifier{}, 0, wrapErr(ErrInvalidObject, "non-minimal long-form tag number (value < 31)")
	}

	return Identifier{Class: class, Constructed: constructed, Tag: int(tagNum)}, 1 + consumed, nil
}

// encodeBase128 returns value encoded as base-128 big-endian octets with
// the continuation bit set on every octet but the last, the inverse of
// accumulateBase128.
func encodeBase128(value int) []byte {
	if value == 0 {
		return []byte{0x00}
	}
	var out []byte
	for v := value; v > 0; v >>= 7 {
		b := byte(v & 0x7f)
		if len(out) > 0 {
			b |= 0x80
		}
		out = append([]byte{b}, out...)
	}
	return out
}

// encodeInto appends the receiver's minimal-form identifier octets to dst.
func (id Identifier) encodeInto(dst *[]byte) {
	b0 := byte(id.Class) << 6
	if id.Constructed {
		b0 |= 0x20
	}

	if id.Tag < 31 {
		*dst = append(*dst, b0|byte(id.Tag))
		return
	}

	b0 |= 0x1f
	*dst = append(*dst, b0)
	*dst = append(*dst, encodeBase128(id.Tag)...)
}

// Bytes returns the receiver's minimal-form encoded identifier octets.
func (id Identifier) Bytes() []byte {
	var out []byte
	id.encodeInto(&out)
	return out
}
