package dertree

/*
length.go implements the DER length octets: short form for 0-127, long
form for larger lengths, with strict minimality enforcement. DER forbids
both the indefinite-length form (0x80, BER-only) and any long-form
encoding whose octet count exceeds the minimum needed to hold the value.
*/

import "golang.org/x/exp/constraints"

// accumulateBigEndian reads exactly n big-endian octets from the front of
// data into an unsigned accumulator of type T, rejecting overflow. It is
// the length-codec counterpart to accumulateBase128 in identifier.go:
// same overflow-checked shift-and-or shape, different radix.
func accumulateBigEndian[T constraints.Unsigned](data []byte, n int) (value T, err error) {
	if len(data) < n {
		return 0, ErrTruncatedField
	}
	for i := 0; i < n; i++ {
		shifted := value << 8
		if shifted>>8 != value {
			return 0, wrapErr(ErrInvalidObject, "length value overflow")
		}
		value = shifted | T(data[i])
	}
	return value, nil
}

// bitLen returns the number of bits needed to represent n (n > 0).
func bitLen(n int) (bits int) {
	for n > 0 {
		bits++
		n >>= 1
	}
	return
}

// lengthOctets returns ceil(bitLen(n)/8), the minimal number of big-endian
// octets DER requires to encode the long-form length n.
func lengthOctets(n int) int {
	return (bitLen(n) + 7) / 8
}

// decodeLength decodes DER length octets from the front of data, returning
// the content length and the number of octets the length field occupied.
func decodeLength(data []byte) (length, n int, err error) {
	if len(data) == 0 {
		return 0, 0, wrapErr(ErrTruncatedField, "empty input where a length octet was expected")
	}

	l0 := data[0]
	if l0 == 0x80 {
		return 0, 0, wrapErr(ErrUnsupportedLength, "indefinite length (0x80) is not permitted under DER")
	}
	if l0&0x80 == 0 {
		// Short form: 0-127.
		return int(l0), 1, nil
	}

	k := int(l0 & 0x7f) // l0 != 0x80 was ruled out above, so k >= 1 here
	raw, err := accumulateBigEndian[uint64](data[1:], k)
	if err != nil {
		if err == ErrTruncatedField {
			return 0, 0, wrapErr(ErrTruncatedField, "truncated long-form length")
		}
		return 0, 0, err
	}
	if raw > 0x7fffffff {
		return 0, 0, wrapErr(ErrUnsupportedLength, "length exceeds this implementation's supported range")
	}
	length = int(raw)

	// DER minimality: the long form must use the smallest k that fits.
	if length <= 0x7f {
		return 0, 0, wrapErr(ErrUnsupportedLength, "long-form length used where short form suffices")
	}
	if k != lengthOctets(length) {
		return 0, 0, wrapErr(ErrUnsupportedLength, "non-minimal long-form length encoding")
	}

	return length, 1 + k, nil
}

// encodeLengthInto appends the minimal-form DER length octets for n to dst.
func encodeLengthInto(dst *[]byte, n int) {
	if n <= 0x7f {
		*dst = append(*dst, byte(n))
		return
	}

	k := lengthOctets(n)
	*dst = append(*dst, 0x80|byte(k))
	start := len(*dst)
	*dst = append(*dst, make([]byte, k)...)
	putBigEndian((*dst)[start:start+k], uint64(n))
}

// putBigEndian writes v into dst as big-endian octets, using exactly
// len(dst) octets (the high-order octets of v beyond that width are
// assumed to be zero, as guaranteed by lengthOctets/contentLen callers).
func putBigEndian(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}
