package dertree

/*
errors.go implements the closed set of decode/encode failure kinds shared
by every component in this package, plus the string-interning error
constructor (wrapErr), modelled on its teacher library's err.go:
identical detail messages collapse onto the same error
value instead of allocating afresh on every failed parse.
*/

import (
	"errors"
	"fmt"
	"sync"
)

// The closed set of error kinds a caller may branch on with errors.Is.
// Every failure returned by this package wraps exactly one of these.
var (
	// ErrTruncatedField indicates the input ended inside an identifier,
	// a length, or a declared content region.
	ErrTruncatedField = errors.New("truncated ASN.1 field")

	// ErrUnsupportedLength indicates an indefinite-length form (0x80) or
	// a non-minimal long-form length was encountered; DER forbids both.
	ErrUnsupportedLength = errors.New("unsupported ASN.1 field length")

	// ErrInvalidObject indicates a structural DER violation: bad
	// tag-number minimality, residual bytes at the top level, nesting
	// deeper than 50, a required child missing or duplicated, an
	// unconsumed SEQUENCE/SET body, a DEFAULT encoded at its default
	// value, or a primitive failing its own validation.
	ErrInvalidObject = errors.New("invalid ASN.1 object")

	// ErrUnexpectedType indicates an identifier mismatch against an
	// expected tag.
	ErrUnexpectedType = errors.New("unexpected ASN.1 field type")

	// ErrInvalidIdentifier indicates an identifier mismatch specifically
	// where an explicit tag was required.
	ErrInvalidIdentifier = errors.New("invalid ASN.1 field identifier")
)

var errCache sync.Map

// wrapErr returns an error reporting kind with the given detail message,
// reusing a cached instance when the same (kind, detail) pair has been
// produced before.
func wrapErr(kind error, detail string) error {
	key := kind.Error() + ": " + detail
	if v, ok := errCache.Load(key); ok {
		return v.(error)
	}
	e := fmt.Errorf("%w: %s", kind, detail)
	errCache.Store(key, e)
	return e
}

func errWrongTag(want, got Identifier) error {
	return wrapErr(ErrUnexpectedType,
		"got tag "+itoa(got.Tag)+" in class "+got.Class.String()+
			", want tag "+itoa(want.Tag)+" in class "+want.Class.String())
}

func errWrongIdentifier(want, got Identifier) error {
	return wrapErr(ErrInvalidIdentifier,
		"got tag "+itoa(got.Tag)+" in class "+got.Class.String()+
			", want explicit tag "+itoa(want.Tag)+" in class "+want.Class.String())
}
