package dertree

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseSequenceOfSingleBoolean(t *testing.T) {
	// End-to-end scenario 1: 30 03 01 01 FF -> SEQUENCE { BOOLEAN true }.
	in := []byte{0x30, 0x03, 0x01, 0x01, 0xff}
	res, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := res.Root()
	if root.Identifier() != (Identifier{ClassUniversal, true, TagSequence}) {
		t.Fatalf("root identifier = %+v", root.Identifier())
	}

	cn := root.(ConstructedNode)
	it := cn.Children()
	if it.Done() {
		t.Fatalf("expected one child, iterator already exhausted")
	}
	child := it.Next()
	if !it.Done() {
		t.Fatalf("expected exactly one child")
	}

	var b Boolean
	if err := b.ParseFromNode(child); err != nil {
		t.Fatalf("BOOLEAN parse failed: %v", err)
	}
	if !b.Bool() {
		t.Fatalf("got false, want true")
	}
}

func TestParseSequenceWithInvalidInnerBoolean(t *testing.T) {
	// End-to-end scenario 2: 30 03 01 01 01 -> parses at the tree level, but
	// the inner BOOLEAN content octet 0x01 is invalid under DER.
	in := []byte{0x30, 0x03, 0x01, 0x01, 0x01}
	res, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected top-level parse error: %v", err)
	}

	cn := res.Root().(ConstructedNode)
	it := cn.Children()
	child := it.Next()

	var b Boolean
	err = b.ParseFromNode(child)
	if !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("got %v, want ErrInvalidObject", err)
	}
}

func TestParseRejectsNonMinimalLength(t *testing.T) {
	// End-to-end scenario 3: 04 81 01 41.
	in := []byte{0x04, 0x81, 0x01, 0x41}
	if _, err := Parse(in); !errors.Is(err, ErrUnsupportedLength) {
		t.Fatalf("got %v, want ErrUnsupportedLength", err)
	}
}

func TestParseRejectsIndefiniteLength(t *testing.T) {
	// End-to-end scenario 4: 30 80 ...
	in := []byte{0x30, 0x80, 0x01, 0x01, 0xff, 0x00, 0x00}
	if _, err := Parse(in); !errors.Is(err, ErrUnsupportedLength) {
		t.Fatalf("got %v, want ErrUnsupportedLength", err)
	}
}

func TestParseRejectsResidualBytes(t *testing.T) {
	in := []byte{0x01, 0x01, 0xff, 0x00}
	if _, err := Parse(in); !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("got %v, want ErrInvalidObject", err)
	}
}

func TestParseRejectsTruncatedContent(t *testing.T) {
	in := []byte{0x04, 0x05, 0x01, 0x02}
	if _, err := Parse(in); !errors.Is(err, ErrTruncatedField) {
		t.Fatalf("got %v, want ErrTruncatedField", err)
	}
}

func TestParseDepthBound(t *testing.T) {
	// Exactly 50 levels of nesting (49 constructed wrappers around an
	// innermost primitive at depth 50) must succeed; one level more fails.
	mkNested := func(depth int) []byte {
		s := NewSerializer()
		var build func(d int) error
		build = func(d int) error {
			if d == depth {
				return s.AppendPrimitive(Identifier{ClassUniversal, false, TagNull}, func(w *Serializer) error {
					return nil
				})
			}
			return s.AppendConstructed(Identifier{ClassUniversal, true, TagSequence}, func(w *Serializer) error {
				return build(d + 1)
			})
		}
		if err := build(1); err != nil {
			t.Fatalf("unexpected build error: %v", err)
		}
		return s.Bytes()
	}

	ok := mkNested(50)
	if _, err := Parse(ok); err != nil {
		t.Fatalf("nesting of exactly 50: got error %v, want success", err)
	}

	tooDeep := mkNested(51)
	if _, err := Parse(tooDeep); !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("nesting of 51: got %v, want ErrInvalidObject", err)
	}
}

func TestParseEncodedBytesFidelity(t *testing.T) {
	in := []byte{0x30, 0x06, 0x01, 0x01, 0xff, 0x04, 0x01, 0x41}
	res, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := res.Root()
	if !bytes.Equal(root.EncodedBytes(), in) {
		t.Fatalf("root.EncodedBytes() = %x, want %x", root.EncodedBytes(), in)
	}

	cn := root.(ConstructedNode)
	it := cn.Children()
	first := it.Next()
	if !bytes.Equal(first.EncodedBytes(), []byte{0x01, 0x01, 0xff}) {
		t.Fatalf("first child EncodedBytes() = %x", first.EncodedBytes())
	}
	second := it.Next()
	if !bytes.Equal(second.EncodedBytes(), []byte{0x04, 0x01, 0x41}) {
		t.Fatalf("second child EncodedBytes() = %x", second.EncodedBytes())
	}
	if !it.Done() {
		t.Fatalf("expected iterator exhausted after two children")
	}
}

func TestChildIteratorNextPanicsWhenExhausted(t *testing.T) {
	in := []byte{0x30, 0x00}
	res, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := res.Root().(ConstructedNode).Children()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Next to panic on an exhausted iterator")
		}
	}()
	it.Next()
}
