package dertree

/*
serializer.go implements the DER serializer: a single growing byte buffer
that supports arbitrarily nested constructed writes without knowing their
encoded length ahead of time. AppendPrimitive/AppendConstructed write a
one-byte length placeholder, let the caller's writer append content
directly, then measure and back-patch the length field in place -
growing it into long form (shifting the just-written content right) only
when the content turns out to need more than one length octet.
*/

// Serializer accumulates a DER encoding in a single growing byte buffer.
// It is owned by a single writer at a time; there is no synchronization.
type Serializer struct {
	buf []byte
}

// NewSerializer returns a [Serializer] with a buffer reserving modest
// initial capacity, matching the teacher library's sizing for the same
// kind of accumulator.
func NewSerializer() *Serializer {
	return &Serializer{buf: make([]byte, 0, 1024)}
}

// Bytes returns the accumulated encoding. The returned slice aliases the
// serializer's internal buffer and must not be mutated.
func (s *Serializer) Bytes() []byte { return s.buf }

// WriteBytes appends raw content bytes directly to the buffer. It is
// intended for use from within an AppendPrimitive writer callback, to
// emit a primitive's content octets.
func (s *Serializer) WriteBytes(b []byte) { s.buf = append(s.buf, b...) }

// AppendPrimitive writes identifier's octets, then invokes write to
// append the value's content octets, then back-patches the length
// prefix. It panics if identifier is constructed: mixing up primitive
// and constructed writes is a programmer error, not a recoverable
// encode failure.
func (s *Serializer) AppendPrimitive(identifier Identifier, write func(*Serializer) error) error {
	if identifier.Constructed {
		panic("dertree: AppendPrimitive called with a constructed identifier")
	}
	return s.appendTLV(identifier, write)
}

// AppendConstructed writes identifier's octets, then invokes write
// (passed the same [Serializer], enabling recursive nested appends) to
// append the value's children, then back-patches the length prefix. It
// panics if identifier is not constructed.
func (s *Serializer) AppendConstructed(identifier Identifier, write func(*Serializer) error) error {
	if !identifier.Constructed {
		panic("dertree: AppendConstructed called with a primitive identifier")
	}
	return s.appendTLV(identifier, write)
}

func (s *Serializer) appendTLV(identifier Identifier, write func(*Serializer) error) error {
	identifier.encodeInto(&s.buf)

	lenIdx := len(s.buf)
	s.buf = append(s.buf, 0x00) // one-byte length placeholder
	start := len(s.buf)

	if err := write(s); err != nil {
		return err
	}

	contentLen := len(s.buf) - start
	if contentLen <= 0x7f {
		s.buf[lenIdx] = byte(contentLen)
		return nil
	}

	extra := lengthOctets(contentLen)
	s.buf = append(s.buf, make([]byte, extra)...)
	moveRange(s.buf, start, start+extra, contentLen)
	s.buf[lenIdx] = 0x80 | byte(extra)
	putBigEndian(s.buf[start:start+extra], uint64(contentLen))

	return nil
}

// moveRange shifts the length-byte window buf[src:src+length] to
// buf[dst:dst+length]. It supports positive offsets only (dst > src);
// reimplementers needing a general move should either generalize this or
// keep the same precondition.
func moveRange(buf []byte, src, dst, length int) {
	if dst <= src {
		panic("dertree: moveRange only supports a positive (rightward) shift")
	}
	copy(buf[dst:dst+length], buf[src:src+length])
}

// Serialize writes v's default-identifier encoding into the receiver.
func (s *Serializer) Serialize(v Serializable) error { return v.Serialize(s) }

// SerializeExplicit wraps v's encoding in one constructed node carrying
// the given explicit tag.
func (s *Serializer) SerializeExplicit(v Serializable, tag int, class Class) error {
	var innerErr error
	err := s.AppendConstructed(ExplicitIdentifier(tag, class), func(inner *Serializer) error {
		innerErr = v.Serialize(inner)
		return innerErr
	})
	if err != nil {
		return err
	}
	return innerErr
}

// SerializeOptional writes v's encoding if non-nil, and emits nothing
// when v is nil.
func SerializeOptional[T Serializable](s *Serializer, v *T) error {
	if v == nil {
		return nil
	}
	return s.Serialize(*v)
}

// SerializeSequenceOf emits a constructed node (SEQUENCE by default, or
// the given identifier) containing each element of elems serialized in
// order.
func SerializeSequenceOf[T Serializable](s *Serializer, elems []T, identifier ...Identifier) error {
	id := Identifier{Class: ClassUniversal, Constructed: true, Tag: TagSequence}
	if len(identifier) > 0 {
		id = identifier[0]
	}

	return s.AppendConstructed(id, func(inner *Serializer) error {
		for _, e := range elems {
			if err := inner.Serialize(e); err != nil {
				return err
			}
		}
		return nil
	})
}

// SerializeNode re-emits an already-parsed [Node] by copying its exact
// encoded bytes into the receiver.
func (s *Serializer) SerializeNode(n Node) { s.WriteBytes(n.EncodedBytes()) }
