package dertree

/*
boolean.go implements the ASN.1 BOOLEAN primitive (universal tag 1), the
simplest of this package's three exemplar codecs: one content octet,
0x00 or 0xFF, full stop. Any other octet value is a DER violation -
unlike BER, which tolerates any non-zero octet as true, DER mandates the
canonical 0xFF.
*/

// Boolean implements the ASN.1 BOOLEAN type.
type Boolean bool

// NewBoolean returns a [Boolean] after running it through any supplied
// constraints; BOOLEAN has no intrinsic validation beyond Go's own bool
// conversion, so this mostly exists for symmetry with the other
// exemplar primitives and to give callers a constraint hook.
func NewBoolean(b bool, constraints ...Constraint[Boolean]) (Boolean, error) {
	v := Boolean(b)
	if err := (ConstraintGroup[Boolean](constraints)).Validate(v); err != nil {
		return false, err
	}
	return v, nil
}

// DefaultIdentifier returns the universal, primitive BOOLEAN identifier.
func (Boolean) DefaultIdentifier() Identifier {
	return Identifier{Class: ClassUniversal, Constructed: false, Tag: TagBoolean}
}

// Bool returns the receiver as a native Go bool.
func (b Boolean) Bool() bool { return bool(b) }

// String renders the receiver as "true" or "false".
func (b Boolean) String() string { return bool2str(bool(b)) }

// Serialize writes the receiver under its default identifier.
func (b Boolean) Serialize(s *Serializer) error {
	return b.SerializeWithIdentifier(s, b.DefaultIdentifier())
}

// SerializeWithIdentifier writes the receiver's single content octet
// (0x00 or 0xFF) under identifier.
func (b Boolean) SerializeWithIdentifier(s *Serializer, identifier Identifier) error {
	return s.AppendPrimitive(identifier, func(w *Serializer) error {
		var octet byte
		if bool(b) {
			octet = 0xff
		}
		w.WriteBytes([]byte{octet})
		return nil
	})
}

// ParseFromNode decodes the receiver from n under its default identifier.
func (b *Boolean) ParseFromNode(n Node) error {
	return b.ParseFromNodeWithIdentifier(n, b.DefaultIdentifier())
}

// ParseFromNodeWithIdentifier decodes the receiver from n, requiring
// identifier and the DER-strict content encoding (exactly one octet,
// 0x00 or 0xFF).
func (b *Boolean) ParseFromNodeWithIdentifier(n Node, identifier Identifier) error {
	pn, ok := n.(PrimitiveNode)
	if !ok || pn.Identifier() != identifier {
		return errWrongTag(identifier, n.Identifier())
	}

	content := pn.Content()
	if len(content) != 1 {
		return wrapErr(ErrInvalidObject, "BOOLEAN content must be exactly one octet")
	}

	switch content[0] {
	case 0x00:
		*b = false
	case 0xff:
		*b = true
	default:
		return wrapErr(ErrInvalidObject, "BOOLEAN octet must be 0x00 or 0xFF under DER")
	}
	return nil
}
