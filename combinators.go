package dertree

/*
combinators.go implements the schema combinators: SEQUENCE, SET,
SEQUENCE OF, explicit tagging, DEFAULT, and OPTIONAL, layered over the
node tree (node.go, children.go) and the serializer (serializer.go).

Several combinators below need to "try to read the next child, and only
commit if it matches" (OptionalExplicitlyTagged, OptionalImplicitlyTagged,
DecodeDefault*). They implement this with the copy-lookahead pattern
described in children.go: snapshot the iterator, attempt the read against
the snapshot, and only write the snapshot back over the caller's iterator
on a successful, tag-matching consumption.
*/

// Sequence requires that node carry identifier and be constructed, then
// invokes builder with an iterator over its children. builder must
// consume every child; Sequence fails with [ErrInvalidObject] if any are
// left over when builder returns.
func Sequence(node Node, identifier Identifier, builder func(*ChildIterator) error) error {
	cn, ok := node.(ConstructedNode)
	if !ok || cn.Identifier() != identifier {
		return errWrongTag(identifier, node.Identifier())
	}

	it := cn.Children()
	if err := builder(it); err != nil {
		return err
	}
	if !it.Done() {
		return wrapErr(ErrInvalidObject, "SEQUENCE body left unconsumed children")
	}
	return nil
}

// Set has identical semantics to [Sequence]: this package does not
// enforce DER SET-of canonical ordering on decode. Callers needing strict
// SET ordering must validate it themselves.
func Set(node Node, identifier Identifier, builder func(*ChildIterator) error) error {
	return Sequence(node, identifier, builder)
}

// SequenceOf requires that node carry identifier and be constructed, then
// parses each child in order as a T, returning the resulting slice.
func SequenceOf[T Parseable](node Node, identifier Identifier, zero func() T) ([]T, error) {
	var out []T
	err := Sequence(node, identifier, func(it *ChildIterator) error {
		for !it.Done() {
			v := zero()
			if err := v.ParseFromNode(it.Next()); err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SequenceOfChild pops the next child from it (failing with
// [ErrInvalidObject] if none remain) and parses it as a SEQUENCE OF
// identifier, delegating to [SequenceOf].
func SequenceOfChild[T Parseable](it *ChildIterator, identifier Identifier, zero func() T) ([]T, error) {
	if it.Done() {
		return nil, wrapErr(ErrInvalidObject, "expected a SEQUENCE OF child, iterator exhausted")
	}
	return SequenceOf(it.Next(), identifier, zero)
}

// ExplicitlyTagged requires that node be a constructed value carrying the
// explicit identifier for (tag, class) with exactly one child, then
// invokes builder with that child.
func ExplicitlyTagged[T any](node Node, tag int, class Class, builder func(Node) (T, error)) (T, error) {
	var zero T

	want := ExplicitIdentifier(tag, class)
	cn, ok := node.(ConstructedNode)
	if !ok || cn.Identifier() != want {
		return zero, errWrongIdentifier(want, node.Identifier())
	}

	it := cn.Children()
	if it.Done() {
		return zero, wrapErr(ErrInvalidObject, "explicit tag wraps zero children, expected exactly one")
	}
	child := it.Next()
	if !it.Done() {
		return zero, wrapErr(ErrInvalidObject, "explicit tag wraps more than one child, expected exactly one")
	}

	return builder(child)
}

// ExplicitlyTaggedChild pops the next child from it (failing with
// [ErrInvalidObject] if none remain) and delegates to [ExplicitlyTagged].
func ExplicitlyTaggedChild[T any](it *ChildIterator, tag int, class Class, builder func(Node) (T, error)) (T, error) {
	var zero T
	if it.Done() {
		return zero, wrapErr(ErrInvalidObject, "expected an explicitly tagged child, iterator exhausted")
	}
	return ExplicitlyTagged(it.Next(), tag, class, builder)
}

// OptionalExplicitlyTagged attempts, via copy-lookahead, to read an
// explicitly tagged (tag, class) child from it. If the iterator is
// exhausted or the next child's identifier does not match, it reports
// absence (nil, nil) without consuming anything. Otherwise it commits the
// read and returns builder's result.
func OptionalExplicitlyTagged[T any](it *ChildIterator, tag int, class Class, builder func(Node) (T, error)) (*T, error) {
	if it.Done() {
		return nil, nil
	}

	snap := it.snapshot()
	child := snap.Next()

	want := ExplicitIdentifier(tag, class)
	if child.Identifier() != want {
		return nil, nil
	}

	v, err := ExplicitlyTagged(child, tag, class, builder)
	if err != nil {
		return nil, err
	}

	*it = snap
	return &v, nil
}

// OptionalImplicitlyTagged attempts, via copy-lookahead, to read a T
// tagged with identifier (or T's own default identifier, if none is
// given) from it. If the iterator is exhausted or the next child's
// identifier does not match, it reports absence (nil, nil) without
// consuming anything.
func OptionalImplicitlyTagged[T ImplicitlyTaggable](it *ChildIterator, zero func() T, identifier ...Identifier) (*T, error) {
	if it.Done() {
		return nil, nil
	}

	want := zero().DefaultIdentifier()
	if len(identifier) > 0 {
		want = identifier[0]
	}

	snap := it.snapshot()
	child := snap.Next()
	if child.Identifier() != want {
		return nil, nil
	}

	v := zero()
	if err := v.ParseFromNodeWithIdentifier(child, want); err != nil {
		return nil, err
	}

	*it = snap
	return &v, nil
}

// DecodeDefault attempts, via copy-lookahead, to read an identifier child
// from it and parse it with builder. If the iterator is exhausted or the
// next child's identifier does not match, it returns def without
// consuming anything. If a value is present and parses successfully, DER
// forbids it from equaling def (encoding a DEFAULT at its default value
// is itself a violation); that case fails with [ErrInvalidObject].
func DecodeDefault[T comparable](it *ChildIterator, identifier Identifier, def T, builder func(Node) (T, error)) (T, error) {
	if it.Done() {
		return def, nil
	}

	snap := it.snapshot()
	child := snap.Next()
	if child.Identifier() != identifier {
		return def, nil
	}

	v, err := builder(child)
	if err != nil {
		return def, err
	}
	if v == def {
		return def, wrapErr(ErrInvalidObject, "DEFAULT value encoded explicitly")
	}

	*it = snap
	return v, nil
}

// DecodeDefaultExplicitlyTagged composes [OptionalExplicitlyTagged] with
// the same "not encoded at default state" check as [DecodeDefault].
func DecodeDefaultExplicitlyTagged[T comparable](it *ChildIterator, tag int, class Class, def T, builder func(Node) (T, error)) (T, error) {
	got, err := OptionalExplicitlyTagged(it, tag, class, builder)
	if err != nil {
		return def, err
	}
	if got == nil {
		return def, nil
	}
	if *got == def {
		return def, wrapErr(ErrInvalidObject, "DEFAULT value encoded explicitly")
	}
	return *got, nil
}
