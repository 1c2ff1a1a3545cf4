package dertree

/*
children.go implements the single-pass child iterator over a
ConstructedNode's descendant run, including the copy-lookahead pattern
several schema combinators rely on (see combinators.go): because a
ChildIterator is nothing but a slice header and an int, snapshotting one
to attempt a speculative read and discarding the attempt on mismatch is
just an ordinary Go value copy, no special support required.
*/

// ChildIterator walks the direct children of a [ConstructedNode] in
// order. Obtain one from [ConstructedNode.Children]; a zero-value
// ChildIterator has no children and reports Done immediately.
type ChildIterator struct {
	run         []parserNode
	parentDepth int
}

// Done reports whether every child has been consumed.
func (it *ChildIterator) Done() bool { return len(it.run) == 0 }

// Next pops and returns the next child. It panics if called after Done
// reports true; callers are expected to check Done first, matching the
// rest of this package's treatment of iterator misuse as a programmer
// error.
func (it *ChildIterator) Next() Node {
	if it.Done() {
		panic("dertree: ChildIterator.Next called with no children remaining")
	}

	head := it.run[0]
	if head.depth != it.parentDepth+1 {
		panic("dertree: corrupt parse buffer: child depth invariant violated")
	}

	if head.data != nil {
		it.run = it.run[1:]
		return PrimitiveNode{identifier: head.identifier, content: head.data, encoded: head.encoded}
	}

	span := subtreeLen(it.run, 0)
	child := ConstructedNode{
		identifier: head.identifier,
		encoded:    head.encoded,
		depth:      head.depth,
		run:        it.run[1:span],
	}
	it.run = it.run[span:]
	return child
}

// snapshot returns a cheap, independent copy of the iterator's current
// position, used by the copy-lookahead combinators to attempt a read
// without committing to it.
func (it ChildIterator) snapshot() ChildIterator { return it }
