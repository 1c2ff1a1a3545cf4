package dertree

/*
node.go implements the public lazy tree view over a parsed DER buffer:
Node is a union of PrimitiveNode and ConstructedNode, and a constructed
node's children are enumerated lazily through a [ChildIterator] (see
children.go) rather than being eagerly materialized into a slice.
*/

import "bytes"

// Node is either a [PrimitiveNode] or a [ConstructedNode]. Two nodes are
// equal iff their identifiers, content, and encoded bytes all match; use
// [NodesEqual] to compare two Node values.
type Node interface {
	// Identifier returns the node's decoded tag.
	Identifier() Identifier

	// EncodedBytes returns the node's exact encoding as read from the
	// input: identifier octets, length octets, and content octets,
	// byte-identical to the corresponding slice of the original input.
	EncodedBytes() []byte

	isNode()
}

// PrimitiveNode is a DER value whose content is raw, uninterpreted bytes.
type PrimitiveNode struct {
	identifier Identifier
	content    []byte
	encoded    []byte
}

func (n PrimitiveNode) Identifier() Identifier { return n.identifier }
func (n PrimitiveNode) EncodedBytes() []byte   { return n.encoded }
func (PrimitiveNode) isNode()                  {}

// Content returns the node's raw content octets (excluding identifier and
// length octets).
func (n PrimitiveNode) Content() []byte { return n.content }

// ConstructedNode is a DER value whose content is the concatenation of
// child TLVs. Its children are exposed through a fresh [ChildIterator]
// returned by [ConstructedNode.Children]; the iterator is single-pass,
// but cheap to snapshot (see children.go), which is what lets the
// copy-lookahead combinators in combinators.go work without eagerly
// decoding anything.
type ConstructedNode struct {
	identifier Identifier
	encoded    []byte
	depth      int
	run        []parserNode // direct and indirect descendants, preorder
}

func (n ConstructedNode) Identifier() Identifier { return n.identifier }
func (n ConstructedNode) EncodedBytes() []byte   { return n.encoded }
func (ConstructedNode) isNode()                  {}

// Children returns a fresh iterator over the node's direct children.
func (n ConstructedNode) Children() *ChildIterator {
	return &ChildIterator{run: n.run, parentDepth: n.depth}
}

// NodesEqual reports whether a and b are the same DER value: identical
// identifiers and byte-identical encodings (which, since encoding is
// exact, also implies identical content).
func NodesEqual(a, b Node) bool {
	if a.Identifier() != b.Identifier() {
		return false
	}
	return bytes.Equal(a.EncodedBytes(), b.EncodedBytes())
}
