package dertree

/*
parser.go implements the flat DER parser: it walks a byte slice into an
ordered, depth-tagged buffer of parserNode records in a single
depth-first preorder pass. See node.go for the lazy Node tree view built
on top of this buffer.
*/

// maxParseDepth bounds constructed nesting. Exceeding it fails the parse;
// nesting of exactly this depth succeeds.
const maxParseDepth = 50

// parserNode is one entry in the flat preorder buffer produced by Parse.
// data is non-nil iff the node is primitive; a constructed node's
// descendants occupy the buffer slots immediately following it, each
// with depth == parent depth + 1 for the direct children (and greater
// for their own descendants).
type parserNode struct {
	identifier Identifier
	depth      int
	encoded    []byte
	data       []byte
}

// ParseResult owns the flat node buffer produced by [Parse]. It is
// immutable once returned; every [Node] reachable from [ParseResult.Root]
// borrows from this same buffer and the original input slice, so the
// ParseResult (or at minimum the byte slice passed to Parse) must outlive
// any Node derived from it. A ParseResult and its Nodes are safe to read
// from multiple goroutines concurrently once Parse has returned.
type ParseResult struct {
	buf   []parserNode
	input []byte
}

// Root returns the single top-level [Node] decoded from the input.
func (p *ParseResult) Root() Node {
	return nodeAt(p.buf, 0)
}

// Parse decodes a single DER-encoded value from input, returning a
// [ParseResult] whose [ParseResult.Root] is that value. The entire input
// must be consumed by exactly one top-level TLV; trailing bytes are a
// DER violation ([ErrInvalidObject]), not a distinct value to parse
// again.
func Parse(input []byte) (*ParseResult, error) {
	buf := make([]parserNode, 0, 16)
	n, err := parseNode(input, 1, &buf)
	if err != nil {
		return nil, err
	}
	if n != len(input) {
		return nil, wrapErr(ErrInvalidObject, "residual bytes after the top-level DER value")
	}
	return &ParseResult{buf: buf, input: input}, nil
}

// parseNode decodes one TLV from the front of data at the given nesting
// depth, appending it (and, if constructed, its full descendant run) to
// buf, and returns the number of bytes consumed.
func parseNode(data []byte, depth int, buf *[]parserNode) (consumed int, err error) {
	if depth > maxParseDepth {
		return 0, wrapErr(ErrInvalidObject, "maximum nesting depth of 50 exceeded")
	}

	id, idLen, err := decodeIdentifier(data)
	if err != nil {
		return 0, err
	}

	length, lenLen, err := decodeLength(data[idLen:])
	if err != nil {
		return 0, err
	}

	headerLen := idLen + lenLen
	if length > len(data)-headerLen {
		return 0, wrapErr(ErrTruncatedField, "declared content length exceeds available input")
	}

	encoded := data[:headerLen+length]
	content := data[headerLen : headerLen+length]

	if id.Constructed {
		*buf = append(*buf, parserNode{identifier: id, depth: depth, encoded: encoded})
		off := 0
		for off < len(content) {
			n, err := parseNode(content[off:], depth+1, buf)
			if err != nil {
				return 0, err
			}
			off += n
		}
	} else {
		*buf = append(*buf, parserNode{identifier: id, depth: depth, encoded: encoded, data: content})
	}

	return headerLen + length, nil
}

// subtreeLen returns the number of buffer entries rooted at buf[i],
// including buf[i] itself: the maximal run starting at i whose later
// entries all have depth strictly greater than buf[i].depth.
func subtreeLen(buf []parserNode, i int) int {
	d := buf[i].depth
	j := i + 1
	for j < len(buf) && buf[j].depth > d {
		j++
	}
	return j - i
}

// nodeAt wraps buf[i] as a [Node], taking ownership (as a descendant run)
// of whatever subtree follows it if it is constructed.
func nodeAt(buf []parserNode, i int) Node {
	pn := buf[i]
	if pn.data != nil {
		return PrimitiveNode{identifier: pn.identifier, content: pn.data, encoded: pn.encoded}
	}
	span := subtreeLen(buf, i)
	return ConstructedNode{
		identifier: pn.identifier,
		encoded:    pn.encoded,
		depth:      pn.depth,
		run:        buf[i+1 : i+span],
	}
}
