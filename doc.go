/*
Package dertree implements a parser and serializer for ASN.1 values encoded
under the Distinguished Encoding Rules (DER).

DER is the canonical binary TLV (Tag-Length-Value) encoding used throughout
cryptographic and PKI formats: X.509 certificates, PKCS structures,
signatures, keys. This package does not attempt to model any of those
schemas directly. Instead it provides the substrate that implementers of
such schemas build on:

  - [Parse] walks a byte slice into a flat, depth-tagged buffer of nodes
    and returns a [ParseResult] whose [ParseResult.Root] is the lazy
    [Node] tree rooted at the first entry.
  - [Serializer] accumulates TLV structures with length-prefix
    back-patching, so callers can emit arbitrarily nested constructed
    values without knowing their encoded length in advance.
  - The combinator functions ([Sequence], [Set], [SequenceOf],
    [ExplicitlyTagged], [OptionalExplicitlyTagged],
    [OptionalImplicitlyTagged], [DecodeDefault], ...) implement the common
    ASN.1 grammar constructs on top of the node tree and the serializer.
  - [Boolean], [BitString] and [GeneralizedTime] are exemplar primitive
    codecs built on the three trait-shaped protocols in traits.go.

This package is strict DER only: BER's indefinite-length forms and
non-canonical (non-minimal) encodings are rejected outright. There is no
streaming parser; [Parse] requires the complete input buffer up front.
Parsing is bounded to a nesting depth of 50 and is safe to run
concurrently across independent inputs, but a single [ParseResult] (and
the [Node] values it produces) is only ever read after parsing completes;
a [Serializer] is owned by a single writer at a time.
*/
package dertree
