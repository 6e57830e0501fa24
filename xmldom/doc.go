/*
Package xmldom is a lossless XML editing library: a parser, an in-memory
node tree, and a serializer whose defining property is that, for any
well-formed input x the parser accepts, serializing an unmodified tree
reproduces x byte-for-byte, and a modified tree reproduces x everywhere
except the regions whose owning nodes were explicitly mutated.

It is aimed at configuration-file and document-transformation editing
(build manifests, deployment descriptors, SOAP envelopes) where comments,
indentation, entity choice, attribute quote style, and attribute order
must survive a round trip through the library.

This package deliberately does not normalize end-of-line sequences (CR,
CR-LF) to LF the way XML §2.11 prescribes. Doing so would silently
rewrite bytes in every node that contains a CR, which conflicts with the
round-trip guarantee above. Callers that need normalized line endings
should normalize the decoded string themselves after reading it out of
the tree.

There is no schema/DTD validation, no entity expansion beyond the five
predefined XML entities and numeric character references, no XPath
engine as a primary surface (Query and QueryAll are a small convenience
layered on top of the navigation primitives), and no
streaming/SAX-style API; the whole document is parsed into memory.
*/
package xmldom
