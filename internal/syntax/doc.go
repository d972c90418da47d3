// Package syntax holds the lossless concrete syntax tree shared by the JSON
// and script parsers.
//
// Invariants:
//   - every token of the file, EOF included, is a child element of exactly
//     one node, so leading and trailing trivia are reachable from the root;
//   - a node's Span covers its first and last token (trivia excluded);
//   - Bogus marks input the parser rejected; Unknown marks well-formed input
//     the parser does not model. Both carry their tokens verbatim.
package syntax
