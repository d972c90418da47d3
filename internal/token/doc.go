// Package token defines lexical token kinds and trivia shared by the JSON and
// JS/TS lexers.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Concatenating Leading, Text and Trailing of every token in order, EOF
//     included, reproduces the file byte for byte.
//   - Trailing trivia never contains a newline; everything from the first
//     newline on belongs to the Leading trivia of the next token.
//   - Keywords are only produced by the JS lexer; JSON true/false/null use the
//     same keyword kinds.
package token
