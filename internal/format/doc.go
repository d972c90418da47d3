// Package format turns a CST into a layout document and prints it.
//
// Each node kind has a rule in a single dispatch table. Kinds without a
// rule, and every Bogus or Unknown node, are copied from the source as is,
// so formatting never loses text the grammar does not cover. Comments ride
// on tokens as trivia and are printed exactly once, next to the token that
// owns them.
package format
