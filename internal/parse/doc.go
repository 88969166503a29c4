// Package parse implements the parser boundary (spec section 6.1): a
// pure function from (input, vocabulary, state) to a vocab.Command or
// a ParseError. It never mutates GameState and never prints; the
// engine renders failures and drives I/O.
package parse
