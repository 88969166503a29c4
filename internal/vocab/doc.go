// Package vocab defines the vocabulary and command shapes shared by
// the parser and the engine: Direction, Frame (the grammatical shapes
// a verb accepts), Vocabulary (the verb/noun tables built from a
// blueprint), and Command (what the parser hands the engine).
package vocab
