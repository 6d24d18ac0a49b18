// Package lang provides a lexer, recursive-descent parser, and an immutable
// polynomial expression tree for the formula language:
//
//	E  ->  '-'? S ( ('+' | '-') S )*
//	S  ->  F ( '*' F )*
//	F  ->  A ( '^' Int )?
//	A  ->  '(' E ')' | 'z' | 'w' | 'i' | Float | Int
package lang

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	Unknown   TokenType = iota // any character that matches no rule
	EndOfData                  // sentinel: end of formula text

	Plus   // +
	Minus  // -
	Star   // *
	Caret  // ^
	LParen // (
	RParen // )

	Z // the identifier "z"
	W // the identifier "w"
	I // the identifier "i"

	Int   // unsigned decimal integer literal
	Float // unsigned decimal float literal, optionally with an e-exponent
)

var tokenNames = [...]string{
	Unknown:   "Unknown",
	EndOfData: "EndOfData",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Caret:     "Caret",
	LParen:    "LParen",
	RParen:    "RParen",
	Z:         "Z",
	W:         "W",
	I:         "I",
	Int:       "Int",
	Float:     "Float",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type TokenType
	Text string // the exact source slice that was matched
	Pos  int    // 0-based rune (character) offset of Text within the formula
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-10q  @%d", t.Type, t.Text, t.Pos)
}
