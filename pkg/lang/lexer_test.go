package lang

import "testing"

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []TokenType{EndOfData},
		},
		{
			name:     "Punctuation",
			input:    "+ - * ^ ( )",
			expected: []TokenType{Plus, Minus, Star, Caret, LParen, RParen, EndOfData},
		},
		{
			name:     "Identifiers",
			input:    "z w i",
			expected: []TokenType{Z, W, I, EndOfData},
		},
		{
			name:     "Integer",
			input:    "123",
			expected: []TokenType{Int, EndOfData},
		},
		{
			name:     "Float",
			input:    "1.5",
			expected: []TokenType{Float, EndOfData},
		},
		{
			name:     "FloatWithExponent",
			input:    "1.5e-10",
			expected: []TokenType{Float, EndOfData},
		},
		{
			name:     "FloatTrailingDot",
			input:    "2.",
			expected: []TokenType{Float, EndOfData},
		},
		{
			name:     "Unknown",
			input:    "q",
			expected: []TokenType{Unknown, EndOfData},
		},
		{
			name:     "FormulaExpression",
			input:    "(z - i)*(w + 2)^5",
			expected: []TokenType{
				LParen, Z, Minus, I, RParen,
				Star,
				LParen, W, Plus, Int, RParen, Caret, Int,
				EndOfData,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Lex(tc.input)
			if len(tokens) != len(tc.expected) {
				t.Fatalf("Lex(%q) produced %d tokens, want %d: %v", tc.input, len(tokens), len(tc.expected), tokens)
			}
			for i, tok := range tokens {
				if tok.Type != tc.expected[i] {
					t.Errorf("Lex(%q) token %d = %s, want %s", tc.input, i, tok.Type, tc.expected[i])
				}
			}
		})
	}
}

func TestLexPositions(t *testing.T) {
	tokens := Lex("z + 1")
	want := []int{0, 2, 4, 5}
	for i, pos := range want {
		if tokens[i].Pos != pos {
			t.Errorf("token %d Pos = %d, want %d", i, tokens[i].Pos, pos)
		}
	}
}
