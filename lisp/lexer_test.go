/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lisp

import (
	"io"
	"testing"
)

func lexAll(t *testing.T, source string) []Token {
	t.Helper()
	l := NewLexer(source)
	var toks []Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return toks
		}
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
	}
}

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		source string
		kinds  []TokenKind
	}{
		{"()", []TokenKind{TokOpen, TokClose}},
		{"(+ 1 2)", []TokenKind{TokOpen, TokSymbol, TokConstant, TokConstant, TokClose}},
		{"'(1 . 2)", []TokenKind{TokQuote, TokOpen, TokConstant, TokDot, TokConstant, TokClose}},
		{"-5 +5 5", []TokenKind{TokConstant, TokConstant, TokConstant}},
		{"list? null? set-car!", []TokenKind{TokSymbol, TokSymbol, TokSymbol}},
	}

	for _, tt := range tests {
		toks := lexAll(t, tt.source)
		if len(toks) != len(tt.kinds) {
			t.Fatalf("%q: got %d tokens, want %d", tt.source, len(toks), len(tt.kinds))
		}
		for i, k := range tt.kinds {
			if toks[i].Kind != k {
				t.Errorf("%q: token %d: got %v, want %v", tt.source, i, toks[i].Kind, k)
			}
		}
	}
}

func TestLexerConstantValue(t *testing.T) {
	toks := lexAll(t, "-42")
	if len(toks) != 1 || toks[0].Kind != TokConstant || toks[0].Value != -42 {
		t.Fatalf("got %+v, want a single constant -42", toks)
	}
}

func TestLexerRoundTrip(t *testing.T) {
	source := "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))"
	toks := lexAll(t, source)

	var rebuilt string
	for i, tok := range toks {
		if i > 0 {
			rebuilt += " "
		}
		rebuilt += tok.Text
	}

	retoks := lexAll(t, rebuilt)
	if len(retoks) != len(toks) {
		t.Fatalf("re-lexing %q produced %d tokens, want %d", rebuilt, len(retoks), len(toks))
	}
	for i := range toks {
		if retoks[i].Kind != toks[i].Kind || retoks[i].Text != toks[i].Text || retoks[i].Value != toks[i].Value {
			t.Errorf("token %d: got %+v, want %+v", i, retoks[i], toks[i])
		}
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, err := NewLexer("@").Next()
	if err == nil {
		t.Fatal("expected an error for an unrecognized character")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
}
