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
	"strconv"
	"strings"
)

// lexState is the DFA's state set. Every non-root state is accepting.
type lexState int

const (
	stRoot lexState = iota
	stOpenPar
	stClosePar
	stDot
	stQuote
	stPlus
	stMinus
	stSymbol
	stConstant
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSymbolStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || strings.IndexByte("*#<>=/", b) >= 0
}

func isSymbolMid(b byte) bool {
	return isSymbolStart(b) || isDigit(b) || strings.IndexByte("?!-", b) >= 0
}

// Lexer is a character-by-character DFA tokenizer over an input string,
// grounded on memcp's tokenize() in memcp/scm/parser.go but reworked into
// a pull driver (Next) since round-tripping individual tokens and the
// parser's one-token lookahead both want single-token stepping rather than
// a whole-buffer token slice.
type Lexer struct {
	src       []byte
	pos       int
	line, col int
}

// NewLexer constructs a DFA tokenizer over source.
func NewLexer(source string) *Lexer {
	return &Lexer{src: []byte(source), line: 1, col: 1}
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

// Next drives the DFA to produce the next token, skipping leading
// whitespace. It returns io.EOF once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	state := stRoot
	var lexeme []byte
	info := SourceInfo{Line: l.line, Col: l.col}

loop:
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		switch state {
		case stRoot:
			switch {
			case isSpace(b):
				l.advance()
				info = SourceInfo{Line: l.line, Col: l.col}
			case b == '(':
				lexeme = append(lexeme, l.advance())
				state = stOpenPar
			case b == ')':
				lexeme = append(lexeme, l.advance())
				state = stClosePar
			case b == '.':
				lexeme = append(lexeme, l.advance())
				state = stDot
			case b == '\'':
				lexeme = append(lexeme, l.advance())
				state = stQuote
			case b == '+':
				lexeme = append(lexeme, l.advance())
				state = stPlus
			case b == '-':
				lexeme = append(lexeme, l.advance())
				state = stMinus
			case isDigit(b):
				lexeme = append(lexeme, l.advance())
				state = stConstant
			case isSymbolStart(b):
				lexeme = append(lexeme, l.advance())
				state = stSymbol
			default:
				return Token{}, &SyntaxError{Message: "unexpected character '" + string(b) + "'", Info: info}
			}
		case stOpenPar, stClosePar, stDot, stQuote:
			break loop
		case stPlus, stMinus:
			if isDigit(b) {
				lexeme = append(lexeme, l.advance())
				state = stConstant
			} else {
				break loop
			}
		case stSymbol:
			if isSymbolMid(b) {
				lexeme = append(lexeme, l.advance())
			} else {
				break loop
			}
		case stConstant:
			if isDigit(b) {
				lexeme = append(lexeme, l.advance())
			} else {
				break loop
			}
		}
	}

	if state == stRoot {
		return Token{}, io.EOF
	}
	return produce(state, lexeme, info)
}

func produce(state lexState, lexeme []byte, info SourceInfo) (Token, error) {
	text := string(lexeme)
	if text == "" {
		return Token{}, &SyntaxError{Message: "empty token", Info: info}
	}
	switch state {
	case stOpenPar:
		return Token{Kind: TokOpen, Text: text, Info: info}, nil
	case stClosePar:
		return Token{Kind: TokClose, Text: text, Info: info}, nil
	case stDot:
		return Token{Kind: TokDot, Text: text, Info: info}, nil
	case stQuote:
		return Token{Kind: TokQuote, Text: text, Info: info}, nil
	case stPlus, stMinus, stSymbol:
		return Token{Kind: TokSymbol, Text: text, Info: info}, nil
	case stConstant:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, &SyntaxError{Message: "invalid integer literal: " + text, Info: info}
		}
		return Token{Kind: TokConstant, Text: text, Value: v, Info: info}, nil
	default:
		return Token{}, &SyntaxError{Message: "empty token", Info: info}
	}
}
