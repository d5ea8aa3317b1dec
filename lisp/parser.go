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

import "io"

// Parser is a recursive-descent consumer of a token stream producing an
// Object tree, grounded on memcp's readFrom/Read (memcp/scm/parser.go)
// but driven over the stepping Lexer instead of a pre-tokenized slice.
// The parser holds no ownership of what it allocates — every cell and leaf
// is registered in the arena on creation.
type Parser struct {
	lex    *Lexer
	arena  *Arena
	cur    Token
	curErr error
	atEOF  bool
}

// NewParser constructs a parser over source, allocating AST nodes into arena.
func NewParser(arena *Arena, source string) *Parser {
	p := &Parser{lex: NewLexer(source), arena: arena}
	p.advance()
	return p
}

func (p *Parser) advance() {
	tok, err := p.lex.Next()
	if err == io.EOF {
		p.atEOF = true
		p.curErr = nil
		return
	}
	p.cur = tok
	p.curErr = err
}

// ReadAll parses the entire source into an ordered list of top-level
// expressions.
func (p *Parser) ReadAll() ([]Object, error) {
	var exprs []Object
	for !p.atEOF {
		if p.curErr != nil {
			return nil, p.curErr
		}
		expr, err := p.Read()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// Read parses a single expression: a constant, a symbol, a quoted form, or
// a parenthesized list.
func (p *Parser) Read() (Object, error) {
	if p.curErr != nil {
		return nil, p.curErr
	}
	if p.atEOF {
		return nil, &SyntaxError{Message: "unexpected end of input"}
	}
	switch p.cur.Kind {
	case TokConstant:
		v := p.arena.NewNumber(p.cur.Value)
		p.advance()
		return v, nil
	case TokSymbol:
		v := p.arena.NewSymbol(p.cur.Text)
		p.advance()
		return v, nil
	case TokQuote:
		info := p.cur.Info
		p.advance()
		inner, err := p.Read()
		if err != nil {
			return nil, err
		}
		quoteSym := p.arena.NewSymbol("quote")
		innerCell := p.arena.NewCell(inner, nil)
		_ = info
		return p.arena.NewCell(quoteSym, innerCell), nil
	case TokOpen:
		return p.readList()
	case TokDot:
		return nil, &SyntaxError{Message: "unexpected '.'", Info: p.cur.Info}
	case TokClose:
		return nil, &SyntaxError{Message: "unexpected ')'", Info: p.cur.Info}
	default:
		return nil, &SyntaxError{Message: "unexpected token", Info: p.cur.Info}
	}
}

// readList parses "(" elem* [ "." elem ] ")" into a chain of cells.
func (p *Parser) readList() (Object, error) {
	openInfo := p.cur.Info
	p.advance() // consume '('

	if !p.atEOF && p.curErr == nil && p.cur.Kind == TokClose {
		p.advance()
		return nil, nil // empty list
	}

	var head, tail *Cell
	dotSeen := false
	for {
		if p.curErr != nil {
			return nil, p.curErr
		}
		if p.atEOF {
			return nil, &SyntaxError{Message: "expecting matching )", Info: openInfo}
		}
		if p.cur.Kind == TokClose {
			p.advance()
			break
		}
		if p.cur.Kind == TokDot {
			if head == nil {
				return nil, &SyntaxError{Message: "'.' in first position", Info: p.cur.Info}
			}
			if dotSeen {
				return nil, &SyntaxError{Message: "more than one '.' in list", Info: p.cur.Info}
			}
			dotSeen = true
			p.advance()
			if !p.atEOF && p.cur.Kind == TokClose {
				return nil, &SyntaxError{Message: "'.' with no successor", Info: p.cur.Info}
			}
			elem, err := p.Read()
			if err != nil {
				return nil, err
			}
			tail.Second = elem
			// only the closing paren may follow now.
			if p.curErr != nil {
				return nil, p.curErr
			}
			if p.atEOF || p.cur.Kind != TokClose {
				return nil, &SyntaxError{Message: "expecting ')' after dotted tail", Info: openInfo}
			}
			p.advance()
			break
		}

		elem, err := p.Read()
		if err != nil {
			return nil, err
		}
		cell := p.arena.NewCell(elem, nil)
		if head == nil {
			head = cell
		} else {
			tail.Second = cell
		}
		tail = cell
	}
	if head == nil {
		return nil, nil
	}
	return head, nil
}
