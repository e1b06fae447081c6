package ron

import (
	"strconv"
	"strings"
)

type parser struct {
	lex    *lexer
	tok    token
	peeked *token
}

// Parse parses a complete document into a Value. Trailing content after the
// first value is a syntax error.
func Parse(data []byte) (Value, error) {
	p := &parser{lex: newLexer(string(data))}
	if err := p.bump(); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, syntaxErrf(p.tok.line, p.tok.col, "unexpected trailing %q", p.tok.text)
	}
	return v, nil
}

// ValidateSyntax checks that data is a single well-formed document.
func ValidateSyntax(data []byte) error {
	_, err := Parse(data)
	return err
}

func (p *parser) bump() error {
	if p.peeked != nil {
		p.tok = *p.peeked
		p.peeked = nil
		return nil
	}
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return syntaxErrf(p.tok.line, p.tok.col, "expected %s, found %q", what, p.tok.text)
	}
	return p.bump()
}

func (p *parser) parseValue() (Value, error) {
	switch p.tok.kind {
	case tokString:
		v := String(p.tok.text)
		return v, p.bump()
	case tokInt:
		text := strings.ReplaceAll(p.tok.text, "_", "")
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			// Large unsigned values still fit the float fallback used by
			// ParseUint below.
			u, uerr := strconv.ParseUint(strings.TrimPrefix(text, "+"), 0, 64)
			if uerr != nil {
				return nil, syntaxErrf(p.tok.line, p.tok.col, "invalid integer %q", p.tok.text)
			}
			return Int(int64(u)), p.bump()
		}
		return Int(n), p.bump()
	case tokFloat:
		text := strings.ReplaceAll(p.tok.text, "_", "")
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, syntaxErrf(p.tok.line, p.tok.col, "invalid float %q", p.tok.text)
		}
		return Float(f), p.bump()
	case tokIdent:
		return p.parseIdent()
	case tokLParen:
		return p.parseCompound("")
	case tokLBracket:
		return p.parseList()
	case tokLBrace:
		return p.parseMap()
	}
	return nil, syntaxErrf(p.tok.line, p.tok.col, "expected value, found %q", p.tok.text)
}

func (p *parser) parseIdent() (Value, error) {
	name := p.tok.text
	switch name {
	case "true":
		return Bool(true), p.bump()
	case "false":
		return Bool(false), p.bump()
	}
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.kind == tokLParen {
		if err := p.bump(); err != nil {
			return nil, err
		}
		return p.parseCompound(name)
	}
	return Enum(name), p.bump()
}

// parseCompound parses `(...)` following an optional name: either a struct
// with named fields or a tuple with positional items.
func (p *parser) parseCompound(name string) (Value, error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	if p.tok.kind == tokRParen {
		if err := p.bump(); err != nil {
			return nil, err
		}
		return Tuple{Name: name}, nil
	}

	// A leading `ident :` selects struct fields; anything else is positional.
	named := false
	if p.tok.kind == tokIdent {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		named = next.kind == tokColon
	}

	if named {
		var fields []Field
		seen := make(map[string]struct{})
		for {
			if p.tok.kind != tokIdent {
				return nil, syntaxErrf(p.tok.line, p.tok.col, "expected field name, found %q", p.tok.text)
			}
			fname := p.tok.text
			fline, fcol := p.tok.line, p.tok.col
			if _, dup := seen[fname]; dup {
				return nil, syntaxErrf(fline, fcol, "duplicate field %q", fname)
			}
			seen[fname] = struct{}{}
			if err := p.bump(); err != nil {
				return nil, err
			}
			if err := p.expect(tokColon, "':'"); err != nil {
				return nil, err
			}
			val, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: fname, Val: val})
			done, err := p.separatorOrClose(tokRParen, "')'")
			if err != nil {
				return nil, err
			}
			if done {
				return Struct{Name: name, Fields: fields}, nil
			}
		}
	}

	var items []Value
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, val)
		done, err := p.separatorOrClose(tokRParen, "')'")
		if err != nil {
			return nil, err
		}
		if done {
			return Tuple{Name: name, Items: items}, nil
		}
	}
}

func (p *parser) parseList() (Value, error) {
	if err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}
	list := List{}
	if p.tok.kind == tokRBracket {
		return list, p.bump()
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, val)
		done, err := p.separatorOrClose(tokRBracket, "']'")
		if err != nil {
			return nil, err
		}
		if done {
			return list, nil
		}
	}
}

func (p *parser) parseMap() (Value, error) {
	if err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	m := Map{}
	if p.tok.kind == tokRBrace {
		return m, p.bump()
	}
	seen := make(map[string]struct{})
	for {
		kline, kcol := p.tok.line, p.tok.col
		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		canon := formatValue(key, 0)
		if _, dup := seen[canon]; dup {
			return nil, syntaxErrf(kline, kcol, "duplicate map key %s", canon)
		}
		seen[canon] = struct{}{}
		if err := p.expect(tokColon, "':'"); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		m = append(m, MapEntry{Key: key, Val: val})
		done, err := p.separatorOrClose(tokRBrace, "'}'")
		if err != nil {
			return nil, err
		}
		if done {
			return m, nil
		}
	}
}

// separatorOrClose consumes a comma and/or the closing delimiter, permitting
// trailing commas. It reports whether the compound is closed.
func (p *parser) separatorOrClose(close tokenKind, what string) (bool, error) {
	switch p.tok.kind {
	case tokComma:
		if err := p.bump(); err != nil {
			return false, err
		}
		if p.tok.kind == close {
			return true, p.bump()
		}
		return false, nil
	case close:
		return true, p.bump()
	}
	return false, syntaxErrf(p.tok.line, p.tok.col, "expected ',' or %s, found %q", what, p.tok.text)
}
