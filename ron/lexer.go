package ron

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokColon
	tokComma
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peekRune() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.src[l.pos:])
}

func (l *lexer) advance(r rune, size int) {
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		r, size := l.peekRune()
		switch {
		case unicode.IsSpace(r):
			l.advance(r, size)
		case r == '/' && strings.HasPrefix(l.src[l.pos:], "//"):
			for l.pos < len(l.src) {
				r, size = l.peekRune()
				l.advance(r, size)
				if r == '\n' {
					break
				}
			}
		case r == '/' && strings.HasPrefix(l.src[l.pos:], "/*"):
			startLine, startCol := l.line, l.col
			l.advance('/', 1)
			l.advance('*', 1)
			closed := false
			for l.pos < len(l.src) {
				if strings.HasPrefix(l.src[l.pos:], "*/") {
					l.advance('*', 1)
					l.advance('/', 1)
					closed = true
					break
				}
				r, size = l.peekRune()
				l.advance(r, size)
			}
			if !closed {
				return syntaxErrf(startLine, startCol, "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

// next scans the next token.
func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line, col: l.col}, nil
	}

	line, col := l.line, l.col
	r, size := l.peekRune()

	punct := map[rune]tokenKind{
		'(': tokLParen, ')': tokRParen,
		'[': tokLBracket, ']': tokRBracket,
		'{': tokLBrace, '}': tokRBrace,
		':': tokColon, ',': tokComma,
	}
	if kind, ok := punct[r]; ok {
		l.advance(r, size)
		return token{kind: kind, text: string(r), line: line, col: col}, nil
	}

	switch {
	case r == '"':
		return l.scanString(line, col)
	case r == '-' || r == '+' || unicode.IsDigit(r):
		return l.scanNumber(line, col)
	case r == '_' || unicode.IsLetter(r):
		return l.scanIdent(line, col)
	}
	return token{}, syntaxErrf(line, col, "unexpected character %q", r)
}

func (l *lexer) scanIdent(line, col int) (token, error) {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := l.peekRune()
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.advance(r, size)
			continue
		}
		break
	}
	return token{kind: tokIdent, text: l.src[start:l.pos], line: line, col: col}, nil
}

func (l *lexer) scanNumber(line, col int) (token, error) {
	start := l.pos
	kind := tokInt
	r, size := l.peekRune()
	if r == '-' || r == '+' {
		l.advance(r, size)
	}
	sawDigit := false
	// Hex literals appear in spell ids (0x0101).
	if strings.HasPrefix(l.src[l.pos:], "0x") || strings.HasPrefix(l.src[l.pos:], "0X") {
		l.advance('0', 1)
		l.advance('x', 1)
		for l.pos < len(l.src) {
			r, size = l.peekRune()
			if isHexDigit(r) || r == '_' {
				sawDigit = sawDigit || r != '_'
				l.advance(r, size)
				continue
			}
			break
		}
		if !sawDigit {
			return token{}, syntaxErrf(line, col, "malformed hex literal")
		}
		return token{kind: tokInt, text: l.src[start:l.pos], line: line, col: col}, nil
	}
	for l.pos < len(l.src) {
		r, size = l.peekRune()
		switch {
		case unicode.IsDigit(r) || r == '_':
			sawDigit = sawDigit || r != '_'
			l.advance(r, size)
		case r == '.':
			if kind == tokFloat {
				return token{}, syntaxErrf(line, col, "malformed number")
			}
			kind = tokFloat
			l.advance(r, size)
		case r == 'e' || r == 'E':
			kind = tokFloat
			l.advance(r, size)
			if next, _ := l.peekRune(); next == '-' || next == '+' {
				l.advance(next, 1)
			}
		default:
			goto done
		}
	}
done:
	if !sawDigit {
		return token{}, syntaxErrf(line, col, "malformed number")
	}
	return token{kind: kind, text: l.src[start:l.pos], line: line, col: col}, nil
}

func (l *lexer) scanString(line, col int) (token, error) {
	l.advance('"', 1)
	var sb strings.Builder
	for l.pos < len(l.src) {
		r, size := l.peekRune()
		l.advance(r, size)
		switch r {
		case '"':
			return token{kind: tokString, text: sb.String(), line: line, col: col}, nil
		case '\\':
			if l.pos >= len(l.src) {
				return token{}, syntaxErrf(line, col, "unterminated string")
			}
			esc, escSize := l.peekRune()
			l.advance(esc, escSize)
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case '0':
				sb.WriteByte(0)
			default:
				return token{}, syntaxErrf(l.line, l.col, "unknown escape %q", esc)
			}
		case '\n':
			return token{}, syntaxErrf(line, col, "unterminated string")
		default:
			sb.WriteRune(r)
		}
	}
	return token{}, syntaxErrf(line, col, "unterminated string")
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
