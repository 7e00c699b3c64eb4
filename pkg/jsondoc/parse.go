package jsondoc

import (
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// DefaultMaxDepth bounds recursion while parsing nested arrays and objects.
const DefaultMaxDepth = 1000

// SyntaxError describes where and why a parse failed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.Msg)
}

// Parse reads a complete JSON document from data. Trailing non-whitespace
// bytes after the document are an error.
func Parse(data []byte) (*Value, error) {
	return ParseWithDepth(data, DefaultMaxDepth)
}

// ParseWithDepth is Parse with an explicit nesting limit.
func ParseWithDepth(data []byte, maxDepth int) (*Value, error) {
	p := &parser{data: data, maxDepth: maxDepth}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.data) {
		return nil, p.errf("unexpected trailing data")
	}
	return v, nil
}

type parser struct {
	data     []byte
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) errf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) && p.data[p.pos] <= 0x20 {
		p.pos++
	}
}

func (p *parser) parseValue() (*Value, error) {
	if p.pos >= len(p.data) {
		return nil, p.errf("unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == 'n':
		return p.parseLiteral("null", &Value{Kind: Null})
	case c == 't':
		return p.parseLiteral("true", &Value{Kind: True})
	case c == 'f':
		return p.parseLiteral("false", &Value{Kind: False})
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: String, Str: s}, nil
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errf("unexpected character %q", c)
	}
}

func (p *parser) parseLiteral(lit string, v *Value) (*Value, error) {
	if len(p.data)-p.pos < len(lit) || string(p.data[p.pos:p.pos+len(lit)]) != lit {
		return nil, p.errf("invalid literal")
	}
	p.pos += len(lit)
	return v, nil
}

func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
scan:
	for p.pos < len(p.data) {
		switch c := p.data[p.pos]; {
		case c >= '0' && c <= '9', c == '+', c == '-', c == '.', c == 'e', c == 'E':
			p.pos++
		default:
			break scan
		}
	}
	n, err := strconv.ParseFloat(string(p.data[start:p.pos]), 64)
	if err != nil {
		p.pos = start
		return nil, p.errf("invalid number")
	}
	return &Value{Kind: Number, Num: n, Int: int(n)}, nil
}

func (p *parser) parseString() (string, error) {
	// Opening quote already checked by the caller.
	p.pos++
	buf := make([]byte, 0, 16)
	for {
		if p.pos >= len(p.data) {
			return "", p.errf("unterminated string")
		}
		c := p.data[p.pos]
		switch {
		case c == '"':
			p.pos++
			return string(buf), nil
		case c == '\\':
			p.pos++
			if p.pos >= len(p.data) {
				return "", p.errf("unterminated escape")
			}
			switch esc := p.data[p.pos]; esc {
			case '"', '\\', '/':
				buf = append(buf, esc)
				p.pos++
			case 'b':
				buf = append(buf, '\b')
				p.pos++
			case 'f':
				buf = append(buf, '\f')
				p.pos++
			case 'n':
				buf = append(buf, '\n')
				p.pos++
			case 'r':
				buf = append(buf, '\r')
				p.pos++
			case 't':
				buf = append(buf, '\t')
				p.pos++
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				buf = utf8.AppendRune(buf, r)
			default:
				return "", p.errf("invalid escape character %q", esc)
			}
		case c < 0x20:
			return "", p.errf("unescaped control character")
		default:
			buf = append(buf, c)
			p.pos++
		}
	}
}

// parseUnicodeEscape decodes a \uXXXX sequence, pairing UTF-16 surrogates
// when a second escape follows. The cursor sits on the 'u'.
func (p *parser) parseUnicodeEscape() (rune, error) {
	p.pos++
	first, err := p.parseHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(rune(first)) {
		return rune(first), nil
	}
	if len(p.data)-p.pos >= 2 && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
		save := p.pos
		p.pos += 2
		second, err := p.parseHex4()
		if err != nil {
			return 0, err
		}
		if r := utf16.DecodeRune(rune(first), rune(second)); r != utf8.RuneError {
			return r, nil
		}
		p.pos = save
	}
	// Unpaired surrogate.
	return utf8.RuneError, nil
}

func (p *parser) parseHex4() (uint16, error) {
	if len(p.data)-p.pos < 4 {
		return 0, p.errf("truncated unicode escape")
	}
	var n uint16
	for i := 0; i < 4; i++ {
		c := p.data[p.pos]
		n <<= 4
		switch {
		case c >= '0' && c <= '9':
			n |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			n |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= uint16(c-'A') + 10
		default:
			return 0, p.errf("invalid unicode escape")
		}
		p.pos++
	}
	return n, nil
}

func (p *parser) parseArray() (*Value, error) {
	if p.depth >= p.maxDepth {
		return nil, p.errf("nesting too deep")
	}
	p.depth++
	defer func() { p.depth-- }()

	p.pos++ // '['
	arr := &Value{Kind: Array}
	p.skipSpace()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Children = append(arr.Children, elem)
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, p.errf("unterminated array")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errf("expected ',' or ']'")
		}
	}
}

func (p *parser) parseObject() (*Value, error) {
	if p.depth >= p.maxDepth {
		return nil, p.errf("nesting too deep")
	}
	p.depth++
	defer func() { p.depth-- }()

	p.pos++ // '{'
	obj := &Value{Kind: Object}
	p.skipSpace()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		if p.pos >= len(p.data) || p.data[p.pos] != '"' {
			return nil, p.errf("expected object key")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, p.errf("expected ':' after object key")
		}
		p.pos++
		p.skipSpace()
		member, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		member.Key = key
		obj.Children = append(obj.Children, member)
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, p.errf("unterminated object")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errf("expected ',' or '}'")
		}
	}
}
