package jsondoc

import (
	"math"
	"strconv"
	"strings"
)

// Print renders the document as compact JSON.
func Print(v *Value) string {
	var b strings.Builder
	printValue(&b, v, false, 0)
	return b.String()
}

// PrintIndent renders the document with newlines and tab indentation.
func PrintIndent(v *Value) string {
	var b strings.Builder
	printValue(&b, v, true, 0)
	return b.String()
}

func printValue(b *strings.Builder, v *Value, indent bool, level int) {
	if v == nil {
		b.WriteString("null")
		return
	}
	switch v.Kind {
	case Null:
		b.WriteString("null")
	case False:
		b.WriteString("false")
	case True:
		b.WriteString("true")
	case Number:
		b.WriteString(formatNumber(v.Num))
	case String:
		printString(b, v.Str)
	case Raw:
		b.WriteString(v.Str)
	case Array:
		printArray(b, v, indent, level)
	case Object:
		printObject(b, v, indent, level)
	}
}

// formatNumber prints with 15 significant digits and retries with full
// precision when that loses information. Non-finite values have no JSON
// representation and print as null, matching what servers in the wild parse.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', 15, 64)
	if back, err := strconv.ParseFloat(s, 64); err != nil || back != f {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return s
}

func printString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			b.WriteString(`\u00`)
			const hex = "0123456789abcdef"
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func printArray(b *strings.Builder, v *Value, indent bool, level int) {
	b.WriteByte('[')
	for i, c := range v.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		if indent {
			b.WriteByte('\n')
			writeIndent(b, level+1)
		}
		printValue(b, c, indent, level+1)
	}
	if indent && len(v.Children) > 0 {
		b.WriteByte('\n')
		writeIndent(b, level)
	}
	b.WriteByte(']')
}

func printObject(b *strings.Builder, v *Value, indent bool, level int) {
	b.WriteByte('{')
	for i, c := range v.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		if indent {
			b.WriteByte('\n')
			writeIndent(b, level+1)
		}
		printString(b, c.Key)
		b.WriteByte(':')
		if indent {
			b.WriteByte(' ')
		}
		printValue(b, c, indent, level+1)
	}
	if indent && len(v.Children) > 0 {
		b.WriteByte('\n')
		writeIndent(b, level)
	}
	b.WriteByte('}')
}

func writeIndent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteByte('\t')
	}
}
