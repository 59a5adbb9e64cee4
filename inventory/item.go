package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Item is one inventory line.
type Item struct {
	ID       int     `json:"item_id" yaml:"item_id"`
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price" yaml:"price"`
}

// String renders the item as a dict literal with all four fields expanded.
// The name is quoted the same way the report consumers expect a repr: single
// quotes unless the name itself contains one and no double quote.
func (i Item) String() string {
	return fmt.Sprintf("{'item_id': %d, 'name': %s, 'quantity': %d, 'price': %s}",
		i.ID, reprString(i.Name), i.Quantity, formatPrice(i.Price))
}

// formatPrice renders the shortest round-tripping form with a fractional
// part (1350 prints as 1350.0). Decimal exponents below -4 or from 16 up
// switch to exponent notation (1e+21, 1e-05).
func formatPrice(p float64) string {
	switch {
	case math.IsNaN(p):
		return "nan"
	case math.IsInf(p, 1):
		return "inf"
	case math.IsInf(p, -1):
		return "-inf"
	}

	if abs := math.Abs(p); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(p, 'e', -1, 64)
	}

	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func reprString(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case !unicode.IsPrint(r) && r != ' ':
			switch {
			case r <= 0xff:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r <= 0xffff:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
