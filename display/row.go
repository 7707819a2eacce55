// Package display arranges formatted amounts into rows of styled text
// segments, the way the wallet front-end shows them: grouped integer digits,
// a decimal point, grouped fractional digits and a unit label.
//
// Rows are plain data. A [Renderer] turns them into terminal text.
package display

import (
	"fmt"
	"strings"

	"github.com/aaroncarlucci/amount"
)

// Size is the text size of a row.
type Size int

// Text sizes, from the smallest paragraph size to the largest heading size.
const (
	P2Size Size = 14
	P1Size Size = 16
	H4Size Size = 20
	H3Size Size = 24
	H2Size Size = 29
	H1Size Size = 40
)

var sizeNames = map[string]Size{
	"p2": P2Size,
	"p1": P1Size,
	"h4": H4Size,
	"h3": H3Size,
	"h2": H2Size,
	"h1": H1Size,
}

// ParseSize converts a size name (p2, p1, h4, h3, h2, h1) to a size.
func ParseSize(name string) (Size, error) {
	s, ok := sizeNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown text size %q", name)
	}
	return s, nil
}

// String returns the size name, or the point size for sizes without a name.
func (s Size) String() string {
	for name, size := range sizeNames {
		if size == s {
			return name
		}
	}
	return fmt.Sprintf("%dpt", int(s))
}

// Spacing returns the number of columns between the number and the label.
// Sizes larger than P1Size are spaced twice as wide.
func (s Size) Spacing() int {
	if s > P1Size {
		return 2
	}
	return 1
}

// Style is the emphasis of a segment.
type Style uint8

const (
	Plain Style = iota
	Bold
	Muted
)

// Segment is a run of text with a single style.
type Segment struct {
	Text  string
	Style Style
}

// Row is a formatted amount: the number segments are written next to each
// other, followed by Spacing columns and the unit label.
type Row struct {
	Number  []Segment
	Label   Segment
	Spacing int
}

// String returns the text of the row without any styling.
func (r Row) String() string {
	var b strings.Builder
	for _, s := range r.Number {
		b.WriteString(s.Text)
	}
	b.WriteString(strings.Repeat(" ", r.Spacing))
	b.WriteString(r.Label.Text)
	return b.String()
}

// Amount returns the row of a confirmed amount in paragraph size.
func Amount(a amount.Amount) Row {
	return AmountWithSize(a, P1Size)
}

// AmountWithSize returns the row of a confirmed amount in bitcoins.
// The integer part is emphasized.
func AmountWithSize(a amount.Amount, size Size) Row {
	return AmountIn(a, amount.BTC, size, true)
}

// UnconfirmedAmountWithSize is like [AmountWithSize] but the integer part
// is not emphasized.
func UnconfirmedAmountWithSize(a amount.Amount, size Size) Row {
	return AmountIn(a, amount.BTC, size, false)
}

// AmountIn returns the row of an amount denominated in the given unit.
// The decimal point is omitted for units without fractional digits.
func AmountIn(a amount.Amount, u amount.Unit, size Size, confirmed bool) Row {
	integer, fraction := a.DigitsIn(u)

	emphasis := Plain
	if confirmed {
		emphasis = Bold
	}

	number := []Segment{{Text: integer, Style: emphasis}}
	if fraction != "" {
		number = append(number,
			Segment{Text: ".", Style: Plain},
			Segment{Text: fraction, Style: Plain},
		)
	}

	return Row{
		Number:  number,
		Label:   Segment{Text: u.Code(), Style: Muted},
		Spacing: size.Spacing(),
	}
}
