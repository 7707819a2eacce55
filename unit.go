package amount

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a denomination in which bitcoin amounts are displayed.
// The zero value is [BTC].
//
// Unit is implemented as an integer index into in-memory arrays that store
// the unit code and its scale.
// When persisting a unit value, use the code returned by the [Unit.Code]
// method rather than the integer index.
type Unit uint8

var errInvalidUnit = errors.New("invalid unit")

// ParseUnit converts a string to a unit.
// Codes and their common spellings are accepted:
//
//	BTC   btc
//	mBTC  mbtc  MBTC
//	bits  bit   uBTC  ubtc  UBTC  µBTC
//	sat   sats  SAT   satoshi  satoshis
//
// ParseUnit returns an error if the string does not name a known unit.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[unit]
	if !ok {
		return BTC, fmt.Errorf("%w %q", errInvalidUnit, unit)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// Code returns the label shown next to amounts denominated in the unit.
func (u Unit) Code() string {
	if int(u) >= len(codeLookup) {
		return fmt.Sprintf("Unit(%d)", u)
	}
	return codeLookup[u]
}

// Scale returns the number of digits after the decimal point required for
// representing one satoshi in the unit.
// For example, 1 sat is 0.00000001 BTC, so the scale of BTC is 8,
// and 1 sat is 0.01 bits, so the scale of bits is 2.
func (u Unit) Scale() int {
	if int(u) >= len(scaleLookup) {
		return FracDigits
	}
	return int(scaleLookup[u])
}

// String implements the [fmt.Stringer] interface and returns the unit code.
// See also method [Unit.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", BTC, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Unit.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	code := u.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", BTC, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (u Unit) AppendText(text []byte) ([]byte, error) {
	return append(text, u.Code()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Unit.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description |
//	| ---------- | ------- | ----------- |
//	| %c, %s, %v | mBTC    | Unit        |
//	| %q         | "mBTC"  | Quoted unit |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	code := u.Code()

	// Opening and closing quotes
	quotes := 0
	if verb == 'q' || verb == 'Q' {
		quotes = 2
	}

	// Calculating padding
	width := quotes + len(code)
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for range lspaces {
		buf = append(buf, ' ')
	}

	// Unit code
	if quotes > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, code...)
	if quotes > 0 {
		buf = append(buf, '"')
	}

	// Trailing spaces
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(amount.Unit="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
