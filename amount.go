package amount

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	errAmountOverflow = errors.New("amount overflow")
	errNegativeAmount = errors.New("negative amount")
	errTooPrecise     = errors.New("amount is more precise than 1 satoshi")
)

// Amount type represents a non-negative quantity of bitcoins.
// Its zero value corresponds to "0.00000000 BTC".
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	value decimal.Decimal // bitcoins with exactly FracDigits digits after the decimal point
}

// newAmountUnsafe creates a new amount without checking the sign and the scale.
// Use it only if you are absolutely sure that the argument is valid.
func newAmountUnsafe(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// newAmountSafe creates a new amount from a number of satoshis.
func newAmountSafe(sat int64) (Amount, error) {
	if sat < 0 {
		return Amount{}, errNegativeAmount
	}
	d, err := decimal.New(sat, FracDigits)
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(d), nil
}

// newAmountIn creates a new amount from a value denominated in the given unit.
func newAmountIn(d decimal.Decimal, u Unit) (Amount, error) {
	if d.IsNeg() {
		return Amount{}, errNegativeAmount
	}
	scale := u.Scale()
	if d.Scale() > scale {
		d = d.Trim(scale)
		if d.Scale() > scale {
			return Amount{}, errTooPrecise
		}
	}
	if d.Scale() < scale {
		d = d.Pad(scale)
		if d.Scale() < scale {
			return Amount{}, errAmountOverflow
		}
	}
	// At the scale of the unit, the coefficient is the number of satoshis.
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return Amount{}, errAmountOverflow
	}
	return newAmountSafe(int64(coef))
}

// NewAmountFromSat returns an amount equal to the given number of satoshis.
// See also method [Amount.Sat].
//
// NewAmountFromSat returns an error if the number of satoshis is negative.
func NewAmountFromSat(sat int64) (Amount, error) {
	a, err := newAmountSafe(sat)
	if err != nil {
		return Amount{}, fmt.Errorf("converting satoshis: %w", err)
	}
	return a, nil
}

// MustNewAmountFromSat is like [NewAmountFromSat] but panics if the amount
// cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmountFromSat(sat int64) Amount {
	a, err := NewAmountFromSat(sat)
	if err != nil {
		panic(fmt.Sprintf("NewAmountFromSat(%v) failed: %v", sat, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount equal to the given number of bitcoins.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the decimal is negative;
//   - the decimal has non-zero digits beyond the 8th digit after the decimal point;
//   - the number of satoshis cannot be represented as an int64.
func NewAmountFromDecimal(btc decimal.Decimal) (Amount, error) {
	a, err := newAmountIn(btc, BTC)
	if err != nil {
		return Amount{}, fmt.Errorf("converting decimal: %w", err)
	}
	return a, nil
}

// ParseAmount converts a decimal string, denominated in bitcoins, to an amount.
// See also constructors [ParseAmountIn] and [decimal.Parse].
//
// ParseAmount returns an error if:
//   - the string is not a valid decimal number;
//   - the number is negative;
//   - the number has non-zero digits beyond the 8th digit after the decimal point;
//   - the number of satoshis cannot be represented as an int64.
func ParseAmount(btc string) (Amount, error) {
	return ParseAmountIn(btc, BTC)
}

// ParseAmountIn is like [ParseAmount] but the string is denominated
// in the given unit.
// For example, "1.5" mBTC and "150000" sat are both equal to 0.0015 BTC.
func ParseAmountIn(amount string, u Unit) (Amount, error) {
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	a, err := newAmountIn(d, u)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q in %v: %w", amount, u, err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(btc string) Amount {
	a, err := ParseAmount(btc)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", btc, err))
	}
	return a
}

// Sat returns the amount in satoshis.
// See also constructor [NewAmountFromSat].
func (a Amount) Sat() int64 {
	return int64(a.Decimal().Coef()) //nolint:gosec
}

// Decimal returns the amount in bitcoins with exactly 8 digits after
// the decimal point.
func (a Amount) Decimal() decimal.Decimal {
	if a.value.Scale() < FracDigits {
		// Zero value
		return a.value.Pad(FracDigits)
	}
	return a.value
}

// In returns the amount denominated in the given unit, with exactly
// [Unit.Scale] digits after the decimal point.
func (a Amount) In(u Unit) decimal.Decimal {
	d, err := decimal.New(a.Sat(), u.Scale())
	if err != nil {
		// Unit scales never exceed decimal.MaxScale.
		panic(fmt.Sprintf("decimal.New(%v, %v) failed: %v", a.Sat(), u.Scale(), err))
	}
	return d
}

// BTC returns the shortest decimal representation of the amount in bitcoins,
// without trailing zeros after the decimal point:
//
//	1000.1
//	0.00000001
//	5100
//
// This is the form accepted by [SplitDigits].
func (a Amount) BTC() string {
	return a.Decimal().Trim(0).String()
}

// Digits returns the integer and fractional parts of the amount in bitcoins,
// separated into groups of three digits.
// See also function [SplitDigits].
func (a Amount) Digits() (integer, fraction string) {
	return SplitDigits(a.BTC())
}

// DigitsIn is like [Amount.Digits] but denominates the amount in the given unit.
// The fractional part has exactly [Unit.Scale] digits and is empty for units
// without fractional digits.
func (a Amount) DigitsIn(u Unit) (integer, fraction string) {
	return splitDigits(a.In(u).Trim(0).String(), u.Scale())
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	d, e := a.Decimal(), b.Decimal()
	return d.Cmp(e)
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the number of satoshis in the result cannot be
// represented as an int64.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	d, e := a.Decimal(), b.Decimal()
	f, err := d.AddExact(e, FracDigits)
	if err != nil {
		return Amount{}, err
	}
	return newAmountIn(f, BTC)
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if a.Cmp(b) < 0 {
		return Amount{}, errNegativeAmount
	}
	d, e := a.Decimal(), b.Decimal()
	f, err := d.SubExact(e, FracDigits)
	if err != nil {
		return Amount{}, err
	}
	return newAmountIn(f, BTC)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount with exactly 8 digits after the decimal point,
// followed by the unit:
//
//	0.00100000 BTC
//
// See also method [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Decimal().String() + " " + BTC.Code()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example             | Description            |
//	| ------ | ------------------- | ---------------------- |
//	| %s, %v | 1000.10000000 BTC   | Amount and unit        |
//	| %q     | "1000.10000000 BTC" | Quoted amount and unit |
//	| %f     | 1000.10000000       | Amount                 |
//	| %d     | 100010000000        | Amount in satoshis     |
//	| %c     | BTC                 | Unit                   |
//
// The '#' format flag separates the digits into groups of three, for example
// "1 000.10 000 000 BTC" for %#v and "100 010 000 000" for %#d.
// See also function [SplitDigits].
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	grouped := state.Flag('#')

	// Digits
	digs := ""
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		digs = strconv.FormatInt(a.Sat(), 10)
		if grouped {
			digs = groupDigits(digs, 0)
		}
	default:
		if grouped {
			integer, fraction := a.Digits()
			digs = integer + "." + fraction
		} else {
			digs = a.Decimal().String()
		}
	}

	// Unit code and delimiter
	code, codedel := "", 0
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		code = BTC.Code()
	default:
		code = BTC.Code()
		codedel = 1
	}

	// Opening and closing quotes
	quotes := 0
	if verb == 'q' || verb == 'Q' {
		quotes = 2
	}

	// Calculating padding
	width := quotes + len(digs) + codedel + len(code)
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

	// Opening quote
	if quotes > 0 {
		buf = append(buf, '"')
	}

	// Digits, delimiter and unit code
	buf = append(buf, digs...)
	if codedel > 0 {
		buf = append(buf, ' ')
	}
	buf = append(buf, code...)

	// Closing quote
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
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(amount.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
