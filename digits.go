package amount

import "strings"

// FracDigits is the number of digits after the decimal point required for
// representing one satoshi in bitcoins.
const FracDigits = 8

// SplitDigits splits a decimal string into its integer and fractional parts
// and separates each part into groups of three digits, counted from the
// rightmost digit.
// If the string has no decimal point, the fractional part is assumed to be zero.
// The fractional part is zero-padded to the right up to [FracDigits] digits,
// but never truncated:
//
//	SplitDigits("1000.1")        // "1 000", "10 000 000"
//	SplitDigits("0.00000001")    // "0", "00 000 001"
//	SplitDigits("5100")          // "5 100", "00 000 000"
//
// The string must be a non-negative decimal number with at most one decimal
// point, such as the one returned by [Amount.BTC].
// Other inputs are not validated and produce unspecified groupings.
func SplitDigits(amount string) (integer, fraction string) {
	return splitDigits(amount, FracDigits)
}

// splitDigits is like [SplitDigits] but pads the fractional part to the
// given scale.
func splitDigits(amount string, scale int) (integer, fraction string) {
	intpart, fracpart, _ := strings.Cut(amount, ".")
	return groupDigits(intpart, 0), groupDigits(fracpart, scale)
}

// groupDigits right-pads digits with zeros up to width and inserts
// a space before every third digit counted from the right.
func groupDigits(digits string, width int) string {
	digs := max(len(digits), width)
	if digs == 0 {
		return ""
	}
	seps := (digs - 1) / 3

	buf := make([]byte, digs+seps)
	pos := len(buf) - 1

	for i := digs - 1; i >= 0; i-- {
		// Trailing zeros
		if i >= len(digits) {
			buf[pos] = '0'
		} else {
			buf[pos] = digits[i]
		}
		pos--

		// Group separator
		if i > 0 && (digs-i)%3 == 0 {
			buf[pos] = ' '
			pos--
		}
	}

	return string(buf)
}
