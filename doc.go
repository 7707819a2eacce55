/*
Package amount formats bitcoin amounts for display.
It groups the integer and fractional digits of an amount into clusters of
three, so that magnitudes can be scanned at a glance:

	1 000.12 345 678 BTC

The package leverages the [decimal] package for representing amounts and
combines it with a [Unit] type for the denominations shown next to them.

# Digit Grouping

[SplitDigits] is the core of the package. It takes the decimal string of an
amount in bitcoins and returns its integer and fractional parts, each split
into groups of three digits counted from the right. The fractional part is
always padded to 8 digits, the number of digits needed to represent one satoshi.
SplitDigits is a pure function and is safe to call from multiple goroutines.

# Representation

An [Amount] is a non-negative number of satoshis, stored as a decimal.Decimal
of bitcoins with exactly 8 digits after the decimal point.
Amounts are immutable and safe for concurrent use.

A [Unit] is an integer index into in-memory arrays generated from
scripts/unit/unit_data.csv. Each unit has a code (BTC, mBTC, bits, sat)
and a scale, the number of fractional digits needed to represent one satoshi
in that unit.

# Errors

Errors may occur while parsing amounts and units, and when arithmetic would
produce a negative amount or overflow an int64 number of satoshis.
Constructors return errors; Must* variants panic instead.
SplitDigits never fails: inputs that are not non-negative decimal strings
are a precondition violation and produce unspecified groupings.
*/
package amount
