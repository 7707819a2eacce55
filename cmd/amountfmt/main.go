// Command amountfmt prints bitcoin amounts with their digits grouped by three.
//
//	$ amountfmt 1000.12345678 0.00000001
//	1 000.12 345 678 BTC
//	0.00 000 001 BTC
//
// Amounts are read from the arguments, or one per line from standard input
// when no argument is given.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
