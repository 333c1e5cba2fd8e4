// Package fizzbuzz is the demo subject exercised by the built-in
// showcase suite.
package fizzbuzz

import "strconv"

// Say returns "Fizz" for multiples of three, "Buzz" for multiples of
// five, "FizzBuzz" for multiples of both, and the decimal form of n
// otherwise.
func Say(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	}
	return strconv.Itoa(n)
}
