// Package terbilang renders a non-negative integer amount as Indonesian
// words, used for the legally significant "amount in words" line on a
// printed kwitansi.
//
// The output format is a strict contract, including its whitespace: segments
// are joined with single spaces and an empty sub-result still contributes
// its surrounding separators. Round multiples therefore carry a trailing
// space ("Dua Puluh ", "Seratus ") and composites can contain a doubled
// interior space ("Seratus Lima Puluh  Ribu "). Receipt templates are laid
// out around this exact behavior; do not normalize it here.
package terbilang

import "strconv"

// ones covers 0..11. Index 0 is the empty string on purpose: it is the
// building block that lets composite branches recurse through a zero
// remainder without special-casing it.
var ones = [...]string{
	"", "Satu", "Dua", "Tiga", "Empat", "Lima",
	"Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas",
}

// ToWords converts n to its Indonesian word representation.
//
// ToWords(0) returns "". Values below zero or at and above one billion also
// return "": the billions vocabulary is intentionally absent until the
// required wording is confirmed.
func ToWords(n int64) string {
	switch {
	case n < 0:
		return ""
	case n < 12:
		return ones[n]
	case n < 20:
		return ones[n-10] + " Belas"
	case n < 100:
		return ToWords(n/10) + " Puluh " + ToWords(n%10)
	case n < 200:
		return "Seratus " + ToWords(n-100)
	case n < 1000:
		return ToWords(n/100) + " Ratus " + ToWords(n%100)
	case n < 2000:
		return "Seribu " + ToWords(n-1000)
	case n < 1_000_000:
		return ToWords(n/1000) + " Ribu " + ToWords(n%1000)
	case n < 1_000_000_000:
		return ToWords(n/1_000_000) + " Juta " + ToWords(n%1_000_000)
	default:
		return ""
	}
}

// FromString parses s as a base-10 integer and converts it. Useful for
// amounts arriving as raw form input. Invalid input converts as "".
func FromString(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ""
	}
	return ToWords(n)
}
