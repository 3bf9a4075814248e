package brdoc

import "strings"

var punctuationReplacer = strings.NewReplacer(".", "", "-", "")

// StripPunctuation removes every '.' and '-' from s, keeping all other
// characters in order.
func StripPunctuation(s string) string {
	return punctuationReplacer.Replace(s)
}
