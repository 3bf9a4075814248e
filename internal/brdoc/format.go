package brdoc

import (
	"fmt"
	"unicode/utf8"
)

// FormatCPF renders cpf as ddd.ddd.ddd-dd. It does not verify check digits;
// it only requires 11 characters once dots and dashes are removed.
func FormatCPF(cpf string) (string, error) {
	clean := StripPunctuation(cpf)

	if n := utf8.RuneCountInString(clean); n != cpfLength {
		return "", &ValidationError{
			code:    CodeInvalidCPFLength,
			message: fmt.Sprintf("CPF deve conter 11 dígitos (comprimento atual: %d)", n),
		}
	}

	return punctuate(clean), nil
}

// punctuate assumes s has exactly cpfLength runes. It cuts s at rune
// boundaries so the original bytes, invalid UTF-8 included, are kept.
func punctuate(s string) string {
	cuts := make([]int, 0, cpfLength+1)
	for i := range s {
		cuts = append(cuts, i)
	}
	cuts = append(cuts, len(s))

	return s[cuts[0]:cuts[3]] + "." + s[cuts[3]:cuts[6]] + "." + s[cuts[6]:cuts[9]] + "-" + s[cuts[9]:cuts[11]]
}
