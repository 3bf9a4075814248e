package brdoc

import (
	"fmt"
	"unicode/utf8"
)

const cpfLength = 11

// ValidateCPF checks length, trivial sequences and both check digits of a
// CPF. Dots and dashes are ignored.
func ValidateCPF(cpf string) error {
	clean := StripPunctuation(cpf)

	if n := utf8.RuneCountInString(clean); n != cpfLength {
		return &ValidationError{
			code:    CodeInvalidCPFLength,
			message: fmt.Sprintf("CPF deve conter 11 dígitos (comprimento atual: %d)", n),
		}
	}

	digits, ok := parseDigits(clean)
	if !ok {
		return invalidCPF(clean)
	}

	if repeated(digits) {
		return invalidCPF(punctuate(clean))
	}

	dv1 := checkDigit(digits[:9], 10)
	dv2 := checkDigit(digits[:10], 11)

	if dv1 != digits[9] || dv2 != digits[10] {
		return invalidCPF(clean)
	}

	return nil
}

// IsCPFValid reports whether ValidateCPF accepts cpf.
func IsCPFValid(cpf string) bool {
	return ValidateCPF(cpf) == nil
}

func invalidCPF(shown string) *ValidationError {
	return &ValidationError{
		code:    CodeInvalidCPF,
		message: "CPF inválido: " + shown,
	}
}

// parseDigits expects len(s) == cpfLength runes; any non ASCII digit fails.
func parseDigits(s string) ([cpfLength]int, bool) {
	var digits [cpfLength]int
	if len(s) != cpfLength {
		return digits, false
	}

	for i := 0; i < cpfLength; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return digits, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

func repeated(digits [cpfLength]int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// checkDigit weights digits from factor downwards.
func checkDigit(digits []int, factor int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (factor - i)
	}

	r := (sum * 10) % 11
	if r >= 10 {
		return 0
	}
	return r
}
