package brdoc

import "regexp"

// PlateKind tells which layout a valid plate follows.
type PlateKind string

const (
	PlateLegacy   PlateKind = "legacy"
	PlateMercosul PlateKind = "mercosul"
)

var (
	plateRegex    = regexp.MustCompile(`^[A-Z]{3}(?:[0-9][A-Z][0-9]{2}|-?[0-9]{4})$`)
	mercosulRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// ValidatePlate accepts ABC1234, ABC-1234 and ABC1D23. Letters must be
// uppercase and the whole string has to match.
func ValidatePlate(plate string) error {
	if !plateRegex.MatchString(plate) {
		return &ValidationError{
			code:    CodeInvalidPlate,
			message: "Placa inválida: " + plate,
		}
	}
	return nil
}

// IsPlateValid reports whether ValidatePlate accepts plate.
func IsPlateValid(plate string) bool {
	return ValidatePlate(plate) == nil
}

// PlateFormat validates plate and reports its layout.
func PlateFormat(plate string) (PlateKind, error) {
	if err := ValidatePlate(plate); err != nil {
		return "", err
	}
	if mercosulRegex.MatchString(plate) {
		return PlateMercosul, nil
	}
	return PlateLegacy, nil
}
