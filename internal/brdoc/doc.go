// Package brdoc validates Brazilian identifiers: the individual taxpayer
// number (CPF) and vehicle license plates in both the legacy and the
// Mercosul layouts.
//
// Every function is a pure function of its input. A nil error means the
// value is valid; any failure is a *ValidationError carrying a Code and a
// ready-to-display message in Portuguese.
//
//	if err := brdoc.ValidateCPF("529.982.247-25"); err != nil {
//	    if errors.Is(err, brdoc.ErrInvalidCPFLength) {
//	        // wrong number of digits
//	    }
//	}
//
// The package holds no mutable state and is safe for concurrent use.
package brdoc
