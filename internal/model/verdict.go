package model

import "github.com/google/uuid"

// Verdict is the transport form of a validation result. Code and Message
// are set only when Valid is false.
type Verdict struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

type BatchRequest struct {
	CPFs   []string `json:"cpfs"`
	Plates []string `json:"plates"`
}

func (r BatchRequest) Size() int {
	return len(r.CPFs) + len(r.Plates)
}

type BatchResult struct {
	ID      uuid.UUID `json:"id"`
	CPFs    []Verdict `json:"cpfs"`
	Plates  []Verdict `json:"plates"`
	Valid   int       `json:"valid"`
	Invalid int       `json:"invalid"`
}

func (r *BatchResult) Tally(v Verdict) {
	if v.Valid {
		r.Valid++
		return
	}
	r.Invalid++
}
