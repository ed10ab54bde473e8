// Package canonical maps the free-text modality, shift and level strings of
// the partner feed into a small fixed vocabulary.
//
// Matching is case-insensitive substring matching against Portuguese keyword
// fragments, checked in a fixed priority order: more specific fragments come
// first ("semi" before "presencial"), otherwise "Semipresencial" would match
// the broader term. Reordering the checks changes classification outcomes,
// so the order here is load-bearing. Every function is total; input that
// matches nothing lands in the first category.
package canonical

import "strings"

// Modality vocabulary.
const (
	ModalityPresencial     = "presencial"
	ModalitySemipresencial = "semipresencial"
	ModalityEAD            = "ead"
)

// Shift vocabulary.
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftEvening   = "evening"
	ShiftFulltime  = "fulltime"
	ShiftVirtual   = "virtual"
)

// Level vocabulary.
const (
	LevelGraduacao    = "graduacao"
	LevelPosGraduacao = "pos-graduacao"
	LevelTecnico      = "tecnico"
)

// Modality classifies a free-text modality string.
func Modality(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "semi"):
		return ModalitySemipresencial
	case strings.Contains(t, "ead"),
		strings.Contains(t, "dist"),
		strings.Contains(t, "online"):
		return ModalityEAD
	case strings.Contains(t, "presencial"):
		return ModalityPresencial
	default:
		return ModalityPresencial
	}
}

// Shift classifies a free-text shift name.
func Shift(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "virtual"),
		strings.Contains(t, "ead"),
		strings.Contains(t, "dist"):
		return ShiftVirtual
	case strings.Contains(t, "integral"):
		return ShiftFulltime
	case strings.Contains(t, "noit"), strings.Contains(t, "noturn"):
		return ShiftEvening
	case strings.Contains(t, "tarde"), strings.Contains(t, "vespertin"):
		return ShiftAfternoon
	case strings.Contains(t, "manh"), strings.Contains(t, "matutin"):
		return ShiftMorning
	default:
		return ShiftMorning
	}
}

// Level classifies a free-text education level. "pos" is checked before
// "gradua" for the same reason "semi" precedes "presencial".
func Level(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "pos"), strings.Contains(t, "pós"):
		return LevelPosGraduacao
	case strings.Contains(t, "tecn"), strings.Contains(t, "técn"):
		return LevelTecnico
	case strings.Contains(t, "gradua"):
		return LevelGraduacao
	default:
		return LevelGraduacao
	}
}
