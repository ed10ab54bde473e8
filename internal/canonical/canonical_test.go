package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModality(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Presencial", ModalityPresencial},
		{"PRESENCIAL", ModalityPresencial},
		{"Semipresencial", ModalitySemipresencial},
		{"SEMI-PRESENCIAL", ModalitySemipresencial},
		{"EAD", ModalityEAD},
		{"Educação a Distância", ModalityEAD},
		{"100% Online", ModalityEAD},
		{"", ModalityPresencial},
		{"???", ModalityPresencial},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Modality(tt.in), "input %q", tt.in)
	}
}

// "semi" must win over "presencial" when both fragments are present.
func TestModalitySemiBeatsPresencial(t *testing.T) {
	assert.Equal(t, ModalitySemipresencial, Modality("Semipresencial"))
	assert.Equal(t, ModalitySemipresencial, Modality("semi presencial"))
}

func TestShift(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Manhã", ShiftMorning},
		{"MATUTINO", ShiftMorning},
		{"Tarde", ShiftAfternoon},
		{"Vespertino", ShiftAfternoon},
		{"Noite", ShiftEvening},
		{"Noturno", ShiftEvening},
		{"Integral", ShiftFulltime},
		{"Virtual", ShiftVirtual},
		{"EAD", ShiftVirtual},
		{"A Distância", ShiftVirtual},
		{"", ShiftMorning},
		{"whatever", ShiftMorning},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Shift(tt.in), "input %q", tt.in)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Graduação", LevelGraduacao},
		{"Pós-Graduação", LevelPosGraduacao},
		{"pos-graduacao lato sensu", LevelPosGraduacao},
		{"Curso Técnico", LevelTecnico},
		{"", LevelGraduacao},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.in), "input %q", tt.in)
	}
}
