package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeDeterministic(t *testing.T) {
	k := NewKey("T01", "Manhã")
	first := Synthesize(k)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Synthesize(NewKey("T01", "Manhã")))
	}
}

func TestSynthesizeKnownValue(t *testing.T) {
	// 5381*33 = 177573; 177573 XOR 'a'(97) = 177604.
	assert.Equal(t, uint32(177604), Synthesize(NewKey("", "a")))
	assert.Equal(t, uint32(5381), Synthesize(NewKey("", "")))
}

// Two shifts with the same display name at different units must get
// different identifiers because the raw identifier is part of the key.
func TestSynthesizeCompositeDisambiguates(t *testing.T) {
	a := Synthesize(NewKey("T01", "Manhã"))
	b := Synthesize(NewKey("T02", "Manhã"))
	assert.NotEqual(t, a, b)
}

func TestFoldAbsorbsCasing(t *testing.T) {
	assert.Equal(t, NewKey("T01", "MANHÃ").Fold(), NewKey("t01", "manhã").Fold())
	assert.NotEqual(t, NewKey("T01", "Manhã").Fold(), NewKey("T02", "Manhã").Fold())
}
