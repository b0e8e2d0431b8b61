package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooksBulgarian(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bulgarian question", "Какъв е срокът на изпитване?", true},
		{"english question", "What is the probation period?", false},
		{"single cyrillic letter", "Art. 71 а", true},
		{"block start", "Ѐ", true},
		{"block end", "ӿ", true},
		{"just past block", "Ԁ", false},
		{"empty", "", false},
		{"digits only", "71", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, LooksBulgarian(tc.text))
		})
	}
}

func TestFallbackMessages(t *testing.T) {
	require.Equal(t, CouldNotProcessBG, CouldNotProcessMessage("Какво?"))
	require.Equal(t, CouldNotProcessEN, CouldNotProcessMessage("What?"))
	require.Equal(t, UnavailableBG, UnavailableMessage("Какво?"))
	require.Equal(t, UnavailableEN, UnavailableMessage(""))
}
