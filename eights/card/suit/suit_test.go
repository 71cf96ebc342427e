package suit_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    suit.Suit
		valid       bool
	}{
		{description: "full_name", input: "clubs", expected: suit.Clubs, valid: true},
		{description: "upper_case_name", input: "SPADES", expected: suit.Spades, valid: true},
		{description: "first_letter", input: "d", expected: suit.Diamonds, valid: true},
		{description: "symbol", input: "♥", expected: suit.Hearts, valid: true},
		{description: "padded_input", input: "  h ", expected: suit.Hearts, valid: true},
		{description: "unknown_name", input: "stars", valid: false},
		{description: "empty_input", input: "", valid: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result, err := suit.ByName(scenario.input)
			if !scenario.valid {
				require.Error(t, err)
				require.Equal(t, suit.None, result)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, result)
		})
	}
}

func TestIndex(t *testing.T) {
	for i, s := range suit.All {
		require.True(t, s.Valid())
		require.Equal(t, i, s.Index())
	}
	require.False(t, suit.None.Valid())
}

func TestName(t *testing.T) {
	require.Equal(t, "hearts", suit.Hearts.Name())
	require.Equal(t, "♠", suit.Spades.String())
	require.Equal(t, "none", suit.None.Name())
}
