package view_test

import (
	"testing"

	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/bd-tui/internal/view"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		name     string
		player   state.Player
		expected view.Category
	}

	cases := []testCase{
		{
			name:     "disconnected wins over everything",
			player:   state.Player{Connected: false, Team: tf.RED, Matches: []bdapi.Match{{Attributes: []string{"cheater"}}}},
			expected: view.CategoryDisconnected,
		},
		{
			name:     "cheater match wins over team colour",
			player:   state.Player{Connected: true, Team: tf.RED, Matches: []bdapi.Match{{Attributes: []string{"cheater"}}}},
			expected: view.CategoryMatchCheater,
		},
		{
			name: "cheater wins over bot across matches",
			player: state.Player{Connected: true, Matches: []bdapi.Match{
				{Attributes: []string{"bot"}},
				{Attributes: []string{"cheater"}},
			}},
			expected: view.CategoryMatchCheater,
		},
		{
			name:     "bot match",
			player:   state.Player{Connected: true, Team: tf.BLU, Matches: []bdapi.Match{{Attributes: []string{"bot"}}}},
			expected: view.CategoryMatchBot,
		},
		{
			name:     "other match",
			player:   state.Player{Connected: true, Matches: []bdapi.Match{{Attributes: []string{"liar"}}}},
			expected: view.CategoryMatchOther,
		},
		{
			name:     "red team",
			player:   state.Player{Connected: true, Team: tf.RED},
			expected: view.CategoryTeamRed,
		},
		{
			name:     "blu team",
			player:   state.Player{Connected: true, Team: tf.BLU},
			expected: view.CategoryTeamBlu,
		},
		{
			name:     "spectator is connecting",
			player:   state.Player{Connected: true, Team: tf.SPEC},
			expected: view.CategoryConnecting,
		},
		{
			name:     "unassigned is connecting",
			player:   state.Player{Connected: true, Team: tf.UNASSIGNED},
			expected: view.CategoryConnecting,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, view.Classify(testCase.player))
		})
	}
}
