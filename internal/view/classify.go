package view

import (
	"slices"

	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/tf"
)

// Category is the presentation classification of a table row, used only for
// row styling.
type Category int

const (
	CategoryDisconnected Category = iota
	CategoryMatchCheater
	CategoryMatchBot
	CategoryMatchOther
	CategoryTeamRed
	CategoryTeamBlu
	CategoryConnecting
)

func (c Category) String() string {
	switch c {
	case CategoryDisconnected:
		return "disconnected"
	case CategoryMatchCheater:
		return "cheater"
	case CategoryMatchBot:
		return "bot"
	case CategoryMatchOther:
		return "match"
	case CategoryTeamRed:
		return "red"
	case CategoryTeamBlu:
		return "blu"
	case CategoryConnecting:
		fallthrough
	default:
		return "connecting"
	}
}

const (
	attrCheater = "cheater"
	attrBot     = "bot"
)

// Classify maps a player to its row category. Rule order is a behavioural
// contract: a cheater match must win over a bot match, and any match must win
// over team colour.
func Classify(player state.Player) Category {
	if !player.Connected {
		return CategoryDisconnected
	}

	if len(player.Matches) > 0 {
		for _, match := range player.Matches {
			if slices.Contains(match.Attributes, attrCheater) {
				return CategoryMatchCheater
			}
		}
		for _, match := range player.Matches {
			if slices.Contains(match.Attributes, attrBot) {
				return CategoryMatchBot
			}
		}

		return CategoryMatchOther
	}

	switch player.Team {
	case tf.RED:
		return CategoryTeamRed
	case tf.BLU:
		return CategoryTeamBlu
	case tf.SPEC, tf.UNASSIGNED:
		fallthrough
	default:
		return CategoryConnecting
	}
}
