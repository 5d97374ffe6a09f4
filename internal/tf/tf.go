// Package tf holds the game-side vocabulary shared across the app.
package tf

// Team is the numeric team identifier used by the game and echoed back by
// the backend state endpoint.
type Team int

const (
	UNASSIGNED Team = iota
	SPEC
	RED
	BLU
)

func (t Team) String() string {
	switch t {
	case SPEC:
		return "spectator"
	case RED:
		return "red"
	case BLU:
		return "blu"
	case UNASSIGNED:
		fallthrough
	default:
		return "unassigned"
	}
}

// KickReason is the reason sent along with a vote kick request. The game only
// accepts this fixed set.
type KickReason string

const (
	KickReasonIdle     KickReason = "idle"
	KickReasonScamming KickReason = "scamming"
	KickReasonCheating KickReason = "cheating"
	KickReasonOther    KickReason = "other"
)

// KickReasons lists every accepted vote kick reason.
func KickReasons() []KickReason {
	return []KickReason{KickReasonIdle, KickReasonScamming, KickReasonCheating, KickReasonOther}
}

// ProfileVisibility mirrors the steam community visibility states.
type ProfileVisibility int

const (
	VisibilityPrivate     ProfileVisibility = 1
	VisibilityFriendsOnly ProfileVisibility = 2
	VisibilityPublic      ProfileVisibility = 3
)

func (v ProfileVisibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityFriendsOnly:
		return "friends only"
	case VisibilityPrivate:
		fallthrough
	default:
		return "private"
	}
}
