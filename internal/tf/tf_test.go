package tf_test

import (
	"testing"

	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/stretchr/testify/require"
)

func TestTeamString(t *testing.T) {
	require.Equal(t, "unassigned", tf.UNASSIGNED.String())
	require.Equal(t, "spectator", tf.SPEC.String())
	require.Equal(t, "red", tf.RED.String())
	require.Equal(t, "blu", tf.BLU.String())
	require.Equal(t, "unassigned", tf.Team(99).String())
}

func TestKickReasons(t *testing.T) {
	reasons := tf.KickReasons()
	require.Len(t, reasons, 4)
	require.Contains(t, reasons, tf.KickReasonCheating)
}

func TestProfileVisibilityString(t *testing.T) {
	require.Equal(t, "private", tf.VisibilityPrivate.String())
	require.Equal(t, "friends only", tf.VisibilityFriendsOnly.String())
	require.Equal(t, "public", tf.VisibilityPublic.String())
	require.Equal(t, "private", tf.ProfileVisibility(0).String())
}
