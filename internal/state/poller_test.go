package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDropsStaleResponses(t *testing.T) {
	poller := &Poller{mu: &sync.RWMutex{}}

	first := Snapshot{Server: Server{CurrentMap: "pl_upward"}}
	second := Snapshot{Server: Server{CurrentMap: "pl_badwater"}}

	// The newer fetch lands first.
	applied, ok := poller.apply(2, second)
	require.True(t, ok)
	require.Equal(t, second, applied)

	// The slower, older fetch must not clobber it.
	_, ok = poller.apply(1, first)
	require.False(t, ok)
	require.Equal(t, second, poller.Snapshot())
}

func TestApplyInOrder(t *testing.T) {
	poller := &Poller{mu: &sync.RWMutex{}}

	_, ok := poller.apply(1, Snapshot{GameRunning: true})
	require.True(t, ok)

	next := Snapshot{GameRunning: false, Server: Server{Name: "next"}}
	applied, ok := poller.apply(2, next)
	require.True(t, ok)
	require.Equal(t, next, applied)
	require.Equal(t, next, poller.Snapshot())
}

func TestApplyRejectsEqualSeq(t *testing.T) {
	poller := &Poller{mu: &sync.RWMutex{}}

	_, ok := poller.apply(1, Snapshot{})
	require.True(t, ok)

	_, ok = poller.apply(1, Snapshot{GameRunning: true})
	require.False(t, ok)
}
