package gen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestReachable(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	adj := map[uuid.UUID][]uuid.UUID{
		a: {b},
		b: {c},
	}

	tests := []struct {
		name string
		from uuid.UUID
		to   uuid.UUID
		want bool
	}{
		{name: "direct edge", from: a, to: b, want: true},
		{name: "transitive", from: a, to: c, want: true},
		{name: "same node", from: a, to: a, want: true},
		{name: "against edge direction", from: c, to: a, want: false},
		{name: "disconnected", from: a, to: d, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reachable(adj, tt.from, tt.to))
		})
	}
}

func TestReachableRejectsCycleClosingEdge(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	// A depends on B, B depends on C. A candidate edge C -> A is rejected
	// when A already reaches C, since accepting it would close the loop.
	adj := map[uuid.UUID][]uuid.UUID{
		a: {b},
		b: {c},
	}

	require.True(t, reachable(adj, a, c))

	// An edge that only deepens the chain stays acceptable: D -> A is
	// fine because A does not reach D.
	d := uuid.New()
	require.False(t, reachable(adj, a, d))

	adj[d] = append(adj[d], a)
	require.True(t, reachable(adj, d, c))
}
