package dist

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedFrequencies(t *testing.T) {
	w := NewWeighted(
		Choice{"a", 0.7},
		Choice{"b", 0.2},
		Choice{"c", 0.1},
	)
	r := rand.New(rand.NewSource(1))

	counts := map[string]int{}
	const n = 100000
	for i := 0; i < n; i++ {
		counts[w.Sample(r)]++
	}

	require.InDelta(t, 0.7, float64(counts["a"])/n, 0.02)
	require.InDelta(t, 0.2, float64(counts["b"])/n, 0.02)
	require.InDelta(t, 0.1, float64(counts["c"])/n, 0.02)
}

func TestWeightedValues(t *testing.T) {
	w := NewWeighted(Choice{"x", 1}, Choice{"y", 2})
	require.Equal(t, []string{"x", "y"}, w.Values())
}

func TestNormalRespectsBounds(t *testing.T) {
	n := Normal{Mean: 10, StdDev: 20, Min: 0, Max: 15}
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 10000; i++ {
		v := n.Sample(r)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 15.0)
	}
}

func TestNormalMean(t *testing.T) {
	n := Normal{Mean: 12, StdDev: 4, Min: 0, Max: 36}
	r := rand.New(rand.NewSource(3))

	var sum float64
	const count = 50000
	for i := 0; i < count; i++ {
		sum += n.Sample(r)
	}
	require.InDelta(t, 12, sum/count, 0.2)
}

func TestBernoulli(t *testing.T) {
	tests := []struct {
		name string
		p    float64
	}{
		{name: "rare", p: 0.05},
		{name: "coin flip", p: 0.5},
		{name: "common", p: 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bernoulli{P: tt.p}
			r := rand.New(rand.NewSource(4))

			hits := 0
			const n = 50000
			for i := 0; i < n; i++ {
				if b.Sample(r) {
					hits++
				}
			}
			require.InDelta(t, tt.p, float64(hits)/n, 0.01)
		})
	}
}

func TestRangeInclusive(t *testing.T) {
	g := Range{Min: 1, Max: 6}
	r := rand.New(rand.NewSource(5))

	seen := map[int]bool{}
	for i := 0; i < 10000; i++ {
		v := g.Sample(r)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	require.Len(t, seen, 6)
}

func TestLibraryUnknownName(t *testing.T) {
	l := NewLibrary()

	_, err := l.Weighted("nope")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownDistribution))

	_, err = l.Normal("nope")
	require.True(t, errors.Is(err, ErrUnknownDistribution))

	_, err = l.Bernoulli("nope")
	require.True(t, errors.Is(err, ErrUnknownDistribution))

	_, err = l.Range("nope")
	require.True(t, errors.Is(err, ErrUnknownDistribution))
}

func TestDefaultLibraryComplete(t *testing.T) {
	l := DefaultLibrary(12)

	for _, name := range []string{Role, Department, Timezone, TeamType, ProjectStatus, ProjectType, Priority, SubtasksPerTask, StoryType, LastActiveBucket, TagsPerTask, LikesPerComment} {
		w, err := l.Weighted(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, w.Values(), name)
	}
	for _, name := range []string{TeamSize, TasksPerUser} {
		_, err := l.Normal(name)
		require.NoError(t, err, name)
	}
	for _, name := range []string{HasComments, CompletedByIsAssignee, HasAttachment, DependencyRate} {
		_, err := l.Bernoulli(name)
		require.NoError(t, err, name)
	}
	for _, name := range []string{CommentsPerTask, StoriesPerTask, AttachmentsPerTask, FieldsPerProject} {
		_, err := l.Range(name)
		require.NoError(t, err, name)
	}
}

func TestSamplingIsDeterministic(t *testing.T) {
	w := NewWeighted(Choice{"a", 0.5}, Choice{"b", 0.3}, Choice{"c", 0.2})
	n := Normal{Mean: 5, StdDev: 2, Min: 0, Max: 10}

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		require.Equal(t, w.Sample(r1), w.Sample(r2))
		require.True(t, math.Abs(n.Sample(r1)-n.Sample(r2)) == 0)
	}
}
