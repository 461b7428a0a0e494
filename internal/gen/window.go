package gen

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Window is the simulation clock: all generated activity timestamps fall
// within [Start, Now]. Entity roots (the organization, founding users) may
// predate Start but never Now.
type Window struct {
	Start time.Time
	Now   time.Time
}

// newID draws a UUID from the seeded random stream so IDs are reproducible
// for a fixed seed.
func newID(r *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// math/rand readers do not fail
		panic(err)
	}
	return id
}

// timeBetween samples a uniform instant in [a, b]. Inverted bounds collapse
// to a.
func timeBetween(r *rand.Rand, a, b time.Time) time.Time {
	if !b.After(a) {
		return a
	}
	d := b.Sub(a)
	return a.Add(time.Duration(r.Int63n(int64(d) + 1)))
}

// minTime returns the earlier of two instants.
func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// maxTime returns the later of two instants.
func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// pick returns a uniform element of a non-empty slice.
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// sample returns n distinct elements of items in random order. n larger
// than the slice returns a permutation of everything.
func sample[T any](r *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for _, idx := range r.Perm(len(items))[:n] {
		out = append(out, items[idx])
	}
	return out
}

func ptr[T any](v T) *T { return &v }
