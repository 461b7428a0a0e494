// Package dist is the library of named statistical distributions used by the
// generators. Every distribution samples from an explicit *rand.Rand so a
// pinned seed reproduces the same sequence, and lookups of undefined names
// fail with ErrUnknownDistribution (a configuration error).
package dist

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownDistribution is returned when a named distribution is not
// registered in the library.
var ErrUnknownDistribution = errors.New("unknown distribution")

// Choice is one outcome of a discrete weighted distribution.
type Choice struct {
	Value  string
	Weight float64
}

// Weighted is a discrete weighted choice over string outcomes.
type Weighted struct {
	choices []Choice
	total   float64
}

// NewWeighted builds a weighted distribution. Weights need not sum to one.
func NewWeighted(choices ...Choice) Weighted {
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	return Weighted{choices: choices, total: total}
}

// Sample draws one outcome.
func (w Weighted) Sample(r *rand.Rand) string {
	target := r.Float64() * w.total
	var acc float64
	for _, c := range w.choices {
		acc += c.Weight
		if target < acc {
			return c.Value
		}
	}
	return w.choices[len(w.choices)-1].Value
}

// Values returns the outcomes in registration order.
func (w Weighted) Values() []string {
	out := make([]string, len(w.choices))
	for i, c := range w.choices {
		out[i] = c.Value
	}
	return out
}

// Normal is a Gaussian clipped to [Min, Max].
type Normal struct {
	Mean, StdDev float64
	Min, Max     float64
}

// Sample draws one clipped value.
func (n Normal) Sample(r *rand.Rand) float64 {
	v := r.NormFloat64()*n.StdDev + n.Mean
	if v < n.Min {
		v = n.Min
	}
	if v > n.Max {
		v = n.Max
	}
	return v
}

// SampleInt draws one clipped value rounded down to an int.
func (n Normal) SampleInt(r *rand.Rand) int {
	return int(n.Sample(r))
}

// Bernoulli is a biased coin.
type Bernoulli struct {
	P float64
}

// Sample draws one trial.
func (b Bernoulli) Sample(r *rand.Rand) bool {
	return r.Float64() < b.P
}

// Range is a uniform integer range, inclusive on both ends.
type Range struct {
	Min, Max int
}

// Sample draws one value.
func (g Range) Sample(r *rand.Rand) int {
	if g.Max <= g.Min {
		return g.Min
	}
	return g.Min + r.Intn(g.Max-g.Min+1)
}

// Library holds named distributions of each kind.
type Library struct {
	weighted  map[string]Weighted
	normal    map[string]Normal
	bernoulli map[string]Bernoulli
	ranges    map[string]Range
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		weighted:  make(map[string]Weighted),
		normal:    make(map[string]Normal),
		bernoulli: make(map[string]Bernoulli),
		ranges:    make(map[string]Range),
	}
}

// RegisterWeighted adds or replaces a weighted distribution.
func (l *Library) RegisterWeighted(name string, w Weighted) { l.weighted[name] = w }

// RegisterNormal adds or replaces a clipped normal distribution.
func (l *Library) RegisterNormal(name string, n Normal) { l.normal[name] = n }

// RegisterBernoulli adds or replaces a Bernoulli distribution.
func (l *Library) RegisterBernoulli(name string, b Bernoulli) { l.bernoulli[name] = b }

// RegisterRange adds or replaces a uniform range.
func (l *Library) RegisterRange(name string, g Range) { l.ranges[name] = g }

// Weighted looks up a weighted distribution by name.
func (l *Library) Weighted(name string) (Weighted, error) {
	w, ok := l.weighted[name]
	if !ok {
		return Weighted{}, fmt.Errorf("%w: %s", ErrUnknownDistribution, name)
	}
	return w, nil
}

// Normal looks up a clipped normal distribution by name.
func (l *Library) Normal(name string) (Normal, error) {
	n, ok := l.normal[name]
	if !ok {
		return Normal{}, fmt.Errorf("%w: %s", ErrUnknownDistribution, name)
	}
	return n, nil
}

// Bernoulli looks up a Bernoulli distribution by name.
func (l *Library) Bernoulli(name string) (Bernoulli, error) {
	b, ok := l.bernoulli[name]
	if !ok {
		return Bernoulli{}, fmt.Errorf("%w: %s", ErrUnknownDistribution, name)
	}
	return b, nil
}

// Range looks up a uniform range by name.
func (l *Library) Range(name string) (Range, error) {
	g, ok := l.ranges[name]
	if !ok {
		return Range{}, fmt.Errorf("%w: %s", ErrUnknownDistribution, name)
	}
	return g, nil
}
