package clue

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrUnknownCategory is returned for a category name that does not exist.
var ErrUnknownCategory = errors.New("unknown clue category")

// Category selects which kinds of clue a pool hands out.
type Category string

const (
	CategoryNote     Category = "note"
	CategoryInterval Category = "interval"
	CategoryAll      Category = "all"
)

// ParseCategory validates a category name. "any" is accepted for "all".
func ParseCategory(s string) (Category, error) {
	switch s {
	case "note":
		return CategoryNote, nil
	case "interval":
		return CategoryInterval, nil
	case "all", "any":
		return CategoryAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) includes(k Kind) bool {
	return c == CategoryAll || string(c) == string(k)
}

// Registry returns every clue variant, with interval clues built from s.
func Registry(s IntervalSettings) []Variant {
	return []Variant{TrebleNotes, BassNotes, s.Variant()}
}

// Pool draws random clues from a set of variants. Draws are independent, so
// the same clue can come up twice in a row.
type Pool struct {
	variants []Variant
	rng      *rand.Rand
}

// Option configures a Pool.
type Option func(*Pool)

// WithRand makes the pool draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) { p.rng = r }
}

// WithVariants replaces the default registry.
func WithVariants(vs ...Variant) Option {
	return func(p *Pool) { p.variants = vs }
}

// NewPool creates a pool holding the variants of category c.
func NewPool(c Category, opts ...Option) (*Pool, error) {
	cat, err := ParseCategory(string(c))
	if err != nil {
		return nil, err
	}
	p := &Pool{variants: Registry(DefaultIntervalSettings())}
	for _, opt := range opts {
		opt(p)
	}

	active := make([]Variant, 0, len(p.variants))
	for _, v := range p.variants {
		if cat.includes(v.Kind) {
			active = append(active, v)
		}
	}
	if len(active) == 0 {
		return nil, fmt.Errorf("no clue variants for category %q", c)
	}
	p.variants = active
	return p, nil
}

// Variants returns the active variants.
func (p *Pool) Variants() []Variant {
	out := make([]Variant, len(p.variants))
	copy(out, p.variants)
	return out
}

// Clue picks a variant, then one of its versions, and builds the clue.
func (p *Pool) Clue() (Clue, error) {
	v := p.variants[p.intN(len(p.variants))]
	versions := v.Versions()
	if len(versions) == 0 {
		return nil, fmt.Errorf("clue variant %s has no versions", v.Name)
	}
	version := versions[p.intN(len(versions))]
	c, err := v.New(version)
	if err != nil {
		return nil, fmt.Errorf("build %s clue %q: %w", v.Name, version, err)
	}
	return c, nil
}

func (p *Pool) intN(n int) int {
	if p.rng != nil {
		return p.rng.IntN(n)
	}
	return rand.IntN(n)
}
