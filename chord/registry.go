package chord

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/pcollins/harmonia/interval"
)

// canonicalKey is the ascending, comma-joined semitone values of an
// interval set: Major -> "0,4,7". It identifies a root-position quality
// regardless of the order the intervals arrive in.
func canonicalKey(ivs []*interval.Interval) string {
	ss := make([]int, len(ivs))
	for i, iv := range ivs {
		ss[i] = iv.Semitones()
	}
	slices.Sort(ss)
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// Registry indexes chord qualities by name, abbreviation, and canonical
// interval key. Names (including full names) and abbreviations live in
// separate maps so a quality's name can never collide with another's
// abbreviation; the canonical-key map serves interval lookups only.
// A registry is immutable once built.
type Registry struct {
	byName map[string]*Quality
	byAbbr map[string]*Quality
	byKey  map[string]*Quality
	list   []*Quality
}

// NewRegistry expands and indexes a catalog. Duplicate names,
// abbreviations, or canonical keys are construction-time errors:
// an ambiguous catalog is a bug, not a runtime condition.
func NewRegistry(entries []catalogEntry) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Quality),
		byAbbr: make(map[string]*Quality),
		byKey:  make(map[string]*Quality),
	}
	for _, e := range entries {
		ivs, err := expandOffsets(e.offsets)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %v", e.name, err)
		}
		q := &Quality{
			name:      e.name,
			fullName:  e.fullName,
			abbrs:     e.abbrs,
			intervals: ivs,
		}
		if err := r.register(q); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(q *Quality) error {
	names := []string{q.name}
	if q.fullName != "" {
		names = append(names, q.fullName)
	}
	for _, n := range names {
		if _, ok := r.byName[n]; ok {
			return fmt.Errorf("duplicate chord quality name %q", n)
		}
		r.byName[n] = q
	}
	for _, a := range q.abbrs {
		if _, ok := r.byAbbr[a]; ok {
			return fmt.Errorf("duplicate chord quality abbreviation %q", a)
		}
		r.byAbbr[a] = q
	}
	key := canonicalKey(q.intervals)
	if _, ok := r.byKey[key]; ok {
		return fmt.Errorf("ambiguous chord quality %q: interval key %s already registered", q.name, key)
	}
	r.byKey[key] = q
	r.list = append(r.list, q)
	return nil
}

// QualityFromString returns the quality registered under an exact name,
// full name, or abbreviation, in that priority order.
func (r *Registry) QualityFromString(name string) (*Quality, error) {
	if q, ok := r.byName[name]; ok {
		return q, nil
	}
	if q, ok := r.byAbbr[name]; ok {
		return q, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// QualityFromIntervals recognizes a quality from intervals measured
// against an assumed root. The caller's order is meaningful: the first
// interval names what sits in the bass, so a leading third yields the
// first inversion and a leading fifth the second. Inversions with the
// seventh or beyond in the bass are not detected.
func (r *Registry) QualityFromIntervals(items []*interval.Interval) (*Quality, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no intervals given", ErrNotFound)
	}
	q, ok := r.byKey[canonicalKey(items)]
	if !ok {
		return nil, fmt.Errorf("%w: no chord quality matches intervals %v", ErrNotFound, items)
	}
	if n, ok := items[0].Number(); ok {
		switch n {
		case 3:
			return q.Invert(1)
		case 5:
			return q.Invert(2)
		}
	}
	return q, nil
}

// QualityFromSemitones recognizes a quality from raw semitone offsets,
// preserving order for inversion detection.
func (r *Registry) QualityFromSemitones(semitones []int) (*Quality, error) {
	ivs := make([]*interval.Interval, len(semitones))
	for i, s := range semitones {
		if s < 0 || s > 12 {
			return nil, fmt.Errorf("%w: semitone offset %d out of range", ErrNotFound, s)
		}
		ivs[i] = interval.FromSemitones(s, 0)
	}
	return r.QualityFromIntervals(ivs)
}

// Qualities returns every registered quality in catalog order.
func (r *Registry) Qualities() []*Quality {
	out := make([]*Quality, len(r.list))
	copy(out, r.list)
	return out
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(builtinCatalog)
	if err != nil {
		panic("chord: bad built-in catalog: " + err.Error())
	}
	return r
}()

// QualityFromString looks a quality up by name or abbreviation in the
// built-in catalog.
func QualityFromString(name string) (*Quality, error) {
	return defaultRegistry.QualityFromString(name)
}

// QualityFromIntervals recognizes a built-in quality from an ordered
// interval collection.
func QualityFromIntervals(items []*interval.Interval) (*Quality, error) {
	return defaultRegistry.QualityFromIntervals(items)
}

// QualityFromSemitones recognizes a built-in quality from ordered raw
// semitone offsets.
func QualityFromSemitones(semitones []int) (*Quality, error) {
	return defaultRegistry.QualityFromSemitones(semitones)
}

// Qualities returns the built-in catalog in registration order.
func Qualities() []*Quality {
	return defaultRegistry.Qualities()
}
