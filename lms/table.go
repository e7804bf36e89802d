package lms

import (
	"fmt"
	"sort"
)

// Table is a named, immutable collection of Records for one
// (standard, indicator) pair. Construction validates, sorts and
// indexes the records once; after NewTable returns, the table is
// read-only for the life of the process and safe for concurrent use.
//
// Two physical views back the same data:
//   - byKey  — integer-cent keyed map for O(1) exact lookup;
//   - sorted — slice ordered by Key for O(log n) neighbor search.
type Table struct {
	name   string
	inc    Increment
	sorted []Record
	byKey  map[int64]Record
}

// NewTable builds a Table from records. Every record must pass
// Validate, sit on the increment's grid, and be unique per
// (sex, measurement); violations surface as ErrBadRecord, ErrOffGrid
// or ErrDuplicateRecord wrapped with the offending entry.
func NewTable(name string, inc Increment, records []Record) (*Table, error) {
	if !inc.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadIncrement, inc)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTable, name)
	}

	t := &Table{
		name:   name,
		inc:    inc,
		sorted: make([]Record, len(records)),
		byKey:  make(map[int64]Record, len(records)),
	}
	copy(t.sorted, records)

	for _, r := range t.sorted {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		key, ok := ExactKey(r.Sex, r.Measurement, inc)
		if !ok {
			return nil, fmt.Errorf("table %q: %w: %v %g", name, ErrOffGrid, r.Sex, r.Measurement)
		}
		if _, exists := t.byKey[key]; exists {
			return nil, fmt.Errorf("table %q: %w: %v %g", name, ErrDuplicateRecord, r.Sex, r.Measurement)
		}
		t.byKey[key] = r
	}

	sort.Slice(t.sorted, func(i, j int) bool {
		return t.sorted[i].Key().Less(t.sorted[j].Key())
	})

	return t, nil
}

// Name returns the table's identifier (typically "<standard>/<indicator>").
func (t *Table) Name() string { return t.name }

// Increment returns the finest measurement spacing the table supports.
func (t *Table) Increment() Increment { return t.inc }

// Len returns the number of records across both sexes.
func (t *Table) Len() int { return len(t.sorted) }

// Lookup returns the exact Record stored for (sex, measurement), or
// ok=false when no exact entry exists — which a caller should read as
// "interpolate", never as "measurement invalid": range validation is
// the standard facade's job, one layer up.
func (t *Table) Lookup(sex Sex, measurement float64) (Record, bool) {
	key, ok := ExactKey(sex, measurement, t.inc)
	if !ok {
		return Record{}, false
	}
	r, ok := t.byKey[key]

	return r, ok
}

// at fetches the record at an exact grid position given in cents.
func (t *Table) at(sex Sex, cents int64) (Record, bool) {
	r, ok := t.byKey[gridKey(sex, cents)]

	return r, ok
}

// Span returns the populated [min, max] measurement window for one sex,
// with ok=false when the table holds no records for that sex.
func (t *Table) Span(sex Sex) (min, max float64, ok bool) {
	lo := t.search(Key{Sex: sex, Measurement: 0})
	if lo == len(t.sorted) || t.sorted[lo].Sex != sex {
		return 0, 0, false
	}
	hi := t.search(Key{Sex: sex + 1, Measurement: 0}) - 1

	return t.sorted[lo].Measurement, t.sorted[hi].Measurement, true
}

// search returns the index of the first record whose Key is ≥ k.
func (t *Table) search(k Key) int {
	return sort.Search(len(t.sorted), func(i int) bool {
		return !t.sorted[i].Key().Less(k)
	})
}

// Neighbors locates the records bracketing measurement for the given
// sex by binary search over the sorted view: lower is the greatest
// entry strictly below, upper the smallest strictly above. When the
// measurement is itself tabulated, that record is returned as both
// bounds. The search makes no assumption about grid spacing, so
// non-uniform tables (mixed 0.5- and 1.0-spaced rows) resolve to
// correctly sided, distinct neighbors by construction.
//
// Returns ErrNoNeighbors when measurement falls outside the populated
// span for that sex.
func (t *Table) Neighbors(sex Sex, measurement float64) (lower, upper Record, err error) {
	i := t.search(Key{Sex: sex, Measurement: measurement})

	if i < len(t.sorted) && t.sorted[i].Sex == sex && t.sorted[i].Measurement == measurement {
		return t.sorted[i], t.sorted[i], nil
	}
	if i == 0 || t.sorted[i-1].Sex != sex {
		return Record{}, Record{}, fmt.Errorf("table %q: %w: %v %g below span",
			t.name, ErrNoNeighbors, sex, measurement)
	}
	if i == len(t.sorted) || t.sorted[i].Sex != sex {
		return Record{}, Record{}, fmt.Errorf("table %q: %w: %v %g above span",
			t.name, ErrNoNeighbors, sex, measurement)
	}

	return t.sorted[i-1], t.sorted[i], nil
}
