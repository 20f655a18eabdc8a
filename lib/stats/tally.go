package stats

import (
	"math"
	"sort"

	"github.com/icco/gamelog/lib/types"
)

// Tally counts occurrences of string keys, remembering the order in which
// each key was first seen.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments the count for key.
func (t *Tally) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Count returns how many times key was added.
func (t *Tally) Count(key string) int {
	return t.counts[key]
}

// Has reports whether key was added at least once.
func (t *Tally) Has(key string) bool {
	return t.counts[key] > 0
}

func (t *Tally) Len() int {
	return len(t.order)
}

// Mode returns the key with the highest count. Ties go to the key seen first.
// The second result is false for an empty tally.
func (t *Tally) Mode() (string, bool) {
	best, bestCount := "", 0
	for _, k := range t.order {
		if c := t.counts[k]; c > bestCount {
			best, bestCount = k, c
		}
	}
	return best, bestCount > 0
}

// Breakdown converts the tally into rows sorted by descending count, keeping
// first-seen order among equal counts. Percentages are relative to total.
func (t *Tally) Breakdown(total int) []types.Breakdown {
	rows := make([]types.Breakdown, 0, len(t.order))
	for _, k := range t.order {
		c := t.counts[k]
		rows = append(rows, types.Breakdown{
			Name:       k,
			Count:      c,
			Percentage: Percent(c, total),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// Percent returns part/whole*100 rounded to the nearest integer. A whole
// below 1 is treated as 1.
func Percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(max(1, whole)) * 100))
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
