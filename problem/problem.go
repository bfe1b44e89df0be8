// Package problem holds the interview problem catalog.
package problem

import "fmt"

// Problem describes one interview problem: a markdown statement shown at
// session start and a ladder of progressively stronger hints.
type Problem struct {
	ID        string
	Title     string
	Statement string
	Hints     []string
}

// MaxHintLevel is the number of hint levels each problem carries.
const MaxHintLevel = 4

// Hint returns the hint for a 1-based level, clamped to the available range.
func (p Problem) Hint(level int) string {
	if len(p.Hints) == 0 {
		return ""
	}
	if level < 1 {
		level = 1
	}
	if level > len(p.Hints) {
		level = len(p.Hints)
	}
	return p.Hints[level-1]
}

// ByID returns the problem with the given id.
func ByID(id string) (Problem, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Problem{}, fmt.Errorf("unknown problem: %s", id)
}

// LRUCache returns the canonical interview problem.
func LRUCache() Problem {
	return catalog[0]
}

var catalog = []Problem{
	{
		ID:    "lru_cache",
		Title: "LRU Cache",
		Statement: `# LRU Cache

Implement an LRU (Least Recently Used) cache.

Your implementation must provide:

- a constructor taking a positive capacity
- ` + "`get(key)`" + ` returning the stored value, or reporting a miss
- ` + "`put(key, value)`" + ` inserting or updating an entry

When the cache is at capacity, ` + "`put`" + ` of a new key must evict the
least recently used entry. Both ` + "`get`" + ` and ` + "`put`" + ` count as a use.

Both operations should run in O(1) time.`,
		Hints: []string{
			"What data structure maintains insertion order and allows O(1) removal of arbitrary elements? Think about combining two structures.",
			"A hash map gives O(1) lookup but no ordering. A doubly linked list gives O(1) reordering but no lookup. Use both: the map points at list nodes.",
			"On every get and put of an existing key, move its node to the front of the list. The node at the back is always the eviction candidate.",
			"Keep the map keyed by cache key with the list node as value. On eviction, remove the back node from the list and delete its key from the map in the same step.",
		},
	},
}
