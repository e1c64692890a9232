// Package stats accumulates byte counts per message type.
package stats

// Entry is one row of the final summary.
type Entry struct {
	Type string `json:"type" yaml:"type"`
	Size uint64 `json:"size" yaml:"size"`
}

// Tally maps type names to accumulated byte counts, remembering the order in
// which each type was first seen. It is owned by a single pass over one file
// and is not safe for concurrent use.
type Tally struct {
	order []string
	sizes map[string]uint64
}

// New creates an empty Tally.
func New() *Tally {
	return &Tally{sizes: make(map[string]uint64)}
}

// Add records size bytes against typeName. A type seen for the first time is
// appended to the iteration order; an existing type accumulates.
func (t *Tally) Add(typeName string, size int) {
	if _, ok := t.sizes[typeName]; !ok {
		t.order = append(t.order, typeName)
	}
	t.sizes[typeName] += uint64(size)
}

// Len returns the number of distinct types.
func (t *Tally) Len() int {
	return len(t.order)
}

// Entries returns the rows in first-seen order. The slice is never nil.
func (t *Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, typeName := range t.order {
		entries = append(entries, Entry{Type: typeName, Size: t.sizes[typeName]})
	}
	return entries
}

// Total returns the sum of all accumulated sizes. For any run it equals the
// combined byte length of every line that was tallied.
func (t *Tally) Total() uint64 {
	var total uint64
	for _, size := range t.sizes {
		total += size
	}
	return total
}
