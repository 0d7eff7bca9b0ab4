// Package symtab implements the first-declaration-wins symbol tables the
// parser builds for account and payee names (spec.md §5), grounded on the
// teacher's scope/environment map pattern but reduced to what a single-pass
// lossless parser needs: a name-to-span map that never overwrites an
// earlier entry.
package symtab

import "github.com/ledgerfmt/ledgerparse/internal/span"

// Table maps declared names to the span of their first occurrence. Later
// occurrences of the same name are not recorded again — spec.md §5 treats
// the first declaration as authoritative for diagnostics and tooling that
// need "go to declaration" behavior.
type Table struct {
	entries map[string]span.Span
	order   []string
}

// New creates an empty Table.
func New() *Table {
	return &Table{entries: make(map[string]span.Span)}
}

// Add records name's span if name has not been seen before. Reports whether
// this call was the one that recorded it.
func (t *Table) Add(name string, sp span.Span) bool {
	if _, exists := t.entries[name]; exists {
		return false
	}
	t.entries[name] = sp
	t.order = append(t.order, name)
	return true
}

// Has reports whether name has been recorded.
func (t *Table) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Get returns the span of name's first declaration.
func (t *Table) Get(name string) (span.Span, bool) {
	sp, ok := t.entries[name]
	return sp, ok
}

// Names returns the recorded names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct recorded names.
func (t *Table) Len() int {
	return len(t.entries)
}
