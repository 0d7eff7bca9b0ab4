package diag

import (
	"fmt"
	"sort"

	"github.com/ledgerfmt/ledgerparse/internal/span"
)

// LineTable resolves byte offsets into 1-based line/column pairs, the
// separate "line-table built over the buffer" collaborators are expected
// to construct (spec.md §6) rather than have the parser carry position
// information itself.
type LineTable struct {
	// lineStarts[i] is the byte offset of line i+1 (line 1 starts at 0).
	lineStarts []int
}

// NewLineTable scans source once and records every line start.
func NewLineTable(source string) *LineTable {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineTable{lineStarts: starts}
}

// Position returns the 1-based line and column for a byte offset.
func (lt *LineTable) Position(offset int) (line, column int) {
	line = sort.Search(len(lt.lineStarts), func(i int) bool {
		return lt.lineStarts[i] > offset
	})
	column = offset - lt.lineStarts[line-1] + 1
	return line, column
}

// Format renders a diagnostic as "file:line:col: message (CODE)", the
// shape the CLI driver prints to stderr.
func (lt *LineTable) Format(filename string, d Diagnostic) string {
	line, col := lt.Position(d.Span.Start)
	return fmt.Sprintf("%s:%d:%d: %s (%s)", filename, line, col, d.Message, d.Kind.Code())
}

// SpanText returns the slice of source the diagnostic's span covers,
// useful for CLI snippets. sp must lie within source's bounds.
func SpanText(source string, sp span.Span) string {
	return sp.Slice(source)
}
