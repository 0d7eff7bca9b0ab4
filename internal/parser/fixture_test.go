package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"

	"github.com/ledgerfmt/ledgerparse/internal/group"
)

// TestFixtureRoundTrip parses every .ledger fixture under testdata and
// checks the universal round-trip invariant (spec.md §8): concatenating
// every token's outer text in lexer order reproduces the input exactly,
// regardless of whether the input is well-formed.
func TestFixtureRoundTrip(t *testing.T) {
	fixtures, err := filepath.Glob("testdata/*.ledger")
	if err != nil {
		t.Fatal(err)
	}
	if len(fixtures) == 0 {
		t.Fatal("no fixtures found under testdata/")
	}

	for _, path := range fixtures {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			source := string(raw)
			if got := render(source); got != source {
				t.Errorf("render(parse(%s)) did not reproduce the fixture exactly", path)
			}
		})
	}
}

// TestFixtureDiagnosticSnapshots snapshots the diagnostic list produced for
// each fixture, mirroring the teacher's go-snaps fixture harness
// (internal/interp/fixture_test.go) but scoped to this grammar's
// diagnostics instead of full script execution output.
func TestFixtureDiagnosticSnapshots(t *testing.T) {
	fixtures, err := filepath.Glob("testdata/*.ledger")
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range fixtures {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			result := Parse(string(raw))

			var summary string
			for _, d := range result.Diagnostics {
				summary += d.Kind.Code() + ": " + d.Message + "\n"
			}
			if summary == "" {
				summary = "(no diagnostics)\n"
			}
			snaps.MatchSnapshot(t, filepath.Base(path), summary)
		})
	}
}

// TestParseIsDeterministic parses the same source twice and requires the
// diagnostic lists to match exactly, since spec.md §5 rules out any hidden
// state that could make two parses of identical input diverge.
func TestParseIsDeterministic(t *testing.T) {
	source := "2024-06-12 Grocery Store\n  Expenses:Food  $50.23\n  Assets:Checking\n"

	first := Parse(source)
	second := Parse(source)

	if diff := cmp.Diff(first.Diagnostics, second.Diagnostics); diff != "" {
		t.Errorf("two parses of identical input diverged (-first +second):\n%s", diff)
	}
}

// TestDateGroupsEqualAcrossParses compares two DateNode Groups for
// structural equality, exercising go-cmp's unexported-field support via
// AllowUnexported the way a larger AST-diffing test would.
func TestDateGroupsEqualAcrossParses(t *testing.T) {
	source := "2024-06-12 X\n  Assets:Cash  $1\n"

	p1 := New(source)
	date1, ok := p1.parseDate()
	if !ok {
		t.Fatal("expected parseDate to succeed")
	}

	p2 := New(source)
	date2, ok := p2.parseDate()
	if !ok {
		t.Fatal("expected parseDate to succeed")
	}

	if diff := cmp.Diff(date1.Raw, date2.Raw, cmp.AllowUnexported(group.Group{})); diff != "" {
		t.Errorf("identical input produced different date Groups (-first +second):\n%s\n%s",
			diff, pretty.Sprint(date1.Raw))
	}
}
