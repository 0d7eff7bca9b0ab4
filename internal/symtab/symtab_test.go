package symtab

import (
	"testing"

	"github.com/ledgerfmt/ledgerparse/internal/span"
)

func TestAddFirstWriteWins(t *testing.T) {
	tab := New()

	if ok := tab.Add("Assets:Cash", span.New(0, 11)); !ok {
		t.Fatal("first Add should report true")
	}
	if ok := tab.Add("Assets:Cash", span.New(20, 31)); ok {
		t.Fatal("second Add of the same name should report false")
	}

	sp, ok := tab.Get("Assets:Cash")
	if !ok {
		t.Fatal("Get should find the name")
	}
	if sp != span.New(0, 11) {
		t.Fatalf("Get returned %v, want the first declaration's span", sp)
	}
}

func TestHasAndLen(t *testing.T) {
	tab := New()
	if tab.Has("x") {
		t.Fatal("empty table should not have \"x\"")
	}
	tab.Add("x", span.New(0, 1))
	tab.Add("y", span.New(2, 3))
	if !tab.Has("x") || !tab.Has("y") {
		t.Fatal("table should have both added names")
	}
	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}
}

func TestNamesPreservesInsertionOrder(t *testing.T) {
	tab := New()
	tab.Add("c", span.New(0, 1))
	tab.Add("a", span.New(1, 2))
	tab.Add("b", span.New(2, 3))
	tab.Add("a", span.New(3, 4)) // duplicate, should not reappear or reorder

	names := tab.Names()
	want := []string{"c", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestGetMissing(t *testing.T) {
	tab := New()
	if _, ok := tab.Get("nope"); ok {
		t.Fatal("Get on an unknown name should report false")
	}
}
