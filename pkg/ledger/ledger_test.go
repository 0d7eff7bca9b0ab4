package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStampsFreshRunID(t *testing.T) {
	source := "2024-06-12 Grocery Store\n  Expenses:Food  $50.23\n  Assets:Checking\n"

	first, err := Parse(source)
	require.NoError(t, err)
	require.False(t, first.HasErrors())

	second, err := Parse(source)
	require.NoError(t, err)

	require.NotEqual(t, first.RunID, second.RunID, "each Parse call should stamp a fresh RunID")
}

func TestParseSurfacesDiagnosticsNotErrors(t *testing.T) {
	result, err := Parse("2024-06-12 *! Test Payee\n")
	require.NoError(t, err, "syntax problems must surface as diagnostics, never as a Go error")
	require.True(t, result.HasErrors())
	require.NotEmpty(t, result.Diagnostics)
}

func TestParseSymbolTables(t *testing.T) {
	result, err := Parse("2024-06-12 X\n  [Assets:V]  $1\n")
	require.NoError(t, err)
	require.True(t, result.Accounts.Has("Assets:V"))
}
