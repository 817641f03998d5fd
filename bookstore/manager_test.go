package bookstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func TestManagerSaleFlow(t *testing.T) {
	mgr := tempManager(t)

	total, err := mgr.AddSale("2024-02-01", "M001", "B001", 2, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1100), total)

	newTotal, err := mgr.UpdateSaleDiscount(5, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), newTotal)

	require.NoError(t, mgr.DeleteSale(5))

	items, err := mgr.ListSales()
	require.NoError(t, err)
	assert.Len(t, items, 4)

	report, err := mgr.SaleReport()
	require.NoError(t, err)
	assert.Len(t, report, 4)
}

func TestManagerFixtureHelpers(t *testing.T) {
	mgr := tempManager(t)

	require.NoError(t, mgr.AddMember("M010", "Dave", "0945-678901", "dave@example.com"))
	require.NoError(t, mgr.AddBook("B010", "Go Programming", 900, 10))

	total, err := mgr.AddSale("2024-02-01", "M010", "B010", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2700), total)

	b, err := mgr.GetBook("B010")
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.Stock)
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-15", true},
		// The check is shape-only: non-digits pass.
		{"abcd-ef-gh", true},
		{"2024-0115-", true},
		{"2024-1-5", false},
		{"2024-01-155", false},
		{"2024/01/15", false},
		{"2024-01/15", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDate(tt.in); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
