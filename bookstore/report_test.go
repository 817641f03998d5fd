package bookstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleReportSeedRows(t *testing.T) {
	db := tempDB(t)

	report, err := db.SaleReport()
	require.NoError(t, err)
	require.Len(t, report, 4)

	first := report[0]
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, int64(1), first.SaleID)
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, "Alice", first.MemberName)
	assert.Equal(t, "Python Programming", first.BookTitle)
	assert.Equal(t, int64(600), first.UnitPrice)
	assert.Equal(t, int64(2), first.Quantity)
	assert.Equal(t, int64(100), first.Discount)
	assert.Equal(t, int64(1100), first.Total)

	for i := 1; i < len(report); i++ {
		assert.Greater(t, report[i].SaleID, report[i-1].SaleID, "rows must be ordered by sale id")
	}
}

// Sequence numbers are list positions, so a gap in sale ids must not
// produce a gap in sequence numbers.
func TestSaleReportSequenceNumbers(t *testing.T) {
	db := tempDB(t)

	require.NoError(t, db.DeleteSale(2))

	report, err := db.SaleReport()
	require.NoError(t, err)
	require.Len(t, report, 3)

	wantIDs := []int64{1, 3, 4}
	for i, row := range report {
		assert.Equal(t, i+1, row.Seq)
		assert.Equal(t, wantIDs[i], row.SaleID)
	}
}

func TestSaleReportEmpty(t *testing.T) {
	db := tempDB(t)

	for id := int64(1); id <= 4; id++ {
		require.NoError(t, db.DeleteSale(id))
	}

	report, err := db.SaleReport()
	require.NoError(t, err)
	assert.Empty(t, report)
}
