package main

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/testutil"
)

func TestCSVColumnIndex(t *testing.T) {
	columns, err := csvColumnIndex(csvHeader)
	require.NoError(t, err)
	assert.Equal(t, 1, columns["amount"])
	assert.Equal(t, 4, columns["date"])

	// Column order is free as long as the required names are present.
	columns, err = csvColumnIndex([]string{"date", "category", "type", "amount"})
	require.NoError(t, err)
	assert.Equal(t, 0, columns["date"])

	_, err = csvColumnIndex([]string{"amount", "type", "category"})
	assert.ErrorContains(t, err, "date")
}

func TestParseCSVRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	categories := service.NewCategoryService(db.Storage)
	columns, err := csvColumnIndex([]string{"amount", "type", "category", "date", "memo"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		row        []string
		wantReason bool
	}{
		{
			name: "valid expense",
			row:  []string{"1200", "expense", "食費", "2025-01-15", "ランチ"},
		},
		{
			name: "valid income without memo",
			row:  []string{"300000", "income", "給与", "2025-01-25", ""},
		},
		{
			name:       "unknown category",
			row:        []string{"1200", "expense", "存在しない", "2025-01-15", ""},
			wantReason: true,
		},
		{
			name:       "category of the wrong type",
			row:        []string{"1200", "income", "食費", "2025-01-15", ""},
			wantReason: true,
		},
		{
			name:       "zero amount",
			row:        []string{"0", "expense", "食費", "2025-01-15", ""},
			wantReason: true,
		},
		{
			name:       "bad date",
			row:        []string{"1200", "expense", "食費", "15/01/2025", ""},
			wantReason: true,
		},
		{
			name:       "bad type",
			row:        []string{"1200", "transfer", "食費", "2025-01-15", ""},
			wantReason: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, reason := parseCSVRow(ctx, categories, columns, tt.row)
			if tt.wantReason {
				assert.NotEmpty(t, reason)
				return
			}
			require.Empty(t, reason)
			assert.Equal(t, tt.row[2], input.Category)
			assert.Equal(t, tt.row[3], input.Date)
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	categories := service.NewCategoryService(db.Storage)

	// A file in the export layout parses back into equivalent inputs.
	path := filepath.Join(t.TempDir(), "ledger.csv")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(csvHeader))
	rows := [][]string{
		{"old-id-1", "1200", "expense", "食費", "2025-01-15", "ランチ", "2025-01-15T12:00:00Z", "2025-01-15T12:00:00Z"},
		{"old-id-2", "300000", "income", "給与", "2025-01-25", "", "2025-01-25T09:00:00Z", "2025-01-25T09:00:00Z"},
	}
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	w.Flush()
	require.NoError(t, w.Error())
	require.NoError(t, f.Close())

	records, err := readCSVRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	columns, err := csvColumnIndex(records[0])
	require.NoError(t, err)

	for i, row := range records[1:] {
		input, reason := parseCSVRow(ctx, categories, columns, row)
		require.Empty(t, reason, "row %d", i)
		assert.Equal(t, rows[i][3], input.Category)
		assert.Equal(t, rows[i][4], input.Date)
		assert.Equal(t, rows[i][5], input.Memo)
	}
}
