package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yktomo/kakeibo/internal/model"
)

func TestParseMonth(t *testing.T) {
	year, month, err := parseMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	_, _, err = parseMonth("2025/01")
	assert.Error(t, err)

	_, _, err = parseMonth("2025-13")
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	got, err := parseType("income")
	require.NoError(t, err)
	assert.Equal(t, model.TypeIncome, got)

	got, err = parseType("expense")
	require.NoError(t, err)
	assert.Equal(t, model.TypeExpense, got)

	_, err = parseType("transfer")
	assert.Error(t, err)

	_, err = parseType("")
	assert.Error(t, err)
}

func TestSignedAmount(t *testing.T) {
	income := model.Transaction{Type: model.TypeIncome, Amount: 300000}
	assert.Equal(t, "+￥300,000", signedAmount(income))

	expense := model.Transaction{Type: model.TypeExpense, Amount: 1200}
	assert.Equal(t, "-￥1,200", signedAmount(expense))
}
