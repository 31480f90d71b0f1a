package export

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finance-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTransactionsCSV(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "out", "transactions.csv")

	transactions := []models.Transaction{
		{
			Date:        "2024-01-10",
			Amount:      decimal.RequireFromString("-50"),
			Category:    "Transporte",
			Description: "bus",
			Kind:        models.KindExpense,
		},
		{
			Date:        "2024-01-31",
			Amount:      decimal.RequireFromString("1200.50"),
			Category:    "Outros",
			Description: "salary",
			Kind:        models.KindIncome,
		},
	}

	require.NoError(t, WriteTransactionsCSV(transactions, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Data")
	assert.Contains(t, content, "2024-01-10")
	assert.Contains(t, content, "-50")
	assert.Contains(t, content, "Transporte")
	assert.Contains(t, content, "despesa")
	assert.Contains(t, content, "receita")
}

func TestWriteTransactionsCSVEmptySlice(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteTransactionsCSV([]models.Transaction{}, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	// Header only
	assert.Contains(t, string(data), "Data")
}

func TestWriteTransactionsCSVNilSlice(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nil.csv")

	err := WriteTransactionsCSV(nil, csvFile)
	assert.Error(t, err)
	_, statErr := os.Stat(csvFile)
	assert.True(t, os.IsNotExist(statErr))
}
