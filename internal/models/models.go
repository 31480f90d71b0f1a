// Package models defines the core data structures of the ledger: transactions,
// the category registry, spending goals and the document that ties them together.
package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The persisted document stores amounts as plain JSON numbers
	// (e.g. "valor": -42.5), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind distinguishes expense transactions from income transactions.
// The values match the persisted document format.
type Kind string

const (
	KindExpense Kind = "despesa"
	KindIncome  Kind = "receita"
)

// Transaction is one recorded financial event. Transactions are immutable once
// created; the ledger only appends them.
type Transaction struct {
	Date        string          `json:"data" csv:"Data"`
	Amount      decimal.Decimal `json:"valor" csv:"Valor"`
	Category    string          `json:"categoria" csv:"Categoria"`
	Description string          `json:"descricao" csv:"Descricao"`
	Kind        Kind            `json:"tipo" csv:"Tipo"`
}

// IsExpense returns true if the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// IsIncome returns true if the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// LedgerDocument is the aggregate root persisted as a single JSON file.
//
// Categories maps each category name to a cumulative expense counter. The
// counter is kept for backward compatibility with documents written by older
// versions of the tool; reported totals are always recomputed from the
// transaction list, never read from it.
type LedgerDocument struct {
	Transactions []Transaction              `json:"transacoes"`
	Categories   map[string]decimal.Decimal `json:"categorias"`
	Goals        map[string]decimal.Decimal `json:"metas"`
}

// DefaultCategoryNames is the built-in spending bucket set used when no
// category seed file is configured.
var DefaultCategoryNames = []string{
	"Alimentação",
	"Transporte",
	"Moradia",
	"Entretenimento",
	"Educação",
	"Saúde",
	"Outros",
}

// NewLedgerDocument returns an empty document with the given categories
// registered and zeroed. With no arguments the default category set is used.
func NewLedgerDocument(categories ...string) *LedgerDocument {
	if len(categories) == 0 {
		categories = DefaultCategoryNames
	}
	registry := make(map[string]decimal.Decimal, len(categories))
	for _, name := range categories {
		registry[name] = decimal.Zero
	}
	return &LedgerDocument{
		Transactions: []Transaction{},
		Categories:   registry,
		Goals:        map[string]decimal.Decimal{},
	}
}

// HasCategory reports whether the category is registered in the document.
func (d *LedgerDocument) HasCategory(name string) bool {
	_, ok := d.Categories[name]
	return ok
}

// CategoryNames returns the registered category names in unspecified order.
func (d *LedgerDocument) CategoryNames() []string {
	names := make([]string, 0, len(d.Categories))
	for name := range d.Categories {
		names = append(names, name)
	}
	return names
}
