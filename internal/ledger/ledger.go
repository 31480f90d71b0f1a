// Package ledger owns the in-memory ledger document and implements every
// mutation and query the application exposes: recording transactions,
// recording goals and filtering transactions by month.
package ledger

import (
	"time"

	"fjacquet/finance-ledger/internal/config"
	"fjacquet/finance-ledger/internal/dateutils"
	"fjacquet/finance-ledger/internal/ledgererror"
	"fjacquet/finance-ledger/internal/models"
	"fjacquet/finance-ledger/internal/report"
	"fjacquet/finance-ledger/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Ledger is the single owner of a ledger document for the lifetime of the
// process. Every mutation validates, applies in memory and persists the whole
// document before returning; a failed save is logged but never rolls back the
// in-memory change (usability over durability).
type Ledger struct {
	store *store.LedgerStore
	doc   *models.LedgerDocument
}

// New loads the document from the given store and returns a ledger owning it.
func New(s *store.LedgerStore) *Ledger {
	return &Ledger{
		store: s,
		doc:   s.Load(),
	}
}

// Document returns the owned ledger document. Callers must treat it as
// read-only; all mutations go through the ledger.
func (l *Ledger) Document() *models.LedgerDocument {
	return l.doc
}

// AddTransaction validates and records one transaction.
//
// Validation order matters and each failure is distinct: the amount must
// parse as a strictly positive number (InvalidAmountError), the category
// must exist in the registry (UnknownCategoryError) and the description
// must be non-empty (EmptyDescriptionError). Nothing is mutated or persisted
// on a validation failure.
//
// On success the amount is stored negated for expenses, the category's
// informational expense counter is bumped, the transaction is appended and
// the document persisted.
func (l *Ledger) AddTransaction(amount, category, description string, date time.Time, kind models.Kind) error {
	value, err := decimal.NewFromString(amount)
	if err != nil || !value.IsPositive() {
		return &ledgererror.InvalidAmountError{Value: amount}
	}

	if !l.doc.HasCategory(category) {
		return &ledgererror.UnknownCategoryError{Category: category}
	}

	if description == "" {
		return &ledgererror.EmptyDescriptionError{}
	}

	signed := value
	if kind == models.KindExpense {
		signed = value.Neg()
	}

	tx := models.Transaction{
		Date:        dateutils.ToISODate(date),
		Amount:      signed,
		Category:    category,
		Description: description,
		Kind:        kind,
	}
	l.doc.Transactions = append(l.doc.Transactions, tx)

	// Running per-category counter, kept for file compatibility only.
	// Reports recompute totals from the transaction list.
	if kind == models.KindExpense {
		l.doc.Categories[category] = l.doc.Categories[category].Add(value)
	}

	l.persist()

	log.WithFields(logrus.Fields{
		"category": category,
		"amount":   signed.String(),
		"kind":     string(kind),
	}).Debug("Recorded transaction")
	return nil
}

// AddGoal validates and records a spending goal for a category, overwriting
// any previous goal. It reports failure as a plain false return: an amount
// that does not parse or is not strictly positive leaves the document
// untouched. The category is deliberately not checked against the registry;
// a goal may target a category that has never seen a transaction.
func (l *Ledger) AddGoal(category, amount string) bool {
	value, err := decimal.NewFromString(amount)
	if err != nil || !value.IsPositive() {
		return false
	}

	l.doc.Goals[category] = value
	l.persist()

	log.WithFields(logrus.Fields{
		"category": category,
		"goal":     value.String(),
	}).Debug("Recorded goal")
	return true
}

// Transactions returns recorded transactions in insertion order. A non-empty
// month ("YYYY-MM") restricts the result to transactions of that month,
// preserving relative order.
func (l *Ledger) Transactions(month string) []models.Transaction {
	if month == "" {
		return l.doc.Transactions
	}

	var filtered []models.Transaction
	for _, tx := range l.doc.Transactions {
		ym, err := dateutils.YearMonth(tx.Date)
		if err != nil {
			log.WithError(err).Warnf("Skipping transaction with unparsable date %q", tx.Date)
			continue
		}
		if ym == month {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// ExpenseReport aggregates expense totals by category, optionally restricted
// to a month. See report.Expenses for the exact semantics.
func (l *Ledger) ExpenseReport(month string) map[string]decimal.Decimal {
	return report.Expenses(l.doc.Transactions, month)
}

// CheckGoals evaluates every stored goal against all-time expense totals.
func (l *Ledger) CheckGoals() map[string]report.GoalStatus {
	return report.CheckGoals(l.doc.Transactions, l.doc.Goals)
}

// persist writes the document through the store. Save failures are logged
// and swallowed: the in-memory state stays valid for the rest of the session
// and the next successful save reconciles the file.
func (l *Ledger) persist() {
	if err := l.store.Save(l.doc); err != nil {
		log.WithError(err).Error("Failed to save ledger, keeping changes in memory")
	}
}
