// Package report derives aggregate views from the transaction list: expense
// totals by category and progress against spending goals. Totals are always
// recomputed from scratch; the document's per-category counters are never
// consulted.
package report

import (
	"fjacquet/finance-ledger/internal/dateutils"
	"fjacquet/finance-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Expenses aggregates expense transactions by category and returns the
// category to total mapping. A non-empty month ("YYYY-MM") restricts the
// aggregation to transactions of that month. Income transactions are ignored
// regardless of their sign.
//
// Expense amounts are stored negative, so totals are negative numbers;
// callers must not expect the sign to be flipped. Categories without a
// matching transaction are absent from the result.
func Expenses(transactions []models.Transaction, month string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		if month != "" {
			ym, err := dateutils.YearMonth(tx.Date)
			if err != nil || ym != month {
				continue
			}
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// GoalStatus describes one category's progress against its spending goal.
// Current carries the sign of the underlying expense totals, so it is
// negative for any category with actual spending and Percent is negative
// with it. That matches what older versions of the tool reported and is
// kept for compatibility rather than corrected here.
type GoalStatus struct {
	Goal    decimal.Decimal `json:"meta"`
	Current decimal.Decimal `json:"gasto_atual"`
	Percent decimal.Decimal `json:"percentual"`
}

// CheckGoals evaluates every stored goal against all-time expense totals.
// Categories without a goal are absent from the result; a goal for a
// category with no transactions yields a zero Current.
func CheckGoals(transactions []models.Transaction, goals map[string]decimal.Decimal) map[string]GoalStatus {
	spent := Expenses(transactions, "")

	statuses := make(map[string]GoalStatus, len(goals))
	for category, goal := range goals {
		current := spent[category]
		percent := decimal.Zero
		if goal.IsPositive() {
			percent = current.Div(goal).Mul(oneHundred)
		}
		statuses[category] = GoalStatus{
			Goal:    goal,
			Current: current,
			Percent: percent,
		}
	}
	return statuses
}
