// Package list handles the transaction listing command
package list

import (
	"fmt"

	"fjacquet/finance-ledger/cmd/root"
	"fjacquet/finance-ledger/internal/dateutils"
	"fjacquet/finance-ledger/internal/export"
	"fjacquet/finance-ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions",
	Long: `List transactions in insertion order, optionally restricted to one month
(--month YYYY-MM). With --output the transactions are written to a CSV file
instead of being printed.`,
	Run: listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", "Only show transactions of this month (YYYY-MM)")
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Write transactions to this CSV file")
}

func listFunc(cmd *cobra.Command, args []string) {
	if root.Month != "" && !dateutils.IsValidMonth(root.Month) {
		root.Log.Errorf("Invalid month '%s', expected YYYY-MM", root.Month)
		return
	}

	l := root.OpenLedger()
	transactions := l.Transactions(root.Month)

	if root.Output != "" {
		if transactions == nil {
			// A month with no matches still produces a valid, empty CSV.
			transactions = []models.Transaction{}
		}
		if err := export.WriteTransactionsCSV(transactions, root.Output); err != nil {
			root.Log.Errorf("Could not export transactions: %v", err)
			return
		}
		root.Log.Infof("Wrote %d transactions to %s", len(transactions), root.Output)
		return
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return
	}

	fmt.Printf("%-12s %12s  %-20s %-30s %s\n", "Date", "Amount", "Category", "Description", "Kind")
	for _, tx := range transactions {
		fmt.Printf("%-12s %12s  %-20s %-30s %s\n",
			tx.Date,
			tx.Amount.StringFixed(2),
			tx.Category,
			tx.Description,
			tx.Kind)
	}
}
