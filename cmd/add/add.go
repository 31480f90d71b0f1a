// Package add handles the transaction recording command
package add

import (
	"time"

	"fjacquet/finance-ledger/cmd/root"
	"fjacquet/finance-ledger/internal/dateutils"
	"fjacquet/finance-ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense transaction",
	Long: `Record a transaction in the ledger. Transactions are expenses by default;
pass --income for income. The amount is always entered positive, the sign
is derived from the transaction kind.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Transaction amount (positive number)")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Transaction category")
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&root.Date, "date", "t", "", "Transaction date (default: today)")
	Cmd.Flags().BoolVar(&root.Income, "income", false, "Record an income instead of an expense")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("description")
}

func addFunc(cmd *cobra.Command, args []string) {
	date := time.Now()
	if root.Date != "" {
		parsed, err := dateutils.ParseDate(root.Date)
		if err != nil {
			root.Log.Errorf("Invalid date: %v", err)
			return
		}
		date = parsed
	}

	kind := models.KindExpense
	if root.Income {
		kind = models.KindIncome
	}

	l := root.OpenLedger()
	if err := l.AddTransaction(root.Amount, root.Category, root.Description, date, kind); err != nil {
		root.Log.Errorf("Could not record transaction: %v", err)
		return
	}

	root.Log.Infof("Recorded %s of %s in %s", kind, root.Amount, root.Category)
}
