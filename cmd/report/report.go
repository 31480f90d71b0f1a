// Package report handles the expense report command
package report

import (
	"encoding/json"
	"fmt"
	"sort"

	"fjacquet/finance-ledger/cmd/root"
	"fjacquet/finance-ledger/internal/dateutils"

	"github.com/spf13/cobra"
)

// Format selects the report output format ("text" or "json")
var Format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show expense totals by category",
	Long: `Aggregate expense transactions by category, optionally restricted to one
month (--month YYYY-MM). Totals carry the stored sign, so expense totals are
negative numbers.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", "Only aggregate transactions of this month (YYYY-MM)")
	Cmd.Flags().StringVar(&Format, "format", "text", "Output format: text or json")
}

func reportFunc(cmd *cobra.Command, args []string) {
	if root.Month != "" && !dateutils.IsValidMonth(root.Month) {
		root.Log.Errorf("Invalid month '%s', expected YYYY-MM", root.Month)
		return
	}

	l := root.OpenLedger()
	totals := l.ExpenseReport(root.Month)

	switch Format {
	case "json":
		data, err := json.MarshalIndent(totals, "", "  ")
		if err != nil {
			root.Log.Errorf("Could not render report: %v", err)
			return
		}
		fmt.Println(string(data))
	case "text":
		if len(totals) == 0 {
			fmt.Println("No expenses to report.")
			return
		}
		categories := make([]string, 0, len(totals))
		for category := range totals {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		fmt.Printf("%-20s %12s\n", "Category", "Total")
		for _, category := range categories {
			fmt.Printf("%-20s %12s\n", category, totals[category].StringFixed(2))
		}
	default:
		root.Log.Errorf("Unsupported report format: %s", Format)
	}
}
