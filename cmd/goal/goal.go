// Package goal handles the spending goal commands
package goal

import (
	"fmt"
	"sort"

	"fjacquet/finance-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the goal command
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Set a spending goal or show goal progress",
	Long: `Set a per-category spending goal with --category and --amount, overwriting
any previous goal for that category. Without --amount the command prints the
progress of every stored goal against all-time spending.`,
	Run: goalFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Goal category")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Goal amount (positive number)")
}

func goalFunc(cmd *cobra.Command, args []string) {
	l := root.OpenLedger()

	if root.Amount != "" {
		if root.Category == "" {
			root.Log.Error("A category is required to set a goal")
			return
		}
		if !l.AddGoal(root.Category, root.Amount) {
			root.Log.Errorf("Could not set goal for %s: amount '%s' must be a positive number",
				root.Category, root.Amount)
			return
		}
		root.Log.Infof("Goal for %s set to %s", root.Category, root.Amount)
		return
	}

	statuses := l.CheckGoals()
	if len(statuses) == 0 {
		fmt.Println("No goals defined.")
		return
	}

	categories := make([]string, 0, len(statuses))
	for category := range statuses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Printf("%-20s %12s %12s %10s\n", "Category", "Goal", "Current", "Progress")
	for _, category := range categories {
		status := statuses[category]
		fmt.Printf("%-20s %12s %12s %9s%%\n",
			category,
			status.Goal.StringFixed(2),
			status.Current.StringFixed(2),
			status.Percent.StringFixed(1))
	}
}
