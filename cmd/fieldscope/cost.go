package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate the cost of classifying a number of papers",
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, _ := cmd.Flags().GetInt("papers")
		if papers < 0 {
			return fmt.Errorf("--papers must be non-negative")
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		svc, cleanup, err := newService()
		if err != nil {
			return err
		}
		defer cleanup()

		est := svc.EstimateCost(papers)
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(est)
		}
		fmt.Printf("provider:       %s\n", est.Provider)
		fmt.Printf("model:          %s\n", est.Model)
		fmt.Printf("papers:         %d\n", est.NumPapers)
		fmt.Printf("input cost:     $%.2f\n", est.InputCost)
		fmt.Printf("output cost:    $%.2f\n", est.OutputCost)
		fmt.Printf("total cost:     $%.2f\n", est.TotalCost)
		fmt.Printf("cost per paper: $%.4f\n", est.CostPerPaper)
		return nil
	},
}

func init() {
	costCmd.Flags().Int("papers", 100, "number of papers to estimate for")
	costCmd.Flags().Bool("json", false, "output the estimate as JSON")

	rootCmd.AddCommand(costCmd)
}
