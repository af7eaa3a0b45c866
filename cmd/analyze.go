package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Puneet01302/my-expense-dashboard/analyzer"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/category"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [filename]",
	Short: "Analyze a statement and print the result as JSON",
	Long: `Runs the full pipeline over one statement file: extract transactions,
categorize them against the configured keyword rules, and compute the
monthly, category and vendor spend summaries.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) {
	categorizer, err := category.FromViper()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("error: %v", err)
	}

	result, err := analyzer.ProcessFile(args[0], categorizer)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("error: %v", err)
	}

	asJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("error: %v", err)
	}
	fmt.Println(string(asJSON))
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
