package cmd

import (
	"log"
	"os"

	"github.com/Puneet01302/my-expense-dashboard/analyzer"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/category"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [filename]",
	Short: "Analyze a statement and write the categorized CSV",
	Long: `Runs the pipeline and writes the normalized transaction set as CSV with
columns date, description, amount, category, month. Writes to stdout
unless --output is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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

		out := os.Stdout
		if exportOutput != "" {
			out, err = os.Create(exportOutput)
			if err != nil {
				log.SetOutput(os.Stderr)
				log.Fatalf("error: %v", err)
			}
			defer out.Close()
		}

		if err := export.Write(out, result.Transactions); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the CSV to a file instead of stdout")
}
