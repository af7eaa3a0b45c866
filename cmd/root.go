package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Embedded default configuration. The categories list is ordered; rule
// order decides which category wins when keyword sets overlap.
const defaultConfigYAML = `
categories:
  - name: subscriptions
    keywords: [spotify, youtube, prime, zee, hotstar]
  - name: food
    keywords: [swiggy, zomato, dominos, instamart, blinkit]
  - name: shopping
    keywords: [amazon, flipkart, myntra]
  - name: utilities
    keywords: [airtel, jio, electricity, gas]
  - name: education
    keywords: [school, fees, footprints]
statement:
  HDFC_CC:
    patterns:
      transaction: '^\d{2}/\d{2}/\d{4}\b'
      credit_suffix: 'CR'
      date_format: '02/01/2006'
`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "expense-dashboard [filename]",
		Short: "Categorize and summarize credit card statements",
		Long: `expense-dashboard turns an HDFC credit card statement (PDF, CSV or
XLSX export) into categorized transactions with monthly, category and
vendor spend summaries.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				runAnalyze(cmd, args)
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.expense-dashboard.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".expense-dashboard")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use the embedded defaults
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
