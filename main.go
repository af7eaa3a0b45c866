package main

import (
	"fmt"
	"os"

	"github.com/Puneet01302/my-expense-dashboard/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("expense-dashboard version %s\n", version)
		os.Exit(0)
	}

	cmd.Execute()
}
