package main

import (
	"os"

	"github.com/logiflow/teambalance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
