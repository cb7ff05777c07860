package main

import (
	"os"

	"github.com/zjrosen/soroban/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
