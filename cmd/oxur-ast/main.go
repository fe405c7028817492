package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		printDiag(os.Stderr, err)
		os.Exit(1)
	}
}
