package main

import (
	"fmt"
	"os"

	"greenmint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Printf("greenmint run into an error: %s\n", err)
		os.Exit(1)
	}
}
