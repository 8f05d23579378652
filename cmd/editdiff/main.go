// Command editdiff computes a sequence edit-distance alignment between two
// files and renders it as a styled, hunked unified diff.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
