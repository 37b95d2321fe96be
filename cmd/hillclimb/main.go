// Command hillclimb answers both parts of the hill-climbing puzzle for an
// elevation map file.
//
//	hillclimb solve input.txt
//	hillclimb solve --strategy reverse --log-level debug input.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
