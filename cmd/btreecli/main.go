// Command btreecli is a command-line harness over the bplustree engine: it
// loads (or creates) a tree backed by a snapshot pair on disk, runs one
// operation, and saves the result back before exiting. It operates on
// int32 keys only; string-keyed trees are exercised directly through the
// library and its tests.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
