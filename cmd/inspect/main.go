// Inspect a bplustree snapshot pair (<path>.header / <path>.data).
// Usage: go run ./cmd/inspect <path>
// Example: go run ./cmd/inspect databases/demo/index
package main

import (
	"fmt"
	"os"

	bplus "cbtree/bplustree"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <snapshot-base-path>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s databases/demo/index\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]
	if err := bplus.InspectSnapshot(os.Stdout, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
