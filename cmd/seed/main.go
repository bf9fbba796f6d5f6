// Seed program: builds a sample int32-keyed tree and writes it to
// databases/demo/index.header and databases/demo/index.data.
// Run: go run ./cmd/seed
// Then inspect: go run ./cmd/inspect databases/demo/index
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	bplus "cbtree/bplustree"
)

const (
	baseDir  = "databases/demo"
	snapName = "index"
)

func main() {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	tr, err := bplus.New[int32](8, bplus.WithValueCache[int32](1024))
	if err != nil {
		log.Fatalf("new tree: %v", err)
	}

	fmt.Println("Seeding sample data...")
	for i := int32(0); i < 200; i++ {
		tr.Insert(i, uint64(i*i))
	}
	// A few out-of-order inserts and a handful of removes, so the snapshot
	// isn't a perfectly balanced artifact of sequential-only insertion.
	for _, k := range []int32{500, 250, 375, 125, 625} {
		tr.Insert(k, uint64(k)*1000)
	}
	for _, k := range []int32{10, 20, 30, 40, 50} {
		tr.Remove(k)
	}

	snapPath := filepath.Join(baseDir, snapName)
	if err := tr.Serialize(snapPath); err != nil {
		log.Fatalf("serialize: %v", err)
	}

	fmt.Println("\nDone. Inspect:")
	fmt.Printf("  go run ./cmd/inspect %s\n", snapPath)
}
