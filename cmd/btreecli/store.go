package main

import (
	"errors"
	"os"

	bplus "cbtree/bplustree"
)

// loadOrCreate opens the tree persisted at dbPath, or starts a fresh one of
// the configured order if no snapshot exists yet there.
func loadOrCreate(path string, order int) (*bplus.Tree[int32], error) {
	tr, err := bplus.New[int32](order)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(path + ".header"); errors.Is(statErr, os.ErrNotExist) {
		return tr, nil
	}

	if err := tr.Deserialize(path); err != nil {
		return nil, err
	}
	return tr, nil
}

func save(tr *bplus.Tree[int32], path string) error {
	return tr.Serialize(path)
}
