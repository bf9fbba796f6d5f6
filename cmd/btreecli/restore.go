package main

import (
	"fmt"

	bplus "cbtree/bplustree"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <src>",
	Short: "Load the snapshot at <src> and make it the tree at --db",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := bplus.New[int32](order)
		if err != nil {
			return err
		}
		if err := tr.Deserialize(args[0]); err != nil {
			return err
		}
		if err := save(tr, dbPath); err != nil {
			return err
		}
		fmt.Printf("restored %s into %s\n", args[0], dbPath)
		return nil
	},
}
