package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <dest>",
	Short: "Copy the tree at --db to a new snapshot at <dest>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := loadOrCreate(dbPath, order)
		if err != nil {
			return err
		}
		if err := save(tr, args[0]); err != nil {
			return err
		}
		fmt.Printf("snapshot written to %s.header / %s.data\n", args[0], args[0])
		return nil
	},
}
