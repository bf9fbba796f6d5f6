package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Remove a key, if present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", args[0], err)
		}

		tr, err := loadOrCreate(dbPath, order)
		if err != nil {
			return err
		}
		tr.Remove(int32(key))
		return save(tr, dbPath)
	},
}
