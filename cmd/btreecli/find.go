package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <key>",
	Short: "Look up a key",
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

		v := tr.Find(int32(key))
		if v == 0 {
			fmt.Printf("%d: not found\n", key)
			return nil
		}
		fmt.Printf("%d: %d\n", key, v)
		return nil
	},
}
