package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var insertCmd = &cobra.Command{
	Use:   "insert <key> <value>",
	Short: "Insert or overwrite a key/value pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", args[0], err)
		}
		value, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}

		tr, err := loadOrCreate(dbPath, order)
		if err != nil {
			return err
		}
		tr.Insert(int32(key), value)
		return save(tr, dbPath)
	},
}
