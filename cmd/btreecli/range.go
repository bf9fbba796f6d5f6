package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:   "range <lo> <hi>",
	Short: "List every key in [lo, hi]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid lo %q: %w", args[0], err)
		}
		hi, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid hi %q: %w", args[1], err)
		}

		tr, err := loadOrCreate(dbPath, order)
		if err != nil {
			return err
		}

		entries := tr.RangeFind(int32(lo), int32(hi))
		for _, e := range entries {
			fmt.Printf("%d: %d\n", e.Key, e.Value)
		}
		fmt.Printf("(%d entries)\n", len(entries))
		return nil
	},
}
