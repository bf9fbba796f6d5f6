package main

import (
	"github.com/spf13/cobra"
)

var (
	dbPath string
	order  int
)

var rootCmd = &cobra.Command{
	Use:   "btreecli",
	Short: "Exercise the bplustree engine from the command line",
	Long:  "btreecli is a small harness over the bplustree package: insert, find, remove, and range-scan a tree persisted as a snapshot pair on disk.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "btreecli.db", "snapshot base path (writes <path>.header and <path>.data)")
	rootCmd.PersistentFlags().IntVar(&order, "order", 64, "tree order, used only when creating a new db")

	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(stressCmd)
}
