// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <file> <pages>",
	Short: "Rebuild a PDF from pages in a new order",
	Long: `Reorder emits exactly the listed pages in the listed order. "3,1,2"
moves page 3 to the front; pages may be repeated or left out. Every listed
page must exist.`,
	Args: cobra.ExactArgs(2),
	RunE: runReorder,
}

func runReorder(cmd *cobra.Command, args []string) error {
	r, err := startRun(cmd, "reorder", args[:1])
	if err != nil {
		return err
	}
	art, err := r.runner.Reorder(r.sess, args[1])
	if err == nil {
		err = r.write(art)
	}
	return r.finish(err)
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}
