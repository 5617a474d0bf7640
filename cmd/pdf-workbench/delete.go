// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <file> <pages>",
	Short: "Remove pages from a PDF",
	Long: `Delete removes the listed pages, for example "2,4", and keeps the rest in
their original order. Listed pages that do not exist are ignored; removing
every page is an error.`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	r, err := startRun(cmd, "delete", args[:1])
	if err != nil {
		return err
	}
	art, err := r.runner.Delete(r.sess, args[1])
	if err == nil {
		err = r.write(art)
	}
	return r.finish(err)
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
