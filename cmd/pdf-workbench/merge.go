// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Concatenate two or more PDFs into one",
	Long: `Merge concatenates the pages of every input, in the order given, into a
single document named merged_<YYYYMMDD>.pdf.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	r, err := startRun(cmd, "merge", args)
	if err != nil {
		return err
	}

	art, err := r.runner.Merge(r.sess)
	if err == nil {
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			art.Name = name
		}
		err = r.write(art)
	}
	return r.finish(err)
}

func init() {
	mergeCmd.Flags().String("name", "", "output file name (default: merged_<YYYYMMDD>.pdf)")

	rootCmd.AddCommand(mergeCmd)
}
