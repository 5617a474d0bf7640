// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <file> <page:angle,...>",
	Short: "Rotate selected pages",
	Long: `Rotate turns the listed pages clockwise by 90, 180 or 270 degrees, for
example "1:90,3:180". Unlisted pages are unchanged. Pages that do not exist
in the document are ignored with a warning.`,
	Args: cobra.ExactArgs(2),
	RunE: runRotate,
}

func runRotate(cmd *cobra.Command, args []string) error {
	r, err := startRun(cmd, "rotate", args[:1])
	if err != nil {
		return err
	}
	art, err := r.runner.Rotate(r.sess, args[1])
	if err == nil {
		err = r.write(art)
	}
	return r.finish(err)
}

func init() {
	rootCmd.AddCommand(rotateCmd)
}
