// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [files...]",
	Short: "Remove password protection from PDFs",
	Long: `Decrypt opens each input with --password (or the pdf-password secret)
and writes an unprotected copy. A wrong password fails only that file; the
remaining files are still processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	r, err := startRun(cmd, "decrypt", args)
	if err != nil {
		return err
	}
	res := r.runner.Decrypt(cmd.Context(), r.sess, r.sess.Password)
	return r.finishBatch(res, r.writeBatch(res))
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
