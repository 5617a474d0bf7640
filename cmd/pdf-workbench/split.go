// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-workbench/internal/ops"
)

var splitCmd = &cobra.Command{
	Use:   "split <file> <ranges>",
	Short: "Split a PDF into documents by page ranges",
	Long: `Split produces one document per comma-separated range, in the order
given. Ranges are 1-based and inclusive: "1-3,5,7-8" yields three
documents holding pages 1-3, page 5, and pages 7-8. Ranges may overlap.

Outputs are named split_<N>_<start>-<end>.pdf and packaged into
split_<YYYYMMDD>.zip unless --archive=false.`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	r, err := startRun(cmd, "split", args[:1])
	if err != nil {
		return err
	}

	arts, err := r.runner.Split(r.sess, args[1])
	if err != nil {
		return r.finish(err)
	}

	archive := appCfg.Output.Archive
	if cmd.Flags().Changed("archive") {
		archive, _ = cmd.Flags().GetBool("archive")
	}
	if !archive {
		return r.finish(r.write(arts...))
	}

	var buf bytes.Buffer
	if err := r.runner.WriteArchive(&buf, arts); err != nil {
		return r.finish(err)
	}
	path, err := ops.WriteFile(appCfg.Output.Dir, r.runner.ArchiveName(), buf.Bytes())
	if err != nil {
		return r.finish(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d documents)\n", path, len(arts))
	r.outputs = append(r.outputs, path)
	return r.finish(nil)
}

func init() {
	splitCmd.Flags().Bool("archive", true, "package outputs into a zip archive (default: output.archive)")

	rootCmd.AddCommand(splitCmd)
}
