// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-workbench/internal/ops"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark [files...]",
	Short: "Stamp a text watermark on every page",
	Long: `Watermark places the given text centered on every page of each input,
rotated and semi-transparent. Angle, opacity and size come from the
watermark section of the configuration file.

In text mode the text is drawn with a standard PDF font. In image mode it is
rendered into a transparent PNG first and placed as an image, which keeps
characters outside the standard fonts intact.

Each file is processed independently; one failure does not stop the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatermark,
}

func runWatermark(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	color, _ := cmd.Flags().GetString("color")

	if cmd.Flags().Changed("mode") {
		mode, _ := cmd.Flags().GetString("mode")
		appCfg.Watermark.Mode = types.WatermarkMode(mode)
	}
	if err := appCfg.Validate(); err != nil {
		return err
	}

	r, err := startRun(cmd, "watermark", args)
	if err != nil {
		return err
	}
	res, err := r.runner.Watermark(cmd.Context(), r.sess, ops.WatermarkOptions{Text: text, Color: color})
	if err == nil {
		err = r.writeBatch(res)
	}
	return r.finishBatch(res, err)
}

func init() {
	watermarkCmd.Flags().String("text", "", "watermark text (required)")
	watermarkCmd.Flags().String("color", "", "text color as #RRGGBB (default: watermark.color)")
	watermarkCmd.Flags().String("mode", "", "overlay mode: text or image (default: watermark.mode)")
	watermarkCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(watermarkCmd)
}
