// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-workbench/internal/codec"
	"github.com/pdiddy/pdf-workbench/internal/secrets"
	"github.com/pdiddy/pdf-workbench/internal/session"
	"github.com/pdiddy/pdf-workbench/internal/source"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show page count, page sizes and rotation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

// docInfo is the printed description of one document.
type docInfo struct {
	Name  string           `json:"name" yaml:"name"`
	Pages int              `json:"pages" yaml:"pages"`
	Sizes []codec.PageInfo `json:"page_info" yaml:"page_info"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q: use text, json or yaml", format)
	}

	sess := session.New()
	defer sess.Reset()
	explicit, _ := cmd.Flags().GetString("password")
	sess.Password = secrets.Password(loadedSecrets, secrets.PasswordKey, explicit)

	if err := source.NewLoader(appCfg.HTTP, log).LoadInto(cmd.Context(), sess, args); err != nil {
		return err
	}

	infos := make([]docInfo, 0, sess.Len())
	for _, f := range sess.Files() {
		pages, err := codec.Inspect(f.Name, f.Data, sess.Password)
		if err != nil {
			return err
		}
		infos = append(infos, docInfo{Name: f.Name, Pages: len(pages), Sizes: pages})
	}
	return printInfo(cmd.OutOrStdout(), infos, format)
}

func printInfo(w io.Writer, infos []docInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	}

	for i, d := range infos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: %d page(s)\n", d.Name, d.Pages)
		fmt.Fprintf(w, "%-6s  %-10s  %-10s  %s\n", "Page", "Width", "Height", "Rotation")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		for _, p := range d.Sizes {
			fmt.Fprintf(w, "%-6d  %-10.1f  %-10.1f  %d\n", p.Number, p.Width, p.Height, p.Rotation)
		}
	}
	return nil
}

func init() {
	infoCmd.Flags().String("format", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(infoCmd)
}
