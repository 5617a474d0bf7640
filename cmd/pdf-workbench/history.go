// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-workbench/internal/history"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or manage the operation journal",
	Long: `History manages the local SQLite journal in which every operation run
is recorded with its inputs, outputs and outcome.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(appCfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistory(cmd.OutOrStdout(), records, jsonOutput)
}

func formatHistory(w io.Writer, records []types.HistoryRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-8s  %-30s  %s\n",
		"ID", "Started", "Operation", "Status", "Inputs", "Message")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range records {
		inputs := strings.Join(r.Inputs, ", ")
		if len(inputs) > 30 {
			inputs = inputs[:27] + "..."
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-8s  %-30s  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Operation, r.Status, inputs, r.Message)
	}
	return nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(appCfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d run(s)\n", n)
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write recorded runs to stdout as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(appCfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		return store.ExportYAML(cmd.Context(), cmd.OutOrStdout(), limit)
	},
}

func init() {
	historyListCmd.Flags().Int("limit", history.DefaultLimit, "maximum number of runs to show")
	historyListCmd.Flags().Bool("json", false, "output runs as JSON")
	historyExportCmd.Flags().Int("limit", 100000, "maximum number of runs to export")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
