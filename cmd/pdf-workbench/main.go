// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-workbench CLI. Each document
// operation is a subcommand; inputs are local paths or http(s) URLs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-workbench/internal/logging"
	"github.com/pdiddy/pdf-workbench/internal/ops"
	"github.com/pdiddy/pdf-workbench/internal/secrets"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// appCfg is the validated configuration, loaded before every command.
	appCfg = types.DefaultConfig()

	// log carries diagnostics to stderr.
	log logrus.FieldLogger = logging.Discard()

	// loadedSecrets holds passwords loaded from the secrets directory.
	loadedSecrets map[string]string
)

// rootCmd is the base command for the pdf-workbench CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-workbench",
	Short: "Merge, split, rotate, watermark and protect PDF documents",
	Long: `pdf-workbench applies page-level operations to PDF documents: merging,
splitting by page ranges, rotating, deleting and reordering pages,
watermarking, and password protection.

Inputs may be local files or http(s) URLs. Page selectors use 1-based page
numbers, for example "1-3,5,7-8" for split and "1:90,3:180" for rotate.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		logger, err := logging.New(appCfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		log = logger

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, log)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			log.WithField("keys", keys).Info("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pdf-workbench.yaml or ~/.config/pdf-workbench/pdf-workbench.yaml)")
	pf.String("secrets-dir", secrets.DefaultDir, "directory holding password files")
	pf.String("password", "", "password for encrypted inputs (default: secrets pdf-password)")
	pf.String("out-dir", "", "directory for output files (default: output.dir)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("no-history", false, "do not record this run in the history journal")

	viper.BindPFlag("output.dir", pf.Lookup("out-dir"))
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-workbench")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-workbench"))
		}
	}

	viper.SetEnvPrefix("PDF_WORKBENCH")
	viper.AutomaticEnv()
	setDefaults(types.DefaultConfig())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var bf *batchFailure
	if errors.As(err, &bf) {
		return 1
	}
	switch ops.Classify(err) {
	case ops.KindFormat, ops.KindRange:
		return 2
	case ops.KindCodec:
		return 3
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var bf *batchFailure
		if errors.As(err, &bf) {
			fmt.Fprintln(os.Stderr, bf.Error())
		} else {
			fmt.Fprintln(os.Stderr, ops.Describe(err))
		}
		os.Exit(exitCode(err))
	}
}
