// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// setDefaults registers every configuration key with viper so that
// environment variables such as PDF_WORKBENCH_WATERMARK_OPACITY apply
// even when no config file sets the key.
func setDefaults(def types.Config) {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("watermark.mode", string(def.Watermark.Mode))
	viper.SetDefault("watermark.color", def.Watermark.Color)
	viper.SetDefault("watermark.rotation", def.Watermark.Rotation)
	viper.SetDefault("watermark.opacity", def.Watermark.Opacity)
	viper.SetDefault("watermark.font_size", def.Watermark.FontSize)
	viper.SetDefault("watermark.scale", def.Watermark.Scale)

	viper.SetDefault("encryption.key_length", def.Encryption.KeyLength)
	viper.SetDefault("encryption.use_aes", def.Encryption.UseAES)

	viper.SetDefault("output.dir", def.Output.Dir)
	viper.SetDefault("output.archive", def.Output.Archive)

	viper.SetDefault("history.enabled", def.History.Enabled)
	viper.SetDefault("history.path", def.History.Path)

	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.format", def.Log.Format)

	viper.SetDefault("http.timeout", def.HTTP.Timeout)
	viper.SetDefault("http.user_agent", def.HTTP.UserAgent)
	viper.SetDefault("http.max_retries", def.HTTP.MaxRetries)
}

// loadConfig decodes viper's merged settings into appCfg and validates it.
func loadConfig() error {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appCfg = cfg
	return nil
}
