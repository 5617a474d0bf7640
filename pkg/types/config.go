// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// HTTPConfig holds settings for fetching documents given as http(s) URLs.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"min=0"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 responses (0 = default).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"min=0,max=10"`
}

// WatermarkMode selects how the watermark overlay is produced.
type WatermarkMode string

const (
	// WatermarkText stamps the text through the codec's own text renderer.
	WatermarkText WatermarkMode = "text"

	// WatermarkImage rasterizes the text into a PNG overlay first.
	WatermarkImage WatermarkMode = "image"
)

// WatermarkConfig holds the watermark visual policy. Only Text and Color are
// meant to be set per invocation; the geometry is fixed by default.
type WatermarkConfig struct {
	Mode WatermarkMode `json:"mode" yaml:"mode" mapstructure:"mode" validate:"oneof=text image"`

	// Color is the fill color as #RRGGBB.
	Color string `json:"color" yaml:"color" mapstructure:"color" validate:"hexcolor"`

	// Rotation is the overlay angle in degrees, counter-clockwise.
	Rotation float64 `json:"rotation" yaml:"rotation" mapstructure:"rotation" validate:"min=-180,max=180"`

	// Opacity is the fill opacity, 0 (invisible) to 1 (opaque).
	Opacity float64 `json:"opacity" yaml:"opacity" mapstructure:"opacity" validate:"gt=0,lte=1"`

	// FontSize is the glyph size in points.
	FontSize float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size" validate:"gt=0,lte=400"`

	// Scale is the overlay size relative to the page (0..1).
	Scale float64 `json:"scale" yaml:"scale" mapstructure:"scale" validate:"gt=0,lte=1"`
}

// EncryptionConfig holds settings for the encrypt operation.
type EncryptionConfig struct {
	// KeyLength is the encryption key length in bits.
	KeyLength int `json:"key_length" yaml:"key_length" mapstructure:"key_length" validate:"oneof=40 128 256"`

	// UseAES selects AES over RC4. RC4 is only valid with 40 or 128 bit keys.
	UseAES bool `json:"use_aes" yaml:"use_aes" mapstructure:"use_aes"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	// Dir is the directory results are written to.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir" validate:"required"`

	// Archive bundles multi-document results (split) into a zip file
	// instead of writing them loose into Dir.
	Archive bool `json:"archive" yaml:"archive" mapstructure:"archive"`
}

// HistoryConfig controls the operation journal.
type HistoryConfig struct {
	// Enabled turns the journal on.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path" mapstructure:"path" validate:"required_if=Enabled true"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=text json"`
}

// Config groups all settings for pdf-workbench.
type Config struct {
	Watermark  WatermarkConfig  `json:"watermark" yaml:"watermark" mapstructure:"watermark"`
	Encryption EncryptionConfig `json:"encryption" yaml:"encryption" mapstructure:"encryption"`
	Output     OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	HTTP       HTTPConfig       `json:"http" yaml:"http" mapstructure:"http"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Watermark: WatermarkConfig{
			Mode:     WatermarkText,
			Color:    "#808080",
			Rotation: 45,
			Opacity:  0.3,
			FontSize: 48,
			Scale:    0.5,
		},
		Encryption: EncryptionConfig{
			KeyLength: 256,
			UseAES:    true,
		},
		Output: OutputConfig{
			Dir:     ".",
			Archive: true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    ".pdf-workbench/history.db",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		HTTP: HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "pdf-workbench/0.1",
		},
	}
}

// Validate checks struct constraints and the cross-field rules the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !c.Encryption.UseAES && c.Encryption.KeyLength == 256 {
		return fmt.Errorf("invalid configuration: RC4 supports 40 or 128 bit keys, not 256")
	}
	return nil
}
