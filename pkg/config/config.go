// Package config defines the options that control how documents are
// rendered, checked and saved.
package config

import (
	"errors"
	"fmt"
)

// Flavor specifies the Markdown flavor used when checking output.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid reports whether f is a supported flavor.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Options is the root configuration structure.
type Options struct {
	// Flavor selects the parser used by document checks.
	Flavor Flavor `yaml:"flavor"`

	// WrapWidth word-wraps paragraphs to this many columns. Zero disables wrapping.
	WrapWidth int `yaml:"wrap_width"`

	// DetectLanguage fills in missing code block languages.
	DetectLanguage bool `yaml:"detect_language"`

	// Backup keeps a copy of an existing file before it is overwritten.
	Backup bool `yaml:"backup"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the default options: GFM, no wrapping, no detection.
func Default() *Options {
	return &Options{
		Flavor:   FlavorGFM,
		LogLevel: "info",
	}
}

// Validate checks that every field holds a supported value.
func (o *Options) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidConfig)
	}
	if !o.Flavor.IsValid() {
		return fmt.Errorf("%w: unknown flavor %q", ErrInvalidConfig, o.Flavor)
	}
	if o.WrapWidth < 0 {
		return fmt.Errorf("%w: wrap_width must not be negative, got %d", ErrInvalidConfig, o.WrapWidth)
	}
	switch o.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, o.LogLevel)
	}
	return nil
}

// Clone returns a copy of o.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}
