package config

import "github.com/govalues/radix"

// Validate checks the configuration and resolves its numeral system.
// All returned errors are of class Error; an unknown system name is also of
// class radix.ErrSystem.
func Validate(config *Config) error {
	sys, err := radix.Lookup(config.System)
	if err != nil {
		return Error.Wrap(err)
	}
	if config.Scale < 0 {
		return Error.New("scale must not be negative, got %v", config.Scale)
	}
	switch config.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return Error.New("output must be one of %q, %q or %q, got %q", OutputText, OutputJSON, OutputYAML, config.Output)
	}
	config.sys = sys
	return nil
}
