// Package config loads the settings of the radix command line tool.
package config

import (
	"github.com/zeebo/errs"

	"github.com/govalues/radix"
)

// Error is the class of all configuration errors.
var Error = errs.Class("config")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents the complete radix configuration.
type Config struct {
	// System is the name of the numeral system of operands and results,
	// as accepted by radix.Lookup.
	System string `yaml:"system" mapstructure:"system"`

	// Scale is the number of digits after the radix point kept by division.
	Scale int `yaml:"scale" mapstructure:"scale"`

	// Output is one of OutputText, OutputJSON or OutputYAML.
	Output string `yaml:"output" mapstructure:"output"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	sys radix.System
}

// NumeralSystem returns the numeral system named by System.
// It is resolved by Validate.
func (c *Config) NumeralSystem() radix.System {
	if c.sys == nil {
		return radix.Base10
	}
	return c.sys
}
