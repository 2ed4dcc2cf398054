package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load,
// for example RADIX_SYSTEM.
const EnvPrefix = "RADIX"

// Load loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file, if path is not empty
// 3. Environment variables (RADIX_ prefix)
// 4. Flags that were set on the command line, if flags is not nil
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults first
	setDefaults(v)

	// 2. Load configuration file
	if path != "" {
		if err := loadFile(v, path); err != nil {
			return nil, err
		}
	}

	// 3. Set up environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, Error.New("failed to bind flags: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, Error.New("failed to unmarshal config: %v", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadFile reads the configuration file at path.
// The format is derived from the file extension.
func loadFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Error.New("config file does not exist: %s", path)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Error.New("failed to read config file %s: %v", path, err)
	}
	return nil
}
