package config

import "github.com/spf13/viper"

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("system", "10")
	v.SetDefault("scale", 0)
	v.SetDefault("output", OutputText)
	v.SetDefault("debug", false)
}
