package rules

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load returns the built-in rules, optionally overridden by a YAML file.
// File values merge over the defaults section by section; lists replace
// wholesale. The merged result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal rules file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
