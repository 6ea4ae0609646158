package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RuleConfig is one blacklist rule as it appears in a profile file
type RuleConfig struct {
	Op      string `mapstructure:"op" validate:"omitempty,oneof=is prefix hasprefix startswith suffix hassuffix endswith contains"`
	Pattern string `mapstructure:"pattern"`
}

// HandlerConfig selects the terminal handler for a configured sink.
// Zero value means "use the fallback handler supplied at apply time".
type HandlerConfig struct {
	Type   string `mapstructure:"type" validate:"omitempty,oneof=console file zap"`
	Path   string `mapstructure:"path" validate:"required_if=Type file"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// OverrideConfig describes one owner's override request. Either Sink
// names a type registered with the override registry, or the filter
// fields (Level, Blacklist, SampleEvery) describe a decorated sink the
// config layer builds and hands over as a pre-built instance.
type OverrideConfig struct {
	Owner         string        `mapstructure:"owner" validate:"required"`
	Sink          string        `mapstructure:"sink"`
	ChainPrevious bool          `mapstructure:"chain_previous"`
	Level         string        `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error fatal panic"`
	Blacklist     []RuleConfig  `mapstructure:"blacklist" validate:"dive"`
	SampleEvery   int           `mapstructure:"sample_every" validate:"omitempty,min=1"`
	Handler       HandlerConfig `mapstructure:"handler"`
}

// Profile is a full override configuration: an ordered list of
// overrides, pushed bottom-up so the last one listed has the highest
// priority.
type Profile struct {
	Overrides []OverrideConfig `mapstructure:"overrides" validate:"dive"`
}

var validate = validator.New()

// Load reads and validates a profile from the given file. The format
// is whatever viper infers from the extension (YAML, JSON, TOML).
func Load(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return LoadFrom(v)
}

// LoadFrom extracts and validates a profile from an already-configured
// viper instance, letting hosts layer env vars or defaults first.
func LoadFrom(v *viper.Viper) (*Profile, error) {
	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	if err := checkOwnersUnique(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// checkOwnersUnique rejects profiles that would trip the stack's
// one-entry-per-owner invariant at apply time.
func checkOwnersUnique(p *Profile) error {
	seen := make(map[string]bool, len(p.Overrides))
	for _, o := range p.Overrides {
		key := strings.TrimSpace(o.Owner)
		if seen[key] {
			return fmt.Errorf("config: duplicate owner %q", o.Owner)
		}
		seen[key] = true
	}
	return nil
}
