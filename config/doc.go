// Package config loads logging override profiles from files or any
// viper-supported source and applies them to an override.Manager.
//
// A profile is a list of overrides, each naming an owner and either a
// registered sink type or a set of filter fields (level threshold,
// blacklist rules, sampling) from which a decorated sink instance is
// built. Profiles are validated before any override is pushed, so a
// broken file never half-applies.
package config
