// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"github.com/go-viper/mapstructure/v2"
)

// Provider is a single read-only source of configuration values.
type Provider interface {
	// OptionName identifies the option block which configured this provider.
	OptionName() string

	// Get returns the value stored under key or [ErrNotFound].
	Get(key string) (Value, error)
}

// OptionBlock holds the settings of a single provider, e.g.
// {"path": ".env", "require_file": true}.
type OptionBlock map[string]any

// Options maps a provider option name to its [OptionBlock].
type Options map[string]OptionBlock

// ProviderType knows how to construct one kind of [Provider]
// from its option block.
type ProviderType interface {
	// OptionName selects the block of [Options] passed to New.
	OptionName() string

	New(block OptionBlock) (Provider, error)
}

// The known provider types.
var (
	Environ  ProviderType = environType{}
	EnvFile  ProviderType = envFileType{}
	YamlFile ProviderType = yamlFileType{}
	Viper    ProviderType = viperType{}
)

var providerTypes = []ProviderType{Environ, EnvFile, YamlFile, Viper}

// DefaultProviders returns the provider types a [Reader] uses when none
// are configured: the process environment first, then the env file.
func DefaultProviders() []ProviderType {
	return []ProviderType{Environ, EnvFile}
}

// LookupProviderType returns the known provider type with the given option name.
func LookupProviderType(name string) (ProviderType, bool) {
	for _, pt := range providerTypes {
		if pt.OptionName() == name {
			return pt, true
		}
	}
	return nil, false
}

// decodeBlock decodes block on top of v, which must be a pointer to a struct
// already holding the provider's defaults.
func decodeBlock(name string, block OptionBlock, v any) error {
	if len(block) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return OptionDecodeError{Provider: name, Cause: err}
	}
	err = dec.Decode(map[string]any(block))
	if err != nil {
		return OptionDecodeError{Provider: name, Cause: err}
	}
	return nil
}
