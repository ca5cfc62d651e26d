// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config resolves named configuration values from an ordered
// list of providers.
//
// # Core Concepts
//
// A [Provider] is a single read-only source of values, such as the process
// environment ([EnvProvider]) or a file of KEY=value lines ([EnvFileProvider]).
// Each provider answers Get(key) with a [Value] or [ErrNotFound].
//
// A [Reader] owns an ordered list of providers, built once from a list of
// [ProviderType] and an [Options] mapping. Resolving a key queries the
// providers in order and stops at the first one holding it, so earlier
// providers shadow later ones.
//
// [Value] is a tagged union over the kind of a raw value: text, bool, integer
// or anything else. Coercions such as [ToBool] switch on that kind.
//
// # Basic Usage
//
// Read from the environment first and a .env file second:
//
//	r, err := config.NewReader(
//	    config.WithOptions(config.Options{
//	        "env_file": {"path": "/etc/myapp/.env", "require_file": true},
//	    }),
//	)
//
//	port, err := r.Int("PORT", config.Default(8080))
//	debug, err := r.Bool("DEBUG", config.Default(false))
//
// Defaults are returned exactly as given. Callbacks only ever see values
// found by a provider, after coercion:
//
//	name, err := r.Str("SERVICE_NAME", config.Callback(func(s string) (string, error) {
//	    return strings.ToLower(s), nil
//	}))
//
// # Provider Types
//
//   - environ: the process environment, consulted on every lookup.
//   - env_file: KEY=value lines, options path (".env") and require_file (false).
//   - yaml_file: a YAML document with dotted keys for nested mappings.
//   - viper: any format understood by github.com/spf13/viper.
//
// File backed providers read their file once, when the [Reader] is built.
package config
