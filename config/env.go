// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
)

type environType struct{}

func (environType) OptionName() string { return "environ" }

func (environType) New(_ OptionBlock) (Provider, error) {
	return FromEnv(), nil
}

// EnvProvider is a Provider where its underlying values
// are the environment variables of the current process.
type EnvProvider struct {
	lookupEnv func(string) (string, bool)
}

// FromEnv returns a Provider which consults the process environment
// every time a key is requested.
func FromEnv() EnvProvider {
	return EnvProvider{
		lookupEnv: os.LookupEnv,
	}
}

// OptionName implements the [Provider] interface.
func (EnvProvider) OptionName() string {
	return Environ.OptionName()
}

// Get implements the [Provider] interface.
func (p EnvProvider) Get(key string) (Value, error) {
	lookup := p.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(key)
	if !ok {
		return Value{}, ErrNotFound
	}
	return Text(v), nil
}
