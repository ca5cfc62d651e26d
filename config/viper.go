// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"io/fs"
	"math"
	"os"

	"github.com/spf13/viper"
)

var errViperPathRequired = errors.New("path is required")

type viperType struct{}

func (viperType) OptionName() string { return "viper" }

func (t viperType) New(block OptionBlock) (Provider, error) {
	var opts ViperOptions
	err := decodeBlock(t.OptionName(), block, &opts)
	if err != nil {
		return nil, err
	}
	return NewViperProvider(opts)
}

// ViperOptions are the settings recognized in the "viper" option block.
type ViperOptions struct {
	Path string `config:"path"`

	// Type overrides the format viper infers from the file extension,
	// e.g. "yaml", "json" or "toml".
	Type string `config:"type"`

	RequireFile bool `config:"require_file"`
}

// ViperProvider is a Provider backed by any file format viper understands.
// Keys are case-insensitive and nested values are addressed with dots.
// Whole floating point numbers resolve to integer values.
// The file is read once and is never watched for changes.
type ViperProvider struct {
	v *viper.Viper
}

// NewViperProvider reads the file described by opts with a dedicated
// viper instance.
func NewViperProvider(opts ViperOptions) (*ViperProvider, error) {
	if opts.Path == "" {
		return nil, OptionDecodeError{Provider: Viper.OptionName(), Cause: errViperPathRequired}
	}

	p := &ViperProvider{
		v: viper.New(),
	}

	_, err := os.Stat(opts.Path)
	if errors.Is(err, fs.ErrNotExist) {
		if opts.RequireFile {
			return nil, RequiredFileError{Provider: Viper.OptionName(), Path: opts.Path}
		}
		return p, nil
	}
	if err != nil {
		return nil, FileReadError{Path: opts.Path, Cause: err}
	}

	p.v.SetConfigFile(opts.Path)
	if opts.Type != "" {
		p.v.SetConfigType(opts.Type)
	}
	err = p.v.ReadInConfig()
	if err != nil {
		return nil, FileReadError{Path: opts.Path, Cause: err}
	}
	return p, nil
}

// OptionName implements the [Provider] interface.
func (*ViperProvider) OptionName() string {
	return Viper.OptionName()
}

// Get implements the [Provider] interface.
func (p *ViperProvider) Get(key string) (Value, error) {
	if !p.v.IsSet(key) {
		return Value{}, ErrNotFound
	}
	return viperValue(p.v.Get(key)), nil
}

// viperValue classifies v, treating whole floats as integers since
// formats like JSON do not distinguish the two.
func viperValue(v any) Value {
	f, ok := v.(float64)
	if ok && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return Int(int64(f))
	}
	return ValueOf(v)
}
