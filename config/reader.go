// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"log/slog"

	"github.com/z5labs/envread/internal/noop"
	"github.com/z5labs/envread/internal/slogfield"
)

// ReaderOption configures a [Reader].
type ReaderOption func(*readerOptions)

type readerOptions struct {
	types      []ProviderType
	options    Options
	logHandler slog.Handler
}

// WithProviders sets the provider types consulted by the [Reader], highest
// priority first. When never set, or set to nothing, [DefaultProviders] are used.
func WithProviders(types ...ProviderType) ReaderOption {
	return func(ro *readerOptions) {
		ro.types = types
	}
}

// WithOptions sets the option blocks handed to each provider type,
// keyed by the provider's option name.
func WithOptions(opts Options) ReaderOption {
	return func(ro *readerOptions) {
		ro.options = opts
	}
}

// LogHandler configures the underlying slog.Handler used by the [Reader].
func LogHandler(h slog.Handler) ReaderOption {
	return func(ro *readerOptions) {
		ro.logHandler = h
	}
}

// Reader resolves keys by querying an ordered list of providers and
// returning the first value found. The providers are fixed once the
// Reader is built and resolved values are never cached.
type Reader struct {
	log       *slog.Logger
	providers []Provider
}

// NewReader builds every configured provider in order.
func NewReader(opts ...ReaderOption) (*Reader, error) {
	ro := &readerOptions{
		logHandler: noop.LogHandler{},
	}
	for _, opt := range opts {
		opt(ro)
	}

	types := ro.types
	if len(types) == 0 {
		types = DefaultProviders()
	}

	r := &Reader{
		log:       slog.New(ro.logHandler),
		providers: make([]Provider, 0, len(types)),
	}
	for _, pt := range types {
		name := pt.OptionName()

		block := ro.options[name]
		if block == nil {
			block = OptionBlock{}
		}

		p, err := pt.New(block)
		if err != nil {
			r.log.Error("failed to initialize config provider", slogfield.String("provider", name), slogfield.Error(err))
			return nil, ProviderInitError{Provider: name, Cause: err}
		}
		r.log.Info("initialized config provider", slogfield.String("provider", name))
		r.providers = append(r.providers, p)
	}
	return r, nil
}

// Providers returns the providers of r, highest priority first.
func (r *Reader) Providers() []Provider {
	ps := make([]Provider, len(r.providers))
	copy(ps, r.providers)
	return ps
}

// Lookup returns the first value found for key along with the option
// name of the provider which held it. If no provider has the key a
// [KeyNotFoundError] is returned.
func (r *Reader) Lookup(key string) (Value, string, error) {
	for _, p := range r.providers {
		v, err := p.Get(key)
		if errors.Is(err, ErrNotFound) {
			r.log.Debug("config key not found in provider", slogfield.String("key", key), slogfield.String("provider", p.OptionName()))
			continue
		}
		if err != nil {
			return Value{}, "", err
		}
		r.log.Debug("resolved config key", slogfield.String("key", key), slogfield.String("provider", p.OptionName()))
		return v, p.OptionName(), nil
	}
	return Value{}, "", KeyNotFoundError{Key: key}
}

// Get resolves key to its raw value.
//
// If no provider has the key, the value given with [Default] is returned
// as is, or a [KeyNotFoundError] when there is none. A [Callback] is only
// applied to a value found by a provider, never to the default.
func (r *Reader) Get(key string, opts ...Option[Value]) (Value, error) {
	return Typed(r, key, identity, opts...)
}

func identity(v Value) (Value, error) {
	return v, nil
}

// Str resolves key and converts the found value with [ToString].
func (r *Reader) Str(key string, opts ...Option[string]) (string, error) {
	return Typed(r, key, ToString, opts...)
}

// Int resolves key and converts the found value with [ToInt].
func (r *Reader) Int(key string, opts ...Option[int]) (int, error) {
	return Typed(r, key, ToInt, opts...)
}

// Bool resolves key and converts the found value with [ToBool].
func (r *Reader) Bool(key string, opts ...Option[bool]) (bool, error) {
	return Typed(r, key, ToBool, opts...)
}

// Float64 resolves key and converts the found value with [ToFloat64].
func (r *Reader) Float64(key string, opts ...Option[float64]) (float64, error) {
	return Typed(r, key, ToFloat64, opts...)
}
