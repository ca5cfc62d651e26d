// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"time"

	"github.com/z5labs/envread/internal/slogfield"
	"github.com/z5labs/envread/internal/try"
)

// optional distinguishes "not supplied" from a supplied zero value.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

type getOptions[T any] struct {
	def      optional[T]
	callback optional[func(T) (T, error)]
}

// Option customizes how a single key is resolved.
type Option[T any] func(*getOptions[T])

// Default is returned, unchanged, when no provider has the key.
func Default[T any](v T) Option[T] {
	return func(o *getOptions[T]) {
		o.def = some(v)
	}
}

// Callback is applied to a value found by a provider, after any
// type coercion. It is never applied to a [Default].
func Callback[T any](f func(T) (T, error)) Option[T] {
	return func(o *getOptions[T]) {
		o.callback = some(f)
	}
}

// Typed resolves key with r and converts the found value with coerce,
// then applies the [Callback], if any. Defaults bypass both.
func Typed[T any](r *Reader, key string, coerce func(Value) (T, error), opts ...Option[T]) (T, error) {
	var o getOptions[T]
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	v, _, err := r.Lookup(key)
	if errors.Is(err, ErrNotFound) {
		def, ok := o.def.get()
		if !ok {
			return zero, err
		}
		r.log.Debug("using default for config key", slogfield.String("key", key))
		return def, nil
	}
	if err != nil {
		return zero, err
	}

	t, err := coerce(v)
	if err != nil {
		return zero, err
	}

	f, ok := o.callback.get()
	if !ok {
		return t, nil
	}
	return applyCallback(f, t)
}

func applyCallback[T any](f func(T) (T, error), v T) (t T, err error) {
	defer try.Recover(&err)
	return f(v)
}

// Duration resolves key and converts the found value with [ToDuration].
func (r *Reader) Duration(key string, opts ...Option[time.Duration]) (time.Duration, error) {
	return Typed(r, key, ToDuration, opts...)
}
