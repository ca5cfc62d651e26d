// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// InvalidTargetError occurs when [Reader.Unmarshal] is given anything
// other than a non-nil pointer to a struct.
type InvalidTargetError struct {
	Type reflect.Type
}

// Error implements the [builtin.error] interface.
func (e InvalidTargetError) Error() string {
	if e.Type == nil {
		return "config: unmarshal target must be a non-nil pointer to a struct: nil"
	}
	return fmt.Sprintf("config: unmarshal target must be a non-nil pointer to a struct: %s", e.Type)
}

// Unmarshal resolves every struct field of v tagged with `config:"KEY"`
// and decodes the found values into those fields. Fields whose key is not
// found keep their current value unless the tag carries the "required"
// option, e.g. `config:"PORT,required"`, in which case a [KeyNotFoundError]
// is returned.
//
// Bool fields follow the same rules as [ToBool] and time.Duration fields
// the same rules as [ToDuration]. Types implementing [encoding.TextUnmarshaler]
// are decoded from text.
func (r *Reader) Unmarshal(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return InvalidTargetError{Type: reflect.TypeOf(v)}
	}

	found := make(map[string]any)
	rt := rv.Elem().Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, ok := f.Tag.Lookup("config")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}

		val, _, err := r.Lookup(name)
		if errors.Is(err, ErrNotFound) {
			if opts == "required" {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		found[name] = val.Any()
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           v,
		DecodeHook: composeDecodeHooks(
			boolHookFunc(),
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(found)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}

			var ute UnsupportedTypeError
			var tce TypeCoercionError
			if errors.As(err, &ute) || errors.As(err, &tce) {
				return nil, err
			}
			return nil, TypeCoercionError{
				Value:  ValueOf(f.Interface()),
				Target: t.Type().String(),
				Cause:  err,
			}
		}
		return f.Interface(), nil
	}
}

func boolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Bool {
			return nil, errInvalidDecodeCondition
		}
		return ToBool(ValueOf(data))
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(reflect.ValueOf(data).String()))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}
		return ToDuration(ValueOf(data))
	}
}
