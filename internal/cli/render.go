// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"sort"

	"github.com/z5labs/envread/config"
)

type renderer func(r *config.Reader, key string, def *string) (string, error)

var renderers = map[string]renderer{
	"str":      renderWith(config.ToString),
	"int":      renderWith(config.ToInt),
	"bool":     renderWith(config.ToBool),
	"float":    renderWith(config.ToFloat64),
	"duration": renderWith(config.ToDuration),
}

func typeNames() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// renderWith resolves key as a T. The --default text is converted with
// the same coercion so a bad default fails even if it is never used.
func renderWith[T any](coerce func(config.Value) (T, error)) renderer {
	return func(r *config.Reader, key string, def *string) (string, error) {
		var opts []config.Option[T]
		if def != nil {
			d, err := coerce(config.Text(*def))
			if err != nil {
				return "", err
			}
			opts = append(opts, config.Default(d))
		}

		v, err := config.Typed(r, key, coerce, opts...)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}
