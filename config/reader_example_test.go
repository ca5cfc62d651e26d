// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func Example() {
	dir, _ := os.MkdirTemp("", "envread")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, ".env")
	_ = os.WriteFile(path, []byte("# service settings\nEXAMPLE_PORT = 9090\nEXAMPLE_DEBUG=yes\n"), 0o600)

	r, err := NewReader(WithOptions(Options{
		"env_file": {"path": path, "require_file": true},
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	port, _ := r.Int("EXAMPLE_PORT", Default(8080))
	debug, _ := r.Bool("EXAMPLE_DEBUG", Default(false))
	name, _ := r.Str("EXAMPLE_NAME", Default("envread"), Callback(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	}))

	fmt.Println(port)
	fmt.Println(debug)
	fmt.Println(name)
	// Output:
	// 9090
	// true
	// envread
}

func ExampleReader_Get() {
	r, _ := NewReader(WithProviders(Environ))

	_, err := r.Get("EXAMPLE_SURELY_UNSET_VARIABLE")
	fmt.Println(err)
	// Output:
	// config: no provider has a value for key: EXAMPLE_SURELY_UNSET_VARIABLE
}
