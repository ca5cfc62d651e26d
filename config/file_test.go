// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestNewEnvFileProvider(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the file is required and does not exist", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.env")

			_, err := NewEnvFileProvider(EnvFileOptions{Path: path, RequireFile: true})

			var rerr RequiredFileError
			if !assert.ErrorAs(t, err, &rerr) {
				return
			}
			if !assert.Equal(t, path, rerr.Path) {
				return
			}
			if !assert.Equal(t, "env_file", rerr.Provider) {
				return
			}
		})

		t.Run("if a line has no '='", func(t *testing.T) {
			path := writeFile(t, ".env", "A=1\nNOT AN ASSIGNMENT\nB=2\n")

			_, err := NewEnvFileProvider(EnvFileOptions{Path: path})

			var merr MalformedLineError
			if !assert.ErrorAs(t, err, &merr) {
				return
			}
			if !assert.Equal(t, 2, merr.Line) {
				return
			}
			if !assert.Equal(t, "NOT AN ASSIGNMENT", merr.Text) {
				return
			}
		})

		t.Run("if the path is a directory", func(t *testing.T) {
			_, err := NewEnvFileProvider(EnvFileOptions{Path: t.TempDir()})

			var ferr FileReadError
			if !assert.ErrorAs(t, err, &ferr) {
				return
			}
		})
	})

	t.Run("will be empty", func(t *testing.T) {
		t.Run("if the file does not exist and is not required", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.env")

			p, err := NewEnvFileProvider(EnvFileOptions{Path: path})
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Empty(t, p.Keys()) {
				return
			}

			_, err = p.Get("ANY")
			if !assert.ErrorIs(t, err, ErrNotFound) {
				return
			}
		})
	})

	t.Run("will default the path", func(t *testing.T) {
		t.Run("if no path is given", func(t *testing.T) {
			p, err := NewEnvFileProvider(EnvFileOptions{})
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, ".env", p.Path()) {
				return
			}
		})
	})

	t.Run("will skip comments and blank lines", func(t *testing.T) {
		t.Run("if they are mixed with assignments", func(t *testing.T) {
			path := writeFile(t, ".env", "# comment\n\n   \nA=1\nB = 2\n")

			p, err := NewEnvFileProvider(EnvFileOptions{Path: path})
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, map[string]string{"A": "1", "B": "2"}, p.values) {
				return
			}
		})
	})
}

func TestEnvFileProvider_Get(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		key     string
		want    string
	}{
		{name: "trims whitespace around key and value", content: "KEY = value  \n", key: "KEY", want: "value"},
		{name: "splits on the first '='", content: "DSN=postgres://u:p@h/db?sslmode=disable\n", key: "DSN", want: "postgres://u:p@h/db?sslmode=disable"},
		{name: "keeps empty values", content: "EMPTY=\n", key: "EMPTY", want: ""},
		{name: "later assignments win", content: "A=1\nA=2\n", key: "A", want: "2"},
		{name: "handles windows line endings", content: "A=1\r\nB=2\r\n", key: "B", want: "2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, ".env", tc.content)

			p, err := NewEnvFileProvider(EnvFileOptions{Path: path})
			require.NoError(t, err)

			v, err := p.Get(tc.key)
			require.NoError(t, err)
			require.Equal(t, Text(tc.want), v)
		})
	}

	t.Run("will not observe changes to the file", func(t *testing.T) {
		path := writeFile(t, ".env", "A=before\n")

		p, err := NewEnvFileProvider(EnvFileOptions{Path: path})
		require.NoError(t, err)

		err = os.WriteFile(path, []byte("A=after\nB=new\n"), 0o600)
		require.NoError(t, err)

		for range 3 {
			v, err := p.Get("A")
			require.NoError(t, err)
			require.Equal(t, Text("before"), v)

			_, err = p.Get("B")
			require.ErrorIs(t, err, ErrNotFound)
		}
	})
}

func TestEnvFileType_New(t *testing.T) {
	t.Run("will decode the option block", func(t *testing.T) {
		t.Run("if require_file is given as text", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.env")

			_, err := EnvFile.New(OptionBlock{"path": path, "require_file": "true"})

			var rerr RequiredFileError
			if !assert.ErrorAs(t, err, &rerr) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if an option has the wrong type", func(t *testing.T) {
			_, err := EnvFile.New(OptionBlock{"path": []string{"a", "b"}})

			var derr OptionDecodeError
			if !assert.ErrorAs(t, err, &derr) {
				return
			}
			if !assert.Equal(t, "env_file", derr.Provider) {
				return
			}
		})
	})
}
