// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/z5labs/envread/internal/try"
)

// openFile opens path for a provider. A missing file is only an
// error if required is set, otherwise a nil reader is returned.
func openFile(provider, path string, required bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if required {
			return nil, RequiredFileError{Provider: provider, Path: path}
		}
		return nil, nil
	}
	if err != nil {
		return nil, FileReadError{Path: path, Cause: err}
	}
	return f, nil
}

type envFileType struct{}

func (envFileType) OptionName() string { return "env_file" }

func (t envFileType) New(block OptionBlock) (Provider, error) {
	opts := EnvFileOptions{
		Path: ".env",
	}
	err := decodeBlock(t.OptionName(), block, &opts)
	if err != nil {
		return nil, err
	}
	return NewEnvFileProvider(opts)
}

// EnvFileOptions are the settings recognized in the "env_file" option block.
type EnvFileOptions struct {
	Path        string `config:"path"`
	RequireFile bool   `config:"require_file"`
}

// EnvFileProvider is a Provider backed by a file of KEY=value lines.
// The file is read once, when the provider is created, and never again.
type EnvFileProvider struct {
	path   string
	values map[string]string
}

// NewEnvFileProvider reads and parses the env file described by opts.
//
// Blank lines and lines starting with '#' are skipped. Every other line is
// split on its first '=' and both halves are trimmed of surrounding whitespace.
// A line without '=' results in a [MalformedLineError].
func NewEnvFileProvider(opts EnvFileOptions) (*EnvFileProvider, error) {
	if opts.Path == "" {
		opts.Path = ".env"
	}

	p := &EnvFileProvider{
		path:   opts.Path,
		values: make(map[string]string),
	}

	rc, err := openFile(EnvFile.OptionName(), opts.Path, opts.RequireFile)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return p, nil
	}

	err = p.parse(rc)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *EnvFileProvider) parse(rc io.ReadCloser) (err error) {
	defer try.Close(&err, rc)

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return MalformedLineError{Path: p.path, Line: n, Text: line}
		}
		p.values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := sc.Err(); err != nil {
		return FileReadError{Path: p.path, Cause: err}
	}
	return nil
}

// OptionName implements the [Provider] interface.
func (*EnvFileProvider) OptionName() string {
	return EnvFile.OptionName()
}

// Get implements the [Provider] interface.
func (p *EnvFileProvider) Get(key string) (Value, error) {
	v, ok := p.values[key]
	if !ok {
		return Value{}, ErrNotFound
	}
	return Text(v), nil
}

// Path returns the path the provider was loaded from.
func (p *EnvFileProvider) Path() string {
	return p.path
}

// Keys returns the sorted keys read from the env file.
func (p *EnvFileProvider) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
