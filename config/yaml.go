// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"github.com/z5labs/envread/config/key"
	"github.com/z5labs/envread/internal/try"

	"gopkg.in/yaml.v3"
)

type yamlFileType struct{}

func (yamlFileType) OptionName() string { return "yaml_file" }

func (t yamlFileType) New(block OptionBlock) (Provider, error) {
	opts := YamlFileOptions{
		Path: "config.yaml",
	}
	err := decodeBlock(t.OptionName(), block, &opts)
	if err != nil {
		return nil, err
	}
	return NewYamlFileProvider(opts)
}

// YamlFileOptions are the settings recognized in the "yaml_file" option block.
type YamlFileOptions struct {
	Path        string `config:"path"`
	RequireFile bool   `config:"require_file"`
}

// YamlFileProvider is a Provider backed by a YAML document. Nested
// mappings are addressed with dotted keys, e.g. "db.port".
//
// Scalars keep their YAML type, so `debug: yes` resolves to a text value
// while `debug: true` resolves to a bool value.
type YamlFileProvider struct {
	path   string
	values map[string]any
}

// NewYamlFileProvider reads and flattens the YAML file described by opts.
func NewYamlFileProvider(opts YamlFileOptions) (*YamlFileProvider, error) {
	if opts.Path == "" {
		opts.Path = "config.yaml"
	}

	p := &YamlFileProvider{
		path:   opts.Path,
		values: make(map[string]any),
	}

	rc, err := openFile(YamlFile.OptionName(), opts.Path, opts.RequireFile)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return p, nil
	}

	err = p.load(rc)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *YamlFileProvider) load(rc io.ReadCloser) (err error) {
	defer try.Close(&err, rc)

	b, err := io.ReadAll(rc)
	if err != nil {
		return FileReadError{Path: p.path, Cause: err}
	}

	var doc any
	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return InvalidYamlError{Path: p.path, Cause: err}
	}

	switch x := doc.(type) {
	case nil:
		return nil
	case map[string]any:
		flatten(p.values, x, nil)
		return nil
	default:
		return InvalidYamlError{
			Path:  p.path,
			Cause: fmt.Errorf("expected a mapping at the document root, got %T", doc),
		}
	}
}

func flatten(dst map[string]any, m map[string]any, chain key.Chain) {
	for k, v := range m {
		c := chain.Child(k)
		switch x := v.(type) {
		case map[string]any:
			flatten(dst, x, c)
		case map[any]any:
			sm := make(map[string]any, len(x))
			for mk, mv := range x {
				sm[fmt.Sprint(mk)] = mv
			}
			flatten(dst, sm, c)
		default:
			dst[c.Key()] = x
		}
	}
}

// OptionName implements the [Provider] interface.
func (*YamlFileProvider) OptionName() string {
	return YamlFile.OptionName()
}

// Get implements the [Provider] interface.
func (p *YamlFileProvider) Get(key string) (Value, error) {
	v, ok := p.values[key]
	if !ok {
		return Value{}, ErrNotFound
	}
	return ValueOf(v), nil
}
