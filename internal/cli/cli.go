// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the envread command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/z5labs/envread/config"
	"github.com/z5labs/envread/internal/slogfield"
	"github.com/z5labs/envread/internal/try"

	"github.com/spf13/cobra"
)

// UnknownProviderError is returned when --providers names a provider
// type which does not exist.
type UnknownProviderError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e UnknownProviderError) Error() string {
	return fmt.Sprintf("envread: unknown provider: %s", e.Name)
}

// UnknownTypeError is returned when get is asked for a type it
// can not render.
type UnknownTypeError struct {
	Type string
}

// Error implements the [builtin.error] interface.
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("envread: unknown value type: %s (want one of: %s)", e.Type, strings.Join(typeNames(), ", "))
}

type rootFlags struct {
	envFile     string
	requireFile bool
	providers   []string
	yamlFile    string
	viperFile   string
	debug       bool
}

// Execute runs the envread command with the given arguments.
func Execute(ctx context.Context, args ...string) error {
	cmd := New()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// New returns the root envread command.
func New() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "envread",
		Short:         "Read configuration values from the environment and env files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", ".env", "path of the env file")
	pf.BoolVar(&flags.requireFile, "require-file", false, "fail if the env file does not exist")
	pf.StringSliceVar(&flags.providers, "providers", []string{"environ", "env_file"}, "ordered provider types to query")
	pf.StringVar(&flags.yamlFile, "yaml-file", "", "path of a yaml file to read values from")
	pf.StringVar(&flags.viperFile, "viper-file", "", "path of any file viper can read values from")
	pf.BoolVar(&flags.debug, "debug", false, "log lookups to stderr")

	cmd.AddCommand(
		getCmd(&flags),
		listCmd(&flags),
	)
	return cmd
}

func newReader(cmd *cobra.Command, flags *rootFlags) (*config.Reader, error) {
	level := slog.LevelWarn
	if flags.debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	names := flags.providers
	if !cmd.Flags().Changed("providers") {
		if flags.yamlFile != "" {
			names = append(names, config.YamlFile.OptionName())
		}
		if flags.viperFile != "" {
			names = append(names, config.Viper.OptionName())
		}
	}

	types := make([]config.ProviderType, 0, len(names))
	for _, name := range names {
		pt, ok := config.LookupProviderType(strings.TrimSpace(name))
		if !ok {
			return nil, UnknownProviderError{Name: name}
		}
		types = append(types, pt)
	}

	opts := config.Options{
		config.EnvFile.OptionName(): {
			"path":         flags.envFile,
			"require_file": flags.requireFile,
		},
	}
	if flags.yamlFile != "" {
		opts[config.YamlFile.OptionName()] = config.OptionBlock{"path": flags.yamlFile}
	}
	if flags.viperFile != "" {
		opts[config.Viper.OptionName()] = config.OptionBlock{"path": flags.viperFile}
	}

	r, err := config.NewReader(
		config.WithProviders(types...),
		config.WithOptions(opts),
		config.LogHandler(h),
	)
	if err != nil {
		slog.New(h).ErrorContext(cmd.Context(), "failed to build config reader", slogfield.Error(err))
		return nil, err
	}
	return r, nil
}

func getCmd(flags *rootFlags) *cobra.Command {
	var (
		typ     string
		def     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			render, ok := renderers[typ]
			if !ok {
				return UnknownTypeError{Type: typ}
			}

			r, err := newReader(cmd, flags)
			if err != nil {
				return err
			}

			var defp *string
			if cmd.Flags().Changed("default") {
				defp = &def
			}

			key := args[0]
			s, err := render(r, key, defp)
			if err != nil {
				return err
			}
			if !verbose {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
				return err
			}

			source := "default"
			_, src, err := r.Lookup(key)
			if err == nil {
				source = src
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s, source)
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&typ, "type", "str", "type to read the value as: "+strings.Join(typeNames(), ", "))
	fs.StringVar(&def, "default", "", "value printed when no provider has KEY")
	fs.BoolVarP(&verbose, "verbose", "v", false, "also print the provider which supplied the value")
	return cmd
}

func listCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the keys defined in the env file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newReader(cmd, flags)
			if err != nil {
				return err
			}

			for _, p := range r.Providers() {
				ef, ok := p.(*config.EnvFileProvider)
				if !ok {
					continue
				}
				for _, k := range ef.Keys() {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), k)
					if err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
