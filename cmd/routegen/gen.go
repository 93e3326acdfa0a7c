package main

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/pkg/generate"
	"github.com/vango-dev/routegen/pkg/route"
)

// sourceFlags are shared by commands that walk a route directory.
type sourceFlags struct {
	configPath string
	exclude    []string
	extensions []string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (default: nearest routegen.json or routegen.yaml)")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "Glob of route files or directories to skip (repeatable)")
	cmd.Flags().StringSliceVar(&f.extensions, "ext", nil, "Recognized file extensions (default: per convention)")
}

// configNeed says how much a command relies on the project config.
type configNeed int

const (
	// configRequired fails without a config file.
	configRequired configNeed = iota

	// configOptional uses the nearest config file when there is one.
	configOptional

	// configUnused ignores config files unless --config names one.
	configUnused
)

// loadConfig returns the --config file, or the nearest one as need allows.
func (f *sourceFlags) loadConfig(ctx context.Context, need configNeed) (*config.Config, error) {
	store := config.NewStore(nil)
	if f.configPath != "" {
		return store.LoadFile(ctx, f.configPath)
	}
	switch need {
	case configUnused:
		return config.New(), nil
	case configOptional:
		cfg, err := store.LoadFromWorkingDir(ctx)
		if errors.HasCode(err, "E121") {
			return config.New(), nil
		}
		return cfg, err
	}
	return store.LoadFromWorkingDir(ctx)
}

// conventionArg is the usage placeholder for a convention argument.
func conventionArg() string {
	return "[" + strings.Join(route.Selectors(), "|") + "]"
}

// apply merges the command line over cfg into opts.
func (f *sourceFlags) apply(cfg *config.Config, opts *generate.Options) {
	opts.Exclude = append(append([]string(nil), cfg.Exclude...), f.exclude...)
	opts.Extensions = cfg.Extensions
	if len(f.extensions) > 0 {
		opts.Extensions = f.extensions
	}
}

func genCmd() *cobra.Command {
	var (
		source   sourceFlags
		override bool
		check    bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "gen [dir] [output] " + conventionArg(),
		Short: "Generate route types",
		Long: `Walk the route directory and write the TypeScript route declarations.

Arguments left out are taken from routegen.json or routegen.yaml, found in
the working directory or one of its parents. With only the route directory
given, the config file is optional and the output defaults to routes.d.ts. The convention defaults to
auto, which infers it from the directory name.

The output is deterministic - running it multiple times produces identical
output unless the routes change.

Examples:
  routegen gen pages types/routes.d.ts pages
  routegen gen app routes.d.ts app --override
  routegen gen --exclude 'api/**' --ext .tsx --ext .jsx
  routegen gen --check                 # Fail if routes.d.ts is stale`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			need := configUnused
			switch len(args) {
			case 0:
				need = configRequired
			case 1:
				need = configOptional
			}
			cfg, err := source.loadConfig(cmd.Context(), need)
			if err != nil {
				return err
			}

			opts := generate.Options{
				Dir:        cfg.DirPath(),
				Output:     cfg.OutputPath(),
				Convention: cfg.Router,
				Override:   cfg.Override,
				Check:      check,
				Logger:     newLogger(cmd.ErrOrStderr(), verbose),
			}
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			if len(args) > 1 {
				opts.Output = args[1]
			}
			if len(args) > 2 {
				opts.Convention = args[2]
			}
			if cmd.Flags().Changed("override") {
				opts.Override = override
			}
			source.apply(cfg, &opts)

			return runGen(cmd, opts)
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVar(&override, "override", false, "Append next/router and next/navigation declarations")
	cmd.Flags().BoolVar(&check, "check", false, "Verify the output is up to date without writing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each step")

	return cmd
}

func runGen(cmd *cobra.Command, opts generate.Options) error {
	if opts.Dir == "" {
		return errors.New("E140").
			WithDetail("No route directory was given and the config file does not set one.").
			WithSuggestion("Pass it as the first argument or set \"dir\" in the config file")
	}

	out := cmd.OutOrStdout()
	res, err := generate.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if opts.Check {
		success(out, "%s is up to date", res.Output)
		return nil
	}

	success(out, "Generated %s (%s)", res.Output, humanize.Bytes(uint64(len(res.Document))))
	info(out, "%d routes: %d static, %d dynamic (%s convention)", len(res.Routes), res.Static, res.Dynamic, res.Convention)
	if !res.Changed {
		info(out, "No changes")
	}
	return nil
}
