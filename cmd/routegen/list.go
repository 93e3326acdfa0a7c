package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/pkg/generate"
	"github.com/vango-dev/routegen/pkg/route"
)

// listedRoute is the JSON form of one discovered route.
type listedRoute struct {
	Path string     `json:"path"`
	Kind route.Kind `json:"kind"`
}

func listCmd() *cobra.Command {
	var (
		source  sourceFlags
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list [dir] " + conventionArg(),
		Short: "List discovered routes",
		Long: `Walk the route directory and print every route in traversal order,
without writing anything.

Examples:
  routegen list pages
  routegen list app app --json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			need := configRequired
			if len(args) > 0 {
				need = configUnused
			}
			cfg, err := source.loadConfig(cmd.Context(), need)
			if err != nil {
				return err
			}

			opts := generate.Options{
				Dir:        cfg.DirPath(),
				Convention: cfg.Router,
				Logger:     newLogger(cmd.ErrOrStderr(), verbose),
			}
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			if len(args) > 1 {
				opts.Convention = args[1]
			}
			source.apply(cfg, &opts)

			return runList(cmd, opts, asJSON)
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print routes as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each step")

	return cmd
}

func runList(cmd *cobra.Command, opts generate.Options, asJSON bool) error {
	if opts.Dir == "" {
		return errors.New("E140").
			WithDetail("No route directory was given and the config file does not set one.").
			WithSuggestion("Pass it as the first argument or set \"dir\" in the config file")
	}

	_, routes, err := generate.Discover(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		listed := make([]listedRoute, len(routes))
		for i, r := range routes {
			listed[i] = listedRoute{Path: r.String(), Kind: r.Kind()}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(listed)
	}

	for _, r := range routes {
		fmt.Fprintf(out, "%-8s %s\n", r.Kind(), r)
	}
	return nil
}
