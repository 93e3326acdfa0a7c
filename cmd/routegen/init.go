package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/pkg/route"
)

func initCmd() *cobra.Command {
	var (
		router   string
		format   string
		output   string
		override bool
	)

	cmd := &cobra.Command{
		Use:   "init [project-dir]",
		Short: "Create a routegen config file",
		Long: `Create routegen.json (or routegen.yaml) in the project directory.

The route directory is detected from app/, pages/, src/app/ and src/pages/,
in that order.

Examples:
  routegen init
  routegen init --router app --format yaml
  routegen init web --output types/routes.d.ts --override`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) > 0 {
				projectDir = args[0]
			}
			cfg := config.New()
			if output != "" {
				cfg.Output = output
			}
			cfg.Override = override
			return runInit(cmd, projectDir, cfg, router, format)
		},
	}

	cmd.Flags().StringVar(&router, "router", "", "Routing convention: "+strings.Join(route.Selectors(), ", ")+" (default: detected)")
	cmd.Flags().StringVar(&format, "format", "json", "Config file format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Generated file (default: "+config.DefaultOutput+")")
	cmd.Flags().BoolVar(&override, "override", false, "Append next/router and next/navigation declarations")

	return cmd
}

func runInit(cmd *cobra.Command, projectDir string, cfg *config.Config, router, format string) error {
	out := cmd.OutOrStdout()

	var name string
	switch format {
	case "json":
		name = config.JSONFileName
	case "yaml", "yml":
		name = config.YAMLFileName
	default:
		return errors.New("E122").
			WithDetail("format must be 'json' or 'yaml', got '" + format + "'")
	}

	ctx := cmd.Context()
	store := config.NewStore(nil)

	projectDir, err := config.AbsLocation(projectDir)
	if err != nil {
		return errors.New("E100").WithPath(projectDir).Wrap(err)
	}

	if entry, err := route.NewAFSLister(nil).Stat(ctx, projectDir); err != nil || !entry.IsDir {
		return errors.New("E100").WithPath(projectDir)
	}
	if store.Exists(ctx, projectDir) {
		return errors.New("E141").
			WithPath(projectDir).
			WithSuggestion("Edit the existing file or remove it first")
	}

	dir, detected, ok := store.DetectRouteDir(ctx, projectDir)
	if ok {
		cfg.Dir = dir
		cfg.Router = detected
	}
	if router != "" {
		cfg.Router = router
	}
	cfg.Router = strings.ToLower(cfg.Router)
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := config.JoinLocation(projectDir, name)
	if err := store.SaveTo(ctx, cfg, path); err != nil {
		return err
	}

	success(out, "Created %s", path)
	if ok {
		info(out, "Route directory: %s (%s convention)", cfg.Dir, cfg.Router)
	} else {
		warn(out, "No app/ or pages/ directory found; set \"dir\" in %s", name)
	}
	return nil
}
