package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/pkg/route"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "routegen.json"

	// YAMLFileName is the YAML configuration file name.
	YAMLFileName = "routegen.yaml"

	// DefaultOutput is the default generated file, relative to the project.
	DefaultOutput = "routes.d.ts"

	// DefaultRouter lets the convention be inferred from the directory name.
	DefaultRouter = route.Auto
)

// FileNames lists the recognized configuration files in lookup order.
var FileNames = []string{JSONFileName, YAMLFileName, "routegen.yml"}

// candidateDirs are probed, in order, by DetectRouteDir.
var candidateDirs = []string{"app", "pages", "src/app", "src/pages"}

// Config represents a routegen configuration file.
type Config struct {
	// Dir is the route directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Output is the generated TypeScript file.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Router selects the convention: "pages", "app" or "auto".
	Router string `json:"router,omitempty" yaml:"router,omitempty"`

	// Override appends next/router and next/navigation declarations.
	Override bool `json:"override,omitempty" yaml:"override,omitempty"`

	// Exclude holds glob patterns of entries to skip, relative to Dir.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Extensions replaces the convention's recognized file extensions.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// configPath stores the location the config was loaded from.
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output: DefaultOutput,
		Router: DefaultRouter,
	}
}

// Store reads and writes config files through an afs.Service, so a project
// may live on the local disk or behind a storage URL such as mem://.
type Store struct {
	fs afs.Service
}

// NewStore creates a store. A nil service uses afs.New().
func NewStore(service afs.Service) *Store {
	if service == nil {
		service = afs.New()
	}
	return &Store{fs: service}
}

// Load reads configuration from the specified directory, trying each of
// FileNames in turn.
func (s *Store) Load(ctx context.Context, dir string) (*Config, error) {
	for _, name := range FileNames {
		location := JoinLocation(dir, name)
		if s.exists(ctx, location) {
			return s.LoadFile(ctx, location)
		}
	}
	return nil, errors.New("E121").
		WithPath(dir).
		WithSuggestion("Run 'routegen init' or pass the route directory and output file as arguments")
}

// LoadFile reads configuration from the specified file. Files ending in
// .yaml or .yml are parsed as YAML, everything else as JSON.
func (s *Store) LoadFile(ctx context.Context, location string) (*Config, error) {
	location, err := AbsLocation(location)
	if err != nil {
		return nil, errors.New("E121").WithPath(location).Wrap(err)
	}
	if !s.exists(ctx, location) {
		return nil, errors.New("E121").WithPath(location)
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, errors.FromError(err, "E120").WithPath(location)
	}

	cfg := New()
	if isYAML(location) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithPath(location).
			Wrap(err).
			WithSuggestion("Check that " + filepath.Base(location) + " is well formed")
	}

	cfg.configPath = location
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes cfg to location, as YAML or JSON depending on the
// extension.
func (s *Store) SaveTo(ctx context.Context, cfg *Config, location string) error {
	location, err := AbsLocation(location)
	if err != nil {
		return errors.New("E120").WithPath(location).Wrap(err)
	}

	var data []byte
	if isYAML(location) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").WithPath(location).Wrap(err)
	}

	if err := s.fs.Upload(ctx, location, 0644, bytes.NewReader(data)); err != nil {
		return errors.FromError(err, "E120").WithPath(location)
	}

	cfg.configPath = location
	return nil
}

// Exists checks if a config file exists in the given directory.
func (s *Store) Exists(ctx context.Context, dir string) bool {
	for _, name := range FileNames {
		if s.exists(ctx, JoinLocation(dir, name)) {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
func (s *Store) FindProjectRoot(ctx context.Context, startDir string) (string, error) {
	dir, err := AbsLocation(startDir)
	if err != nil {
		return "", err
	}

	for {
		if s.Exists(ctx, dir) {
			return dir, nil
		}

		parent := parentLocation(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithPath(startDir).
				WithDetail("No routegen.json or routegen.yaml found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'routegen init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent that has a config file.
func (s *Store) LoadFromWorkingDir(ctx context.Context) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := s.FindProjectRoot(ctx, wd)
	if err != nil {
		return nil, err
	}

	return s.Load(ctx, root)
}

// DetectRouteDir returns the first conventional route directory that exists
// under projectDir, relative to it, together with its router name.
func (s *Store) DetectRouteDir(ctx context.Context, projectDir string) (dir, router string, ok bool) {
	lister := route.NewAFSLister(s.fs)
	for _, candidate := range candidateDirs {
		entry, err := lister.Stat(ctx, JoinLocation(projectDir, candidate))
		if err == nil && entry.IsDir {
			return candidate, path.Base(candidate), true
		}
	}
	return "", "", false
}

func (s *Store) exists(ctx context.Context, location string) bool {
	ok, err := s.fs.Exists(ctx, location)
	return err == nil && ok
}

// Path returns the location the config was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

// ProjectDir returns the directory containing the config file.
func (c *Config) ProjectDir() string {
	if c.configPath == "" {
		return ""
	}
	return parentLocation(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Router == "" {
		c.Router = DefaultRouter
	}
	c.Router = strings.ToLower(strings.TrimSpace(c.Router))
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if selectors := route.Selectors(); !slices.Contains(selectors, c.Router) {
		return errors.New("E122").
			WithPath(c.configPath).
			WithDetail("router must be one of " + strings.Join(selectors, ", ") + ", got '" + c.Router + "'")
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.New("E123").WithPath(pattern)
		}
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" || strings.ContainsAny(ext, `/\`) {
			return errors.New("E122").
				WithPath(c.configPath).
				WithDetail("extensions must be file extensions such as '.tsx', got '" + ext + "'")
		}
	}
	return nil
}

// DirPath returns the absolute route directory, or "" when none is set.
func (c *Config) DirPath() string {
	return c.resolve(c.Dir)
}

// OutputPath returns the absolute output file path.
func (c *Config) OutputPath() string {
	output := c.Output
	if output == "" {
		output = DefaultOutput
	}
	return c.resolve(output)
}

func (c *Config) resolve(location string) string {
	if location == "" {
		return ""
	}
	if filepath.IsAbs(location) || isURL(location) {
		return location
	}
	return JoinLocation(c.ProjectDir(), location)
}

// JoinLocation appends a slash separated relative name to a directory given
// as a local path or a storage URL.
func JoinLocation(dir, name string) string {
	if isURL(dir) {
		return strings.TrimRight(dir, "/") + "/" + strings.TrimLeft(name, "/")
	}
	return filepath.Join(dir, filepath.FromSlash(name))
}

// parentLocation returns the parent of a local path or storage URL. The
// root of either is its own parent.
func parentLocation(location string) string {
	i := strings.Index(location, "://")
	if i < 0 {
		return filepath.Dir(location)
	}
	prefix, rest := location[:i+3], strings.TrimRight(location[i+3:], "/")
	j := strings.LastIndex(rest, "/")
	if j < 0 {
		return location
	}
	if j == 0 {
		return prefix + "/"
	}
	return prefix + rest[:j]
}

// AbsLocation makes local paths absolute. URLs are returned unchanged.
func AbsLocation(location string) (string, error) {
	if isURL(location) {
		return location, nil
	}
	return filepath.Abs(location)
}

func isURL(location string) bool {
	return strings.Contains(location, "://")
}

func isYAML(location string) bool {
	ext := strings.ToLower(path.Ext(location))
	return ext == ".yaml" || ext == ".yml"
}
