package generate

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/pkg/route"
	"github.com/vango-dev/routegen/pkg/typegen"
	"github.com/viant/afs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/vango-dev/routegen/pkg/generate"

// Options configures a generation run.
type Options struct {
	// Dir is the route directory (local path or afs URL).
	Dir string

	// Output is the generated file (local path or afs URL).
	Output string

	// Convention is "pages", "app" or "auto".
	Convention string

	// Override appends the navigation API declarations.
	Override bool

	// Exclude holds glob patterns of entries to skip, relative to Dir.
	Exclude []string

	// Extensions replaces the convention's recognized extensions.
	Extensions []string

	// Check compares instead of writing.
	Check bool

	// FS is the storage service. If nil, afs.New() is used.
	FS afs.Service

	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Result describes a completed run.
type Result struct {
	// Convention is the convention that was applied.
	Convention string

	// Dir and Output are the resolved locations.
	Dir    string
	Output string

	// Routes is the discovered route set in traversal order.
	Routes route.Set

	// Static and Dynamic count the routes of each kind.
	Static  int
	Dynamic int

	// Document is the emitted text.
	Document []byte

	// Changed reports whether the output differed from the previous file.
	Changed bool
}

// Run executes the pipeline. Nothing but the pre-created empty output file
// is left behind when it fails.
func Run(ctx context.Context, opts Options) (*Result, error) {
	p := newPipeline(opts)

	ctx, span := p.tracer.Start(ctx, "routegen.Run", trace.WithAttributes(
		attribute.String("routegen.dir", opts.Dir),
		attribute.String("routegen.output", opts.Output),
		attribute.Bool("routegen.check", opts.Check),
	))
	defer span.End()

	res, err := p.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("routegen.error_code", errors.Code(err)))
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("routegen.routes", len(res.Routes)),
		attribute.Bool("routegen.changed", res.Changed),
	)
	return res, nil
}

// Discover resolves the convention and walks the route directory without
// emitting anything.
func Discover(ctx context.Context, opts Options) (route.Convention, route.Set, error) {
	if opts.Dir == "" {
		return route.Convention{}, nil, errors.New("E140").WithDetail("The route directory is required.")
	}
	p := newPipeline(opts)
	dir, err := resolve(opts.Dir)
	if err != nil {
		return route.Convention{}, nil, err
	}
	return p.discover(ctx, dir)
}

type pipeline struct {
	opts   Options
	fs     afs.Service
	logger *slog.Logger
	tracer trace.Tracer
}

func newPipeline(opts Options) *pipeline {
	p := &pipeline{
		opts:   opts,
		fs:     opts.FS,
		logger: opts.Logger,
		tracer: otel.Tracer(tracerName),
	}
	if p.fs == nil {
		p.fs = afs.New()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

func (p *pipeline) run(ctx context.Context) (*Result, error) {
	if p.opts.Dir == "" {
		return nil, errors.New("E140").WithDetail("The route directory is required.")
	}
	if p.opts.Output == "" {
		return nil, errors.New("E140").WithDetail("The output file is required.")
	}

	dir, err := resolve(p.opts.Dir)
	if err != nil {
		return nil, err
	}
	output, err := resolve(p.opts.Output)
	if err != nil {
		return nil, err
	}

	if !p.opts.Check {
		if err := p.ensureOutput(ctx, output); err != nil {
			return nil, err
		}
	}

	conv, routes, err := p.discover(ctx, dir)
	if err != nil {
		return nil, err
	}

	_, emitSpan := p.tracer.Start(ctx, "routegen.Emit")
	doc := typegen.Emit(routes, typegen.Options{Override: p.opts.Override})
	emitSpan.End()

	static, dynamic := routes.Partition()
	res := &Result{
		Convention: conv.Name,
		Dir:        dir,
		Output:     output,
		Routes:     routes,
		Static:     len(static),
		Dynamic:    len(dynamic),
		Document:   doc,
	}

	previous, err := p.read(ctx, output)
	if err != nil {
		return nil, err
	}
	res.Changed = !bytes.Equal(previous, doc)

	if p.opts.Check {
		if res.Changed {
			return nil, errors.New("E104").
				WithPath(output).
				WithSuggestion("Run 'routegen gen' and commit the result")
		}
		return res, nil
	}

	if err := p.write(ctx, output, doc); err != nil {
		return nil, err
	}
	p.logger.DebugContext(ctx, "route types written",
		"output", output,
		"bytes", len(doc),
		"changed", res.Changed,
	)
	return res, nil
}

func (p *pipeline) discover(ctx context.Context, dir string) (route.Convention, route.Set, error) {
	conv, err := route.ParseConvention(p.opts.Convention, dir)
	if err != nil {
		return route.Convention{}, nil, err
	}

	walker, err := route.NewWalker(route.NewAFSLister(p.fs), conv, route.WalkOptions{
		Exclude:    p.opts.Exclude,
		Extensions: p.opts.Extensions,
	})
	if err != nil {
		return route.Convention{}, nil, err
	}

	ctx, span := p.tracer.Start(ctx, "routegen.Walk", trace.WithAttributes(
		attribute.String("routegen.convention", conv.Name),
	))
	defer span.End()

	p.logger.DebugContext(ctx, "walking route directory",
		"dir", dir,
		"convention", conv.Name,
		"extensions", walker.Convention().Extensions,
	)

	routes, err := walker.Walk(ctx, dir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return route.Convention{}, nil, err
	}

	p.logger.DebugContext(ctx, "routes discovered", "count", len(routes))
	return walker.Convention(), routes, nil
}

// ensureOutput creates the output file and its parent directory when they
// are missing, leaving an existing file untouched.
func (p *pipeline) ensureOutput(ctx context.Context, output string) error {
	exists, err := p.fs.Exists(ctx, output)
	if err != nil {
		return errors.FromError(err, "E105").WithPath(output)
	}
	if exists {
		return nil
	}

	parent := parentOf(output)
	parentExists, err := p.fs.Exists(ctx, parent)
	if err != nil {
		return errors.FromError(err, "E105").WithPath(parent)
	}
	if !parentExists {
		p.logger.DebugContext(ctx, "creating output directory", "dir", parent)
		if err := p.fs.Create(ctx, parent, 0755, true); err != nil {
			return errors.FromError(err, "E105").WithPath(parent)
		}
	}
	return p.write(ctx, output, nil)
}

// read returns the current output content, or nil when there is none.
func (p *pipeline) read(ctx context.Context, output string) ([]byte, error) {
	exists, err := p.fs.Exists(ctx, output)
	if err != nil {
		return nil, errors.FromError(err, "E105").WithPath(output)
	}
	if !exists {
		return nil, nil
	}
	data, err := p.fs.DownloadWithURL(ctx, output)
	if err != nil {
		return nil, errors.FromError(err, "E105").WithPath(output)
	}
	return data, nil
}

func (p *pipeline) write(ctx context.Context, output string, data []byte) error {
	if err := p.fs.Upload(ctx, output, 0644, bytes.NewReader(data)); err != nil {
		return errors.FromError(err, "E105").WithPath(output)
	}
	return nil
}

// resolve makes local paths absolute. URLs are returned unchanged.
func resolve(location string) (string, error) {
	if location == "" || strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", errors.New("E100").WithPath(location).Wrap(err)
	}
	return abs, nil
}

func parentOf(location string) string {
	if strings.Contains(location, "://") {
		trimmed := strings.TrimRight(location, "/")
		if i := strings.LastIndex(trimmed, "/"); i >= 0 {
			return trimmed[:i]
		}
		return trimmed
	}
	return filepath.Dir(location)
}
