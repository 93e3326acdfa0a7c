package route

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vango-dev/routegen/internal/errors"
)

// WalkOptions configures a Walker.
type WalkOptions struct {
	// Exclude holds doublestar patterns matched against the slash separated
	// path of each entry relative to the root (e.g. "api/**", "**/_*").
	// Matching files are ignored and matching directories are not entered.
	Exclude []string

	// Extensions replaces the convention's recognized extensions.
	Extensions []string
}

// Walker enumerates the routes of a directory tree.
type Walker struct {
	lister     DirLister
	convention Convention
	exclude    []string
}

// NewWalker creates a walker for the given convention.
func NewWalker(lister DirLister, convention Convention, opts WalkOptions) (*Walker, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.New("E123").
				WithPath(pattern).
				WithSuggestion("Use glob syntax such as 'api/**' or '**/_*'")
		}
	}
	return &Walker{
		lister:     lister,
		convention: convention.WithExtensions(opts.Extensions),
		exclude:    opts.Exclude,
	}, nil
}

// Convention returns the convention the walker applies.
func (w *Walker) Convention() Convention {
	return w.convention
}

// frame is one directory on the work stack. next is the cursor into
// entries; the frame is popped once it reaches the end.
type frame struct {
	rel     string
	base    Path
	entries []Entry
	next    int
}

// Walk lists root depth first and returns the routes in traversal order.
// Entries of each directory are visited in name order, and a subdirectory is
// finished before its next sibling is visited.
func (w *Walker) Walk(ctx context.Context, root string) (Set, error) {
	info, err := w.lister.Stat(ctx, root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("E100").WithPath(root).Wrap(err)
		}
		return nil, errors.New("E101").WithPath(root).Wrap(err)
	}
	if !info.IsDir {
		return nil, errors.New("E100").
			WithPath(root).
			WithDetail("The route root is a file, not a directory.")
	}

	entries, err := w.list(ctx, info.Location, root)
	if err != nil {
		return nil, err
	}

	var routes Set
	stack := []*frame{{base: Root(), entries: entries}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		rel := path.Join(top.rel, entry.Name)
		if w.excluded(rel) {
			continue
		}

		if entry.IsDir {
			if w.convention.SkipMarkerDirs && w.convention.IsMarker(entry.Name) {
				continue
			}
			children, err := w.list(ctx, entry.Location, rel)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &frame{
				rel:     rel,
				base:    top.base.Append(dirSegment(entry.Name)),
				entries: children,
			})
			continue
		}

		if p, ok := w.convention.resolveFile(top.base, entry.Name); ok {
			routes = append(routes, p)
		}
	}

	return routes, nil
}

// list reads a directory and orders its entries by name.
func (w *Walker) list(ctx context.Context, location, display string) ([]Entry, error) {
	entries, err := w.lister.List(ctx, location)
	if err != nil {
		return nil, errors.New("E101").WithPath(display).Wrap(err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func (w *Walker) excluded(rel string) bool {
	for _, pattern := range w.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
