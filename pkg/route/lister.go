package route

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// Entry is one item of a directory listing.
type Entry struct {
	// Name is the base name of the file or directory.
	Name string

	// Location is what the lister needs to list a directory entry's
	// children (a file path or a storage URL).
	Location string

	// IsDir is true for directories.
	IsDir bool
}

// DirLister produces directory entries. Stat must return an error wrapping
// fs.ErrNotExist when the location does not exist.
type DirLister interface {
	Stat(ctx context.Context, location string) (Entry, error)
	List(ctx context.Context, location string) ([]Entry, error)
}

// AFSLister lists directories through an afs.Service, which accepts local
// paths as well as file:// and mem:// URLs.
type AFSLister struct {
	fs afs.Service
}

// NewAFSLister creates a lister. A nil service uses afs.New().
func NewAFSLister(service afs.Service) *AFSLister {
	if service == nil {
		service = afs.New()
	}
	return &AFSLister{fs: service}
}

// Stat implements DirLister.
func (l *AFSLister) Stat(ctx context.Context, location string) (Entry, error) {
	exists, err := l.fs.Exists(ctx, location)
	if err != nil {
		return Entry{}, err
	}
	if !exists {
		return Entry{}, fmt.Errorf("%s: %w", location, fs.ErrNotExist)
	}
	object, err := l.fs.Object(ctx, location)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: object.Name(), Location: object.URL(), IsDir: object.IsDir()}, nil
}

// List implements DirLister. The listed directory itself is not returned.
func (l *AFSLister) List(ctx context.Context, location string) ([]Entry, error) {
	objects, err := l.fs.List(ctx, location)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(objects))
	for _, object := range objects {
		if url.Equals(object.URL(), location) {
			continue
		}
		entries = append(entries, Entry{
			Name:     object.Name(),
			Location: object.URL(),
			IsDir:    object.IsDir(),
		})
	}
	return entries, nil
}
