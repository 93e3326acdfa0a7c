package route

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// memLister is an in-memory DirLister rooted at "root".
type memLister struct {
	dirs  map[string][]Entry
	files map[string]bool
	fail  map[string]error
}

// newMemLister builds a tree from slash separated paths relative to "root".
// A trailing slash creates an empty directory.
func newMemLister(paths ...string) *memLister {
	l := &memLister{
		dirs:  map[string][]Entry{"root": nil},
		files: map[string]bool{},
		fail:  map[string]error{},
	}
	for _, p := range paths {
		isDir := strings.HasSuffix(p, "/")
		parts := strings.Split(strings.Trim(p, "/"), "/")
		parent := "root"
		for i, name := range parts {
			location := path.Join(parent, name)
			dir := isDir || i < len(parts)-1
			if dir {
				if _, ok := l.dirs[location]; !ok {
					l.dirs[location] = nil
					l.dirs[parent] = append(l.dirs[parent], Entry{Name: name, Location: location, IsDir: true})
				}
			} else if !l.files[location] {
				l.files[location] = true
				l.dirs[parent] = append(l.dirs[parent], Entry{Name: name, Location: location})
			}
			parent = location
		}
	}
	return l
}

func (l *memLister) Stat(_ context.Context, location string) (Entry, error) {
	if err := l.fail[location]; err != nil {
		return Entry{}, err
	}
	if _, ok := l.dirs[location]; ok {
		return Entry{Name: path.Base(location), Location: location, IsDir: true}, nil
	}
	if l.files[location] {
		return Entry{Name: path.Base(location), Location: location}, nil
	}
	return Entry{}, fmt.Errorf("%s: %w", location, fs.ErrNotExist)
}

func (l *memLister) List(_ context.Context, location string) ([]Entry, error) {
	if err := l.fail[location]; err != nil {
		return nil, err
	}
	entries, ok := l.dirs[location]
	if !ok {
		return nil, fmt.Errorf("%s: %w", location, fs.ErrNotExist)
	}
	return append([]Entry(nil), entries...), nil
}
