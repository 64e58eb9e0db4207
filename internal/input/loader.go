// Package input loads line-oriented puzzle inputs.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LineParser turns one input line into a value.
type LineParser[T any] func(line string) (T, error)

type cacheKey struct {
	path    string
	size    int64
	modTime time.Time
}

// Loader reads input files and keeps the raw lines of recently read files,
// so that both parts of a day share a single read. A nil *Loader reads
// straight from disk.
type Loader struct {
	cache *lru.Cache[cacheKey, []string]
}

// NewLoader creates a loader caching up to size files. A size of 0 disables caching.
func NewLoader(size int) (*Loader, error) {
	if size <= 0 {
		return &Loader{}, nil
	}
	cache, err := lru.New[cacheKey, []string](size)
	if err != nil {
		return nil, fmt.Errorf("create input cache: %w", err)
	}
	return &Loader{cache: cache}, nil
}

// Lines returns the lines of path. Cached entries are keyed on size and
// modification time, so an edited file is read again.
func (l *Loader) Lines(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	key := cacheKey{path: path, size: info.Size(), modTime: info.ModTime()}

	if l != nil && l.cache != nil {
		if lines, ok := l.cache.Get(key); ok {
			return lines, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFileAccess, path, err)
	}

	if l != nil && l.cache != nil {
		l.cache.Add(key, lines)
	}
	return lines, nil
}

// Len returns the number of cached files.
func (l *Loader) Len() int {
	if l == nil || l.cache == nil {
		return 0
	}
	return l.cache.Len()
}

// ReadLines splits r into lines, dropping a trailing carriage return.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Load reads path and parses every line with parse. The first rejected line
// aborts the load with a *ParseError and no values.
func Load[T any](path string, parse LineParser[T]) ([]T, error) {
	return LoadWith(nil, path, parse)
}

// LoadWith is Load reading through l.
func LoadWith[T any](l *Loader, path string, parse LineParser[T]) ([]T, error) {
	lines, err := l.Lines(path)
	if err != nil {
		return nil, err
	}
	return ParseAll(path, lines, parse)
}

// ParseAll applies parse to each line; name is used in error messages.
func ParseAll[T any](name string, lines []string, parse LineParser[T]) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, &ParseError{Path: name, Line: i + 1, Text: line, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
