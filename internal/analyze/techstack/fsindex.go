package techstack

import (
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	maxReadBytes     = 512 * 1024
	contentCacheSize = 128
)

// index is a shallow snapshot of a working copy: entry names and paths down
// to two directory levels, plus the extensions seen at the top level.
// Dot-prefixed entries are skipped during listing; marker rules that need
// them (.github/workflows and friends) fall through to a direct stat.
type index struct {
	fs    billy.Filesystem
	names map[string]struct{}
	paths map[string]struct{}
	exts  map[string]struct{}
	cache *lru.Cache[string, cachedRead]
}

// cachedRead keeps the miss flag next to the content so an existing empty
// file is not mistaken for an absent one on later reads.
type cachedRead struct {
	content string
	ok      bool
}

func newIndex(fs billy.Filesystem) (*index, error) {
	cache, err := lru.New[string, cachedRead](contentCacheSize)
	if err != nil {
		return nil, err
	}
	ix := &index{
		fs:    fs,
		names: make(map[string]struct{}),
		paths: make(map[string]struct{}),
		exts:  make(map[string]struct{}),
		cache: cache,
	}

	root, err := fs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range root {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ix.names[name] = struct{}{}
		ix.paths[name] = struct{}{}
		if e.IsDir() {
			dirs = append(dirs, name)
			continue
		}
		if ext := path.Ext(name); ext != "" {
			ix.exts[strings.ToLower(ext)] = struct{}{}
		}
	}

	for _, dir := range dirs {
		children, err := fs.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, c := range children {
			name := c.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			rel := path.Join(dir, name)
			ix.names[name] = struct{}{}
			ix.paths[rel] = struct{}{}
			if !c.IsDir() {
				continue
			}
			grandchildren, err := fs.ReadDir(rel)
			if err != nil {
				continue
			}
			for _, gc := range grandchildren {
				if strings.HasPrefix(gc.Name(), ".") {
					continue
				}
				ix.paths[path.Join(rel, gc.Name())] = struct{}{}
			}
		}
	}
	return ix, nil
}

// has reports whether a marker file or directory is present. The listing
// sets are consulted first; dot-prefixed markers are resolved with a stat.
func (ix *index) has(marker string) bool {
	if _, ok := ix.names[marker]; ok {
		return true
	}
	if _, ok := ix.paths[marker]; ok {
		return true
	}
	_, err := ix.fs.Stat(marker)
	return err == nil
}

func (ix *index) hasExt(ext string) bool {
	_, ok := ix.exts[strings.ToLower(ext)]
	return ok
}

// read returns the file's content, truncated to maxReadBytes, or "" with
// ok=false when the file is absent or unreadable.
func (ix *index) read(name string) (string, bool) {
	if v, hit := ix.cache.Get(name); hit {
		return v.content, v.ok
	}
	data, err := util.ReadFile(ix.fs, name)
	if err != nil {
		ix.cache.Add(name, cachedRead{})
		return "", false
	}
	if len(data) > maxReadBytes {
		data = data[:maxReadBytes]
	}
	content := string(data)
	ix.cache.Add(name, cachedRead{content: content, ok: true})
	return content, true
}
